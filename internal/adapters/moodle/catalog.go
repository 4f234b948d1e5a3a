package moodle

import (
	"bytes"
	"context"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/bnema/course-tutor/internal/domain"
	"github.com/bnema/course-tutor/internal/ports"
)

const DefaultCatalogLinkSelector = "a.aalink"

type CatalogFetcher struct {
	config       Config
	linkSelector string
	logger       *slog.Logger
}

var _ ports.CatalogFetcher = (*CatalogFetcher)(nil)

func NewCatalogFetcher(cfg Config, logger *slog.Logger) *CatalogFetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogFetcher{config: cfg.withDefaults(), linkSelector: DefaultCatalogLinkSelector, logger: logger}
}

// FetchCatalog never fails: an unreachable or unparsable catalog page yields
// an empty catalog and a warning in the log.
func (f *CatalogFetcher) FetchCatalog(ctx context.Context) domain.Catalog {
	catalogURL, err := f.config.catalogURL()
	if err != nil {
		f.logger.Warn("catalog url invalid", slog.Any("error", err))
		return domain.Catalog{}
	}

	session, err := NewSession(f.config)
	if err != nil {
		f.logger.Warn("catalog session unavailable", slog.Any("error", err))
		return domain.Catalog{}
	}
	defer func() { _ = session.Close() }()

	page, err := session.Fetch(ctx, catalogURL)
	if err != nil {
		f.logger.Warn("catalog fetch failed", slog.String("url", catalogURL), slog.Any("error", err))
		return domain.Catalog{}
	}

	catalog, err := parseCatalog(page, f.linkSelector)
	if err != nil {
		f.logger.Warn("catalog parse failed", slog.String("url", catalogURL), slog.Any("error", err))
		return domain.Catalog{}
	}
	f.logger.Debug("catalog fetched", slog.Int("courses", len(catalog)))
	return catalog
}

func parseCatalog(page ports.Page, selector string) (domain.Catalog, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page.Body))
	if err != nil {
		return nil, err
	}

	catalog := domain.Catalog{}
	doc.Find(selector).Each(func(_ int, link *goquery.Selection) {
		href, ok := link.Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			return
		}
		catalog = append(catalog, domain.CatalogEntry{
			Name:    strings.TrimSpace(link.Text()),
			BaseURL: resolveHref(page.URL, strings.TrimSpace(href)),
		})
	})
	return catalog, nil
}
