package moodle

import (
	"bytes"
	"context"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/bnema/course-tutor/internal/domain"
	"github.com/bnema/course-tutor/internal/ports"
)

const (
	contentPageMarker = "/mod/page/view.php?"
	coursePageMarker  = "course/view.php"
	sectionZeroAnchor = "#section-0"
)

// DefaultSummaryKeywords match the link label of a course's syllabus page.
var DefaultSummaryKeywords = []string{"ementa"}

type Extractor struct {
	keywords  []string
	selectors []ContentSelector
	logger    *slog.Logger
}

var _ ports.ContentExtractor = (*Extractor)(nil)

// NewExtractor builds an extractor. Empty keywords or selectors fall back to
// the defaults.
func NewExtractor(keywords []string, selectors []ContentSelector, logger *slog.Logger) *Extractor {
	if len(keywords) == 0 {
		keywords = DefaultSummaryKeywords
	}
	normalized := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		if k := domain.NormalizeName(keyword); k != "" {
			normalized = append(normalized, k)
		}
	}
	if len(selectors) == 0 {
		selectors = DefaultContentSelectors()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{keywords: normalized, selectors: selectors, logger: logger}
}

// Extract follows the course page's summary link and pulls the text out of
// the content page. Failures are reported as outcomes, never as errors, and
// the session is left open for the caller to close.
func (e *Extractor) Extract(ctx context.Context, session ports.Session, course domain.ResolvedCourse) domain.ExtractionResult {
	page, err := session.Fetch(ctx, course.BaseURL)
	if err != nil {
		return domain.NotFound(domain.OutcomeNetworkError, err.Error())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page.Body))
	if err != nil {
		return domain.NotFound(domain.OutcomeNoSummaryLink, "")
	}

	link, ok := e.summaryLink(doc, course.BaseURL)
	if !ok {
		return domain.NotFound(domain.OutcomeNoSummaryLink, "")
	}
	if !strings.Contains(link, contentPageMarker) {
		// section-0 of the course page itself; there is no separate page to follow.
		return domain.NotFound(domain.OutcomeNoSummaryLink, course.BaseURL)
	}

	e.logger.Debug("summary page located", slog.String("course", course.DisplayName), slog.String("url", link))

	content, err := session.Fetch(ctx, link)
	if err != nil {
		return domain.NotFound(domain.OutcomeNetworkError, err.Error())
	}

	contentDoc, err := goquery.NewDocumentFromReader(bytes.NewReader(content.Body))
	if err != nil {
		return domain.NotFound(domain.OutcomeEmptyContent, link)
	}

	container, name := e.container(contentDoc)
	if container == nil {
		return domain.NotFound(domain.OutcomeEmptyContent, link)
	}

	text := containerText(container)
	e.logger.Debug("summary text extracted",
		slog.String("selector", name),
		slog.Int("chars", len(text)),
	)
	if text == "" {
		return domain.NotFound(domain.OutcomeEmptyContent, link)
	}
	return domain.Summary(text)
}

func (e *Extractor) summaryLink(doc *goquery.Document, baseURL string) (string, bool) {
	sectionZero := baseURL + sectionZeroAnchor

	var found string
	doc.Find("a[href]").EachWithBreak(func(_ int, anchor *goquery.Selection) bool {
		href, _ := anchor.Attr("href")
		href = resolveHref(baseURL, strings.TrimSpace(href))

		isContentPage := strings.Contains(href, contentPageMarker)
		isSectionZero := strings.Contains(href, coursePageMarker) && strings.Contains(href, sectionZeroAnchor)
		if !isContentPage && !isSectionZero {
			return true
		}

		if e.labelMatches(anchor.Text()) || href == sectionZero {
			found = href
			return false
		}
		return true
	})
	return found, found != ""
}

func (e *Extractor) labelMatches(label string) bool {
	normalized := domain.NormalizeName(label)
	for _, keyword := range e.keywords {
		if strings.Contains(normalized, keyword) {
			return true
		}
	}
	return false
}

func (e *Extractor) container(doc *goquery.Document) (*goquery.Selection, string) {
	for _, selector := range e.selectors {
		if selection := selector.Match(doc); selection.Length() > 0 {
			return selection, selector.Name
		}
	}
	return nil, ""
}

// containerText prefers paragraphs separated by blank lines and falls back to
// every text node of the container, one per line.
func containerText(container *goquery.Selection) string {
	var parts []string
	container.Find("p").Each(func(_ int, paragraph *goquery.Selection) {
		parts = append(parts, strings.TrimSpace(paragraph.Text()))
	})
	if len(parts) > 0 {
		return strings.TrimSpace(strings.Join(parts, "\n\n"))
	}

	for _, node := range container.Nodes {
		collectText(node, &parts)
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}

func collectText(node *html.Node, out *[]string) {
	switch node.Type {
	case html.TextNode:
		if text := strings.TrimSpace(node.Data); text != "" {
			*out = append(*out, text)
		}
		return
	case html.ElementNode:
		if node.Data == "script" || node.Data == "style" {
			return
		}
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, out)
	}
}
