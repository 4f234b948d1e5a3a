package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/bnema/course-tutor/internal/domain"
	"github.com/bnema/course-tutor/internal/ports"
)

var tracer = otel.Tracer("github.com/bnema/course-tutor/internal/application")

// CourseService backs the reasoning tools. Every call fetches the catalog
// again and every summary uses a session of its own.
type CourseService struct {
	auth      ports.Authenticator
	catalog   ports.CatalogFetcher
	extractor ports.ContentExtractor
	metrics   ports.Metrics
	logger    *slog.Logger
}

func NewCourseService(auth ports.Authenticator, catalog ports.CatalogFetcher, extractor ports.ContentExtractor, metrics ports.Metrics, logger *slog.Logger) *CourseService {
	if metrics == nil {
		metrics = ports.NoopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CourseService{auth: auth, catalog: catalog, extractor: extractor, metrics: metrics, logger: logger}
}

func (s *CourseService) Catalog(ctx context.Context) domain.Catalog {
	ctx, span := tracer.Start(ctx, "CourseService.Catalog")
	defer span.End()

	catalog := s.catalog.FetchCatalog(ctx)
	span.SetAttributes(attribute.Int("catalog.size", len(catalog)))
	return catalog
}

// ListCourses renders the catalog as "name: url" lines.
func (s *CourseService) ListCourses(ctx context.Context) string {
	catalog := s.Catalog(ctx)
	if catalog.Empty() {
		return msgCatalogUnavailable
	}

	lines := make([]string, 0, len(catalog))
	for _, entry := range catalog {
		lines = append(lines, entry.Name+": "+entry.BaseURL)
	}
	return msgCatalogHeader + strings.Join(lines, "\n")
}

// CatalogContext renders the catalog for embedding in a prompt.
func (s *CourseService) CatalogContext(ctx context.Context) string {
	catalog := s.Catalog(ctx)
	if catalog.Empty() {
		return msgContextEmpty
	}

	lines := make([]string, 0, len(catalog)+1)
	lines = append(lines, msgContextHeader)
	for _, entry := range catalog {
		lines = append(lines, fmt.Sprintf("  - %s: %s", entry.Name, entry.BaseURL))
	}
	return strings.Join(lines, "\n")
}

// SummarizeCourse logs in, resolves name against a fresh catalog and extracts
// the course summary. The reply is always a user-facing message.
func (s *CourseService) SummarizeCourse(ctx context.Context, name string) string {
	ctx, span := tracer.Start(ctx, "CourseService.SummarizeCourse")
	defer span.End()
	span.SetAttributes(attribute.String("course.query", name))

	session, err := s.auth.Authenticate(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "login failed")
		if errors.Is(err, domain.ErrNetwork) {
			s.metrics.RecordLoginFailure("network")
			s.logger.Warn("platform login unreachable", slog.Any("error", err))
			return fmt.Sprintf(msgNetworkError, err)
		}
		s.metrics.RecordLoginFailure("rejected")
		s.logger.Warn("platform login failed", slog.Any("error", err))
		return msgLoginFailed
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			s.logger.Warn("close platform session", slog.Any("error", closeErr))
		}
	}()

	catalog := s.catalog.FetchCatalog(ctx)
	if catalog.Empty() {
		return msgCatalogForLookupFailed
	}

	course, err := domain.ResolveCourse(name, catalog)
	if err != nil {
		s.logger.Info("course not resolved", slog.String("query", name))
		return fmt.Sprintf(msgCourseNotFound, name)
	}
	span.SetAttributes(attribute.String("course.name", course.DisplayName))

	result := s.extractor.Extract(ctx, session, course)
	s.metrics.RecordExtraction(string(result.Outcome))
	span.SetAttributes(attribute.String("extraction.outcome", string(result.Outcome)))

	return summaryMessage(course, result)
}

func summaryMessage(course domain.ResolvedCourse, result domain.ExtractionResult) string {
	switch result.Outcome {
	case domain.OutcomeSummary:
		return fmt.Sprintf(msgSummary, course.DisplayName, result.Text)
	case domain.OutcomeNoSummaryLink:
		if result.Detail != "" {
			return fmt.Sprintf(msgSummaryAtBase, result.Detail)
		}
		return msgNoSummaryLink
	case domain.OutcomeEmptyContent:
		return fmt.Sprintf(msgEmptyContent, course.DisplayName)
	case domain.OutcomeNetworkError:
		return fmt.Sprintf(msgNetworkError, result.Detail)
	default:
		return msgNoSummaryLink
	}
}

// Tools exposes the service to the tutor reasoner.
func (s *CourseService) Tools() []ports.Tool {
	return []ports.Tool{
		{
			Name:        toolListCourses,
			Description: toolListCoursesDescription,
			Invoke: func(ctx context.Context, _ string) (string, error) {
				return s.ListCourses(ctx), nil
			},
		},
		{
			Name:             toolSummarizeCourse,
			Description:      toolSummarizeCourseDescription,
			InputDescription: toolSummarizeCourseInput,
			Invoke: func(ctx context.Context, input string) (string, error) {
				return s.SummarizeCourse(ctx, input), nil
			},
		},
	}
}
