package ports

import (
	"context"

	"github.com/bnema/course-tutor/internal/domain"
)

// Session is an authenticated handle to the learning platform. It is owned by
// the caller that created it and must be closed exactly once.
type Session interface {
	Fetch(ctx context.Context, rawURL string) (Page, error)
	Close() error
}

type Page struct {
	URL  string
	Body []byte
}

type Authenticator interface {
	Authenticate(ctx context.Context) (Session, error)
}

type CatalogFetcher interface {
	FetchCatalog(ctx context.Context) domain.Catalog
}

type ContentExtractor interface {
	Extract(ctx context.Context, session Session, course domain.ResolvedCourse) domain.ExtractionResult
}

type CourseDirectory interface {
	Courses(ctx context.Context) ([]domain.CourseRecord, error)
}
