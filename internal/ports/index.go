package ports

import (
	"context"

	"github.com/bnema/course-tutor/internal/domain"
)

type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

type CourseIndex interface {
	Search(ctx context.Context, query string, k int) ([]string, error)
}

type IndexBuilder interface {
	Build(ctx context.Context, chunks []string) (CourseIndex, domain.IndexSnapshot, error)
	Open(ctx context.Context, snapshot domain.IndexSnapshot) (CourseIndex, error)
}

type SnapshotRepository interface {
	Load(ctx context.Context) (domain.IndexSnapshot, error)
	Save(ctx context.Context, snapshot domain.IndexSnapshot) error
}
