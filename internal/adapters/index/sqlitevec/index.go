package sqlitevec

import (
	"context"
	"fmt"

	sqlite_vec "github.com/asg017/sqlite-vec-go-bindings/cgo"

	"github.com/bnema/course-tutor/internal/ports"
)

// Index is a read handle on one generation table.
type Index struct {
	store *Store
	table string
}

var _ ports.CourseIndex = (*Index)(nil)

func (i *Index) Table() string {
	return i.table
}

// Search returns up to k chunks closest to query, nearest first.
func (i *Index) Search(ctx context.Context, query string, k int) ([]string, error) {
	if k <= 0 {
		return nil, nil
	}

	vectors, err := i.store.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, err
	}
	if len(vectors) != 1 {
		return nil, fmt.Errorf("embedder returned %d vectors for one query", len(vectors))
	}
	blob, err := sqlite_vec.SerializeFloat32(vectors[0])
	if err != nil {
		return nil, fmt.Errorf("serialize query embedding: %w", err)
	}

	rows, err := i.store.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT chunk FROM %s WHERE embedding MATCH ? AND k = ? ORDER BY distance`, i.table),
		blob, k,
	)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", i.table, err)
	}
	defer func() { _ = rows.Close() }()

	var chunks []string
	for rows.Next() {
		var chunk string
		if err := rows.Scan(&chunk); err != nil {
			return nil, fmt.Errorf("search %s: %w", i.table, err)
		}
		chunks = append(chunks, chunk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search %s: %w", i.table, err)
	}
	return chunks, nil
}
