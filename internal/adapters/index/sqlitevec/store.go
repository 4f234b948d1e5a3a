// Package sqlitevec keeps course chunks in sqlite-vec virtual tables, one
// table per index generation.
package sqlitevec

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	sqlite_vec "github.com/asg017/sqlite-vec-go-bindings/cgo"
	_ "github.com/mattn/go-sqlite3"

	"github.com/bnema/course-tutor/internal/domain"
	"github.com/bnema/course-tutor/internal/ports"
)

const tablePrefix = "courses_g"

type Store struct {
	db       *sql.DB
	embedder ports.Embedder
	logger   *slog.Logger

	buildMu sync.Mutex
}

var _ ports.IndexBuilder = (*Store)(nil)

func Open(path string, embedder ports.Embedder, logger *slog.Logger) (*Store, error) {
	if path == "" {
		return nil, errors.New("index database path is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create index directory: %w", err)
	}

	sqlite_vec.Auto()
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open index database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open index database: %w", err)
	}
	return &Store{db: db, embedder: embedder, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Build embeds chunks into a fresh generation table. Generations older than
// the one currently being served are dropped first, so the current one stays
// readable until the caller swaps to the new index.
func (s *Store) Build(ctx context.Context, chunks []string) (ports.CourseIndex, domain.IndexSnapshot, error) {
	if len(chunks) == 0 {
		return nil, domain.IndexSnapshot{}, errors.New("no chunks to index")
	}

	s.buildMu.Lock()
	defer s.buildMu.Unlock()

	vectors, err := s.embedder.Embed(ctx, chunks)
	if err != nil {
		return nil, domain.IndexSnapshot{}, err
	}
	if len(vectors) != len(chunks) || len(vectors[0]) == 0 {
		return nil, domain.IndexSnapshot{}, fmt.Errorf("embedder returned %d vectors for %d chunks", len(vectors), len(chunks))
	}

	generations, err := s.generations(ctx)
	if err != nil {
		return nil, domain.IndexSnapshot{}, err
	}

	var latest int64
	if len(generations) > 0 {
		latest = generations[len(generations)-1]
		for _, stale := range generations[:len(generations)-1] {
			if err := s.dropGeneration(ctx, stale); err != nil {
				return nil, domain.IndexSnapshot{}, err
			}
		}
	}

	generation := latest + 1
	table := tableName(generation)
	if err := s.writeGeneration(ctx, table, chunks, vectors); err != nil {
		_ = s.dropGeneration(context.WithoutCancel(ctx), generation)
		return nil, domain.IndexSnapshot{}, err
	}

	s.logger.Info("course index generation built",
		slog.String("table", table),
		slog.Int("chunks", len(chunks)),
		slog.Int("dimensions", len(vectors[0])),
	)
	return &Index{store: s, table: table}, domain.IndexSnapshot{Generation: generation, Table: table}, nil
}

// Open returns the index recorded by snapshot if its table still exists.
func (s *Store) Open(ctx context.Context, snapshot domain.IndexSnapshot) (ports.CourseIndex, error) {
	if snapshot.Empty() {
		return nil, domain.ErrIndexNotReady
	}
	if snapshot.Table != tableName(snapshot.Generation) {
		return nil, fmt.Errorf("snapshot table %q does not match generation %d", snapshot.Table, snapshot.Generation)
	}

	var name string
	err := s.db.QueryRowContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, snapshot.Table,
	).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: table %s missing", domain.ErrIndexNotReady, snapshot.Table)
	}
	if err != nil {
		return nil, fmt.Errorf("look up index table: %w", err)
	}
	return &Index{store: s, table: snapshot.Table}, nil
}

func (s *Store) writeGeneration(ctx context.Context, table string, chunks []string, vectors [][]float32) error {
	dims := len(vectors[0])
	create := fmt.Sprintf(`CREATE VIRTUAL TABLE %s USING vec0(id INTEGER PRIMARY KEY, embedding float[%d], +chunk TEXT)`, table, dims)
	if _, err := s.db.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("create index table: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin index write: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`INSERT INTO %s (id, embedding, chunk) VALUES (?, ?, ?)`, table))
	if err != nil {
		return fmt.Errorf("prepare index insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, chunk := range chunks {
		if len(vectors[i]) != dims {
			return fmt.Errorf("chunk %d has %d dimensions, want %d", i, len(vectors[i]), dims)
		}
		blob, err := sqlite_vec.SerializeFloat32(vectors[i])
		if err != nil {
			return fmt.Errorf("serialize embedding: %w", err)
		}
		if _, err := stmt.ExecContext(ctx, i+1, blob, chunk); err != nil {
			return fmt.Errorf("insert chunk %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit index write: %w", err)
	}
	return nil
}

// generations lists existing generation numbers in ascending order.
func (s *Store) generations(ctx context.Context) ([]int64, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name LIKE ?`, tablePrefix+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("list index generations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var generations []int64
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("list index generations: %w", err)
		}
		generation, ok := parseTableName(name)
		if !ok {
			continue
		}
		generations = append(generations, generation)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list index generations: %w", err)
	}

	slices.Sort(generations)
	return generations, nil
}

func (s *Store) dropGeneration(ctx context.Context, generation int64) error {
	if _, err := s.db.ExecContext(ctx, "DROP TABLE IF EXISTS "+tableName(generation)); err != nil {
		return fmt.Errorf("drop index generation %d: %w", generation, err)
	}
	s.logger.Debug("course index generation dropped", slog.Int64("generation", generation))
	return nil
}

func tableName(generation int64) string {
	return tablePrefix + strconv.FormatInt(generation, 10)
}

// parseTableName accepts only the virtual table itself, not the shadow
// tables sqlite-vec creates next to it (courses_g3_chunks and friends).
func parseTableName(name string) (int64, bool) {
	suffix, ok := strings.CutPrefix(name, tablePrefix)
	if !ok || suffix == "" {
		return 0, false
	}
	generation, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil || generation <= 0 {
		return 0, false
	}
	return generation, true
}
