// Package toml persists the course index snapshot manifest.
package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/bnema/course-tutor/internal/domain"
	"github.com/bnema/course-tutor/internal/ports"
)

const (
	snapshotFileMode = 0o600
	snapshotDirMode  = 0o700
	tempFilePattern  = ".index-*.toml.tmp"
)

type SnapshotRepository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.SnapshotRepository = (*SnapshotRepository)(nil)

func NewSnapshotRepository(path string) (*SnapshotRepository, error) {
	if path == "" {
		return nil, errors.New("index snapshot path is empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve index snapshot path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	return &SnapshotRepository{path: absPath, mu: lockForPath(absPath)}, nil
}

// Load returns an empty snapshot when no manifest has been written yet.
func (r *SnapshotRepository) Load(ctx context.Context) (domain.IndexSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.IndexSnapshot{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.IndexSnapshot{}, nil
		}
		return domain.IndexSnapshot{}, fmt.Errorf("read index snapshot: %w", err)
	}

	var file snapshotSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return domain.IndexSnapshot{}, fmt.Errorf("decode index snapshot: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return domain.IndexSnapshot{}, err
	}

	return fromSchema(file), nil
}

func (r *SnapshotRepository) Save(ctx context.Context, snapshot domain.IndexSnapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file := toSchema(snapshot)
	file.applyDefaults()

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode index snapshot: %w", err)
	}
	return writeAtomic(r.path, data)
}

func writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), snapshotDirMode); err != nil {
		return fmt.Errorf("create index snapshot directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp index snapshot: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp index snapshot: %w", err)
	}
	if err := tempFile.Chmod(snapshotFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp index snapshot: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp index snapshot: %w", err)
	}
	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace index snapshot: %w", err)
	}

	cleanup = false
	return nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func toSchema(snapshot domain.IndexSnapshot) snapshotSchema {
	return snapshotSchema{
		SyncedAt:   formatTime(snapshot.SyncedAt),
		Generation: snapshot.Generation,
		Table:      snapshot.Table,
		Courses:    append([]string(nil), snapshot.Courses...),
	}
}

func fromSchema(file snapshotSchema) domain.IndexSnapshot {
	return domain.IndexSnapshot{
		SyncedAt:   parseTime(file.SyncedAt),
		Generation: file.Generation,
		Table:      file.Table,
		Courses:    file.Courses,
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339)
}
