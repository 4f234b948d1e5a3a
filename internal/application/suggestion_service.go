package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/bnema/course-tutor/internal/domain"
	"github.com/bnema/course-tutor/internal/ports"
)

const (
	DefaultRefreshInterval = 24 * time.Hour
	suggestionTopK         = 5
)

type SuggestionOptions struct {
	// FAQ replaces the built-in platform knowledge base when set.
	FAQ string
}

type loadedIndex struct {
	index    ports.CourseIndex
	snapshot domain.IndexSnapshot
}

// SuggestionService answers course recommendation questions from a vector
// index over the course names. Readers always see a fully built index: a
// refresh builds a new one aside and swaps the pointer when done.
type SuggestionService struct {
	directory ports.CourseDirectory
	builder   ports.IndexBuilder
	snapshots ports.SnapshotRepository
	reasoner  ports.Reasoner
	clock     ports.Clock
	metrics   ports.Metrics
	logger    *slog.Logger
	faq       string

	current   atomic.Pointer[loadedIndex]
	refreshMu sync.Mutex
}

func NewSuggestionService(
	directory ports.CourseDirectory,
	builder ports.IndexBuilder,
	snapshots ports.SnapshotRepository,
	reasoner ports.Reasoner,
	clock ports.Clock,
	metrics ports.Metrics,
	logger *slog.Logger,
	options SuggestionOptions,
) *SuggestionService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if metrics == nil {
		metrics = ports.NoopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	faq := options.FAQ
	if faq == "" {
		faq = suggestionFAQ
	}

	return &SuggestionService{
		directory: directory,
		builder:   builder,
		snapshots: snapshots,
		reasoner:  reasoner,
		clock:     clock,
		metrics:   metrics,
		logger:    logger,
		faq:       faq,
	}
}

func (s *SuggestionService) Ready() bool {
	return s.current.Load() != nil
}

// Snapshot describes the index currently served, if any.
func (s *SuggestionService) Snapshot() (domain.IndexSnapshot, bool) {
	loaded := s.current.Load()
	if loaded == nil {
		return domain.IndexSnapshot{}, false
	}
	return loaded.snapshot, true
}

// Load restores the index recorded by the last persisted snapshot. A missing
// snapshot is not an error; the service stays not ready until a refresh.
func (s *SuggestionService) Load(ctx context.Context) error {
	snapshot, err := s.snapshots.Load(ctx)
	if err != nil {
		return fmt.Errorf("load index snapshot: %w", err)
	}
	if snapshot.Empty() {
		return nil
	}

	index, err := s.builder.Open(ctx, snapshot)
	if err != nil {
		return fmt.Errorf("open index generation %d: %w", snapshot.Generation, err)
	}

	s.current.Store(&loadedIndex{index: index, snapshot: snapshot})
	s.logger.Info("course index restored",
		slog.Int64("generation", snapshot.Generation),
		slog.Int("courses", len(snapshot.Courses)),
	)
	return nil
}

// Refresh rebuilds the index from the platform's course list. It reports
// whether a new index was swapped in; an unchanged course set is skipped.
func (s *SuggestionService) Refresh(ctx context.Context) (bool, error) {
	ctx, span := tracer.Start(ctx, "SuggestionService.Refresh")
	defer span.End()

	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	records, err := s.directory.Courses(ctx)
	if err != nil {
		s.metrics.RecordIndexRefresh("failed")
		return false, fmt.Errorf("fetch course names: %w", err)
	}

	names := make([]string, 0, len(records))
	for _, record := range records {
		if name := strings.TrimSpace(record.FullName); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		s.metrics.RecordIndexRefresh("failed")
		return false, errors.New("platform returned no courses")
	}
	span.SetAttributes(attribute.Int("courses", len(names)))

	if loaded := s.current.Load(); loaded != nil && sameCourses(loaded.snapshot.Courses, names) {
		s.metrics.RecordIndexRefresh("skipped")
		s.logger.Debug("course set unchanged, index kept", slog.Int64("generation", loaded.snapshot.Generation))
		return false, nil
	}

	chunks := ChunkLines(CourseLines(names), suggestionChunkSize, suggestionChunkOverlap)
	index, snapshot, err := s.builder.Build(ctx, chunks)
	if err != nil {
		s.metrics.RecordIndexRefresh("failed")
		return false, fmt.Errorf("build course index: %w", err)
	}
	snapshot.SyncedAt = s.clock.Now()
	snapshot.Courses = names

	if err := s.snapshots.Save(ctx, snapshot); err != nil {
		// The new index still serves this process; only a restart loses it.
		s.logger.Warn("persist index snapshot", slog.Any("error", err))
	}

	s.current.Store(&loadedIndex{index: index, snapshot: snapshot})
	s.metrics.RecordIndexRefresh("succeeded")
	s.logger.Info("course index refreshed",
		slog.Int64("generation", snapshot.Generation),
		slog.Int("courses", len(names)),
		slog.Int("chunks", len(chunks)),
	)
	return true, nil
}

// Run refreshes immediately and then every interval until ctx is done.
// Refresh failures are logged and retried on the next tick.
func (s *SuggestionService) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := s.Refresh(ctx); err != nil && ctx.Err() == nil {
			s.logger.Error("course index refresh failed", slog.Any("error", err))
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Suggest answers prompt from the nearest course chunks plus the FAQ.
func (s *SuggestionService) Suggest(ctx context.Context, prompt string) (string, error) {
	loaded := s.current.Load()
	if loaded == nil {
		return "", domain.ErrIndexNotReady
	}

	ctx, span := tracer.Start(ctx, "SuggestionService.Suggest")
	defer span.End()

	chunks, err := loaded.index.Search(ctx, prompt, suggestionTopK)
	if err != nil {
		return "", fmt.Errorf("search course index: %w", err)
	}

	answer, err := s.reasoner.Run(ctx, ports.ReasoningRequest{
		System: fmt.Sprintf(suggestionSystemPrompt, s.faq, strings.Join(chunks, "\n")),
		Prompt: prompt,
	})
	if err != nil {
		return "", fmt.Errorf("suggest courses: %w", err)
	}
	return answer, nil
}

func sameCourses(previous []string, next []string) bool {
	if len(previous) != len(next) {
		return false
	}
	a := slices.Clone(previous)
	b := slices.Clone(next)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}
