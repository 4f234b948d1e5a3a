package catalog

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/course-tutor/internal/domain"
)

type RenderOptions struct {
	// Snapshot describes the suggestion index; nil hides the index line.
	Snapshot   *domain.IndexSnapshot
	Now        time.Time
	StaleAfter time.Duration
}

func renderView(catalog domain.Catalog, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Course Catalog"),
		s.header.Render(fmt.Sprintf("courses: %d", len(catalog))),
	}
	if opts.Snapshot != nil {
		lines = append(lines, indexLine(*opts.Snapshot, opts, s))
	}

	if catalog.Empty() {
		lines = append(lines, s.empty.Render("No courses available. The platform may be unreachable."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	entries := make([]string, 0, len(catalog))
	for i, entry := range catalog {
		entries = append(entries, lipgloss.JoinVertical(lipgloss.Left,
			s.course.Render(fmt.Sprintf("%2d. %s", i+1, entry.Name)),
			s.link.Render("    "+entry.BaseURL),
		))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, entries...)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func indexLine(snapshot domain.IndexSnapshot, opts RenderOptions, s styles) string {
	if snapshot.Empty() {
		return s.empty.Render("index: not built")
	}

	line := s.index.Render(fmt.Sprintf("index: generation %d, %d courses, synced %s",
		snapshot.Generation, len(snapshot.Courses), formatSynced(snapshot.SyncedAt, opts.Now)))
	if !opts.Now.IsZero() && snapshot.IsStale(opts.Now, opts.StaleAfter) {
		line += " " + s.warning.Render("[stale]")
	}
	return line
}

func formatSynced(syncedAt time.Time, now time.Time) string {
	if syncedAt.IsZero() {
		return "never"
	}
	if now.IsZero() {
		return syncedAt.Format(time.RFC3339)
	}

	elapsed := now.Sub(syncedAt)
	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		return pluralize(int(elapsed.Minutes()), "minute") + " ago"
	case elapsed < 48*time.Hour:
		return pluralize(int(elapsed.Hours()), "hour") + " ago"
	default:
		return pluralize(int(elapsed.Hours()/24), "day") + " ago"
	}
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
