package moodle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/course-tutor/internal/domain"
	"github.com/bnema/course-tutor/internal/ports"
)

// staticSession serves canned pages keyed by URL and records fetches.
type staticSession struct {
	pages   map[string]string
	fetched []string
	closed  bool
}

func (s *staticSession) Fetch(_ context.Context, rawURL string) (ports.Page, error) {
	s.fetched = append(s.fetched, rawURL)
	body, ok := s.pages[rawURL]
	if !ok {
		return ports.Page{}, domain.ErrNetwork
	}
	return ports.Page{URL: rawURL, Body: []byte(body)}, nil
}

func (s *staticSession) Close() error {
	s.closed = true
	return nil
}

func pageOf(url string, body string) ports.Page {
	return ports.Page{URL: url, Body: []byte(body)}
}

const (
	courseURL  = "https://ead.example/course/view.php?id=7"
	summaryURL = "https://ead.example/mod/page/view.php?id=70"
)

var gitCourse = domain.ResolvedCourse{DisplayName: "Git e GitHub", BaseURL: courseURL}

func TestExtractJoinsParagraphsOfSummaryPage(t *testing.T) {
	t.Parallel()

	session := &staticSession{pages: map[string]string{
		courseURL: `<a href="/mod/page/view.php?id=69">Avisos</a>
			<a href="/mod/page/view.php?id=70"> EMENTA do curso </a>`,
		summaryURL: `<div id="region-main"><div class="box">
			<p> Controle de versão com Git. </p><p>Colaboração no GitHub.</p></div></div>`,
	}}

	result := NewExtractor(nil, nil, nil).Extract(context.Background(), session, gitCourse)

	assert.Equal(t, domain.OutcomeSummary, result.Outcome)
	assert.Equal(t, "Controle de versão com Git.\n\nColaboração no GitHub.", result.Text)
	assert.Equal(t, []string{courseURL, summaryURL}, session.fetched)
	assert.False(t, session.closed)
}

func TestExtractFallsThroughContainerChain(t *testing.T) {
	t.Parallel()

	session := &staticSession{pages: map[string]string{
		courseURL: `<a href="` + summaryURL + `">Ementa</a>`,
		summaryURL: `<div id="region-main"><div class="mod_page_content">
			<h3>Objetivos</h3><ul><li>Branches</li><li>Merge</li></ul>
			<script>var x = 1;</script></div></div>`,
	}}

	result := NewExtractor(nil, nil, nil).Extract(context.Background(), session, gitCourse)

	assert.Equal(t, domain.OutcomeSummary, result.Outcome)
	assert.Equal(t, "Objetivos\nBranches\nMerge", result.Text)
}

func TestExtractUsesInjectedSelectors(t *testing.T) {
	t.Parallel()

	session := &staticSession{pages: map[string]string{
		courseURL:  `<a href="` + summaryURL + `">Ementa</a>`,
		summaryURL: `<main><article><p>Custom layout</p></article></main><div id="region-main"><p>ignored</p></div>`,
	}}

	result := NewExtractor(nil, []ContentSelector{Within("main", "article")}, nil).
		Extract(context.Background(), session, gitCourse)

	assert.Equal(t, domain.Summary("Custom layout"), result)
}

func TestExtractOutcomes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pages   map[string]string
		want    domain.ExtractionOutcome
		wantDet string
	}{
		{
			name:  "no candidate link",
			pages: map[string]string{courseURL: `<a href="/course/view.php?id=7#section-1">Semana 1</a><a href="/mod/forum/view.php?id=3">Ementa</a>`},
			want:  domain.OutcomeNoSummaryLink,
		},
		{
			name:  "content page link without keyword",
			pages: map[string]string{courseURL: `<a href="/mod/page/view.php?id=70">Avisos</a>`},
			want:  domain.OutcomeNoSummaryLink,
		},
		{
			name:    "section zero anchor of the course itself",
			pages:   map[string]string{courseURL: `<a href="#section-0">Geral</a>`},
			want:    domain.OutcomeNoSummaryLink,
			wantDet: courseURL,
		},
		{
			name: "empty content page",
			pages: map[string]string{
				courseURL:  `<a href="/mod/page/view.php?id=70">Ementa</a>`,
				summaryURL: `<div id="region-main"><div class="box">   </div></div>`,
			},
			want:    domain.OutcomeEmptyContent,
			wantDet: summaryURL,
		},
		{
			name: "no container",
			pages: map[string]string{
				courseURL:  `<a href="/mod/page/view.php?id=70">Ementa</a>`,
				summaryURL: `<div id="page">text</div>`,
			},
			want:    domain.OutcomeEmptyContent,
			wantDet: summaryURL,
		},
		{
			name:  "content page unreachable",
			pages: map[string]string{courseURL: `<a href="/mod/page/view.php?id=70">Ementa</a>`},
			want:  domain.OutcomeNetworkError,
		},
		{
			name:  "course page unreachable",
			pages: map[string]string{},
			want:  domain.OutcomeNetworkError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := NewExtractor(nil, nil, nil).Extract(context.Background(), &staticSession{pages: tt.pages}, gitCourse)

			assert.Equal(t, tt.want, result.Outcome)
			assert.Empty(t, result.Text)
			if tt.wantDet != "" {
				assert.Equal(t, tt.wantDet, result.Detail)
			}
		})
	}
}

func TestExtractHonoursConfiguredKeywords(t *testing.T) {
	t.Parallel()

	session := &staticSession{pages: map[string]string{
		courseURL:  `<a href="/mod/page/view.php?id=70">Syllabus</a>`,
		summaryURL: `<div id="region-main"><p>English syllabus</p></div>`,
	}}

	result := NewExtractor([]string{" SYLLABUS "}, nil, nil).Extract(context.Background(), session, gitCourse)
	assert.Equal(t, domain.Summary("English syllabus"), result)
}

func TestExtractAgainstAuthenticatedPlatform(t *testing.T) {
	t.Parallel()

	platform := newFakePlatform(t)
	platform.serve("/course/view.php?id=7", `<html><body>
		<a href="/course/view.php?id=7#section-1">Tópico 1</a>
		<a href="/mod/page/view.php?id=70">Ementa</a></body></html>`)
	platform.serve("/mod/page/view.php?id=70", `<html><body><div id="region-main">
		<div class="box generalbox"><p>Aprenda Git e GitHub do zero.</p></div></div></body></html>`)

	cfg := platform.config()
	catalog := NewCatalogFetcher(cfg, nil).FetchCatalog(context.Background())
	course, err := domain.ResolveCourse("git e github", catalog)
	require.NoError(t, err)

	session, err := NewAuthenticator(cfg, nil).Authenticate(context.Background())
	require.NoError(t, err)
	defer func() { _ = session.Close() }()

	result := NewExtractor(nil, nil, nil).Extract(context.Background(), session, course)

	assert.Equal(t, domain.Summary("Aprenda Git e GitHub do zero."), result)
	assert.Equal(t, "Git e GitHub", course.DisplayName)
}
