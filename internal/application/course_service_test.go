package application

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/course-tutor/internal/domain"
	"github.com/bnema/course-tutor/internal/ports"
	"github.com/bnema/course-tutor/internal/ports/mocks"
)

var testCatalog = domain.Catalog{
	{Name: "Git e GitHub", BaseURL: "https://ead.example/course/view.php?id=5"},
	{Name: "Python para Iniciantes", BaseURL: "https://ead.example/course/view.php?id=6"},
}

type courseServiceFixture struct {
	auth      *mocks.MockAuthenticator
	catalog   *mocks.MockCatalogFetcher
	extractor *mocks.MockContentExtractor
	session   *mocks.MockSession
	service   *CourseService
}

func newCourseServiceFixture(t *testing.T) courseServiceFixture {
	t.Helper()

	f := courseServiceFixture{
		auth:      mocks.NewMockAuthenticator(t),
		catalog:   mocks.NewMockCatalogFetcher(t),
		extractor: mocks.NewMockContentExtractor(t),
		session:   mocks.NewMockSession(t),
	}
	f.service = NewCourseService(f.auth, f.catalog, f.extractor, nil, nil)
	return f
}

func TestListCoursesRendersCatalog(t *testing.T) {
	f := newCourseServiceFixture(t)
	f.catalog.EXPECT().FetchCatalog(mockAnyContext()).Return(testCatalog).Once()

	got := f.service.ListCourses(context.Background())

	assert.Equal(t, "Cursos disponíveis:\n"+
		"Git e GitHub: https://ead.example/course/view.php?id=5\n"+
		"Python para Iniciantes: https://ead.example/course/view.php?id=6", got)
}

func TestListCoursesReportsUnavailableCatalog(t *testing.T) {
	f := newCourseServiceFixture(t)
	f.catalog.EXPECT().FetchCatalog(mockAnyContext()).Return(domain.Catalog{}).Once()

	assert.Equal(t, msgCatalogUnavailable, f.service.ListCourses(context.Background()))
}

func TestCatalogContext(t *testing.T) {
	f := newCourseServiceFixture(t)
	f.catalog.EXPECT().FetchCatalog(mockAnyContext()).Return(testCatalog).Once()
	f.catalog.EXPECT().FetchCatalog(mockAnyContext()).Return(nil).Once()

	assert.Equal(t, "Cursos encontrados na plataforma:\n"+
		"  - Git e GitHub: https://ead.example/course/view.php?id=5\n"+
		"  - Python para Iniciantes: https://ead.example/course/view.php?id=6",
		f.service.CatalogContext(context.Background()))
	assert.Equal(t, "Nenhum curso encontrado.", f.service.CatalogContext(context.Background()))
}

func TestSummarizeCourseResolvesBySubstringAndClosesSession(t *testing.T) {
	f := newCourseServiceFixture(t)
	resolved := domain.ResolvedCourse{DisplayName: "Git e GitHub", BaseURL: testCatalog[0].BaseURL}

	f.auth.EXPECT().Authenticate(mockAnyContext()).Return(f.session, nil).Once()
	f.catalog.EXPECT().FetchCatalog(mockAnyContext()).Return(testCatalog).Once()
	f.extractor.EXPECT().Extract(mockAnyContext(), f.session, resolved).
		Return(domain.Summary("Versionamento com Git.\n\nRepositórios no GitHub.")).Once()
	f.session.EXPECT().Close().Return(nil).Once()

	got := f.service.SummarizeCourse(context.Background(), "git")

	assert.Equal(t, "**Resumo do Curso Git e GitHub**:\n\nVersionamento com Git.\n\nRepositórios no GitHub.", got)
}

func TestSummarizeCourseClosesSessionExactlyOnceOnEveryPath(t *testing.T) {
	tests := []struct {
		name    string
		catalog domain.Catalog
		query   string
		result  *domain.ExtractionResult
		panics  bool
		want    string
	}{
		{name: "catalog unavailable", catalog: domain.Catalog{}, query: "git", want: msgCatalogForLookupFailed},
		{name: "course not found", catalog: testCatalog, query: "rust", want: "Curso 'rust' não encontrado na lista."},
		{name: "no summary link", catalog: testCatalog, query: "python", result: ptr(domain.NotFound(domain.OutcomeNoSummaryLink, "")), want: msgNoSummaryLink},
		{
			name: "section zero only", catalog: testCatalog, query: "python",
			result: ptr(domain.NotFound(domain.OutcomeNoSummaryLink, testCatalog[1].BaseURL)),
			want:   "Não foi possível extrair o resumo, mas o curso foi encontrado em: " + testCatalog[1].BaseURL,
		},
		{
			name: "empty content", catalog: testCatalog, query: "python",
			result: ptr(domain.NotFound(domain.OutcomeEmptyContent, "https://ead.example/mod/page/view.php?id=9")),
			want:   "Conteúdo de resumo não encontrado na página de detalhes para **Python para Iniciantes**. O texto extraído estava vazio.",
		},
		{
			name: "network error", catalog: testCatalog, query: "python",
			result: ptr(domain.NotFound(domain.OutcomeNetworkError, "timeout")),
			want:   "Erro de rede ao tentar acessar o curso. Detalhes: timeout",
		},
		{name: "extractor panics", catalog: testCatalog, query: "python", panics: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCourseServiceFixture(t)
			f.auth.EXPECT().Authenticate(mockAnyContext()).Return(f.session, nil).Once()
			f.catalog.EXPECT().FetchCatalog(mockAnyContext()).Return(tt.catalog).Once()
			f.session.EXPECT().Close().Return(nil).Once()

			switch {
			case tt.panics:
				f.extractor.EXPECT().Extract(mockAnyContext(), f.session, mockAnyValue()).
					RunAndReturn(func(context.Context, ports.Session, domain.ResolvedCourse) domain.ExtractionResult {
						panic("unexpected layout")
					}).Once()
				assert.Panics(t, func() { f.service.SummarizeCourse(context.Background(), tt.query) })
				return
			case tt.result != nil:
				f.extractor.EXPECT().Extract(mockAnyContext(), f.session, mockAnyValue()).Return(*tt.result).Once()
			}

			assert.Equal(t, tt.want, f.service.SummarizeCourse(context.Background(), tt.query))
		})
	}
}

func TestSummarizeCourseLoginFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "rejected", err: domain.ErrInvalidCredentials, want: msgLoginFailed},
		{name: "unreachable", err: fmt.Errorf("fetch login page: %w", domain.ErrNetwork), want: "Erro de rede ao tentar acessar o curso. Detalhes: fetch login page: platform unreachable"},
		{name: "unexpected", err: errors.New("cookie jar"), want: msgLoginFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCourseServiceFixture(t)
			f.auth.EXPECT().Authenticate(mockAnyContext()).Return(nil, tt.err).Once()

			assert.Equal(t, tt.want, f.service.SummarizeCourse(context.Background(), "git"))
		})
	}
}

func TestToolsDelegateToService(t *testing.T) {
	f := newCourseServiceFixture(t)
	f.catalog.EXPECT().FetchCatalog(mockAnyContext()).Return(testCatalog).Once()
	f.auth.EXPECT().Authenticate(mockAnyContext()).Return(nil, domain.ErrInvalidCredentials).Once()

	tools := f.service.Tools()
	assert.Len(t, tools, 2)
	assert.Equal(t, "listCourses", tools[0].Name)
	assert.Empty(t, tools[0].InputDescription)
	assert.Equal(t, "summarizeCourse", tools[1].Name)
	assert.NotEmpty(t, tools[1].InputDescription)

	listed, err := tools[0].Invoke(context.Background(), "")
	assert.NoError(t, err)
	assert.Contains(t, listed, "Git e GitHub")

	summary, err := tools[1].Invoke(context.Background(), "git")
	assert.NoError(t, err)
	assert.Equal(t, msgLoginFailed, summary)
}

func ptr[T any](value T) *T {
	return &value
}
