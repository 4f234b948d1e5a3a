package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "lower-cases", raw: "Git e GitHub", want: "git e github"},
		{name: "trims", raw: "  Docker  ", want: "docker"},
		{name: "collapses internal whitespace", raw: "Desenvolvimento \t  Backend\n(APIs)", want: "desenvolvimento backend (apis)"},
		{name: "keeps punctuation", raw: "C#: Fundamentos!", want: "c#: fundamentos!"},
		{name: "empty", raw: "   ", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeName(tc.raw))
		})
	}
}

func TestNormalizeNameIsIdempotent(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"Git e GitHub", "  IA   Generativa ", "Ação e Reação", "", "C#: Fundamentos!"} {
		once := NormalizeName(raw)
		assert.Equal(t, once, NormalizeName(once), "raw %q", raw)
	}
}

func TestStripPunctuationIsNotAppliedByNormalizeName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Git e GitHub básico", StripPunctuation("Git e GitHub: básico!"))
	assert.NotEqual(t, NormalizeName("git: básico"), NormalizeName(StripPunctuation("git: básico")))
}

func TestResolveCourseExactMatchWinsOverEarlierSubstring(t *testing.T) {
	t.Parallel()

	catalog := Catalog{
		{Name: "Git e GitHub Avançado", BaseURL: "https://lms.test/course/view.php?id=9"},
		{Name: "Git e GitHub", BaseURL: "https://lms.test/course/view.php?id=5"},
	}

	got, err := ResolveCourse("  GIT e   github ", catalog)
	require.NoError(t, err)
	assert.Equal(t, ResolvedCourse{DisplayName: "Git e GitHub", BaseURL: "https://lms.test/course/view.php?id=5"}, got)
}

func TestResolveCourseSingleSubstringMatch(t *testing.T) {
	t.Parallel()

	catalog := Catalog{
		{Name: "Docker", BaseURL: "https://lms.test/course/view.php?id=2"},
		{Name: "Git e GitHub", BaseURL: "https://lms.test/course/view.php?id=5"},
	}

	got, err := ResolveCourse("git", catalog)
	require.NoError(t, err)
	assert.Equal(t, "Git e GitHub", got.DisplayName)
	assert.Equal(t, "https://lms.test/course/view.php?id=5", got.BaseURL)
}

func TestResolveCourseSubstringTieBreakUsesCatalogOrder(t *testing.T) {
	t.Parallel()

	// The longer, later name is the "better" textual match; catalog order still wins.
	catalog := Catalog{
		{Name: "Introdução a Redes e Git", BaseURL: "https://lms.test/course/view.php?id=1"},
		{Name: "Git", BaseURL: "https://lms.test/course/view.php?id=2"},
		{Name: "Git Flow", BaseURL: "https://lms.test/course/view.php?id=3"},
	}

	got, err := ResolveCourse("gi", catalog)
	require.NoError(t, err)
	assert.Equal(t, "Introdução a Redes e Git", got.DisplayName)

	reversed := Catalog{catalog[2], catalog[1], catalog[0]}
	got, err = ResolveCourse("gi", reversed)
	require.NoError(t, err)
	assert.Equal(t, "Git Flow", got.DisplayName)
}

func TestResolveCourseDuplicateNamesFirstWins(t *testing.T) {
	t.Parallel()

	catalog := Catalog{
		{Name: "Python", BaseURL: "https://lms.test/course/view.php?id=7"},
		{Name: "Python", BaseURL: "https://lms.test/course/view.php?id=8"},
	}

	got, err := ResolveCourse("python", catalog)
	require.NoError(t, err)
	assert.Equal(t, "https://lms.test/course/view.php?id=7", got.BaseURL)
}

func TestResolveCourseNotFound(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		query   string
		catalog Catalog
	}{
		{name: "empty catalog", query: "git", catalog: nil},
		{name: "empty catalog with empty query", query: "", catalog: Catalog{}},
		{name: "no match", query: "kubernetes", catalog: Catalog{{Name: "Git e GitHub", BaseURL: "https://lms.test/course/view.php?id=5"}}},
		{name: "punctuation is significant", query: "git, github", catalog: Catalog{{Name: "Git e GitHub", BaseURL: "https://lms.test/course/view.php?id=5"}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ResolveCourse(tc.query, tc.catalog)
			require.ErrorIs(t, err, ErrCourseNotFound)
		})
	}
}

func TestExtractionResultFound(t *testing.T) {
	t.Parallel()

	assert.True(t, Summary("texto").Found())
	assert.False(t, NotFound(OutcomeEmptyContent, "").Found())
	assert.Equal(t, "https://lms.test", NotFound(OutcomeNoSummaryLink, "https://lms.test").Detail)
}
