package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/course-tutor/internal/application"
)

const catalogPage = `<html><body>
<div class="coursebox"><a class="aalink" href="/course/view.php?id=7">Git e GitHub</a></div>
<div class="coursebox"><a class="aalink" href="/course/view.php?id=8"> Python </a></div>
</body></html>`

func TestVersionPrintsBuildVersion(t *testing.T) {
	isolateEnv(t)

	stdout, _, err := executeCLI(t, "version")

	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestCredentialsSetRequiresValueFlag(t *testing.T) {
	isolateEnv(t)

	_, _, err := executeCLI(t, "credentials", "set", "--name", "platform/password")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"value\" not set")
}

func TestCredentialsSetThenRemoveUsesFileFallback(t *testing.T) {
	root := isolateEnv(t)
	secretPath := filepath.Join(root, "config", "course-tutor", "secrets", "course-tutor", "platform", "password")

	stdout, _, err := executeCLI(t, "credentials", "set", "--name", "platform/password", "--value", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "stored course-tutor/platform/password\n", stdout)

	data, err := os.ReadFile(secretPath)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", string(data))

	stdout, _, err = executeCLI(t, "credentials", "remove", "--name", "platform/password")
	require.NoError(t, err)
	assert.Equal(t, "removed course-tutor/platform/password\n", stdout)
	assert.NoFileExists(t, secretPath)
}

func TestCoursesJSONOutput(t *testing.T) {
	isolateEnv(t)
	platform := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, catalogPage)
	}))
	t.Cleanup(platform.Close)
	t.Setenv("TUTOR_PLATFORM_BASE_URL", platform.URL)

	stdout, _, err := executeCLI(t, "courses", "--json")
	require.NoError(t, err)

	var entries []courseJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
	assert.Equal(t, []courseJSON{
		{Name: "Git e GitHub", URL: platform.URL + "/course/view.php?id=7"},
		{Name: "Python", URL: platform.URL + "/course/view.php?id=8"},
	}, entries)
}

func TestCoursesRendersCatalog(t *testing.T) {
	isolateEnv(t)
	platform := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, catalogPage)
	}))
	t.Cleanup(platform.Close)
	t.Setenv("TUTOR_PLATFORM_BASE_URL", platform.URL)

	stdout, _, err := executeCLI(t, "courses")

	require.NoError(t, err)
	assert.Contains(t, stdout, "courses: 2")
	assert.Contains(t, stdout, "Git e GitHub")
	assert.Contains(t, stdout, "index: not built")
}

func TestCoursesRequiresBaseURL(t *testing.T) {
	isolateEnv(t)

	_, _, err := executeCLI(t, "courses")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "platform.base_url")
}

func TestAskReportsMissingConfiguration(t *testing.T) {
	isolateEnv(t)
	t.Setenv("TUTOR_PLATFORM_BASE_URL", "https://ead.example")

	_, _, err := executeCLI(t, "ask", "--no-spinner", "liste os cursos")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reasoning.api_key")
}

func TestAskGreetingAnswersWithoutNetwork(t *testing.T) {
	isolateEnv(t)
	configurePlatform(t, "http://127.0.0.1:1")
	t.Setenv("TUTOR_REASONING_BASE_URL", "http://127.0.0.1:1/v1")

	stdout, _, err := executeCLI(t, "ask", "--no-spinner", "oi")

	require.NoError(t, err)
	assert.Equal(t, application.GreetingReply+"\n", stdout)
}

func TestAskDirectQuestionUsesCatalogAndModel(t *testing.T) {
	isolateEnv(t)
	platform := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, catalogPage)
	}))
	t.Cleanup(platform.Close)

	var mu sync.Mutex
	var prompts []string
	model := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		prompts = append(prompts, string(body))
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"c1","object":"chat.completion","choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"Temos Git e GitHub e Python."}}]}`)
	}))
	t.Cleanup(model.Close)

	configurePlatform(t, platform.URL)
	t.Setenv("TUTOR_REASONING_BASE_URL", model.URL+"/v1")

	stdout, _, err := executeCLI(t, "ask", "--no-spinner", "liste", "os", "cursos")

	require.NoError(t, err)
	assert.Equal(t, "Temos Git e GitHub e Python.\n", stdout)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "Git e GitHub: "+platform.URL+"/course/view.php?id=7")
	assert.Contains(t, prompts[0], "liste os cursos")
}

func isolateEnv(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(root, "cache"))
	// No pass binary: secrets go to the file fallback.
	t.Setenv("PATH", filepath.Join(root, "bin"))
	for _, env := range os.Environ() {
		if name, _, ok := strings.Cut(env, "="); ok && strings.HasPrefix(name, "TUTOR_") {
			t.Setenv(name, "")
			require.NoError(t, os.Unsetenv(name))
		}
	}
	return root
}

func configurePlatform(t *testing.T, baseURL string) {
	t.Helper()

	t.Setenv("TUTOR_PLATFORM_BASE_URL", baseURL)
	t.Setenv("TUTOR_PLATFORM_USERNAME", "ana")
	t.Setenv("TUTOR_PLATFORM_PASSWORD", "s3cret")
	t.Setenv("TUTOR_REASONING_API_KEY", "sk-test")
	t.Setenv("TUTOR_LOG_LEVEL", "error")
}

func executeCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
