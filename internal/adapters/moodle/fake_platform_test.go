package moodle

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const (
	fakeUser     = "ana"
	fakePassword = "s3cret"
	fakeToken    = "tok-42"
	fakeCookie   = "MoodleSession"
)

// fakePlatform serves a minimal Moodle: a login form, a catalog and a couple
// of courses. Course and content pages are only served to logged-in sessions.
type fakePlatform struct {
	server *httptest.Server
	pages  map[string]string
}

func newFakePlatform(t *testing.T) *fakePlatform {
	t.Helper()

	platform := &fakePlatform{pages: map[string]string{}}
	mux := http.NewServeMux()
	mux.HandleFunc("/login/index.php", platform.login)
	mux.HandleFunc("/course/index.php", func(w http.ResponseWriter, r *http.Request) {
		writeHTML(w, catalogHTML)
	})
	mux.HandleFunc("/", platform.page)

	platform.server = httptest.NewServer(mux)
	t.Cleanup(platform.server.Close)
	return platform
}

func (p *fakePlatform) config() Config {
	return Config{
		BaseURL:   p.server.URL,
		Username:  fakeUser,
		Password:  fakePassword,
		Timeout:   time.Second,
		Transport: p.server.Client().Transport,
	}
}

func (p *fakePlatform) url(path string) string {
	return p.server.URL + path
}

// serve registers body for an exact request URI (path plus query).
func (p *fakePlatform) serve(requestURI string, body string) {
	p.pages[requestURI] = body
}

func (p *fakePlatform) login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		writeHTML(w, loginHTML)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if r.PostForm.Get("username") != fakeUser ||
		r.PostForm.Get("password") != fakePassword ||
		r.PostForm.Get("logintoken") != fakeToken {
		writeHTML(w, `<html><body><div class="alert alert-danger">Invalid login, please try again (error)</div></body></html>`)
		return
	}
	http.SetCookie(w, &http.Cookie{Name: fakeCookie, Value: "authenticated", Path: "/"})
	http.Redirect(w, r, "/my/", http.StatusSeeOther)
}

func (p *fakePlatform) page(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/my/" {
		writeHTML(w, `<html><body>Dashboard</body></html>`)
		return
	}
	cookie, err := r.Cookie(fakeCookie)
	if err != nil || cookie.Value != "authenticated" {
		http.Redirect(w, r, "/login/index.php", http.StatusSeeOther)
		return
	}
	body, ok := p.pages[r.URL.RequestURI()]
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeHTML(w, body)
}

func writeHTML(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(body))
}

const loginHTML = `<html><body>
<form action="/login/index.php" method="post">
  <input type="hidden" name="anchor" value="">
  <input type="hidden" name="logintoken" value="` + fakeToken + `">
  <input type="text" name="username">
  <input type="password" name="password">
</form>
</body></html>`

const catalogHTML = `<html><body>
<div class="courses">
  <div class="coursebox"><a class="aalink" href="/course/view.php?id=7"> Git e GitHub </a></div>
  <div class="coursebox"><a class="aalink" href="/course/view.php?id=8">Python para Iniciantes</a></div>
  <div class="coursebox"><a class="aalink" href="/course/view.php?id=9">Banco de Dados</a></div>
  <div class="coursebox"><a class="other" href="/course/view.php?id=10">Not a catalog link</a></div>
</div>
</body></html>`

func slowHandler(release <-chan struct{}) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
}
