package moodle

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/bnema/course-tutor/internal/domain"
	"github.com/bnema/course-tutor/internal/ports"
)

const loginPathMarker = "login/index.php"

// LoginCheck reports whether a login POST landed on a rejection page.
type LoginCheck func(finalURL string, body string) bool

// LoginRejected is the default LoginCheck. Moodle answers a bad login by
// re-rendering the login form with an error notice, so a final URL still on
// the login page combined with the word "error" in the body counts as a
// rejection. Bot challenges look the same and are reported the same way.
func LoginRejected(finalURL string, body string) bool {
	return strings.Contains(finalURL, loginPathMarker) &&
		strings.Contains(strings.ToLower(body), "error")
}

type Authenticator struct {
	config   Config
	rejected LoginCheck
	logger   *slog.Logger
}

var _ ports.Authenticator = (*Authenticator)(nil)

func NewAuthenticator(cfg Config, logger *slog.Logger) *Authenticator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Authenticator{config: cfg.withDefaults(), rejected: LoginRejected, logger: logger}
}

// WithLoginCheck swaps the rejection heuristic.
func (a *Authenticator) WithLoginCheck(check LoginCheck) *Authenticator {
	if check != nil {
		a.rejected = check
	}
	return a
}

func (a *Authenticator) Authenticate(ctx context.Context) (ports.Session, error) {
	loginURL, err := a.config.loginURL()
	if err != nil {
		return nil, err
	}

	session, err := NewSession(a.config)
	if err != nil {
		return nil, err
	}

	page, err := session.Fetch(ctx, loginURL)
	if err != nil {
		_ = session.Close()
		return nil, fmt.Errorf("fetch login page: %w", err)
	}

	form := url.Values{}
	form.Set("username", a.config.Username)
	form.Set("password", a.config.Password)
	form.Set("logintoken", loginToken(page.Body))

	result, err := session.postForm(ctx, loginURL, form)
	if err != nil {
		_ = session.Close()
		return nil, fmt.Errorf("submit login form: %w", err)
	}

	if a.rejected(result.URL, string(result.Body)) {
		_ = session.Close()
		a.logger.Warn("platform login rejected", slog.String("url", result.URL))
		return nil, domain.ErrInvalidCredentials
	}

	a.logger.Debug("platform login succeeded", slog.String("url", result.URL))
	return session, nil
}

func loginToken(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	token, _ := doc.Find(`input[type="hidden"][name="logintoken"]`).First().Attr("value")
	return token
}
