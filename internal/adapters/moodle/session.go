package moodle

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/bnema/course-tutor/internal/domain"
	"github.com/bnema/course-tutor/internal/ports"
)

// Session is a cookie-carrying HTTP client with its own connection pool.
type Session struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	closed    atomic.Bool
}

var _ ports.Session = (*Session)(nil)

func NewSession(cfg Config) (*Session, error) {
	cfg = cfg.withDefaults()

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport.(*http.Transport).Clone()
	}

	return &Session{
		client:    &http.Client{Jar: jar, Transport: transport},
		timeout:   cfg.Timeout,
		userAgent: cfg.UserAgent,
	}, nil
}

func (s *Session) Fetch(ctx context.Context, rawURL string) (ports.Page, error) {
	return s.do(ctx, http.MethodGet, rawURL, nil)
}

func (s *Session) postForm(ctx context.Context, rawURL string, values url.Values) (ports.Page, error) {
	return s.do(ctx, http.MethodPost, rawURL, values)
}

// Close releases pooled connections. Calling it more than once is a no-op.
func (s *Session) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	s.client.CloseIdleConnections()
	return nil
}

func (s *Session) do(ctx context.Context, method string, rawURL string, form url.Values) (ports.Page, error) {
	if s.closed.Load() {
		return ports.Page{}, domain.ErrSessionClosed
	}

	requestCtx, cancel := s.requestContext(ctx)
	defer cancel()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(requestCtx, method, rawURL, body)
	if err != nil {
		return ports.Page{}, fmt.Errorf("create %s request: %w", strings.ToLower(method), err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return ports.Page{}, fmt.Errorf("%w: %s %s: %w", domain.ErrNetwork, method, rawURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return ports.Page{}, fmt.Errorf("%w: %s %s: status %d", domain.ErrNetwork, method, rawURL, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return ports.Page{}, fmt.Errorf("%w: read %s: %w", domain.ErrNetwork, rawURL, err)
	}

	return ports.Page{URL: resp.Request.URL.String(), Body: data}, nil
}

func (s *Session) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}
