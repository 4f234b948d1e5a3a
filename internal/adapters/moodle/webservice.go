package moodle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/bnema/course-tutor/internal/domain"
	"github.com/bnema/course-tutor/internal/ports"
)

const (
	DefaultWebServicePath = "/webservice/rest/server.php"
	coursesFunction       = "core_course_get_courses"
	siteCourseID          = 1

	defaultMaxRetries = 3
	defaultBackoff    = 500 * time.Millisecond
	maxResponseBytes  = 10 << 20
)

// WebServiceClient talks to the platform's token-authenticated REST API.
type WebServiceClient struct {
	BaseURL    string
	Path       string
	Token      string
	HTTPClient *http.Client
	Timeout    time.Duration
	MaxRetries uint64
	Backoff    time.Duration
	Logger     *slog.Logger
}

var _ ports.CourseDirectory = (*WebServiceClient)(nil)

type webServiceCourse struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullname"`
}

type webServiceException struct {
	Exception string `json:"exception"`
	ErrorCode string `json:"errorcode"`
	Message   string `json:"message"`
}

// Courses lists every course except the site front page.
func (c *WebServiceClient) Courses(ctx context.Context) ([]domain.CourseRecord, error) {
	if c.Token == "" {
		return nil, errors.New("web service token is required")
	}

	path := c.Path
	if path == "" {
		path = DefaultWebServicePath
	}
	endpoint, err := buildURL(c.BaseURL, path)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("wstoken", c.Token)
	query.Set("wsfunction", coursesFunction)
	query.Set("moodlewsrestformat", "json")

	var body []byte
	backoff := retry.WithMaxRetries(c.maxRetries(), retry.NewExponential(c.backoff()))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		data, fetchErr := c.fetch(ctx, endpoint+"?"+query.Encode())
		if fetchErr != nil {
			c.logger().Debug("web service call failed", slog.String("function", coursesFunction), slog.Any("error", fetchErr))
			return fetchErr
		}
		body = data
		return nil
	})
	if err != nil {
		return nil, err
	}

	return decodeCourses(body)
}

func (c *WebServiceClient) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create web service request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, retry.RetryableError(fmt.Errorf("%w: %s: %w", domain.ErrNetwork, coursesFunction, err))
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, retry.RetryableError(fmt.Errorf("%w: read %s response: %w", domain.ErrNetwork, coursesFunction, err))
	}

	statusErr := fmt.Errorf("%w: %s: status %d", domain.ErrNetwork, coursesFunction, resp.StatusCode)
	switch {
	case resp.StatusCode >= http.StatusInternalServerError, resp.StatusCode == http.StatusTooManyRequests:
		return nil, retry.RetryableError(statusErr)
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return nil, statusErr
	}
	return data, nil
}

func decodeCourses(body []byte) ([]domain.CourseRecord, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var exception webServiceException
		if err := json.Unmarshal(trimmed, &exception); err != nil {
			return nil, fmt.Errorf("decode web service response: %w", err)
		}
		if exception.Exception != "" || exception.ErrorCode != "" {
			return nil, fmt.Errorf("web service %s: %s (%s)", coursesFunction, exception.Message, exception.ErrorCode)
		}
		return nil, fmt.Errorf("web service %s: unexpected object response", coursesFunction)
	}

	var payload []webServiceCourse
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return nil, fmt.Errorf("decode web service response: %w", err)
	}

	courses := make([]domain.CourseRecord, 0, len(payload))
	for _, course := range payload {
		if course.ID == siteCourseID {
			continue
		}
		courses = append(courses, domain.CourseRecord{ID: course.ID, FullName: course.FullName})
	}
	return courses, nil
}

func (c *WebServiceClient) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

func (c *WebServiceClient) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *WebServiceClient) maxRetries() uint64 {
	if c.MaxRetries == 0 {
		return defaultMaxRetries
	}
	return c.MaxRetries
}

func (c *WebServiceClient) backoff() time.Duration {
	if c.Backoff <= 0 {
		return defaultBackoff
	}
	return c.Backoff
}

func (c *WebServiceClient) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
