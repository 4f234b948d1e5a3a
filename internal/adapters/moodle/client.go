// Package moodle scrapes a Moodle-style learning platform: login, the public
// course catalog, course pages and the REST web service.
package moodle

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	DefaultLoginPath   = "/login/index.php"
	DefaultCatalogPath = "/course/index.php"
	DefaultTimeout     = 10 * time.Second

	maxPageBytes     = 5 << 20
	defaultUserAgent = "course-tutor/1.0"
)

type Config struct {
	BaseURL     string
	LoginPath   string
	CatalogPath string
	Username    string
	Password    string
	Timeout     time.Duration
	UserAgent   string
	// Transport overrides the per-session transport; nil clones http.DefaultTransport.
	Transport http.RoundTripper
}

func (c Config) withDefaults() Config {
	if c.LoginPath == "" {
		c.LoginPath = DefaultLoginPath
	}
	if c.CatalogPath == "" {
		c.CatalogPath = DefaultCatalogPath
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = defaultUserAgent
	}
	return c
}

func (c Config) loginURL() (string, error) {
	return buildURL(c.BaseURL, c.withDefaults().LoginPath)
}

func (c Config) catalogURL() (string, error) {
	return buildURL(c.BaseURL, c.withDefaults().CatalogPath)
}

func buildURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("platform base url is required")
	}
	if path == "" {
		return "", errors.New("platform path is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse platform base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("platform base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("platform base url host is required")
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse platform path: %w", err)
	}
	return endpoint.String(), nil
}

// resolveHref turns an anchor href into an absolute URL relative to the page it was found on.
func resolveHref(pageURL string, href string) string {
	base, err := url.Parse(pageURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
