package utils

import (
	"errors"
	"net/url"
	"strings"
)

var ErrInvalidCrawlURL = errors.New("crawl URL must be an absolute http or https URL")

// ParseCrawlURL validates a site root URL submitted for crawling.
func ParseCrawlURL(raw string) (*url.URL, error) {
	u, err := url.ParseRequestURI(strings.TrimSpace(raw))
	if err != nil {
		return nil, ErrInvalidCrawlURL
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, ErrInvalidCrawlURL
	}
	if u.Host == "" {
		return nil, ErrInvalidCrawlURL
	}
	return u, nil
}

// Domain returns the host of rawURL, or "unknown" when it cannot be parsed.
// Used as a low-cardinality metrics label.
func Domain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return "unknown"
	}
	return u.Hostname()
}

// MaskToken hides all but the last four characters of a secret.
func MaskToken(token string) string {
	const visible = 4
	if len(token) <= visible {
		return strings.Repeat("*", len(token))
	}
	return strings.Repeat("*", len(token)-visible) + token[len(token)-visible:]
}
