package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/user/market-dashboard/internal/entity"
)

// CrawlAPI defines the contract of the remote crawling service for one API key.
//
//go:generate mockgen -source=crawl_api.go -destination=../usecase/mock_crawl_api_test.go -package=usecase CrawlAPI
type CrawlAPI interface {
	// Scrape fetches a single page and reports the remote success flag.
	Scrape(ctx context.Context, url string) (bool, error)
	// Crawl runs a multi-page crawl and waits for it to finish.
	Crawl(ctx context.Context, job entity.CrawlJob) (*entity.CrawlStatus, error)
}

// CrawlAPIFactory builds a CrawlAPI authenticated with token.
type CrawlAPIFactory func(token string) CrawlAPI

// APIError is an explicit unsuccessful response from the crawl API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("crawl API request failed with status %d", e.StatusCode)
	}
	return e.Message
}

// AsAPIError unwraps err to an *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
