package firecrawl

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/user/market-dashboard/internal/entity"
	"github.com/user/market-dashboard/internal/repository"
)

const statusCompleted = "completed"

// inProgress holds the job states worth polling again. Any other status
// ends the crawl.
var inProgress = map[string]bool{
	"scraping": true,
	"active":   true,
	"pending":  true,
	"queued":   true,
	"waiting":  true,
	"paused":   true,
}

type scrapeOptions struct {
	Formats         []string `json:"formats"`
	OnlyMainContent bool     `json:"onlyMainContent"`
	IncludeTags     []string `json:"includeTags,omitempty"`
	ExcludeTags     []string `json:"excludeTags,omitempty"`
}

type crawlRequest struct {
	URL                string        `json:"url"`
	Limit              int           `json:"limit"`
	ScrapeOptions      scrapeOptions `json:"scrapeOptions"`
	AllowBackwardLinks bool          `json:"allowBackwardLinks"`
	AllowExternalLinks bool          `json:"allowExternalLinks"`
}

type crawlStartResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	URL     string `json:"url"`
	Error   string `json:"error"`
}

type crawlStatusResponse struct {
	Success     *bool         `json:"success"`
	Status      string        `json:"status"`
	Total       int           `json:"total"`
	Completed   int           `json:"completed"`
	CreditsUsed int           `json:"creditsUsed"`
	ExpiresAt   string        `json:"expiresAt"`
	Next        string        `json:"next"`
	Data        []entity.Page `json:"data"`
	Error       string        `json:"error"`
}

func newCrawlRequest(job entity.CrawlJob) crawlRequest {
	o := job.Options
	return crawlRequest{
		URL:   job.URL,
		Limit: o.Limit,
		ScrapeOptions: scrapeOptions{
			Formats:         o.Formats,
			OnlyMainContent: o.OnlyMainContent,
			IncludeTags:     o.IncludeTags,
			ExcludeTags:     o.ExcludeTags,
		},
		AllowBackwardLinks: o.AllowBackwardLinks,
		AllowExternalLinks: o.AllowExternalLinks,
	}
}

// Crawl submits job and polls its status while the remote reports it in
// progress. Only ctx bounds the wait.
func (c *Client) Crawl(ctx context.Context, job entity.CrawlJob) (*entity.CrawlStatus, error) {
	var start crawlStartResponse
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/v1/crawl", newCrawlRequest(job), &start); err != nil {
		return nil, err
	}
	if !start.Success || start.ID == "" {
		return nil, &repository.APIError{StatusCode: http.StatusOK, Message: start.Error}
	}

	statusURL := fmt.Sprintf("%s/v1/crawl/%s", c.baseURL, start.ID)
	for {
		var st crawlStatusResponse
		if err := c.do(ctx, http.MethodGet, statusURL, nil, &st); err != nil {
			return nil, err
		}

		if st.Success != nil && !*st.Success {
			return nil, &repository.APIError{StatusCode: http.StatusOK, Message: st.Error}
		}
		if st.Status == statusCompleted {
			return c.collect(ctx, &st)
		}
		if !inProgress[st.Status] {
			msg := st.Error
			if msg == "" {
				msg = fmt.Sprintf("Crawl job failed or was stopped. Status: %s", st.Status)
			}
			return nil, &repository.APIError{StatusCode: http.StatusOK, Message: msg}
		}

		t := time.NewTimer(c.pollInterval)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	}
}

// collect follows the pagination links of a completed crawl.
func (c *Client) collect(ctx context.Context, st *crawlStatusResponse) (*entity.CrawlStatus, error) {
	pages := append([]entity.Page(nil), st.Data...)
	next := st.Next
	for next != "" {
		var more crawlStatusResponse
		if err := c.do(ctx, http.MethodGet, next, nil, &more); err != nil {
			return nil, err
		}
		pages = append(pages, more.Data...)
		next = more.Next
	}

	for i := range pages {
		enrichMetadata(&pages[i])
	}

	return &entity.CrawlStatus{
		Status:      st.Status,
		Completed:   st.Completed,
		Total:       st.Total,
		CreditsUsed: st.CreditsUsed,
		ExpiresAt:   st.ExpiresAt,
		Pages:       pages,
	}, nil
}
