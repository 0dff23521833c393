package firecrawl

import (
	"context"
	"net/http"

	"github.com/user/market-dashboard/internal/entity"
	"github.com/user/market-dashboard/internal/repository"
)

type scrapeRequest struct {
	URL     string   `json:"url"`
	Formats []string `json:"formats"`
}

type scrapeResponse struct {
	Success bool        `json:"success"`
	Data    entity.Page `json:"data"`
	Error   string      `json:"error"`
}

// Scrape fetches a single page as markdown and returns the remote success flag.
func (c *Client) Scrape(ctx context.Context, url string) (bool, error) {
	var res scrapeResponse
	err := c.do(ctx, http.MethodPost, c.baseURL+"/v1/scrape", scrapeRequest{
		URL:     url,
		Formats: []string{"markdown"},
	}, &res)
	if err != nil {
		return false, err
	}
	if !res.Success {
		return false, &repository.APIError{StatusCode: http.StatusOK, Message: res.Error}
	}
	return true, nil
}
