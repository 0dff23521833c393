package entity

import "github.com/google/uuid"

// CrawlOptions is the configuration profile sent with every crawl.
type CrawlOptions struct {
	Limit              int
	Formats            []string
	OnlyMainContent    bool
	IncludeTags        []string
	ExcludeTags        []string
	AllowBackwardLinks bool
	AllowExternalLinks bool
}

// DefaultCrawlOptions is the fixed profile used for financial news sites:
// at most 10 pages, markdown and HTML, main content only, same site only.
func DefaultCrawlOptions() CrawlOptions {
	return CrawlOptions{
		Limit:           10,
		Formats:         []string{"markdown", "html"},
		OnlyMainContent: true,
		IncludeTags:     []string{"title", "meta", "h1", "h2", "h3", "p", "div", "span", "table"},
		ExcludeTags:     []string{"script", "style", "nav", "footer", "header"},
	}
}

// CrawlJob describes one crawl request. It lives for a single
// request/response cycle.
type CrawlJob struct {
	ID      string
	URL     string
	Options CrawlOptions
}

func NewCrawlJob(url string) CrawlJob {
	return CrawlJob{
		ID:      uuid.NewString(),
		URL:     url,
		Options: DefaultCrawlOptions(),
	}
}

// Page is one document returned by the crawl API.
type Page struct {
	Markdown string         `json:"markdown,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Metadata map[string]any `json:"metadata"`
}

// Title returns the metadata title, if any.
func (p Page) Title() string {
	s, _ := p.Metadata["title"].(string)
	return s
}

// SourceURL returns the metadata sourceURL, if any.
func (p Page) SourceURL() string {
	s, _ := p.Metadata["sourceURL"].(string)
	return s
}

// CrawlStatus is the remote report of a finished crawl.
type CrawlStatus struct {
	Status      string
	Completed   int
	Total       int
	CreditsUsed int
	ExpiresAt   string
	Pages       []Page
}

// CrawlResult is either a failure carrying a reason or a success carrying
// the crawl status. Success decides which fields are meaningful.
type CrawlResult struct {
	Success     bool   `json:"success"`
	Error       string `json:"error,omitempty"`
	Status      string `json:"status,omitempty"`
	Completed   int    `json:"completed"`
	Total       int    `json:"total"`
	CreditsUsed int    `json:"creditsUsed"`
	ExpiresAt   string `json:"expiresAt,omitempty"`
	Data        []Page `json:"data,omitempty"`
}

func CrawlFailure(reason string) *CrawlResult {
	return &CrawlResult{Success: false, Error: reason}
}

func CrawlSuccess(s *CrawlStatus) *CrawlResult {
	return &CrawlResult{
		Success:     true,
		Status:      s.Status,
		Completed:   s.Completed,
		Total:       s.Total,
		CreditsUsed: s.CreditsUsed,
		ExpiresAt:   s.ExpiresAt,
		Data:        s.Pages,
	}
}
