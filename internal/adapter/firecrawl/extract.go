package firecrawl

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/user/market-dashboard/internal/entity"
)

// enrichMetadata guarantees a metadata map and fills a missing title from the
// page HTML.
func enrichMetadata(p *entity.Page) {
	if p.Metadata == nil {
		p.Metadata = make(map[string]any)
	}
	if p.Title() != "" || p.HTML == "" {
		return
	}
	if title := extractTitle(p.HTML); title != "" {
		p.Metadata["title"] = title
	}
}

// extractTitle returns the document <title>, falling back to the first <h1>.
func extractTitle(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}
