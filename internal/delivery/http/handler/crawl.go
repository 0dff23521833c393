package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/user/market-dashboard/internal/delivery/http/request"
	"github.com/user/market-dashboard/pkg/utils"
)

// HandleCrawl runs a crawl synchronously. Crawl failures are outcomes, so
// they are returned with 200 and success=false.
func (h *Handler) HandleCrawl(w http.ResponseWriter, r *http.Request) {
	var req request.CrawlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.writeJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.URL == "" {
		req.URL = request.DefaultCrawlURL
	}

	u, err := utils.ParseCrawlURL(req.URL)
	if err != nil {
		h.writeJSONError(w, "Invalid URL format", http.StatusBadRequest)
		return
	}

	h.writeJSON(w, http.StatusOK, h.gateway.Crawl(r.Context(), u.String()))
}
