package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/user/market-dashboard/internal/delivery/http/response"
)

func (h *Handler) HandleGetStockQuote(w http.ResponseWriter, r *http.Request) {
	symbol := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "symbol")))
	if symbol == "" {
		h.writeJSONError(w, "Symbol is required", http.StatusBadRequest)
		return
	}

	q, ok := h.quotes.GetStockQuote(r.Context(), symbol)
	if !ok {
		h.writeJSONError(w, "No stock data found for "+symbol, http.StatusNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, q)
}

func (h *Handler) HandleGetFundQuote(w http.ResponseWriter, r *http.Request) {
	isin := strings.TrimSpace(chi.URLParam(r, "isin"))
	if isin == "" {
		h.writeJSONError(w, "ISIN is required", http.StatusBadRequest)
		return
	}

	q, ok := h.quotes.GetFundQuote(r.Context(), isin)
	if !ok {
		h.writeJSONError(w, "No fund data found for "+isin, http.StatusNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, q)
}

// HandleSearch looks the query up as a stock symbol first and falls back to
// a fund ISIN.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		h.writeJSONError(w, "q query parameter is required", http.StatusBadRequest)
		return
	}

	if stock, ok := h.quotes.GetStockQuote(r.Context(), strings.ToUpper(query)); ok {
		h.writeJSON(w, http.StatusOK, response.SearchResponse{Kind: "stock", Stock: stock})
		return
	}
	if fund, ok := h.quotes.GetFundQuote(r.Context(), query); ok {
		h.writeJSON(w, http.StatusOK, response.SearchResponse{Kind: "fund", Fund: fund})
		return
	}

	h.writeJSONError(w, "No financial data found for the entered symbol/ISIN", http.StatusNotFound)
}

func (h *Handler) HandleGetMarketIndices(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.quotes.GetMarketIndices(r.Context()))
}

func (h *Handler) HandleGetPopularSymbols(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.quotes.GetPopularSymbols())
}

func (h *Handler) HandleClearCache(w http.ResponseWriter, r *http.Request) {
	h.quotes.ClearCache()
	h.writeJSON(w, http.StatusOK, response.MessageResponse{Status: "success", Message: "Financial data cache cleared"})
}
