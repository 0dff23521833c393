package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/user/market-dashboard/internal/delivery/http/handler"
	"github.com/user/market-dashboard/internal/delivery/http/middleware"
	"go.uber.org/zap"
)

// requestTimeout bounds quote and credential calls. Crawls wait for the
// remote job and are exempt.
const requestTimeout = 30 * time.Second

func New(h *handler.Handler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Metrics)
	r.Use(chimw.Recoverer)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/api/health", h.HandleHealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Post("/crawl", h.HandleCrawl)

		r.Group(func(r chi.Router) {
			r.Use(chimw.Timeout(requestTimeout))

			r.Route("/credential", func(r chi.Router) {
				r.Get("/", h.HandleGetCredential)
				r.Put("/", h.HandleSaveCredential)
				r.Delete("/", h.HandleRemoveCredential)
				r.Post("/test", h.HandleTestCredential)
			})

			r.Get("/quotes/stocks/{symbol}", h.HandleGetStockQuote)
			r.Get("/quotes/funds/{isin}", h.HandleGetFundQuote)
			r.Get("/quotes/search", h.HandleSearch)
			r.Delete("/quotes/cache", h.HandleClearCache)
			r.Get("/indices", h.HandleGetMarketIndices)
			r.Get("/symbols", h.HandleGetPopularSymbols)
		})
	})

	return r
}
