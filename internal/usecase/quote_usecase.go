package usecase

import (
	"context"
	"slices"
	"time"

	"github.com/user/market-dashboard/internal/entity"
	"github.com/user/market-dashboard/pkg/expiring"
	"github.com/user/market-dashboard/pkg/metrics"
	"go.uber.org/zap"
)

// QuoteTTL is how long a generated quote is served from cache.
const QuoteTTL = 5 * time.Minute

// indexPriceScale lifts stock-range prices to index levels.
const indexPriceScale = 100

// QuoteService serves cached stock, index and fund quotes.
type QuoteService interface {
	GetStockQuote(ctx context.Context, symbol string) (*entity.StockQuote, bool)
	GetFundQuote(ctx context.Context, isin string) (*entity.FundQuote, bool)
	GetMarketIndices(ctx context.Context) []entity.StockQuote
	GetPopularSymbols() []entity.Symbol
	ClearCache()
}

type quoteUseCase struct {
	source QuoteSource
	stocks *expiring.Cache[string, entity.StockQuote]
	funds  *expiring.Cache[string, entity.FundQuote]
	logger *zap.Logger
}

// QuoteOption configures the quote service.
type QuoteOption func(*quoteConfig)

type quoteConfig struct {
	source QuoteSource
	now    func() time.Time
}

// WithQuoteSource replaces the synthetic generator.
func WithQuoteSource(src QuoteSource) QuoteOption {
	return func(c *quoteConfig) { c.source = src }
}

// WithCacheClock replaces time.Now for cache expiry.
func WithCacheClock(now func() time.Time) QuoteOption {
	return func(c *quoteConfig) { c.now = now }
}

func NewQuoteService(logger *zap.Logger, opts ...QuoteOption) QuoteService {
	cfg := quoteConfig{now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.source == nil {
		cfg.source = NewSyntheticSource(WithSourceClock(cfg.now))
	}

	return &quoteUseCase{
		source: cfg.source,
		stocks: expiring.New[string, entity.StockQuote](QuoteTTL, expiring.WithClock(cfg.now)),
		funds:  expiring.New[string, entity.FundQuote](QuoteTTL, expiring.WithClock(cfg.now)),
		logger: logger,
	}
}

// GetStockQuote returns the cached quote for symbol or generates a new one.
// Concurrent misses for one symbol each generate; the last write wins.
func (uc *quoteUseCase) GetStockQuote(ctx context.Context, symbol string) (*entity.StockQuote, bool) {
	if q, ok := uc.stocks.Get(symbol); ok {
		metrics.QuoteCacheLookups.WithLabelValues("stock", "hit").Inc()
		uc.logger.Debug("Returning cached stock quote", zap.String("symbol", symbol))
		return &q, true
	}
	metrics.QuoteCacheLookups.WithLabelValues("stock", "miss").Inc()

	q, ok := uc.source.Stock(ctx, symbol)
	if !ok {
		uc.logger.Debug("No stock quote available", zap.String("symbol", symbol))
		return nil, false
	}
	uc.stocks.Set(symbol, q)
	uc.logger.Debug("Generated stock quote", zap.String("symbol", symbol), zap.Float64("price", q.Price))
	return &q, true
}

func (uc *quoteUseCase) GetFundQuote(ctx context.Context, isin string) (*entity.FundQuote, bool) {
	if q, ok := uc.funds.Get(isin); ok {
		metrics.QuoteCacheLookups.WithLabelValues("fund", "hit").Inc()
		uc.logger.Debug("Returning cached fund quote", zap.String("isin", isin))
		return &q, true
	}
	metrics.QuoteCacheLookups.WithLabelValues("fund", "miss").Inc()

	q, ok := uc.source.Fund(ctx, isin)
	if !ok {
		uc.logger.Debug("No fund quote available", zap.String("isin", isin))
		return nil, false
	}
	uc.funds.Set(isin, q)
	uc.logger.Debug("Generated fund quote", zap.String("isin", isin), zap.Float64("nav", q.NAV))
	return &q, true
}

// GetMarketIndices returns the tracked indices in catalog order. Index
// quotes share the stock cache, keyed by index symbol.
func (uc *quoteUseCase) GetMarketIndices(ctx context.Context) []entity.StockQuote {
	out := make([]entity.StockQuote, 0, len(entity.MarketIndices))
	for _, idx := range entity.MarketIndices {
		q, ok := uc.GetStockQuote(ctx, idx.Symbol)
		if !ok {
			continue
		}
		q.Name = idx.Name
		q.Price *= indexPriceScale
		q.MarketCap = nil
		out = append(out, *q)
	}
	return out
}

func (uc *quoteUseCase) GetPopularSymbols() []entity.Symbol {
	return slices.Clone(entity.PopularSymbols)
}

func (uc *quoteUseCase) ClearCache() {
	uc.stocks.Clear()
	uc.funds.Clear()
	uc.logger.Info("Quote cache cleared")
}
