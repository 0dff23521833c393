package usecase

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/user/market-dashboard/internal/entity"
)

// QuoteSource produces fresh quotes. A false result means the source has no
// data for the key.
type QuoteSource interface {
	Stock(ctx context.Context, symbol string) (entity.StockQuote, bool)
	Fund(ctx context.Context, isin string) (entity.FundQuote, bool)
}

// SyntheticSource generates random demo quotes. It always has data.
type SyntheticSource struct {
	now func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// SyntheticOption configures a SyntheticSource.
type SyntheticOption func(*SyntheticSource)

// WithRand fixes the random generator, e.g. for deterministic tests.
func WithRand(rng *rand.Rand) SyntheticOption {
	return func(s *SyntheticSource) { s.rng = rng }
}

// WithSourceClock replaces time.Now for quote timestamps.
func WithSourceClock(now func() time.Time) SyntheticOption {
	return func(s *SyntheticSource) { s.now = now }
}

func NewSyntheticSource(opts ...SyntheticOption) *SyntheticSource {
	s := &SyntheticSource{
		now: time.Now,
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// uniform returns a value in [lo, hi).
func (s *SyntheticSource) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

func (s *SyntheticSource) Stock(_ context.Context, symbol string) (entity.StockQuote, bool) {
	name, ok := entity.LookupName(symbol)
	if !ok {
		name = symbol + " Ltd"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	marketCap := s.uniform(10000, 510000)
	return entity.StockQuote{
		Symbol:        symbol,
		Name:          name,
		Price:         s.uniform(100, 3100),
		Change:        s.uniform(-50, 50),
		ChangePercent: s.uniform(-5, 5),
		Volume:        10000 + s.rng.Int64N(1000000),
		MarketCap:     &marketCap,
		LastUpdated:   s.now(),
	}, true
}

func (s *SyntheticSource) Fund(_ context.Context, isin string) (entity.FundQuote, bool) {
	suffix := isin
	if r := []rune(isin); len(r) > 4 {
		suffix = string(r[len(r)-4:])
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return entity.FundQuote{
		ISIN:          isin,
		Name:          fmt.Sprintf("Sample Mutual Fund (%s)", suffix),
		AMC:           entity.FundHouses[s.rng.IntN(len(entity.FundHouses))],
		NAV:           s.uniform(10, 110),
		Change:        s.uniform(-2.5, 2.5),
		ChangePercent: s.uniform(-1.5, 1.5),
		LastUpdated:   s.now(),
	}, true
}
