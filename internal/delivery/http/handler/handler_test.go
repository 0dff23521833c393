package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/market-dashboard/internal/delivery/http/handler"
	"github.com/user/market-dashboard/internal/delivery/http/response"
	"github.com/user/market-dashboard/internal/delivery/http/router"
	"github.com/user/market-dashboard/internal/entity"
	"github.com/user/market-dashboard/internal/repository"
	"github.com/user/market-dashboard/internal/usecase"
	"go.uber.org/zap"
)

// fakeGateway keeps the key in memory and returns canned crawl results.
type fakeGateway struct {
	token      string
	storageErr error
	valid      bool
	result     *entity.CrawlResult
	crawledURL string
	testedWith string
}

func (g *fakeGateway) SaveCredential(_ context.Context, token string) error {
	if g.storageErr != nil {
		return g.storageErr
	}
	g.token = token
	return nil
}

func (g *fakeGateway) GetCredential(context.Context) (string, error) {
	if g.storageErr != nil {
		return "", g.storageErr
	}
	if g.token == "" {
		return "", repository.ErrCredentialNotFound
	}
	return g.token, nil
}

func (g *fakeGateway) RemoveCredential(context.Context) error {
	g.token = ""
	return g.storageErr
}

func (g *fakeGateway) TestCredential(_ context.Context, token string) bool {
	g.testedWith = token
	return g.valid
}

func (g *fakeGateway) Crawl(_ context.Context, url string) *entity.CrawlResult {
	g.crawledURL = url
	return g.result
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func newServer(t *testing.T, gw *fakeGateway, quotes usecase.QuoteService) http.Handler {
	t.Helper()
	if quotes == nil {
		quotes = usecase.NewQuoteService(zap.NewNop())
	}
	h := handler.NewHandler(gw, quotes, pingerFunc(func(context.Context) error { return nil }), zap.NewNop())
	return router.New(h, zap.NewNop())
}

func do(t *testing.T, srv http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoErrorf(t, json.Unmarshal(rr.Body.Bytes(), &v), "body=%s", rr.Body.String())
	return v
}

func TestCredentialEndpoints(t *testing.T) {
	gw := &fakeGateway{}
	srv := newServer(t, gw, nil)

	rr := do(t, srv, http.MethodGet, "/api/credential", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, decode[response.CredentialResponse](t, rr).Configured)

	rr = do(t, srv, http.MethodPut, "/api/credential", `{"token":"  fc-abc123 "}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "fc-abc123", gw.token)

	rr = do(t, srv, http.MethodGet, "/api/credential", "")
	got := decode[response.CredentialResponse](t, rr)
	assert.True(t, got.Configured)
	assert.Equal(t, "*****c123", got.MaskedToken)
	assert.NotContains(t, rr.Body.String(), "fc-abc123")

	rr = do(t, srv, http.MethodDelete, "/api/credential", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, gw.token)
}

func TestSaveCredential_Validation(t *testing.T) {
	srv := newServer(t, &fakeGateway{}, nil)

	assert.Equal(t, http.StatusBadRequest, do(t, srv, http.MethodPut, "/api/credential", `{"token":"   "}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, srv, http.MethodPut, "/api/credential", `not json`).Code)
}

func TestCredential_StorageFault(t *testing.T) {
	srv := newServer(t, &fakeGateway{storageErr: errors.New("redis: connection refused")}, nil)

	assert.Equal(t, http.StatusInternalServerError, do(t, srv, http.MethodPut, "/api/credential", `{"token":"fc-abc123"}`).Code)
	assert.Equal(t, http.StatusInternalServerError, do(t, srv, http.MethodGet, "/api/credential", "").Code)
	assert.Equal(t, http.StatusInternalServerError, do(t, srv, http.MethodDelete, "/api/credential", "").Code)
}

func TestTestCredential(t *testing.T) {
	gw := &fakeGateway{token: "fc-stored", valid: false}
	srv := newServer(t, gw, nil)

	rr := do(t, srv, http.MethodPost, "/api/credential/test", `{"token":"fc-abc123"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, decode[response.TestCredentialResponse](t, rr).Valid)
	assert.Equal(t, "fc-abc123", gw.testedWith)
	assert.Equal(t, "fc-stored", gw.token, "testing never touches the stored key")

	gw.valid = true
	rr = do(t, srv, http.MethodPost, "/api/credential/test", `{"token":"fc-abc123"}`)
	assert.True(t, decode[response.TestCredentialResponse](t, rr).Valid)
}

func TestCrawl(t *testing.T) {
	gw := &fakeGateway{result: &entity.CrawlResult{
		Success:     true,
		Status:      "completed",
		Completed:   1,
		Total:       1,
		CreditsUsed: 1,
		Data:        []entity.Page{{Markdown: "# Markets", Metadata: map[string]any{"title": "Markets"}}},
	}}
	srv := newServer(t, gw, nil)

	rr := do(t, srv, http.MethodPost, "/api/crawl", `{"url":"https://www.moneycontrol.com/markets/"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "https://www.moneycontrol.com/markets/", gw.crawledURL)

	got := decode[entity.CrawlResult](t, rr)
	assert.True(t, got.Success)
	require.Len(t, got.Data, 1)
	assert.Equal(t, "Markets", got.Data[0].Title())
}

func TestCrawl_DefaultsToMoneycontrol(t *testing.T) {
	gw := &fakeGateway{result: entity.CrawlFailure("credential not found")}
	srv := newServer(t, gw, nil)

	rr := do(t, srv, http.MethodPost, "/api/crawl", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "https://www.moneycontrol.com/", gw.crawledURL)

	got := decode[entity.CrawlResult](t, rr)
	assert.False(t, got.Success)
	assert.Equal(t, "credential not found", got.Error)
}

func TestCrawl_InvalidURL(t *testing.T) {
	gw := &fakeGateway{}
	srv := newServer(t, gw, nil)

	rr := do(t, srv, http.MethodPost, "/api/crawl", `{"url":"moneycontrol"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, gw.crawledURL)
}

func TestQuoteEndpoints(t *testing.T) {
	srv := newServer(t, &fakeGateway{}, nil)

	rr := do(t, srv, http.MethodGet, "/api/quotes/stocks/reliance", "")
	require.Equal(t, http.StatusOK, rr.Code)
	stock := decode[entity.StockQuote](t, rr)
	assert.Equal(t, "RELIANCE", stock.Symbol)
	assert.Equal(t, "Reliance Industries Ltd", stock.Name)

	again := decode[entity.StockQuote](t, do(t, srv, http.MethodGet, "/api/quotes/stocks/RELIANCE", ""))
	assert.Equal(t, stock.Price, again.Price)
	assert.True(t, stock.LastUpdated.Equal(again.LastUpdated))

	rr = do(t, srv, http.MethodGet, "/api/quotes/funds/INE123A01010", "")
	require.Equal(t, http.StatusOK, rr.Code)
	fund := decode[entity.FundQuote](t, rr)
	assert.Equal(t, "Sample Mutual Fund (1010)", fund.Name)

	rr = do(t, srv, http.MethodGet, "/api/indices", "")
	require.Equal(t, http.StatusOK, rr.Code)
	indices := decode[[]entity.StockQuote](t, rr)
	require.Len(t, indices, 4)
	assert.Equal(t, "NIFTY50", indices[0].Symbol)
	assert.NotContains(t, rr.Body.String(), "marketCap")

	rr = do(t, srv, http.MethodGet, "/api/symbols", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]entity.Symbol](t, rr), 10)

	rr = do(t, srv, http.MethodDelete, "/api/quotes/cache", "")
	require.Equal(t, http.StatusOK, rr.Code)
}

// fundOnlyQuotes has no stock data, so searches fall through to funds.
type fundOnlyQuotes struct {
	usecase.QuoteService
}

func (fundOnlyQuotes) GetStockQuote(context.Context, string) (*entity.StockQuote, bool) {
	return nil, false
}

type noQuotes struct {
	fundOnlyQuotes
}

func (noQuotes) GetFundQuote(context.Context, string) (*entity.FundQuote, bool) {
	return nil, false
}

func TestSearch(t *testing.T) {
	srv := newServer(t, &fakeGateway{}, nil)
	rr := do(t, srv, http.MethodGet, "/api/quotes/search?q=infy", "")
	require.Equal(t, http.StatusOK, rr.Code)
	got := decode[response.SearchResponse](t, rr)
	assert.Equal(t, "stock", got.Kind)
	require.NotNil(t, got.Stock)
	assert.Equal(t, "INFY", got.Stock.Symbol)

	srv = newServer(t, &fakeGateway{}, fundOnlyQuotes{usecase.NewQuoteService(zap.NewNop())})
	rr = do(t, srv, http.MethodGet, "/api/quotes/search?q=INE123A01010", "")
	require.Equal(t, http.StatusOK, rr.Code)
	got = decode[response.SearchResponse](t, rr)
	assert.Equal(t, "fund", got.Kind)
	require.NotNil(t, got.Fund)
	assert.Equal(t, "INE123A01010", got.Fund.ISIN)

	srv = newServer(t, &fakeGateway{}, noQuotes{})
	rr = do(t, srv, http.MethodGet, "/api/quotes/search?q=UNKNOWN", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, srv, http.MethodGet, "/api/quotes/search", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHealthCheck(t *testing.T) {
	quotes := usecase.NewQuoteService(zap.NewNop())

	h := handler.NewHandler(&fakeGateway{}, quotes, pingerFunc(func(context.Context) error { return nil }), zap.NewNop())
	rr := do(t, router.New(h, zap.NewNop()), http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	h = handler.NewHandler(&fakeGateway{}, quotes, pingerFunc(func(context.Context) error { return errors.New("down") }), zap.NewNop())
	rr = do(t, router.New(h, zap.NewNop()), http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Equal(t, "unhealthy", decode[response.HealthResponse](t, rr).Storage)
}
