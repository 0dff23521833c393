package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/user/market-dashboard/internal/entity"
	"github.com/user/market-dashboard/internal/repository"
	"github.com/user/market-dashboard/pkg/metrics"
	"github.com/user/market-dashboard/pkg/utils"
	"go.uber.org/zap"
)

// Failure reasons reported when the remote API gives none.
const (
	msgCredentialNotFound = "credential not found"
	msgCredentialRead     = "failed to read stored credential"
	msgCrawlFailed        = "Failed to crawl website"
	msgConnectionFailed   = "Failed to connect to Firecrawl API"
)

// CrawlGateway manages the crawl API key and runs crawls with it.
type CrawlGateway interface {
	SaveCredential(ctx context.Context, token string) error
	// GetCredential returns repository.ErrCredentialNotFound when no key is stored.
	GetCredential(ctx context.Context) (string, error)
	RemoveCredential(ctx context.Context) error
	// TestCredential reports whether the remote API accepts token. It never fails.
	TestCredential(ctx context.Context, token string) bool
	// Crawl never fails; faults are reported inside the result.
	Crawl(ctx context.Context, url string) *entity.CrawlResult
}

type crawlGatewayUseCase struct {
	credentials repository.CredentialRepository
	newAPI      repository.CrawlAPIFactory
	testURL     string
	logger      *zap.Logger
}

// NewCrawlGateway creates a CrawlGateway. A client is built from newAPI on
// every remote call with the token current at that moment.
func NewCrawlGateway(
	credentials repository.CredentialRepository,
	newAPI repository.CrawlAPIFactory,
	testURL string,
	logger *zap.Logger,
) CrawlGateway {
	return &crawlGatewayUseCase{
		credentials: credentials,
		newAPI:      newAPI,
		testURL:     testURL,
		logger:      logger,
	}
}

// SaveCredential stores token as is. Callers verify it with TestCredential.
func (uc *crawlGatewayUseCase) SaveCredential(ctx context.Context, token string) error {
	if err := uc.credentials.Save(ctx, token); err != nil {
		return err
	}
	uc.logger.Info("API key saved", zap.String("key", utils.MaskToken(token)))
	return nil
}

func (uc *crawlGatewayUseCase) GetCredential(ctx context.Context) (string, error) {
	return uc.credentials.Get(ctx)
}

func (uc *crawlGatewayUseCase) RemoveCredential(ctx context.Context) error {
	if err := uc.credentials.Delete(ctx); err != nil {
		return err
	}
	uc.logger.Info("API key removed")
	return nil
}

func (uc *crawlGatewayUseCase) TestCredential(ctx context.Context, token string) bool {
	ok, err := uc.newAPI(token).Scrape(ctx, uc.testURL)
	if err != nil {
		uc.logger.Warn("API key test failed", zap.String("key", utils.MaskToken(token)), zap.Error(err))
		ok = false
	}

	result := "invalid"
	if ok {
		result = "valid"
	}
	metrics.CredentialTests.WithLabelValues(result).Inc()
	uc.logger.Info("API key tested", zap.String("key", utils.MaskToken(token)), zap.Bool("valid", ok))
	return ok
}

func (uc *crawlGatewayUseCase) Crawl(ctx context.Context, url string) *entity.CrawlResult {
	token, err := uc.credentials.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			metrics.CrawlsTotal.WithLabelValues("failure", "no_credential").Inc()
			return entity.CrawlFailure(msgCredentialNotFound)
		}
		uc.logger.Error("Failed to read API key", zap.Error(err))
		metrics.CrawlsTotal.WithLabelValues("failure", "storage").Inc()
		return entity.CrawlFailure(msgCredentialRead)
	}

	job := entity.NewCrawlJob(url)
	log := uc.logger.With(zap.String("crawl_id", job.ID), zap.String("url", url))
	log.Info("Starting crawl", zap.Int("limit", job.Options.Limit))

	startTime := time.Now()
	status, crawlErr := uc.newAPI(token).Crawl(ctx, job)
	duration := time.Since(startTime)
	metrics.CrawlDuration.WithLabelValues(utils.Domain(url)).Observe(duration.Seconds())

	if crawlErr != nil {
		return uc.handleCrawlFailure(log, crawlErr)
	}

	metrics.CrawlsTotal.WithLabelValues("success", "").Inc()
	log.Info("Crawl completed",
		zap.String("status", status.Status),
		zap.Int("completed", status.Completed),
		zap.Int("total", status.Total),
		zap.Int("credits_used", status.CreditsUsed),
		zap.Int("pages", len(status.Pages)),
		zap.Int64("duration_ms", duration.Milliseconds()),
	)
	return entity.CrawlSuccess(status)
}

// handleCrawlFailure turns a remote or transport error into a failed result.
func (uc *crawlGatewayUseCase) handleCrawlFailure(log *zap.Logger, crawlErr error) *entity.CrawlResult {
	if apiErr, ok := repository.AsAPIError(crawlErr); ok {
		metrics.CrawlsTotal.WithLabelValues("failure", "remote").Inc()
		log.Error("Crawl failed", zap.Int("status_code", apiErr.StatusCode), zap.String("reason", apiErr.Message))
		if apiErr.Message == "" {
			return entity.CrawlFailure(msgCrawlFailed)
		}
		return entity.CrawlFailure(apiErr.Message)
	}

	metrics.CrawlsTotal.WithLabelValues("failure", "transport").Inc()
	log.Error("Error during crawl", zap.Error(crawlErr))
	if msg := crawlErr.Error(); msg != "" {
		return entity.CrawlFailure(msg)
	}
	return entity.CrawlFailure(msgConnectionFailed)
}
