package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"

	"deal-engine/domain"
	"deal-engine/repository"
)

// AnalysisService fronts the pure calculation functions with a result cache
// and an analysis log. Every calculation is referentially transparent, so
// cached entries never go stale.
type AnalysisService struct {
	repo   repository.AnalysisRepository
	cache  repository.CacheRepository
	logger *slog.Logger
}

// NewAnalysisService creates a new AnalysisService with the given repository
// and cache.
func NewAnalysisService(
	repo repository.AnalysisRepository,
	cache repository.CacheRepository,
	logger *slog.Logger,
) *AnalysisService {
	return &AnalysisService{repo: repo, cache: cache, logger: logger}
}

// AnalyzeDeal runs the flip analysis, serving repeated inputs from cache and
// recording every freshly computed analysis.
func (s *AnalysisService) AnalyzeDeal(
	ctx context.Context,
	input domain.DealAnalysisInput,
) domain.DealAnalysisResult {
	key := cacheKey("deal", input)

	var cached domain.DealAnalysisResult
	if s.lookup(ctx, key, &cached) {
		return cached
	}

	result := AnalyzeDeal(input)
	s.store(ctx, key, result)

	// Recording the analysis is not critical.
	if err := s.repo.Save(input, result); err != nil {
		s.logger.Warn("failed to save deal analysis", slog.Any("error", err))
	}

	return result
}

// LoanSchedule returns the amortization schedule for the given terms.
func (s *AnalysisService) LoanSchedule(
	ctx context.Context,
	terms domain.LoanTerms,
) []domain.AmortizationEntry {
	key := cacheKey("schedule", terms)

	var cached []domain.AmortizationEntry
	if s.lookup(ctx, key, &cached) {
		return cached
	}

	schedule := GenerateSchedule(terms.Principal, terms.AnnualRatePercent, terms.TermYears)
	s.store(ctx, key, schedule)

	return schedule
}

// LoanSummary returns the lifetime totals for the given terms.
func (s *AnalysisService) LoanSummary(
	ctx context.Context,
	terms domain.LoanTerms,
) domain.LoanSummary {
	key := cacheKey("summary", terms)

	var cached domain.LoanSummary
	if s.lookup(ctx, key, &cached) {
		return cached
	}

	summary := SummarizeLoan(terms.Principal, terms.AnnualRatePercent, terms.TermYears)
	s.store(ctx, key, summary)

	return summary
}

// RentalCashFlow returns the cash-flow waterfall for a rental property.
func (s *AnalysisService) RentalCashFlow(
	ctx context.Context,
	input domain.RentalCashFlowInput,
) domain.RentalCashFlowResult {
	key := cacheKey("rental", input)

	var cached domain.RentalCashFlowResult
	if s.lookup(ctx, key, &cached) {
		return cached
	}

	result := CalculateRentalCashFlow(input)
	s.store(ctx, key, result)

	return result
}

func (s *AnalysisService) lookup(ctx context.Context, key string, out any) bool {
	if key == "" {
		return false
	}
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		s.logger.Warn("discarding malformed cache entry",
			slog.String("key", key), slog.Any("error", err))
		return false
	}
	return true
}

func (s *AnalysisService) store(ctx context.Context, key string, value any) {
	if key == "" {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("failed to encode result for cache", slog.Any("error", err))
		return
	}
	if err := s.cache.Set(ctx, key, string(raw)); err != nil {
		s.logger.Warn("failed to cache result",
			slog.String("key", key), slog.Any("error", err))
	}
}

// cacheKey digests the JSON form of an input so identical inputs map to the
// same cache slot. An empty key disables caching for the call.
func cacheKey(prefix string, input any) string {
	raw, err := json.Marshal(input)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(raw)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(sum[:16]))
}
