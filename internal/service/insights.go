package service

import (
	"context"
	"encoding/json"
	"time"

	"readiness-engine/internal/cache"
	"readiness-engine/internal/domain"
	"readiness-engine/internal/logger"
	"readiness-engine/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// InsightsService exposes the read-only aggregation views. "Not enough data"
// is not an error here: eligibility misses return a nil view so callers can
// render an appropriate empty state.
type InsightsService interface {
	CompanyComparison(ctx context.Context, companyDomain string, userScore float64) (*domain.CompanyComparison, error)
	CompanyRollup(ctx context.Context, companyDomain string) (*domain.CompanyRollup, error)
	AdminStats(ctx context.Context) (*domain.AdminStats, error)
	EligibleCompanies(ctx context.Context) ([]domain.CompanyCount, error)
	InvalidateCompany(ctx context.Context, companyDomain string)
}

// insightsCacheTTL bounds how stale a cached rollup or stats view can get.
const insightsCacheTTL = 5 * time.Minute

const adminStatsCacheKey = "global"

type insightsService struct {
	repo  domain.SubmissionRepository
	cache domain.Cache
	now   func() time.Time
}

// NewInsightsService creates a new InsightsService backed by the submission
// store, with short-lived caching of the heavier views.
func NewInsightsService(repo domain.SubmissionRepository, cacheClient domain.Cache) InsightsService {
	return &insightsService{
		repo:  repo,
		cache: cacheClient,
		now:   time.Now,
	}
}

// CompanyComparison implements InsightsService. Personal mail domains never
// produce a comparison, and neither does a sample below the minimum. The
// result depends on the caller's score, so it is computed fresh every time.
func (s *insightsService) CompanyComparison(ctx context.Context, companyDomain string, userScore float64) (*domain.CompanyComparison, error) {
	if companyDomain == "" || util.IsPersonalDomain(companyDomain) {
		return nil, nil
	}

	subs, err := s.repo.ListByDomain(ctx, companyDomain)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load company submissions", err)
	}
	if len(subs) < domain.ComparisonMinSubmissions {
		return nil, nil
	}

	scores := make([]float64, 0, len(subs))
	for _, sub := range subs {
		scores = append(scores, sub.Result.WeightedPercentage)
	}

	return &domain.CompanyComparison{
		Domain:            companyDomain,
		SubmissionCount:   len(subs),
		AverageScore:      averageWeightedScore(subs),
		DimensionAverages: dimensionAverages(subs),
		BandDistribution:  bandDistribution(subs),
		Rank:              rankOf(scores, userScore),
	}, nil
}

// CompanyRollup implements InsightsService. Rollups are shareable artifacts
// and therefore require the stricter minimum sample.
func (s *insightsService) CompanyRollup(ctx context.Context, companyDomain string) (*domain.CompanyRollup, error) {
	if companyDomain == "" || util.IsPersonalDomain(companyDomain) {
		return nil, nil
	}

	cacheKey := cache.GenerateCacheKey("insights", "rollup", companyDomain)
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		var rollup domain.CompanyRollup
		if err := json.Unmarshal([]byte(cached), &rollup); err == nil {
			return &rollup, nil
		}
	}

	subs, err := s.repo.ListByDomain(ctx, companyDomain)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load company submissions", err)
	}
	if len(subs) < domain.RollupMinSubmissions {
		return nil, nil
	}

	members := make([]domain.RollupMember, 0, len(subs))
	for _, sub := range subs {
		members = append(members, domain.RollupMember{
			AnonymizedEmail:    util.AnonymizeEmail(sub.Email),
			Role:               sub.Role,
			WeightedPercentage: sub.Result.WeightedPercentage,
			Band:               sub.Result.Band,
			SubmittedAt:        sub.CreatedAt,
		})
	}

	averages := dimensionAverages(subs)
	averageScore := averageWeightedScore(subs)

	rollup := &domain.CompanyRollup{
		Domain:            companyDomain,
		SubmissionCount:   len(subs),
		AverageScore:      averageScore,
		DimensionAverages: averages,
		BandDistribution:  bandDistribution(subs),
		RoleDistribution:  roleDistribution(subs),
		Members:           members,
		Strengths:         strengths(averages),
		Weaknesses:        weaknesses(averages),
		Recommendations:   rollupRecommendations(averageScore, averages),
	}

	s.cacheSet(ctx, cacheKey, rollup)
	return rollup, nil
}

// AdminStats implements InsightsService.
func (s *insightsService) AdminStats(ctx context.Context) (*domain.AdminStats, error) {
	cacheKey := cache.GenerateCacheKey("admin", "stats", adminStatsCacheKey)
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		var stats domain.AdminStats
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
	}

	var (
		subs      []*domain.Submission
		companies []domain.CompanyCount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		subs, err = s.repo.ListAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		companies, err = s.repo.EligibleDomains(gctx, 1)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("Failed to load submissions for admin stats", err)
	}

	if len(companies) > domain.TopCompaniesLimit {
		companies = companies[:domain.TopCompaniesLimit]
	}

	stats := &domain.AdminStats{
		TotalSubmissions:  len(subs),
		AverageScore:      averageWeightedScore(subs),
		DimensionAverages: dimensionAverages(subs),
		BandDistribution:  bandDistribution(subs),
		RoleDistribution:  roleDistribution(subs),
		RecentCount:       recentCount(subs, s.now(), domain.RecentWindow),
		TopCompanies:      companies,
	}

	s.cacheSet(ctx, cacheKey, stats)
	return stats, nil
}

// EligibleCompanies implements InsightsService.
func (s *insightsService) EligibleCompanies(ctx context.Context) ([]domain.CompanyCount, error) {
	companies, err := s.repo.EligibleDomains(ctx, domain.RollupMinSubmissions)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list eligible companies", err)
	}
	return companies, nil
}

// InvalidateCompany drops the cached views a new submission for the domain
// would make stale. Cache failures are logged, never surfaced: the views
// would only be a little stale, not wrong.
func (s *insightsService) InvalidateCompany(ctx context.Context, companyDomain string) {
	keys := []string{cache.GenerateCacheKey("admin", "stats", adminStatsCacheKey)}
	if companyDomain != "" {
		keys = append(keys, cache.GenerateCacheKey("insights", "rollup", companyDomain))
	}
	for _, key := range keys {
		if err := s.cache.Delete(ctx, key); err != nil {
			logger.Get().Warn("Failed to invalidate insights cache",
				zap.String("key", key),
				zap.Error(err))
		}
	}
}

func (s *insightsService) cacheSet(ctx context.Context, key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(payload), insightsCacheTTL); err != nil {
		logger.Get().Warn("Failed to cache insights view",
			zap.String("key", key),
			zap.Error(err))
	}
}
