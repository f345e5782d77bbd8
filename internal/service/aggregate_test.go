package service

import (
	"testing"
	"time"

	"readiness-engine/internal/domain"

	"github.com/stretchr/testify/assert"
)

func subWithScores(percentages map[domain.Dimension]float64, weighted float64) *domain.Submission {
	scores := make(map[domain.Dimension]domain.DimensionScore, len(percentages))
	for dim, pct := range percentages {
		scores[dim] = domain.DimensionScore{Percentage: pct}
	}
	return &domain.Submission{
		Result: domain.QuizResult{
			WeightedPercentage: weighted,
			Band:               domain.BandForPercentage(weighted),
			DimensionScores:    scores,
		},
	}
}

func TestDimensionAverages(t *testing.T) {
	t.Run("RoundsToNearestInt", func(t *testing.T) {
		subs := []*domain.Submission{
			subWithScores(map[domain.Dimension]float64{domain.DimensionData: 50}, 50),
			subWithScores(map[domain.Dimension]float64{domain.DimensionData: 75}, 75),
		}
		averages := dimensionAverages(subs)
		assert.Equal(t, 63, averages[domain.DimensionData]) // 62.5 rounds up
	})

	t.Run("MissingDimensionIsSkippedNotZero", func(t *testing.T) {
		subs := []*domain.Submission{
			subWithScores(map[domain.Dimension]float64{
				domain.DimensionData:       80,
				domain.DimensionTechnology: 60,
			}, 70),
			subWithScores(map[domain.Dimension]float64{
				domain.DimensionData: 40,
			}, 40),
		}
		averages := dimensionAverages(subs)
		assert.Equal(t, 60, averages[domain.DimensionData])
		// Only one submission scored technology; its average must not be
		// halved by the submission that never answered it.
		assert.Equal(t, 60, averages[domain.DimensionTechnology])
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, dimensionAverages(nil))
	})
}

func TestAverageWeightedScore(t *testing.T) {
	subs := []*domain.Submission{
		subWithScores(nil, 80),
		subWithScores(nil, 60),
		subWithScores(nil, 70),
	}
	assert.InDelta(t, 70.0, averageWeightedScore(subs), 1e-9)
	assert.Equal(t, 0.0, averageWeightedScore(nil))
}

func TestBandDistribution(t *testing.T) {
	subs := []*domain.Submission{
		subWithScores(nil, 20),
		subWithScores(nil, 30),
		subWithScores(nil, 80),
	}
	dist := bandDistribution(subs)
	assert.Equal(t, 2, dist[domain.BandHighComplexity])
	assert.Equal(t, 1, dist[domain.BandPathBAligned])
}

func TestRoleDistribution(t *testing.T) {
	subs := []*domain.Submission{
		{Role: domain.RoleBusiness},
		{Role: domain.RoleTechnical},
		{Role: domain.RoleBusiness},
		{Role: ""},
	}
	dist := roleDistribution(subs)
	assert.Equal(t, 2, dist[domain.RoleBusiness])
	assert.Equal(t, 1, dist[domain.RoleTechnical])
	assert.Len(t, dist, 2, "empty role should not be counted")
}

func TestRankOf(t *testing.T) {
	scores := []float64{90, 70, 50}

	tests := []struct {
		name      string
		userScore float64
		expected  int
	}{
		{"MiddleOfPack", 70, 2},
		{"AboveEveryone", 95, 1},
		{"BelowEveryone", 10, 3},
		{"TieTakesBetterRank", 90, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rankOf(scores, tt.userScore))
		})
	}
}

func TestRecentCount(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	subs := []*domain.Submission{
		{CreatedAt: now.Add(-time.Hour)},
		{CreatedAt: now.Add(-6 * 24 * time.Hour)},
		{CreatedAt: now.Add(-8 * 24 * time.Hour)},
	}
	assert.Equal(t, 2, recentCount(subs, now, domain.RecentWindow))
}

func TestStrengthsAndWeaknesses(t *testing.T) {
	averages := map[domain.Dimension]int{
		domain.DimensionData:       80,
		domain.DimensionTechnology: 70,
		domain.DimensionPeople:     65,
		domain.DimensionProcess:    50,
		domain.DimensionGovernance: 30,
		domain.DimensionPolitics:   45,
	}

	t.Run("StrengthsTopTwoDescending", func(t *testing.T) {
		got := strengths(averages)
		assert.Equal(t, []domain.DimensionAverage{
			{Dimension: domain.DimensionData, Average: 80},
			{Dimension: domain.DimensionTechnology, Average: 70},
		}, got)
	})

	t.Run("WeaknessesBottomTwoAscending", func(t *testing.T) {
		got := weaknesses(averages)
		assert.Equal(t, []domain.DimensionAverage{
			{Dimension: domain.DimensionGovernance, Average: 30},
			{Dimension: domain.DimensionPolitics, Average: 45},
		}, got)
	})

	t.Run("ExactlyFiftyIsNotAWeakness", func(t *testing.T) {
		for _, w := range weaknesses(averages) {
			assert.NotEqual(t, domain.DimensionProcess, w.Dimension)
		}
	})

	t.Run("NothingQualifies", func(t *testing.T) {
		middling := map[domain.Dimension]int{
			domain.DimensionData:       60,
			domain.DimensionTechnology: 55,
		}
		assert.Empty(t, strengths(middling))
		assert.Empty(t, weaknesses(middling))
	})
}

func TestRollupRecommendations(t *testing.T) {
	t.Run("HeadlinePlusWeakDimensionsInCanonicalOrder", func(t *testing.T) {
		averages := map[domain.Dimension]int{
			domain.DimensionData:       45,
			domain.DimensionTechnology: 70,
			domain.DimensionPeople:     40,
		}
		recs := rollupRecommendations(48, averages)
		assert.Equal(t, []string{
			headlineRecommendations[domain.BandCrossroads],
			dimensionRecommendations[domain.DimensionData],
			dimensionRecommendations[domain.DimensionPeople],
		}, recs)
	})

	t.Run("CappedAtFive", func(t *testing.T) {
		averages := map[domain.Dimension]int{}
		for _, dim := range domain.DimensionOrder {
			averages[dim] = 10
		}
		recs := rollupRecommendations(10, averages)
		assert.Len(t, recs, rollupRecommendationLimit)
		assert.Equal(t, headlineRecommendations[domain.BandHighComplexity], recs[0])
		// Only the first four weak dimensions fit under the cap.
		assert.Equal(t, dimensionRecommendations[domain.DimensionProcess], recs[4])
	})

	t.Run("NoWeaknesses", func(t *testing.T) {
		recs := rollupRecommendations(80, map[domain.Dimension]int{domain.DimensionData: 80})
		assert.Equal(t, []string{headlineRecommendations[domain.BandPathBAligned]}, recs)
	})
}
