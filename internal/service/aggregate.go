package service

import (
	"math"
	"sort"
	"time"

	"readiness-engine/internal/domain"
)

// Pure reduction helpers over stored submissions. Everything here is
// recomputed from source records on every call; none of these views are
// ever persisted, which keeps them immune to staleness.

// dimensionAverages computes the rounded per-dimension average percentage.
// A submission without a score for some dimension is skipped for that
// dimension rather than counted as zero: "no data" must not drag averages
// down.
func dimensionAverages(subs []*domain.Submission) map[domain.Dimension]int {
	sums := make(map[domain.Dimension]float64, len(domain.DimensionOrder))
	counts := make(map[domain.Dimension]int, len(domain.DimensionOrder))

	for _, sub := range subs {
		for dim, ds := range sub.Result.DimensionScores {
			sums[dim] += ds.Percentage
			counts[dim]++
		}
	}

	averages := make(map[domain.Dimension]int, len(sums))
	for dim, sum := range sums {
		averages[dim] = int(math.Round(sum / float64(counts[dim])))
	}
	return averages
}

// averageWeightedScore is the mean weighted percentage over submissions.
func averageWeightedScore(subs []*domain.Submission) float64 {
	if len(subs) == 0 {
		return 0
	}
	sum := 0.0
	for _, sub := range subs {
		sum += sub.Result.WeightedPercentage
	}
	return sum / float64(len(subs))
}

// bandDistribution counts submissions per result band.
func bandDistribution(subs []*domain.Submission) map[domain.ResultBand]int {
	dist := make(map[domain.ResultBand]int)
	for _, sub := range subs {
		dist[sub.Result.Band]++
	}
	return dist
}

// roleDistribution counts submissions per respondent role.
func roleDistribution(subs []*domain.Submission) map[domain.Role]int {
	dist := make(map[domain.Role]int)
	for _, sub := range subs {
		if sub.Role != "" {
			dist[sub.Role]++
		}
	}
	return dist
}

// rankOf returns the 1-based position of userScore among scores sorted
// descending: the first index whose score is <= userScore, so ties take the
// better rank. A score below every entry ranks last.
func rankOf(scores []float64, userScore float64) int {
	sorted := append([]float64(nil), scores...)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	for i, s := range sorted {
		if s <= userScore {
			return i + 1
		}
	}
	return len(sorted)
}

// recentCount counts submissions younger than the window relative to now.
func recentCount(subs []*domain.Submission, now time.Time, window time.Duration) int {
	cutoff := now.Add(-window)
	count := 0
	for _, sub := range subs {
		if sub.CreatedAt.After(cutoff) {
			count++
		}
	}
	return count
}

// Strength and weakness cutoffs over the rounded dimension averages.
const (
	strengthThreshold = 65
	weaknessThreshold = 50
	strengthLimit     = 2
	weaknessLimit     = 2
)

// strengths picks the top dimensions with an average of at least 65%,
// highest first, at most two.
func strengths(averages map[domain.Dimension]int) []domain.DimensionAverage {
	var picked []domain.DimensionAverage
	for _, dim := range domain.DimensionOrder {
		if avg, ok := averages[dim]; ok && avg >= strengthThreshold {
			picked = append(picked, domain.DimensionAverage{Dimension: dim, Average: avg})
		}
	}
	sort.SliceStable(picked, func(i, j int) bool { return picked[i].Average > picked[j].Average })
	if len(picked) > strengthLimit {
		picked = picked[:strengthLimit]
	}
	return picked
}

// weaknesses picks the lowest dimensions under 50%, lowest first, at most two.
func weaknesses(averages map[domain.Dimension]int) []domain.DimensionAverage {
	var picked []domain.DimensionAverage
	for _, dim := range domain.DimensionOrder {
		if avg, ok := averages[dim]; ok && avg < weaknessThreshold {
			picked = append(picked, domain.DimensionAverage{Dimension: dim, Average: avg})
		}
	}
	sort.SliceStable(picked, func(i, j int) bool { return picked[i].Average < picked[j].Average })
	if len(picked) > weaknessLimit {
		picked = picked[:weaknessLimit]
	}
	return picked
}

const rollupRecommendationLimit = 5

// headlineRecommendations maps the company's average score band to one
// opening recommendation.
var headlineRecommendations = map[domain.ResultBand]string{
	domain.BandHighComplexity: "Readiness across the team is low; invest in foundations before committing to AI delivery.",
	domain.BandCrossroads:     "The team is split between ready and not; align on the weakest dimensions before scaling up.",
	domain.BandFoundation:     "The organization is broadly ready; pick a first production use case and commit to it.",
	domain.BandPathBAligned:   "Readiness is strong across the board; run parallel initiatives with shared infrastructure.",
}

// dimensionRecommendations is the fixed follow-up text appended per weak
// dimension (average below 50%).
var dimensionRecommendations = map[domain.Dimension]string{
	domain.DimensionData:       "Consolidate and clean the core datasets; your data foundation scored weakest.",
	domain.DimensionTechnology: "Invest in integration capability (APIs, modern infrastructure) before adding AI on top.",
	domain.DimensionPeople:     "Plan for structured upskilling and change support; the team is not yet carried along.",
	domain.DimensionProcess:    "Document and standardize the target processes before automating them.",
	domain.DimensionGovernance: "Establish clear data protection ownership and a workable approval path.",
	domain.DimensionPolitics:   "Secure an executive sponsor and a realistic budget before the next step.",
}

// rollupRecommendations builds the fixed-rule recommendation list: one
// headline from the average-score band, then one entry per weak dimension in
// canonical order, capped at five.
func rollupRecommendations(averageScore float64, averages map[domain.Dimension]int) []string {
	recs := []string{headlineRecommendations[domain.BandForPercentage(averageScore)]}
	for _, dim := range domain.DimensionOrder {
		if len(recs) >= rollupRecommendationLimit {
			break
		}
		if avg, ok := averages[dim]; ok && avg < weaknessThreshold {
			recs = append(recs, dimensionRecommendations[dim])
		}
	}
	return recs
}
