package domain

import "time"

// Answers maps question id to the selected option's score. Missing entries
// are scored as 0 (unanswered); the scoring engine never errors on them.
type Answers map[string]int

// DimensionScore is the derived per-dimension breakdown of a result.
type DimensionScore struct {
	Score         int     `json:"score"`
	MaxScore      int     `json:"maxScore"`
	Percentage    float64 `json:"percentage"`
	Weight        float64 `json:"weight"`
	WeightedScore float64 `json:"weightedScore"`
}

// QuizResult is fully derived from Answers plus configuration. It is always
// produced whole by the scoring engine and is safe to recompute at any time.
type QuizResult struct {
	TotalScore         int                            `json:"totalScore"`
	MaxScore           int                            `json:"maxScore"`
	Percentage         float64                        `json:"percentage"`
	WeightedPercentage float64                        `json:"weightedPercentage"`
	Band               ResultBand                     `json:"band"`
	BandName           string                         `json:"bandName"`
	Description        string                         `json:"description"`
	Recommendations    []string                       `json:"recommendations"`
	DimensionScores    map[Dimension]DimensionScore   `json:"dimensionScores"`
	VetoTriggered      bool                           `json:"vetoTriggered"`
	VetoDimension      Dimension                      `json:"vetoDimension,omitempty"`
}

// Submission is the persisted audit record: a result plus identity context.
// It is written once and never mutated.
type Submission struct {
	ID            string
	Email         string
	CompanyDomain string
	Role          Role
	Answers       Answers
	Result        QuizResult
	CreatedAt     time.Time
}

// DimensionAverage pairs a dimension with its rounded average percentage.
type DimensionAverage struct {
	Dimension Dimension `json:"dimension"`
	Average   int       `json:"average"`
}

// CompanyComparison positions a single new result against same-domain peers.
// Nil when the domain has fewer than ComparisonMinSubmissions records.
type CompanyComparison struct {
	Domain            string             `json:"domain"`
	SubmissionCount   int                `json:"submissionCount"`
	AverageScore      float64            `json:"averageScore"`
	DimensionAverages map[Dimension]int  `json:"dimensionAverages"`
	BandDistribution  map[ResultBand]int `json:"bandDistribution"`
	Rank              int                `json:"rank"`
}

// RollupMember is one anonymized entry of a company rollup.
type RollupMember struct {
	AnonymizedEmail    string     `json:"anonymizedEmail"`
	Role               Role       `json:"role"`
	WeightedPercentage float64    `json:"weightedPercentage"`
	Band               ResultBand `json:"band"`
	SubmittedAt        time.Time  `json:"submittedAt"`
}

// CompanyRollup is the multi-person report for one organization. Nil when the
// domain has fewer than RollupMinSubmissions records.
type CompanyRollup struct {
	Domain            string             `json:"domain"`
	SubmissionCount   int                `json:"submissionCount"`
	AverageScore      float64            `json:"averageScore"`
	DimensionAverages map[Dimension]int  `json:"dimensionAverages"`
	BandDistribution  map[ResultBand]int `json:"bandDistribution"`
	RoleDistribution  map[Role]int       `json:"roleDistribution"`
	Members           []RollupMember     `json:"members"`
	Strengths         []DimensionAverage `json:"strengths"`
	Weaknesses        []DimensionAverage `json:"weaknesses"`
	Recommendations   []string           `json:"recommendations"`
}

// CompanyCount is a domain with its submission count and average score.
type CompanyCount struct {
	Domain       string  `json:"domain"`
	Count        int     `json:"count"`
	AverageScore float64 `json:"averageScore"`
}

// AdminStats is the cross-company view over the whole submission set.
type AdminStats struct {
	TotalSubmissions  int                `json:"totalSubmissions"`
	AverageScore      float64            `json:"averageScore"`
	DimensionAverages map[Dimension]int  `json:"dimensionAverages"`
	BandDistribution  map[ResultBand]int `json:"bandDistribution"`
	RoleDistribution  map[Role]int       `json:"roleDistribution"`
	RecentCount       int                `json:"recentCount"`
	TopCompanies      []CompanyCount     `json:"topCompanies"`
}

// Aggregation thresholds. Rollups are shareable artifacts, so they require a
// larger sample than the inline pairwise comparison.
const (
	ComparisonMinSubmissions = 2
	RollupMinSubmissions     = 3
	RecentWindow             = 7 * 24 * time.Hour
	TopCompaniesLimit        = 10
)
