package domain

// ResultBand is one of the five ordered outcome tiers.
type ResultBand string

const (
	BandNotReady       ResultBand = "not-ready"
	BandHighComplexity ResultBand = "high-complexity"
	BandCrossroads     ResultBand = "crossroads"
	BandFoundation     ResultBand = "foundation-ready"
	BandPathBAligned   ResultBand = "path-b-aligned"
)

// Band breakpoints over the weighted percentage. Boundaries are inclusive on
// the lower band: exactly 35.0 is still high-complexity.
const (
	BandHighComplexityMax = 35.0
	BandCrossroadsMax     = 55.0
	BandFoundationMax     = 75.0
)

// BandInfo carries the static copy attached to a band. Pure lookup data, no
// computation happens over it.
type BandInfo struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Recommendations []string `json:"recommendations"`
}

// Bands maps each band to its display copy.
var Bands = map[ResultBand]BandInfo{
	BandNotReady: {
		Name:        "Not Ready Yet",
		Description: "At least one readiness dimension scored critically low. Tackling AI now would most likely stall on that weakness, whatever the overall picture looks like.",
		Recommendations: []string{
			"Address the flagged dimension before committing budget to AI initiatives",
			"Run a focused discovery workshop on the weakest area",
			"Revisit the assessment once the critical gap has been closed",
		},
	},
	BandHighComplexity: {
		Name:        "High Complexity",
		Description: "Significant gaps across several dimensions. AI projects are possible but would carry heavy integration and change-management overhead.",
		Recommendations: []string{
			"Start with process documentation and data clean-up, not with models",
			"Pick one narrow, low-risk pilot to build internal confidence",
			"Establish clear ownership for data and systems",
		},
	},
	BandCrossroads: {
		Name:        "At the Crossroads",
		Description: "The foundations are partly in place. With targeted work on the weaker dimensions, a first production AI use case is within reach.",
		Recommendations: []string{
			"Prioritize the two weakest dimensions from your breakdown",
			"Scope a pilot that exercises your strongest dimension",
			"Define success metrics before any build starts",
		},
	},
	BandFoundation: {
		Name:        "Foundation Ready",
		Description: "Most dimensions are solid. You can move into delivery, keeping an eye on the remaining soft spots.",
		Recommendations: []string{
			"Move from exploration to a committed delivery roadmap",
			"Set up lightweight governance before scaling beyond the first use case",
			"Invest in upskilling the teams closest to the workflows",
		},
	},
	BandPathBAligned: {
		Name:        "Path B Aligned",
		Description: "Strong readiness across the board. Your organization matches the profile we see in teams that ship AI into production and keep it there.",
		Recommendations: []string{
			"Run parallel use cases with a shared platform approach",
			"Formalize an AI operating model while momentum is high",
			"Benchmark against industry peers to keep the edge",
		},
	},
}

// BandForPercentage returns the band for a weighted percentage, without
// considering veto. Veto handling lives in the scoring engine.
func BandForPercentage(weighted float64) ResultBand {
	switch {
	case weighted <= BandHighComplexityMax:
		return BandHighComplexity
	case weighted <= BandCrossroadsMax:
		return BandCrossroads
	case weighted <= BandFoundationMax:
		return BandFoundation
	default:
		return BandPathBAligned
	}
}
