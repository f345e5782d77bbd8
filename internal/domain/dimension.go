package domain

import (
	"fmt"
	"math"
)

// Dimension is one of the six fixed categories of organizational AI readiness.
type Dimension string

const (
	DimensionData       Dimension = "data"
	DimensionTechnology Dimension = "technology"
	DimensionPeople     Dimension = "people"
	DimensionProcess    Dimension = "process"
	DimensionGovernance Dimension = "governance"
	DimensionPolitics   Dimension = "politics"
)

// DimensionOrder is the canonical iteration order. The veto check walks
// dimensions in this order and stops at the first hit, so the order is part
// of the scoring contract, not a cosmetic choice.
var DimensionOrder = []Dimension{
	DimensionData,
	DimensionTechnology,
	DimensionPeople,
	DimensionProcess,
	DimensionGovernance,
	DimensionPolitics,
}

// VetoThreshold is the raw 0-4 average below which a dimension forces the
// not-ready band regardless of the weighted total. Averages of exactly 0 are
// exempt: an unanswered section is "no data", not a failing one.
const VetoThreshold = 1.5

// DimensionInfo holds the static per-dimension metadata used for weighting
// and presentation.
type DimensionInfo struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Weight      float64 `json:"weight"`
	Icon        string  `json:"icon"`
}

// Dimensions maps each dimension to its weight and display metadata.
// Weights must sum to 1.0; ValidateDimensions enforces this at startup.
var Dimensions = map[Dimension]DimensionInfo{
	DimensionData: {
		Title:       "Data Foundation",
		Description: "Quality, accessibility and ownership of the data your AI initiatives would run on.",
		Weight:      0.25,
		Icon:        "database",
	},
	DimensionTechnology: {
		Title:       "Technology Landscape",
		Description: "Integration readiness of your current systems, APIs and infrastructure.",
		Weight:      0.20,
		Icon:        "cpu",
	},
	DimensionPeople: {
		Title:       "People & Skills",
		Description: "In-house capability, appetite for change and capacity to adopt new tools.",
		Weight:      0.20,
		Icon:        "users",
	},
	DimensionProcess: {
		Title:       "Process Maturity",
		Description: "How well documented and repeatable the workflows you want to automate are.",
		Weight:      0.15,
		Icon:        "workflow",
	},
	DimensionGovernance: {
		Title:       "Governance & Compliance",
		Description: "Clarity of data protection, risk ownership and approval paths for new technology.",
		Weight:      0.10,
		Icon:        "shield",
	},
	DimensionPolitics: {
		Title:       "Sponsorship & Politics",
		Description: "Executive backing, budget reality and alignment between stakeholders.",
		Weight:      0.10,
		Icon:        "handshake",
	},
}

// weightTolerance absorbs float accumulation when checking the weight sum.
const weightTolerance = 1e-9

// ValidateDimensions checks the dimension table invariants: every canonical
// dimension is present, every weight is in (0,1], and the weights sum to 1.0.
func ValidateDimensions(dims map[Dimension]DimensionInfo) error {
	if len(dims) != len(DimensionOrder) {
		return NewInvalidInputError(fmt.Sprintf("expected %d dimensions, got %d", len(DimensionOrder), len(dims)))
	}
	sum := 0.0
	for _, dim := range DimensionOrder {
		info, ok := dims[dim]
		if !ok {
			return NewInvalidInputError(fmt.Sprintf("missing dimension %q", dim))
		}
		if info.Weight <= 0 || info.Weight > 1 {
			return NewInvalidInputError(fmt.Sprintf("dimension %q weight %v out of range (0,1]", dim, info.Weight))
		}
		sum += info.Weight
	}
	if math.Abs(sum-1.0) > weightTolerance {
		return NewInvalidInputError(fmt.Sprintf("dimension weights sum to %v, want 1.0", sum))
	}
	return nil
}
