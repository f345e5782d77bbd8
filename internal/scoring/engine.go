// Package scoring turns a set of answers into a QuizResult. The engine is a
// pure function over the injected question bank and dimension table: no I/O,
// no clock, identical answers always produce an identical result.
package scoring

import (
	"readiness-engine/internal/domain"
)

// Engine evaluates answers against a fixed question bank and dimension
// configuration.
type Engine struct {
	bank  []domain.QuizQuestion
	dims  map[domain.Dimension]domain.DimensionInfo
	byDim map[domain.Dimension][]domain.QuizQuestion
}

// NewEngine validates the configuration once and returns an engine bound to
// it. Validation failures here are programming or release errors, not
// runtime conditions.
func NewEngine(bank []domain.QuizQuestion, dims map[domain.Dimension]domain.DimensionInfo) (*Engine, error) {
	if err := domain.ValidateDimensions(dims); err != nil {
		return nil, err
	}
	if err := domain.ValidateBank(bank); err != nil {
		return nil, err
	}
	return &Engine{
		bank:  bank,
		dims:  dims,
		byDim: domain.QuestionsByDimension(bank),
	}, nil
}

// NewDefaultEngine builds an engine over the shipped question bank and
// dimension weights.
func NewDefaultEngine() (*Engine, error) {
	return NewEngine(domain.QuestionBank, domain.Dimensions)
}

// Questions returns the engine's question bank in its fixed order.
func (e *Engine) Questions() []domain.QuizQuestion {
	return e.bank
}

// Evaluate scores a full or partial answer set. Questions without an entry
// count as 0 (unanswered, worst case) by design; scoring never fails on
// malformed input.
func (e *Engine) Evaluate(answers domain.Answers) domain.QuizResult {
	dimScores := make(map[domain.Dimension]domain.DimensionScore, len(domain.DimensionOrder))

	totalScore := 0
	weightedPercentage := 0.0
	vetoTriggered := false
	var vetoDimension domain.Dimension

	for _, dim := range domain.DimensionOrder {
		questions := e.byDim[dim]
		info := e.dims[dim]

		dimScore := 0
		for _, q := range questions {
			dimScore += clampScore(answers[q.ID])
		}
		dimMax := len(questions) * domain.MaxOptionScore

		percentage := 0.0
		if dimMax > 0 {
			percentage = 100 * float64(dimScore) / float64(dimMax)
		}
		weighted := percentage * info.Weight

		dimScores[dim] = domain.DimensionScore{
			Score:         dimScore,
			MaxScore:      dimMax,
			Percentage:    percentage,
			Weight:        info.Weight,
			WeightedScore: weighted,
		}

		totalScore += dimScore
		weightedPercentage += weighted

		// First qualifying dimension in canonical order wins the veto slot;
		// an average of exactly 0 means "unanswered" and is exempt.
		if !vetoTriggered && len(questions) > 0 {
			avg := float64(dimScore) / float64(len(questions))
			if avg > 0 && avg < domain.VetoThreshold {
				vetoTriggered = true
				vetoDimension = dim
			}
		}
	}

	maxScore := len(e.bank) * domain.MaxOptionScore
	percentage := 0.0
	if maxScore > 0 {
		percentage = 100 * float64(totalScore) / float64(maxScore)
	}

	band := domain.BandForPercentage(weightedPercentage)
	if vetoTriggered {
		band = domain.BandNotReady
	}
	bandInfo := domain.Bands[band]

	return domain.QuizResult{
		TotalScore:         totalScore,
		MaxScore:           maxScore,
		Percentage:         percentage,
		WeightedPercentage: weightedPercentage,
		Band:               band,
		BandName:           bandInfo.Name,
		Description:        bandInfo.Description,
		Recommendations:    bandInfo.Recommendations,
		DimensionScores:    dimScores,
		VetoTriggered:      vetoTriggered,
		VetoDimension:      vetoDimension,
	}
}

// clampScore bounds a raw answer to [0,MaxOptionScore] so hostile input
// cannot push a result outside its documented range.
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > domain.MaxOptionScore {
		return domain.MaxOptionScore
	}
	return score
}
