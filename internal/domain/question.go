package domain

import "fmt"

// Role selects which wording variant a respondent sees. Role never affects
// point values, only presentation.
type Role string

const (
	RoleBusiness  Role = "business"
	RoleTechnical Role = "technical"
)

// ParseRole validates a role string. Empty is allowed and means "no variant".
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleBusiness, RoleTechnical:
		return Role(s), nil
	case "":
		return "", nil
	default:
		return "", NewInvalidRoleError(s)
	}
}

// QuizOption is a selectable answer. Scores are 1-4; 0 is reserved for
// "unanswered" and is rejected by bank validation so the veto rule can rely
// on it (see Veto docs in the scoring package).
type QuizOption struct {
	Text     string          `json:"text"`
	Variants map[Role]string `json:"variants,omitempty"`
	Score    int             `json:"score"`
}

// QuizQuestion is one entry of the fixed question bank.
type QuizQuestion struct {
	ID        string          `json:"id"`
	Dimension Dimension       `json:"dimension"`
	Text      string          `json:"text"`
	Variants  map[Role]string `json:"variants,omitempty"`
	Options   []QuizOption    `json:"options"`
}

// QuestionText returns the role-specific wording if present, else the default.
func (q QuizQuestion) QuestionText(role Role) string {
	if v, ok := q.Variants[role]; ok && v != "" {
		return v
	}
	return q.Text
}

// OptionText returns the role-specific wording if present, else the default.
func (o QuizOption) OptionText(role Role) string {
	if v, ok := o.Variants[role]; ok && v != "" {
		return v
	}
	return o.Text
}

// MaxOptionScore is the top score a single answer can carry.
const MaxOptionScore = 4

// ValidateBank checks the question bank invariants: unique IDs, known
// dimensions, at least one question per dimension, exactly four options per
// question, and option scores in [1,4]. Score 0 is forbidden on options so
// that a stored answer of 0 always means "unanswered".
func ValidateBank(bank []QuizQuestion) error {
	if len(bank) == 0 {
		return NewInvalidInputError("question bank is empty")
	}
	seen := make(map[string]struct{}, len(bank))
	perDim := make(map[Dimension]int, len(DimensionOrder))
	for _, q := range bank {
		if q.ID == "" {
			return NewInvalidInputError("question with empty id")
		}
		if _, dup := seen[q.ID]; dup {
			return NewInvalidInputError(fmt.Sprintf("duplicate question id %q", q.ID))
		}
		seen[q.ID] = struct{}{}
		if _, ok := Dimensions[q.Dimension]; !ok {
			return NewInvalidInputError(fmt.Sprintf("question %q has unknown dimension %q", q.ID, q.Dimension))
		}
		perDim[q.Dimension]++
		if len(q.Options) != 4 {
			return NewInvalidInputError(fmt.Sprintf("question %q has %d options, want 4", q.ID, len(q.Options)))
		}
		for i, opt := range q.Options {
			if opt.Score < 1 || opt.Score > MaxOptionScore {
				return NewInvalidInputError(fmt.Sprintf("question %q option %d score %d out of range [1,%d]", q.ID, i, opt.Score, MaxOptionScore))
			}
		}
	}
	for _, dim := range DimensionOrder {
		if perDim[dim] == 0 {
			return NewInvalidInputError(fmt.Sprintf("dimension %q has no questions", dim))
		}
	}
	return nil
}
