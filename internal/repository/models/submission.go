package models

import (
	"database/sql"
	"encoding/json"
	"time"
)

// Submission is the database representation of one assessment submission.
// Answers and the per-dimension breakdown are stored as JSONB; band copy
// (name, description, recommendations) is derived data and is rebuilt from
// configuration on read instead of being persisted.
type Submission struct {
	ID                 string          `db:"id"`
	Email              sql.NullString  `db:"email"`
	CompanyDomain      sql.NullString  `db:"company_domain"`
	Role               sql.NullString  `db:"role"`
	Answers            json.RawMessage `db:"answers"`
	TotalScore         int             `db:"total_score"`
	MaxScore           int             `db:"max_score"`
	Percentage         float64         `db:"percentage"`
	WeightedPercentage float64         `db:"weighted_percentage"`
	Band               string          `db:"band"`
	VetoTriggered      bool            `db:"veto_triggered"`
	VetoDimension      sql.NullString  `db:"veto_dimension"`
	DimensionScores    json.RawMessage `db:"dimension_scores"`
	CreatedAt          time.Time       `db:"created_at"`
}
