package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"readiness-engine/internal/domain"
	"readiness-engine/internal/repository/models"
	"readiness-engine/internal/util"

	"github.com/jmoiron/sqlx"
)

const submissionColumns = `
	id,
	email,
	company_domain,
	role,
	answers,
	total_score,
	max_score,
	percentage,
	weighted_percentage,
	band,
	veto_triggered,
	veto_dimension,
	dimension_scores,
	created_at`

// SubmissionDatabaseAdapter implements domain.SubmissionRepository using sqlx.DB
type SubmissionDatabaseAdapter struct {
	db *sqlx.DB
}

// NewSubmissionDatabaseAdapter creates a new instance of SubmissionDatabaseAdapter
func NewSubmissionDatabaseAdapter(db *sqlx.DB) domain.SubmissionRepository {
	return &SubmissionDatabaseAdapter{db: db}
}

// Insert implements domain.SubmissionRepository. Submissions are insert-only;
// there is no update path by design.
func (a *SubmissionDatabaseAdapter) Insert(ctx context.Context, sub *domain.Submission) error {
	model, err := toModelSubmission(sub)
	if err != nil {
		return err
	}
	if model.ID == "" {
		model.ID = util.NewULID()
	}
	if model.CreatedAt.IsZero() {
		model.CreatedAt = time.Now()
	}

	query := `INSERT INTO submissions (` + submissionColumns + `
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
	)`

	_, err = a.db.ExecContext(ctx, query,
		model.ID,
		model.Email,
		model.CompanyDomain,
		model.Role,
		model.Answers,
		model.TotalScore,
		model.MaxScore,
		model.Percentage,
		model.WeightedPercentage,
		model.Band,
		model.VetoTriggered,
		model.VetoDimension,
		model.DimensionScores,
		model.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}

	sub.ID = model.ID
	sub.CreatedAt = model.CreatedAt
	return nil
}

// ListByDomain implements domain.SubmissionRepository
func (a *SubmissionDatabaseAdapter) ListByDomain(ctx context.Context, companyDomain string) ([]*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + `
	FROM submissions
	WHERE company_domain = $1
	ORDER BY created_at DESC`

	var rows []*models.Submission
	if err := a.db.SelectContext(ctx, &rows, query, companyDomain); err != nil {
		return nil, fmt.Errorf("failed to list submissions for domain %s: %w", companyDomain, err)
	}
	return toDomainSubmissions(rows)
}

// ListAll implements domain.SubmissionRepository
func (a *SubmissionDatabaseAdapter) ListAll(ctx context.Context) ([]*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + `
	FROM submissions
	ORDER BY created_at DESC`

	var rows []*models.Submission
	if err := a.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return toDomainSubmissions(rows)
}

// EligibleDomains implements domain.SubmissionRepository
func (a *SubmissionDatabaseAdapter) EligibleDomains(ctx context.Context, minCount int) ([]domain.CompanyCount, error) {
	query := `SELECT
		company_domain,
		COUNT(*) AS submission_count,
		AVG(weighted_percentage) AS average_score
	FROM submissions
	WHERE company_domain IS NOT NULL AND company_domain <> ''
	GROUP BY company_domain
	HAVING COUNT(*) >= $1
	ORDER BY COUNT(*) DESC`

	rows, err := a.db.QueryxContext(ctx, query, minCount)
	if err != nil {
		return nil, fmt.Errorf("failed to query eligible domains: %w", err)
	}
	defer rows.Close()

	var counts []domain.CompanyCount
	for rows.Next() {
		var row struct {
			CompanyDomain   string  `db:"company_domain"`
			SubmissionCount int     `db:"submission_count"`
			AverageScore    float64 `db:"average_score"`
		}
		if err := rows.StructScan(&row); err != nil {
			return nil, fmt.Errorf("failed to scan eligible domain row: %w", err)
		}
		counts = append(counts, domain.CompanyCount{
			Domain:       row.CompanyDomain,
			Count:        row.SubmissionCount,
			AverageScore: row.AverageScore,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during eligible domain iteration: %w", err)
	}
	return counts, nil
}

// Helper functions for model conversion

func toModelSubmission(d *domain.Submission) (*models.Submission, error) {
	if d == nil {
		return nil, fmt.Errorf("cannot convert nil submission")
	}

	answers, err := json.Marshal(d.Answers)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal answers: %w", err)
	}
	dimScores, err := json.Marshal(d.Result.DimensionScores)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal dimension scores: %w", err)
	}

	return &models.Submission{
		ID:                 d.ID,
		Email:              util.StringToNullString(d.Email),
		CompanyDomain:      util.StringToNullString(d.CompanyDomain),
		Role:               util.StringToNullString(string(d.Role)),
		Answers:            answers,
		TotalScore:         d.Result.TotalScore,
		MaxScore:           d.Result.MaxScore,
		Percentage:         d.Result.Percentage,
		WeightedPercentage: d.Result.WeightedPercentage,
		Band:               string(d.Result.Band),
		VetoTriggered:      d.Result.VetoTriggered,
		VetoDimension:      util.StringToNullString(string(d.Result.VetoDimension)),
		DimensionScores:    dimScores,
		CreatedAt:          d.CreatedAt,
	}, nil
}

func toDomainSubmission(m *models.Submission) (*domain.Submission, error) {
	if m == nil {
		return nil, fmt.Errorf("cannot convert nil submission row")
	}

	var answers domain.Answers
	if len(m.Answers) > 0 {
		if err := json.Unmarshal(m.Answers, &answers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal answers for %s: %w", m.ID, err)
		}
	}
	var dimScores map[domain.Dimension]domain.DimensionScore
	if len(m.DimensionScores) > 0 {
		if err := json.Unmarshal(m.DimensionScores, &dimScores); err != nil {
			return nil, fmt.Errorf("failed to unmarshal dimension scores for %s: %w", m.ID, err)
		}
	}

	band := domain.ResultBand(m.Band)
	bandInfo := domain.Bands[band]

	return &domain.Submission{
		ID:            m.ID,
		Email:         util.NullStringToString(m.Email),
		CompanyDomain: util.NullStringToString(m.CompanyDomain),
		Role:          domain.Role(util.NullStringToString(m.Role)),
		Answers:       answers,
		Result: domain.QuizResult{
			TotalScore:         m.TotalScore,
			MaxScore:           m.MaxScore,
			Percentage:         m.Percentage,
			WeightedPercentage: m.WeightedPercentage,
			Band:               band,
			BandName:           bandInfo.Name,
			Description:        bandInfo.Description,
			Recommendations:    bandInfo.Recommendations,
			DimensionScores:    dimScores,
			VetoTriggered:      m.VetoTriggered,
			VetoDimension:      domain.Dimension(util.NullStringToString(m.VetoDimension)),
		},
		CreatedAt: m.CreatedAt,
	}, nil
}

func toDomainSubmissions(rows []*models.Submission) ([]*domain.Submission, error) {
	if len(rows) == 0 {
		return []*domain.Submission{}, nil
	}
	subs := make([]*domain.Submission, 0, len(rows))
	for _, row := range rows {
		sub, err := toDomainSubmission(row)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, nil
}
