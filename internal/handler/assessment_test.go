package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"readiness-engine/internal/domain"
	"readiness-engine/internal/dto"
	"readiness-engine/internal/middleware"
	"readiness-engine/internal/scoring"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAssessmentService is a mock implementation of service.AssessmentService
type MockAssessmentService struct {
	mock.Mock
}

func (m *MockAssessmentService) Questions(role domain.Role) *dto.QuestionsResponse {
	args := m.Called(role)
	return args.Get(0).(*dto.QuestionsResponse)
}

func (m *MockAssessmentService) Submit(ctx context.Context, req *dto.SubmitAssessmentRequest) (*dto.SubmitAssessmentResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SubmitAssessmentResponse), args.Error(1)
}

// MockInsightsService is a mock implementation of service.InsightsService
type MockInsightsService struct {
	mock.Mock
}

func (m *MockInsightsService) CompanyComparison(ctx context.Context, companyDomain string, userScore float64) (*domain.CompanyComparison, error) {
	args := m.Called(ctx, companyDomain, userScore)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyComparison), args.Error(1)
}

func (m *MockInsightsService) CompanyRollup(ctx context.Context, companyDomain string) (*domain.CompanyRollup, error) {
	args := m.Called(ctx, companyDomain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyRollup), args.Error(1)
}

func (m *MockInsightsService) AdminStats(ctx context.Context) (*domain.AdminStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminStats), args.Error(1)
}

func (m *MockInsightsService) EligibleCompanies(ctx context.Context) ([]domain.CompanyCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanyCount), args.Error(1)
}

func (m *MockInsightsService) InvalidateCompany(ctx context.Context, companyDomain string) {
	m.Called(ctx, companyDomain)
}

func newTestApp(assessments *MockAssessmentService, insights *MockInsightsService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})

	h := NewAssessmentHandler(assessments, insights)
	admin := NewAdminHandler(insights)

	api := app.Group("/api")
	api.Get("/assessment/questions", h.GetQuestions)
	api.Post("/assessment/submissions", h.SubmitAssessment)
	api.Get("/assessment/companies", h.GetEligibleCompanies)
	api.Get("/assessment/companies/:domain/rollup", h.GetCompanyRollup)
	api.Get("/admin/stats", admin.GetStats)

	return app
}

func TestGetQuestions(t *testing.T) {
	engine, err := scoring.NewDefaultEngine()
	require.NoError(t, err)
	questions := dto.NewQuestionsResponse(engine.Questions(), domain.RoleTechnical)

	t.Run("Success", func(t *testing.T) {
		assessments := new(MockAssessmentService)
		assessments.On("Questions", domain.RoleTechnical).Return(questions)
		app := newTestApp(assessments, new(MockInsightsService))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/assessment/questions?role=technical", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body dto.QuestionsResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, len(questions.Questions), len(body.Questions))
		assessments.AssertExpectations(t)
	})

	t.Run("UnknownRole", func(t *testing.T) {
		app := newTestApp(new(MockAssessmentService), new(MockInsightsService))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/assessment/questions?role=manager", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestSubmitAssessment(t *testing.T) {
	submitBody := func(t *testing.T) io.Reader {
		t.Helper()
		payload, err := json.Marshal(dto.SubmitAssessmentRequest{
			Answers: map[string]int{"data-availability": 3},
			Email:   "alice@acme.com",
		})
		require.NoError(t, err)
		return bytes.NewReader(payload)
	}

	postRequest := func(body io.Reader) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/api/assessment/submissions", body)
		req.Header.Set("Content-Type", "application/json")
		return req
	}

	t.Run("Created", func(t *testing.T) {
		assessments := new(MockAssessmentService)
		assessments.On("Submit", mock.Anything, mock.AnythingOfType("*dto.SubmitAssessmentRequest")).
			Return(&dto.SubmitAssessmentResponse{
				SubmissionID: "01HZX",
				Result:       domain.QuizResult{Band: domain.BandFoundation, WeightedPercentage: 68},
			}, nil)
		app := newTestApp(assessments, new(MockInsightsService))

		resp, err := app.Test(postRequest(submitBody(t)))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body dto.SubmitAssessmentResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "01HZX", body.SubmissionID)
		assert.False(t, body.Queued)
	})

	t.Run("QueuedReturnsAccepted", func(t *testing.T) {
		assessments := new(MockAssessmentService)
		assessments.On("Submit", mock.Anything, mock.Anything).
			Return(&dto.SubmitAssessmentResponse{
				SubmissionID: "01HZY",
				Result:       domain.QuizResult{Band: domain.BandCrossroads},
				Queued:       true,
			}, nil)
		app := newTestApp(assessments, new(MockInsightsService))

		resp, err := app.Test(postRequest(submitBody(t)))
		require.NoError(t, err)
		assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	})

	t.Run("RateLimited", func(t *testing.T) {
		assessments := new(MockAssessmentService)
		assessments.On("Submit", mock.Anything, mock.Anything).
			Return(nil, domain.NewRateLimitedError("Submission limit reached"))
		app := newTestApp(assessments, new(MockInsightsService))

		resp, err := app.Test(postRequest(submitBody(t)))
		require.NoError(t, err)
		assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		app := newTestApp(new(MockAssessmentService), new(MockInsightsService))

		resp, err := app.Test(postRequest(bytes.NewReader([]byte("{not json"))))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetCompanyRollup(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		insights := new(MockInsightsService)
		insights.On("CompanyRollup", mock.Anything, "acme.com").
			Return(&domain.CompanyRollup{Domain: "acme.com", SubmissionCount: 4}, nil)
		app := newTestApp(new(MockAssessmentService), insights)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/assessment/companies/acme.com/rollup", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body dto.RollupResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.NotNil(t, body.Rollup)
		assert.Equal(t, 4, body.Rollup.SubmissionCount)
	})

	t.Run("NotEnoughSubmissions", func(t *testing.T) {
		insights := new(MockInsightsService)
		insights.On("CompanyRollup", mock.Anything, "tiny.io").Return(nil, nil)
		app := newTestApp(new(MockAssessmentService), insights)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/assessment/companies/tiny.io/rollup", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestGetEligibleCompanies(t *testing.T) {
	insights := new(MockInsightsService)
	insights.On("EligibleCompanies", mock.Anything).
		Return([]domain.CompanyCount{{Domain: "acme.com", Count: 5, AverageScore: 61}}, nil)
	app := newTestApp(new(MockAssessmentService), insights)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/assessment/companies", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.EligibleCompaniesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Companies, 1)
	assert.Equal(t, "acme.com", body.Companies[0].Domain)
}

func TestGetAdminStats(t *testing.T) {
	insights := new(MockInsightsService)
	insights.On("AdminStats", mock.Anything).
		Return(&domain.AdminStats{TotalSubmissions: 12, RecentCount: 3}, nil)
	app := newTestApp(new(MockAssessmentService), insights)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.AdminStatsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotNil(t, body.Stats)
	assert.Equal(t, 12, body.Stats.TotalSubmissions)
}
