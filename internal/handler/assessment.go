package handler

import (
	"readiness-engine/internal/domain"
	"readiness-engine/internal/dto"
	"readiness-engine/internal/logger"
	"readiness-engine/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AssessmentHandler handles assessment-related HTTP requests
type AssessmentHandler struct {
	assessments service.AssessmentService
	insights    service.InsightsService
}

// NewAssessmentHandler creates a new AssessmentHandler instance
func NewAssessmentHandler(assessments service.AssessmentService, insights service.InsightsService) *AssessmentHandler {
	return &AssessmentHandler{
		assessments: assessments,
		insights:    insights,
	}
}

// GetQuestions godoc
// @Summary Get the assessment question bank
// @Description Returns all questions with text resolved for the given role
// @Tags assessment
// @Accept json
// @Produce json
// @Param role query string false "Respondent role (business or technical)"
// @Success 200 {object} dto.QuestionsResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /assessment/questions [get]
func (h *AssessmentHandler) GetQuestions(c *fiber.Ctx) error {
	role, err := domain.ParseRole(c.Query("role"))
	if err != nil {
		return err
	}
	return c.JSON(h.assessments.Questions(role))
}

// SubmitAssessment godoc
// @Summary Submit a completed assessment
// @Description Scores the answers, persists the submission and returns the result
// @Tags assessment
// @Accept json
// @Produce json
// @Param submission body dto.SubmitAssessmentRequest true "Submission payload"
// @Success 201 {object} dto.SubmitAssessmentResponse
// @Success 202 {object} dto.SubmitAssessmentResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 429 {object} middleware.ErrorResponse
// @Router /assessment/submissions [post]
func (h *AssessmentHandler) SubmitAssessment(c *fiber.Ctx) error {
	var req dto.SubmitAssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Warn("Failed to parse submission body", zap.Error(err))
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.assessments.Submit(c.Context(), &req)
	if err != nil {
		return err
	}

	// Queued means the result is scored but not yet durable.
	status := fiber.StatusCreated
	if resp.Queued {
		status = fiber.StatusAccepted
	}
	return c.Status(status).JSON(resp)
}

// GetCompanyRollup godoc
// @Summary Get the aggregated report for one company
// @Description Returns the anonymized multi-person rollup for a company domain
// @Tags assessment
// @Accept json
// @Produce json
// @Param domain path string true "Company domain"
// @Success 200 {object} dto.RollupResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /assessment/companies/{domain}/rollup [get]
func (h *AssessmentHandler) GetCompanyRollup(c *fiber.Ctx) error {
	companyDomain := c.Params("domain")

	rollup, err := h.insights.CompanyRollup(c.Context(), companyDomain)
	if err != nil {
		return err
	}
	if rollup == nil {
		return domain.NewNotFoundError("Not enough submissions for this company yet")
	}
	return c.JSON(dto.RollupResponse{Rollup: rollup})
}

// GetEligibleCompanies godoc
// @Summary List companies with enough submissions for a rollup
// @Tags assessment
// @Accept json
// @Produce json
// @Success 200 {object} dto.EligibleCompaniesResponse
// @Router /assessment/companies [get]
func (h *AssessmentHandler) GetEligibleCompanies(c *fiber.Ctx) error {
	companies, err := h.insights.EligibleCompanies(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.EligibleCompaniesResponse{Companies: companies})
}
