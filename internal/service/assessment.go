package service

import (
	"context"
	"time"

	"readiness-engine/internal/domain"
	"readiness-engine/internal/dto"
	"readiness-engine/internal/logger"
	"readiness-engine/internal/scoring"
	"readiness-engine/internal/util"

	"go.uber.org/zap"
)

// AssessmentService is the submission-side surface: serving the question bank
// and scoring + persisting submissions.
type AssessmentService interface {
	Questions(role domain.Role) *dto.QuestionsResponse
	Submit(ctx context.Context, req *dto.SubmitAssessmentRequest) (*dto.SubmitAssessmentResponse, error)
}

const (
	// insertAttempts is the initial store write plus three retries.
	insertAttempts = 4
	// retryBaseDelay doubles before each retry: 1s, 2s, 4s.
	retryBaseDelay = time.Second
)

type assessmentService struct {
	engine   *scoring.Engine
	repo     domain.SubmissionRepository
	limiter  domain.RateLimiter
	pending  domain.PendingQueue
	insights InsightsService
	sleep    func(time.Duration)
	now      func() time.Time
}

// NewAssessmentService creates a new AssessmentService.
func NewAssessmentService(
	engine *scoring.Engine,
	repo domain.SubmissionRepository,
	limiter domain.RateLimiter,
	pending domain.PendingQueue,
	insights InsightsService,
) AssessmentService {
	return &assessmentService{
		engine:   engine,
		repo:     repo,
		limiter:  limiter,
		pending:  pending,
		insights: insights,
		sleep:    time.Sleep,
		now:      time.Now,
	}
}

// Questions implements AssessmentService.
func (s *assessmentService) Questions(role domain.Role) *dto.QuestionsResponse {
	return dto.NewQuestionsResponse(s.engine.Questions(), role)
}

// Submit implements AssessmentService. Scoring never fails; what can fail is
// everything around it, and the contract is that the caller still gets their
// result whenever possible. A store outage parks the submission in the
// pending queue and reports Queued instead of erroring.
func (s *assessmentService) Submit(ctx context.Context, req *dto.SubmitAssessmentRequest) (*dto.SubmitAssessmentResponse, error) {
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}
	if req.Email != "" && !util.IsValidEmail(req.Email) {
		return nil, domain.NewInvalidEmailError(req.Email)
	}

	fingerprint := util.Fingerprint(
		req.Client.UserAgent,
		req.Client.Language,
		req.Client.ScreenWidth,
		req.Client.ScreenHeight,
		req.Client.TimezoneOffset,
	)

	allowed, err := s.limiter.Allow(ctx, fingerprint)
	if err != nil {
		// A broken limiter must not block submissions; fail open.
		logger.Get().Warn("Rate limiter unavailable, allowing submission",
			zap.String("fingerprint", fingerprint),
			zap.Error(err))
	} else if !allowed {
		return nil, domain.NewRateLimitedError("Submission limit reached, please try again later")
	}

	s.replayPending(ctx, fingerprint)

	result := s.engine.Evaluate(domain.Answers(req.Answers))

	companyDomain := util.ExtractDomain(req.Email)
	if util.IsPersonalDomain(companyDomain) {
		// Personal mail providers are not companies; keep them out of the
		// aggregate views.
		companyDomain = ""
	}

	sub := &domain.Submission{
		ID:            util.NewULID(),
		Email:         req.Email,
		CompanyDomain: companyDomain,
		Role:          role,
		Answers:       domain.Answers(req.Answers),
		Result:        result,
		CreatedAt:     s.now().UTC(),
	}

	if err := s.insertWithRetry(ctx, sub); err != nil {
		if qerr := s.pending.Enqueue(ctx, fingerprint, sub); qerr != nil {
			logger.Get().Error("Failed to queue submission after store failure",
				zap.String("submission_id", sub.ID),
				zap.Error(qerr))
			return nil, domain.NewStoreFailureError(err)
		}
		logger.Get().Warn("Submission queued pending store recovery",
			zap.String("submission_id", sub.ID),
			zap.Error(err))
		return &dto.SubmitAssessmentResponse{
			SubmissionID: sub.ID,
			Result:       result,
			Queued:       true,
		}, nil
	}

	s.insights.InvalidateCompany(ctx, sub.CompanyDomain)

	comparison, err := s.insights.CompanyComparison(ctx, sub.CompanyDomain, result.WeightedPercentage)
	if err != nil {
		// The comparison is a bonus; never fail the submission over it.
		logger.Get().Warn("Failed to compute company comparison",
			zap.String("company_domain", sub.CompanyDomain),
			zap.Error(err))
		comparison = nil
	}

	return &dto.SubmitAssessmentResponse{
		SubmissionID: sub.ID,
		Result:       result,
		Comparison:   comparison,
	}, nil
}

// insertWithRetry writes the submission, backing off 1s, 2s, 4s between
// attempts. The last error is returned once attempts are exhausted.
func (s *assessmentService) insertWithRetry(ctx context.Context, sub *domain.Submission) error {
	var err error
	for attempt := 0; attempt < insertAttempts; attempt++ {
		if attempt > 0 {
			s.sleep(retryBaseDelay << (attempt - 1))
		}
		if err = s.repo.Insert(ctx, sub); err == nil {
			return nil
		}
		logger.Get().Warn("Submission insert failed",
			zap.String("submission_id", sub.ID),
			zap.Int("attempt", attempt+1),
			zap.Error(err))
	}
	return err
}

// replayPending drains this client's queued submissions into the store. Each
// entry gets a single attempt; whatever still fails goes back on the queue
// for the next submission to pick up.
func (s *assessmentService) replayPending(ctx context.Context, fingerprint string) {
	queued, err := s.pending.List(ctx, fingerprint)
	if err != nil {
		logger.Get().Warn("Failed to read pending queue",
			zap.String("fingerprint", fingerprint),
			zap.Error(err))
		return
	}
	if len(queued) == 0 {
		return
	}

	if err := s.pending.Clear(ctx, fingerprint); err != nil {
		// Leaving the queue in place risks duplicate inserts on replay, so
		// skip this round and try again next time.
		logger.Get().Warn("Failed to clear pending queue before replay",
			zap.String("fingerprint", fingerprint),
			zap.Error(err))
		return
	}

	replayed := 0
	for _, sub := range queued {
		if err := s.repo.Insert(ctx, sub); err != nil {
			logger.Get().Warn("Replay of queued submission failed",
				zap.String("submission_id", sub.ID),
				zap.Error(err))
			if qerr := s.pending.Enqueue(ctx, fingerprint, sub); qerr != nil {
				logger.Get().Error("Dropped queued submission after replay failure",
					zap.String("submission_id", sub.ID),
					zap.Error(qerr))
			}
			continue
		}
		replayed++
		s.insights.InvalidateCompany(ctx, sub.CompanyDomain)
	}
	if replayed > 0 {
		logger.Get().Info("Replayed queued submissions",
			zap.String("fingerprint", fingerprint),
			zap.Int("count", replayed))
	}
}
