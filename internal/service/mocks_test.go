package service

import (
	"context"
	"time"

	"readiness-engine/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockSubmissionRepository ---
type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) Insert(ctx context.Context, sub *domain.Submission) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubmissionRepository) ListByDomain(ctx context.Context, companyDomain string) ([]*domain.Submission, error) {
	args := m.Called(ctx, companyDomain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Submission), args.Error(1)
}

func (m *MockSubmissionRepository) ListAll(ctx context.Context) ([]*domain.Submission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Submission), args.Error(1)
}

func (m *MockSubmissionRepository) EligibleDomains(ctx context.Context, minCount int) ([]domain.CompanyCount, error) {
	args := m.Called(ctx, minCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanyCount), args.Error(1)
}

// --- MockRateLimiter ---
type MockRateLimiter struct {
	mock.Mock
}

func (m *MockRateLimiter) Allow(ctx context.Context, fingerprint string) (bool, error) {
	args := m.Called(ctx, fingerprint)
	return args.Bool(0), args.Error(1)
}

// --- MockPendingQueue ---
type MockPendingQueue struct {
	mock.Mock
}

func (m *MockPendingQueue) Enqueue(ctx context.Context, fingerprint string, sub *domain.Submission) error {
	args := m.Called(ctx, fingerprint, sub)
	return args.Error(0)
}

func (m *MockPendingQueue) List(ctx context.Context, fingerprint string) ([]*domain.Submission, error) {
	args := m.Called(ctx, fingerprint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Submission), args.Error(1)
}

func (m *MockPendingQueue) Clear(ctx context.Context, fingerprint string) error {
	args := m.Called(ctx, fingerprint)
	return args.Error(0)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockInsightsService ---
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
