package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "localhire/internal/errors"
	"localhire/internal/model"
	"localhire/internal/repository"
)

// MockApplicationRepository is a mock implementation of ApplicationRepository.
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Create(ctx context.Context, application *model.Application) error {
	args := m.Called(ctx, application)
	return args.Error(0)
}

func (m *MockApplicationRepository) Update(ctx context.Context, application *model.Application) error {
	args := m.Called(ctx, application)
	return args.Error(0)
}

func (m *MockApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Application), args.Error(1)
}

func (m *MockApplicationRepository) FindByJob(ctx context.Context, jobID uuid.UUID) ([]model.Application, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Application), args.Error(1)
}

func (m *MockApplicationRepository) FindByApplicant(ctx context.Context, applicantID uuid.UUID) ([]model.Application, error) {
	args := m.Called(ctx, applicantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Application), args.Error(1)
}

func (m *MockApplicationRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockApplicationRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

// MockJobRepository is a mock implementation of JobRepository.
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) Create(ctx context.Context, job *model.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, job *model.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Job), args.Error(1)
}

func (m *MockJobRepository) Find(ctx context.Context, filters repository.JobFilters) ([]model.Job, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Job), args.Error(1)
}

func (m *MockJobRepository) FindByEmployer(ctx context.Context, employerID uuid.UUID) ([]model.Job, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Job), args.Error(1)
}

func (m *MockJobRepository) FindByCompany(ctx context.Context, companyID uuid.UUID) ([]model.Job, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Job), args.Error(1)
}

func (m *MockJobRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJobRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

// MockCompanyRepository is a mock implementation of CompanyRepository.
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) Create(ctx context.Context, company *model.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) Update(ctx context.Context, company *model.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Company, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Company), args.Error(1)
}

func (m *MockCompanyRepository) List(ctx context.Context) ([]model.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Company), args.Error(1)
}

func (m *MockCompanyRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCompanyRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

func newApplicationServiceForTest(appRepo *MockApplicationRepository) ApplicationService {
	return NewApplicationService(appRepo, new(MockJobRepository), new(MockUserRepository), new(MockCompanyRepository), nil)
}

func TestApplicationService_Create(t *testing.T) {
	jobID := uuid.New()
	applicantID := uuid.New()

	tests := []struct {
		name          string
		setupMock     func(*MockApplicationRepository)
		expectedError error
	}{
		{
			name: "first application accepted",
			setupMock: func(m *MockApplicationRepository) {
				m.On("FindByJob", mock.Anything, jobID).Return([]model.Application{}, nil)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Application")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "second application to the same job rejected",
			setupMock: func(m *MockApplicationRepository) {
				m.On("FindByJob", mock.Anything, jobID).Return([]model.Application{
					{ID: uuid.New(), JobID: jobID, ApplicantID: applicantID},
				}, nil)
			},
			expectedError: apperrors.ErrDuplicateApplication,
		},
		{
			name: "race lost to unique index still reports duplicate",
			setupMock: func(m *MockApplicationRepository) {
				m.On("FindByJob", mock.Anything, jobID).Return([]model.Application{}, nil)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Application")).Return(apperrors.ErrDuplicateApplication)
			},
			expectedError: apperrors.ErrDuplicateApplication,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockApplicationRepository)
			tt.setupMock(mockRepo)

			svc := newApplicationServiceForTest(mockRepo)
			application, err := svc.Create(context.Background(), CreateApplicationInput{
				JobID:       jobID,
				ApplicantID: applicantID,
				CoverLetter: "I have eight years of wiring experience.",
			})

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, application)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, application)
				assert.Equal(t, model.ApplicationStatusApplied, application.Status)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestApplicationService_SameApplicantDifferentJobs(t *testing.T) {
	applicantID := uuid.New()
	firstJob := uuid.New()
	secondJob := uuid.New()

	mockRepo := new(MockApplicationRepository)
	mockRepo.On("FindByJob", mock.Anything, firstJob).Return([]model.Application{}, nil)
	mockRepo.On("FindByJob", mock.Anything, secondJob).Return([]model.Application{
		{ID: uuid.New(), JobID: secondJob, ApplicantID: uuid.New()},
	}, nil)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Application")).Return(nil).Twice()

	svc := newApplicationServiceForTest(mockRepo)

	_, err := svc.Create(context.Background(), CreateApplicationInput{JobID: firstJob, ApplicantID: applicantID})
	assert.NoError(t, err)

	// A different applicant on the second job does not block this one.
	_, err = svc.Create(context.Background(), CreateApplicationInput{JobID: secondJob, ApplicantID: applicantID})
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
}
