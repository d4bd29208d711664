package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"localhire/internal/cache"
	apperrors "localhire/internal/errors"
	"localhire/internal/model"
	"localhire/internal/repository"
)

// ApplicationView is an application enriched with its job, applicant, and
// the job's company.
type ApplicationView struct {
	model.Application
	Job       *model.Job        `json:"job"`
	Applicant *model.PublicUser `json:"applicant"`
	Company   *model.Company    `json:"company"`
}

// CreateApplicationInput carries the fields accepted when applying to a job.
// The job's existence is intentionally not verified.
type CreateApplicationInput struct {
	JobID       uuid.UUID
	ApplicantID uuid.UUID
	CoverLetter string
	Resume      string
	Notes       string
}

// UpdateApplicationInput updates an application; nil fields are left untouched.
type UpdateApplicationInput struct {
	Status      *model.ApplicationStatus
	CoverLetter *string
	Resume      *string
	Notes       *string
}

// ApplicationService handles application submission and listing.
type ApplicationService interface {
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]ApplicationView, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]ApplicationView, error)
	Create(ctx context.Context, input CreateApplicationInput) (*model.Application, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateApplicationInput) (*model.Application, error)
}

type applicationService struct {
	applicationRepo repository.ApplicationRepository
	jobRepo         repository.JobRepository
	userRepo        repository.UserRepository
	companyRepo     repository.CompanyRepository
	cache           *cache.Client
}

// NewApplicationService creates a new application service.
func NewApplicationService(
	applicationRepo repository.ApplicationRepository,
	jobRepo repository.JobRepository,
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
	cache *cache.Client,
) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		userRepo:        userRepo,
		companyRepo:     companyRepo,
		cache:           cache,
	}
}

func (s *applicationService) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]ApplicationView, error) {
	applications, err := s.applicationRepo.FindByApplicant(ctx, applicantID)
	if err != nil {
		return nil, fmt.Errorf("find applications by applicant: %w", err)
	}
	return s.enrichAll(ctx, applications)
}

func (s *applicationService) ListByJob(ctx context.Context, jobID uuid.UUID) ([]ApplicationView, error) {
	applications, err := s.applicationRepo.FindByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("find applications by job: %w", err)
	}
	return s.enrichAll(ctx, applications)
}

// Create submits an application, enforcing one application per (job,
// applicant). The guard is a check-then-insert; on the database backend the
// unique index catches the race and Create still reports the duplicate.
func (s *applicationService) Create(ctx context.Context, input CreateApplicationInput) (*model.Application, error) {
	existing, err := s.applicationRepo.FindByJob(ctx, input.JobID)
	if err != nil {
		return nil, fmt.Errorf("check existing applications: %w", err)
	}
	for _, app := range existing {
		if app.ApplicantID == input.ApplicantID {
			return nil, apperrors.ErrDuplicateApplication
		}
	}

	application := &model.Application{
		JobID:       input.JobID,
		ApplicantID: input.ApplicantID,
		Status:      model.ApplicationStatusApplied,
		CoverLetter: input.CoverLetter,
		Resume:      input.Resume,
		Notes:       input.Notes,
	}
	if err := s.applicationRepo.Create(ctx, application); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateApplication) {
			return nil, apperrors.ErrDuplicateApplication
		}
		return nil, fmt.Errorf("create application: %w", err)
	}
	return application, nil
}

// Update applies the provided fields and bumps updatedAt.
func (s *applicationService) Update(ctx context.Context, id uuid.UUID, input UpdateApplicationInput) (*model.Application, error) {
	application, err := s.applicationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("find application: %w", err)
	}

	if input.Status != nil {
		application.Status = *input.Status
	}
	if input.CoverLetter != nil {
		application.CoverLetter = *input.CoverLetter
	}
	if input.Resume != nil {
		application.Resume = *input.Resume
	}
	if input.Notes != nil {
		application.Notes = *input.Notes
	}

	if err := s.applicationRepo.Update(ctx, application); err != nil {
		return nil, fmt.Errorf("update application: %w", err)
	}
	return application, nil
}

// enrich attaches the job, applicant, and the job's company. Each reference
// is an independent point lookup; missing references stay null.
func (s *applicationService) enrich(ctx context.Context, application model.Application) (ApplicationView, error) {
	view := ApplicationView{Application: application}

	job, err := s.jobRepo.FindByID(ctx, application.JobID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return ApplicationView{}, fmt.Errorf("enrich application job: %w", err)
	}
	view.Job = job

	applicant, err := lookupPublicUser(ctx, s.cache, s.userRepo, application.ApplicantID)
	if err != nil {
		return ApplicationView{}, fmt.Errorf("enrich application applicant: %w", err)
	}
	view.Applicant = applicant

	if job != nil && job.CompanyID != nil {
		company, err := lookupCompany(ctx, s.cache, s.companyRepo, *job.CompanyID)
		if err != nil {
			return ApplicationView{}, fmt.Errorf("enrich application company: %w", err)
		}
		view.Company = company
	}
	return view, nil
}

func (s *applicationService) enrichAll(ctx context.Context, applications []model.Application) ([]ApplicationView, error) {
	views := make([]ApplicationView, 0, len(applications))
	for _, application := range applications {
		view, err := s.enrich(ctx, application)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}
