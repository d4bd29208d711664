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

// JobView is a job enriched with its related company and employer. The
// employer is the credential-free projection; missing references stay null.
type JobView struct {
	model.Job
	Company  *model.Company    `json:"company"`
	Employer *model.PublicUser `json:"employer"`
}

// CreateJobInput carries the fields accepted when posting a job.
type CreateJobInput struct {
	Title        string
	Description  string
	Requirements string
	Location     string
	JobType      model.JobType
	SalaryMin    *int
	SalaryMax    *int
	Skills       []string
	CompanyID    *uuid.UUID
	EmployerID   *uuid.UUID
	IsActive     *bool
}

// UpdateJobInput updates a posting; nil fields are left untouched.
type UpdateJobInput struct {
	Title        *string
	Description  *string
	Requirements *string
	Location     *string
	JobType      *model.JobType
	SalaryMin    *int
	SalaryMax    *int
	Skills       *[]string
	IsActive     *bool
}

// JobService handles job search, posting, and enrichment.
type JobService interface {
	List(ctx context.Context, filters repository.JobFilters) ([]JobView, error)
	ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]JobView, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]JobView, error)
	Get(ctx context.Context, id uuid.UUID) (*JobView, error)
	Create(ctx context.Context, input CreateJobInput) (*model.Job, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateJobInput) (*model.Job, error)
}

type jobService struct {
	jobRepo     repository.JobRepository
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
	cache       *cache.Client
}

// NewJobService creates a new job service.
func NewJobService(jobRepo repository.JobRepository, companyRepo repository.CompanyRepository, userRepo repository.UserRepository, cache *cache.Client) JobService {
	return &jobService{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
		userRepo:    userRepo,
		cache:       cache,
	}
}

// List returns matching active jobs, newest-first, enriched.
func (s *jobService) List(ctx context.Context, filters repository.JobFilters) ([]JobView, error) {
	jobs, err := s.jobRepo.Find(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("find jobs: %w", err)
	}
	return s.enrichAll(ctx, jobs)
}

func (s *jobService) ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]JobView, error) {
	jobs, err := s.jobRepo.FindByEmployer(ctx, employerID)
	if err != nil {
		return nil, fmt.Errorf("find jobs by employer: %w", err)
	}
	return s.enrichAll(ctx, jobs)
}

func (s *jobService) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]JobView, error) {
	jobs, err := s.jobRepo.FindByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("find jobs by company: %w", err)
	}
	return s.enrichAll(ctx, jobs)
}

// Get returns one job, enriched, or ErrJobNotFound.
func (s *jobService) Get(ctx context.Context, id uuid.UUID) (*JobView, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	view, err := s.enrich(ctx, *job)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// Create persists a new posting. Active defaults to true.
func (s *jobService) Create(ctx context.Context, input CreateJobInput) (*model.Job, error) {
	skills := input.Skills
	if skills == nil {
		skills = []string{}
	}
	job := &model.Job{
		Title:        input.Title,
		Description:  input.Description,
		Requirements: input.Requirements,
		Location:     input.Location,
		JobType:      input.JobType,
		SalaryMin:    input.SalaryMin,
		SalaryMax:    input.SalaryMax,
		Skills:       skills,
		CompanyID:    input.CompanyID,
		EmployerID:   input.EmployerID,
		IsActive:     input.IsActive,
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return job, nil
}

// Update applies the provided fields to an existing posting.
func (s *jobService) Update(ctx context.Context, id uuid.UUID, input UpdateJobInput) (*model.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}

	if input.Title != nil {
		job.Title = *input.Title
	}
	if input.Description != nil {
		job.Description = *input.Description
	}
	if input.Requirements != nil {
		job.Requirements = *input.Requirements
	}
	if input.Location != nil {
		job.Location = *input.Location
	}
	if input.JobType != nil {
		job.JobType = *input.JobType
	}
	if input.SalaryMin != nil {
		job.SalaryMin = input.SalaryMin
	}
	if input.SalaryMax != nil {
		job.SalaryMax = input.SalaryMax
	}
	if input.Skills != nil {
		job.Skills = *input.Skills
	}
	if input.IsActive != nil {
		job.IsActive = input.IsActive
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	return job, nil
}

// enrich attaches company and employer via independent point lookups. The
// two lookups have no ordering dependency; both must resolve before the
// view is returned.
func (s *jobService) enrich(ctx context.Context, job model.Job) (JobView, error) {
	view := JobView{Job: job}

	if job.CompanyID != nil {
		company, err := lookupCompany(ctx, s.cache, s.companyRepo, *job.CompanyID)
		if err != nil {
			return JobView{}, fmt.Errorf("enrich job company: %w", err)
		}
		view.Company = company
	}
	if job.EmployerID != nil {
		employer, err := lookupPublicUser(ctx, s.cache, s.userRepo, *job.EmployerID)
		if err != nil {
			return JobView{}, fmt.Errorf("enrich job employer: %w", err)
		}
		view.Employer = employer
	}
	return view, nil
}

func (s *jobService) enrichAll(ctx context.Context, jobs []model.Job) ([]JobView, error) {
	views := make([]JobView, 0, len(jobs))
	for _, job := range jobs {
		view, err := s.enrich(ctx, job)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}
