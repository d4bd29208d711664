package service

import (
	"context"
	"fmt"
	"time"

	"localhire/internal/model"
	"localhire/internal/repository"
)

// PlatformStats is the admin dashboard aggregate.
type PlatformStats struct {
	TotalUsers              int64 `json:"totalUsers"`
	ActiveJobs              int64 `json:"activeJobs"`
	TotalCompanies          int64 `json:"totalCompanies"`
	TotalApplications       int64 `json:"totalApplications"`
	NewUsersThisWeek        int64 `json:"newUsersThisWeek"`
	NewJobsThisWeek         int64 `json:"newJobsThisWeek"`
	NewCompaniesThisWeek    int64 `json:"newCompaniesThisWeek"`
	NewApplicationsThisWeek int64 `json:"newApplicationsThisWeek"`
}

// AdminService serves the admin dashboard: aggregate stats and full listings.
type AdminService interface {
	Stats(ctx context.Context) (*PlatformStats, error)
	ListUsers(ctx context.Context) ([]model.PublicUser, error)
	ListJobs(ctx context.Context) ([]model.Job, error)
	ListCompanies(ctx context.Context) ([]model.Company, error)
}

type adminService struct {
	userRepo        repository.UserRepository
	companyRepo     repository.CompanyRepository
	jobRepo         repository.JobRepository
	applicationRepo repository.ApplicationRepository
	now             func() time.Time
}

// NewAdminService creates a new admin service.
func NewAdminService(
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
	jobRepo repository.JobRepository,
	applicationRepo repository.ApplicationRepository,
) AdminService {
	return &adminService{
		userRepo:        userRepo,
		companyRepo:     companyRepo,
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
		now:             time.Now,
	}
}

// Stats counts live records; "this week" is a rolling seven-day window.
func (s *adminService) Stats(ctx context.Context) (*PlatformStats, error) {
	weekAgo := s.now().AddDate(0, 0, -7)
	stats := &PlatformStats{}

	var err error
	if stats.TotalUsers, err = s.userRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if stats.ActiveJobs, err = s.jobRepo.CountActive(ctx); err != nil {
		return nil, fmt.Errorf("count active jobs: %w", err)
	}
	if stats.TotalCompanies, err = s.companyRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count companies: %w", err)
	}
	if stats.TotalApplications, err = s.applicationRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count applications: %w", err)
	}
	if stats.NewUsersThisWeek, err = s.userRepo.CountSince(ctx, weekAgo); err != nil {
		return nil, fmt.Errorf("count new users: %w", err)
	}
	if stats.NewJobsThisWeek, err = s.jobRepo.CountSince(ctx, weekAgo); err != nil {
		return nil, fmt.Errorf("count new jobs: %w", err)
	}
	if stats.NewCompaniesThisWeek, err = s.companyRepo.CountSince(ctx, weekAgo); err != nil {
		return nil, fmt.Errorf("count new companies: %w", err)
	}
	if stats.NewApplicationsThisWeek, err = s.applicationRepo.CountSince(ctx, weekAgo); err != nil {
		return nil, fmt.Errorf("count new applications: %w", err)
	}
	return stats, nil
}

func (s *adminService) ListUsers(ctx context.Context) ([]model.PublicUser, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	public := make([]model.PublicUser, 0, len(users))
	for i := range users {
		public = append(public, *users[i].Public())
	}
	return public, nil
}

func (s *adminService) ListJobs(ctx context.Context) ([]model.Job, error) {
	jobs, err := s.jobRepo.Find(ctx, repository.JobFilters{})
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

func (s *adminService) ListCompanies(ctx context.Context) ([]model.Company, error) {
	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return companies, nil
}
