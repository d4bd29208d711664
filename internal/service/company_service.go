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

// CreateCompanyInput carries the fields accepted when creating a company.
type CreateCompanyInput struct {
	Name        string
	Description string
	Website     string
	Location    string
	Size        string
	Industry    string
	Logo        string
	OwnerID     *uuid.UUID
}

// UpdateCompanyInput updates a company; nil fields are left untouched.
type UpdateCompanyInput struct {
	Name        *string
	Description *string
	Website     *string
	Location    *string
	Size        *string
	Industry    *string
	Logo        *string
}

// CompanyService handles company profiles.
type CompanyService interface {
	Get(ctx context.Context, id uuid.UUID) (*model.Company, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Company, error)
	Create(ctx context.Context, input CreateCompanyInput) (*model.Company, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateCompanyInput) (*model.Company, error)
}

type companyService struct {
	companyRepo repository.CompanyRepository
	cache       *cache.Client
}

// NewCompanyService creates a new company service.
func NewCompanyService(companyRepo repository.CompanyRepository, cache *cache.Client) CompanyService {
	return &companyService{companyRepo: companyRepo, cache: cache}
}

func (s *companyService) Get(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	company, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("find company: %w", err)
	}
	return company, nil
}

func (s *companyService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Company, error) {
	companies, err := s.companyRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("find companies by owner: %w", err)
	}
	return companies, nil
}

func (s *companyService) Create(ctx context.Context, input CreateCompanyInput) (*model.Company, error) {
	company := &model.Company{
		Name:        input.Name,
		Description: input.Description,
		Website:     input.Website,
		Location:    input.Location,
		Size:        input.Size,
		Industry:    input.Industry,
		Logo:        input.Logo,
		OwnerID:     input.OwnerID,
	}
	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, fmt.Errorf("create company: %w", err)
	}
	return company, nil
}

func (s *companyService) Update(ctx context.Context, id uuid.UUID, input UpdateCompanyInput) (*model.Company, error) {
	company, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("find company: %w", err)
	}

	if input.Name != nil {
		company.Name = *input.Name
	}
	if input.Description != nil {
		company.Description = *input.Description
	}
	if input.Website != nil {
		company.Website = *input.Website
	}
	if input.Location != nil {
		company.Location = *input.Location
	}
	if input.Size != nil {
		company.Size = *input.Size
	}
	if input.Industry != nil {
		company.Industry = *input.Industry
	}
	if input.Logo != nil {
		company.Logo = *input.Logo
	}

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, fmt.Errorf("update company: %w", err)
	}

	_ = s.cache.Delete(ctx, companyCacheKey(company.ID))

	return company, nil
}
