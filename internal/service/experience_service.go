package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "localhire/internal/errors"
	"localhire/internal/model"
	"localhire/internal/repository"
)

// CreateExperienceInput carries the fields of one work-history entry.
type CreateExperienceInput struct {
	UserID      uuid.UUID
	Title       string
	Company     string
	Description string
	StartDate   string
	EndDate     string
	IsCurrent   bool
}

// UpdateExperienceInput updates an entry; nil fields are left untouched.
type UpdateExperienceInput struct {
	Title       *string
	Company     *string
	Description *string
	StartDate   *string
	EndDate     *string
	IsCurrent   *bool
}

// ExperienceService handles work-history entries.
type ExperienceService interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Experience, error)
	Create(ctx context.Context, input CreateExperienceInput) (*model.Experience, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateExperienceInput) (*model.Experience, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type experienceService struct {
	experienceRepo repository.ExperienceRepository
}

// NewExperienceService creates a new experience service.
func NewExperienceService(experienceRepo repository.ExperienceRepository) ExperienceService {
	return &experienceService{experienceRepo: experienceRepo}
}

func (s *experienceService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Experience, error) {
	experiences, err := s.experienceRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find experiences by user: %w", err)
	}
	return experiences, nil
}

func (s *experienceService) Create(ctx context.Context, input CreateExperienceInput) (*model.Experience, error) {
	experience := &model.Experience{
		UserID:      input.UserID,
		Title:       input.Title,
		Company:     input.Company,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		IsCurrent:   input.IsCurrent,
	}
	if err := s.experienceRepo.Create(ctx, experience); err != nil {
		return nil, fmt.Errorf("create experience: %w", err)
	}
	return experience, nil
}

func (s *experienceService) Update(ctx context.Context, id uuid.UUID, input UpdateExperienceInput) (*model.Experience, error) {
	experience, err := s.experienceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExperienceNotFound
		}
		return nil, fmt.Errorf("find experience: %w", err)
	}

	if input.Title != nil {
		experience.Title = *input.Title
	}
	if input.Company != nil {
		experience.Company = *input.Company
	}
	if input.Description != nil {
		experience.Description = *input.Description
	}
	if input.StartDate != nil {
		experience.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		experience.EndDate = *input.EndDate
	}
	if input.IsCurrent != nil {
		experience.IsCurrent = *input.IsCurrent
	}

	if err := s.experienceRepo.Update(ctx, experience); err != nil {
		return nil, fmt.Errorf("update experience: %w", err)
	}
	return experience, nil
}

func (s *experienceService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.experienceRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete experience: %w", err)
	}
	return nil
}
