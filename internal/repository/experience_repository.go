package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"localhire/internal/model"
)

// ExperienceRepository defines work-experience persistence operations. This
// is the only entity with a delete.
type ExperienceRepository interface {
	Create(ctx context.Context, experience *model.Experience) error
	Update(ctx context.Context, experience *model.Experience) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Experience, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Experience, error)
}

type experienceRepository struct {
	db *gorm.DB
}

// NewExperienceRepository builds a GORM-backed experience repository.
func NewExperienceRepository(db *gorm.DB) ExperienceRepository {
	return &experienceRepository{db: db}
}

func (r *experienceRepository) Create(ctx context.Context, experience *model.Experience) error {
	return r.db.WithContext(ctx).Create(experience).Error
}

func (r *experienceRepository) Update(ctx context.Context, experience *model.Experience) error {
	return r.db.WithContext(ctx).Save(experience).Error
}

func (r *experienceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Experience{}, "id = ?", id).Error
}

func (r *experienceRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Experience, error) {
	var experience model.Experience
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&experience).Error; err != nil {
		return nil, err
	}
	return &experience, nil
}

func (r *experienceRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Experience, error) {
	var experiences []model.Experience
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("id ASC").Find(&experiences).Error; err != nil {
		return nil, err
	}
	return experiences, nil
}
