package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "localhire/internal/errors"
	"localhire/internal/model"
)

// ApplicationRepository defines application persistence operations. Create
// returns ErrDuplicateApplication when the (job, applicant) pair already
// exists, on every backend.
type ApplicationRepository interface {
	Create(ctx context.Context, application *model.Application) error
	Update(ctx context.Context, application *model.Application) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error)
	FindByJob(ctx context.Context, jobID uuid.UUID) ([]model.Application, error)
	FindByApplicant(ctx context.Context, applicantID uuid.UUID) ([]model.Application, error)
	Count(ctx context.Context) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository builds a GORM-backed application repository.
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, application *model.Application) error {
	err := r.db.WithContext(ctx).Create(application).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// unique index on (job_id, applicant_id) backstops the service-level
		// check-then-insert against concurrent submissions
		return apperrors.ErrDuplicateApplication
	}
	return err
}

func (r *applicationRepository) Update(ctx context.Context, application *model.Application) error {
	return r.db.WithContext(ctx).Save(application).Error
}

func (r *applicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	var application model.Application
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&application).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) FindByJob(ctx context.Context, jobID uuid.UUID) ([]model.Application, error) {
	var applications []model.Application
	if err := r.db.WithContext(ctx).Where("job_id = ?", jobID).
		Order("applied_at ASC, id ASC").Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *applicationRepository) FindByApplicant(ctx context.Context, applicantID uuid.UUID) ([]model.Application, error) {
	var applications []model.Application
	if err := r.db.WithContext(ctx).Where("applicant_id = ?", applicantID).
		Order("applied_at ASC, id ASC").Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *applicationRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Application{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *applicationRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Application{}).
		Where("applied_at >= ?", since).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
