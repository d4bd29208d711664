package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"localhire/internal/model"
)

// JobRepository defines job persistence and search operations. Both the GORM
// and in-memory implementations must satisfy the same filter contract; see
// the contract test suite.
type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	Update(ctx context.Context, job *model.Job) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Job, error)
	// Find returns active jobs matching the filters, newest-first.
	Find(ctx context.Context, filters JobFilters) ([]model.Job, error)
	FindByEmployer(ctx context.Context, employerID uuid.UUID) ([]model.Job, error)
	FindByCompany(ctx context.Context, companyID uuid.UUID) ([]model.Job, error)
	CountActive(ctx context.Context) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}

type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository builds a GORM-backed job repository.
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *jobRepository) Update(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

func (r *jobRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	var job model.Job
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// Find pushes the isActive, location, jobType, and search predicates into
// SQL. Skills are matched in Go afterwards: the skills column is a
// serialized list, and the any-of substring semantics do not map onto a
// portable SQL expression. LOWER(...) LIKE is used instead of ILIKE so the
// same query runs on the SQLite-backed contract tests.
func (r *jobRepository) Find(ctx context.Context, filters JobFilters) ([]model.Job, error) {
	query := r.db.WithContext(ctx).Where("is_active = ?", true)

	if loc, ok := filters.LocationFilter(); ok {
		query = query.Where(`LOWER(location) LIKE LOWER(?) ESCAPE '\'`, "%"+escapeLike(loc)+"%")
	}
	if jt, ok := filters.JobTypeFilter(); ok {
		query = query.Where("job_type = ?", jt)
	}
	if search, ok := filters.SearchFilter(); ok {
		pattern := "%" + escapeLike(search) + "%"
		query = query.Where(
			r.db.Where(`LOWER(title) LIKE LOWER(?) ESCAPE '\'`, pattern).
				Or(`LOWER(description) LIKE LOWER(?) ESCAPE '\'`, pattern),
		)
	}

	var jobs []model.Job
	if err := query.Order("created_at DESC, id DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}

	if len(filters.Skills) == 0 {
		return jobs, nil
	}
	matched := make([]model.Job, 0, len(jobs))
	for _, job := range jobs {
		if jobMatchesSkills(job.Skills, filters.Skills) {
			matched = append(matched, job)
		}
	}
	return matched, nil
}

func (r *jobRepository) FindByEmployer(ctx context.Context, employerID uuid.UUID) ([]model.Job, error) {
	var jobs []model.Job
	if err := r.db.WithContext(ctx).Where("employer_id = ?", employerID).
		Order("created_at DESC, id DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) FindByCompany(ctx context.Context, companyID uuid.UUID) ([]model.Job, error) {
	var jobs []model.Job
	if err := r.db.WithContext(ctx).Where("company_id = ?", companyID).
		Order("created_at DESC, id DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) CountActive(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Job{}).
		Where("is_active = ?", true).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *jobRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Job{}).
		Where("created_at >= ?", since).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
