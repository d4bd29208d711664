package repository

import (
	"context"

	"gorm.io/gorm"

	"localhire/internal/model"
)

// StoryRepository defines testimonial persistence operations. Stories are
// append-only.
type StoryRepository interface {
	Create(ctx context.Context, story *model.Story) error
	List(ctx context.Context) ([]model.Story, error)
}

type storyRepository struct {
	db *gorm.DB
}

// NewStoryRepository builds a GORM-backed story repository.
func NewStoryRepository(db *gorm.DB) StoryRepository {
	return &storyRepository{db: db}
}

func (r *storyRepository) Create(ctx context.Context, story *model.Story) error {
	return r.db.WithContext(ctx).Create(story).Error
}

func (r *storyRepository) List(ctx context.Context) ([]model.Story, error) {
	var stories []model.Story
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&stories).Error; err != nil {
		return nil, err
	}
	return stories, nil
}
