package service

import (
	"context"
	"fmt"

	"localhire/internal/model"
	"localhire/internal/repository"
)

// SubmitStoryInput carries a testimonial submission.
type SubmitStoryInput struct {
	Name    string
	Email   string
	Role    string
	Title   string
	Content string
}

// StoryService handles testimonial submissions.
type StoryService interface {
	Submit(ctx context.Context, input SubmitStoryInput) (*model.Story, error)
	List(ctx context.Context) ([]model.Story, error)
}

type storyService struct {
	storyRepo repository.StoryRepository
}

// NewStoryService creates a new story service.
func NewStoryService(storyRepo repository.StoryRepository) StoryService {
	return &storyService{storyRepo: storyRepo}
}

func (s *storyService) Submit(ctx context.Context, input SubmitStoryInput) (*model.Story, error) {
	story := &model.Story{
		Name:    input.Name,
		Email:   input.Email,
		Role:    input.Role,
		Title:   input.Title,
		Content: input.Content,
	}
	if err := s.storyRepo.Create(ctx, story); err != nil {
		return nil, fmt.Errorf("create story: %w", err)
	}
	return story, nil
}

func (s *storyService) List(ctx context.Context) ([]model.Story, error) {
	stories, err := s.storyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}
	return stories, nil
}
