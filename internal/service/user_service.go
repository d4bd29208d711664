package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"localhire/internal/cache"
	apperrors "localhire/internal/errors"
	"localhire/internal/model"
	"localhire/internal/repository"
)

// UpdateUserInput updates a profile; nil fields are left untouched. A
// non-nil Password is re-hashed before storage.
type UpdateUserInput struct {
	Password     *string
	FirstName    *string
	LastName     *string
	Location     *string
	Title        *string
	Bio          *string
	Skills       *[]string
	ProfilePhoto *string
}

// UserService handles profile reads and updates.
type UserService interface {
	Get(ctx context.Context, id uuid.UUID) (*model.PublicUser, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*model.PublicUser, error)
}

type userService struct {
	userRepo repository.UserRepository
	cache    *cache.Client
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{userRepo: userRepo, cache: cache}
}

func (s *userService) Get(ctx context.Context, id uuid.UUID) (*model.PublicUser, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user.Public(), nil
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*model.PublicUser, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if input.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hashed)
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Location != nil {
		user.Location = *input.Location
	}
	if input.Title != nil {
		user.Title = *input.Title
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.Skills != nil {
		user.Skills = *input.Skills
	}
	if input.ProfilePhoto != nil {
		user.ProfilePhoto = *input.ProfilePhoto
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	// stale enrichment entries would leak the old profile
	_ = s.cache.Delete(ctx, userCacheKey(user.ID))

	return user.Public(), nil
}
