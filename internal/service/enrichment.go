package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"localhire/internal/cache"
	"localhire/internal/model"
	"localhire/internal/repository"
)

const lookupCacheTTL = 5 * time.Minute

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse id %q: %w", raw, err)
	}
	return id, nil
}

func userCacheKey(id uuid.UUID) string    { return "user:" + id.String() }
func companyCacheKey(id uuid.UUID) string { return "company:" + id.String() }

// lookupPublicUser resolves a user reference for enrichment, going through
// the cache first. A missing user resolves to nil, never an error: dangling
// references render as null in responses.
func lookupPublicUser(ctx context.Context, c *cache.Client, repo repository.UserRepository, id uuid.UUID) (*model.PublicUser, error) {
	if data, _ := c.Get(ctx, userCacheKey(id)); data != nil {
		var cached model.PublicUser
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	public := user.Public()
	if payload, err := json.Marshal(public); err == nil {
		_ = c.Set(ctx, userCacheKey(id), payload, lookupCacheTTL)
	}
	return public, nil
}

// lookupCompany resolves a company reference for enrichment; nil on missing.
func lookupCompany(ctx context.Context, c *cache.Client, repo repository.CompanyRepository, id uuid.UUID) (*model.Company, error) {
	if data, _ := c.Get(ctx, companyCacheKey(id)); data != nil {
		var cached model.Company
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	company, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if payload, err := json.Marshal(company); err == nil {
		_ = c.Set(ctx, companyCacheKey(id), payload, lookupCacheTTL)
	}
	return company, nil
}
