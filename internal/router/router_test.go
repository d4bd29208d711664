package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localhire/internal/auth"
	"localhire/internal/config"
	"localhire/internal/handler"
	"localhire/internal/model"
)

// stubTokenStore keeps blacklisted token ids in a map.
type stubTokenStore struct {
	blacklisted map[string]bool
}

func (s *stubTokenStore) StoreRefreshToken(ctx context.Context, tokenID, userID, email string, ttl time.Duration) error {
	return nil
}

func (s *stubTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (string, string, error) {
	return "", "", nil
}

func (s *stubTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	return nil
}

func (s *stubTokenStore) BlacklistAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	s.blacklisted[tokenID] = true
	return nil
}

func (s *stubTokenStore) IsAccessTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	return s.blacklisted[tokenID], nil
}

func TestSecuredGroup_RejectsRevokedAccessToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	store := &stubTokenStore{blacklisted: map[string]bool{}}

	e := echo.New()
	Register(e, cfg, store,
		&handler.AuthHandler{}, &handler.UserHandler{}, &handler.CompanyHandler{},
		&handler.JobHandler{}, &handler.ApplicationHandler{}, &handler.MessageHandler{},
		&handler.ExperienceHandler{}, &handler.StoryHandler{}, &handler.AdminHandler{})

	user := &model.User{ID: uuid.New(), Email: "ravi@example.com", UserType: model.UserTypeJobSeeker}
	accessToken, err := jwtService.GenerateAccessToken(user)
	require.NoError(t, err)

	get := func() int {
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+accessToken)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, get())

	tokenID, err := jwtService.ExtractTokenID(accessToken)
	require.NoError(t, err)
	require.NoError(t, store.BlacklistAccessToken(context.Background(), tokenID, time.Minute))

	assert.Equal(t, http.StatusUnauthorized, get())
}
