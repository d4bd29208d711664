package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"localhire/internal/service"
)

// ExperienceHandler handles work-history endpoints.
type ExperienceHandler struct {
	experienceService service.ExperienceService
}

// NewExperienceHandler creates a new experience handler.
func NewExperienceHandler(experienceService service.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{experienceService: experienceService}
}

// CreateExperienceRequest represents one work-history entry.
type CreateExperienceRequest struct {
	UserID      uuid.UUID `json:"userId" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Company     string    `json:"company" validate:"required"`
	Description string    `json:"description"`
	StartDate   string    `json:"startDate" validate:"required"`
	EndDate     string    `json:"endDate"`
	IsCurrent   bool      `json:"isCurrent"`
}

// UpdateExperienceRequest is a partial update; absent fields are untouched.
type UpdateExperienceRequest struct {
	Title       *string `json:"title"`
	Company     *string `json:"company"`
	Description *string `json:"description"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	IsCurrent   *bool   `json:"isCurrent"`
}

// List godoc
// @Summary List a user's work history
// @Tags experiences
// @Produce json
// @Param userId query string true "User ID"
// @Success 200 {array} model.Experience
// @Failure 400 {object} errors.ErrorResponse
// @Router /experiences [get]
func (h *ExperienceHandler) List(c echo.Context) error {
	userID, hasUser, err := queryID(c, "userId")
	if err != nil {
		return err
	}
	if !hasUser {
		return badRequest("userId is required", "MISSING_USER_ID")
	}

	experiences, err := h.experienceService.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, experiences)
}

// Create godoc
// @Summary Add a work-history entry
// @Tags experiences
// @Accept json
// @Produce json
// @Param request body CreateExperienceRequest true "Experience data"
// @Success 200 {object} model.Experience
// @Failure 400 {object} errors.ErrorResponse
// @Router /experiences [post]
func (h *ExperienceHandler) Create(c echo.Context) error {
	var req CreateExperienceRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	experience, err := h.experienceService.Create(c.Request().Context(), service.CreateExperienceInput{
		UserID:      req.UserID,
		Title:       req.Title,
		Company:     req.Company,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsCurrent:   req.IsCurrent,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, experience)
}

// Update godoc
// @Summary Update a work-history entry
// @Tags experiences
// @Accept json
// @Produce json
// @Param id path string true "Experience ID"
// @Param request body UpdateExperienceRequest true "Fields to update"
// @Success 200 {object} model.Experience
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /experiences/{id} [put]
func (h *ExperienceHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateExperienceRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	experience, err := h.experienceService.Update(c.Request().Context(), id, service.UpdateExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsCurrent:   req.IsCurrent,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, experience)
}

// Delete godoc
// @Summary Delete a work-history entry
// @Tags experiences
// @Produce json
// @Param id path string true "Experience ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /experiences/{id} [delete]
func (h *ExperienceHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.experienceService.Delete(c.Request().Context(), id); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Experience deleted successfully"})
}
