package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"localhire/internal/service"
)

// StoryHandler handles testimonial endpoints.
type StoryHandler struct {
	storyService service.StoryService
}

// NewStoryHandler creates a new story handler.
func NewStoryHandler(storyService service.StoryService) *StoryHandler {
	return &StoryHandler{storyService: storyService}
}

// SubmitStoryRequest represents a testimonial submission. The text field is
// named "story" on the wire, matching the submission form.
type SubmitStoryRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required"`
	Title string `json:"title" validate:"required"`
	Story string `json:"story" validate:"required"`
}

// Submit godoc
// @Summary Submit a testimonial story
// @Tags stories
// @Accept json
// @Produce json
// @Param request body SubmitStoryRequest true "Story data"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /stories [post]
func (h *StoryHandler) Submit(c echo.Context) error {
	var req SubmitStoryRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if _, err := h.storyService.Submit(c.Request().Context(), service.SubmitStoryInput{
		Name:    req.Name,
		Email:   req.Email,
		Role:    req.Role,
		Title:   req.Title,
		Content: req.Story,
	}); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "Story submitted successfully"})
}

// List godoc
// @Summary List testimonial stories, newest-first
// @Tags stories
// @Produce json
// @Success 200 {array} model.Story
// @Router /stories [get]
func (h *StoryHandler) List(c echo.Context) error {
	stories, err := h.storyService.List(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, stories)
}
