package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"localhire/internal/service"
)

// UserHandler handles profile endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateUserRequest is a partial profile update; absent fields are untouched.
type UpdateUserRequest struct {
	Password     *string   `json:"password" validate:"omitempty,min=6"`
	FirstName    *string   `json:"firstName"`
	LastName     *string   `json:"lastName"`
	Location     *string   `json:"location"`
	Title        *string   `json:"title"`
	Bio          *string   `json:"bio"`
	Skills       *[]string `json:"skills"`
	ProfilePhoto *string   `json:"profilePhoto"`
}

// Get godoc
// @Summary Get a user profile
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} model.PublicUser
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := h.userService.Get(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// Update godoc
// @Summary Update a user profile
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 200 {object} model.PublicUser
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.userService.Update(c.Request().Context(), id, service.UpdateUserInput{
		Password:     req.Password,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Location:     req.Location,
		Title:        req.Title,
		Bio:          req.Bio,
		Skills:       req.Skills,
		ProfilePhoto: req.ProfilePhoto,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, user)
}
