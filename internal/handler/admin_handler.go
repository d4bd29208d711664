package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"localhire/internal/service"
)

// AdminHandler serves the admin dashboard endpoints.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// Stats godoc
// @Summary Platform aggregate statistics
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.PlatformStats
// @Failure 401 {object} errors.ErrorResponse
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.adminService.Stats(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

// Users godoc
// @Summary List all users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.PublicUser
// @Failure 401 {object} errors.ErrorResponse
// @Router /admin/users [get]
func (h *AdminHandler) Users(c echo.Context) error {
	users, err := h.adminService.ListUsers(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// Jobs godoc
// @Summary List all active jobs
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Job
// @Failure 401 {object} errors.ErrorResponse
// @Router /admin/jobs [get]
func (h *AdminHandler) Jobs(c echo.Context) error {
	jobs, err := h.adminService.ListJobs(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, jobs)
}

// Companies godoc
// @Summary List all companies
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Company
// @Failure 401 {object} errors.ErrorResponse
// @Router /admin/companies [get]
func (h *AdminHandler) Companies(c echo.Context) error {
	companies, err := h.adminService.ListCompanies(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, companies)
}
