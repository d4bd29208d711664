package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"localhire/internal/model"
	"localhire/internal/service"
)

// ApplicationHandler handles job application endpoints.
type ApplicationHandler struct {
	applicationService service.ApplicationService
}

// NewApplicationHandler creates a new application handler.
func NewApplicationHandler(applicationService service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// CreateApplicationRequest represents a job application submission.
type CreateApplicationRequest struct {
	JobID       uuid.UUID `json:"jobId" validate:"required"`
	ApplicantID uuid.UUID `json:"applicantId" validate:"required"`
	CoverLetter string    `json:"coverLetter"`
	Resume      string    `json:"resume"`
	Notes       string    `json:"notes"`
}

// UpdateApplicationRequest is a partial update; absent fields are untouched.
type UpdateApplicationRequest struct {
	Status      *model.ApplicationStatus `json:"status" validate:"omitempty,oneof=applied under_review interview offered rejected"`
	CoverLetter *string                  `json:"coverLetter"`
	Resume      *string                  `json:"resume"`
	Notes       *string                  `json:"notes"`
}

// List godoc
// @Summary List applications for an applicant or a job
// @Tags applications
// @Produce json
// @Param applicantId query string false "Applicant user ID"
// @Param jobId query string false "Job ID"
// @Success 200 {array} service.ApplicationView
// @Failure 400 {object} errors.ErrorResponse
// @Router /applications [get]
func (h *ApplicationHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	applicantID, hasApplicant, err := queryID(c, "applicantId")
	if err != nil {
		return err
	}
	jobID, hasJob, err := queryID(c, "jobId")
	if err != nil {
		return err
	}

	switch {
	case hasApplicant:
		applications, err := h.applicationService.ListByApplicant(ctx, applicantID)
		if err != nil {
			return domainError(err)
		}
		return c.JSON(http.StatusOK, applications)
	case hasJob:
		applications, err := h.applicationService.ListByJob(ctx, jobID)
		if err != nil {
			return domainError(err)
		}
		return c.JSON(http.StatusOK, applications)
	default:
		return badRequest("Either applicantId or jobId is required", "MISSING_FILTER")
	}
}

// Create godoc
// @Summary Apply to a job
// @Tags applications
// @Accept json
// @Produce json
// @Param request body CreateApplicationRequest true "Application data"
// @Success 200 {object} model.Application
// @Failure 400 {object} errors.ErrorResponse
// @Router /applications [post]
func (h *ApplicationHandler) Create(c echo.Context) error {
	var req CreateApplicationRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	application, err := h.applicationService.Create(c.Request().Context(), service.CreateApplicationInput{
		JobID:       req.JobID,
		ApplicantID: req.ApplicantID,
		CoverLetter: req.CoverLetter,
		Resume:      req.Resume,
		Notes:       req.Notes,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, application)
}

// Update godoc
// @Summary Update an application
// @Tags applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param request body UpdateApplicationRequest true "Fields to update"
// @Success 200 {object} model.Application
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /applications/{id} [put]
func (h *ApplicationHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateApplicationRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	application, err := h.applicationService.Update(c.Request().Context(), id, service.UpdateApplicationInput{
		Status:      req.Status,
		CoverLetter: req.CoverLetter,
		Resume:      req.Resume,
		Notes:       req.Notes,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, application)
}
