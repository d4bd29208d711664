package handler

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"localhire/internal/model"
	"localhire/internal/repository"
	"localhire/internal/service"
)

// JobHandler handles job posting and search endpoints.
type JobHandler struct {
	jobService service.JobService
}

// NewJobHandler creates a new job handler.
func NewJobHandler(jobService service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// CreateJobRequest represents a job posting request.
type CreateJobRequest struct {
	Title        string        `json:"title" validate:"required"`
	Description  string        `json:"description" validate:"required"`
	Requirements string        `json:"requirements" validate:"required"`
	Location     string        `json:"location" validate:"required"`
	JobType      model.JobType `json:"jobType" validate:"required,oneof=full-time part-time contract remote"`
	SalaryMin    *int          `json:"salaryMin"`
	SalaryMax    *int          `json:"salaryMax"`
	Skills       []string      `json:"skills"`
	CompanyID    *uuid.UUID    `json:"companyId"`
	EmployerID   *uuid.UUID    `json:"employerId"`
	IsActive     *bool         `json:"isActive"`
}

// UpdateJobRequest is a partial job update; absent fields are untouched.
type UpdateJobRequest struct {
	Title        *string        `json:"title"`
	Description  *string        `json:"description"`
	Requirements *string        `json:"requirements"`
	Location     *string        `json:"location"`
	JobType      *model.JobType `json:"jobType" validate:"omitempty,oneof=full-time part-time contract remote"`
	SalaryMin    *int           `json:"salaryMin"`
	SalaryMax    *int           `json:"salaryMax"`
	Skills       *[]string      `json:"skills"`
	IsActive     *bool          `json:"isActive"`
}

// List godoc
// @Summary Search active jobs
// @Tags jobs
// @Produce json
// @Param location query string false "Location substring"
// @Param skills query string false "Comma-separated skills, any-of match"
// @Param jobType query string false "Exact job type"
// @Param search query string false "Substring over title and description"
// @Param employerId query string false "Restrict to one employer's postings"
// @Param companyId query string false "Restrict to one company's postings"
// @Success 200 {array} service.JobView
// @Failure 400 {object} errors.ErrorResponse
// @Router /jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	// dashboard listings bypass the filter engine
	if employerID, ok, err := queryID(c, "employerId"); err != nil {
		return err
	} else if ok {
		jobs, err := h.jobService.ListByEmployer(ctx, employerID)
		if err != nil {
			return domainError(err)
		}
		return c.JSON(http.StatusOK, jobs)
	}
	if companyID, ok, err := queryID(c, "companyId"); err != nil {
		return err
	} else if ok {
		jobs, err := h.jobService.ListByCompany(ctx, companyID)
		if err != nil {
			return domainError(err)
		}
		return c.JSON(http.StatusOK, jobs)
	}

	filters := repository.JobFilters{
		Location: c.QueryParam("location"),
		JobType:  c.QueryParam("jobType"),
		Search:   c.QueryParam("search"),
	}
	if raw := c.QueryParam("skills"); raw != "" {
		filters.Skills = strings.Split(raw, ",")
	}

	jobs, err := h.jobService.List(ctx, filters)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, jobs)
}

// Get godoc
// @Summary Get a job with company and employer attached
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} service.JobView
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	job, err := h.jobService.Get(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, job)
}

// Create godoc
// @Summary Post a job
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body CreateJobRequest true "Job data"
// @Success 200 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Router /jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	var req CreateJobRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	job, err := h.jobService.Create(c.Request().Context(), service.CreateJobInput{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Location:     req.Location,
		JobType:      req.JobType,
		SalaryMin:    req.SalaryMin,
		SalaryMax:    req.SalaryMax,
		Skills:       req.Skills,
		CompanyID:    req.CompanyID,
		EmployerID:   req.EmployerID,
		IsActive:     req.IsActive,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, job)
}

// Update godoc
// @Summary Update a job
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param request body UpdateJobRequest true "Fields to update"
// @Success 200 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateJobRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	job, err := h.jobService.Update(c.Request().Context(), id, service.UpdateJobInput{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Location:     req.Location,
		JobType:      req.JobType,
		SalaryMin:    req.SalaryMin,
		SalaryMax:    req.SalaryMax,
		Skills:       req.Skills,
		IsActive:     req.IsActive,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, job)
}
