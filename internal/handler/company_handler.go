package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"localhire/internal/model"
	"localhire/internal/service"
)

// CompanyHandler handles company endpoints.
type CompanyHandler struct {
	companyService service.CompanyService
}

// NewCompanyHandler creates a new company handler.
func NewCompanyHandler(companyService service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// CreateCompanyRequest represents a company creation request.
type CreateCompanyRequest struct {
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	Website     string     `json:"website"`
	Location    string     `json:"location"`
	Size        string     `json:"size"`
	Industry    string     `json:"industry"`
	Logo        string     `json:"logo"`
	OwnerID     *uuid.UUID `json:"ownerId"`
}

// List godoc
// @Summary List companies owned by a user
// @Tags companies
// @Produce json
// @Param ownerId query string false "Owner user ID"
// @Success 200 {array} model.Company
// @Failure 400 {object} errors.ErrorResponse
// @Router /companies [get]
func (h *CompanyHandler) List(c echo.Context) error {
	ownerID, ok, err := queryID(c, "ownerId")
	if err != nil {
		return err
	}
	// without an owner filter the listing is empty, not global
	if !ok {
		return c.JSON(http.StatusOK, []model.Company{})
	}

	companies, err := h.companyService.ListByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, companies)
}

// Get godoc
// @Summary Get a company
// @Tags companies
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} model.Company
// @Failure 404 {object} errors.ErrorResponse
// @Router /companies/{id} [get]
func (h *CompanyHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	company, err := h.companyService.Get(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, company)
}

// Create godoc
// @Summary Create a company
// @Tags companies
// @Accept json
// @Produce json
// @Param request body CreateCompanyRequest true "Company data"
// @Success 200 {object} model.Company
// @Failure 400 {object} errors.ErrorResponse
// @Router /companies [post]
func (h *CompanyHandler) Create(c echo.Context) error {
	var req CreateCompanyRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	company, err := h.companyService.Create(c.Request().Context(), service.CreateCompanyInput{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		Location:    req.Location,
		Size:        req.Size,
		Industry:    req.Industry,
		Logo:        req.Logo,
		OwnerID:     req.OwnerID,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, company)
}
