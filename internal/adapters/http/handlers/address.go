package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/addresskit/companieshouse/internal/adapters/http/dto"
	"github.com/addresskit/companieshouse/internal/app"
	"github.com/addresskit/companieshouse/internal/domain"
)

// AddressHandler handles company address lookup HTTP endpoints.
type AddressHandler struct {
	service *app.AddressService
}

// NewAddressHandler creates a new address handler.
func NewAddressHandler(service *app.AddressService) *AddressHandler {
	return &AddressHandler{
		service: service,
	}
}

// companyLookupParams binds the company number path parameter.
// The notempty rule rejects whitespace-only numbers before any work
// happens; the service layer re-validates for non-HTTP callers.
type companyLookupParams struct {
	CompanyNumber string `uri:"companyNumber" json:"companyNumber" validate:"notempty"`
}

// AddressResponse is the HTTP response structure for a registered address.
type AddressResponse struct {
	AddressLine1 string `json:"addressLine1,omitempty"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	Locality     string `json:"locality,omitempty"`
	Region       string `json:"region,omitempty"`
	PostalCode   string `json:"postalCode,omitempty"`
	Country      string `json:"country,omitempty"`
	Premises     string `json:"premises,omitempty"`
	CareOf       string `json:"careOf,omitempty"`
	POBox        string `json:"poBox,omitempty"`
}

// CompanyProfileResponse is the HTTP response structure for a company profile.
type CompanyProfileResponse struct {
	CompanyNumber     string           `json:"companyNumber"`
	CompanyName       string           `json:"companyName,omitempty"`
	CompanyStatus     string           `json:"companyStatus,omitempty"`
	Type              string           `json:"type,omitempty"`
	DateOfCreation    string           `json:"dateOfCreation,omitempty"`
	Jurisdiction      string           `json:"jurisdiction,omitempty"`
	RegisteredAddress *AddressResponse `json:"registeredOfficeAddress,omitempty"`
}

// toAddressResponse converts a domain Address to an HTTP response.
func toAddressResponse(a *domain.Address) *AddressResponse {
	return &AddressResponse{
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		Locality:     a.Locality,
		Region:       a.Region,
		PostalCode:   a.PostalCode,
		Country:      a.Country,
		Premises:     a.Premises,
		CareOf:       a.CareOf,
		POBox:        a.POBox,
	}
}

// toCompanyProfileResponse converts a domain CompanyProfile to an HTTP response.
func toCompanyProfileResponse(p *domain.CompanyProfile) *CompanyProfileResponse {
	resp := &CompanyProfileResponse{
		CompanyNumber:  p.CompanyNumber,
		CompanyName:    p.CompanyName,
		CompanyStatus:  p.CompanyStatus,
		Type:           p.Type,
		DateOfCreation: p.DateOfCreation,
		Jurisdiction:   p.Jurisdiction,
	}

	if p.RegisteredOfficeAddress != nil {
		resp.RegisteredAddress = toAddressResponse(p.RegisteredOfficeAddress)
	}

	return resp
}

// GetRegisteredAddress handles GET /api/v1/companies/:companyNumber/registered-address
// Returns the registered office address for a UK company.
//
// @Summary Get a company's registered office address
// @Description Looks up the registered office address in the Companies House register
// @Tags companies
// @Produce json
// @Param companyNumber path string true "Company number"
// @Success 200 {object} AddressResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/v1/companies/{companyNumber}/registered-address [get]
func (h *AddressHandler) GetRegisteredAddress(c *gin.Context) {
	var params companyLookupParams
	if err := dto.BindURIAndValidate(c, &params); err != nil {
		dto.RespondWithValidationErrors(c, dto.ValidationErrors(err))
		return
	}

	address, err := h.service.GetRegisteredAddress(c.Request.Context(), params.CompanyNumber)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAddressResponse(address))
}

// GetCompanyProfile handles GET /api/v1/companies/:companyNumber
// Returns the full company profile, including the registered office address
// when the register holds one.
//
// @Summary Get a company profile
// @Description Looks up a company profile in the Companies House register
// @Tags companies
// @Produce json
// @Param companyNumber path string true "Company number"
// @Success 200 {object} CompanyProfileResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/v1/companies/{companyNumber} [get]
func (h *AddressHandler) GetCompanyProfile(c *gin.Context) {
	var params companyLookupParams
	if err := dto.BindURIAndValidate(c, &params); err != nil {
		dto.RespondWithValidationErrors(c, dto.ValidationErrors(err))
		return
	}

	profile, err := h.service.GetCompanyProfile(c.Request.Context(), params.CompanyNumber)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCompanyProfileResponse(profile))
}

// RegisterAddressRoutes registers company lookup routes on the given router group.
func (h *AddressHandler) RegisterAddressRoutes(rg *gin.RouterGroup) {
	companies := rg.Group("/companies")
	companies.GET("/:companyNumber", h.GetCompanyProfile)
	companies.GET("/:companyNumber/registered-address", h.GetRegisteredAddress)
}
