package http

import (
	"net/http"

	"github.com/cmlabs-hris/biztime-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/biztime-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CompanyHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetByCode(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &CompanyHandlerImpl{
		companyService: companyService,
	}
}

type companyListEnvelope struct {
	Companies []company.CompanySummaryResponse `json:"companies"`
}

type companyEnvelope struct {
	Company company.CompanyResponse `json:"company"`
}

type companyDetailEnvelope struct {
	Company company.CompanyDetailResponse `json:"company"`
}

// List implements CompanyHandler.
func (c *CompanyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	list, err := c.companyService.List(r.Context())
	if err != nil {
		fail(w, r, "Failed to list companies", err)
		return
	}

	response.OK(w, companyListEnvelope{Companies: company.NewSummaryResponses(list)})
}

// Create implements CompanyHandler.
func (c *CompanyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req company.CreateCompanyRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, "Failed to decode company", err)
		return
	}

	created, err := c.companyService.Create(r.Context(), req)
	if err != nil {
		fail(w, r, "Failed to create company", err)
		return
	}

	response.Created(w, companyEnvelope{Company: company.NewCompanyResponse(created)})
}

// GetByCode implements CompanyHandler.
func (c *CompanyHandlerImpl) GetByCode(w http.ResponseWriter, r *http.Request) {
	detail, err := c.companyService.GetByCode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		fail(w, r, "Failed to get company", err)
		return
	}

	response.OK(w, companyDetailEnvelope{Company: company.NewDetailResponse(detail)})
}

// Update implements CompanyHandler.
func (c *CompanyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req company.UpdateCompanyRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, "Failed to decode company", err)
		return
	}

	updated, err := c.companyService.Update(r.Context(), chi.URLParam(r, "code"), req)
	if err != nil {
		fail(w, r, "Failed to update company", err)
		return
	}

	response.OK(w, companyEnvelope{Company: company.NewCompanyResponse(updated)})
}

// Delete implements CompanyHandler.
func (c *CompanyHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.companyService.Delete(r.Context(), chi.URLParam(r, "code")); err != nil {
		fail(w, r, "Failed to delete company", err)
		return
	}

	response.Deleted(w)
}
