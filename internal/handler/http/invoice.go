package http

import (
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/biztime-backend-go/internal/domain/invoice"
	"github.com/cmlabs-hris/biztime-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type InvoiceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type InvoiceHandlerImpl struct {
	invoiceService invoice.InvoiceService
}

func NewInvoiceHandler(invoiceService invoice.InvoiceService) InvoiceHandler {
	return &InvoiceHandlerImpl{
		invoiceService: invoiceService,
	}
}

type invoiceListEnvelope struct {
	Invoices []invoice.InvoiceSummaryResponse `json:"invoices"`
}

type invoiceEnvelope struct {
	Invoice invoice.InvoiceResponse `json:"invoice"`
}

type invoiceDetailEnvelope struct {
	Invoice invoice.InvoiceDetailResponse `json:"invoice"`
}

// invoiceID reads the {id} path parameter. The route pattern only admits
// digits, so a parse failure means the value overflows int64.
func invoiceID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.HandleError(w, invoice.ErrInvoiceNotFound)
		return 0, false
	}
	return id, true
}

// List implements InvoiceHandler.
func (h *InvoiceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.invoiceService.List(r.Context())
	if err != nil {
		fail(w, r, "Failed to list invoices", err)
		return
	}

	response.OK(w, invoiceListEnvelope{Invoices: invoice.NewSummaryResponses(list)})
}

// Create implements InvoiceHandler.
func (h *InvoiceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req invoice.CreateInvoiceRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, "Failed to decode invoice", err)
		return
	}

	created, err := h.invoiceService.Create(r.Context(), req)
	if err != nil {
		fail(w, r, "Failed to create invoice", err)
		return
	}

	response.Created(w, invoiceEnvelope{Invoice: invoice.NewInvoiceResponse(created)})
}

// GetByID implements InvoiceHandler.
func (h *InvoiceHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := invoiceID(w, r)
	if !ok {
		return
	}

	detail, err := h.invoiceService.GetByID(r.Context(), id)
	if err != nil {
		fail(w, r, "Failed to get invoice", err)
		return
	}

	response.OK(w, invoiceDetailEnvelope{Invoice: invoice.NewDetailResponse(detail)})
}

// Update implements InvoiceHandler.
func (h *InvoiceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := invoiceID(w, r)
	if !ok {
		return
	}

	var req invoice.UpdateInvoiceRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, "Failed to decode invoice", err)
		return
	}

	updated, err := h.invoiceService.Update(r.Context(), id, req)
	if err != nil {
		fail(w, r, "Failed to update invoice", err)
		return
	}

	response.OK(w, invoiceEnvelope{Invoice: invoice.NewInvoiceResponse(updated)})
}

// Delete implements InvoiceHandler.
func (h *InvoiceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := invoiceID(w, r)
	if !ok {
		return
	}

	if err := h.invoiceService.Delete(r.Context(), id); err != nil {
		fail(w, r, "Failed to delete invoice", err)
		return
	}

	response.Deleted(w)
}
