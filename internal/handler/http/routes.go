package http

import "net/http"

// Route binds one method and chi pattern to a handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// Routes is the full API surface. Invoice ids only match digits, so any
// other segment falls through to the not-found handler.
func Routes(companies CompanyHandler, invoices InvoiceHandler) []Route {
	return []Route{
		{http.MethodGet, "/companies", companies.List},
		{http.MethodPost, "/companies", companies.Create},
		{http.MethodGet, "/companies/{code}", companies.GetByCode},
		{http.MethodPut, "/companies/{code}", companies.Update},
		{http.MethodDelete, "/companies/{code}", companies.Delete},

		{http.MethodGet, "/invoices", invoices.List},
		{http.MethodPost, "/invoices", invoices.Create},
		{http.MethodGet, "/invoices/{id:[0-9]+}", invoices.GetByID},
		{http.MethodPut, "/invoices/{id:[0-9]+}", invoices.Update},
		{http.MethodDelete, "/invoices/{id:[0-9]+}", invoices.Delete},
	}
}
