package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/biztime-backend-go/internal/pkg/observability"
	"github.com/cmlabs-hris/biztime-backend-go/internal/repository/memory"
	companyService "github.com/cmlabs-hris/biztime-backend-go/internal/service/company"
	invoiceService "github.com/cmlabs-hris/biztime-backend-go/internal/service/invoice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

type testAPI struct {
	t       *testing.T
	handler http.Handler
	store   *memory.Store
	clock   *testClock
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	store := memory.NewStore()
	companyRepo := memory.NewCompanyRepository(store)
	invoiceRepo := memory.NewInvoiceRepository(store)
	clock := &testClock{now: time.Date(2026, time.October, 17, 15, 4, 5, 0, time.UTC)}

	router := NewRouter(
		RouterOptions{Metrics: observability.NewMetrics()},
		NewCompanyHandler(companyService.NewCompanyService(companyRepo, invoiceRepo)),
		NewInvoiceHandler(invoiceService.NewInvoiceService(invoiceRepo, clock.Now)),
	)
	return &testAPI{t: t, handler: router, store: store, clock: clock}
}

func (a *testAPI) do(method, path, body string) *httptest.ResponseRecorder {
	a.t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func (a *testAPI) seedApple() {
	a.t.Helper()
	rec := a.do(http.MethodPost, "/companies", `{"code":"apple","name":"Apple Computer","description":"Maker of OSX."}`)
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
}

func (a *testAPI) createInvoice(body string) int64 {
	a.t.Helper()
	rec := a.do(http.MethodPost, "/invoices", body)
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	var out struct {
		Invoice struct {
			ID int64 `json:"id"`
		} `json:"invoice"`
	}
	require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out.Invoice.ID
}

func TestCompanies_CreateAndFetchRoundTrip(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/companies", `{"code":"apple","name":"Apple Computer","description":"Maker of OSX."}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"company":{"code":"apple","name":"Apple Computer","description":"Maker of OSX."}}`, rec.Body.String())

	rec = api.do(http.MethodGet, "/companies/apple", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"company":{"code":"apple","name":"Apple Computer","description":"Maker of OSX.","invoices":[]}}`, rec.Body.String())

	rec = api.do(http.MethodGet, "/companies", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"companies":[{"code":"apple","name":"Apple Computer"}]}`, rec.Body.String())
}

func TestCompanies_EmptyListIsArray(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/companies", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"companies":[]}`, rec.Body.String())
}

func TestCompanies_DuplicateCodeKeepsOneRow(t *testing.T) {
	api := newTestAPI(t)
	api.seedApple()

	rec := api.do(http.MethodPost, "/companies", `{"code":"apple","name":"Another Apple"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":500`)
	assert.Equal(t, 1, api.store.CompanyCount())
}

func TestCompanies_MissingFieldIsRejectedByStore(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/companies", `{"code":"ibm"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 0, api.store.CompanyCount())
}

func TestCompanies_UnknownCodeIs404(t *testing.T) {
	api := newTestAPI(t)
	api.seedApple()

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			body := ""
			if method == http.MethodPut {
				body = `{"name":"Ghost","description":null}`
			}
			rec := api.do(method, "/companies/ghost", body)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.JSONEq(t, `{"error":{"message":"company not found","status":404}}`, rec.Body.String())
			assert.Equal(t, 1, api.store.CompanyCount())
		})
	}
}

func TestCompanies_UpdateReplacesNameAndDescription(t *testing.T) {
	api := newTestAPI(t)
	api.seedApple()

	rec := api.do(http.MethodPut, "/companies/apple", `{"name":"Apple Inc."}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"company":{"code":"apple","name":"Apple Inc.","description":null}}`, rec.Body.String())
}

func TestCompanies_DeleteCascadesInvoices(t *testing.T) {
	api := newTestAPI(t)
	api.seedApple()
	api.createInvoice(`{"comp_code":"apple","amt":100}`)

	rec := api.do(http.MethodDelete, "/companies/apple", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"deleted"}`, rec.Body.String())
	assert.Equal(t, 0, api.store.CompanyCount())
	assert.Equal(t, 0, api.store.InvoiceCount())
}

func TestCompanies_DetailEmbedsOwnInvoices(t *testing.T) {
	api := newTestAPI(t)
	api.seedApple()
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/companies", `{"code":"ibm","name":"IBM"}`).Code)
	appleID := api.createInvoice(`{"comp_code":"apple","amt":100}`)
	api.createInvoice(`{"comp_code":"ibm","amt":200}`)

	rec := api.do(http.MethodGet, "/companies/apple", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var out struct {
		Company struct {
			Invoices []struct {
				ID       int64  `json:"id"`
				CompCode string `json:"comp_code"`
			} `json:"invoices"`
		} `json:"company"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Company.Invoices, 1)
	assert.Equal(t, appleID, out.Company.Invoices[0].ID)
	assert.Equal(t, "apple", out.Company.Invoices[0].CompCode)
}

func TestInvoices_CreateAndFetch(t *testing.T) {
	api := newTestAPI(t)
	api.seedApple()

	rec := api.do(http.MethodPost, "/invoices", `{"comp_code":"apple","amt":"100.50"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"invoice":{"id":1,"comp_code":"apple","amt":"100.5","paid":false,"add_date":"2026-10-17","paid_date":null}}`, rec.Body.String())

	rec = api.do(http.MethodGet, "/invoices/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"invoice":{
		"id":1,"amt":"100.5","paid":false,"add_date":"2026-10-17","paid_date":null,
		"company":{"code":"apple","name":"Apple Computer","description":"Maker of OSX."}
	}}`, rec.Body.String())

	rec = api.do(http.MethodGet, "/invoices", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"invoices":[{"id":1,"comp_code":"apple"}]}`, rec.Body.String())
}

func TestInvoices_EmptyListIsArray(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/invoices", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"invoices":[]}`, rec.Body.String())
}

func TestInvoices_UnknownCompanyFails(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/invoices", `{"comp_code":"ghost","amt":100}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 0, api.store.InvoiceCount())
}

func TestInvoices_UnknownIDIs404(t *testing.T) {
	api := newTestAPI(t)
	api.seedApple()
	api.createInvoice(`{"comp_code":"apple","amt":100}`)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			body := ""
			if method == http.MethodPut {
				body = `{"amt":100,"paid":true}`
			}
			rec := api.do(method, "/invoices/999", body)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.JSONEq(t, `{"error":{"message":"invoice not found","status":404}}`, rec.Body.String())
			assert.Equal(t, 1, api.store.InvoiceCount())
		})
	}
}

func TestInvoices_PaymentTransitions(t *testing.T) {
	api := newTestAPI(t)
	api.seedApple()
	id := api.createInvoice(`{"comp_code":"apple","amt":100}`)
	path := "/invoices/1"
	require.Equal(t, int64(1), id)

	rec := api.do(http.MethodPut, path, `{"amt":100,"paid":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"invoice":{"id":1,"comp_code":"apple","amt":"100","paid":true,"add_date":"2026-10-17","paid_date":"2026-10-17"}}`, rec.Body.String())

	api.clock.now = api.clock.now.AddDate(0, 0, 3)
	rec = api.do(http.MethodPut, path, `{"amt":100,"paid":1}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"paid_date":"2026-10-20"`)

	rec = api.do(http.MethodPut, path, `{"amt":100,"paid":false}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"invoice":{"id":1,"comp_code":"apple","amt":"100","paid":false,"add_date":"2026-10-17","paid_date":null}}`, rec.Body.String())

	rec = api.do(http.MethodPut, path, `{"amt":250}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"invoice":{"id":1,"comp_code":"apple","amt":"250","paid":false,"add_date":"2026-10-17","paid_date":null}}`, rec.Body.String())
}

func TestInvoices_DeleteRemovesRow(t *testing.T) {
	api := newTestAPI(t)
	api.seedApple()
	api.createInvoice(`{"comp_code":"apple","amt":100}`)

	rec := api.do(http.MethodDelete, "/invoices/1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"deleted"}`, rec.Body.String())
	assert.Equal(t, 0, api.store.InvoiceCount())
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/invoices/1", "").Code)
}

func TestRouter_UnmatchedRequestsAre404(t *testing.T) {
	api := newTestAPI(t)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/nope"},
		{http.MethodGet, "/invoices/abc"},
		{http.MethodDelete, "/companies"},
		{http.MethodPatch, "/invoices/1"},
	}
	for _, c := range cases {
		t.Run(c.method+" "+c.path, func(t *testing.T) {
			rec := api.do(c.method, c.path, "")

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.JSONEq(t, `{"error":{"message":"Not Found","status":404}}`, rec.Body.String())
		})
	}
}

func TestRouter_MalformedJSONIs400(t *testing.T) {
	api := newTestAPI(t)
	api.seedApple()

	for _, path := range []string{"/companies", "/invoices"} {
		rec := api.do(http.MethodPost, path, `{"code":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
		assert.JSONEq(t, `{"error":{"message":"invalid JSON body","status":400}}`, rec.Body.String())
	}
	assert.Equal(t, 1, api.store.CompanyCount())
	assert.Equal(t, 0, api.store.InvoiceCount())
}

func TestRouter_StoreFailureIs500(t *testing.T) {
	api := newTestAPI(t)
	api.store.ErrorOnNextCall = assert.AnError

	rec := api.do(http.MethodGet, "/invoices", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"`+assert.AnError.Error()+`","status":500}}`, rec.Body.String())
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	api := newTestAPI(t)

	health := api.do(http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, health.Code)

	api.do(http.MethodGet, "/companies", "")
	metrics := api.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, metrics.Code)
	assert.Contains(t, metrics.Body.String(), `biztime_http_requests_total{code="200",method="GET",route="/companies"} 1`)
}
