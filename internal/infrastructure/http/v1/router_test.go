package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/internal/core/types"
	"orderdesk/internal/domain/catalogs/product"
	"orderdesk/internal/domain/drafts"
	"orderdesk/internal/domain/ledger"
	"orderdesk/internal/infrastructure/http/v1/dto"
	"orderdesk/internal/infrastructure/http/v1/middleware"
	"orderdesk/pkg/logger"
	"orderdesk/pkg/numerator"
)

// Wednesday of ISO week 2026-W42.
var deskNow = time.Date(2026, time.October, 14, 10, 0, 0, 0, time.UTC)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	ctx := context.Background()

	catalog, err := product.NewCatalog(ctx, []product.Product{
		{Name: "divine pipe 15mm", UnitPrice: types.MustMoney("525")},
		{Name: "ultra pipe 23mm", UnitPrice: types.MustMoney("1017")},
	})
	require.NoError(t, err)

	l, err := ledger.New(catalog, ledger.Options{
		Clock:     func() time.Time { return deskNow },
		Location:  time.UTC,
		Numerator: numerator.New(),
	})
	require.NoError(t, err)

	svc, err := drafts.NewService(drafts.ServiceConfig{
		Ledger:       l,
		ShareNumbers: []string{"1234567890", "0987654321"},
	})
	require.NoError(t, err)

	return NewRouter(RouterConfig{
		Logger:  logger.NewNop(),
		Service: svc,
		Version: "test",
		Mode:    gin.TestMode,
	})
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

type errorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details"`
}

func createPricedDraft(t *testing.T, r http.Handler, delivery string) dto.DraftResponse {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/v1/drafts", map[string]any{
		"customerName":    "Asha Rao",
		"customerPhone":   "919812345678",
		"deliveryDate":    delivery,
		"product":         "divine pipe 15mm",
		"quantity":        2,
		"discountPercent": 10,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	d := decode[dto.DraftResponse](t, w)

	w = do(t, r, http.MethodPost, "/api/v1/drafts/"+d.ID+"/price", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[dto.DraftResponse](t, w)
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	assert.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/health/live", nil).Code)
	assert.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/health/ready", nil).Code)

	w := do(t, r, http.MethodGet, "/health/info", nil)
	require.Equal(t, http.StatusOK, w.Code)
	info := decode[map[string]any](t, w)
	assert.Equal(t, "orderdesk", info["app"])
	assert.Equal(t, "test", info["version"])
}

func TestCatalog_List(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/v1/catalog/products", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.CatalogResponse](t, w)
	require.Len(t, resp.Products, 2)
	assert.Equal(t, "divine pipe 15mm", resp.DefaultProduct)
	assert.Equal(t, []string{"divine pipe 15mm", "ultra pipe 23mm"}, resp.ProductNames)
	assert.Equal(t, "2026-10-21", resp.DefaultDeliveryDate)
	assert.Equal(t, dto.ProductResponse{Name: "ultra pipe 23mm", UnitPrice: "1017.00", Display: "₹1017.00"}, resp.Products[1])
}

func TestPricing_Quote(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/pricing", map[string]any{
		"product":         "divine pipe 15mm",
		"quantity":        2,
		"discountPercent": 10,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[dto.PriceResponse](t, w)
	assert.Equal(t, "1050.00", resp.TotalPrice)
	assert.Equal(t, "105.00", resp.DiscountAmount)
	assert.Equal(t, "945.00", resp.FinalPrice)
	assert.Equal(t, "Total Price after 10% discount: ₹945.00", resp.Message)
}

func TestPricing_Errors(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name   string
		body   map[string]any
		status int
		code   string
	}{
		{"unknown product", map[string]any{"product": "brass tap", "quantity": 1}, http.StatusUnprocessableEntity, "UNKNOWN_PRODUCT"},
		{"zero quantity", map[string]any{"product": "divine pipe 15mm", "quantity": 0}, http.StatusBadRequest, "INVALID_QUANTITY"},
		{"discount over 100", map[string]any{"product": "divine pipe 15mm", "quantity": 1, "discountPercent": 101}, http.StatusBadRequest, "INVALID_DISCOUNT"},
		{"negative discount", map[string]any{"product": "divine pipe 15mm", "quantity": 1, "discountPercent": -1}, http.StatusBadRequest, "INVALID_DISCOUNT"},
		{"missing product", map[string]any{"quantity": 1}, http.StatusUnprocessableEntity, "UNKNOWN_PRODUCT"},
		{"empty product", map[string]any{"product": "", "quantity": 1}, http.StatusUnprocessableEntity, "UNKNOWN_PRODUCT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, "/api/v1/pricing", tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decode[errorBody](t, w).Code)
		})
	}
}

func TestDrafts_CreateWithDefaults(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/drafts", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	d := decode[dto.DraftResponse](t, w)
	assert.Equal(t, "2026-10-21", d.DeliveryDate)
	assert.Equal(t, "divine pipe 15mm", d.Product)
	assert.Equal(t, 1, d.Quantity)
	assert.Zero(t, d.DiscountPercent)
	assert.Nil(t, d.Price)
	assert.False(t, d.InvoiceGenerated)
}

func TestDrafts_InvoiceFlow(t *testing.T) {
	r := newTestRouter(t)

	d := createPricedDraft(t, r, "2026-10-16")
	require.NotNil(t, d.Price)
	assert.Equal(t, "945.00", d.Price.FinalPrice)

	w := do(t, r, http.MethodPost, "/api/v1/drafts/"+d.ID+"/invoice", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	inv := decode[dto.InvoiceResponse](t, w)
	assert.Equal(t, "Invoice Details:\n"+
		"Customer Name: Asha Rao\n"+
		"Customer Phone: 919812345678\n"+
		"Delivery Date: 2026-10-16\n"+
		"Product: divine pipe 15mm\n"+
		"Quantity: 2\n"+
		"Total Price: ₹945.00", inv.Invoice)
	assert.Equal(t, ledger.PriorityHigh, inv.Order.Priority)
	assert.Equal(t, "ORD-2026-00001", inv.Order.Number)
	assert.True(t, inv.Draft.InvoiceGenerated)
	assert.Equal(t, dto.InvoiceGeneratedMessage, inv.Message)
	assert.Equal(t, []string{"1234567890", "0987654321"}, inv.DefaultNumbers)

	require.Len(t, inv.ShareLinks, 3)
	assert.Equal(t, "Customer", inv.ShareLinks[0].Label)
	assert.Equal(t, "https://wa.me/919812345678?text="+inv.EncodedMessage, inv.ShareLinks[0].URL)
	assert.Equal(t, "Default 2", inv.ShareLinks[2].Label)

	decoded, err := url.QueryUnescape(inv.EncodedMessage)
	require.NoError(t, err)
	assert.Equal(t, ledger.DefaultShareGreeting+inv.Invoice, decoded)

	w = do(t, r, http.MethodGet, "/api/v1/invoices/last", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, inv.Invoice, decode[dto.LastInvoiceResponse](t, w).Invoice)

	w = do(t, r, http.MethodGet, "/api/v1/plan/weekly", nil)
	require.Equal(t, http.StatusOK, w.Code)
	plan := decode[dto.PlanResponse](t, w)
	assert.Equal(t, 2026, plan.Year)
	assert.Equal(t, 42, plan.Week)
	require.Len(t, plan.Orders, 1)
	assert.Equal(t, "2026-10-16", plan.Orders[0].DeliveryDate)
	assert.Empty(t, plan.Message)
}

func TestDrafts_InvoiceWithoutPrice(t *testing.T) {
	r := newTestRouter(t)

	d := createPricedDraft(t, r, "2026-10-16")

	w := do(t, r, http.MethodPatch, "/api/v1/drafts/"+d.ID, map[string]any{"quantity": 3})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decode[dto.DraftResponse](t, w).Price)

	w = do(t, r, http.MethodPost, "/api/v1/drafts/"+d.ID+"/invoice", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decode[errorBody](t, w)
	assert.Equal(t, "PRICE_NOT_COMPUTED", body.Code)
	assert.Equal(t, "Please calculate the total price before generating the invoice.", body.Message)
}

func TestDrafts_MissingCustomerDetails(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/drafts", map[string]any{"customerPhone": "919812345678"})
	require.Equal(t, http.StatusCreated, w.Code)
	d := decode[dto.DraftResponse](t, w)

	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/api/v1/drafts/"+d.ID+"/price", nil).Code)

	w = do(t, r, http.MethodPost, "/api/v1/drafts/"+d.ID+"/invoice", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode[errorBody](t, w)
	assert.Equal(t, "MISSING_CUSTOMER_DETAILS", body.Code)
	assert.Equal(t, "Please fill in all customer details.", body.Message)
}

func TestDrafts_NotFoundAndBadInput(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/v1/drafts/0190f1d2-0000-7000-8000-000000000001", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decode[errorBody](t, w).Code)

	w = do(t, r, http.MethodGet, "/api/v1/drafts/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode[errorBody](t, w).Code)

	w = do(t, r, http.MethodPost, "/api/v1/drafts", map[string]any{"deliveryDate": "16/10/2026"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode[errorBody](t, w)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	assert.Equal(t, "deliveryDate", body.Details["field"])
}

func TestDrafts_Delete(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/drafts", nil)
	d := decode[dto.DraftResponse](t, w)

	assert.Equal(t, http.StatusNoContent, do(t, r, http.MethodDelete, "/api/v1/drafts/"+d.ID, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/api/v1/drafts/"+d.ID, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodDelete, "/api/v1/drafts/"+d.ID, nil).Code)
}

func TestShare(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/share", map[string]any{"customerPhone": "919812345678"})
	assert.Equal(t, http.StatusNotFound, w.Code, "no invoice generated yet")

	custom := "Your pipes ship Friday & 10% off next time"
	w = do(t, r, http.MethodPost, "/api/v1/share", map[string]any{
		"customerPhone": "919812345678",
		"customMessage": custom,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[dto.ShareResponse](t, w)
	assert.NotContains(t, resp.EncodedMessage, " ")
	assert.NotContains(t, resp.EncodedMessage, "&")
	assert.Contains(t, resp.EncodedMessage, "%20")
	decoded, err := url.PathUnescape(resp.EncodedMessage)
	require.NoError(t, err)
	assert.Equal(t, custom, decoded)
	require.Len(t, resp.Links, 3)

	w = do(t, r, http.MethodPost, "/api/v1/share", map[string]any{"customMessage": custom})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "MISSING_CUSTOMER_DETAILS", decode[errorBody](t, w).Code)
}

func TestInvoices_LastNotFound(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/v1/invoices/last", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlan_EmptyStates(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/v1/plan/weekly", nil)
	require.Equal(t, http.StatusOK, w.Code)
	plan := decode[dto.PlanResponse](t, w)
	assert.Equal(t, dto.NoProductionDataMessage, plan.Message)
	assert.NotNil(t, plan.Orders)
	assert.Empty(t, plan.Orders)

	d := createPricedDraft(t, r, "2026-10-28")
	w = do(t, r, http.MethodPost, "/api/v1/drafts/"+d.ID+"/invoice", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, ledger.PriorityMedium, decode[dto.InvoiceResponse](t, w).Order.Priority)

	w = do(t, r, http.MethodGet, "/api/v1/plan/weekly", nil)
	plan = decode[dto.PlanResponse](t, w)
	assert.Equal(t, dto.NoWeeklyOrdersMessage, plan.Message)
	assert.Equal(t, 1, plan.TotalOrders)
}

func TestTraceHeaders(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	req.Header.Set(middleware.HeaderRequestID, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get(middleware.HeaderRequestID))
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderTraceID))
}

func TestInvalidJSON(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/pricing", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode[errorBody](t, w).Code)
}
