package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/catalogops/catalog-sync/internal/editor"
	editormocks "github.com/catalogops/catalog-sync/internal/editor/mocks"
	"github.com/catalogops/catalog-sync/internal/handler"
	"github.com/catalogops/catalog-sync/internal/handler/mocks"
	"github.com/catalogops/catalog-sync/internal/platform"
	"github.com/catalogops/catalog-sync/internal/platform/models"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const restoreWindow = 7 * 24 * time.Hour

type apiMocks struct {
	storage   *mocks.Storage
	commander *mocks.Commander
	store     *editormocks.LocalStore
	audit     *editormocks.AuditLog
	remote    *editormocks.RemoteStore
	toucher   *editormocks.Toucher
}

func newServer(t *testing.T) (*echo.Echo, apiMocks) {
	t.Helper()

	deps := apiMocks{
		storage:   mocks.NewStorage(t),
		commander: mocks.NewCommander(t),
		store:     editormocks.NewLocalStore(t),
		audit:     editormocks.NewAuditLog(t),
		remote:    editormocks.NewRemoteStore(t),
		toucher:   editormocks.NewToucher(t),
	}

	logger := zerolog.Nop()
	ed := editor.NewEditor(deps.store, deps.audit, deps.remote, deps.toucher, &logger)

	e := echo.New()
	e.Validator = handler.NewValidator()
	handler.NewProductAPI(deps.storage, ed, deps.commander, nil, restoreWindow, &logger).Register(e)

	return e, deps
}

// bareProduct has no marketplace listings, so opening an edit session
// applies no auto-corrections.
func bareProduct() *models.Product {
	return &models.Product{
		ID:        42,
		ProjectID: 7,
		WebsiteID: "9001",
		SKU:       "sku-42",
		Title:     "Blender",
		Price:     100,
		UpdatedAt: time.Now().UTC(),
	}
}

func TestUnitListProducts(t *testing.T) {
	e, deps := newServer(t)

	products := []models.Product{
		*bareProduct(),
		{ID: 43, ProjectID: 7, Title: "Mixer", SKU: "sku-43", Stock: models.BoolStockFlag(true)},
		{ID: 44, ProjectID: 7, Title: "Kettle", SKU: "sku-44", Stock: models.StringStockFlag("Còn hàng")},
	}
	deps.storage.On("ListProducts", mock.Anything, 7).Return(products, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/7/products?stock=in&pageSize=10", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "should return 200")

	var resp struct {
		Products []struct {
			ID         int    `json:"id"`
			Title      string `json:"title"`
			StockState string `json:"stockState"`
		} `json:"products"`
		Page       int `json:"page"`
		TotalPages int `json:"totalPages"`
		Totals     struct {
			InStock    int `json:"inStock"`
			OutOfStock int `json:"outOfStock"`
			Total      int `json:"total"`
		} `json:"totals"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "response should be valid json")

	// the in-stock filter keeps unknown stock, drops only out-of-stock
	require.Len(t, resp.Products, 2, "should drop out-of-stock product")
	assert.Equal(t, 42, resp.Products[0].ID, "should keep products order")
	assert.Equal(t, 44, resp.Products[1].ID, "should keep products order")
	assert.Equal(t, 1, resp.TotalPages, "should have one page")
	assert.Equal(t, 3, resp.Totals.Total, "totals should count unfiltered dataset")
	assert.Equal(t, 1, resp.Totals.InStock, "totals should count in-stock products")
	assert.Equal(t, 1, resp.Totals.OutOfStock, "totals should count out-of-stock products")
}

func TestUnitListProductsBadFilter(t *testing.T) {
	e, _ := newServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/7/products?sync=nonsense", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code, "should return 400 for unknown filter value")
}

func TestUnitUpdateProduct(t *testing.T) {
	e, deps := newServer(t)

	deps.store.On("GetProduct", mock.Anything, 42).Return(bareProduct(), nil)
	deps.store.On("UpdateProduct", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
		return p.ID == 42 && p.Title == "Blender Pro"
	})).Return(nil)
	deps.audit.On("AppendAuditEntry", mock.Anything, mock.MatchedBy(func(entry *models.AuditEntry) bool {
		return entry.ProductID == 42 && entry.Actor == "alice"
	})).Return(nil)
	deps.remote.On("UpdateProduct", mock.Anything, "9001", mock.Anything).Return(nil)
	deps.toucher.On("Mark", 42).Return()

	body := `{"actor":"alice","fields":{"title":"Blender Pro"}}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/products/42", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "should return 200")

	var resp struct {
		Product struct {
			Title string `json:"title"`
		} `json:"product"`
		AuditLogged  bool     `json:"auditLogged"`
		RemoteSynced bool     `json:"remoteSynced"`
		Warnings     []string `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "response should be valid json")

	assert.Equal(t, "Blender Pro", resp.Product.Title, "should return updated title")
	assert.True(t, resp.AuditLogged, "audit entry should be recorded")
	assert.True(t, resp.RemoteSynced, "remote should be synced")
	assert.Empty(t, resp.Warnings, "shouldn't return any warnings")
}

func TestUnitUpdateProductErrors(t *testing.T) {
	tests := map[string]struct {
		body     string
		mockOps  func(deps apiMocks)
		wantCode int
	}{
		"missing actor": {
			body:     `{"fields":{"title":"x"}}`,
			mockOps:  func(apiMocks) {},
			wantCode: http.StatusBadRequest,
		},
		"no fields": {
			body:     `{"actor":"alice","fields":{}}`,
			mockOps:  func(apiMocks) {},
			wantCode: http.StatusBadRequest,
		},
		"unknown field": {
			body: `{"actor":"alice","fields":{"nonsense":"x"}}`,
			mockOps: func(deps apiMocks) {
				deps.store.On("GetProduct", mock.Anything, 42).Return(bareProduct(), nil)
			},
			wantCode: http.StatusBadRequest,
		},
		"product not found": {
			body: `{"actor":"alice","fields":{"title":"x"}}`,
			mockOps: func(deps apiMocks) {
				deps.store.On("GetProduct", mock.Anything, 42).Return(nil, platform.ErrNotFound)
			},
			wantCode: http.StatusNotFound,
		},
		"local write failed": {
			body: `{"actor":"alice","fields":{"title":"x"}}`,
			mockOps: func(deps apiMocks) {
				deps.store.On("GetProduct", mock.Anything, 42).Return(bareProduct(), nil)
				deps.store.On("UpdateProduct", mock.Anything, mock.Anything).Return(platform.ErrLocalWriteFailed)
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e, deps := newServer(t)
			tt.mockOps(deps)

			req := httptest.NewRequest(http.MethodPut, "/api/v1/products/42", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code, "should return correct status code")
		})
	}
}

func TestUnitDeleteProduct(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		e, deps := newServer(t)
		deps.storage.On("SoftDeleteProduct", mock.Anything, 42).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/products/42", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code, "should return 204")
	})

	t.Run("not found", func(t *testing.T) {
		e, deps := newServer(t)
		deps.storage.On("SoftDeleteProduct", mock.Anything, 42).Return(platform.ErrNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/products/42", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code, "should return 404")
	})
}

func TestUnitRestoreProduct(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		e, deps := newServer(t)
		deps.storage.On("RestoreProduct", mock.Anything, 42, restoreWindow).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/products/42/restore", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code, "should return 204")
	})

	t.Run("window expired", func(t *testing.T) {
		e, deps := newServer(t)
		deps.storage.On("RestoreProduct", mock.Anything, 42, restoreWindow).
			Return(platform.ErrRestoreWindowExpired)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/products/42/restore", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusGone, rec.Code, "should return 410")
	})
}

func TestUnitReconcileProject(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		e, deps := newServer(t)
		deps.commander.On("SendReconcileCommand", mock.Anything, 7).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/7/reconcile", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusAccepted, rec.Code, "should return 202")
	})

	t.Run("commander error", func(t *testing.T) {
		e, deps := newServer(t)
		deps.commander.On("SendReconcileCommand", mock.Anything, 7).Return(assert.AnError)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/7/reconcile", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code, "should return 500")
	})
}
