package handler

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/catalogops/catalog-sync/internal/editor"
	"github.com/catalogops/catalog-sync/internal/filter"
	"github.com/catalogops/catalog-sync/internal/platform"
	"github.com/catalogops/catalog-sync/internal/platform/models"
	"github.com/catalogops/catalog-sync/internal/reconcile"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name Commander --filename commander.go

// Storage is the product storage the HTTP API reads and deletes from.
type Storage interface {
	ListProducts(ctx context.Context, projectID int) ([]models.Product, error)
	SoftDeleteProduct(ctx context.Context, productID int) error
	RestoreProduct(ctx context.Context, productID int, window time.Duration) error
}

// Commander schedules background catalog maintenance.
type Commander interface {
	SendReconcileCommand(ctx context.Context, projectID int) error
}

// ProductAPI exposes the dashboard product operations over HTTP.
type ProductAPI struct {
	storage       Storage
	editor        *editor.Editor
	commander     Commander
	touched       filter.TouchedSet
	restoreWindow time.Duration
	logger        *zerolog.Logger
}

// NewProductAPI returns new ProductAPI.
func NewProductAPI(
	storage Storage,
	ed *editor.Editor,
	commander Commander,
	touched filter.TouchedSet,
	restoreWindow time.Duration,
	logger *zerolog.Logger,
) *ProductAPI {
	return &ProductAPI{
		storage:       storage,
		editor:        ed,
		commander:     commander,
		touched:       touched,
		restoreWindow: restoreWindow,
		logger:        logger,
	}
}

// Register adds the API routes to the echo instance.
func (api *ProductAPI) Register(e *echo.Echo) {
	v1 := e.Group("/api/v1")
	v1.GET("/projects/:projectID/products", api.listProducts)
	v1.POST("/projects/:projectID/reconcile", api.reconcileProject)
	v1.PUT("/products/:id", api.updateProduct)
	v1.DELETE("/products/:id", api.deleteProduct)
	v1.POST("/products/:id/restore", api.restoreProduct)
}

// Validator adapts go-playground validator for echo request binding.
type Validator struct {
	validator *validator.Validate
}

// NewValidator returns new Validator.
func NewValidator() *Validator {
	return &Validator{validator: validator.New()}
}

// Validate validates request structs against their validate tags.
func (v *Validator) Validate(i any) error {
	if err := v.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

type platformEntryResponse struct {
	Link  string  `json:"link"`
	Price float64 `json:"price"`
}

type productResponse struct {
	ID               int                              `json:"id"`
	ProjectID        int                              `json:"projectId"`
	WebsiteID        string                           `json:"websiteId"`
	SKU              string                           `json:"sku"`
	Title            string                           `json:"title"`
	Price            float64                          `json:"price"`
	PromotionalPrice float64                          `json:"promotionalPrice"`
	ExternalURL      string                           `json:"externalUrl"`
	ImageURL         string                           `json:"imageUrl"`
	Platforms        map[string]platformEntryResponse `json:"platforms"`
	StockState       string                           `json:"stockState"`
	SyncStatus       string                           `json:"syncStatus"`
	UpdatedAt        time.Time                        `json:"updatedAt"`
}

type totalsResponse struct {
	Platforms  map[string]int `json:"platforms"`
	InStock    int            `json:"inStock"`
	OutOfStock int            `json:"outOfStock"`
	Total      int            `json:"total"`
}

type listProductsResponse struct {
	Products   []productResponse `json:"products"`
	Page       int               `json:"page"`
	TotalPages int               `json:"totalPages"`
	Totals     totalsResponse    `json:"totals"`
}

type updateProductRequest struct {
	Actor  string         `json:"actor" validate:"required"`
	Fields map[string]any `json:"fields" validate:"required,min=1"`
}

type saveProductResponse struct {
	Product      productResponse `json:"product"`
	AuditLogged  bool            `json:"auditLogged"`
	RemoteSynced bool            `json:"remoteSynced"`
	Warnings     []string        `json:"warnings,omitempty"`
	Notice       string          `json:"notice,omitempty"`
}

func (api *ProductAPI) listProducts(c echo.Context) error {
	projectID, err := strconv.Atoi(c.Param("projectID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid project ID")
	}

	cfg, err := filterConfig(c)
	if err != nil {
		return err
	}

	products, err := api.storage.ListProducts(c.Request().Context(), projectID)
	if err != nil {
		return httpError(err)
	}

	filtered := filter.Apply(products, c.QueryParam("q"), cfg, api.touched, time.Now().UTC())

	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))
	pageItems, totalPages := filter.Paginate(filtered, page, pageSize)

	return c.JSON(http.StatusOK, listProductsResponse{
		Products:   toProductResponses(pageItems),
		Page:       min(max(page, 1), max(totalPages, 1)),
		TotalPages: totalPages,
		Totals:     toTotalsResponse(filter.ComputeTotals(products)),
	})
}

func (api *ProductAPI) updateProduct(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product ID")
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()

	session, err := api.editor.Open(ctx, productID, req.Actor)
	if err != nil {
		return httpError(err)
	}

	// fixed application order keeps edits deterministic
	names := make([]string, 0, len(req.Fields))
	for name := range req.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := session.SetField(name, req.Fields[name]); err != nil {
			session.Close()
			return httpError(err)
		}
	}

	result, err := session.Save(ctx)
	if err != nil {
		session.Close()
		return httpError(err)
	}

	return c.JSON(http.StatusOK, saveProductResponse{
		Product:      toProductResponse(&result.Product),
		AuditLogged:  result.AuditLogged,
		RemoteSynced: result.RemoteSynced,
		Warnings:     result.Warnings,
		Notice:       session.Notice(),
	})
}

func (api *ProductAPI) deleteProduct(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product ID")
	}

	if err := api.storage.SoftDeleteProduct(c.Request().Context(), productID); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (api *ProductAPI) restoreProduct(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product ID")
	}

	if err := api.storage.RestoreProduct(c.Request().Context(), productID, api.restoreWindow); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (api *ProductAPI) reconcileProject(c echo.Context) error {
	projectID, err := strconv.Atoi(c.Param("projectID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid project ID")
	}

	if err := api.commander.SendReconcileCommand(c.Request().Context(), projectID); err != nil {
		api.logger.Error().
			Err(err).
			Int("projectId", projectID).
			Msg("can't schedule reconcile run")
		return echo.NewHTTPError(http.StatusInternalServerError, "can't schedule reconcile run")
	}

	return c.JSON(http.StatusAccepted, map[string]string{"status": "accepted"})
}

func filterConfig(c echo.Context) (filter.Config, error) {
	var cfg filter.Config

	if p := c.QueryParam("platform"); p != "" {
		platformName := models.Platform(p)
		known := false
		for _, candidate := range models.Platforms {
			if candidate == platformName {
				known = true
				break
			}
		}
		if !known {
			return cfg, echo.NewHTTPError(http.StatusBadRequest, "unknown platform")
		}
		cfg.Platform = platformName
	}

	switch c.QueryParam("stock") {
	case "":
	case "in":
		cfg.Stock = filter.StockInOnly
	case "out":
		cfg.Stock = filter.StockOutOnly
	default:
		return cfg, echo.NewHTTPError(http.StatusBadRequest, "unknown stock filter")
	}

	switch c.QueryParam("sync") {
	case "":
	case "unsynced":
		cfg.Sync = filter.SyncUnsyncedOnly
	case "partial":
		cfg.Sync = filter.SyncPartialOnly
	case "full":
		cfg.Sync = filter.SyncFullOnly
	case "missing-images":
		cfg.Sync = filter.SyncMissingImages
	default:
		return cfg, echo.NewHTTPError(http.StatusBadRequest, "unknown sync filter")
	}

	switch c.QueryParam("time") {
	case "":
	case "7d":
		cfg.TimeWindow = filter.TimeRecent7d
	case "30d":
		cfg.TimeWindow = filter.TimeRecent30d
	case "none":
		cfg.TimeWindow = filter.TimeNoUpdates
	default:
		return cfg, echo.NewHTTPError(http.StatusBadRequest, "unknown time filter")
	}

	cfg.RecentlyUpdated = c.QueryParam("recent") == "true"

	return cfg, nil
}

func httpError(err error) error {
	switch {
	case errors.Is(err, platform.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	case errors.Is(err, platform.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, platform.ErrSaveInFlight),
		errors.Is(err, platform.ErrSessionClosed),
		errors.Is(err, platform.ErrAlreadyRunning):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, platform.ErrRestoreWindowExpired):
		return echo.NewHTTPError(http.StatusGone, "restore window expired")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func toProductResponses(products []models.Product) []productResponse {
	result := make([]productResponse, 0, len(products))
	for ix := range products {
		result = append(result, toProductResponse(&products[ix]))
	}
	return result
}

func toProductResponse(p *models.Product) productResponse {
	platforms := make(map[string]platformEntryResponse, len(models.Platforms))
	for _, platformName := range models.Platforms {
		entry := p.Entry(platformName)
		if entry.Link == "" && entry.Price == 0 {
			continue
		}
		platforms[string(platformName)] = platformEntryResponse{
			Link:  entry.Link,
			Price: entry.Price,
		}
	}

	return productResponse{
		ID:               p.ID,
		ProjectID:        p.ProjectID,
		WebsiteID:        p.WebsiteID,
		SKU:              p.SKU,
		Title:            p.Title,
		Price:            p.Price,
		PromotionalPrice: p.PromotionalPrice,
		ExternalURL:      p.ExternalURL,
		ImageURL:         p.ImageURL,
		Platforms:        platforms,
		StockState:       reconcile.NormalizeStockState(p.Stock).String(),
		SyncStatus:       reconcile.ProductSyncStatus(p).String(),
		UpdatedAt:        p.UpdatedAt,
	}
}

func toTotalsResponse(totals filter.Totals) totalsResponse {
	platforms := make(map[string]int, len(totals.Platforms))
	for platformName, count := range totals.Platforms {
		platforms[string(platformName)] = count
	}

	return totalsResponse{
		Platforms:  platforms,
		InStock:    totals.InStock,
		OutOfStock: totals.OutOfStock,
		Total:      totals.Total,
	}
}
