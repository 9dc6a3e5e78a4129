// Package filter narrows an in-memory product collection down to the visible
// page of the dashboard. Filtering is pure with respect to the collection,
// the configuration, the recently-touched set and the provided time; it
// never fails, an empty result is a valid result.
package filter

import (
	"strings"
	"time"

	"github.com/catalogops/catalog-sync/internal/platform/models"
	"github.com/catalogops/catalog-sync/internal/reconcile"
	"github.com/samber/lo"
)

// Time windows of the freshness filters.
const (
	legacyRecentWindow = 24 * time.Hour
	recent7dWindow     = 7 * 24 * time.Hour
	recent30dWindow    = 30 * 24 * time.Hour
)

// PageSizes are the page sizes the dashboard offers.
var PageSizes = []int{10, 20, 50, 100}

// DefaultPageSize is used when the requested page size is not one of PageSizes.
const DefaultPageSize = 20

// StockFilter selects products by normalized stock state.
type StockFilter int

// Stock filters. StockInOnly keeps everything that is not out of stock,
// so products with unknown availability pass it.
const (
	StockAny StockFilter = iota
	StockInOnly
	StockOutOnly
)

// SyncFilter selects products by derived sync status.
type SyncFilter int

// Sync filters. SyncMissingImages is a special value of the same dropdown:
// it keeps products without an image URL instead of matching sync status.
const (
	SyncAny SyncFilter = iota
	SyncUnsyncedOnly
	SyncPartialOnly
	SyncFullOnly
	SyncMissingImages
)

// TimeFilter selects products by update freshness.
type TimeFilter int

// Time filters. TimeNoUpdates is the negation of the 30-day window.
const (
	TimeAny TimeFilter = iota
	TimeRecent7d
	TimeRecent30d
	TimeNoUpdates
)

// TouchedSet reports products edited in this session, so freshness filters
// reflect an edit before the stored timestamp catches up.
type TouchedSet interface {
	Contains(productID int) bool
}

// Config is the active filter configuration.
// TimeWindow and the legacy RecentlyUpdated toggle are mutually exclusive;
// when both are set, TimeWindow wins.
type Config struct {
	Platform        models.Platform
	Stock           StockFilter
	Sync            SyncFilter
	TimeWindow      TimeFilter
	RecentlyUpdated bool
}

// Totals are aggregate counters over the whole dataset, independent of the
// active filter.
type Totals struct {
	Platforms  map[models.Platform]int
	InStock    int
	OutOfStock int
	Total      int
}

// Apply narrows products with search and the configured filters, in fixed
// order. The input slice is never mutated and relative order is preserved.
func Apply(
	products []models.Product,
	query string,
	cfg Config,
	touched TouchedSet,
	now time.Time,
) []models.Product {
	result := products

	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		result = lo.Filter(result, func(p models.Product, _ int) bool {
			return matchesQuery(&p, q)
		})
	}

	if cfg.Platform != "" {
		result = lo.Filter(result, func(p models.Product, _ int) bool {
			return p.Entry(cfg.Platform).Link != ""
		})
	}

	if cfg.Stock != StockAny {
		result = lo.Filter(result, func(p models.Product, _ int) bool {
			return matchesStock(&p, cfg.Stock)
		})
	}

	if cfg.Sync != SyncAny {
		result = lo.Filter(result, func(p models.Product, _ int) bool {
			return matchesSync(&p, cfg.Sync)
		})
	}

	switch {
	case cfg.TimeWindow != TimeAny:
		result = lo.Filter(result, func(p models.Product, _ int) bool {
			return matchesTimeWindow(&p, cfg.TimeWindow, touched, now)
		})
	case cfg.RecentlyUpdated:
		result = lo.Filter(result, func(p models.Product, _ int) bool {
			return updatedWithin(&p, legacyRecentWindow, touched, now)
		})
	}

	return result
}

// Paginate returns the requested page and the total number of pages.
// Page size falls back to DefaultPageSize when not offered by the dashboard;
// the page number is clamped into the valid range.
func Paginate(products []models.Product, page, pageSize int) ([]models.Product, int) {
	if !lo.Contains(PageSizes, pageSize) {
		pageSize = DefaultPageSize
	}

	totalPages := (len(products) + pageSize - 1) / pageSize
	if totalPages == 0 {
		return nil, 0
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := min(start+pageSize, len(products))

	return products[start:end], totalPages
}

// ComputeTotals counts the unfiltered dataset for the dashboard header.
func ComputeTotals(products []models.Product) Totals {
	totals := Totals{
		Platforms: make(map[models.Platform]int, len(models.Platforms)),
		Total:     len(products),
	}

	for ix := range products {
		for _, platform := range models.Platforms {
			if products[ix].Entry(platform).Link != "" {
				totals.Platforms[platform]++
			}
		}

		switch reconcile.NormalizeStockState(products[ix].Stock) {
		case models.StockIn:
			totals.InStock++
		case models.StockOut:
			totals.OutOfStock++
		}
	}

	return totals
}

func matchesQuery(p *models.Product, loweredQuery string) bool {
	fields := []string{p.Title, p.SKU, p.WebsiteID}
	for _, platform := range models.Platforms {
		fields = append(fields, p.Entry(platform).Link)
	}

	return lo.SomeBy(fields, func(field string) bool {
		return strings.Contains(strings.ToLower(field), loweredQuery)
	})
}

func matchesStock(p *models.Product, f StockFilter) bool {
	state := reconcile.NormalizeStockState(p.Stock)
	if f == StockOutOnly {
		return state == models.StockOut
	}
	return state != models.StockOut
}

func matchesSync(p *models.Product, f SyncFilter) bool {
	if f == SyncMissingImages {
		return p.ImageURL == ""
	}

	status := reconcile.ProductSyncStatus(p)
	switch f {
	case SyncUnsyncedOnly:
		return status == models.SyncUnsynced
	case SyncPartialOnly:
		return status == models.SyncPartial
	default:
		return status == models.SyncFull
	}
}

func matchesTimeWindow(p *models.Product, f TimeFilter, touched TouchedSet, now time.Time) bool {
	switch f {
	case TimeRecent7d:
		return updatedWithin(p, recent7dWindow, touched, now)
	case TimeRecent30d:
		return updatedWithin(p, recent30dWindow, touched, now)
	default:
		// a product edited in this session is never "no updates",
		// even when its stored timestamp says otherwise
		return !updatedWithin(p, recent30dWindow, touched, now)
	}
}

func updatedWithin(p *models.Product, window time.Duration, touched TouchedSet, now time.Time) bool {
	if touched != nil && touched.Contains(p.ID) {
		return true
	}
	return now.Sub(p.UpdatedAt) <= window
}
