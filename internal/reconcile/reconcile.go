// Package reconcile derives canonical pricing, sync health and stock state
// of a product from its five marketplace listings. All functions are pure.
package reconcile

import (
	"github.com/catalogops/catalog-sync/internal/platform/models"
)

// syncLinkMinLen is the minimal link length counted as a real listing when
// deriving sync status. Shorter values are placeholders left by imports.
const syncLinkMinLen = 10

// Summary is aggregate state of a product's five marketplace listings.
type Summary struct {
	// ValidCount is the number of platforms with a sync-valid link.
	ValidCount int
	// PriceCount is the number of platforms with a positive price.
	PriceCount int
	// LinkMismatch is true when some sync-valid link has no price.
	LinkMismatch bool
}

// Pricing is canonical pricing suggestion derived from marketplace listings.
type Pricing struct {
	RegularPrice     float64
	PromotionalPrice float64
	ExternalURL      string
	LowestPlatform   models.Platform
	HighestPlatform  models.Platform
}

// isSyncValidLink reports whether link counts as a real listing for sync
// status purposes. Deliberately stricter than isPricingValidLink.
func isSyncValidLink(link string) bool {
	return len(link) > syncLinkMinLen
}

// isPricingValidLink reports whether link qualifies a priced platform for
// canonical pricing. Any non-empty link counts here, unlike the length-checked
// sync predicate. The two predicates diverge on purpose, mirroring how the
// dashboard always behaved.
func isPricingValidLink(link string) bool {
	return link != ""
}

// DerivePlatformSummary computes listing counts over the five platforms.
// Result is independent of platform order.
func DerivePlatformSummary(p *models.Product) Summary {
	var summary Summary

	for _, platform := range models.Platforms {
		entry := p.Entry(platform)
		linked := isSyncValidLink(entry.Link)
		priced := entry.Price > 0

		if linked {
			summary.ValidCount++
		}
		if priced {
			summary.PriceCount++
		}
		if linked && !priced {
			summary.LinkMismatch = true
		}
	}

	return summary
}

// DeriveSyncStatus maps a platform summary onto a tri-state sync status.
// The three branches are exhaustive and mutually exclusive.
func DeriveSyncStatus(summary Summary) models.SyncStatus {
	switch {
	case summary.ValidCount == 0:
		return models.SyncUnsynced
	case summary.LinkMismatch || summary.ValidCount != summary.PriceCount:
		return models.SyncPartial
	default:
		return models.SyncFull
	}
}

// ProductSyncStatus derives sync status straight from a product.
func ProductSyncStatus(p *models.Product) models.SyncStatus {
	return DeriveSyncStatus(DerivePlatformSummary(p))
}

// DeriveCanonicalPricing suggests regular price (highest platform price),
// promotional price (lowest) and external URL (link of the lowest-priced
// platform) from platforms that are both priced and linked. Returns nil when
// no platform qualifies. Strict comparisons keep the earliest platform in
// canonical order when prices tie.
func DeriveCanonicalPricing(p *models.Product) *Pricing {
	var pricing *Pricing

	for _, platform := range models.Platforms {
		entry := p.Entry(platform)
		if entry.Price <= 0 || !isPricingValidLink(entry.Link) {
			continue
		}

		if pricing == nil {
			pricing = &Pricing{
				RegularPrice:     entry.Price,
				PromotionalPrice: entry.Price,
				ExternalURL:      entry.Link,
				LowestPlatform:   platform,
				HighestPlatform:  platform,
			}
			continue
		}

		if entry.Price > pricing.RegularPrice {
			pricing.RegularPrice = entry.Price
			pricing.HighestPlatform = platform
		}
		if entry.Price < pricing.PromotionalPrice {
			pricing.PromotionalPrice = entry.Price
			pricing.ExternalURL = entry.Link
			pricing.LowestPlatform = platform
		}
	}

	return pricing
}

// NormalizeStockState maps a raw stock flag onto a tri-state availability.
// String variants are matched exactly per listed casings; anything
// unrecognized normalizes to StockUnknown rather than erroring.
func NormalizeStockState(flag models.StockFlag) models.StockState {
	switch flag.Kind {
	case models.StockFlagBool:
		if flag.Bool {
			return models.StockOut
		}
		return models.StockIn
	case models.StockFlagNumber:
		switch flag.Number {
		case 1:
			return models.StockOut
		case 0:
			return models.StockIn
		default:
			return models.StockUnknown
		}
	case models.StockFlagString:
		switch flag.Text {
		case "true", "Hết hàng", "hết hàng":
			return models.StockOut
		case "false", "Còn hàng", "còn hàng":
			return models.StockIn
		default:
			return models.StockUnknown
		}
	default:
		return models.StockUnknown
	}
}
