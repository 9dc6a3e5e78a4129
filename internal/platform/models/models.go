package models

import (
	"encoding/json"
	"time"
)

// Platform is one of the marketplaces a product can be listed on.
type Platform string

// Marketplace platforms.
const (
	PlatformShopee Platform = "shopee"
	PlatformTikTok Platform = "tiktok"
	PlatformLazada Platform = "lazada"
	PlatformDMX    Platform = "dmx"
	PlatformTiki   Platform = "tiki"
)

// Platforms lists all marketplaces in canonical order.
// Price tie-breaking depends on this order.
var Platforms = [5]Platform{PlatformShopee, PlatformTikTok, PlatformLazada, PlatformDMX, PlatformTiki}

// PlatformEntry is a product's listing on one marketplace.
type PlatformEntry struct {
	Link  string
	Price float64
}

// StockState is normalized product availability.
type StockState int

// Stock states.
const (
	StockUnknown StockState = iota
	StockIn
	StockOut
)

func (s StockState) String() string {
	switch s {
	case StockIn:
		return "instock"
	case StockOut:
		return "outofstock"
	default:
		return "unknown"
	}
}

// SyncStatus is derived marketplace sync health of a product.
type SyncStatus int

// Sync statuses.
const (
	SyncUnsynced SyncStatus = iota
	SyncPartial
	SyncFull
)

func (s SyncStatus) String() string {
	switch s {
	case SyncPartial:
		return "partial"
	case SyncFull:
		return "full"
	default:
		return "unsynced"
	}
}

// StockFlagKind is the source type of a raw stock flag.
type StockFlagKind int

// Raw stock flag kinds.
const (
	StockFlagAbsent StockFlagKind = iota
	StockFlagBool
	StockFlagNumber
	StockFlagString
)

// StockFlag is the raw availability value as it arrived from a source.
// Sources disagree on its type (bool, number or localized string), so the
// value is kept as a tagged union and normalized in one place instead of
// type-switching at every use site.
type StockFlag struct {
	Kind   StockFlagKind
	Bool   bool
	Number float64
	Text   string
}

// BoolStockFlag returns StockFlag holding a boolean value.
func BoolStockFlag(v bool) StockFlag {
	return StockFlag{Kind: StockFlagBool, Bool: v}
}

// NumberStockFlag returns StockFlag holding a numeric value.
func NumberStockFlag(v float64) StockFlag {
	return StockFlag{Kind: StockFlagNumber, Number: v}
}

// StringStockFlag returns StockFlag holding a string value.
func StringStockFlag(v string) StockFlag {
	return StockFlag{Kind: StockFlagString, Text: v}
}

// UnmarshalJSON decodes bool, number or string into the tagged union.
// Any other JSON value is kept as absent.
func (f *StockFlag) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch value := raw.(type) {
	case bool:
		*f = BoolStockFlag(value)
	case float64:
		*f = NumberStockFlag(value)
	case string:
		*f = StringStockFlag(value)
	default:
		*f = StockFlag{}
	}

	return nil
}

// MarshalJSON encodes the flag back in its source type.
func (f StockFlag) MarshalJSON() ([]byte, error) {
	switch f.Kind {
	case StockFlagBool:
		return json.Marshal(f.Bool)
	case StockFlagNumber:
		return json.Marshal(f.Number)
	case StockFlagString:
		return json.Marshal(f.Text)
	default:
		return []byte("null"), nil
	}
}

// RawJSON returns the flag as a JSON scalar for persistence. The scalar
// keeps the source type, so `1` and `"1"` stay distinct values.
// Absent flags encode as an empty string.
func (f StockFlag) RawJSON() string {
	if f.Kind == StockFlagAbsent {
		return ""
	}

	data, err := json.Marshal(f)
	if err != nil {
		return ""
	}

	return string(data)
}

// StockFlagFromRawJSON restores a flag stored with RawJSON.
// Malformed values are kept as absent.
func StockFlagFromRawJSON(raw string) StockFlag {
	if raw == "" {
		return StockFlag{}
	}

	var f StockFlag
	if err := json.Unmarshal([]byte(raw), &f); err != nil {
		return StockFlag{}
	}

	return f
}

// Project is one managed store: a WooCommerce shop plus its catalog segment.
type Project struct {
	ID        int
	Name      string
	StoreURL  string
	CreatedAt time.Time
	DeletedAt *time.Time
}

// Product is one catalog item.
type Product struct {
	ID        int
	ProjectID int
	WebsiteID string
	SKU       string
	Title     string

	Price            float64
	PromotionalPrice float64
	ExternalURL      string
	ImageURL         string

	Shopee PlatformEntry
	TikTok PlatformEntry
	Lazada PlatformEntry
	DMX    PlatformEntry
	Tiki   PlatformEntry

	Stock StockFlag

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// Entry returns product's listing on provided platform.
// Unknown platforms read as an empty listing.
func (p *Product) Entry(platform Platform) PlatformEntry {
	switch platform {
	case PlatformShopee:
		return p.Shopee
	case PlatformTikTok:
		return p.TikTok
	case PlatformLazada:
		return p.Lazada
	case PlatformDMX:
		return p.DMX
	case PlatformTiki:
		return p.Tiki
	default:
		return PlatformEntry{}
	}
}

// SetEntry replaces product's listing on provided platform.
// Unknown platforms are ignored.
func (p *Product) SetEntry(platform Platform, entry PlatformEntry) {
	switch platform {
	case PlatformShopee:
		p.Shopee = entry
	case PlatformTikTok:
		p.TikTok = entry
	case PlatformLazada:
		p.Lazada = entry
	case PlatformDMX:
		p.DMX = entry
	case PlatformTiki:
		p.Tiki = entry
	}
}

// AuditEntry is append-only record of one product save.
type AuditEntry struct {
	ID            int
	ProductID     int
	ProjectID     int
	ChangedFields []string
	Before        string
	After         string
	Actor         string
	Source        string
	CreatedAt     time.Time
}

// ReconcileRun is bulk price reconciliation run model.
type ReconcileRun struct {
	ID                int
	ProjectID         int
	CreatedAt         time.Time
	FinishedAt        *time.Time
	IsSuccess         *bool
	StatusMessage     *string
	CorrectedProducts *int32
	SkippedProducts   *int32
	FailedProducts    *int32
}
