// Package editor manages the lifecycle of editing a single product: snapshot,
// auto-corrections, dirty tracking and the ordered save propagation to the
// local store, the audit log and the remote store.
package editor

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/catalogops/catalog-sync/internal/platform"
	"github.com/catalogops/catalog-sync/internal/platform/models"
	"github.com/catalogops/catalog-sync/internal/reconcile"
	"github.com/rs/zerolog"
)

//go:generate mockery --name LocalStore --filename localstore.go
//go:generate mockery --name AuditLog --filename auditlog.go
//go:generate mockery --name RemoteStore --filename remotestore.go
//go:generate mockery --name Toucher --filename toucher.go

// LocalStore is the system of record for products.
type LocalStore interface {
	// GetProduct returns a product by ID or platform.ErrNotFound.
	GetProduct(ctx context.Context, productID int) (*models.Product, error)
	// UpdateProduct writes all editable fields of the product.
	// Server-managed fields (ID, CreatedAt) are never written.
	UpdateProduct(ctx context.Context, product *models.Product) error
}

// AuditLog records product saves.
type AuditLog interface {
	AppendAuditEntry(ctx context.Context, entry *models.AuditEntry) error
}

// RemoteStore propagates product changes to the storefront.
type RemoteStore interface {
	UpdateProduct(ctx context.Context, websiteID string, product *models.Product) error
}

// Toucher marks products as recently touched.
type Toucher interface {
	Mark(productID int)
}

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() time.Time
}

// Option is custom configuration of Editor.
type Option func(e *Editor)

// Editor opens edit sessions over products.
type Editor struct {
	store     LocalStore
	audit     AuditLog
	remote    RemoteStore
	touched   Toucher
	clock     Clock
	logger    *zerolog.Logger
	source    string
	noticeTTL time.Duration
}

// NewEditor returns new Editor.
func NewEditor(
	store LocalStore,
	audit AuditLog,
	remote RemoteStore,
	touched Toucher,
	logger *zerolog.Logger,
	ops ...Option,
) *Editor {
	ed := &Editor{
		store:     store,
		audit:     audit,
		remote:    remote,
		touched:   touched,
		clock:     systemClock{},
		logger:    logger,
		source:    "dashboard",
		noticeTTL: 10 * time.Second,
	}

	for _, op := range ops {
		op(ed)
	}

	return ed
}

// WithClock sets Editor's custom Clock.
func WithClock(c Clock) Option {
	return func(e *Editor) {
		e.clock = c
	}
}

// WithSource sets the audit source recorded on saves.
func WithSource(source string) Option {
	return func(e *Editor) {
		e.source = source
	}
}

// WithNoticeTTL sets how long auto-correction notices stay visible.
func WithNoticeTTL(ttl time.Duration) Option {
	return func(e *Editor) {
		e.noticeTTL = ttl
	}
}

// Session is one product being edited: immutable snapshot, working copy and
// dirty field tracking. A session is not safe for concurrent use; overlapping
// saves are rejected, not queued.
type Session struct {
	ed       *Editor
	actor    string
	original models.Product
	working  models.Product

	notice       string
	noticeExpiry time.Time

	saving atomic.Bool
	closed atomic.Bool
}

// SaveResult is the outcome of a successful save. Warnings carry non-fatal
// audit and remote failures; the local write has succeeded whenever a
// SaveResult is returned.
type SaveResult struct {
	Product      models.Product
	AuditLogged  bool
	RemoteSynced bool
	Warnings     []string
}

// Open fetches the product and opens an edit session over it, applying both
// auto-correction passes: the missing-price fix, which fires only when the
// stored price is unset, and the canonical fix, which always fires when the
// platform listings suggest different promotional pricing. The two passes
// overlap on purpose; their notices concatenate.
func (e *Editor) Open(ctx context.Context, productID int, actor string) (*Session, error) {
	product, err := e.store.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("can't open edit session: %w", err)
	}

	s := &Session{
		ed:       e,
		actor:    actor,
		original: *product,
		working:  *product,
	}

	var notices []string
	if notice := s.applyMissingPriceFix(); notice != "" {
		notices = append(notices, notice)
	}
	if notice := s.applyCanonicalFix(); notice != "" {
		notices = append(notices, notice)
	}

	if len(notices) > 0 {
		s.notice = strings.Join(notices, "; ")
		s.noticeExpiry = e.clock.Now().Add(e.noticeTTL)
	}

	return s, nil
}

// Notice returns the transient auto-correction summary, or empty string once
// it has expired. Advisory only, never persisted.
func (s *Session) Notice() string {
	if s.notice == "" || s.ed.clock.Now().After(s.noticeExpiry) {
		return ""
	}
	return s.notice
}

// Working returns a copy of the current working state.
func (s *Session) Working() models.Product {
	return s.working
}

// SetField writes value into the named field of the working copy. Editing a
// platform link or price immediately re-applies the canonical pricing fix.
func (s *Session) SetField(name string, value any) error {
	if s.closed.Load() {
		return platform.ErrSessionClosed
	}

	if err := s.setField(name, value); err != nil {
		return err
	}

	if platformOf(name) != "" {
		s.applyCanonicalFix()
	}

	return nil
}

// HasChanges reports whether any field differs between snapshot and working copy.
func (s *Session) HasChanges() bool {
	return !reflect.DeepEqual(s.original, s.working)
}

// DirtyFields returns the names of fields differing from the snapshot,
// sorted. Platform link/price siblings are both reported when either differs.
func (s *Session) DirtyFields() []string {
	return diffFields(&s.original, &s.working)
}

// Close abandons the session. Nothing was written, so there is nothing to
// compensate.
func (s *Session) Close() {
	s.closed.Store(true)
}

// Save propagates the working copy: local store first, then best-effort audit
// entry, then best-effort remote update. A local failure aborts the save; an
// audit or remote failure is surfaced as a warning on the result. The session
// closes on success.
func (s *Session) Save(ctx context.Context) (*SaveResult, error) {
	if s.closed.Load() {
		return nil, platform.ErrSessionClosed
	}
	if !s.saving.CompareAndSwap(false, true) {
		return nil, platform.ErrSaveInFlight
	}
	defer s.saving.Store(false)

	if !s.HasChanges() {
		return nil, fmt.Errorf("%w: nothing to save", platform.ErrValidation)
	}
	if s.working.ID == 0 {
		return nil, fmt.Errorf("%w: product has no ID", platform.ErrValidation)
	}

	// the product may have been deleted since the session opened
	if _, err := s.ed.store.GetProduct(ctx, s.working.ID); err != nil {
		return nil, fmt.Errorf("can't verify product before save: %w", err)
	}

	changed := diffFields(&s.original, &s.working)
	payload := s.working
	payload.UpdatedAt = s.ed.clock.Now()

	if err := s.ed.store.UpdateProduct(ctx, &payload); err != nil {
		return nil, fmt.Errorf("can't save product: %w", err)
	}

	result := &SaveResult{
		Product:     payload,
		AuditLogged: true,
	}

	if err := s.appendAudit(ctx, &payload, changed); err != nil {
		s.ed.logger.Warn().
			Err(err).
			Int("productId", payload.ID).
			Msg("product saved, audit entry not recorded")
		result.AuditLogged = false
		result.Warnings = append(result.Warnings, "audit entry not recorded")
	}

	result.RemoteSynced = s.propagateRemote(ctx, &payload, result)

	s.ed.touched.Mark(payload.ID)
	s.closed.Store(true)

	return result, nil
}

func (s *Session) propagateRemote(ctx context.Context, payload *models.Product, result *SaveResult) bool {
	if s.ed.remote == nil || payload.WebsiteID == "" {
		return false
	}

	if err := s.ed.remote.UpdateProduct(ctx, payload.WebsiteID, payload); err != nil {
		s.ed.logger.Warn().
			Err(err).
			Int("productId", payload.ID).
			Str("websiteId", payload.WebsiteID).
			Msg("product saved locally, remote sync failed")
		result.Warnings = append(result.Warnings, "saved locally, remote sync failed")
		return false
	}

	return true
}

func (s *Session) appendAudit(ctx context.Context, payload *models.Product, changed []string) error {
	before, err := json.Marshal(s.original)
	if err != nil {
		return fmt.Errorf("can't marshal before snapshot: %w", err)
	}
	after, err := json.Marshal(*payload)
	if err != nil {
		return fmt.Errorf("can't marshal after snapshot: %w", err)
	}

	return s.ed.audit.AppendAuditEntry(ctx, &models.AuditEntry{
		ProductID:     payload.ID,
		ProjectID:     payload.ProjectID,
		ChangedFields: changed,
		Before:        string(before),
		After:         string(after),
		Actor:         s.actor,
		Source:        s.ed.source,
		CreatedAt:     s.ed.clock.Now(),
	})
}

// applyMissingPriceFix fills price, promotional price and external URL from
// the canonical suggestion, but only when the stored price is unset.
func (s *Session) applyMissingPriceFix() string {
	if s.working.Price > 0 {
		return ""
	}

	pricing := reconcile.DeriveCanonicalPricing(&s.working)
	if pricing == nil {
		return ""
	}

	s.working.Price = pricing.RegularPrice
	s.working.PromotionalPrice = pricing.PromotionalPrice
	s.working.ExternalURL = pricing.ExternalURL

	return fmt.Sprintf("missing price filled from %s/%s listings", pricing.HighestPlatform, pricing.LowestPlatform)
}

// applyCanonicalFix overwrites promotional price and external URL whenever
// the platform listings suggest different values. Unlike the missing-price
// fix it runs unconditionally.
func (s *Session) applyCanonicalFix() string {
	pricing := reconcile.DeriveCanonicalPricing(&s.working)
	if pricing == nil {
		return ""
	}

	if s.working.PromotionalPrice == pricing.PromotionalPrice && s.working.ExternalURL == pricing.ExternalURL {
		return ""
	}

	s.working.PromotionalPrice = pricing.PromotionalPrice
	s.working.ExternalURL = pricing.ExternalURL

	return fmt.Sprintf("promotional price updated from %s listing", pricing.LowestPlatform)
}

// Editable field names.
const (
	FieldTitle            = "title"
	FieldSKU              = "sku"
	FieldWebsiteID        = "website_id"
	FieldPrice            = "price"
	FieldPromotionalPrice = "promotional_price"
	FieldExternalURL      = "external_url"
	FieldImageURL         = "image_url"
)

func platformFieldNames(p models.Platform) (link, price string) {
	return string(p) + "_link", string(p) + "_price"
}

func platformOf(field string) models.Platform {
	for _, p := range models.Platforms {
		link, price := platformFieldNames(p)
		if field == link || field == price {
			return p
		}
	}
	return ""
}

func (s *Session) setField(name string, value any) error {
	if p := platformOf(name); p != "" {
		entry := s.working.Entry(p)
		link, _ := platformFieldNames(p)
		if name == link {
			text, err := toString(name, value)
			if err != nil {
				return err
			}
			entry.Link = text
		} else {
			price, err := toFloat(name, value)
			if err != nil {
				return err
			}
			entry.Price = price
		}
		s.working.SetEntry(p, entry)
		return nil
	}

	switch name {
	case FieldTitle, FieldSKU, FieldWebsiteID, FieldExternalURL, FieldImageURL:
		text, err := toString(name, value)
		if err != nil {
			return err
		}
		switch name {
		case FieldTitle:
			s.working.Title = text
		case FieldSKU:
			s.working.SKU = text
		case FieldWebsiteID:
			s.working.WebsiteID = text
		case FieldExternalURL:
			s.working.ExternalURL = text
		case FieldImageURL:
			s.working.ImageURL = text
		}
	case FieldPrice, FieldPromotionalPrice:
		price, err := toFloat(name, value)
		if err != nil {
			return err
		}
		if name == FieldPrice {
			s.working.Price = price
		} else {
			s.working.PromotionalPrice = price
		}
	default:
		return fmt.Errorf("%w: unknown field %q", platform.ErrValidation, name)
	}

	return nil
}

func toString(name string, value any) (string, error) {
	text, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: field %q expects a string", platform.ErrValidation, name)
	}
	return text, nil
}

func toFloat(name string, value any) (float64, error) {
	switch number := value.(type) {
	case float64:
		return number, nil
	case float32:
		return float64(number), nil
	case int:
		return float64(number), nil
	default:
		return 0, fmt.Errorf("%w: field %q expects a number", platform.ErrValidation, name)
	}
}

// diffFields compares two products field by field. Platform link/price
// siblings are reported together, so a platform edit always surfaces as a
// pair in the audit trail.
func diffFields(original, working *models.Product) []string {
	var fields []string

	if original.Title != working.Title {
		fields = append(fields, FieldTitle)
	}
	if original.SKU != working.SKU {
		fields = append(fields, FieldSKU)
	}
	if original.WebsiteID != working.WebsiteID {
		fields = append(fields, FieldWebsiteID)
	}
	if original.Price != working.Price {
		fields = append(fields, FieldPrice)
	}
	if original.PromotionalPrice != working.PromotionalPrice {
		fields = append(fields, FieldPromotionalPrice)
	}
	if original.ExternalURL != working.ExternalURL {
		fields = append(fields, FieldExternalURL)
	}
	if original.ImageURL != working.ImageURL {
		fields = append(fields, FieldImageURL)
	}
	if original.Stock != working.Stock {
		fields = append(fields, "stock")
	}

	for _, p := range models.Platforms {
		if original.Entry(p) != working.Entry(p) {
			link, price := platformFieldNames(p)
			fields = append(fields, link, price)
		}
	}

	sort.Strings(fields)

	return fields
}
