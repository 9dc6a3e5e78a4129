package autoupdate

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/catalogops/catalog-sync/internal/platform/models"
	"github.com/catalogops/catalog-sync/internal/reconcile"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

//go:generate mockery --name Storage --filename storage.go

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() *time.Time
}

// Storage is products and reconcile runs storage.
type Storage interface {
	// StartRun creates new run if there is no run for provided project running.
	StartRun(ctx context.Context, projectID int) (run *models.ReconcileRun, err error)
	// FinishRun finishes provided run and updates its statistics.
	FinishRun(ctx context.Context, run *models.ReconcileRun) error
	// ListProducts returns project's live products.
	ListProducts(ctx context.Context, projectID int) ([]models.Product, error)
	// UpdatePricing overwrites product's canonical pricing fields.
	UpdatePricing(
		ctx context.Context,
		productID int,
		regularPrice, promotionalPrice float64,
		externalURL string,
	) error
	// PurgeDeletedProducts permanently removes products soft-deleted earlier than olderThan ago.
	// Returns number of purged products.
	PurgeDeletedProducts(
		ctx context.Context,
		projectID int,
		olderThan time.Duration,
		batchSize uint,
	) (purgedProducts int32, err error)
}

// Option is custom configuration of Updater.
type Option func(u *Updater)

// Updater recomputes canonical pricing for whole projects in the background.
type Updater struct {
	storage    Storage
	batchSize  uint
	purgeAfter time.Duration
	clock      Clock
}

// NewUpdater returns new Updater.
func NewUpdater(storage Storage, batchSize uint, ops ...Option) *Updater {
	upd := &Updater{
		storage:    storage,
		batchSize:  batchSize,
		purgeAfter: 7 * 24 * time.Hour,
		clock:      systemClock{},
	}

	for _, op := range ops {
		op(upd)
	}

	return upd
}

// correction is one planned pricing overwrite.
type correction struct {
	productID        int
	regularPrice     float64
	promotionalPrice float64
	externalURL      string
}

// Reconcile recomputes canonical pricing of all live products in the project
// and records the run with its statistics.
func (u Updater) Reconcile(ctx context.Context, projectID int) error {
	// insert new run in storage.
	run, err := u.storage.StartRun(ctx, projectID)
	if err != nil {
		return fmt.Errorf("can't start reconciling: %w", err)
	}

	products, err := u.storage.ListProducts(ctx, projectID)
	if err != nil {
		return u.finishReconciling(ctx, run, fmt.Errorf("can't list products: %w", err))
	}

	corrected, skipped, failed, err := u.reconcileProducts(ctx, products)

	run.CorrectedProducts = &corrected
	run.SkippedProducts = &skipped
	run.FailedProducts = &failed

	return u.finishReconciling(ctx, run, err)
}

// Purge permanently removes project's products whose restore window has passed.
// Returns number of purged products.
func (u Updater) Purge(ctx context.Context, projectID int) (int32, error) {
	purged, err := u.storage.PurgeDeletedProducts(ctx, projectID, u.purgeAfter, u.batchSize)
	if err != nil {
		return 0, fmt.Errorf("can't purge deleted products: %w", err)
	}

	return purged, nil
}

func (u Updater) reconcileProducts(ctx context.Context, products []models.Product) (int32, int32, int32, error) {
	corrections := make(chan []correction)
	correctedProducts := int32(0)
	skippedProducts := int32(0)
	failedProducts := int32(0)

	errGroup, egCtx := errgroup.WithContext(ctx)

	// plan pricing corrections.
	errGroup.Go(func() error {
		defer close(corrections)

		skipped, err := u.planCorrections(egCtx, products, corrections)
		_ = atomic.AddInt32(&skippedProducts, skipped)

		if err != nil {
			return fmt.Errorf("can't plan corrections: %w", err)
		}

		return nil
	})

	// apply pricing corrections.
	errGroup.Go(func() error {
		corrected, failed := u.applyCorrections(egCtx, corrections)
		_ = atomic.AddInt32(&correctedProducts, corrected)
		_ = atomic.AddInt32(&failedProducts, failed)

		return nil
	})

	err := errGroup.Wait()

	return correctedProducts, skippedProducts, failedProducts, err
}

func (u Updater) planCorrections(
	ctx context.Context,
	products []models.Product,
	output chan []correction,
) (int32, error) {
	skippedProducts := int32(0)
	batch := make([]correction, 0, u.batchSize)

	for ix := range products {
		fix, ok := planCorrection(&products[ix])
		if !ok {
			skippedProducts++
			continue
		}

		batch = append(batch, fix)
		if len(batch) == int(u.batchSize) {
			select {
			case <-ctx.Done():
				return skippedProducts, ctx.Err()
			case output <- batch:
			}
			batch = make([]correction, 0, u.batchSize)
		}
	}

	if len(batch) > 0 {
		select {
		case <-ctx.Done():
			return skippedProducts, ctx.Err()
		case output <- batch:
		}
	}

	return skippedProducts, nil
}

// applyCorrections writes planned corrections. Single failed write
// doesn't stop the run, it only shows up in the statistics.
func (u Updater) applyCorrections(ctx context.Context, input chan []correction) (int32, int32) {
	correctedProducts := int32(0)
	failedProducts := int32(0)

	for batch := range input {
		for _, fix := range batch {
			err := u.storage.UpdatePricing(ctx, fix.productID, fix.regularPrice, fix.promotionalPrice, fix.externalURL)
			if err != nil {
				failedProducts++
				continue
			}
			correctedProducts++
		}
	}

	return correctedProducts, failedProducts
}

// planCorrection derives canonical pricing for the product. It reports false
// when no platform qualifies or the stored pricing is already canonical.
// A regular price set by hand is kept, only a missing one is filled in.
func planCorrection(product *models.Product) (correction, bool) {
	pricing := reconcile.DeriveCanonicalPricing(product)
	if pricing == nil {
		return correction{}, false
	}

	regularPrice := product.Price
	if regularPrice == 0 {
		regularPrice = pricing.RegularPrice
	}

	fix := correction{
		productID:        product.ID,
		regularPrice:     regularPrice,
		promotionalPrice: pricing.PromotionalPrice,
		externalURL:      pricing.ExternalURL,
	}

	if fix.regularPrice == product.Price &&
		fix.promotionalPrice == product.PromotionalPrice &&
		fix.externalURL == product.ExternalURL {
		return correction{}, false
	}

	return fix, true
}

func (u Updater) finishReconciling(ctx context.Context, run *models.ReconcileRun, status error) error {
	if status != nil {
		run.StatusMessage = lo.ToPtr(status.Error())
	}
	run.IsSuccess = lo.ToPtr(status == nil)
	run.FinishedAt = u.clock.Now()

	err := u.storage.FinishRun(ctx, run)
	if err != nil && status == nil {
		return fmt.Errorf("can't finish reconciling: %w", err)
	}

	if err != nil && status != nil {
		return fmt.Errorf("can't finish failed reconciling: %w (fail reason: %w)", err, status)
	}

	return status
}

// WithClock sets Updater's custom Clock.
func WithClock(c Clock) Option {
	return func(u *Updater) {
		u.clock = c
	}
}

// WithPurgeAfter sets how long soft-deleted products are kept before Purge removes them.
func WithPurgeAfter(retention time.Duration) Option {
	return func(u *Updater) {
		u.purgeAfter = retention
	}
}
