package autoupdate_test

import (
	"context"
	"testing"
	"time"

	"github.com/catalogops/catalog-sync/internal/autoupdate"
	"github.com/catalogops/catalog-sync/internal/autoupdate/mocks"
	"github.com/catalogops/catalog-sync/internal/platform/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reusable test data
var (
	batchSize = uint(2) // will affect tests results when changed
	projectID = 7
	runID     = 101
	createdAt = time.Date(2020, time.April, 1, 1, 1, 1, 0, time.UTC)
	now       = time.Date(2022, time.April, 1, 1, 1, 1, 0, time.UTC)

	shopeeLink = "https://shopee.example.com/item/1"
	tiktokLink = "https://tiktok.example.com/item/1"

	errShouldContainAssertErrorMsg = "should return error containing assert.AnError"
)

type fakeClock struct {
	now *time.Time
}

func (c fakeClock) Now() *time.Time { return c.now }

// listedProduct returns product listed on shopee (price 100) and tiktok (price 80),
// so its canonical pricing is regular 100, promotional 80 and tiktok's link.
func listedProduct(id int, ops ...func(p *models.Product)) models.Product {
	product := models.Product{
		ID:        id,
		ProjectID: projectID,
		Shopee:    models.PlatformEntry{Link: shopeeLink, Price: 100},
		TikTok:    models.PlatformEntry{Link: tiktokLink, Price: 80},
	}

	for _, op := range ops {
		op(&product)
	}

	return product
}

func TestUnitReconcile(t *testing.T) {
	run := &models.ReconcileRun{
		ID:        runID,
		ProjectID: projectID,
		CreatedAt: createdAt,
	}

	products := []models.Product{
		// no listings at all, nothing to derive.
		{ID: 1, ProjectID: projectID},
		// already canonical.
		listedProduct(2, func(p *models.Product) {
			p.Price = 100
			p.PromotionalPrice = 80
			p.ExternalURL = tiktokLink
		}),
		// missing pricing entirely.
		listedProduct(3),
		// hand-set regular price is kept, stale promotional price and url corrected.
		listedProduct(4, func(p *models.Product) {
			p.Price = 50
			p.PromotionalPrice = 999
		}),
		// correction fails on write.
		listedProduct(5),
	}

	wantRun := &models.ReconcileRun{
		ID:                runID,
		ProjectID:         projectID,
		CreatedAt:         createdAt,
		FinishedAt:        &now,
		IsSuccess:         lo.ToPtr(true),
		CorrectedProducts: lo.ToPtr(int32(2)),
		SkippedProducts:   lo.ToPtr(int32(2)),
		FailedProducts:    lo.ToPtr(int32(1)),
	}

	storage := mocks.NewStorage(t)
	mockStorageStartRun(storage, run, nil)
	storage.On("ListProducts", mock.Anything, projectID).Return(products, nil)
	storage.On("UpdatePricing", mock.Anything, 3, 100.0, 80.0, tiktokLink).Return(nil)
	storage.On("UpdatePricing", mock.Anything, 4, 50.0, 80.0, tiktokLink).Return(nil)
	storage.On("UpdatePricing", mock.Anything, 5, 100.0, 80.0, tiktokLink).Return(assert.AnError)
	mockStorageFinishRun(storage, wantRun, nil)

	upd := autoupdate.NewUpdater(storage, batchSize, autoupdate.WithClock(fakeClock{now: &now}))

	err := upd.Reconcile(context.TODO(), projectID)

	require.NoError(t, err, "shouldn't return any error")
}

func TestUnitReconcileStorageError(t *testing.T) {
	t.Run("start run error", func(t *testing.T) {
		storage := mocks.NewStorage(t)
		mockStorageStartRun(storage, nil, assert.AnError)

		upd := autoupdate.NewUpdater(storage, batchSize, autoupdate.WithClock(fakeClock{now: &now}))

		err := upd.Reconcile(context.TODO(), projectID)

		require.ErrorContains(t, err,
			"can't start reconciling",
			"should return error about failed run start",
		)
		require.ErrorIs(t, err, assert.AnError, errShouldContainAssertErrorMsg)
	})

	t.Run("list products error", func(t *testing.T) {
		run := &models.ReconcileRun{
			ID:        runID,
			ProjectID: projectID,
			CreatedAt: createdAt,
		}

		wantRun := &models.ReconcileRun{
			ID:            runID,
			ProjectID:     projectID,
			CreatedAt:     createdAt,
			FinishedAt:    &now,
			IsSuccess:     lo.ToPtr(false),
			StatusMessage: lo.ToPtr("can't list products: assert.AnError general error for testing"),
		}

		storage := mocks.NewStorage(t)
		mockStorageStartRun(storage, run, nil)
		storage.On("ListProducts", mock.Anything, projectID).Return(nil, assert.AnError)
		mockStorageFinishRun(storage, wantRun, nil)

		upd := autoupdate.NewUpdater(storage, batchSize, autoupdate.WithClock(fakeClock{now: &now}))

		err := upd.Reconcile(context.TODO(), projectID)

		require.ErrorContains(t, err,
			"can't list products",
			"should return error about failed products listing",
		)
		require.ErrorIs(t, err, assert.AnError, errShouldContainAssertErrorMsg)
	})

	t.Run("finish run error", func(t *testing.T) {
		run := &models.ReconcileRun{
			ID:        runID,
			ProjectID: projectID,
			CreatedAt: createdAt,
		}

		wantRun := &models.ReconcileRun{
			ID:                runID,
			ProjectID:         projectID,
			CreatedAt:         createdAt,
			FinishedAt:        &now,
			IsSuccess:         lo.ToPtr(true),
			CorrectedProducts: lo.ToPtr(int32(0)),
			SkippedProducts:   lo.ToPtr(int32(0)),
			FailedProducts:    lo.ToPtr(int32(0)),
		}

		storage := mocks.NewStorage(t)
		mockStorageStartRun(storage, run, nil)
		storage.On("ListProducts", mock.Anything, projectID).Return([]models.Product{}, nil)
		mockStorageFinishRun(storage, wantRun, assert.AnError)

		upd := autoupdate.NewUpdater(storage, batchSize, autoupdate.WithClock(fakeClock{now: &now}))

		err := upd.Reconcile(context.TODO(), projectID)

		require.ErrorContains(t, err, "can't finish reconciling", "should return error about failed run finishing")
		require.ErrorIs(t, err, assert.AnError, errShouldContainAssertErrorMsg)
	})
}

func TestUnitPurge(t *testing.T) {
	retention := 14 * 24 * time.Hour

	t.Run("ok", func(t *testing.T) {
		storage := mocks.NewStorage(t)
		storage.On("PurgeDeletedProducts", mock.Anything, projectID, retention, batchSize).Return(int32(5), nil)

		upd := autoupdate.NewUpdater(storage, batchSize, autoupdate.WithPurgeAfter(retention))

		purged, err := upd.Purge(context.TODO(), projectID)

		require.NoError(t, err, "shouldn't return any error")
		assert.Equal(t, int32(5), purged, "should return number of purged products")
	})

	t.Run("storage error", func(t *testing.T) {
		storage := mocks.NewStorage(t)
		storage.On("PurgeDeletedProducts", mock.Anything, projectID, retention, batchSize).
			Return(int32(0), assert.AnError)

		upd := autoupdate.NewUpdater(storage, batchSize, autoupdate.WithPurgeAfter(retention))

		_, err := upd.Purge(context.TODO(), projectID)

		require.ErrorContains(t, err, "can't purge deleted products", "should return error about failed purge")
		require.ErrorIs(t, err, assert.AnError, errShouldContainAssertErrorMsg)
	})
}

func mockStorageStartRun(storage *mocks.Storage, run *models.ReconcileRun, err error) {
	storage.On("StartRun", mock.Anything, projectID).Return(run, err)
}

func mockStorageFinishRun(storage *mocks.Storage, run *models.ReconcileRun, err error) {
	storage.On("FinishRun", mock.Anything, run).Return(err)
}
