package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/catalogops/catalog-sync/internal/platform"
	"github.com/catalogops/catalog-sync/internal/platform/models"
	"github.com/catalogops/catalog-sync/internal/platform/storage/gen/postgres/public/table"
	"golang.org/x/sync/errgroup"

	pgmodels "github.com/catalogops/catalog-sync/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// Postgres is storage for projects, products, audit entries and reconcile runs.
type Postgres struct {
	db        *sql.DB
	listLimit int64
}

// NewPostgres returns new Postgres.
func NewPostgres(db *sql.DB) Postgres {
	return Postgres{
		db:        db,
		listLimit: 1000,
	}
}

// GetProject returns project by ID.
// It returns ErrNotFound if project doesn't exist or is deleted.
func (p Postgres) GetProject(ctx context.Context, projectID int) (*models.Project, error) {
	dbProject, err := getProject(ctx, p.db, int32(projectID))
	if err != nil {
		return nil, err
	}

	project := fromDBProject(dbProject)

	return &project, nil
}

// GetProduct returns product by ID.
// It returns ErrNotFound if product doesn't exist or is deleted.
func (p Postgres) GetProduct(ctx context.Context, productID int) (*models.Product, error) {
	var dbProduct pgmodels.Product
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(pg.AND(
			table.Product.ID.EQ(pg.Int32(int32(productID))),
			table.Product.DeletedAt.IS_NULL(),
		)).
		QueryContext(ctx, p.db, &dbProduct)

	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("can't get product from database: %w", err)
	}

	product := FromDBProduct(&dbProduct)

	return &product, nil
}

// ListProducts returns project's live products, most recently updated first.
func (p Postgres) ListProducts(ctx context.Context, projectID int) ([]models.Product, error) {
	var dbProducts []pgmodels.Product
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(pg.AND(
			table.Product.ProjectID.EQ(pg.Int32(int32(projectID))),
			table.Product.DeletedAt.IS_NULL(),
		)).
		ORDER_BY(table.Product.UpdatedAt.DESC(), table.Product.ID.DESC()).
		LIMIT(p.listLimit).
		QueryContext(ctx, p.db, &dbProducts)

	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get products from database: %w", err)
	}

	products := make([]models.Product, 0, len(dbProducts))
	for ix := range dbProducts {
		products = append(products, FromDBProduct(&dbProducts[ix]))
	}

	return products, nil
}

// UpdateProduct overwrites product's stored state.
// It returns ErrLocalWriteFailed if the write doesn't reach a live row.
func (p Postgres) UpdateProduct(ctx context.Context, product *models.Product) error {
	columnList := table.Product.AllColumns.Except(table.Product.ID, table.Product.CreatedAt)

	result, err := table.Product.UPDATE(columnList).
		MODEL(ToDBProduct(product)).
		WHERE(pg.AND(
			table.Product.ID.EQ(pg.Int32(int32(product.ID))),
			table.Product.DeletedAt.IS_NULL(),
		)).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("%w: %w", platform.ErrLocalWriteFailed, err)
	}

	if rowsAffected, err := result.RowsAffected(); rowsAffected == 0 || err != nil {
		return fmt.Errorf("can't update product: %w", platform.ErrLocalWriteFailed)
	}

	return nil
}

// UpdatePricing overwrites only product's canonical pricing fields.
// It returns ErrLocalWriteFailed if the write doesn't reach a live row.
func (p Postgres) UpdatePricing(ctx context.Context, productID int, regularPrice, promotionalPrice float64, externalURL string) error {
	result, err := table.Product.UPDATE().
		SET(
			table.Product.Price.SET(pg.Float(regularPrice)),
			table.Product.PromotionalPrice.SET(pg.Float(promotionalPrice)),
			table.Product.ExternalURL.SET(pg.String(externalURL)),
			table.Product.UpdatedAt.SET(pg.TimestampzT(time.Now())),
		).
		WHERE(pg.AND(
			table.Product.ID.EQ(pg.Int32(int32(productID))),
			table.Product.DeletedAt.IS_NULL(),
		)).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("%w: %w", platform.ErrLocalWriteFailed, err)
	}

	if rowsAffected, err := result.RowsAffected(); rowsAffected == 0 || err != nil {
		return fmt.Errorf("can't update product pricing: %w", platform.ErrLocalWriteFailed)
	}

	return nil
}

// AppendAuditEntry inserts audit entry and sets its ID.
func (p Postgres) AppendAuditEntry(ctx context.Context, entry *models.AuditEntry) error {
	dbEntry := toDBAuditEntry(entry)

	err := table.AuditEntry.INSERT(table.AuditEntry.AllColumns.Except(table.AuditEntry.ID)).
		MODEL(dbEntry).
		RETURNING(table.AuditEntry.ID).
		QueryContext(ctx, p.db, dbEntry)
	if err != nil {
		return fmt.Errorf("%w: %w", platform.ErrAuditWriteFailed, err)
	}

	entry.ID = int(dbEntry.ID)

	return nil
}

// SoftDeleteProduct stamps product's DeletedAt, hiding it from reads.
// It returns ErrNotFound if product doesn't exist or is already deleted.
func (p Postgres) SoftDeleteProduct(ctx context.Context, productID int) error {
	result, err := table.Product.UPDATE().
		SET(
			table.Product.DeletedAt.SET(pg.TimestampzT(time.Now())),
		).
		WHERE(pg.AND(
			table.Product.ID.EQ(pg.Int32(int32(productID))),
			table.Product.DeletedAt.IS_NULL(),
		)).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't delete product: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); rowsAffected == 0 || err != nil {
		return platform.ErrNotFound
	}

	return nil
}

// RestoreProduct clears product's DeletedAt if deletion happened within the window.
// Restoring a live product is a no-op. It returns ErrNotFound for unknown products
// and ErrRestoreWindowExpired when the window has passed.
func (p Postgres) RestoreProduct(ctx context.Context, productID int, window time.Duration) error {
	return runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		var dbProduct pgmodels.Product
		err := table.Product.SELECT(table.Product.ID, table.Product.DeletedAt).
			WHERE(table.Product.ID.EQ(pg.Int32(int32(productID)))).
			QueryContext(ctx, tx, &dbProduct)

		if errors.Is(err, qrm.ErrNoRows) {
			return platform.ErrNotFound
		}

		if err != nil {
			return fmt.Errorf("can't get product from database: %w", err)
		}

		if dbProduct.DeletedAt == nil {
			return nil
		}

		if time.Since(*dbProduct.DeletedAt) > window {
			return platform.ErrRestoreWindowExpired
		}

		_, err = table.Product.UPDATE().
			SET(
				table.Product.DeletedAt.SET(pg.TimestampzExp(pg.NULL)),
			).
			WHERE(table.Product.ID.EQ(pg.Int32(int32(productID)))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't restore product: %w", err)
		}

		return nil
	})
}

// PurgeDeletedProducts permanently removes products soft-deleted earlier than
// olderThan ago. Returns number of purged products or error.
func (p Postgres) PurgeDeletedProducts(ctx context.Context, projectID int, olderThan time.Duration, batchSize uint) (int32, error) {
	purgedProductsNumber := int32(0)
	cutoff := time.Now().Add(-olderThan)

	toPurge := make(chan []int32)

	errGroup, egCtx := errgroup.WithContext(ctx)

	errGroup.Go(func() error {
		return getPurgeableProductsAsync(egCtx, p.db, int32(projectID), cutoff, batchSize, toPurge)
	})

	errGroup.Go(func() error {
		purgedCount, err := purgeProductsAsync(egCtx, p.db, toPurge)
		if err == nil {
			atomic.AddInt32(&purgedProductsNumber, int32(purgedCount))
		}
		return err
	})

	if err := errGroup.Wait(); err != nil {
		return 0, err
	}

	return purgedProductsNumber, nil
}

// StartRun creates new unfinished reconcile run in database and returns it.
// It returns ErrNotFound if project doesn't exist and ErrAlreadyRunning
// if previous run is not finished yet.
func (p Postgres) StartRun(ctx context.Context, projectID int) (*models.ReconcileRun, error) {
	run := &models.ReconcileRun{
		ProjectID: projectID,
	}

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		if _, err := getProject(ctx, tx, int32(projectID)); err != nil {
			return err
		}

		lastRun, err := getLastRun(ctx, tx, int32(projectID))

		if err != nil && !errors.Is(err, qrm.ErrNoRows) {
			return fmt.Errorf("can't get last run from database: %w", err)
		}

		if lastRun != nil && lastRun.FinishedAt == nil && lastRun.Success == nil {
			return platform.ErrAlreadyRunning
		}

		newRun := toDBRun(run)
		err = table.ReconcileRun.INSERT(
			table.ReconcileRun.ProjectID,
		).
			MODEL(newRun).
			RETURNING(table.ReconcileRun.ID).
			QueryContext(ctx, tx, newRun)
		if err != nil {
			return fmt.Errorf("can't insert run into database: %w", err)
		}

		run.ID = int(newRun.ID)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("can't add run: %w", err)
	}

	return run, nil
}

// FinishRun sets run as finished and updates run's statistics.
func (p Postgres) FinishRun(ctx context.Context, run *models.ReconcileRun) error {
	columnList := table.ReconcileRun.AllColumns.Except(
		table.ReconcileRun.ID,
		table.ReconcileRun.CreatedAt,
		table.ReconcileRun.ProjectID,
	)

	result, err := table.ReconcileRun.UPDATE(columnList).
		MODEL(toDBRun(run)).
		WHERE(table.ReconcileRun.ID.EQ(pg.Int32(int32(run.ID)))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update run: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); rowsAffected == 0 || err != nil {
		return fmt.Errorf("can't update run: %w", err)
	}

	return nil
}

func getProject(ctx context.Context, db qrm.DB, projectID int32) (*pgmodels.Project, error) {
	var project pgmodels.Project
	err := table.Project.SELECT(table.Project.AllColumns).
		WHERE(pg.AND(
			table.Project.ID.EQ(pg.Int32(projectID)),
			table.Project.DeletedAt.IS_NULL(),
		)).
		QueryContext(ctx, db, &project)

	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("can't get project from database: %w", err)
	}

	return &project, nil
}

func getLastRun(ctx context.Context, db qrm.DB, projectID int32) (*pgmodels.ReconcileRun, error) {
	var run pgmodels.ReconcileRun
	err := table.ReconcileRun.SELECT(
		table.ReconcileRun.CreatedAt,
		table.ReconcileRun.FinishedAt,
		table.ReconcileRun.Success,
		table.ReconcileRun.StatusMessage,
		table.ReconcileRun.FailedProducts,
	).
		WHERE(table.ReconcileRun.ProjectID.EQ(pg.Int32(projectID))).
		ORDER_BY(table.ReconcileRun.CreatedAt.DESC()).
		LIMIT(1).
		QueryContext(ctx, db, &run)
	if err != nil {
		return nil, err
	}

	return &run, nil
}

func getPurgeableProductsAsync(
	ctx context.Context,
	db qrm.DB,
	projectID int32,
	cutoff time.Time,
	batchSize uint,
	toPurge chan []int32,
) error {
	defer close(toPurge)
	previousID := int32(0)
	for {
		var products []pgmodels.Product
		err := table.Product.SELECT(table.Product.ID).
			WHERE(pg.AND(
				table.Product.ProjectID.EQ(pg.Int32(projectID)),
				table.Product.DeletedAt.IS_NOT_NULL(),
				table.Product.DeletedAt.LT(pg.TimestampzT(cutoff)),
				table.Product.ID.GT(pg.Int32(previousID)),
			)).
			ORDER_BY(table.Product.ID.ASC()).
			LIMIT(int64(batchSize)).
			QueryContext(ctx, db, &products)

		if errors.Is(err, qrm.ErrNoRows) || len(products) == 0 {
			return nil
		}

		if err != nil && !errors.Is(err, qrm.ErrNoRows) {
			return err
		}

		ids := make([]int32, 0, len(products))
		for ix := range products {
			ids = append(ids, products[ix].ID)
		}

		previousID = products[len(products)-1].ID

		select {
		case <-ctx.Done():
			return ctx.Err()
		case toPurge <- ids:
		}
	}
}

func purgeProductsAsync(ctx context.Context, db qrm.DB, toPurge chan []int32) (int, error) {
	purgedCount := 0
	for batch := range toPurge {
		ids := make([]pg.Expression, 0, len(batch))
		for _, id := range batch {
			ids = append(ids, pg.Int32(id))
		}

		_, err := table.Product.DELETE().
			WHERE(table.Product.ID.IN(ids...)).
			ExecContext(ctx, db)
		if err != nil {
			return purgedCount, err
		}
		purgedCount += len(batch)
	}
	return purgedCount, nil
}

func runInTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	var (
		tx  *sql.Tx
		err error
	)

	if tx, err = db.BeginTx(ctx, nil); err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("can't rollback transaction: %w (rollback reason: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}
