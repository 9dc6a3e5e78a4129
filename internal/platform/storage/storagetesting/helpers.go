package storagetesting

import (
	"database/sql"
	"os"
	"testing"

	pgmodels "github.com/catalogops/catalog-sync/internal/platform/storage/gen/postgres/public/model"
	"github.com/catalogops/catalog-sync/internal/platform/storage/gen/postgres/public/table"
	"github.com/go-jet/jet/v2/qrm"

	_ "github.com/lib/pq"
)

// Open opens connection to DB. It skips the test
// if DATABASE_URL environment variable is not set.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("no database URL in DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	return db
}

// InsertProjects is a helper test function to insert projects.
func InsertProjects(t *testing.T, exc qrm.Executable, projects ...pgmodels.Project) {
	t.Helper()

	if len(projects) == 0 {
		return
	}

	toInsert := make([]pgmodels.Project, 0, len(projects))
	toInsert = append(toInsert, projects...)

	_, err := table.Project.INSERT(table.Project.AllColumns).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert projects", err)
	}
}

// InsertProducts is a helper test function to insert products.
func InsertProducts(t *testing.T, exc qrm.Executable, products ...pgmodels.Product) {
	t.Helper()

	if len(products) == 0 {
		return
	}

	toInsert := make([]pgmodels.Product, 0, len(products))
	toInsert = append(toInsert, products...)

	_, err := table.Product.INSERT(table.Product.AllColumns).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert products", err)
	}
}

// InsertRuns is a helper test function to insert reconcile runs.
func InsertRuns(t *testing.T, exc qrm.Executable, runs ...pgmodels.ReconcileRun) {
	t.Helper()

	if len(runs) == 0 {
		return
	}

	toInsert := make([]pgmodels.ReconcileRun, 0, len(runs))
	toInsert = append(toInsert, runs...)

	_, err := table.ReconcileRun.INSERT(table.ReconcileRun.AllColumns).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert runs", err)
	}
}

// GetProducts is a helper test function to get all products.
func GetProducts(t *testing.T, queryable qrm.Queryable) []pgmodels.Product {
	t.Helper()

	products := []pgmodels.Product{}
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(table.Product.ID.IS_NOT_NULL()).
		Query(queryable, &products)
	if err != nil {
		t.Fatal("can't get products", err)
	}

	return products
}

// GetRuns is a helper test function to get all reconcile runs.
func GetRuns(t *testing.T, queryable qrm.Queryable) []pgmodels.ReconcileRun {
	t.Helper()

	runs := []pgmodels.ReconcileRun{}
	err := table.ReconcileRun.SELECT(table.ReconcileRun.AllColumns).
		WHERE(table.ReconcileRun.ID.IS_NOT_NULL()).
		Query(queryable, &runs)
	if err != nil {
		t.Fatal("can't get runs", err)
	}

	return runs
}

// GetAuditEntries is a helper test function to get all audit entries.
func GetAuditEntries(t *testing.T, queryable qrm.Queryable) []pgmodels.AuditEntry {
	t.Helper()

	entries := []pgmodels.AuditEntry{}
	err := table.AuditEntry.SELECT(table.AuditEntry.AllColumns).
		WHERE(table.AuditEntry.ID.IS_NOT_NULL()).
		Query(queryable, &entries)
	if err != nil {
		t.Fatal("can't get audit entries", err)
	}

	return entries
}

// CleanupData is a helper test function to delete all stored data.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	_, err := table.AuditEntry.DELETE().WHERE(table.AuditEntry.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete audit entries data", err)
	}

	_, err = table.Product.DELETE().WHERE(table.Product.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete products data", err)
	}

	_, err = table.ReconcileRun.DELETE().WHERE(table.ReconcileRun.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete runs data", err)
	}

	_, err = table.Project.DELETE().WHERE(table.Project.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete projects data", err)
	}
}
