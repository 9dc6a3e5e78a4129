package modelstesting

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/catalogops/catalog-sync/internal/platform/models"
	"github.com/go-faker/faker/v4"
	"github.com/samber/lo"
)

// FakeProduct returns models.Product with fake data and all five platform
// listings populated with sync-valid links.
func FakeProduct(ops ...func(p *models.Product)) models.Product {
	product := models.Product{
		ID:               rand.Intn(1_000_000) + 1,
		ProjectID:        rand.Intn(1_000) + 1,
		WebsiteID:        fmt.Sprintf("%d", rand.Intn(1_000_000)+1),
		SKU:              faker.Word(),
		Title:            faker.Sentence(),
		Price:            fakePrice(),
		PromotionalPrice: fakePrice(),
		ExternalURL:      fakeLink(),
		ImageURL:         fakeLink(),
		Shopee:           FakePlatformEntry(),
		TikTok:           FakePlatformEntry(),
		Lazada:           FakePlatformEntry(),
		DMX:              FakePlatformEntry(),
		Tiki:             FakePlatformEntry(),
		Stock:            models.StringStockFlag("Còn hàng"),
		CreatedAt:        time.Now().UTC().Add(-time.Hour),
		UpdatedAt:        time.Now().UTC(),
	}

	for _, op := range ops {
		op(&product)
	}

	return product
}

// FakePlatformEntry returns a listing with a sync-valid link and a positive price.
func FakePlatformEntry(ops ...func(e *models.PlatformEntry)) models.PlatformEntry {
	entry := models.PlatformEntry{
		Link:  fakeLink(),
		Price: fakePrice(),
	}

	for _, op := range ops {
		op(&entry)
	}

	return entry
}

// FakeAuditEntry returns models.AuditEntry with fake data.
func FakeAuditEntry(ops ...func(e *models.AuditEntry)) models.AuditEntry {
	entry := models.AuditEntry{
		ProductID:     rand.Intn(1_000_000) + 1,
		ProjectID:     rand.Intn(1_000) + 1,
		ChangedFields: []string{"price", "external_url"},
		Before:        fmt.Sprintf("{%q:%q}", "title", faker.Word()),
		After:         fmt.Sprintf("{%q:%q}", "title", faker.Word()),
		Actor:         faker.Username(),
		Source:        "dashboard",
		CreatedAt:     time.Now().UTC(),
	}

	for _, op := range ops {
		op(&entry)
	}

	return entry
}

// FakeReconcileRun returns models.ReconcileRun with fake statistics.
func FakeReconcileRun(ops ...func(r *models.ReconcileRun)) models.ReconcileRun {
	run := models.ReconcileRun{
		ID:                rand.Intn(1_000_000) + 1,
		ProjectID:         rand.Intn(1_000) + 1,
		CreatedAt:         time.Now().UTC().Add(-time.Minute),
		FinishedAt:        lo.ToPtr(time.Now().UTC()),
		IsSuccess:         lo.ToPtr(true),
		CorrectedProducts: lo.ToPtr(rand.Int31n(100)),
		SkippedProducts:   lo.ToPtr(rand.Int31n(100)),
		FailedProducts:    lo.ToPtr(int32(0)),
	}

	for _, op := range ops {
		op(&run)
	}

	return run
}

func fakeLink() string {
	return fmt.Sprintf("https://%s.example.com/%s", faker.Word(), faker.Word())
}

func fakePrice() float64 {
	return float64(rand.Intn(1_000_000)+1_000) / 100
}
