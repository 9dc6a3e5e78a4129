package storage

import (
	"strings"

	"github.com/catalogops/catalog-sync/internal/platform/models"

	pgmodels "github.com/catalogops/catalog-sync/internal/platform/storage/gen/postgres/public/model"
)

//go:generate make -C ../../../ generate-db

func toDBRun(run *models.ReconcileRun) *pgmodels.ReconcileRun {
	return &pgmodels.ReconcileRun{
		ProjectID:         int32(run.ProjectID),
		FinishedAt:        run.FinishedAt,
		Success:           run.IsSuccess,
		StatusMessage:     run.StatusMessage,
		CorrectedProducts: run.CorrectedProducts,
		SkippedProducts:   run.SkippedProducts,
		FailedProducts:    run.FailedProducts,
	}
}

// ToDBProduct converts models.Product into postgres product model.
func ToDBProduct(product *models.Product) *pgmodels.Product {
	return &pgmodels.Product{
		ID:               int32(product.ID),
		ProjectID:        int32(product.ProjectID),
		WebsiteID:        product.WebsiteID,
		Sku:              product.SKU,
		Title:            product.Title,
		Price:            product.Price,
		PromotionalPrice: product.PromotionalPrice,
		ExternalURL:      product.ExternalURL,
		ImageURL:         product.ImageURL,
		ShopeeLink:       product.Shopee.Link,
		ShopeePrice:      product.Shopee.Price,
		TiktokLink:       product.TikTok.Link,
		TiktokPrice:      product.TikTok.Price,
		LazadaLink:       product.Lazada.Link,
		LazadaPrice:      product.Lazada.Price,
		DmxLink:          product.DMX.Link,
		DmxPrice:         product.DMX.Price,
		TikiLink:         product.Tiki.Link,
		TikiPrice:        product.Tiki.Price,
		StockRaw:         product.Stock.RawJSON(),
		CreatedAt:        product.CreatedAt,
		UpdatedAt:        product.UpdatedAt,
		DeletedAt:        product.DeletedAt,
	}
}

// FromDBProduct converts postgres product model into models.Product.
func FromDBProduct(product *pgmodels.Product) models.Product {
	return models.Product{
		ID:               int(product.ID),
		ProjectID:        int(product.ProjectID),
		WebsiteID:        product.WebsiteID,
		SKU:              product.Sku,
		Title:            product.Title,
		Price:            product.Price,
		PromotionalPrice: product.PromotionalPrice,
		ExternalURL:      product.ExternalURL,
		ImageURL:         product.ImageURL,
		Shopee:           models.PlatformEntry{Link: product.ShopeeLink, Price: product.ShopeePrice},
		TikTok:           models.PlatformEntry{Link: product.TiktokLink, Price: product.TiktokPrice},
		Lazada:           models.PlatformEntry{Link: product.LazadaLink, Price: product.LazadaPrice},
		DMX:              models.PlatformEntry{Link: product.DmxLink, Price: product.DmxPrice},
		Tiki:             models.PlatformEntry{Link: product.TikiLink, Price: product.TikiPrice},
		Stock:            models.StockFlagFromRawJSON(product.StockRaw),
		CreatedAt:        product.CreatedAt,
		UpdatedAt:        product.UpdatedAt,
		DeletedAt:        product.DeletedAt,
	}
}

func fromDBProject(project *pgmodels.Project) models.Project {
	return models.Project{
		ID:        int(project.ID),
		Name:      project.Name,
		StoreURL:  project.StoreURL,
		CreatedAt: project.CreatedAt,
		DeletedAt: project.DeletedAt,
	}
}

func toDBAuditEntry(entry *models.AuditEntry) *pgmodels.AuditEntry {
	return &pgmodels.AuditEntry{
		ProductID:     int32(entry.ProductID),
		ProjectID:     int32(entry.ProjectID),
		ChangedFields: strings.Join(entry.ChangedFields, "\n"),
		BeforeState:   entry.Before,
		AfterState:    entry.After,
		Actor:         entry.Actor,
		Source:        entry.Source,
		CreatedAt:     entry.CreatedAt,
	}
}
