package catalog

import (
	"context"
	"fmt"

	"github.com/favstore/wishlist-backend/internal/products"
	"github.com/favstore/wishlist-backend/pkg/db"
	"github.com/favstore/wishlist-backend/pkg/logger"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Fetcher is the slice of the catalog client the ingestor needs.
type Fetcher interface {
	ListProducts(ctx context.Context, page int) (*ProductPage, error)
}

// IngestorParams groups dependencies for the catalog ingestor.
type IngestorParams struct {
	DB      *db.Client
	Fetcher Fetcher
	Logger  *logger.Logger
}

// Ingestor mirrors the upstream catalog into the local products table.
type Ingestor struct {
	db      *db.Client
	fetcher Fetcher
	logg    *logger.Logger
}

// NewIngestor builds a catalog ingestor with the required dependencies.
func NewIngestor(params IngestorParams) (*Ingestor, error) {
	if params.DB == nil {
		return nil, fmt.Errorf("database client is required")
	}
	if params.Fetcher == nil {
		return nil, fmt.Errorf("catalog fetcher is required")
	}
	return &Ingestor{
		db:      params.DB,
		fetcher: params.Fetcher,
		logg:    params.Logger,
	}, nil
}

// Run walks the upstream catalog page by page and upserts every listing.
// Each page is one transaction so a mid-run failure leaves whole pages intact.
func (i *Ingestor) Run(ctx context.Context) (int, error) {
	total := 0
	for page := 1; ; page++ {
		result, err := i.fetcher.ListProducts(ctx, page)
		if err != nil {
			return total, fmt.Errorf("ingest page %d: %w", page, err)
		}
		if result == nil || len(result.Products) == 0 {
			break
		}

		if err := i.upsertPage(ctx, result.Products); err != nil {
			return total, fmt.Errorf("ingest page %d: %w", page, err)
		}
		total += len(result.Products)

		if i.logg != nil {
			logCtx := i.logg.WithFields(ctx, map[string]any{
				"page":  page,
				"count": len(result.Products),
			})
			i.logg.Info(logCtx, "catalog.page.ingested")
		}
	}

	mirrored, err := products.NewRepository(i.db.DB()).Count(ctx)
	if err != nil {
		return total, fmt.Errorf("count mirrored products: %w", err)
	}

	if i.logg != nil {
		logCtx := i.logg.WithFields(ctx, map[string]any{
			"total":    total,
			"mirrored": mirrored,
		})
		i.logg.Info(logCtx, "catalog.ingest.complete")
	}
	return total, nil
}

func (i *Ingestor) upsertPage(ctx context.Context, items []CatalogProduct) error {
	return i.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := products.NewRepository(tx)
		for _, item := range items {
			if item.ID <= 0 {
				continue
			}
			dto := products.UpsertProductDTO{
				ID:          item.ID,
				Title:       item.Title,
				Price:       decimal.NewFromFloat(item.Price),
				Image:       item.Image,
				Brand:       item.Brand,
				ReviewScore: item.ReviewScore,
			}
			if err := repo.Upsert(ctx, dto); err != nil {
				return fmt.Errorf("upsert product %d: %w", item.ID, err)
			}
		}
		return nil
	})
}
