package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a read-mostly catalog listing mirrored by the ingest worker.
// The API surface never mutates products.
type Product struct {
	ID          int64           `gorm:"column:id;primaryKey;autoIncrement"`
	Title       string          `gorm:"column:title;type:text;not null"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
	Image       *string         `gorm:"column:image;type:text"`
	Brand       string          `gorm:"column:brand;type:text;not null"`
	ReviewScore *float64        `gorm:"column:review_score"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
