package models

import "time"

// WishlistItem links a customer to a liked product. The pair is the primary key.
type WishlistItem struct {
	CustomerID int64     `gorm:"column:customer_id;primaryKey;autoIncrement:false"`
	ProductID  int64     `gorm:"column:product_id;primaryKey;autoIncrement:false"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}
