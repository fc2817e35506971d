package wishlist

import (
	"context"

	"github.com/favstore/wishlist-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository encapsulates wishlist persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a wishlist repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AddItem inserts a wishlist entry. Duplicate pairs surface as unique
// violations from the composite primary key.
func (r *Repository) AddItem(ctx context.Context, customerID, productID int64) error {
	item := models.WishlistItem{
		CustomerID: customerID,
		ProductID:  productID,
	}
	return r.db.WithContext(ctx).Create(&item).Error
}

// Exists reports whether the customer already liked the product.
func (r *Repository) Exists(ctx context.Context, customerID, productID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.WishlistItem{}).
		Where("customer_id = ? AND product_id = ?", customerID, productID).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// RemoveItem deletes the membership and reports how many rows went away.
func (r *Repository) RemoveItem(ctx context.Context, customerID, productID int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("customer_id = ? AND product_id = ?", customerID, productID).
		Delete(&models.WishlistItem{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// ListProducts returns the customer's liked products ordered by product id.
func (r *Repository) ListProducts(ctx context.Context, customerID int64) ([]models.Product, error) {
	var rows []models.Product
	err := r.db.WithContext(ctx).
		Table("wishlist_items wi").
		Select("p.*").
		Joins("JOIN products p ON p.id = wi.product_id").
		Where("wi.customer_id = ?", customerID).
		Order("p.id ASC").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
