package wishlist

import (
	"context"
	"errors"

	"github.com/favstore/wishlist-backend/internal/products"
	"github.com/favstore/wishlist-backend/pkg/db"
	pkgerrors "github.com/favstore/wishlist-backend/pkg/errors"
	"gorm.io/gorm"
)

const (
	productNotFoundMessage   = "Product not found"
	productDuplicateMessage  = "Product already in wishlist"
	productNotInListMessage  = "Product not in wishlist"
	wishlistUniqueConstraint = "wishlist_items_pkey"
)

// Service exposes business rules for wishlist management.
type Service interface {
	List(ctx context.Context, customerID int64) (*WishlistDTO, error)
	Add(ctx context.Context, customerID, productID int64) error
	Remove(ctx context.Context, customerID, productID int64) error
}

// ServiceParams groups dependencies for the wishlist service.
type ServiceParams struct {
	DB *db.Client
}

type service struct {
	db *db.Client
}

// NewService builds a wishlist service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "database client required")
	}
	return &service{db: params.DB}, nil
}

// List returns every liked product for the customer. An empty wishlist is a
// valid result, not an error.
func (s *service) List(ctx context.Context, customerID int64) (*WishlistDTO, error) {
	repo := NewRepository(s.db.DB())
	rows, err := repo.ListProducts(ctx, customerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list wishlist")
	}

	items := make([]products.ProductDTO, 0, len(rows))
	for i := range rows {
		items = append(items, *products.FromModel(&rows[i]))
	}
	return &WishlistDTO{Products: items}, nil
}

// Add ensures the product exists and records the membership, rejecting
// duplicates explicitly.
func (s *service) Add(ctx context.Context, customerID, productID int64) error {
	return s.db.WithTx(ctx, func(tx *gorm.DB) error {
		productRepo := products.NewRepository(tx)
		wishlistRepo := NewRepository(tx)

		if _, err := productRepo.FindByID(ctx, productID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, productNotFoundMessage)
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
		}

		exists, err := wishlistRepo.Exists(ctx, customerID, productID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check wishlist entry")
		}
		if exists {
			return pkgerrors.New(pkgerrors.CodeConflict, productDuplicateMessage)
		}

		if err := wishlistRepo.AddItem(ctx, customerID, productID); err != nil {
			// racing add loses to the composite primary key
			if db.IsUniqueViolation(err, wishlistUniqueConstraint) || db.IsUniqueViolation(err, "") {
				return pkgerrors.Wrap(pkgerrors.CodeConflict, err, productDuplicateMessage)
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "add wishlist entry")
		}
		return nil
	})
}

// Remove drops the membership. Unknown products and absent memberships report
// distinct not-found messages.
func (s *service) Remove(ctx context.Context, customerID, productID int64) error {
	return s.db.WithTx(ctx, func(tx *gorm.DB) error {
		productRepo := products.NewRepository(tx)
		wishlistRepo := NewRepository(tx)

		if _, err := productRepo.FindByID(ctx, productID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, productNotFoundMessage)
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
		}

		removed, err := wishlistRepo.RemoveItem(ctx, customerID, productID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "remove wishlist entry")
		}
		if removed == 0 {
			return pkgerrors.New(pkgerrors.CodeNotFound, productNotInListMessage)
		}
		return nil
	})
}
