package wishlist

import "github.com/favstore/wishlist-backend/internal/products"

// WishlistDTO is the response shape for the wishlist listing.
type WishlistDTO struct {
	Products []products.ProductDTO `json:"products"`
}
