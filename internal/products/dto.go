package products

import (
	"strconv"

	"github.com/favstore/wishlist-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

// ProductDTO is the transport shape for catalog listings. Ids render as
// strings; clients treat them as opaque.
type ProductDTO struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Price       float64  `json:"price"`
	Image       *string  `json:"image,omitempty"`
	Brand       string   `json:"brand"`
	ReviewScore *float64 `json:"review_score,omitempty"`
}

// UpsertProductDTO carries a catalog row to mirror locally.
type UpsertProductDTO struct {
	ID          int64
	Title       string
	Price       decimal.Decimal
	Image       *string
	Brand       string
	ReviewScore *float64
}

func FromModel(p *models.Product) *ProductDTO {
	if p == nil {
		return nil
	}

	price, _ := p.Price.Float64()
	return &ProductDTO{
		ID:          strconv.FormatInt(p.ID, 10),
		Title:       p.Title,
		Price:       price,
		Image:       p.Image,
		Brand:       p.Brand,
		ReviewScore: p.ReviewScore,
	}
}

func (d UpsertProductDTO) ToModel() *models.Product {
	return &models.Product{
		ID:          d.ID,
		Title:       d.Title,
		Price:       d.Price,
		Image:       d.Image,
		Brand:       d.Brand,
		ReviewScore: d.ReviewScore,
	}
}
