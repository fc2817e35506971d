package customers

import (
	"strings"

	"github.com/favstore/wishlist-backend/pkg/db/models"
)

// CustomerDTO is the transport shape that omits the password hash.
type CustomerDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateCustomerRequest is the registration payload.
type CreateCustomerRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// UpdateCustomerRequest carries partial profile changes. Nil and empty fields
// are left untouched.
type UpdateCustomerRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
}

// NormalizeEmpty drops fields submitted as empty strings so they read as
// absent, keeping the remaining fields subject to the validation rules.
func (r *UpdateCustomerRequest) NormalizeEmpty() {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		r.Name = nil
	}
	if r.Email != nil && strings.TrimSpace(*r.Email) == "" {
		r.Email = nil
	}
	if r.Password != nil && *r.Password == "" {
		r.Password = nil
	}
}

// CreateCustomerDTO holds the data required by the repo to persist a new customer.
type CreateCustomerDTO struct {
	Name         string
	Email        string
	PasswordHash string
}

func FromModel(c *models.Customer) *CustomerDTO {
	if c == nil {
		return nil
	}

	return &CustomerDTO{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
	}
}

func (c CreateCustomerDTO) ToModel() *models.Customer {
	return &models.Customer{
		Name:         c.Name,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
	}
}
