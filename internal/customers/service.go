package customers

import (
	"context"
	"errors"
	"strings"

	"github.com/favstore/wishlist-backend/pkg/config"
	"github.com/favstore/wishlist-backend/pkg/db"
	"github.com/favstore/wishlist-backend/pkg/db/models"
	pkgerrors "github.com/favstore/wishlist-backend/pkg/errors"
	"github.com/favstore/wishlist-backend/pkg/security"
	"gorm.io/gorm"
)

const emailTakenMessage = "Email already registered"

// Service exposes business rules for customer accounts.
type Service interface {
	Register(ctx context.Context, req CreateCustomerRequest) (*CustomerDTO, error)
	Get(ctx context.Context, id int64) (*CustomerDTO, error)
	Update(ctx context.Context, id int64, req UpdateCustomerRequest) (*CustomerDTO, error)
	Delete(ctx context.Context, id int64) error
	FindByEmail(ctx context.Context, email string) (*models.Customer, error)
}

// ServiceParams groups dependencies for the customer service.
type ServiceParams struct {
	DB             *db.Client
	PasswordConfig config.PasswordConfig
}

type service struct {
	db          *db.Client
	passwordCfg config.PasswordConfig
}

// NewService builds a customer service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "database client required")
	}
	return &service{
		db:          params.DB,
		passwordCfg: params.PasswordConfig,
	}, nil
}

// Register creates the customer account, rejecting duplicate emails.
func (s *service) Register(ctx context.Context, req CreateCustomerRequest) (*CustomerDTO, error) {
	email := normalizeEmail(req.Email)
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	var created *models.Customer
	txErr := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)

		if _, err := repo.FindByEmail(ctx, email); err == nil {
			return pkgerrors.New(pkgerrors.CodeConflict, emailTakenMessage)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check customer email")
		}

		customer, err := repo.Create(ctx, CreateCustomerDTO{
			Name:         strings.TrimSpace(req.Name),
			Email:        email,
			PasswordHash: passwordHash,
		})
		if err != nil {
			// racing registration loses to the unique index
			if db.IsUniqueViolation(err, "customers_email_key") {
				return pkgerrors.Wrap(pkgerrors.CodeConflict, err, emailTakenMessage)
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create customer")
		}
		created = customer
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return FromModel(created), nil
}

// Get returns the customer profile.
func (s *service) Get(ctx context.Context, id int64) (*CustomerDTO, error) {
	repo := NewRepository(s.db.DB())
	customer, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load customer")
	}
	return FromModel(customer), nil
}

// Update applies the provided profile changes, keeping the email unique.
func (s *service) Update(ctx context.Context, id int64, req UpdateCustomerRequest) (*CustomerDTO, error) {
	var updated *models.Customer
	txErr := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)

		customer, err := repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "Customer not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load customer")
		}

		// each field applies independently; empty values read as absent
		if req.Name != nil {
			if name := strings.TrimSpace(*req.Name); name != "" {
				customer.Name = name
			}
		}

		if req.Email != nil {
			if email := normalizeEmail(*req.Email); email != "" && email != customer.Email {
				if existing, err := repo.FindByEmail(ctx, email); err == nil && existing.ID != customer.ID {
					return pkgerrors.New(pkgerrors.CodeConflict, emailTakenMessage)
				} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
					return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check customer email")
				}
				customer.Email = email
			}
		}

		if req.Password != nil && *req.Password != "" {
			passwordHash, err := security.HashPassword(*req.Password, s.passwordCfg)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
			}
			customer.PasswordHash = passwordHash
		}

		if err := repo.Save(ctx, customer); err != nil {
			if db.IsUniqueViolation(err, "customers_email_key") {
				return pkgerrors.Wrap(pkgerrors.CodeConflict, err, emailTakenMessage)
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save customer")
		}
		updated = customer
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return FromModel(updated), nil
}

// Delete removes the account and its wishlist memberships in one transaction.
// Outstanding tokens for the account stop resolving immediately.
func (s *service) Delete(ctx context.Context, id int64) error {
	return s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)

		if _, err := repo.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "Customer not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load customer")
		}

		if err := repo.DeleteWishlistItems(ctx, id); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete wishlist items")
		}
		if err := repo.Delete(ctx, id); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete customer")
		}
		return nil
	})
}

// FindByEmail resolves a customer for the auth middleware.
func (s *service) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	repo := NewRepository(s.db.DB())
	customer, err := repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup customer")
	}
	return customer, nil
}

func normalizeEmail(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
