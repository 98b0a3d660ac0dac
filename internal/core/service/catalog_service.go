package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/port"
)

type CatalogService struct {
	db port.DatabaseRepository
}

func NewCatalogService(db port.DatabaseRepository) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.db.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	product, err := s.db.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

// SeedCatalog writes products with their stock as the new authoritative
// value. Cart lines held at that moment are not touched.
func (s *CatalogService) SeedCatalog(ctx context.Context, products []domain.Product) error {
	for _, p := range products {
		if p.Stock < 0 {
			return fmt.Errorf("product %d: %w", p.ID, domain.ErrInvalidQuantity)
		}
		if p.Price.IsNegative() {
			return fmt.Errorf("product %d: negative price %s", p.ID, p.Price)
		}
		if err := s.db.UpsertProduct(ctx, p); err != nil {
			return fmt.Errorf("upsert product %d: %w", p.ID, err)
		}
	}
	return nil
}

// Subscribe records a contact sign-up.
func (s *CatalogService) Subscribe(ctx context.Context, email string) (domain.Contact, error) {
	email = strings.TrimSpace(email)
	if !validEmail(email) {
		return domain.Contact{}, domain.ErrInvalidEmail
	}
	contact, err := s.db.SaveContact(ctx, email)
	if err != nil {
		return domain.Contact{}, fmt.Errorf("save contact: %w", err)
	}
	return contact, nil
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}
