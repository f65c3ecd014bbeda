package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"shopdesk/internal/domain"
	"shopdesk/internal/store"
)

type ProductService struct {
	crud[string, domain.Product]
	now func() time.Time
}

func NewProductService(st *store.Store[string, domain.Product], pause Delay) *ProductService {
	return &ProductService{
		crud: crud[string, domain.Product]{store: st, pause: pause, fields: domain.Product.SearchFields},
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// ProductForm is the create payload; id and timestamps are system-assigned.
type ProductForm struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

func (s *ProductService) Create(ctx context.Context, f ProductForm) (domain.Product, error) {
	if err := s.pause(ctx); err != nil {
		return domain.Product{}, err
	}
	var bad []string
	if strings.TrimSpace(f.Name) == "" {
		bad = append(bad, "name")
	}
	if f.Price < 0 {
		bad = append(bad, "price")
	}
	if f.Stock < 0 {
		bad = append(bad, "stock")
	}
	if err := domain.Invalid(bad...); err != nil {
		return domain.Product{}, err
	}

	now := s.now()
	p := domain.Product{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(f.Name),
		Description: f.Description,
		Price:       f.Price,
		Stock:       f.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.Insert(p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// ProductPatch carries a partial update; nil fields are left untouched.
type ProductPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
}

func (s *ProductService) Update(ctx context.Context, id string, patch ProductPatch) (domain.Product, error) {
	if err := s.pause(ctx); err != nil {
		return domain.Product{}, err
	}
	cur, ok := s.store.FindByID(id)
	if !ok {
		return domain.Product{}, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}

	if patch.Name != nil {
		cur.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		cur.Description = *patch.Description
	}
	if patch.Price != nil {
		cur.Price = *patch.Price
	}
	if patch.Stock != nil {
		cur.Stock = *patch.Stock
	}

	var bad []string
	if cur.Name == "" {
		bad = append(bad, "name")
	}
	if cur.Price < 0 {
		bad = append(bad, "price")
	}
	if cur.Stock < 0 {
		bad = append(bad, "stock")
	}
	if err := domain.Invalid(bad...); err != nil {
		return domain.Product{}, err
	}

	cur.UpdatedAt = touch(cur.UpdatedAt, s.now())
	if err := s.store.Replace(id, cur); err != nil {
		return domain.Product{}, err
	}
	return cur, nil
}

// touch advances UpdatedAt even when the clock has not moved since the last
// mutation; UpdatedAt must be strictly greater after every update.
func touch(prev, now time.Time) time.Time {
	if now.After(prev) {
		return now
	}
	return prev.Add(time.Nanosecond)
}
