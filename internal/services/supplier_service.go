package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"shopdesk/internal/domain"
	"shopdesk/internal/store"
	"shopdesk/internal/validate"
)

// SupplierService assigns integer ids from a counter that only moves
// forward, so an id freed by a delete is never handed out again.
type SupplierService struct {
	crud[int, domain.Supplier]
	now func() time.Time

	mu     sync.Mutex
	nextID int
}

func NewSupplierService(st *store.Store[int, domain.Supplier], pause Delay) *SupplierService {
	next := 1
	for _, sp := range st.FindAll() {
		if sp.ID >= next {
			next = sp.ID + 1
		}
	}
	return &SupplierService{
		crud:   crud[int, domain.Supplier]{store: st, pause: pause, fields: domain.Supplier.SearchFields},
		now:    func() time.Time { return time.Now().UTC() },
		nextID: next,
	}
}

func (s *SupplierService) allocID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	return id
}

type SupplierForm struct {
	Name         string   `json:"name"`
	Contact      string   `json:"contact"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	ZipCode      string   `json:"zip_code"`
	TaxID        string   `json:"tax_id"`
	Categories   []string `json:"categories"`
	PaymentTerms string   `json:"payment_terms"`
	Website      string   `json:"website"`
	Notes        string   `json:"notes"`
}

func (s *SupplierService) Create(ctx context.Context, f SupplierForm) (domain.Supplier, error) {
	if err := s.pause(ctx); err != nil {
		return domain.Supplier{}, err
	}
	var bad []string
	if strings.TrimSpace(f.Name) == "" {
		bad = append(bad, "name")
	}
	email := strings.TrimSpace(f.Email)
	if email != "" {
		var ok bool
		if email, ok = validate.Email(email); !ok {
			bad = append(bad, "email")
		}
	}
	if err := domain.Invalid(bad...); err != nil {
		return domain.Supplier{}, err
	}

	now := s.now()
	sp := domain.Supplier{
		ID:           s.allocID(),
		Name:         strings.TrimSpace(f.Name),
		Contact:      strings.TrimSpace(f.Contact),
		Phone:        strings.TrimSpace(f.Phone),
		Email:        email,
		Address:      strings.TrimSpace(f.Address),
		City:         strings.TrimSpace(f.City),
		State:        strings.TrimSpace(f.State),
		ZipCode:      strings.TrimSpace(f.ZipCode),
		TaxID:        strings.TrimSpace(f.TaxID),
		Categories:   append([]string(nil), f.Categories...),
		PaymentTerms: strings.TrimSpace(f.PaymentTerms),
		Website:      strings.TrimSpace(f.Website),
		Notes:        strings.TrimSpace(f.Notes),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.Insert(sp); err != nil {
		return domain.Supplier{}, err
	}
	return sp, nil
}

type SupplierPatch struct {
	Name         *string   `json:"name"`
	Contact      *string   `json:"contact"`
	Phone        *string   `json:"phone"`
	Email        *string   `json:"email"`
	Address      *string   `json:"address"`
	City         *string   `json:"city"`
	State        *string   `json:"state"`
	ZipCode      *string   `json:"zip_code"`
	TaxID        *string   `json:"tax_id"`
	Categories   *[]string `json:"categories"`
	PaymentTerms *string   `json:"payment_terms"`
	Website      *string   `json:"website"`
	Notes        *string   `json:"notes"`
}

func (s *SupplierService) Update(ctx context.Context, id int, patch SupplierPatch) (domain.Supplier, error) {
	if err := s.pause(ctx); err != nil {
		return domain.Supplier{}, err
	}
	cur, ok := s.store.FindByID(id)
	if !ok {
		return domain.Supplier{}, fmt.Errorf("supplier %d: %w", id, domain.ErrNotFound)
	}

	var bad []string
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&cur.Name, patch.Name)
	set(&cur.Contact, patch.Contact)
	set(&cur.Phone, patch.Phone)
	set(&cur.Address, patch.Address)
	set(&cur.City, patch.City)
	set(&cur.State, patch.State)
	set(&cur.ZipCode, patch.ZipCode)
	set(&cur.TaxID, patch.TaxID)
	set(&cur.PaymentTerms, patch.PaymentTerms)
	set(&cur.Website, patch.Website)
	set(&cur.Notes, patch.Notes)
	if patch.Email != nil {
		email, ok := validate.Email(*patch.Email)
		if !ok {
			bad = append(bad, "email")
		} else {
			cur.Email = email
		}
	}
	if patch.Categories != nil {
		cur.Categories = append([]string(nil), (*patch.Categories)...)
	}
	if cur.Name == "" {
		bad = append(bad, "name")
	}
	if err := domain.Invalid(bad...); err != nil {
		return domain.Supplier{}, err
	}

	cur.UpdatedAt = touch(cur.UpdatedAt, s.now())
	if err := s.store.Replace(id, cur); err != nil {
		return domain.Supplier{}, err
	}
	return cur, nil
}
