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

type SaleService struct {
	crud[string, domain.Sale]
	now func() time.Time
}

func NewSaleService(st *store.Store[string, domain.Sale], pause Delay) *SaleService {
	return &SaleService{
		crud: crud[string, domain.Sale]{store: st, pause: pause, fields: domain.Sale.SearchFields},
		now:  func() time.Time { return time.Now().UTC() },
	}
}

type SaleItemForm struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// SaleForm omits item and sale totals on purpose: they are derived and the
// service recomputes them, never trusting caller-supplied amounts.
type SaleForm struct {
	ClientID      string               `json:"client_id"`
	Items         []SaleItemForm       `json:"items"`
	PaymentMethod domain.PaymentMethod `json:"payment_method"`
	Status        domain.SaleStatus    `json:"status"`
}

func (s *SaleService) Create(ctx context.Context, f SaleForm) (domain.Sale, error) {
	if err := s.pause(ctx); err != nil {
		return domain.Sale{}, err
	}

	status := f.Status
	if status == "" {
		status = domain.SalePending
	}

	var bad []string
	if strings.TrimSpace(f.ClientID) == "" {
		bad = append(bad, "client_id")
	}
	if len(f.Items) == 0 {
		bad = append(bad, "items")
	}
	if !f.PaymentMethod.Valid() {
		bad = append(bad, "payment_method")
	}
	if !status.Valid() {
		bad = append(bad, "status")
	}
	bad = append(bad, checkItems(f.Items)...)
	if err := domain.Invalid(bad...); err != nil {
		return domain.Sale{}, err
	}

	items, total := buildItems(f.Items)
	now := s.now()
	sale := domain.Sale{
		ID:            uuid.NewString(),
		ClientID:      strings.TrimSpace(f.ClientID),
		Items:         items,
		Total:         total,
		PaymentMethod: f.PaymentMethod,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.store.Insert(sale); err != nil {
		return domain.Sale{}, err
	}
	return sale, nil
}

type SalePatch struct {
	ClientID      *string               `json:"client_id"`
	Items         *[]SaleItemForm       `json:"items"`
	PaymentMethod *domain.PaymentMethod `json:"payment_method"`
	Status        *domain.SaleStatus    `json:"status"`
}

func (s *SaleService) Update(ctx context.Context, id string, patch SalePatch) (domain.Sale, error) {
	if err := s.pause(ctx); err != nil {
		return domain.Sale{}, err
	}
	cur, ok := s.store.FindByID(id)
	if !ok {
		return domain.Sale{}, fmt.Errorf("sale %s: %w", id, domain.ErrNotFound)
	}

	var bad []string
	if patch.ClientID != nil {
		cur.ClientID = strings.TrimSpace(*patch.ClientID)
		if cur.ClientID == "" {
			bad = append(bad, "client_id")
		}
	}
	if patch.PaymentMethod != nil {
		if !patch.PaymentMethod.Valid() {
			bad = append(bad, "payment_method")
		} else {
			cur.PaymentMethod = *patch.PaymentMethod
		}
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			bad = append(bad, "status")
		} else {
			cur.Status = *patch.Status
		}
	}
	if patch.Items != nil {
		if len(*patch.Items) == 0 {
			bad = append(bad, "items")
		}
		bad = append(bad, checkItems(*patch.Items)...)
	}
	if err := domain.Invalid(bad...); err != nil {
		return domain.Sale{}, err
	}

	if patch.Items != nil {
		cur.Items, cur.Total = buildItems(*patch.Items)
	}
	cur.UpdatedAt = touch(cur.UpdatedAt, s.now())
	if err := s.store.Replace(id, cur); err != nil {
		return domain.Sale{}, err
	}
	return cur, nil
}

func checkItems(items []SaleItemForm) []string {
	var bad []string
	for i, it := range items {
		if strings.TrimSpace(it.ProductID) == "" {
			bad = append(bad, fmt.Sprintf("items[%d].product_id", i))
		}
		if it.Quantity <= 0 {
			bad = append(bad, fmt.Sprintf("items[%d].quantity", i))
		}
		if it.UnitPrice < 0 {
			bad = append(bad, fmt.Sprintf("items[%d].unit_price", i))
		}
	}
	return bad
}

// buildItems derives line totals and the sale total. Item ids only need to
// be unique within the sale, so positional ids keep them readable.
func buildItems(forms []SaleItemForm) ([]domain.SaleItem, float64) {
	items := make([]domain.SaleItem, len(forms))
	total := 0.0
	for i, f := range forms {
		line := round2(float64(f.Quantity) * f.UnitPrice)
		items[i] = domain.SaleItem{
			ID:        fmt.Sprintf("item-%d", i+1),
			ProductID: strings.TrimSpace(f.ProductID),
			Quantity:  f.Quantity,
			UnitPrice: f.UnitPrice,
			Total:     line,
		}
		total += line
	}
	return items, round2(total)
}
