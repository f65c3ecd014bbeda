package domain

import (
	"slices"
	"strconv"
	"time"
)

// PaymentMethod enumerates how a sale was paid.
type PaymentMethod string

const (
	PaymentCreditCard   PaymentMethod = "credit_card"
	PaymentPix          PaymentMethod = "pix"
	PaymentCash         PaymentMethod = "cash"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCreditCard, PaymentPix, PaymentCash, PaymentBankTransfer:
		return true
	}
	return false
}

// SaleStatus enumerates the lifecycle of a sale.
type SaleStatus string

const (
	SalePending   SaleStatus = "pending"
	SaleCompleted SaleStatus = "completed"
	SaleCanceled  SaleStatus = "canceled"
)

func (s SaleStatus) Valid() bool {
	switch s {
	case SalePending, SaleCompleted, SaleCanceled:
		return true
	}
	return false
}

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (p Product) EntityID() string { return p.ID }

func (p Product) Clone() Product { return p }

func (p Product) SearchFields() []string {
	return []string{
		p.ID, p.Name, p.Description,
		money(p.Price), strconv.Itoa(p.Stock),
		stamp(p.CreatedAt), stamp(p.UpdatedAt),
	}
}

type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c Client) EntityID() string { return c.ID }

func (c Client) Clone() Client { return c }

func (c Client) SearchFields() []string {
	return []string{
		c.ID, c.Name, c.Email, c.Phone, c.Address,
		stamp(c.CreatedAt), stamp(c.UpdatedAt),
	}
}

// SaleItem is one product line within a sale. Total is derived
// (Quantity x UnitPrice, rounded to cents) and never settable by callers.
type SaleItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

type Sale struct {
	ID            string        `json:"id"`
	ClientID      string        `json:"client_id"`
	Items         []SaleItem    `json:"items"`
	Total         float64       `json:"total"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Status        SaleStatus    `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (s Sale) EntityID() string { return s.ID }

func (s Sale) Clone() Sale {
	cp := s
	cp.Items = slices.Clone(s.Items)
	return cp
}

func (s Sale) SearchFields() []string {
	fields := []string{
		s.ID, s.ClientID, money(s.Total),
		string(s.PaymentMethod), string(s.Status),
		stamp(s.CreatedAt), stamp(s.UpdatedAt),
	}
	for _, it := range s.Items {
		fields = append(fields, it.ProductID, strconv.Itoa(it.Quantity), money(it.UnitPrice), money(it.Total))
	}
	return fields
}

// Supplier ids are integers assigned by the supplier service from a
// monotonic counter; they are never reused after a delete.
type Supplier struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Contact      string    `json:"contact"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	ZipCode      string    `json:"zip_code"`
	TaxID        string    `json:"tax_id"`
	Categories   []string  `json:"categories"`
	PaymentTerms string    `json:"payment_terms,omitempty"`
	Website      string    `json:"website,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (s Supplier) EntityID() int { return s.ID }

func (s Supplier) Clone() Supplier {
	cp := s
	cp.Categories = slices.Clone(s.Categories)
	return cp
}

func (s Supplier) SearchFields() []string {
	fields := []string{
		strconv.Itoa(s.ID), s.Name, s.Contact, s.Phone, s.Email,
		s.Address, s.City, s.State, s.ZipCode, s.TaxID,
		s.PaymentTerms, s.Website, s.Notes,
		stamp(s.CreatedAt), stamp(s.UpdatedAt),
	}
	return append(fields, s.Categories...)
}

// DashboardStats is the snapshot the aggregation service computes on demand.
type DashboardStats struct {
	TotalSales       int       `json:"total_sales"`
	TotalRevenue     float64   `json:"total_revenue"`
	TotalProducts    int       `json:"total_products"`
	TotalClients     int       `json:"total_clients"`
	LowStockProducts []Product `json:"low_stock_products"`
	RecentSales      []Sale    `json:"recent_sales"`
}

// money renders amounts with fixed two-decimal formatting so search
// matches what a user sees on screen.
func money(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

func stamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
