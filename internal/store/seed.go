package store

import (
	"log"
	"time"

	"shopdesk/internal/domain"
)

// Seed inserts demo data so the dashboard renders something on first run.
// Safe to call only on freshly constructed stores.
func Seed(s *Stores) error {
	if s.Products.Len() > 0 {
		return nil
	}
	log.Println("[seed] inserting demo products/clients/sales/suppliers")

	now := time.Now().UTC()
	at := func(daysAgo int) time.Time { return now.AddDate(0, 0, -daysAgo) }

	products := []domain.Product{
		{ID: "prod-notebook-01", Name: "Notebook Pro 14", Description: "14-inch notebook, 16GB RAM, 512GB SSD", Price: 1459.98, Stock: 12, CreatedAt: at(30), UpdatedAt: at(30)},
		{ID: "prod-monitor-01", Name: "UltraWide Monitor 29", Description: "29-inch ultrawide IPS monitor", Price: 2499.99, Stock: 3, CreatedAt: at(25), UpdatedAt: at(10)},
		{ID: "prod-keyboard-01", Name: "Mechanical Keyboard", Description: "Tenkeyless, brown switches", Price: 349.90, Stock: 40, CreatedAt: at(20), UpdatedAt: at(20)},
		{ID: "prod-mouse-01", Name: "Wireless Mouse", Description: "Ergonomic wireless mouse", Price: 129.50, Stock: 2, CreatedAt: at(15), UpdatedAt: at(15)},
	}
	for _, p := range products {
		if err := s.Products.Insert(p); err != nil {
			return err
		}
	}

	clients := []domain.Client{
		{ID: "cli-ana", Name: "Ana Souza", Email: "ana.souza@example.com", Phone: "+55 11 91234-5678", Address: "Rua das Flores 120, São Paulo", CreatedAt: at(40), UpdatedAt: at(40)},
		{ID: "cli-bruno", Name: "Bruno Lima", Email: "bruno.lima@example.com", Phone: "+55 21 99876-5432", Address: "Av. Atlântica 500, Rio de Janeiro", CreatedAt: at(35), UpdatedAt: at(12)},
	}
	for _, c := range clients {
		if err := s.Clients.Insert(c); err != nil {
			return err
		}
	}

	sales := []domain.Sale{
		{
			ID:       "sale-0001",
			ClientID: "cli-ana",
			Items: []domain.SaleItem{
				{ID: "item-1", ProductID: "prod-notebook-01", Quantity: 1, UnitPrice: 1459.98, Total: 1459.98},
			},
			Total:         1459.98,
			PaymentMethod: domain.PaymentPix,
			Status:        domain.SaleCompleted,
			CreatedAt:     at(7),
			UpdatedAt:     at(7),
		},
		{
			ID:       "sale-0002",
			ClientID: "cli-bruno",
			Items: []domain.SaleItem{
				{ID: "item-1", ProductID: "prod-monitor-01", Quantity: 1, UnitPrice: 2499.99, Total: 2499.99},
			},
			Total:         2499.99,
			PaymentMethod: domain.PaymentCreditCard,
			Status:        domain.SalePending,
			CreatedAt:     at(2),
			UpdatedAt:     at(2),
		},
	}
	for _, sl := range sales {
		if err := s.Sales.Insert(sl); err != nil {
			return err
		}
	}

	suppliers := []domain.Supplier{
		{
			ID: 1, Name: "TechParts Distribuidora", Contact: "Carla Mendes",
			Phone: "+55 11 4002-8922", Email: "vendas@techparts.example.com",
			Address: "Rua do Comércio 45", City: "São Paulo", State: "SP",
			ZipCode: "01001-000", TaxID: "12.345.678/0001-90",
			Categories: []string{"electronics", "peripherals"},
			CreatedAt:  at(60), UpdatedAt: at(60),
		},
		{
			ID: 2, Name: "Global Office Supplies", Contact: "Pedro Alves",
			Phone: "+55 31 3333-1010", Email: "contato@globaloffice.example.com",
			Address: "Av. Central 900", City: "Belo Horizonte", State: "MG",
			ZipCode: "30110-000", TaxID: "98.765.432/0001-10",
			Categories:   []string{"office", "furniture"},
			PaymentTerms: "net 30",
			CreatedAt:    at(55), UpdatedAt: at(55),
		},
	}
	for _, sp := range suppliers {
		if err := s.Suppliers.Insert(sp); err != nil {
			return err
		}
	}
	return nil
}
