package handlers

import (
	"shopdesk/internal/config"
	"shopdesk/internal/services"
	"shopdesk/internal/store"
)

type Deps struct {
	ProductHandler   *ProductHandler
	ClientHandler    *ClientHandler
	SaleHandler      *SaleHandler
	SupplierHandler  *SupplierHandler
	DashboardHandler *DashboardHandler
}

// NewDeps wires every service over the shared stores with the configured
// simulated latency and hands each handler its service.
func NewDeps(st *store.Stores, cfg config.Config) *Deps {
	pause := services.Fixed(cfg.SimLatency)

	productSvc := services.NewProductService(st.Products, pause)
	clientSvc := services.NewClientService(st.Clients, pause)
	saleSvc := services.NewSaleService(st.Sales, pause)
	supplierSvc := services.NewSupplierService(st.Suppliers, pause)
	statsSvc := services.NewStatsService(st, cfg.LowStockThreshold, pause)

	return &Deps{
		ProductHandler:   &ProductHandler{Products: productSvc},
		ClientHandler:    &ClientHandler{Clients: clientSvc},
		SaleHandler:      &SaleHandler{Sales: saleSvc},
		SupplierHandler:  &SupplierHandler{Suppliers: supplierSvc},
		DashboardHandler: &DashboardHandler{Stats: statsSvc},
	}
}
