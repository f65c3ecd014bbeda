package services

import (
	"context"
	"sort"

	"shopdesk/internal/domain"
	"shopdesk/internal/store"
)

const recentSalesLimit = 5

// StatsService computes the dashboard snapshot across the sale, product and
// client stores. Nothing is cached; every call reads the stores fresh.
type StatsService struct {
	products *store.Store[string, domain.Product]
	clients  *store.Store[string, domain.Client]
	sales    *store.Store[string, domain.Sale]
	lowStock int
	pause    Delay
}

// NewStatsService wires the aggregation over the shared stores. lowStock is
// the exclusive stock threshold below which a product counts as low.
func NewStatsService(st *store.Stores, lowStock int, pause Delay) *StatsService {
	return &StatsService{
		products: st.Products,
		clients:  st.Clients,
		sales:    st.Sales,
		lowStock: lowStock,
		pause:    pause,
	}
}

// Dashboard totals include every sale regardless of status, matching the
// back-office convention of showing gross activity.
func (s *StatsService) Dashboard(ctx context.Context) (domain.DashboardStats, error) {
	if err := s.pause(ctx); err != nil {
		return domain.DashboardStats{}, err
	}

	sales := s.sales.FindAll()
	products := s.products.FindAll()

	revenue := 0.0
	for _, sale := range sales {
		revenue += sale.Total
	}

	low := make([]domain.Product, 0)
	for _, p := range products {
		if p.Stock < s.lowStock {
			low = append(low, p)
		}
	}

	// Newest first; stable sort keeps insertion order among equal timestamps.
	recent := sales
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > recentSalesLimit {
		recent = recent[:recentSalesLimit]
	}

	return domain.DashboardStats{
		TotalSales:       len(sales),
		TotalRevenue:     round2(revenue),
		TotalProducts:    len(products),
		TotalClients:     s.clients.Len(),
		LowStockProducts: low,
		RecentSales:      recent,
	}, nil
}
