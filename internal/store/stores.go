package store

import "shopdesk/internal/domain"

// Stores bundles the per-entity collections. Constructed once at startup and
// passed by handle to the services, so tests can use fresh instances.
type Stores struct {
	Products  *Store[string, domain.Product]
	Clients   *Store[string, domain.Client]
	Sales     *Store[string, domain.Sale]
	Suppliers *Store[int, domain.Supplier]
}

func NewStores() *Stores {
	return &Stores{
		Products:  New[string, domain.Product](),
		Clients:   New[string, domain.Client](),
		Sales:     New[string, domain.Sale](),
		Suppliers: New[int, domain.Supplier](),
	}
}
