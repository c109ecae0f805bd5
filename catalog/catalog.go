package catalog

import (
	"context"
	"sync"

	"garments/models"
)

// Catalog is the read-only product lookup the cart and resolver consume.
type Catalog interface {
	GetProduct(ctx context.Context, productID string) (models.Product, bool)
}

// Memory is an in-process catalog used for seeding and tests.
type Memory struct {
	mu       sync.RWMutex
	products map[string]models.Product
}

func NewMemory(products ...models.Product) *Memory {
	m := &Memory{products: make(map[string]models.Product, len(products))}
	for _, p := range products {
		m.products[p.ProductID] = p
	}
	return m
}

func (m *Memory) GetProduct(_ context.Context, productID string) (models.Product, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.products[productID]
	return p, ok
}

// Upsert replaces a product. Orders placed earlier keep their frozen
// prices regardless.
func (m *Memory) Upsert(p models.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[p.ProductID] = p
}
