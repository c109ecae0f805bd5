package cart

import (
	"sync"

	"garments/promo"
)

// Registry hands out the per-user cart service. One service per user;
// the core assumes single-writer access within a session.
type Registry struct {
	mu       sync.Mutex
	services map[string]*Service

	lookup promo.Lookup
	rules  promo.RuleSet
}

func NewRegistry(lookup promo.Lookup, rules promo.RuleSet) *Registry {
	return &Registry{
		services: make(map[string]*Service),
		lookup:   lookup,
		rules:    rules,
	}
}

// ForUser returns the user's cart service, creating and warming it from
// the persisted snapshot on first access.
func (r *Registry) ForUser(userID string) *Service {
	r.mu.Lock()
	svc, ok := r.services[userID]
	if !ok {
		svc = NewService(userID, r.lookup, r.rules)
		r.services[userID] = svc
	}
	r.mu.Unlock()

	if !ok {
		if snap, found := loadSnapshot(userID); found {
			svc.Restore(snap)
		}
		svc.SetOnChange(saveSnapshot)
	}
	return svc
}
