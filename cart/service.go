package cart

import (
	"errors"
	"sync"

	"garments/globals"
	"garments/models"
	"garments/promo"
)

// ErrEmptyCart is returned by Checkout when there is nothing to buy.
var ErrEmptyCart = errors.New("cart is empty")

// Service owns one user's cart, wishlist and resolved discount state.
// Every mutation funnels through mutate, which recomputes the resolved
// discount before releasing the lock — a mutation can never be observed
// with a stale discount attached.
type Service struct {
	mu       sync.Mutex
	userID   string
	lines    []models.CartLineItem
	wishlist map[string]bool
	resolved models.ResolvedDiscount

	lookup promo.Lookup
	rules  promo.RuleSet

	// onChange receives a snapshot after each cart mutation, outside any
	// correctness path. Used for best-effort persistence.
	onChange func(snapshot models.CartSnapshot)
}

func NewService(userID string, lookup promo.Lookup, rules promo.RuleSet) *Service {
	s := &Service{
		userID:   userID,
		wishlist: make(map[string]bool),
		lookup:   lookup,
		rules:    rules,
	}
	s.resolved = promo.Resolve(globals.Ctx, nil, lookup, rules)
	return s
}

// SetOnChange installs the post-mutation snapshot hook.
func (s *Service) SetOnChange(fn func(models.CartSnapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Restore loads a persisted snapshot, dropping invalid lines.
func (s *Service) Restore(snapshot models.CartSnapshot) {
	s.mutate(func() {
		s.lines = nil
		for _, li := range snapshot.Items {
			if li.Quantity >= 1 {
				s.lines = append(s.lines, li)
			}
		}
		s.wishlist = make(map[string]bool)
		for _, id := range snapshot.Wishlist {
			s.wishlist[id] = true
		}
	})
}

// mutate runs fn under the lock, then recomputes the resolved discount
// wholesale and emits a persistence snapshot.
func (s *Service) mutate(fn func()) models.ResolvedDiscount {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
	s.resolved = promo.Resolve(globals.Ctx, s.lines, s.lookup, s.rules)
	if s.onChange != nil {
		s.onChange(s.snapshotLocked())
	}
	return s.resolved
}

func (s *Service) snapshotLocked() models.CartSnapshot {
	snap := models.CartSnapshot{UserID: s.userID}
	snap.Items = append(snap.Items, s.lines...)
	for id := range s.wishlist {
		snap.Wishlist = append(snap.Wishlist, id)
	}
	return snap
}

// AddItem merges into an existing line with the same variant key or
// appends a new one. Quantities below 1 are ignored. Stock is advisory
// and deliberately not validated here.
func (s *Service) AddItem(productID, size, color string, quantity int) models.ResolvedDiscount {
	if quantity < 1 {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.resolved
	}
	item := models.CartLineItem{ProductID: productID, SelectedSize: size, SelectedColor: color, Quantity: quantity}
	return s.mutate(func() {
		for i := range s.lines {
			if s.lines[i].SameKey(item) {
				s.lines[i].Quantity += quantity
				return
			}
		}
		s.lines = append(s.lines, item)
	})
}

// RemoveItem deletes the matching line; absent keys are a silent no-op.
func (s *Service) RemoveItem(productID, size, color string) models.ResolvedDiscount {
	key := models.CartLineItem{ProductID: productID, SelectedSize: size, SelectedColor: color}
	return s.mutate(func() {
		for i := range s.lines {
			if s.lines[i].SameKey(key) {
				s.lines = append(s.lines[:i], s.lines[i+1:]...)
				return
			}
		}
	})
}

// AdjustQuantity applies delta with a floor of 1. Decrementing can never
// remove a line; that is RemoveItem's job.
func (s *Service) AdjustQuantity(productID, size, color string, delta int) models.ResolvedDiscount {
	key := models.CartLineItem{ProductID: productID, SelectedSize: size, SelectedColor: color}
	return s.mutate(func() {
		for i := range s.lines {
			if s.lines[i].SameKey(key) {
				next := s.lines[i].Quantity + delta
				if next < 1 {
					next = 1
				}
				s.lines[i].Quantity = next
				return
			}
		}
	})
}

// Clear empties the cart and resets the resolved state to none-applied.
func (s *Service) Clear() models.ResolvedDiscount {
	return s.mutate(func() {
		s.lines = nil
	})
}

// ToggleWishlist adds the product if absent, removes it if present.
// Wishlist membership never affects discounts.
func (s *Service) ToggleWishlist(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.wishlist[productID] {
		delete(s.wishlist, productID)
	} else {
		s.wishlist[productID] = true
	}
	if s.onChange != nil {
		s.onChange(s.snapshotLocked())
	}
	return s.wishlist[productID]
}

// Wishlist returns the wishlisted product ids.
func (s *Service) Wishlist() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.wishlist))
	for id := range s.wishlist {
		ids = append(ids, id)
	}
	return ids
}

// Items returns a copy of the cart lines in stable display order.
func (s *Service) Items() []models.CartLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartLineItem, len(s.lines))
	copy(out, s.lines)
	return out
}

// Resolved returns the current resolved discount snapshot.
func (s *Service) Resolved() models.ResolvedDiscount {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolved
}

// Checkout prices the cart lines, hands them to assemble together with
// the resolved snapshot, and clears the cart only when assembly
// succeeds. The whole exchange runs under the cart lock: no caller can
// observe a placed order alongside a non-empty cart, or the reverse.
func (s *Service) Checkout(assemble func(items []models.PurchasedItem, resolved models.ResolvedDiscount) (models.Order, error)) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.lines) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	items := make([]models.PurchasedItem, 0, len(s.lines))
	for _, li := range s.lines {
		item := models.PurchasedItem{
			ProductID:     li.ProductID,
			SelectedSize:  li.SelectedSize,
			SelectedColor: li.SelectedColor,
			Quantity:      li.Quantity,
		}
		if product, ok := s.lookup.GetProduct(globals.Ctx, li.ProductID); ok {
			item.Name = product.Name
			item.PriceAtPurchase = product.Price
		}
		items = append(items, item)
	}

	order, err := assemble(items, s.resolved)
	if err != nil {
		return models.Order{}, err
	}

	s.lines = nil
	s.resolved = promo.Resolve(globals.Ctx, nil, s.lookup, s.rules)
	if s.onChange != nil {
		s.onChange(s.snapshotLocked())
	}
	return order, nil
}
