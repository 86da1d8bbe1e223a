package cart

import (
	"context"
	"sync"

	"github.com/sportshop/storefront/internal/cart/domain"
	catalogdomain "github.com/sportshop/storefront/internal/catalog/domain"
	"github.com/sportshop/storefront/pkg/kvstore"
)

// StorageKey is the blob key the ledger persists under.
const StorageKey = "sportsShop_cart"

// Ledger owns the cart line items. Every mutation updates memory first and
// then persists the whole ledger synchronously; a failed write is logged and
// the in-memory state stays authoritative.
type Ledger struct {
	mu    sync.RWMutex
	items []domain.LineItem
	store kvstore.Store
}

// NewLedger restores the persisted cart, falling back to an empty one
func NewLedger(ctx context.Context, store kvstore.Store) *Ledger {
	l := &Ledger{store: store, items: []domain.LineItem{}}
	kvstore.LoadOrDefault(ctx, store, StorageKey, &l.items)
	return l
}

// Add inserts a line item with quantity 1, or increments the quantity when
// the product is already in the cart.
func (l *Ledger) Add(ctx context.Context, product *catalogdomain.Product) error {
	if product == nil || product.ID <= 0 {
		return domain.ErrInvalidProduct
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.items {
		if l.items[i].ProductID == product.ID {
			l.items[i].Quantity++
			l.persist(ctx)
			return nil
		}
	}

	l.items = append(l.items, domain.LineItem{
		ProductID: product.ID,
		Name:      product.Name,
		Image:     product.Image,
		UnitPrice: product.FinalPrice(),
		Quantity:  1,
	})
	l.persist(ctx)
	return nil
}

// Remove deletes the line item for the product id. Removing an absent id is
// a no-op, not an error.
func (l *Ledger) Remove(ctx context.Context, productID int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.removeLocked(ctx, productID)
}

// SetQuantity replaces the stored quantity. Anything below 1 removes the
// item; a zero-quantity line is never stored.
func (l *Ledger) SetQuantity(ctx context.Context, productID, quantity int) {
	if quantity < 1 {
		l.Remove(ctx, productID)
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.items {
		if l.items[i].ProductID == productID {
			l.items[i].Quantity = quantity
			l.persist(ctx)
			return
		}
	}
}

// Increment raises the quantity by one
func (l *Ledger) Increment(ctx context.Context, productID int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.items {
		if l.items[i].ProductID == productID {
			l.items[i].Quantity++
			l.persist(ctx)
			return
		}
	}
}

// Decrement lowers the quantity by one, removing the item at zero
func (l *Ledger) Decrement(ctx context.Context, productID int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.items {
		if l.items[i].ProductID == productID {
			if l.items[i].Quantity <= 1 {
				l.removeLocked(ctx, productID)
			} else {
				l.items[i].Quantity--
				l.persist(ctx)
			}
			return
		}
	}
}

// Clear empties the ledger
func (l *Ledger) Clear(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = []domain.LineItem{}
	l.persist(ctx)
}

// Items returns a copy of the current line items in insertion order
func (l *Ledger) Items() []domain.LineItem {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.LineItem, len(l.items))
	copy(out, l.items)
	return out
}

// Totals recomputes the derived totals from the current line items
func (l *Ledger) Totals() domain.Totals {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return domain.CalculateTotals(l.items)
}

// Quantity reports the stored quantity for a product, zero when absent
func (l *Ledger) Quantity(productID int) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for i := range l.items {
		if l.items[i].ProductID == productID {
			return l.items[i].Quantity
		}
	}
	return 0
}

// Contains reports whether the product has a line item
func (l *Ledger) Contains(productID int) bool {
	return l.Quantity(productID) > 0
}

func (l *Ledger) removeLocked(ctx context.Context, productID int) {
	for i := range l.items {
		if l.items[i].ProductID == productID {
			l.items = append(l.items[:i], l.items[i+1:]...)
			l.persist(ctx)
			return
		}
	}
}

func (l *Ledger) persist(ctx context.Context) {
	kvstore.SaveBestEffort(ctx, l.store, StorageKey, l.items)
}
