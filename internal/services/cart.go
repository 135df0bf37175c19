// Package services contains the application services of the vitrine
// client: cart, favorites, orders, auth/profile and the admin registry.
// Services own all mutation logic; persistence goes through localdata and
// presentation stays in the cli layer.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brunohmachado/vitrine/internal/localdata"
	"github.com/brunohmachado/vitrine/internal/models"
	"github.com/brunohmachado/vitrine/internal/money"
)

// CartObserver receives cart change signals: the badge count after every
// mutation, and an item-added notification for user feedback. The active
// page uses these to re-render its contents.
type CartObserver interface {
	ItemAdded(item models.CartItem)
	BadgeChanged(count int)
}

// CartSummary aggregates the cart for rendering.
type CartSummary struct {
	ItemCount int
	Subtotal  float64
}

// CartService is the cart engine. The cart is global (not user-scoped) and
// merges lines by (name, price): re-adding a product increments quantity
// instead of duplicating the line.
type CartService interface {
	Add(ctx context.Context, item models.CartItem) error
	Remove(ctx context.Context, id string) error
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	Clear(ctx context.Context) error
	Items(ctx context.Context) ([]models.CartItem, error)
	TotalItemCount(ctx context.Context) (int, error)
	Summary(ctx context.Context) (CartSummary, error)
	Subscribe(o CartObserver)
}

type cartService struct {
	data      *localdata.Store
	observers []CartObserver
	now       func() time.Time
}

func NewCartService(data *localdata.Store) CartService {
	return &cartService{data: data, now: time.Now}
}

func (s *cartService) Subscribe(o CartObserver) {
	s.observers = append(s.observers, o)
}

// Add merges by (name, price) or appends a fresh line. A non-positive
// incoming quantity is treated as 1, since the field originates from
// user-entered text.
func (s *cartService) Add(ctx context.Context, item models.CartItem) error {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	items, err := s.data.Cart(ctx)
	if err != nil {
		return err
	}

	merged := false
	for i := range items {
		if items[i].Name == item.Name && items[i].Price == item.Price {
			items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		item.ID = newCartItemID(item.Name, s.now())
		items = append(items, item)
	}

	if err := s.data.SetCart(ctx, items); err != nil {
		return err
	}

	for _, o := range s.observers {
		o.ItemAdded(item)
	}
	s.notifyBadge(items)
	return nil
}

// Remove deletes the line with the given id. Removing an unknown id is a
// no-op, but the badge is still refreshed.
func (s *cartService) Remove(ctx context.Context, id string) error {
	items, err := s.data.Cart(ctx)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}

	if err := s.data.SetCart(ctx, kept); err != nil {
		return err
	}
	s.notifyBadge(kept)
	return nil
}

// UpdateQuantity sets a line's quantity. A quantity of zero or less removes
// the line; there is no upper bound.
func (s *cartService) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	if quantity <= 0 {
		return s.Remove(ctx, id)
	}

	items, err := s.data.Cart(ctx)
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ID == id {
			items[i].Quantity = quantity
			break
		}
	}

	if err := s.data.SetCart(ctx, items); err != nil {
		return err
	}
	s.notifyBadge(items)
	return nil
}

// Clear drops the whole cart collection and resets the badge.
func (s *cartService) Clear(ctx context.Context) error {
	if err := s.data.ClearCart(ctx); err != nil {
		return err
	}
	s.notifyBadge(nil)
	return nil
}

func (s *cartService) Items(ctx context.Context) ([]models.CartItem, error) {
	return s.data.Cart(ctx)
}

// TotalItemCount sums quantities across all lines; it drives the badge,
// which stays hidden at zero.
func (s *cartService) TotalItemCount(ctx context.Context) (int, error) {
	items, err := s.data.Cart(ctx)
	if err != nil {
		return 0, err
	}
	return countItems(items), nil
}

func (s *cartService) Summary(ctx context.Context) (CartSummary, error) {
	items, err := s.data.Cart(ctx)
	if err != nil {
		return CartSummary{}, err
	}

	sum := CartSummary{ItemCount: countItems(items)}
	for _, it := range items {
		sum.Subtotal += money.Parse(it.Price) * float64(itemQuantity(it))
	}
	return sum, nil
}

func (s *cartService) notifyBadge(items []models.CartItem) {
	count := countItems(items)
	for _, o := range s.observers {
		o.BadgeChanged(count)
	}
}

func countItems(items []models.CartItem) int {
	total := 0
	for _, it := range items {
		total += itemQuantity(it)
	}
	return total
}

// itemQuantity tolerates malformed stored quantities by defaulting to 1.
func itemQuantity(it models.CartItem) int {
	if it.Quantity < 1 {
		return 1
	}
	return it.Quantity
}

// newCartItemID derives a line id from the product name and the creation
// instant, collision-resistant within a session.
func newCartItemID(name string, t time.Time) string {
	slug := strings.ToLower(strings.Join(strings.Fields(strings.TrimSpace(name)), "-"))
	return fmt.Sprintf("%s-%d", slug, t.UnixNano())
}
