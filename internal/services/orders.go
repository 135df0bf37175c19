package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/brunohmachado/vitrine/internal/common"
	"github.com/brunohmachado/vitrine/internal/localdata"
	"github.com/brunohmachado/vitrine/internal/models"
	"github.com/brunohmachado/vitrine/internal/money"
)

// OrderDiscount is the fixed promotional discount applied to every order,
// in the store currency.
const OrderDiscount = 1000.00

// OrderService snapshots carts into immutable orders.
type OrderService interface {
	// Place creates an order for the user from the given cart lines. The
	// caller is responsible for clearing the cart afterwards.
	Place(ctx context.Context, user *models.User, items []models.CartItem) (*models.Order, error)

	// List returns the user's orders, most recent first.
	List(ctx context.Context, user *models.User) ([]models.Order, error)
}

type orderService struct {
	data *localdata.Store
	now  func() time.Time
}

func NewOrderService(data *localdata.Store) OrderService {
	return &orderService{data: data, now: time.Now}
}

func (s *orderService) Place(ctx context.Context, user *models.User, items []models.CartItem) (*models.Order, error) {
	if user == nil {
		return nil, common.ErrNotLoggedIn
	}
	if len(items) == 0 {
		return nil, common.ErrEmptyCart
	}

	var subtotal float64
	snapshot := make([]models.OrderItem, 0, len(items))
	for _, it := range items {
		q := itemQuantity(it)
		subtotal += money.Parse(it.Price) * float64(q)
		snapshot = append(snapshot, models.OrderItem{
			Name:     it.Name,
			Brand:    it.Brand,
			Specs:    it.Specs,
			Price:    it.Price,
			Quantity: q,
			Image:    it.Image,
		})
	}

	total := subtotal - OrderDiscount
	if total < 0 {
		total = 0
	}

	order := models.Order{
		ID:       uuid.NewString(),
		UserID:   user.ID,
		Date:     s.now(),
		Items:    snapshot,
		Subtotal: subtotal,
		Discount: OrderDiscount,
		Total:    total,
		Status:   models.OrderStatusConfirmed,
	}

	err := s.data.Update(ctx, func(ctx context.Context, tx *localdata.Store) error {
		orders, err := tx.Orders(ctx)
		if err != nil {
			return err
		}
		return tx.SetOrders(ctx, append(orders, order))
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *orderService) List(ctx context.Context, user *models.User) ([]models.Order, error) {
	if user == nil {
		return nil, common.ErrNotLoggedIn
	}

	all, err := s.data.Orders(ctx)
	if err != nil {
		return nil, err
	}

	mine := make([]models.Order, 0, len(all))
	for _, o := range all {
		if o.UserID == user.ID {
			mine = append(mine, o)
		}
	}
	sort.SliceStable(mine, func(i, j int) bool {
		return mine[i].Date.After(mine[j].Date)
	})
	return mine, nil
}
