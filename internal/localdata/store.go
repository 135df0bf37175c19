// Package localdata provides the typed accessors over the key-value store.
// Each collection lives as a JSON payload under a fixed key. Reads tolerate
// missing or malformed payloads by degrading to an empty collection (or an
// absent value), so stale or hand-edited data never breaks the client.
// Every higher component routes storage access through this type; storage
// format changes stay isolated here.
package localdata

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/brunohmachado/vitrine/internal/models"
	"github.com/brunohmachado/vitrine/internal/storage"
)

// Storage keys. These are the only keys the client ever writes.
const (
	KeyUsers       = "users"
	KeyCurrentUser = "currentUser"
	KeyCart        = "cart"
	KeyOrders      = "orders"
	KeyFavorites   = "favorites"
	KeyAdminUsers  = "adminUsers"
	KeyCurrentPage = "currentPage"
)

// Store is the typed facade over the raw repository.
type Store struct {
	repo storage.Repository
}

func NewStore(repo storage.Repository) *Store {
	return &Store{repo: repo}
}

// Update runs fn against a transactional view of the store, so multi-key
// mutations (e.g. create user + set session) become durable together.
func (s *Store) Update(ctx context.Context, fn func(ctx context.Context, tx *Store) error) error {
	return s.repo.Update(ctx, func(ctx context.Context, tr storage.Repository) error {
		return fn(ctx, NewStore(tr))
	})
}

// getList reads a JSON array stored under key. A missing key or a payload
// that fails to decode yields an empty slice, never an error; only real
// storage failures propagate.
func getList[T any](ctx context.Context, s *Store, key string) ([]T, error) {
	data, err := s.repo.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if len(data) == 0 {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return []T{}, nil
	}
	return out, nil
}

func setList[T any](ctx context.Context, s *Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.repo.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *Store) Users(ctx context.Context) ([]models.User, error) {
	return getList[models.User](ctx, s, KeyUsers)
}

func (s *Store) SetUsers(ctx context.Context, users []models.User) error {
	return setList(ctx, s, KeyUsers, users)
}

// CurrentUser returns the session projection, or nil when nobody is logged
// in (or the stored payload is malformed).
func (s *Store) CurrentUser(ctx context.Context) (*models.User, error) {
	data, err := s.repo.Get(ctx, KeyCurrentUser)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", KeyCurrentUser, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var u models.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, nil
	}
	return &u, nil
}

func (s *Store) SetCurrentUser(ctx context.Context, u models.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", KeyCurrentUser, err)
	}
	if err := s.repo.Set(ctx, KeyCurrentUser, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", KeyCurrentUser, err)
	}
	return nil
}

func (s *Store) ClearCurrentUser(ctx context.Context) error {
	return s.repo.Delete(ctx, KeyCurrentUser)
}

func (s *Store) Cart(ctx context.Context) ([]models.CartItem, error) {
	return getList[models.CartItem](ctx, s, KeyCart)
}

func (s *Store) SetCart(ctx context.Context, items []models.CartItem) error {
	return setList(ctx, s, KeyCart, items)
}

func (s *Store) ClearCart(ctx context.Context) error {
	return s.repo.Delete(ctx, KeyCart)
}

func (s *Store) Orders(ctx context.Context) ([]models.Order, error) {
	return getList[models.Order](ctx, s, KeyOrders)
}

func (s *Store) SetOrders(ctx context.Context, orders []models.Order) error {
	return setList(ctx, s, KeyOrders, orders)
}

func (s *Store) Favorites(ctx context.Context) ([]models.Favorite, error) {
	return getList[models.Favorite](ctx, s, KeyFavorites)
}

func (s *Store) SetFavorites(ctx context.Context, favorites []models.Favorite) error {
	return setList(ctx, s, KeyFavorites, favorites)
}

func (s *Store) AdminUsers(ctx context.Context) ([]models.AdminUser, error) {
	return getList[models.AdminUser](ctx, s, KeyAdminUsers)
}

func (s *Store) SetAdminUsers(ctx context.Context, admins []models.AdminUser) error {
	return setList(ctx, s, KeyAdminUsers, admins)
}

// CurrentPage returns the recorded page name, or "" when none is recorded.
func (s *Store) CurrentPage(ctx context.Context) (string, error) {
	data, err := s.repo.Get(ctx, KeyCurrentPage)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", KeyCurrentPage, err)
	}
	if len(data) == 0 {
		return "", nil
	}
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return "", nil
	}
	return name, nil
}

func (s *Store) SetCurrentPage(ctx context.Context, name string) error {
	data, err := json.Marshal(name)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", KeyCurrentPage, err)
	}
	if err := s.repo.Set(ctx, KeyCurrentPage, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", KeyCurrentPage, err)
	}
	return nil
}
