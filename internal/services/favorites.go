package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/brunohmachado/vitrine/internal/common"
	"github.com/brunohmachado/vitrine/internal/localdata"
	"github.com/brunohmachado/vitrine/internal/models"
)

// FavoriteService is the favorites engine. All users share one persisted
// collection; isolation is filter-by-user on read and merge-on-write, so a
// user's edits never touch another user's rows.
type FavoriteService interface {
	Add(ctx context.Context, user *models.User, product models.ProductSnapshot) error
	Remove(ctx context.Context, user *models.User, name, price string) error
	RemoveByID(ctx context.Context, user *models.User, id string) error
	List(ctx context.Context, user *models.User) ([]models.Favorite, error)
}

type favoriteService struct {
	data *localdata.Store
	now  func() time.Time
}

func NewFavoriteService(data *localdata.Store) FavoriteService {
	return &favoriteService{data: data, now: time.Now}
}

// Add stores a favorite for the user unless one with the same (name, price)
// already exists for them. Requires a logged-in user.
func (s *favoriteService) Add(ctx context.Context, user *models.User, product models.ProductSnapshot) error {
	if user == nil {
		return common.ErrNotLoggedIn
	}

	return s.data.Update(ctx, func(ctx context.Context, tx *localdata.Store) error {
		all, err := tx.Favorites(ctx)
		if err != nil {
			return err
		}

		for _, f := range all {
			if f.UserID == user.ID && f.Name == product.Name && f.Price == product.Price {
				return nil // already favorited, duplicate suppressed
			}
		}

		fav := models.Favorite{
			ID:        uuid.NewString(),
			UserID:    user.ID,
			Name:      product.Name,
			Image:     product.Image,
			Price:     product.Price,
			OldPrice:  product.OldPrice,
			Specs:     product.Specs,
			Brand:     product.Brand,
			DateAdded: s.now(),
		}

		others, mine := splitByUser(all, user.ID)
		mine = append(mine, fav)
		return tx.SetFavorites(ctx, append(others, mine...))
	})
}

// Remove drops the user's favorite matching (name, price), merging the rest
// of the shared collection back untouched.
func (s *favoriteService) Remove(ctx context.Context, user *models.User, name, price string) error {
	return s.removeMatching(ctx, user, func(f models.Favorite) bool {
		return f.Name == name && f.Price == price
	})
}

// RemoveByID drops the user's favorite with the given id.
func (s *favoriteService) RemoveByID(ctx context.Context, user *models.User, id string) error {
	return s.removeMatching(ctx, user, func(f models.Favorite) bool {
		return f.ID == id
	})
}

func (s *favoriteService) removeMatching(ctx context.Context, user *models.User, match func(models.Favorite) bool) error {
	if user == nil {
		return common.ErrNotLoggedIn
	}

	return s.data.Update(ctx, func(ctx context.Context, tx *localdata.Store) error {
		all, err := tx.Favorites(ctx)
		if err != nil {
			return err
		}

		others, mine := splitByUser(all, user.ID)
		kept := mine[:0]
		for _, f := range mine {
			if !match(f) {
				kept = append(kept, f)
			}
		}
		return tx.SetFavorites(ctx, append(others, kept...))
	})
}

// List returns the user's favorites, most recently added first.
func (s *favoriteService) List(ctx context.Context, user *models.User) ([]models.Favorite, error) {
	if user == nil {
		return nil, common.ErrNotLoggedIn
	}

	all, err := s.data.Favorites(ctx)
	if err != nil {
		return nil, err
	}

	_, mine := splitByUser(all, user.ID)
	sort.SliceStable(mine, func(i, j int) bool {
		return mine[i].DateAdded.After(mine[j].DateAdded)
	})
	return mine, nil
}

func splitByUser(all []models.Favorite, userID int64) (others, mine []models.Favorite) {
	others = make([]models.Favorite, 0, len(all))
	mine = make([]models.Favorite, 0, len(all))
	for _, f := range all {
		if f.UserID == userID {
			mine = append(mine, f)
		} else {
			others = append(others, f)
		}
	}
	return others, mine
}
