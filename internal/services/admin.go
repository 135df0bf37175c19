package services

import (
	"context"
	"strings"
	"time"

	"github.com/brunohmachado/vitrine/internal/common"
	"github.com/brunohmachado/vitrine/internal/localdata"
	"github.com/brunohmachado/vitrine/internal/models"
)

// AdminService manages the admin user registry. The registry is independent
// of the User collection: ids are unique, duplicate emails are allowed.
type AdminService interface {
	List(ctx context.Context) ([]models.AdminUser, error)
	Search(ctx context.Context, term string) ([]models.AdminUser, error)
	Add(ctx context.Context, name, email string) (*models.AdminUser, error)
	Remove(ctx context.Context, id int64) error
}

type adminService struct {
	data *localdata.Store
	now  func() time.Time
}

func NewAdminService(data *localdata.Store) AdminService {
	return &adminService{data: data, now: time.Now}
}

func (s *adminService) List(ctx context.Context) ([]models.AdminUser, error) {
	return s.data.AdminUsers(ctx)
}

// Search filters by case-insensitive substring match on name or email.
func (s *adminService) Search(ctx context.Context, term string) ([]models.AdminUser, error) {
	all, err := s.data.AdminUsers(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return all, nil
	}

	matched := make([]models.AdminUser, 0, len(all))
	for _, a := range all {
		if strings.Contains(strings.ToLower(a.Name), needle) ||
			strings.Contains(strings.ToLower(a.Email), needle) {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

func (s *adminService) Add(ctx context.Context, name, email string) (*models.AdminUser, error) {
	var created models.AdminUser

	err := s.data.Update(ctx, func(ctx context.Context, tx *localdata.Store) error {
		admins, err := tx.AdminUsers(ctx)
		if err != nil {
			return err
		}

		now := s.now()
		created = models.AdminUser{
			ID:    newAdminID(admins, now),
			Date:  now,
			Name:  name,
			Email: email,
		}
		return tx.SetAdminUsers(ctx, append(admins, created))
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *adminService) Remove(ctx context.Context, id int64) error {
	return s.data.Update(ctx, func(ctx context.Context, tx *localdata.Store) error {
		admins, err := tx.AdminUsers(ctx)
		if err != nil {
			return err
		}

		kept := admins[:0]
		for _, a := range admins {
			if a.ID != id {
				kept = append(kept, a)
			}
		}
		if len(kept) == len(admins) {
			return common.ErrNotFound
		}
		return tx.SetAdminUsers(ctx, kept)
	})
}

func newAdminID(admins []models.AdminUser, now time.Time) int64 {
	id := now.UnixMilli()
	for {
		taken := false
		for _, a := range admins {
			if a.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
		id++
	}
}
