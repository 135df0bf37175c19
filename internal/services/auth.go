package services

import (
	"context"
	"time"

	"github.com/brunohmachado/vitrine/internal/common"
	"github.com/brunohmachado/vitrine/internal/localdata"
	"github.com/brunohmachado/vitrine/internal/models"
)

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	PasswordConfirm string
	Phone           string
	CPF             string
	AcceptedTerms   bool
}

// ProfileInput carries the editable profile fields.
type ProfileInput struct {
	Name  string
	Email string
	Phone string
	CPF   string
}

// AuthService registers, authenticates and updates user accounts.
//
// Contract:
//   - Register: validates the form, creates the User and logs the caller in.
//   - Login: exact-match lookup; failure does not reveal which field failed.
//   - CurrentUser: the redacted session projection, nil when logged out.
//   - UpdateProfile/ChangePassword: mutate the stored User and the session
//     projection in lockstep.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, input ProfileInput) (*models.User, error)
	ChangePassword(ctx context.Context, current, newPassword, confirm string) error
}

type authService struct {
	data *localdata.Store
	now  func() time.Time
}

func NewAuthService(data *localdata.Store) AuthService {
	return &authService{data: data, now: time.Now}
}

const minPasswordLen = 6

// Register validates the form and creates the account. Validation failures
// abort before anything is written. On success the caller is logged in: the
// redacted copy becomes the session projection.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	if len(input.Password) < minPasswordLen {
		return nil, common.ErrPasswordTooShort
	}
	if input.Password != input.PasswordConfirm {
		return nil, common.ErrPasswordMismatch
	}
	if !input.AcceptedTerms {
		return nil, common.ErrTermsNotAccepted
	}

	var created models.User

	err := s.data.Update(ctx, func(ctx context.Context, tx *localdata.Store) error {
		users, err := tx.Users(ctx)
		if err != nil {
			return err
		}

		// Uniqueness is a case-sensitive exact match on the stored email.
		for _, u := range users {
			if u.Email == input.Email {
				return common.ErrEmailTaken
			}
		}

		now := s.now()
		created = models.User{
			ID:        newUserID(users, now),
			Name:      input.Name,
			Email:     input.Email,
			Password:  input.Password,
			Phone:     input.Phone,
			CPF:       input.CPF,
			CreatedAt: now,
		}

		if err := tx.SetUsers(ctx, append(users, created)); err != nil {
			return err
		}
		return tx.SetCurrentUser(ctx, created.Redacted())
	})
	if err != nil {
		return nil, err
	}

	redacted := created.Redacted()
	return &redacted, nil
}

// Login authenticates by exact email and password match and stores the
// redacted copy as the session projection.
func (s *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	users, err := s.data.Users(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Email == email && u.Password == password {
			redacted := u.Redacted()
			if err := s.data.SetCurrentUser(ctx, redacted); err != nil {
				return nil, err
			}
			return &redacted, nil
		}
	}
	return nil, common.ErrInvalidCredentials
}

func (s *authService) Logout(ctx context.Context) error {
	return s.data.ClearCurrentUser(ctx)
}

func (s *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	return s.data.CurrentUser(ctx)
}

// UpdateProfile rewrites the profile fields of the stored User and refreshes
// the session projection.
func (s *authService) UpdateProfile(ctx context.Context, input ProfileInput) (*models.User, error) {
	var updated models.User

	err := s.data.Update(ctx, func(ctx context.Context, tx *localdata.Store) error {
		current, err := tx.CurrentUser(ctx)
		if err != nil {
			return err
		}
		if current == nil {
			return common.ErrNotLoggedIn
		}

		users, err := tx.Users(ctx)
		if err != nil {
			return err
		}

		idx := -1
		for i, u := range users {
			if u.ID == current.ID {
				idx = i
				continue
			}
			if input.Email != "" && u.Email == input.Email {
				return common.ErrEmailTaken
			}
		}
		if idx < 0 {
			return common.ErrNotFound
		}

		if input.Name != "" {
			users[idx].Name = input.Name
		}
		if input.Email != "" {
			users[idx].Email = input.Email
		}
		if input.Phone != "" {
			users[idx].Phone = input.Phone
		}
		if input.CPF != "" {
			users[idx].CPF = input.CPF
		}

		if err := tx.SetUsers(ctx, users); err != nil {
			return err
		}
		updated = users[idx]
		return tx.SetCurrentUser(ctx, updated.Redacted())
	})
	if err != nil {
		return nil, err
	}

	redacted := updated.Redacted()
	return &redacted, nil
}

// ChangePassword re-validates the current password against the stored
// (unredacted) record before applying the new one.
func (s *authService) ChangePassword(ctx context.Context, current, newPassword, confirm string) error {
	if len(newPassword) < minPasswordLen {
		return common.ErrPasswordTooShort
	}
	if newPassword != confirm {
		return common.ErrPasswordMismatch
	}

	return s.data.Update(ctx, func(ctx context.Context, tx *localdata.Store) error {
		session, err := tx.CurrentUser(ctx)
		if err != nil {
			return err
		}
		if session == nil {
			return common.ErrNotLoggedIn
		}

		users, err := tx.Users(ctx)
		if err != nil {
			return err
		}

		for i, u := range users {
			if u.ID != session.ID {
				continue
			}
			if u.Password != current {
				return common.ErrWrongPassword
			}
			users[i].Password = newPassword
			if err := tx.SetUsers(ctx, users); err != nil {
				return err
			}
			return tx.SetCurrentUser(ctx, users[i].Redacted())
		}
		return common.ErrNotFound
	})
}

// newUserID derives an id from the creation instant, bumping past any
// collision with an existing account.
func newUserID(users []models.User, now time.Time) int64 {
	id := now.UnixMilli()
	for {
		taken := false
		for _, u := range users {
			if u.ID == id {
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
