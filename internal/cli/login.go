package cli

import (
	"context"
	"errors"

	"github.com/brunohmachado/vitrine/internal/common"
)

// Login prompts for credentials and authenticates against the stored
// accounts. The failure message never reveals which field was wrong.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.println("error:", err)
		return err
	}

	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		a.println("error:", err)
		return err
	}

	user, err := a.auth.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			a.println("Invalid email or password.")
		} else {
			a.println("error:", err)
		}
		return err
	}

	a.printf("Welcome back, %s!\n", user.Name)
	return nil
}

// Logout clears the session projection.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.println("error:", err)
		return err
	}
	a.println("Logged out.")
	return nil
}
