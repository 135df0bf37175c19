package cli

import (
	"context"

	"github.com/brunohmachado/vitrine/internal/services"
)

// Register walks through the registration form. Validation happens in the
// auth service; any failure aborts without touching stored state.
func (a *App) Register(ctx context.Context) error {
	var input services.RegisterInput
	var err error

	if input.Name, err = GetSimpleText(a.reader, "Enter name", a.out); err != nil {
		a.println("error:", err)
		return err
	}
	if input.Email, err = GetSimpleText(a.reader, "Enter email", a.out); err != nil {
		a.println("error:", err)
		return err
	}
	if input.Password, err = GetPassword("Enter password (min. 6 characters)", a.out); err != nil {
		a.println("error:", err)
		return err
	}
	if input.PasswordConfirm, err = GetPassword("Confirm password", a.out); err != nil {
		a.println("error:", err)
		return err
	}
	if input.Phone, err = GetSimpleText(a.reader, "Enter phone", a.out); err != nil {
		a.println("error:", err)
		return err
	}
	if input.CPF, err = GetSimpleText(a.reader, "Enter CPF", a.out); err != nil {
		a.println("error:", err)
		return err
	}
	if input.AcceptedTerms, err = GetYesNo(a.reader, "Accept the terms of use?", a.out); err != nil {
		a.println("error:", err)
		return err
	}

	user, err := a.auth.Register(ctx, input)
	if err != nil {
		a.println("Registration failed:", err)
		return err
	}

	a.printf("Account created. Welcome, %s!\n", user.Name)
	return nil
}
