// Package common defines shared sentinel errors used across the vitrine
// client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Registration / profile validation errors. Each aborts the operation
	// before any state is written.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch = errors.New("password confirmation does not match")
	ErrTermsNotAccepted = errors.New("terms of use must be accepted")
	ErrEmailTaken       = errors.New("email already registered")

	// Login errors. Deliberately silent about which field failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWrongPassword      = errors.New("current password is incorrect")

	// Authorization gaps: the action requires a logged-in user.
	ErrNotLoggedIn = errors.New("not logged in")

	// Checkout errors.
	ErrEmptyCart = errors.New("cart is empty")

	// Navigation errors: the requested fragment does not exist.
	ErrPageNotFound = errors.New("page not found")
)
