package models

import "time"

// User is a registered storefront account. Credentials live only in the
// local store; the password is kept as entered (there is no server-side
// credential store and no hashing in this demo).
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password,omitempty"`
	Phone     string    `json:"phone"`
	CPF       string    `json:"cpf"`
	CreatedAt time.Time `json:"createdAt"`
}

// Redacted returns a copy of the user with the password stripped, suitable
// for storing as the session projection.
func (u User) Redacted() User {
	u.Password = ""
	return u
}
