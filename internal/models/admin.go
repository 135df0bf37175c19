package models

import "time"

// AdminUser is an entry of the admin registry. The registry is unrelated
// to User: ids are unique, but duplicate emails are allowed.
type AdminUser struct {
	ID    int64     `json:"id"`
	Date  time.Time `json:"date"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}
