// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is an account identity. PasswordHash is a bcrypt hash and is never
// serialized into API responses.
type User struct {
	ID           int64     `db:"user_id" json:"userId"`
	UserName     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
