package model

import "time"

type User struct {
	ID           int        `db:"id" json:"id"`
	FirstName    string     `db:"first_name" json:"firstName"`
	LastName     string     `db:"last_name" json:"lastName"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	LastLoginAt  *time.Time `db:"last_login_at" json:"-"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}
