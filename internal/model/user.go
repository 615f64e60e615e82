package model

import "time"

// User 狀態值，寫入前由 store 的 CHECK 約束把關
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type User struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Firstname    string    `db:"firstname" json:"firstname"`
	Lastname     string    `db:"lastname" json:"lastname"`
	Email        string    `db:"email" json:"email"`
	Phone        *string   `db:"phone" json:"phone"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Status       string    `db:"status" json:"status"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
