package models

import "time"

type User struct {
	ID             int64     `json:"id" db:"id"`
	Username       string    `json:"username" db:"username"`
	HashedPassword string    `json:"-" db:"hashed_password"` // don’t expose hash
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
