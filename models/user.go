package models

import "time"

type User struct {
	ID        int       `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Email     string    `json:"email" db:"email"`
	HashedPw  string    `json:"-" db:"hashed_pw"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
