package models

import "time"

// Category is a user-defined spending category. Receipts also carry the
// category as free text, so deleting a category never touches receipts.
type Category struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
