package entity

import (
	"time"
)

// Product belongs to exactly one user. UserID is set from the creator's
// token at creation time and never changes afterwards.
type Product struct {
	ID          int64     `json:"id"`
	ProductName string    `json:"productName"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	UserID      int64     `json:"user"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
