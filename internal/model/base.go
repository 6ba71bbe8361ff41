package model

import "time"

// Base carries the identity and timestamps every stored record has.
type Base struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Meta exposes the embedded Base so the store can stamp records generically.
func (b *Base) Meta() *Base {
	return b
}
