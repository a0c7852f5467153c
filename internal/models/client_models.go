package models

import "time"

// Client represents a customer of the events agency. Optional fields are
// pointers so an unfilled field serializes as null rather than "".
type Client struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name" binding:"required"`
	CPF       *string   `json:"cpf" db:"cpf"`
	Phone     string    `json:"phone" db:"phone"`
	Email     *string   `json:"email" db:"email"`
	Address   *string   `json:"address" db:"address"`
	Notes     *string   `json:"notes" db:"notes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
