package models

import "time"

// Consumer is a registered electricity consumer account.
type Consumer struct {
	ID             int64     `db:"id" json:"id"`
	ConsumerNumber string    `db:"consumer_number" json:"consumer_number"`
	Email          string    `db:"email" json:"email"`
	PasswordHash   string    `db:"password_hash" json:"-"`
	Name           string    `db:"name" json:"name"`
	Phone          string    `db:"phone" json:"phone"`
	TariffCategory string    `db:"tariff_category" json:"tariff_category"`
	Language       string    `db:"language" json:"language"`
	Role           string    `db:"role" json:"role"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}
