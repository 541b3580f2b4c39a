package models

import "time"

// Payment is a mocked settlement of a bill.
type Payment struct {
	ID        int64     `db:"id" json:"id"`
	BillID    int64     `db:"bill_id" json:"bill_id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Method    string    `db:"method" json:"method"`
	Amount    float64   `db:"amount" json:"amount"`
	Receipt   string    `db:"receipt" json:"receipt"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
