package models

import "time"

// Bill statuses.
const (
	BillStatusUnpaid = "unpaid"
	BillStatusPaid   = "paid"
)

// Bill is a calculated monthly bill saved to a consumer's history.
type Bill struct {
	ID              int64      `db:"id" json:"id"`
	UserID          int64      `db:"user_id" json:"user_id"`
	Category        string     `db:"category" json:"category"`
	Method          string     `db:"method" json:"method"`
	PreviousReading *float64   `db:"previous_reading" json:"previous_reading,omitempty"`
	CurrentReading  *float64   `db:"current_reading" json:"current_reading,omitempty"`
	Units           float64    `db:"units" json:"units"`
	EnergyCharges   float64    `db:"energy_charges" json:"energy_charges"`
	FixedCharges    float64    `db:"fixed_charges" json:"fixed_charges"`
	ElectricityDuty float64    `db:"electricity_duty" json:"electricity_duty"`
	Taxes           float64    `db:"taxes" json:"taxes"`
	TotalAmount     float64    `db:"total_amount" json:"total_amount"`
	TariffRate      float64    `db:"tariff_rate" json:"tariff_rate"`
	Status          string     `db:"status" json:"status"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	PaidAt          *time.Time `db:"paid_at" json:"paid_at,omitempty"`
}
