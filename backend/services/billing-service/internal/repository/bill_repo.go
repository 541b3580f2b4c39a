package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"

	"urjaportal/backend/services/billing-service/internal/models"
)

// Schema creates the bills and payments tables.
//
//go:embed schema.sql
var Schema string

// ErrBillNotFound is returned when no bill matches id and owner.
var ErrBillNotFound = errors.New("bill not found")

const billColumns = `id, user_id, category, method, previous_reading, current_reading, units,
	energy_charges, fixed_charges, electricity_duty, taxes, total_amount, tariff_rate,
	status, created_at, paid_at`

// BillRepository persists calculated bills.
type BillRepository struct {
	db *sql.DB
}

// NewBillRepository returns repository.
func NewBillRepository(db *sql.DB) *BillRepository {
	return &BillRepository{db: db}
}

// Create inserts a new bill.
func (r *BillRepository) Create(ctx context.Context, b *models.Bill) error {
	const query = `
		INSERT INTO bills (user_id, category, method, previous_reading, current_reading, units,
			energy_charges, fixed_charges, electricity_duty, taxes, total_amount, tariff_rate, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW())
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query,
		b.UserID,
		b.Category,
		b.Method,
		b.PreviousReading,
		b.CurrentReading,
		b.Units,
		b.EnergyCharges,
		b.FixedCharges,
		b.ElectricityDuty,
		b.Taxes,
		b.TotalAmount,
		b.TariffRate,
		b.Status,
	).Scan(&b.ID, &b.CreatedAt)
}

// ListByUser returns latest bills for user.
func (r *BillRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]models.Bill, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT ` + billColumns + ` FROM bills WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bills := make([]models.Bill, 0)
	for rows.Next() {
		var b models.Bill
		if err := scanBill(rows, &b); err != nil {
			return nil, err
		}
		bills = append(bills, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return bills, nil
}

// GetForUser returns the bill with id owned by userID.
func (r *BillRepository) GetForUser(ctx context.Context, userID, id int64) (*models.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE id = $1 AND user_id = $2`
	var b models.Bill
	if err := scanBill(r.db.QueryRowContext(ctx, query, id, userID), &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBillNotFound
		}
		return nil, err
	}
	return &b, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanBill(row scanner, b *models.Bill) error {
	var prev, cur sql.NullFloat64
	var paidAt sql.NullTime
	if err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.Category,
		&b.Method,
		&prev,
		&cur,
		&b.Units,
		&b.EnergyCharges,
		&b.FixedCharges,
		&b.ElectricityDuty,
		&b.Taxes,
		&b.TotalAmount,
		&b.TariffRate,
		&b.Status,
		&b.CreatedAt,
		&paidAt,
	); err != nil {
		return err
	}
	if prev.Valid {
		b.PreviousReading = &prev.Float64
	}
	if cur.Valid {
		b.CurrentReading = &cur.Float64
	}
	if paidAt.Valid {
		b.PaidAt = &paidAt.Time
	}
	return nil
}
