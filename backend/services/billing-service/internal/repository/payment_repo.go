package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"urjaportal/backend/services/billing-service/internal/models"
)

// ErrBillPaid is returned when paying a bill that is already settled.
var ErrBillPaid = errors.New("bill already paid")

// PaymentRepository records payments and settles bills.
type PaymentRepository struct {
	db *sql.DB
}

// NewPaymentRepository returns repository.
func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Settle locks the bill, inserts p and marks the bill paid in one transaction.
// p.Amount is taken from the bill.
func (r *PaymentRepository) Settle(ctx context.Context, p *models.Payment) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var status string
	const lockQuery = `SELECT status, total_amount FROM bills WHERE id = $1 AND user_id = $2 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, p.BillID, p.UserID).Scan(&status, &p.Amount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrBillNotFound
		}
		return err
	}
	if status == models.BillStatusPaid {
		err = ErrBillPaid
		return err
	}

	const insertQuery = `
		INSERT INTO payments (bill_id, user_id, method, amount, receipt, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`
	if err = tx.QueryRowContext(ctx, insertQuery, p.BillID, p.UserID, p.Method, p.Amount, p.Receipt).Scan(&p.ID, &p.CreatedAt); err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}

	const updateQuery = `UPDATE bills SET status = $1, paid_at = $2 WHERE id = $3`
	if _, err = tx.ExecContext(ctx, updateQuery, models.BillStatusPaid, p.CreatedAt, p.BillID); err != nil {
		return fmt.Errorf("mark bill paid: %w", err)
	}

	return tx.Commit()
}
