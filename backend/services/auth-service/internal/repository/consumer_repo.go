package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"urjaportal/backend/services/auth-service/internal/models"
)

// Schema creates the consumers table.
//
//go:embed schema.sql
var Schema string

const uniqueViolation = "23505"

var (
	// ErrConsumerNotFound represents missing consumer rows.
	ErrConsumerNotFound = errors.New("consumer not found")
	// ErrDuplicate is returned when email or consumer number is already taken.
	ErrDuplicate = errors.New("consumer already exists")
)

// ConsumerRepository handles CRUD for the consumers table.
type ConsumerRepository struct {
	db *sql.DB
}

// NewConsumerRepository returns repository instance.
func NewConsumerRepository(db *sql.DB) *ConsumerRepository {
	return &ConsumerRepository{db: db}
}

const consumerColumns = `id, consumer_number, email, password_hash, name, phone, tariff_category, language, role, created_at, updated_at`

// Create inserts a new consumer.
func (r *ConsumerRepository) Create(ctx context.Context, c *models.Consumer) error {
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	const query = `
		INSERT INTO consumers (consumer_number, email, password_hash, name, phone, tariff_category, language, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		c.ConsumerNumber,
		c.Email,
		c.PasswordHash,
		c.Name,
		c.Phone,
		c.TariffCategory,
		c.Language,
		c.Role,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// GetByEmail fetches a consumer by email.
func (r *ConsumerRepository) GetByEmail(ctx context.Context, email string) (*models.Consumer, error) {
	query := `SELECT ` + consumerColumns + ` FROM consumers WHERE email = $1 LIMIT 1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, strings.ToLower(strings.TrimSpace(email))))
}

// GetByConsumerNumber fetches a consumer by utility consumer number.
func (r *ConsumerRepository) GetByConsumerNumber(ctx context.Context, number string) (*models.Consumer, error) {
	query := `SELECT ` + consumerColumns + ` FROM consumers WHERE consumer_number = $1 LIMIT 1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, strings.TrimSpace(number)))
}

// GetByID fetches a consumer by id.
func (r *ConsumerRepository) GetByID(ctx context.Context, id int64) (*models.Consumer, error) {
	query := `SELECT ` + consumerColumns + ` FROM consumers WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// UpdateProfile stores editable profile fields.
func (r *ConsumerRepository) UpdateProfile(ctx context.Context, c *models.Consumer) error {
	const query = `
		UPDATE consumers
		SET name = $2, phone = $3, tariff_category = $4, language = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(ctx, query, c.ID, c.Name, c.Phone, c.TariffCategory, c.Language).Scan(&c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrConsumerNotFound
	}
	return err
}

func (r *ConsumerRepository) scanOne(row *sql.Row) (*models.Consumer, error) {
	var c models.Consumer
	if err := row.Scan(
		&c.ID,
		&c.ConsumerNumber,
		&c.Email,
		&c.PasswordHash,
		&c.Name,
		&c.Phone,
		&c.TariffCategory,
		&c.Language,
		&c.Role,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrConsumerNotFound
		}
		return nil, err
	}
	return &c, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
