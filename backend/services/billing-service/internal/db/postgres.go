package db

import (
	"context"
	"database/sql"

	libdb "urjaportal/backend/libs/db"
	"urjaportal/backend/services/billing-service/internal/repository"
)

// NewPostgres returns shared DB connection, creating billing tables when migrate is set.
func NewPostgres(ctx context.Context, dsn string, pool libdb.Pool, migrate bool) (*sql.DB, error) {
	sqlDB, err := libdb.Open(ctx, dsn, pool)
	if err != nil {
		return nil, err
	}
	if migrate {
		if err := libdb.ApplySchema(ctx, sqlDB, repository.Schema); err != nil {
			sqlDB.Close()
			return nil, err
		}
	}
	return sqlDB, nil
}
