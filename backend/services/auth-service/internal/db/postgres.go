package db

import (
	"context"
	"database/sql"

	libdb "urjaportal/backend/libs/db"
	"urjaportal/backend/services/auth-service/internal/repository"
)

// NewPostgres connects to Postgres and optionally creates the consumers table.
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
