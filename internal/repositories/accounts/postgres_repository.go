package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/vaxscheduler/internal/dbx"
	"github.com/dmitrijs2005/vaxscheduler/internal/model"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// tableFor maps a role to its credential table. The two values are fixed
// identifiers, never user input.
func tableFor(role model.Role) string {
	if role == model.RoleCaregiver {
		return "caregivers"
	}
	return "patients"
}

func (r *PostgresRepository) Create(ctx context.Context, role model.Role, account *model.Account) error {
	query := fmt.Sprintf(
		`INSERT INTO %s (username, salt, hash) VALUES ($1, $2, $3)`, tableFor(role))

	_, err := r.db.ExecContext(ctx, query, account.Username, account.Salt, account.Hash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.ErrUsernameTaken
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, role model.Role, username string) (*model.Account, error) {
	query := fmt.Sprintf(
		`SELECT username, salt, hash FROM %s WHERE username = $1`, tableFor(role))

	account := &model.Account{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(&account.Username, &account.Salt, &account.Hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}
