package vaccines

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/vaxscheduler/internal/dbx"
	"github.com/dmitrijs2005/vaxscheduler/internal/model"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByName(ctx context.Context, name string) (*model.Vaccine, error) {
	query := `SELECT name, doses_left FROM vaccines WHERE name = $1`

	vaccine := &model.Vaccine{}
	err := r.db.QueryRowContext(ctx, query, name).Scan(&vaccine.Name, &vaccine.DosesLeft)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return vaccine, nil
}

func (r *PostgresRepository) AddDoses(ctx context.Context, name string, amount int) (int, error) {
	query :=
		`INSERT INTO vaccines (name, doses_left)
		 VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET doses_left = vaccines.doses_left + EXCLUDED.doses_left
		 RETURNING doses_left
		 `

	var total int
	if err := r.db.QueryRowContext(ctx, query, name, amount).Scan(&total); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return total, nil
}
