package availabilities

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/vaxscheduler/internal/dbx"
	"github.com/dmitrijs2005/vaxscheduler/internal/model"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Publish(ctx context.Context, caregiverUsername string, date time.Time, doses int) error {
	query :=
		`INSERT INTO availabilities (time, username, doses_left)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (time, username) DO UPDATE SET doses_left = EXCLUDED.doses_left
		 `

	_, err := r.db.ExecContext(ctx, query, date, caregiverUsername, doses)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) ListOpen(ctx context.Context, date time.Time) ([]model.OpenSlot, error) {
	query :=
		`SELECT username, doses_left FROM availabilities
		 WHERE time = $1 AND doses_left > 0
		 ORDER BY username
		 `

	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var slots []model.OpenSlot
	for rows.Next() {
		var s model.OpenSlot
		if err := rows.Scan(&s.CaregiverUsername, &s.DosesLeft); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return slots, nil
}

func (r *PostgresRepository) FirstOpenCaregiver(ctx context.Context, date time.Time) (string, error) {
	// FOR UPDATE serializes competing reservations for the same date on the
	// winning caregiver's row.
	query :=
		`SELECT username FROM availabilities
		 WHERE time = $1 AND doses_left > 0
		 ORDER BY username
		 LIMIT 1
		 FOR UPDATE
		 `

	var username string
	err := r.db.QueryRowContext(ctx, query, date).Scan(&username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", model.ErrNoDoses
		}
		return "", fmt.Errorf("db error: %w", err)
	}

	return username, nil
}

func (r *PostgresRepository) DecrementDoses(ctx context.Context, caregiverUsername string, date time.Time) error {
	query :=
		`UPDATE availabilities SET doses_left = doses_left - 1
		 WHERE time = $1 AND username = $2 AND doses_left > 0
		 `

	res, err := r.db.ExecContext(ctx, query, date, caregiverUsername)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return model.ErrNoDoses
	}

	return nil
}
