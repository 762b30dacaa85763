// Package availabilities persists per-caregiver, per-date open-slot counters.
// Rows are never deleted; an exhausted counter simply stops matching
// doses_left > 0.
package availabilities

import (
	"context"
	"time"

	"github.com/dmitrijs2005/vaxscheduler/internal/model"
)

type Repository interface {
	// Publish inserts or replaces the counter for (caregiver, date).
	Publish(ctx context.Context, caregiverUsername string, date time.Time, doses int) error

	// ListOpen returns every caregiver with doses remaining on date, ordered
	// by username ascending.
	ListOpen(ctx context.Context, date time.Time) ([]model.OpenSlot, error)

	// FirstOpenCaregiver returns the alphabetically first caregiver with
	// doses remaining on date and locks that row for the enclosing
	// transaction. Returns model.ErrNoDoses if nobody has doses left.
	FirstOpenCaregiver(ctx context.Context, date time.Time) (string, error)

	// DecrementDoses subtracts one dose from (caregiver, date), guarded by
	// doses_left > 0. Returns model.ErrNoDoses when the guard admits no row.
	DecrementDoses(ctx context.Context, caregiverUsername string, date time.Time) error
}
