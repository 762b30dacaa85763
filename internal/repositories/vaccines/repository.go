// Package vaccines persists named vaccine lots with their global
// remaining-dose counters. The counter is independent of caregiver
// availability.
package vaccines

import (
	"context"

	"github.com/dmitrijs2005/vaxscheduler/internal/model"
)

type Repository interface {
	// GetByName loads one lot. Returns model.ErrNotFound for an unknown name.
	GetByName(ctx context.Context, name string) (*model.Vaccine, error)

	// AddDoses creates the lot with the given count, or adds the count to an
	// existing lot. Returns the new total.
	AddDoses(ctx context.Context, name string, amount int) (int, error)
}
