package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/vaxscheduler/internal/model"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/repomanager"
)

// InventoryService manages vaccine lots. The lot counter is deliberately
// disconnected from caregiver availability: reservation never touches it.
type InventoryService struct {
	db    *sql.DB
	repos repomanager.Manager
}

func NewInventoryService(db *sql.DB, repos repomanager.Manager) *InventoryService {
	return &InventoryService{db: db, repos: repos}
}

// AddDoses creates the named lot with amount doses, or adds amount to an
// existing lot. Negative amounts are rejected with model.ErrInvalidAmount.
func (s *InventoryService) AddDoses(ctx context.Context, name string, amount int) (int, error) {
	if amount < 0 {
		return 0, model.ErrInvalidAmount
	}
	return s.repos.Vaccines(s.db).AddDoses(ctx, name, amount)
}

// Get loads one lot by name. Returns model.ErrNotFound for an unknown name.
func (s *InventoryService) Get(ctx context.Context, name string) (*model.Vaccine, error) {
	return s.repos.Vaccines(s.db).GetByName(ctx, name)
}
