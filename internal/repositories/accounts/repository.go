// Package accounts persists credential rows for both principal roles.
// Patients and caregivers live in separate tables, so the same username may
// exist once per role.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/vaxscheduler/internal/model"
)

type Repository interface {
	// Create inserts a new credential row. Returns model.ErrUsernameTaken if
	// the username already exists for the role.
	Create(ctx context.Context, role model.Role, account *model.Account) error

	// GetByUsername loads a credential row. Returns model.ErrNotFound if no
	// such username exists for the role.
	GetByUsername(ctx context.Context, role model.Role, username string) (*model.Account, error)
}
