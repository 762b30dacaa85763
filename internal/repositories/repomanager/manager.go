// Package repomanager builds repositories over a shared database handle.
// Services obtain repos through a Manager so that the same repository code
// runs against *sql.DB outside transactions and *sql.Tx inside them.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/vaxscheduler/internal/dbx"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/accounts"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/appointments"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/availabilities"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/vaccines"
)

type Manager interface {
	Accounts(db dbx.DBTX) accounts.Repository
	Availabilities(db dbx.DBTX) availabilities.Repository
	Vaccines(db dbx.DBTX) vaccines.Repository
	Appointments(db dbx.DBTX) appointments.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
