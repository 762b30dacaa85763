// Package app wires the scheduler together: config, logger, database,
// migrations, services, and the command loop.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/dmitrijs2005/vaxscheduler/internal/cli"
	"github.com/dmitrijs2005/vaxscheduler/internal/config"
	"github.com/dmitrijs2005/vaxscheduler/internal/logging"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/repomanager"
	"github.com/dmitrijs2005/vaxscheduler/internal/services"
	"github.com/dmitrijs2005/vaxscheduler/internal/session"
)

type App struct {
	cfg    *config.Config
	logger logging.Logger
}

func NewApp(cfg *config.Config) *App {
	return &App{cfg: cfg, logger: logging.NewJSONLogger(os.Stderr)}
}

// Run opens the database, applies migrations, and hands control to the
// command loop until the user quits or input ends.
func (a *App) Run(ctx context.Context) error {
	db, err := sql.Open("pgx", a.cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	repos := repomanager.NewPostgresManager()
	if err := repos.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}

	sess := session.New([]byte(a.cfg.SecretKey), a.cfg.TokenValidity)
	logger := a.logger.With("session", sess.ID().String())
	logger.Info(ctx, "scheduler started")

	console := cli.NewApp(
		services.NewAuthService(db, repos),
		services.NewScheduleService(db, repos),
		services.NewBookingService(db, repos),
		services.NewInventoryService(db, repos),
		logger,
	)
	console.Run(ctx, sess)

	logger.Info(ctx, "scheduler stopped")
	return nil
}
