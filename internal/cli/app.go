// Package cli implements the interactive scheduler console: a line-oriented
// command loop that authenticates principals and drives the scheduling
// services. All user-facing text goes to the app's writer; diagnostics go to
// the structured logger.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/vaxscheduler/internal/logging"
	"github.com/dmitrijs2005/vaxscheduler/internal/model"
	"github.com/dmitrijs2005/vaxscheduler/internal/services"
	"github.com/dmitrijs2005/vaxscheduler/internal/session"
)

// Service surfaces the command handlers need. The real services satisfy
// these; tests substitute fakes.
type authService interface {
	Register(ctx context.Context, role model.Role, username, password string) error
	Authenticate(ctx context.Context, role model.Role, username, password string) (*model.Account, error)
}

type scheduleService interface {
	Publish(ctx context.Context, caregiverUsername string, date time.Time, doses int) error
	OpenSlots(ctx context.Context, date time.Time) ([]model.OpenSlot, error)
}

type bookingService interface {
	Reserve(ctx context.Context, patientUsername string, date time.Time, vaccineName string) (*services.Reservation, error)
	Cancel(ctx context.Context, role model.Role, username string, appointmentID int) error
	List(ctx context.Context, role model.Role, username string) ([]model.Appointment, error)
}

type inventoryService interface {
	AddDoses(ctx context.Context, name string, amount int) (int, error)
}

type App struct {
	auth      authService
	schedule  scheduleService
	booking   bookingService
	inventory inventoryService

	logger logging.Logger

	in          io.Reader
	out         io.Writer
	interactive bool
}

func NewApp(
	auth *services.AuthService,
	schedule *services.ScheduleService,
	booking *services.BookingService,
	inventory *services.InventoryService,
	logger logging.Logger,
) *App {
	return &App{
		auth:        auth,
		schedule:    schedule,
		booking:     booking,
		inventory:   inventory,
		logger:      logger,
		in:          os.Stdin,
		out:         os.Stdout,
		interactive: isTerminal(int(os.Stdin.Fd())),
	}
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// loginRequired resolves the current principal, printing msg and returning
// ok=false when nobody is logged in.
func (a *App) loginRequired(sess *session.Session, msg string) (string, model.Role, bool) {
	username, role, ok := sess.Current()
	if !ok {
		a.println(msg)
		return "", "", false
	}
	return username, role, true
}
