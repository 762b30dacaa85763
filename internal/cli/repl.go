package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/vaxscheduler/internal/model"
	"github.com/dmitrijs2005/vaxscheduler/internal/session"
)

const dateLayout = "2006-01-02"

// printPrompt marks where input is expected. Suppressed for piped input so
// scripts see clean output.
func (a *App) printPrompt() {
	if a.interactive {
		fmt.Fprint(a.out, "> ")
	}
}

func (a *App) printGreeting() {
	a.println("Welcome to the COVID-19 Vaccine Reservation Scheduling Application!")
	a.printMenu()
}

func (a *App) printMenu() {
	a.println("*** Please enter one of the following commands ***")
	a.println("> create_patient <username> <password>")
	a.println("> create_caregiver <username> <password>")
	a.println("> login_patient <username> <password>")
	a.println("> login_caregiver <username> <password>")
	a.println("> search_caregiver_schedule <date>")
	a.println("> reserve <date> <vaccine>")
	a.println("> upload_availability <date> [doses]")
	a.println("> cancel <appointment_id>")
	a.println("> add_doses <vaccine> <number>")
	a.println("> show_appointments")
	a.println("> logout")
	a.println("> quit")
	a.println()
}

// Run reads commands until quit or end of input. Every iteration handles one
// line; unknown commands and malformed arguments report and keep the loop
// alive.
func (a *App) Run(ctx context.Context, sess *session.Session) {
	a.printGreeting()

	scanner := bufio.NewScanner(a.in)
	for {
		a.printPrompt()
		if !scanner.Scan() {
			return
		}
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}

		switch strings.ToLower(tokens[0]) {
		case "create_patient":
			a.createAccount(ctx, tokens, model.RolePatient)
		case "create_caregiver":
			a.createAccount(ctx, tokens, model.RoleCaregiver)
		case "login_patient":
			a.login(ctx, sess, tokens, model.RolePatient)
		case "login_caregiver":
			a.login(ctx, sess, tokens, model.RoleCaregiver)
		case "search_caregiver_schedule":
			a.searchCaregiverSchedule(ctx, sess, tokens)
		case "reserve":
			a.reserve(ctx, sess, tokens)
		case "upload_availability":
			a.uploadAvailability(ctx, sess, tokens)
		case "cancel":
			a.cancel(ctx, sess, tokens)
		case "add_doses":
			a.addDoses(ctx, sess, tokens)
		case "show_appointments":
			a.showAppointments(ctx, sess, tokens)
		case "logout":
			a.logout(sess)
		case "quit":
			a.println("Bye!")
			return
		default:
			a.println("Invalid operation name!")
		}
	}
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
