package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/vaxscheduler/internal/model"
	"github.com/dmitrijs2005/vaxscheduler/internal/session"
)

func (a *App) reserve(ctx context.Context, sess *session.Session, tokens []string) {
	username, role, ok := a.loginRequired(sess, "Please login as a patient!")
	if !ok {
		return
	}
	if role != model.RolePatient {
		a.println("Please login as a patient!")
		return
	}
	if len(tokens) != 3 {
		a.println("Please try again!")
		return
	}

	date, err := parseDate(tokens[1])
	if err != nil {
		a.println("Please enter a valid date!")
		return
	}
	vaccine := tokens[2]

	res, err := a.booking.Reserve(ctx, username, date, vaccine)
	switch {
	case errors.Is(err, model.ErrNoDoses):
		a.println("Not enough available doses!")
	case err != nil:
		a.logger.Error(ctx, "reservation failed", "patient", username, "error", err)
		a.println("Error occurred during reservation.")
	default:
		sess.SetLastAppointmentID(res.AppointmentID)
		a.println("Reservation successful!")
		fmt.Fprintf(a.out, "Appointment ID: %d, Caregiver username: %s\n", res.AppointmentID, res.CaregiverUsername)
	}
}

func (a *App) showAppointments(ctx context.Context, sess *session.Session, tokens []string) {
	username, role, ok := a.loginRequired(sess, "Please login first!")
	if !ok {
		return
	}
	if len(tokens) != 1 {
		a.println("Please try again!")
		return
	}

	appts, err := a.booking.List(ctx, role, username)
	if err != nil {
		a.logger.Error(ctx, "appointment listing failed", "username", username, "error", err)
		a.println("Please try again!")
		return
	}
	if len(appts) == 0 {
		a.println("No appointments found.")
		return
	}

	a.println("AppointmentID Date CaregiverUsername PatientUsername VaccineName")
	for _, appt := range appts {
		fmt.Fprintf(a.out, "%d %s %s %s %s\n",
			appt.ID, appt.Date.Format(dateLayout), appt.CaregiverUsername, appt.PatientUsername, appt.VaccineName)
	}
}

func (a *App) cancel(ctx context.Context, sess *session.Session, tokens []string) {
	username, role, ok := a.loginRequired(sess, "Please log in first!")
	if !ok {
		return
	}
	if len(tokens) != 2 {
		a.println("Please try again!")
		return
	}

	id, err := strconv.Atoi(tokens[1])
	if err != nil {
		a.println("Please enter a valid appointment ID!")
		return
	}

	err = a.booking.Cancel(ctx, role, username, id)
	switch {
	case errors.Is(err, model.ErrNotFound), errors.Is(err, model.ErrNotOwner):
		a.println("Invalid appointment ID or you don't have permission to cancel this appointment.")
	case err != nil:
		a.logger.Error(ctx, "cancellation failed", "appointment_id", id, "error", err)
		a.println("Cancellation failed.")
	default:
		a.println("Appointment canceled successfully!")
	}
}
