package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/vaxscheduler/internal/model"
	"github.com/dmitrijs2005/vaxscheduler/internal/session"
)

func (a *App) searchCaregiverSchedule(ctx context.Context, sess *session.Session, tokens []string) {
	if _, _, ok := a.loginRequired(sess, "Please login first!"); !ok {
		return
	}
	if len(tokens) != 2 {
		a.println("Please try again!")
		return
	}

	date, err := parseDate(tokens[1])
	if err != nil {
		a.println("Please enter a valid date!")
		return
	}

	slots, err := a.schedule.OpenSlots(ctx, date)
	if err != nil {
		a.logger.Error(ctx, "schedule lookup failed", "date", tokens[1], "error", err)
		a.println("Please try again!")
		return
	}
	if len(slots) == 0 {
		a.println("No caregivers available for the given date.")
		return
	}

	a.println("CaregiverUsername DosesLeft")
	for _, slot := range slots {
		fmt.Fprintf(a.out, "%s %d\n", slot.CaregiverUsername, slot.DosesLeft)
	}
}

func (a *App) uploadAvailability(ctx context.Context, sess *session.Session, tokens []string) {
	username, role, ok := a.loginRequired(sess, "Please login first!")
	if !ok {
		return
	}
	if role != model.RoleCaregiver {
		a.println("Please login as a caregiver first!")
		return
	}
	if len(tokens) != 2 && len(tokens) != 3 {
		a.println("Please try again!")
		return
	}

	date, err := parseDate(tokens[1])
	if err != nil {
		a.println("Please enter a valid date!")
		return
	}

	doses := 1
	if len(tokens) == 3 {
		doses, err = strconv.Atoi(tokens[2])
		if err != nil {
			a.println("Please try again!")
			return
		}
	}

	if err := a.schedule.Publish(ctx, username, date, doses); err != nil {
		if errors.Is(err, model.ErrInvalidAmount) {
			a.println("Please try again!")
			return
		}
		a.logger.Error(ctx, "availability upload failed", "caregiver", username, "error", err)
		a.println("Error occurred when uploading availability")
		return
	}
	a.println("Availability uploaded!")
}
