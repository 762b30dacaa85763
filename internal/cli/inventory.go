package cli

import (
	"context"
	"errors"
	"strconv"

	"github.com/dmitrijs2005/vaxscheduler/internal/model"
	"github.com/dmitrijs2005/vaxscheduler/internal/session"
)

func (a *App) addDoses(ctx context.Context, sess *session.Session, tokens []string) {
	username, role, ok := a.loginRequired(sess, "Please login first!")
	if !ok {
		return
	}
	if role != model.RoleCaregiver {
		a.println("Please login as a caregiver first!")
		return
	}
	if len(tokens) != 3 {
		a.println("Please try again!")
		return
	}

	amount, err := strconv.Atoi(tokens[2])
	if err != nil {
		a.println("Please try again!")
		return
	}

	if _, err := a.inventory.AddDoses(ctx, tokens[1], amount); err != nil {
		if errors.Is(err, model.ErrInvalidAmount) {
			a.println("Please try again!")
			return
		}
		a.logger.Error(ctx, "dose update failed", "caregiver", username, "vaccine", tokens[1], "error", err)
		a.println("Error occurred when adding doses")
		return
	}
	a.println("Doses updated!")
}
