package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/vaxscheduler/internal/model"
	"github.com/dmitrijs2005/vaxscheduler/internal/session"
)

func (a *App) createAccount(ctx context.Context, tokens []string, role model.Role) {
	username, password, ok := a.credentials(tokens)
	if !ok {
		a.println("Failed to create user.")
		return
	}

	err := a.auth.Register(ctx, role, username, password)
	switch {
	case errors.Is(err, model.ErrUsernameTaken):
		a.println("Username taken, try again!")
	case err != nil:
		a.logger.Error(ctx, "account creation failed", "role", role, "error", err)
		a.println("Failed to create user.")
	default:
		a.println("Created user " + username)
	}
}

func (a *App) login(ctx context.Context, sess *session.Session, tokens []string, role model.Role) {
	if _, _, ok := sess.Current(); ok {
		a.println("User already logged in.")
		return
	}

	username, password, ok := a.credentials(tokens)
	if !ok {
		a.println("Login failed.")
		return
	}

	account, err := a.auth.Authenticate(ctx, role, username, password)
	if err != nil {
		if !errors.Is(err, model.ErrUnauthorized) {
			a.logger.Error(ctx, "login failed", "role", role, "error", err)
		}
		a.println("Login failed.")
		return
	}

	if err := sess.Login(account.Username, role); err != nil {
		a.logger.Error(ctx, "session token issue failed", "error", err)
		a.println("Login failed.")
		return
	}
	a.println("Logged in as: " + account.Username)
}

func (a *App) logout(sess *session.Session) {
	if !sess.Logout() {
		a.println("Please login first!")
		return
	}
	a.println("Successfully logged out!")
}
