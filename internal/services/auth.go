// Package services contains the scheduler's business logic: registration and
// login, availability publishing and search, the reservation transaction, and
// vaccine lot inventory.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/vaxscheduler/internal/cryptox"
	"github.com/dmitrijs2005/vaxscheduler/internal/model"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/repomanager"
)

// AuthService registers principals and verifies login attempts against the
// credential store.
type AuthService struct {
	db    *sql.DB
	repos repomanager.Manager
}

func NewAuthService(db *sql.DB, repos repomanager.Manager) *AuthService {
	return &AuthService{db: db, repos: repos}
}

// Register creates a credential row for (role, username) with a fresh salt.
// Returns model.ErrUsernameTaken if the username exists for that role.
func (s *AuthService) Register(ctx context.Context, role model.Role, username, password string) error {
	salt, err := cryptox.GenerateSalt()
	if err != nil {
		return fmt.Errorf("generating salt: %w", err)
	}

	account := &model.Account{
		Username: username,
		Salt:     salt,
		Hash:     cryptox.HashPassword(password, salt),
	}

	return s.repos.Accounts(s.db).Create(ctx, role, account)
}

// Authenticate verifies a login attempt. An unknown username and a wrong
// password both return model.ErrUnauthorized so callers cannot tell the two
// apart; the unknown-username path still burns a hash to keep timing flat.
func (s *AuthService) Authenticate(ctx context.Context, role model.Role, username, password string) (*model.Account, error) {
	account, err := s.repos.Accounts(s.db).GetByUsername(ctx, role, username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			if salt, saltErr := cryptox.GenerateSalt(); saltErr == nil {
				cryptox.HashPassword(password, salt)
			}
			return nil, model.ErrUnauthorized
		}
		return nil, err
	}

	if !cryptox.VerifyPassword(account.Hash, password, account.Salt) {
		return nil, model.ErrUnauthorized
	}

	return account, nil
}
