// Package session holds the CLI's login state as an explicit value passed to
// command handlers. At most one principal (patient XOR caregiver) is logged
// in at a time; the credential is a signed token, so an expired session
// degrades to anonymous instead of lingering.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/vaxscheduler/internal/auth"
	"github.com/dmitrijs2005/vaxscheduler/internal/model"
)

type Session struct {
	id       uuid.UUID
	secret   []byte
	validity time.Duration

	token string

	// transient, process-local only
	lastAppointmentID int
}

func New(secret []byte, validity time.Duration) *Session {
	return &Session{id: uuid.New(), secret: secret, validity: validity, lastAppointmentID: -1}
}

// ID identifies this session in log records.
func (s *Session) ID() uuid.UUID { return s.id }

// Login mints the session credential for (username, role).
func (s *Session) Login(username string, role model.Role) error {
	token, err := auth.GenerateToken(username, role, s.secret, s.validity)
	if err != nil {
		return err
	}
	s.token = token
	return nil
}

// Current returns the logged-in principal, or ok=false when nobody is logged
// in or the session credential has expired.
func (s *Session) Current() (username string, role model.Role, ok bool) {
	if s.token == "" {
		return "", "", false
	}
	claims, err := auth.ParseToken(s.token, s.secret)
	if err != nil {
		return "", "", false
	}
	return claims.Username, claims.Role, true
}

// Logout clears the session. Reports whether a principal was logged in.
func (s *Session) Logout() bool {
	_, _, ok := s.Current()
	s.token = ""
	s.lastAppointmentID = -1
	return ok
}

// SetLastAppointmentID records the id of the most recent reservation.
func (s *Session) SetLastAppointmentID(id int) { s.lastAppointmentID = id }

// LastAppointmentID returns the most recent reservation id, or -1.
func (s *Session) LastAppointmentID() int { return s.lastAppointmentID }
