package model

import "errors"

var (
	// repository-level errors
	ErrNotFound      = errors.New("not found")
	ErrUsernameTaken = errors.New("username taken")
	ErrNoDoses       = errors.New("not enough available doses")

	// service-level errors
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotOwner      = errors.New("not the appointment owner")
	ErrInvalidAmount = errors.New("invalid dose amount")
)
