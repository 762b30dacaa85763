// Package model defines the domain types shared between the repositories,
// services, and CLI layers, plus the sentinel errors callers match with
// errors.Is.
package model

import "time"

// Role selects which of the two disjoint principal namespaces an account
// belongs to. A username may exist once per role.
type Role string

const (
	RolePatient   Role = "patient"
	RoleCaregiver Role = "caregiver"
)

func (r Role) Valid() bool {
	return r == RolePatient || r == RoleCaregiver
}

func (r Role) String() string { return string(r) }

// Account is one credential row: a username with its salt and password hash.
// Accounts are immutable after registration.
type Account struct {
	Username string
	Salt     []byte
	Hash     []byte
}

// Availability is a caregiver's published open-slot counter for one date.
type Availability struct {
	Date              time.Time
	CaregiverUsername string
	DosesLeft         int
}

// OpenSlot is one row of a schedule search result.
type OpenSlot struct {
	CaregiverUsername string
	DosesLeft         int
}

// Vaccine is a named lot with a global remaining-dose counter. The counter is
// independent of caregiver availability and is only touched by add_doses.
type Vaccine struct {
	Name      string
	DosesLeft int
}

// Appointment links one patient, one caregiver, one date, and one vaccine
// name under a unique integer id.
type Appointment struct {
	ID                int
	Date              time.Time
	CaregiverUsername string
	PatientUsername   string
	VaccineName       string
}
