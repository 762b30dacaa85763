package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/vaxscheduler/internal/dbx"
	"github.com/dmitrijs2005/vaxscheduler/internal/model"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/repomanager"
)

const serializationFailure = "40001"

// A serializable transaction that loses a row-lock race is aborted by
// Postgres rather than failed by our doses_left guard, so it has to be
// replayed before the outcome is known.
const maxReserveAttempts = 3

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == serializationFailure
}

// Reservation is the outcome of a successful reserve call.
type Reservation struct {
	AppointmentID     int
	CaregiverUsername string
}

// BookingService runs the reservation protocol and manages existing
// appointments.
type BookingService struct {
	db    *sql.DB
	repos repomanager.Manager
}

func NewBookingService(db *sql.DB, repos repomanager.Manager) *BookingService {
	return &BookingService{db: db, repos: repos}
}

// Reserve books one dose for the patient on date with the given vaccine.
//
// The whole sequence runs in a single serializable transaction:
//
//  1. pick the alphabetically first caregiver with doses remaining on the
//     date, locking that availability row;
//  2. decrement the row's counter, guarded by doses_left > 0;
//  3. allocate max(appointment_id)+1;
//  4. insert the appointment.
//
// Any failure rolls the whole transaction back, so either the counter drops
// by one and exactly one appointment row appears, or nothing changes.
// Returns model.ErrNoDoses when no caregiver has doses left on the date.
//
// When two reservations race for the same date, the loser's transaction is
// aborted with SQLSTATE 40001 once the winner commits. Reserve replays the
// transaction on such aborts: the replay sees the committed counter and
// either books a remaining dose or reports model.ErrNoDoses.
func (s *BookingService) Reserve(ctx context.Context, patientUsername string, date time.Time, vaccineName string) (*Reservation, error) {
	var (
		reservation *Reservation
		err         error
	)
	for attempt := 0; attempt < maxReserveAttempts; attempt++ {
		reservation, err = s.reserveOnce(ctx, patientUsername, date, vaccineName)
		if !isSerializationFailure(err) {
			return reservation, err
		}
	}
	return nil, err
}

func (s *BookingService) reserveOnce(ctx context.Context, patientUsername string, date time.Time, vaccineName string) (*Reservation, error) {
	var reservation *Reservation

	err := dbx.WithTx(ctx, s.db, dbx.Serializable, func(ctx context.Context, tx dbx.DBTX) error {
		availabilityRepo := s.repos.Availabilities(tx)

		caregiver, err := availabilityRepo.FirstOpenCaregiver(ctx, date)
		if err != nil {
			return err
		}
		if err := availabilityRepo.DecrementDoses(ctx, caregiver, date); err != nil {
			return err
		}

		appointmentRepo := s.repos.Appointments(tx)
		id, err := appointmentRepo.NextID(ctx)
		if err != nil {
			return err
		}

		appointment := &model.Appointment{
			ID:                id,
			Date:              date,
			CaregiverUsername: caregiver,
			PatientUsername:   patientUsername,
			VaccineName:       vaccineName,
		}
		if err := appointmentRepo.Insert(ctx, appointment); err != nil {
			return err
		}

		reservation = &Reservation{AppointmentID: id, CaregiverUsername: caregiver}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return reservation, nil
}

// Cancel deletes the appointment if the acting principal owns it: the booking
// patient for a patient actor, the assigned caregiver for a caregiver actor.
// The availability counter is intentionally not restored.
// Returns model.ErrNotFound for an unknown id and model.ErrNotOwner when the
// principal matches neither side of the appointment.
func (s *BookingService) Cancel(ctx context.Context, role model.Role, username string, appointmentID int) error {
	repo := s.repos.Appointments(s.db)

	appointment, err := repo.GetByID(ctx, appointmentID)
	if err != nil {
		return err
	}

	owner := appointment.PatientUsername
	if role == model.RoleCaregiver {
		owner = appointment.CaregiverUsername
	}
	if owner != username {
		return model.ErrNotOwner
	}

	return repo.Delete(ctx, appointmentID)
}

// List returns the appointments visible to the principal: the ones they
// booked for a patient, the ones assigned to them for a caregiver.
func (s *BookingService) List(ctx context.Context, role model.Role, username string) ([]model.Appointment, error) {
	repo := s.repos.Appointments(s.db)
	if role == model.RoleCaregiver {
		return repo.ListForCaregiver(ctx, username)
	}
	return repo.ListForPatient(ctx, username)
}
