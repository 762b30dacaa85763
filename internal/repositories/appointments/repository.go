// Package appointments persists confirmed bookings. Appointment ids are
// allocated by the booking service inside the reservation transaction.
package appointments

import (
	"context"

	"github.com/dmitrijs2005/vaxscheduler/internal/model"
)

type Repository interface {
	// NextID returns max(appointment_id)+1, or 1 when the table is empty.
	// Only meaningful inside the reservation transaction.
	NextID(ctx context.Context) (int, error)

	// Insert writes one appointment row.
	Insert(ctx context.Context, appointment *model.Appointment) error

	// GetByID loads one appointment. Returns model.ErrNotFound if absent.
	GetByID(ctx context.Context, id int) (*model.Appointment, error)

	// ListForPatient returns the patient's appointments in id order.
	ListForPatient(ctx context.Context, patientUsername string) ([]model.Appointment, error)

	// ListForCaregiver returns the caregiver's appointments in id order.
	ListForCaregiver(ctx context.Context, caregiverUsername string) ([]model.Appointment, error)

	// Delete removes one appointment row.
	Delete(ctx context.Context, id int) error
}
