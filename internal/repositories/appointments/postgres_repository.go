package appointments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/vaxscheduler/internal/dbx"
	"github.com/dmitrijs2005/vaxscheduler/internal/model"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) NextID(ctx context.Context) (int, error) {
	query := `SELECT COALESCE(MAX(appointment_id), 0) + 1 FROM appointments`

	var id int
	if err := r.db.QueryRowContext(ctx, query).Scan(&id); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return id, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, appointment *model.Appointment) error {
	query :=
		`INSERT INTO appointments (appointment_id, date, caregiver_username, patient_username, vaccine_name)
		 VALUES ($1, $2, $3, $4, $5)
		 `

	_, err := r.db.ExecContext(ctx, query,
		appointment.ID, appointment.Date, appointment.CaregiverUsername,
		appointment.PatientUsername, appointment.VaccineName)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*model.Appointment, error) {
	query :=
		`SELECT appointment_id, date, caregiver_username, patient_username, vaccine_name
		 FROM appointments
		 WHERE appointment_id = $1
		 `

	appointment := &model.Appointment{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&appointment.ID, &appointment.Date, &appointment.CaregiverUsername,
		&appointment.PatientUsername, &appointment.VaccineName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return appointment, nil
}

func (r *PostgresRepository) ListForPatient(ctx context.Context, patientUsername string) ([]model.Appointment, error) {
	query :=
		`SELECT appointment_id, date, caregiver_username, patient_username, vaccine_name
		 FROM appointments
		 WHERE patient_username = $1
		 ORDER BY appointment_id
		 `

	return r.list(ctx, query, patientUsername)
}

func (r *PostgresRepository) ListForCaregiver(ctx context.Context, caregiverUsername string) ([]model.Appointment, error) {
	query :=
		`SELECT appointment_id, date, caregiver_username, patient_username, vaccine_name
		 FROM appointments
		 WHERE caregiver_username = $1
		 ORDER BY appointment_id
		 `

	return r.list(ctx, query, caregiverUsername)
}

func (r *PostgresRepository) list(ctx context.Context, query string, username string) ([]model.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var appointments []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(&a.ID, &a.Date, &a.CaregiverUsername, &a.PatientUsername, &a.VaccineName); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return appointments, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM appointments WHERE appointment_id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
