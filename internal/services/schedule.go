package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/vaxscheduler/internal/model"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/repomanager"
)

// ScheduleService publishes caregiver availability and answers schedule
// searches.
type ScheduleService struct {
	db    *sql.DB
	repos repomanager.Manager
}

func NewScheduleService(db *sql.DB, repos repomanager.Manager) *ScheduleService {
	return &ScheduleService{db: db, repos: repos}
}

// Publish sets the caregiver's open-slot count for date, replacing any
// previously published count.
func (s *ScheduleService) Publish(ctx context.Context, caregiverUsername string, date time.Time, doses int) error {
	if doses < 0 {
		return model.ErrInvalidAmount
	}
	return s.repos.Availabilities(s.db).Publish(ctx, caregiverUsername, date, doses)
}

// OpenSlots lists caregivers with doses remaining on date, ordered by
// username. The stored counter is already net of bookings because the
// reservation transaction decrements it.
func (s *ScheduleService) OpenSlots(ctx context.Context, date time.Time) ([]model.OpenSlot, error) {
	return s.repos.Availabilities(s.db).ListOpen(ctx, date)
}
