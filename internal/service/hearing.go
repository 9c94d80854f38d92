package service

import (
	"fmt"
	"time"

	"github.com/ahmetberacelik/legalcase/internal/database"
	"github.com/ahmetberacelik/legalcase/internal/repository"
)

const hearingTimeLayout = "2006-01-02 15:04:05"

// HearingService schedules and tracks hearings tied to a case.
type HearingService struct {
	hearings repository.HearingRepository
	cases    repository.CaseRepository
}

func NewHearingService(hearings repository.HearingRepository, cases repository.CaseRepository) *HearingService {
	return &HearingService{hearings: hearings, cases: cases}
}

// CreateHearing schedules a hearing for an existing case. The date is
// stored at whole-second precision and the status starts as SCHEDULED.
func (s *HearingService) CreateHearing(caseID uint, dateTime time.Time, judge, location, notes string) (*database.Hearing, error) {
	if dateTime.IsZero() {
		return nil, validationf("hearing date must not be empty")
	}

	record, err := s.cases.FindByID(caseID)
	if err != nil {
		return nil, storage(err)
	}
	if record == nil {
		return nil, validationf("case with id %d does not exist", caseID)
	}

	hearing := &database.Hearing{
		CaseID:   caseID,
		Judge:    judge,
		Location: location,
		Notes:    notes,
		Status:   database.HearingStatusScheduled,
	}
	hearing.SetDateTime(dateTime)

	if err := s.hearings.Create(hearing); err != nil {
		return nil, storage(err)
	}
	return hearing, nil
}

// UpdateHearing applies a partial update: nil fields keep their stored
// value.
func (s *HearingService) UpdateHearing(id uint, dateTime *time.Time, judge, location, notes *string, status *database.HearingStatus) (*database.Hearing, error) {
	hearing, err := s.hearings.FindByID(id)
	if err != nil {
		return nil, storage(err)
	}
	if hearing == nil {
		return nil, validationf("hearing with id %d does not exist", id)
	}

	if dateTime != nil {
		hearing.SetDateTime(*dateTime)
	}
	if judge != nil {
		hearing.Judge = *judge
	}
	if location != nil {
		hearing.Location = *location
	}
	if notes != nil {
		hearing.Notes = *notes
	}
	if status != nil {
		if !status.Valid() {
			return nil, validationf("unknown hearing status %q", *status)
		}
		hearing.Status = *status
	}

	if err := s.hearings.Update(hearing); err != nil {
		return nil, storage(err)
	}
	return hearing, nil
}

// UpdateHearingStatus changes only the status.
func (s *HearingService) UpdateHearingStatus(id uint, status database.HearingStatus) (*database.Hearing, error) {
	if !status.Valid() {
		return nil, validationf("unknown hearing status %q", status)
	}

	hearing, err := s.hearings.FindByID(id)
	if err != nil {
		return nil, storage(err)
	}
	if hearing == nil {
		return nil, validationf("hearing with id %d does not exist", id)
	}

	hearing.Status = status
	if err := s.hearings.Update(hearing); err != nil {
		return nil, storage(err)
	}
	return hearing, nil
}

// RescheduleHearing moves a hearing to a new date, resets its status to
// SCHEDULED and appends an audit line to the notes, keeping the prior text.
func (s *HearingService) RescheduleHearing(id uint, newDateTime time.Time) (*database.Hearing, error) {
	if newDateTime.IsZero() {
		return nil, validationf("new hearing date must not be empty")
	}

	hearing, err := s.hearings.FindByID(id)
	if err != nil {
		return nil, storage(err)
	}
	if hearing == nil {
		return nil, validationf("hearing with id %d does not exist", id)
	}

	oldDate := hearing.DateTime()
	hearing.SetDateTime(newDateTime)
	hearing.Status = database.HearingStatusScheduled

	audit := fmt.Sprintf("Hearing rescheduled from %s to %s",
		oldDate.Format(hearingTimeLayout), hearing.DateTime().Format(hearingTimeLayout))
	if hearing.Notes != "" {
		hearing.Notes = hearing.Notes + "\n" + audit
	} else {
		hearing.Notes = audit
	}

	if err := s.hearings.Update(hearing); err != nil {
		return nil, storage(err)
	}
	return hearing, nil
}

func (s *HearingService) DeleteHearing(id uint) error {
	hearing, err := s.hearings.FindByID(id)
	if err != nil {
		return storage(err)
	}
	if hearing == nil {
		return validationf("hearing with id %d does not exist", id)
	}

	if _, err := s.hearings.Delete(id); err != nil {
		return storage(err)
	}
	return nil
}

// GetHearingByID returns nil when no hearing matches.
func (s *HearingService) GetHearingByID(id uint) (*database.Hearing, error) {
	hearing, err := s.hearings.FindByID(id)
	if err != nil {
		return nil, storage(err)
	}
	return hearing, nil
}

func (s *HearingService) GetAllHearings() ([]database.Hearing, error) {
	hearings, err := s.hearings.FindAll()
	if err != nil {
		return nil, storage(err)
	}
	return hearings, nil
}

func (s *HearingService) GetHearingsByCase(caseID uint) ([]database.Hearing, error) {
	record, err := s.cases.FindByID(caseID)
	if err != nil {
		return nil, storage(err)
	}
	if record == nil {
		return nil, validationf("case with id %d does not exist", caseID)
	}

	hearings, err := s.hearings.FindByCase(caseID)
	if err != nil {
		return nil, storage(err)
	}
	return hearings, nil
}

func (s *HearingService) GetHearingsByStatus(status database.HearingStatus) ([]database.Hearing, error) {
	hearings, err := s.hearings.FindByStatus(status)
	if err != nil {
		return nil, storage(err)
	}
	return hearings, nil
}

// GetHearingsByDateRange requires both bounds, with start not after end.
func (s *HearingService) GetHearingsByDateRange(start, end time.Time) ([]database.Hearing, error) {
	if start.IsZero() || end.IsZero() {
		return nil, validationf("both start and end dates are required")
	}
	if start.After(end) {
		return nil, validationf("start date must not be after end date")
	}

	hearings, err := s.hearings.FindByDateRange(start.Unix(), end.Unix())
	if err != nil {
		return nil, storage(err)
	}
	return hearings, nil
}

// GetUpcomingHearings returns future hearings, excluding cancelled ones.
func (s *HearingService) GetUpcomingHearings() ([]database.Hearing, error) {
	hearings, err := s.hearings.FindUpcoming(time.Now().Unix())
	if err != nil {
		return nil, storage(err)
	}
	return hearings, nil
}
