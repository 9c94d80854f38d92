package service_test

import (
	"strings"
	"testing"
	"time"

	"github.com/ahmetberacelik/legalcase/internal/database"
	"github.com/ahmetberacelik/legalcase/internal/service"
)

func TestCreateHearingUnknownCase(t *testing.T) {
	f := newFixture(t)

	_, err := f.hearings.CreateHearing(999, time.Now().Add(time.Hour), "Judge", "Room", "")
	if err == nil || !service.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestHearingDateRoundTripsAtSecondPrecision(t *testing.T) {
	f := newFixture(t)
	record := f.mustCreateCase(t, "H-1")

	withNanos := time.Date(2026, 9, 14, 10, 30, 15, 987654321, time.UTC)
	hearing, err := f.hearings.CreateHearing(record.ID, withNanos, "Judge X", "Room 1", "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if hearing.Status != database.HearingStatusScheduled {
		t.Errorf("expected status SCHEDULED, got %s", hearing.Status)
	}

	stored, err := f.hearings.GetHearingByID(hearing.ID)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if !stored.DateTime().Equal(withNanos.Truncate(time.Second)) {
		t.Errorf("expected %v, got %v", withNanos.Truncate(time.Second), stored.DateTime())
	}
	if stored.DateTime().Nanosecond() != 0 {
		t.Errorf("expected whole-second precision, got %d ns", stored.DateTime().Nanosecond())
	}
}

func TestRescheduleHearing(t *testing.T) {
	f := newFixture(t)
	record := f.mustCreateCase(t, "H-2")

	original := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	hearing, err := f.hearings.CreateHearing(record.ID, original, "Judge X", "Room 1", "bring witness list")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Cancel first; reschedule must reset the status
	if _, err := f.hearings.UpdateHearingStatus(hearing.ID, database.HearingStatusCancelled); err != nil {
		t.Fatalf("status update failed: %v", err)
	}

	newDate := time.Date(2026, 10, 15, 14, 0, 0, 0, time.UTC)
	rescheduled, err := f.hearings.RescheduleHearing(hearing.ID, newDate)
	if err != nil {
		t.Fatalf("reschedule failed: %v", err)
	}

	if rescheduled.Status != database.HearingStatusScheduled {
		t.Errorf("expected status SCHEDULED after reschedule, got %s", rescheduled.Status)
	}
	if !rescheduled.DateTime().Equal(newDate) {
		t.Errorf("expected date %v, got %v", newDate, rescheduled.DateTime())
	}
	if !strings.HasPrefix(rescheduled.Notes, "bring witness list") {
		t.Errorf("prior notes not preserved: %q", rescheduled.Notes)
	}
	if !strings.Contains(rescheduled.Notes, "rescheduled from") {
		t.Errorf("audit line missing: %q", rescheduled.Notes)
	}
}

func TestRescheduleHearingValidation(t *testing.T) {
	f := newFixture(t)

	if _, err := f.hearings.RescheduleHearing(999, time.Now()); err == nil || !service.IsValidation(err) {
		t.Errorf("expected validation error for unknown id, got %v", err)
	}

	record := f.mustCreateCase(t, "H-3")
	hearing, err := f.hearings.CreateHearing(record.ID, time.Now().Add(time.Hour), "J", "R", "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.hearings.RescheduleHearing(hearing.ID, time.Time{}); err == nil || !service.IsValidation(err) {
		t.Errorf("expected validation error for zero date, got %v", err)
	}
}

func TestUpdateHearingPartial(t *testing.T) {
	f := newFixture(t)
	record := f.mustCreateCase(t, "H-4")

	hearing, err := f.hearings.CreateHearing(record.ID, time.Now().Add(time.Hour), "Judge A", "Room 1", "note")
	if err != nil {
		t.Fatal(err)
	}

	judge := "Judge B"
	status := database.HearingStatusPostponed
	updated, err := f.hearings.UpdateHearing(hearing.ID, nil, &judge, nil, nil, &status)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.Judge != "Judge B" {
		t.Errorf("judge not updated: %s", updated.Judge)
	}
	if updated.Location != "Room 1" || updated.Notes != "note" {
		t.Errorf("nil fields were overwritten: %+v", updated)
	}
	if updated.Status != database.HearingStatusPostponed {
		t.Errorf("status not applied: %s", updated.Status)
	}
	if updated.Date != hearing.Date {
		t.Errorf("date changed on nil input")
	}
}

func TestHearingStatusMembership(t *testing.T) {
	f := newFixture(t)
	record := f.mustCreateCase(t, "H-7")

	hearing, err := f.hearings.CreateHearing(record.ID, time.Now().Add(time.Hour), "J", "R", "")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := f.hearings.UpdateHearingStatus(hearing.ID, database.HearingStatus("BANANA")); err == nil || !service.IsValidation(err) {
		t.Errorf("expected validation error for unknown status, got %v", err)
	}

	bogus := database.HearingStatus("BANANA")
	if _, err := f.hearings.UpdateHearing(hearing.ID, nil, nil, nil, nil, &bogus); err == nil || !service.IsValidation(err) {
		t.Errorf("expected validation error for unknown status, got %v", err)
	}

	stored, err := f.hearings.GetHearingByID(hearing.ID)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if stored.Status != database.HearingStatusScheduled {
		t.Errorf("rejected update must not change the stored status, got %s", stored.Status)
	}
}

func TestHearingsByDateRange(t *testing.T) {
	f := newFixture(t)
	record := f.mustCreateCase(t, "H-5")

	base := time.Date(2026, 11, 1, 9, 0, 0, 0, time.UTC)
	for _, offset := range []time.Duration{0, 48 * time.Hour, 30 * 24 * time.Hour} {
		if _, err := f.hearings.CreateHearing(record.ID, base.Add(offset), "J", "R", ""); err != nil {
			t.Fatal(err)
		}
	}

	inRange, err := f.hearings.GetHearingsByDateRange(base, base.Add(72*time.Hour))
	if err != nil {
		t.Fatalf("range query failed: %v", err)
	}
	if len(inRange) != 2 {
		t.Errorf("expected 2 hearings in range, got %d", len(inRange))
	}

	if _, err := f.hearings.GetHearingsByDateRange(time.Time{}, base); err == nil || !service.IsValidation(err) {
		t.Errorf("expected validation error for missing bound, got %v", err)
	}
	if _, err := f.hearings.GetHearingsByDateRange(base.Add(time.Hour), base); err == nil || !service.IsValidation(err) {
		t.Errorf("expected validation error for inverted range, got %v", err)
	}
}

func TestUpcomingHearings(t *testing.T) {
	f := newFixture(t)
	record := f.mustCreateCase(t, "H-6")

	past, err := f.hearings.CreateHearing(record.ID, time.Now().Add(-24*time.Hour), "J", "R", "")
	if err != nil {
		t.Fatal(err)
	}

	future, err := f.hearings.CreateHearing(record.ID, time.Now().Add(24*time.Hour), "J", "R", "")
	if err != nil {
		t.Fatal(err)
	}

	cancelled, err := f.hearings.CreateHearing(record.ID, time.Now().Add(48*time.Hour), "J", "R", "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.hearings.UpdateHearingStatus(cancelled.ID, database.HearingStatusCancelled); err != nil {
		t.Fatal(err)
	}

	upcoming, err := f.hearings.GetUpcomingHearings()
	if err != nil {
		t.Fatalf("upcoming query failed: %v", err)
	}
	if len(upcoming) != 1 || upcoming[0].ID != future.ID {
		t.Errorf("expected only the future scheduled hearing, got %+v", upcoming)
	}
	for _, h := range upcoming {
		if h.ID == past.ID {
			t.Errorf("past hearing %d listed as upcoming", past.ID)
		}
		if h.ID == cancelled.ID {
			t.Errorf("cancelled hearing %d listed as upcoming", cancelled.ID)
		}
	}
}

func TestHearingsByCaseValidation(t *testing.T) {
	f := newFixture(t)

	if _, err := f.hearings.GetHearingsByCase(999); err == nil || !service.IsValidation(err) {
		t.Errorf("expected validation error for unknown case, got %v", err)
	}
}

func TestDeleteHearingUnknownID(t *testing.T) {
	f := newFixture(t)

	if err := f.hearings.DeleteHearing(999); err == nil || !service.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}
