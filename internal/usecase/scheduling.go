package usecase

import (
	"errors"
	"strings"
	"time"

	"abrigo_xpto/internal/domain/entities"
)

var (
	ErrInvalidVisitDate     = errors.New("invalid visit date")
	ErrInvalidVisitTime     = errors.New("invalid visit time")
	ErrPastVisitDate        = errors.New("visit date in the past")
	ErrOutsideVisitingHours = errors.New("visit time outside visiting hours")
)

const (
	visitDateLayout = "2006-01-02"
	visitTimeLayout = "15:04"

	// Staff visiting hours. Minutes are free; only the hour is bounded,
	// so 15:59 is still inside the window.
	visitOpeningHour = 9
	visitClosingHour = 15
)

// VisitScheduleValidator normalizes and validates a proposed home-visit slot.
// It is pure with respect to its inputs plus "now"; the clock is injectable
// for tests and defaults to time.Now.
type VisitScheduleValidator struct {
	now func() time.Time
}

func NewVisitScheduleValidator() *VisitScheduleValidator {
	return &VisitScheduleValidator{now: time.Now}
}

// Validate returns the normalized visit or the first rule violation.
// Dates compare as UTC calendar days: same-day visits are allowed.
func (v *VisitScheduleValidator) Validate(date, timeOfDay string) (entities.Visit, error) {
	date = strings.TrimSpace(date)
	timeOfDay = strings.TrimSpace(timeOfDay)

	d, err := time.Parse(visitDateLayout, date)
	if err != nil {
		return entities.Visit{}, ErrInvalidVisitDate
	}
	t, err := time.Parse(visitTimeLayout, timeOfDay)
	if err != nil {
		return entities.Visit{}, ErrInvalidVisitTime
	}

	now := v.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if d.Before(today) {
		return entities.Visit{}, ErrPastVisitDate
	}

	if t.Hour() < visitOpeningHour || t.Hour() > visitClosingHour {
		return entities.Visit{}, ErrOutsideVisitingHours
	}

	return entities.Visit{
		Date: d.Format(visitDateLayout),
		Time: t.Format(visitTimeLayout),
	}, nil
}
