// Package clock provides the production time source. The gym publishes
// workouts against its local wall clock, so "today" is computed in the
// configured timezone, not UTC.
package clock

import (
	"fmt"
	"time"
)

// System reads the real time in a fixed location.
type System struct {
	location *time.Location
}

// NewSystem builds a System clock for an IANA timezone name.
func NewSystem(timezone string) (*System, error) {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", timezone, err)
	}

	return &System{location: location}, nil
}

// NowUTC returns the current instant in UTC.
func (s *System) NowUTC() time.Time {
	return time.Now().UTC()
}

// LocalNow returns the current instant in the configured location.
func (s *System) LocalNow() time.Time {
	return time.Now().In(s.location)
}

// LocalDate returns midnight of the current local calendar day.
func (s *System) LocalDate() time.Time {
	now := s.LocalNow()

	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)
}
