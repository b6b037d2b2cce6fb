// Package core defines the interfaces the dialogue logic depends on.
package core

import (
	"context"
	"time"

	"github.com/book-expert/wod-skill-service/internal/wod"
)

// ContentSource looks up the workout record for a calendar day. An exact-date
// lookup returns the unique matching record, or nil when no workout exists
// for that day.
type ContentSource interface {
	WODForDate(ctx context.Context, day time.Time) (*wod.Record, error)
}

// Clock is the sole time source for relative-day computation, replaceable
// for deterministic tests.
type Clock interface {
	NowUTC() time.Time
	LocalNow() time.Time
	LocalDate() time.Time
}
