// Package clock supplies the current date to compilations.
package clock

import (
	"math"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/quire/internal/core/domain"
)

const (
	secondsPerHour = 3600
	secondsPerDay  = 86400
	maxYear        = 9999
)

// Clock returns either a fixed instant, for reproducible builds, or the wall-clock instant
// captured on the first read of each cycle.
type Clock struct {
	fixed    bool
	source   clockwork.Clock
	mu       sync.Mutex
	instant  time.Time
	captured bool
}

// NewFixed creates a clock that always returns t.
func NewFixed(t time.Time) *Clock {
	return &Clock{fixed: true, instant: t.UTC(), captured: true}
}

// NewLazy creates a clock reading source once per cycle. A nil source uses the real clock.
func NewLazy(source clockwork.Clock) *Clock {
	if source == nil {
		source = clockwork.NewRealClock()
	}
	return &Clock{source: source}
}

// Fixed reports whether the clock returns a fixed instant.
func (c *Clock) Fixed() bool {
	return c.fixed
}

// Now returns the date of the clock's instant. A nil offset selects the local time zone; otherwise
// the instant is shifted by offset hours from UTC. It reports false when the offset is a day or more
// or the resulting date cannot be represented.
func (c *Clock) Now(offset *int64) (domain.Datetime, bool) {
	now := c.now()

	var at time.Time
	if offset == nil {
		at = now.In(time.Local)
	} else {
		hours := *offset
		if hours > math.MaxInt32 || hours < math.MinInt32 {
			return domain.Datetime{}, false
		}
		seconds := hours * secondsPerHour
		if seconds <= -secondsPerDay || seconds >= secondsPerDay {
			return domain.Datetime{}, false
		}
		at = now.In(time.FixedZone("", int(seconds)))
	}

	if year := at.Year(); year < -maxYear || year > maxYear {
		return domain.Datetime{}, false
	}
	return domain.DatetimeOf(at), true
}

// Reset forgets the instant captured in the current cycle. Fixed clocks are unaffected.
func (c *Clock) Reset() {
	if c.fixed {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.captured = false
}

func (c *Clock) now() time.Time {
	if c.fixed {
		return c.instant
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.captured {
		c.instant = c.source.Now().UTC()
		c.captured = true
	}
	return c.instant
}
