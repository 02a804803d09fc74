package content

import (
	"fmt"
	"strings"
	"time"
)

// DefaultClockFormat is the clock icon followed by an RFC 3339 timestamp
const DefaultClockFormat = "\U000F0150 2006-01-02T15:04:05-07:00"

// TimeSource provides the current time
type TimeSource interface {
	Now() time.Time
}

// SystemTime reads the system clock
type SystemTime struct{}

// Now returns time.Now()
func (SystemTime) Now() time.Time {
	return time.Now()
}

// LoadLocation resolves an IANA timezone name.
// An empty name is UTC; an unknown name returns UTC together with the error.
func LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC, fmt.Errorf("unknown timezone %q: %w", name, err)
	}
	return loc, nil
}

// Clock renders the current time each time it is displayed
type Clock struct {
	source   TimeSource
	location *time.Location
	format   string
	epoch    bool
}

// NewClock creates a clock. A nil source reads the system clock, a nil
// location is UTC and an empty format is DefaultClockFormat.
func NewClock(source TimeSource, location *time.Location, format string, epoch bool) *Clock {
	if source == nil {
		source = SystemTime{}
	}
	if location == nil {
		location = time.UTC
	}
	if format == "" {
		format = DefaultClockFormat
	}
	return &Clock{
		source:   source,
		location: location,
		format:   format,
		epoch:    epoch,
	}
}

// Location returns the clock's timezone
func (c *Clock) Location() *time.Location {
	return c.location
}

// String formats the current time
func (c *Clock) String() string {
	now := c.source.Now().In(c.location)
	out := now.Format(c.format)
	if c.epoch {
		out += fmt.Sprintf("  epoch: %d", now.Unix())
	}
	return out
}
