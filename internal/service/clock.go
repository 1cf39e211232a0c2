package service

import (
	"time"

	"github.com/limbo/tendril/pkg/entity"
)

// Clock answers "what day is it" in the configured streak timezone.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

func NewClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return Clock{loc: loc, now: time.Now}
}

// WithNow replaces the time source. Intended for tests.
func (c Clock) WithNow(now func() time.Time) Clock {
	c.now = now
	return c
}

func (c Clock) Now() time.Time {
	return c.now().In(c.loc)
}

func (c Clock) Today() entity.Date {
	return entity.DateOf(c.Now())
}
