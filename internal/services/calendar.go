package services

import (
	"time"

	"gorm.io/gorm"
)

// calendar carries the zone and clock used for calendar-day rules.
type calendar struct {
	loc *time.Location
	now func() time.Time
}

func newCalendar(loc *time.Location, opts []Option) calendar {
	if loc == nil {
		loc = time.Local
	}
	c := calendar{loc: loc, now: time.Now}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c calendar) today() time.Time {
	return c.now().In(c.loc)
}

type Option func(*calendar)

// WithClock replaces time.Now as the source of the current time.
func WithClock(now func() time.Time) Option {
	return func(c *calendar) {
		c.now = now
	}
}

func tasksInOrder(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}
