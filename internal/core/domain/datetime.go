package domain

import (
	"fmt"
	"time"
)

// Datetime holds calendar fields as seen in a particular UTC offset or time zone.
type Datetime struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
}

// DatetimeOf converts t into calendar fields in t's location.
func DatetimeOf(t time.Time) Datetime {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	return Datetime{
		Year:   year,
		Month:  month,
		Day:    day,
		Hour:   hour,
		Minute: minute,
		Second: second,
	}
}

// Date formats the calendar date as YYYY-MM-DD.
func (d Datetime) Date() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Datetime) String() string {
	return fmt.Sprintf("%s %02d:%02d:%02d", d.Date(), d.Hour, d.Minute, d.Second)
}
