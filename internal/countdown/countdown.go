// Package countdown turns a life expectancy into the remaining time shown on
// the station's home screen. It is read-only and never touches the store.
package countdown

import (
	"fmt"
	"time"

	"github.com/roach88/terminus/internal/record"
)

const (
	day   = 24 * time.Hour
	month = 30 * day
	year  = 365 * day
)

// Remaining is the time left until the deadline, split into display units.
//
// Units are fixed-length: a year is 365 days and a month is 30 days. Days is
// the remainder after whole 30-day months, so Years*365 + Months*30 + Days
// does not in general add back up to the total.
type Remaining struct {
	Years   int `json:"years"`
	Months  int `json:"months"`
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`

	// Expired is true once the deadline has passed; every unit is then zero.
	Expired bool `json:"expired"`

	// Deadline is the birth date plus the expected number of calendar years.
	Deadline time.Time `json:"deadline"`
}

// Deadline returns birthDate + Years calendar years, at midnight UTC.
func Deadline(le record.LifeExpectancy) (time.Time, error) {
	if err := le.Validate(); err != nil {
		return time.Time{}, err
	}
	birth, err := le.BirthDate.Time()
	if err != nil {
		return time.Time{}, err
	}
	return birth.AddDate(le.Years, 0, 0), nil
}

// Compute returns the time remaining from now until the deadline.
func Compute(le record.LifeExpectancy, now time.Time) (Remaining, error) {
	deadline, err := Deadline(le)
	if err != nil {
		return Remaining{}, fmt.Errorf("compute countdown: %w", err)
	}

	// Whole milliseconds; time.Duration saturates at about 292 years.
	diff := deadline.UnixMilli() - now.UnixMilli()
	if diff <= 0 {
		return Remaining{Expired: true, Deadline: deadline}, nil
	}

	return Remaining{
		Years:    int(diff / year.Milliseconds()),
		Months:   int(diff % year.Milliseconds() / month.Milliseconds()),
		Days:     int(diff % month.Milliseconds() / day.Milliseconds()),
		Hours:    int(diff % day.Milliseconds() / time.Hour.Milliseconds()),
		Minutes:  int(diff % time.Hour.Milliseconds() / time.Minute.Milliseconds()),
		Deadline: deadline,
	}, nil
}

// String renders the remainder the way the home screen lays it out.
func (r Remaining) String() string {
	if r.Expired {
		return "0 years 0 months 0 days 0 hours 0 minutes (expired)"
	}
	return fmt.Sprintf("%d years %d months %d days %d hours %d minutes",
		r.Years, r.Months, r.Days, r.Hours, r.Minutes)
}
