package model

import (
	"fmt"
	"time"

	"github.com/kianm/neoscout/pkg/timeutil"
)

// CloseApproach is a single close approach to Earth by an NEO.
//
// Designation is a foreign key into the NEO catalog and may reference an
// object absent from the loaded set. Time is the approach instant in UTC,
// Distance the nominal approach distance in astronomical units, Velocity the
// relative velocity in km/s.
type CloseApproach struct {
	Designation string
	Time        time.Time
	Distance    float64
	Velocity    float64

	// NEO is the linked catalog object. Nil until repository.New resolves
	// the designation; stays nil when no catalog entry matches.
	NEO *NearEarthObject
}

// NewCloseApproach builds a close approach from already-converted values.
func NewCloseApproach(designation string, t time.Time, distance, velocity float64) *CloseApproach {
	return &CloseApproach{
		Designation: designation,
		Time:        t,
		Distance:    distance,
		Velocity:    velocity,
	}
}

// TimeStr renders the approach time in the canonical calendar-date form
// used by both output formats.
func (a *CloseApproach) TimeStr() string {
	return timeutil.FormatCD(a.Time)
}

// Fullname is the linked NEO's full name, or the bare designation when the
// approach is unlinked.
func (a *CloseApproach) Fullname() string {
	if a.NEO != nil {
		return a.NEO.Fullname()
	}
	return a.Designation
}

// String implements fmt.Stringer with an operator-facing summary line.
func (a *CloseApproach) String() string {
	return fmt.Sprintf("On %s, '%s' approaches Earth at a distance of %.2f au and a velocity of %.2f km/s.",
		a.TimeStr(), a.Fullname(), a.Distance, a.Velocity)
}
