// Package filter provides predicates for selecting close approaches.
//
// Predicates compose by conjunction: Apply keeps an approach only when every
// predicate passes. Predicates that read NEO attributes (diameter, hazardous)
// reject unlinked approaches, since the attribute is unknowable.
package filter

import (
	"time"

	"github.com/kianm/neoscout/internal/domain/model"
)

// Predicate reports whether a close approach matches a selection criterion.
type Predicate func(*model.CloseApproach) bool

// Apply returns the approaches matching every predicate, preserving order.
// With no predicates it returns the input unchanged.
func Apply(approaches []*model.CloseApproach, predicates ...Predicate) []*model.CloseApproach {
	if len(predicates) == 0 {
		return approaches
	}
	matched := make([]*model.CloseApproach, 0, len(approaches))
	for _, approach := range approaches {
		ok := true
		for _, p := range predicates {
			if !p(approach) {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, approach)
		}
	}
	return matched
}

// Limit returns at most n approaches from the front of the slice.
// n <= 0 means no limit.
func Limit(approaches []*model.CloseApproach, n int) []*model.CloseApproach {
	if n <= 0 || n >= len(approaches) {
		return approaches
	}
	return approaches[:n]
}

// OnDate matches approaches occurring on the given UTC calendar day.
func OnDate(date time.Time) Predicate {
	y, m, d := date.UTC().Date()
	return func(a *model.CloseApproach) bool {
		ay, am, ad := a.Time.UTC().Date()
		return ay == y && am == m && ad == d
	}
}

// StartDate matches approaches on or after the given UTC calendar day.
func StartDate(date time.Time) Predicate {
	start := midnight(date)
	return func(a *model.CloseApproach) bool {
		return !a.Time.Before(start)
	}
}

// EndDate matches approaches on or before the given UTC calendar day.
func EndDate(date time.Time) Predicate {
	end := midnight(date).AddDate(0, 0, 1)
	return func(a *model.CloseApproach) bool {
		return a.Time.Before(end)
	}
}

// MinDistance matches approaches at or beyond the given distance in au.
func MinDistance(au float64) Predicate {
	return func(a *model.CloseApproach) bool {
		return a.Distance >= au
	}
}

// MaxDistance matches approaches at or within the given distance in au.
func MaxDistance(au float64) Predicate {
	return func(a *model.CloseApproach) bool {
		return a.Distance <= au
	}
}

// MinVelocity matches approaches at or above the given velocity in km/s.
func MinVelocity(kms float64) Predicate {
	return func(a *model.CloseApproach) bool {
		return a.Velocity >= kms
	}
}

// MaxVelocity matches approaches at or below the given velocity in km/s.
func MaxVelocity(kms float64) Predicate {
	return func(a *model.CloseApproach) bool {
		return a.Velocity <= kms
	}
}

// MinDiameter matches approaches whose linked NEO has a known diameter of at
// least km kilometers. Unlinked approaches and unknown diameters never match.
func MinDiameter(km float64) Predicate {
	return func(a *model.CloseApproach) bool {
		return a.NEO != nil && a.NEO.HasDiameter() && a.NEO.Diameter >= km
	}
}

// MaxDiameter matches approaches whose linked NEO has a known diameter of at
// most km kilometers. Unlinked approaches and unknown diameters never match.
func MaxDiameter(km float64) Predicate {
	return func(a *model.CloseApproach) bool {
		return a.NEO != nil && a.NEO.HasDiameter() && a.NEO.Diameter <= km
	}
}

// Hazardous matches approaches whose linked NEO's hazard flag equals want.
// Unlinked approaches never match either polarity.
func Hazardous(want bool) Predicate {
	return func(a *model.CloseApproach) bool {
		return a.NEO != nil && a.NEO.Hazardous == want
	}
}

func midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
