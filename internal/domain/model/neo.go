// Package model contains the domain entities passed between layers.
//
// A NearEarthObject maintains a collection of its close approaches, and a
// CloseApproach maintains a reference to its NEO. Both link fields start
// empty; the repository populates them exactly once while building the
// designation lookup, and nothing mutates them afterward.
package model

import (
	"fmt"
	"math"
)

// HazardousMarker is the catalog value that marks an object as potentially
// hazardous. Any other value, including the empty string, means not hazardous.
const HazardousMarker = "Y"

// NearEarthObject is a single object from the NEO catalog.
//
// Designation is the primary identifier and is never empty. Name is the
// optional IAU name; the empty string means the object has none. Diameter is
// in kilometers, with math.NaN() as the unknown sentinel so that an unknown
// size stays distinguishable from a measured zero.
type NearEarthObject struct {
	Designation string
	Name        string
	Diameter    float64
	Hazardous   bool

	// Approaches holds this object's close approaches in extraction order.
	// Populated by repository.New; empty before linking.
	Approaches []*CloseApproach
}

// NewNearEarthObject builds a NEO from already-converted field values.
// An empty name is kept as the absent sentinel.
func NewNearEarthObject(designation, name string, diameter float64, hazardous bool) *NearEarthObject {
	return &NearEarthObject{
		Designation: designation,
		Name:        name,
		Diameter:    diameter,
		Hazardous:   hazardous,
	}
}

// HasName reports whether the object carries an IAU name.
func (n *NearEarthObject) HasName() bool {
	return n.Name != ""
}

// HasDiameter reports whether the diameter is a known measurement.
func (n *NearEarthObject) HasDiameter() bool {
	return !math.IsNaN(n.Diameter)
}

// Fullname renders the designation with the name when one exists,
// e.g. "433 (Eros)", or just "433" for unnamed objects.
func (n *NearEarthObject) Fullname() string {
	if n.HasName() {
		return fmt.Sprintf("%s (%s)", n.Designation, n.Name)
	}
	return n.Designation
}

// String implements fmt.Stringer with an operator-facing summary line.
func (n *NearEarthObject) String() string {
	hazard := "is not"
	if n.Hazardous {
		hazard = "is"
	}
	return fmt.Sprintf("NEO %s has a diameter of %.3f km and %s potentially hazardous.",
		n.Fullname(), n.Diameter, hazard)
}
