package write

import (
	"encoding/json"
	"math"

	"github.com/kianm/neoscout/internal/domain/model"
)

// jsonDiameter marshals a diameter, mapping the NaN sentinel to null.
// encoding/json rejects NaN outright, and the output must stay parseable.
type jsonDiameter float64

func (d jsonDiameter) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(d)) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(d))
}

func (d *jsonDiameter) UnmarshalJSON(raw []byte) error {
	if string(raw) == "null" {
		*d = jsonDiameter(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return err
	}
	*d = jsonDiameter(f)
	return nil
}

// neoRecord is the nested NEO view. Name is the empty string for unnamed
// objects, never omitted.
type neoRecord struct {
	Designation          string       `json:"designation"`
	Name                 string       `json:"name"`
	DiameterKM           jsonDiameter `json:"diameter_km"`
	PotentiallyHazardous bool         `json:"potentially_hazardous"`
}

// approachRecord is one element of the JSON output array. NEO is present
// only when the approach is linked.
type approachRecord struct {
	DatetimeUTC string     `json:"datetime_utc"`
	DistanceAU  float64    `json:"distance_au"`
	VelocityKMS float64    `json:"velocity_km_s"`
	Designation string     `json:"designation"`
	NEO         *neoRecord `json:"neo,omitempty"`
}

func newApproachRecord(approach *model.CloseApproach) approachRecord {
	rec := approachRecord{
		DatetimeUTC: approach.TimeStr(),
		DistanceAU:  approach.Distance,
		VelocityKMS: approach.Velocity,
		Designation: approach.Designation,
	}
	if neo := approach.NEO; neo != nil {
		rec.NEO = &neoRecord{
			Designation:          neo.Designation,
			Name:                 neo.Name,
			DiameterKM:           jsonDiameter(neo.Diameter),
			PotentiallyHazardous: neo.Hazardous,
		}
	}
	return rec
}
