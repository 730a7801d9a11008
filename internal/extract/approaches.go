package extract

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/afero"

	"github.com/kianm/neoscout/internal/domain/model"
	"github.com/kianm/neoscout/pkg/timeutil"
)

// Required field names in the close-approach document.
const (
	fieldDesignation = "des"
	fieldCalendar    = "cd"
	fieldDistance    = "dist"
	fieldVelocity    = "v_rel"
)

// cadDocument mirrors the column-indexed layout of the close-approach file:
// "fields" names each column, "data" holds one positional array per row.
type cadDocument struct {
	Fields []string            `json:"fields"`
	Data   [][]json.RawMessage `json:"data"`
}

// LoadApproaches reads close approaches from the JSON document at path.
// Rows come back in file order; fields beyond the required four are ignored.
func LoadApproaches(fs afero.Fs, path string) ([]*model.CloseApproach, error) {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read close-approach data %s: %w", path, err)
	}

	var doc cadDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse close-approach data %s: %w", path, err)
	}

	pos, err := resolveFields(doc.Fields)
	if err != nil {
		return nil, fmt.Errorf("close-approach data %s: %w", path, err)
	}

	approaches := make([]*model.CloseApproach, 0, len(doc.Data))
	for i, row := range doc.Data {
		approach, err := approachFromRow(row, pos)
		if err != nil {
			return nil, fmt.Errorf("close-approach data %s row %d: %w", path, i, err)
		}
		approaches = append(approaches, approach)
	}
	return approaches, nil
}

// cadFields holds positions of the required fields, resolved once from the
// "fields" array and reused for every row.
type cadFields struct {
	designation int
	calendar    int
	distance    int
	velocity    int
}

func resolveFields(fields []string) (cadFields, error) {
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		index[f] = i
	}

	pos := cadFields{}
	for _, req := range []struct {
		name string
		dst  *int
	}{
		{fieldDesignation, &pos.designation},
		{fieldCalendar, &pos.calendar},
		{fieldDistance, &pos.distance},
		{fieldVelocity, &pos.velocity},
	} {
		p, ok := index[req.name]
		if !ok {
			return cadFields{}, fmt.Errorf("%w: field %q", ErrMissingField, req.name)
		}
		*req.dst = p
	}
	return pos, nil
}

func approachFromRow(row []json.RawMessage, pos cadFields) (*model.CloseApproach, error) {
	need := max(pos.designation, pos.calendar, pos.distance, pos.velocity)
	if len(row) <= need {
		return nil, fmt.Errorf("%w: row has %d values", ErrBadValue, len(row))
	}

	designation, err := stringValue(row[pos.designation])
	if err != nil {
		return nil, fmt.Errorf("%w: designation: %v", ErrBadValue, err)
	}

	calendar, err := stringValue(row[pos.calendar])
	if err != nil {
		return nil, fmt.Errorf("%w: calendar date: %v", ErrBadValue, err)
	}
	ts, err := timeutil.ParseCD(calendar)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadValue, err)
	}

	distance, err := floatValue(row[pos.distance])
	if err != nil {
		return nil, fmt.Errorf("%w: distance: %v", ErrBadValue, err)
	}
	if math.IsNaN(distance) || math.IsInf(distance, 0) || distance < 0 {
		return nil, fmt.Errorf("%w: distance %v is not a finite non-negative number", ErrBadValue, distance)
	}

	velocity, err := floatValue(row[pos.velocity])
	if err != nil {
		return nil, fmt.Errorf("%w: velocity: %v", ErrBadValue, err)
	}
	if math.IsNaN(velocity) || math.IsInf(velocity, 0) {
		return nil, fmt.Errorf("%w: velocity %v is not finite", ErrBadValue, velocity)
	}

	return model.NewCloseApproach(designation, ts, distance, velocity), nil
}

// stringValue decodes a raw JSON value that must be a string.
func stringValue(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("want string, got %s", raw)
	}
	return s, nil
}

// floatValue decodes a raw JSON value that is either a number or, as in the
// upstream data set, a number rendered as a string.
func floatValue(raw json.RawMessage) (float64, error) {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("want number, got %s", raw)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("want number, got %q", s)
	}
	return f, nil
}
