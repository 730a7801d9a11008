// Package extract parses the two source files into flat record lists.
//
// LoadNEOs reads the NEO catalog from a CSV file, LoadApproaches reads the
// close-approach data from a column-indexed JSON document. No
// cross-referencing happens here; the repository links the two lists.
//
// Both loaders read the whole file into memory. A single ingestion is a
// bounded one-shot batch, so streaming buys nothing.
package extract

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/afero"

	"github.com/kianm/neoscout/internal/domain/model"
)

// Required catalog columns, resolved by name from the header row.
const (
	colDesignation = "pdes"
	colName        = "name"
	colDiameter    = "diameter"
	colHazardous   = "pha"
)

// LoadNEOs reads near-Earth objects from the CSV catalog at path.
// Rows come back in file order; columns beyond the required four are ignored.
func LoadNEOs(fs afero.Fs, path string) ([]*model.NearEarthObject, error) {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read NEO catalog %s: %w", path, err)
	}

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse NEO catalog %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: NEO catalog %s has no header row", ErrMissingField, path)
	}

	cols, err := resolveColumns(records[0])
	if err != nil {
		return nil, fmt.Errorf("NEO catalog %s: %w", path, err)
	}

	neos := make([]*model.NearEarthObject, 0, len(records)-1)
	for i, row := range records[1:] {
		neo, err := neoFromRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("NEO catalog %s row %d: %w", path, i+1, err)
		}
		neos = append(neos, neo)
	}
	return neos, nil
}

// neoColumns holds header positions of the required catalog columns.
type neoColumns struct {
	designation int
	name        int
	diameter    int
	hazardous   int
}

func resolveColumns(header []string) (neoColumns, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[h] = i
	}

	cols := neoColumns{}
	for _, req := range []struct {
		name string
		dst  *int
	}{
		{colDesignation, &cols.designation},
		{colName, &cols.name},
		{colDiameter, &cols.diameter},
		{colHazardous, &cols.hazardous},
	} {
		pos, ok := index[req.name]
		if !ok {
			return neoColumns{}, fmt.Errorf("%w: column %q", ErrMissingField, req.name)
		}
		*req.dst = pos
	}
	return cols, nil
}

func neoFromRow(row []string, cols neoColumns) (*model.NearEarthObject, error) {
	need := max(cols.designation, cols.name, cols.diameter, cols.hazardous)
	if len(row) <= need {
		return nil, fmt.Errorf("%w: row has %d columns", ErrBadValue, len(row))
	}

	diameter := math.NaN()
	if raw := row[cols.diameter]; raw != "" {
		d, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: diameter %q", ErrBadValue, raw)
		}
		diameter = d
	}

	return model.NewNearEarthObject(
		row[cols.designation],
		row[cols.name],
		diameter,
		row[cols.hazardous] == model.HazardousMarker,
	), nil
}
