// Package write serializes selected close approaches to CSV or JSON.
//
// Each output record carries the approach's own fields plus the linked NEO's
// public attributes. The CSV schema is fixed at seven columns so every row
// has the same width whether or not the approach is linked; the JSON format
// instead omits the "neo" key entirely for unlinked approaches.
package write

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/kianm/neoscout/internal/domain/model"
)

// csvHeader is the fixed output column order.
var csvHeader = []string{
	"datetime_utc",
	"distance_au",
	"velocity_km_s",
	"designation",
	"name",
	"diameter_km",
	"potentially_hazardous",
}

// ToCSV writes the approaches as delimited text at path, creating or
// truncating the destination. An empty input still produces a header-only
// file, never an empty one.
func ToCSV(fs afero.Fs, path string, approaches []*model.CloseApproach) error {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}
	for i, approach := range approaches {
		if err := w.Write(csvRow(approach)); err != nil {
			return fmt.Errorf("write CSV row %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush CSV: %w", err)
	}

	if err := afero.WriteFile(fs, path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("write CSV file %s: %w", path, err)
	}
	return nil
}

// csvRow renders one approach. Unlinked approaches fill the NEO-derived
// columns with their unknown defaults so the column count stays constant.
func csvRow(approach *model.CloseApproach) []string {
	name := ""
	diameter := "NaN"
	hazardous := "False"
	if neo := approach.NEO; neo != nil {
		name = neo.Name
		diameter = formatDiameter(neo.Diameter)
		if neo.Hazardous {
			hazardous = "True"
		}
	}
	return []string{
		approach.TimeStr(),
		formatFloat(approach.Distance),
		formatFloat(approach.Velocity),
		approach.Designation,
		name,
		diameter,
		hazardous,
	}
}

// ToJSON writes the approaches as a JSON array at path, creating or
// truncating the destination. An empty input produces "[]".
func ToJSON(fs afero.Fs, path string, approaches []*model.CloseApproach) error {
	records := make([]approachRecord, 0, len(approaches))
	for _, approach := range approaches {
		records = append(records, newApproachRecord(approach))
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}

	if err := afero.WriteFile(fs, path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write JSON file %s: %w", path, err)
	}
	return nil
}

// formatFloat renders distance and velocity in their shortest exact form.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatDiameter renders diameters with three decimals, "NaN" when unknown.
func formatDiameter(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
