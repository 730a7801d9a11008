package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kianm/neoscout/internal/domain/filter"
	"github.com/kianm/neoscout/pkg/timeutil"
)

// queryFlags mirror the filter predicates one-to-one. Float bounds apply
// only when their flag was set, so zero stays a usable bound value.
type queryFlags struct {
	date      string
	startDate string
	endDate   string

	minDistance float64
	maxDistance float64
	minVelocity float64
	maxVelocity float64
	minDiameter float64
	maxDiameter float64

	hazardous    bool
	notHazardous bool

	limit   int
	outfile string
}

func queryCommand(root *rootFlags) *cobra.Command {
	flags := &queryFlags{}

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Select close approaches and print or export them",
		RunE: func(cmd *cobra.Command, _ []string) error {
			predicates, err := buildPredicates(cmd, flags)
			if err != nil {
				return err
			}

			svc, cfg, err := setup(cmd.Context(), root)
			if err != nil {
				return err
			}

			results := svc.Query(cmd.Context(), predicates...)

			if flags.outfile != "" {
				if cmd.Flags().Changed("limit") {
					results = filter.Limit(results, flags.limit)
				}
				return svc.WriteResults(cmd.Context(), results, flags.outfile)
			}

			limit := cfg.PrintLimit
			if cmd.Flags().Changed("limit") {
				limit = flags.limit
			}
			for _, approach := range filter.Limit(results, limit) {
				fmt.Fprintln(cmd.OutOrStdout(), approach)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.date, "date", "", "approaches on this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.startDate, "start-date", "", "approaches on or after this date")
	cmd.Flags().StringVar(&flags.endDate, "end-date", "", "approaches on or before this date")
	cmd.Flags().Float64Var(&flags.minDistance, "min-distance", 0, "minimum approach distance in au")
	cmd.Flags().Float64Var(&flags.maxDistance, "max-distance", 0, "maximum approach distance in au")
	cmd.Flags().Float64Var(&flags.minVelocity, "min-velocity", 0, "minimum approach velocity in km/s")
	cmd.Flags().Float64Var(&flags.maxVelocity, "max-velocity", 0, "maximum approach velocity in km/s")
	cmd.Flags().Float64Var(&flags.minDiameter, "min-diameter", 0, "minimum NEO diameter in km")
	cmd.Flags().Float64Var(&flags.maxDiameter, "max-diameter", 0, "maximum NEO diameter in km")
	cmd.Flags().BoolVar(&flags.hazardous, "hazardous", false, "only potentially hazardous NEOs")
	cmd.Flags().BoolVar(&flags.notHazardous, "not-hazardous", false, "only non-hazardous NEOs")
	cmd.Flags().IntVar(&flags.limit, "limit", 0, "maximum number of results")
	cmd.Flags().StringVarP(&flags.outfile, "outfile", "o", "", "write results to this .csv or .json file")

	return cmd
}

// buildPredicates translates the changed flags into filter predicates.
func buildPredicates(cmd *cobra.Command, flags *queryFlags) ([]filter.Predicate, error) {
	if flags.hazardous && flags.notHazardous {
		return nil, fmt.Errorf("--hazardous and --not-hazardous are mutually exclusive")
	}

	var predicates []filter.Predicate

	for _, dateFlag := range []struct {
		value string
		build func(time.Time) filter.Predicate
	}{
		{flags.date, filter.OnDate},
		{flags.startDate, filter.StartDate},
		{flags.endDate, filter.EndDate},
	} {
		if dateFlag.value == "" {
			continue
		}
		t, err := timeutil.ParseDate(dateFlag.value)
		if err != nil {
			return nil, err
		}
		predicates = append(predicates, dateFlag.build(t))
	}

	for _, boundFlag := range []struct {
		name  string
		build func(float64) filter.Predicate
	}{
		{"min-distance", filter.MinDistance},
		{"max-distance", filter.MaxDistance},
		{"min-velocity", filter.MinVelocity},
		{"max-velocity", filter.MaxVelocity},
		{"min-diameter", filter.MinDiameter},
		{"max-diameter", filter.MaxDiameter},
	} {
		if !cmd.Flags().Changed(boundFlag.name) {
			continue
		}
		v, err := cmd.Flags().GetFloat64(boundFlag.name)
		if err != nil {
			return nil, err
		}
		predicates = append(predicates, boundFlag.build(v))
	}

	if flags.hazardous {
		predicates = append(predicates, filter.Hazardous(true))
	}
	if flags.notHazardous {
		predicates = append(predicates, filter.Hazardous(false))
	}
	return predicates, nil
}
