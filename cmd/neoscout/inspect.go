package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kianm/neoscout/internal/domain/model"
)

func inspectCommand(root *rootFlags) *cobra.Command {
	var (
		pdes    string
		name    string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show one NEO by designation or name",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if (pdes == "") == (name == "") {
				return fmt.Errorf("exactly one of --pdes or --name is required")
			}

			svc, _, err := setup(cmd.Context(), root)
			if err != nil {
				return err
			}

			var neo *model.NearEarthObject
			if pdes != "" {
				neo = svc.InspectByDesignation(pdes)
			} else {
				neo = svc.InspectByName(name)
			}
			if neo == nil {
				return fmt.Errorf("no matching NEO found")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, neo)
			if verbose {
				for _, approach := range neo.Approaches {
					fmt.Fprintf(out, "- %s\n", approach)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pdes, "pdes", "", "primary designation of the NEO")
	cmd.Flags().StringVar(&name, "name", "", "IAU name of the NEO")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also list the NEO's close approaches")

	return cmd
}
