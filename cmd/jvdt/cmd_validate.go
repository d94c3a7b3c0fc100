package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jvdt-hub/backend/internal/definitions"
	"github.com/jvdt-hub/backend/internal/models"
)

func newValidateCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "validate [definition.yaml ...]",
		Short: "Check definitions for structural problems",
		Long:  "Validate reports warnings for the given definition files, or for every embedded instrument when none are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			defs, err := loadForValidation(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			total := 0
			for _, def := range defs {
				warnings := definitions.Validate(def)
				total += len(warnings)
				if len(warnings) == 0 {
					fmt.Fprintf(out, "%s: ok\n", def.ID)
					continue
				}
				fmt.Fprintf(out, "%s: %d warning(s)\n", def.ID, len(warnings))
				for _, w := range warnings {
					fmt.Fprintf(out, "  - %s\n", w)
				}
			}
			if strict && total > 0 {
				return fmt.Errorf("%d warning(s)", total)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when any warning is reported")
	return cmd
}

func loadForValidation(paths []string) ([]*models.TestDefinition, error) {
	if len(paths) == 0 {
		reg, err := definitions.NewRegistry()
		if err != nil {
			return nil, err
		}
		return reg.All(), nil
	}
	defs := make([]*models.TestDefinition, 0, len(paths))
	for _, p := range paths {
		def, err := definitions.LoadFile(p)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}
