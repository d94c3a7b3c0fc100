package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jvdt-hub/backend/internal/definitions"
	"github.com/jvdt-hub/backend/internal/format"
	"github.com/jvdt-hub/backend/internal/scoring"
)

func newTestsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tests",
		Short: "List the embedded instruments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := definitions.NewRegistry()
			if err != nil {
				return err
			}
			tb := format.NewTable(outputMode(cmd))
			tb.Header("ID", "Title", "Method", "Questions", "Time")
			tb.Columns(format.ColumnConfig{Number: 4, Align: format.AlignRight})
			for _, def := range reg.All() {
				tb.Row(def.ID, def.Title, def.Scoring.Method, def.TotalQuestions(), def.EstimatedTime)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tb.String())
			return nil
		},
	}
}

func newArchetypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archetypes",
		Short: "List the sixteen JVDT-2 learner archetypes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), format.Archetypes(scoring.Archetypes, outputMode(cmd)))
			return nil
		},
	}
}

func outputMode(cmd *cobra.Command) format.Mode {
	s, _ := cmd.Flags().GetString("format")
	return format.ParseMode(s)
}
