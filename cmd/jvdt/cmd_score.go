package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jvdt-hub/backend/internal/definitions"
	"github.com/jvdt-hub/backend/internal/format"
	"github.com/jvdt-hub/backend/internal/models"
	"github.com/jvdt-hub/backend/internal/scoring"
)

type scoreFlags struct {
	test       string
	definition string
	answers    string
	asJSON     bool
}

func newScoreCmd() *cobra.Command {
	var flags scoreFlags
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score an answers file against an instrument",
		Long:  "Score reads a YAML or JSON mapping of question id to answer and prints the result.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScore(cmd, flags)
		},
	}
	f := cmd.Flags()
	f.StringVar(&flags.test, "test", "", "Embedded instrument id")
	f.StringVar(&flags.definition, "definition", "", "Definition file to use instead of an embedded instrument")
	f.StringVar(&flags.answers, "answers", "", "Answers file (required)")
	f.BoolVar(&flags.asJSON, "json", false, "Print the raw result as JSON")

	_ = cmd.MarkFlagRequired("answers")
	cmd.MarkFlagsMutuallyExclusive("test", "definition")
	cmd.MarkFlagsOneRequired("test", "definition")
	return cmd
}

func runScore(cmd *cobra.Command, flags scoreFlags) error {
	var (
		def *models.TestDefinition
		err error
	)
	if flags.definition != "" {
		def, err = definitions.LoadFile(flags.definition)
	} else {
		def, err = definitions.Load(flags.test)
	}
	if err != nil {
		return err
	}

	answers, err := readAnswers(flags.answers)
	if err != nil {
		return err
	}

	outcome, err := scoring.NewEngine().Evaluate(def, answers)
	if err != nil {
		return fmt.Errorf("score %s: %w", def.ID, err)
	}

	out := cmd.OutOrStdout()
	if flags.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(outcome)
	}
	fmt.Fprintf(out, "%s (%s)\n\n", def.Title, outcome.Methodology)
	fmt.Fprint(out, format.Outcome(outcome, def, outputMode(cmd)))
	return nil
}

func readAnswers(path string) (models.Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}
	var answers models.Answers
	if err := yaml.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("parse answers %s: %w", path, err)
	}
	if answers == nil {
		return nil, errors.New("answers file is empty")
	}
	return answers, nil
}
