// jvdt scores JVDT instruments from the command line.
//
// Usage:
//
//	jvdt tests
//	jvdt score --test=jvdt-7 --answers=answers.yaml [--format=markdown]
//	jvdt archetypes
//	jvdt validate [definition.yaml ...]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "jvdt",
		Short: "Score and inspect JVDT learning assessments",
		Long:  "jvdt lists the embedded instruments, scores answer files against them\nand checks definition files for structural problems.",
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		SilenceUsage: true,
		Version:      version,
	}
	root.PersistentFlags().String("format", "ascii", "Table format: ascii or markdown")

	root.AddCommand(newTestsCmd())
	root.AddCommand(newScoreCmd())
	root.AddCommand(newArchetypesCmd())
	root.AddCommand(newValidateCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
