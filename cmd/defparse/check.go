package main

import (
	"fmt"
	"io"

	"github.com/martinemde/defparse/defparser"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <design.def>...",
	Short: "Parse DEF files and report lint diagnostics",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Bool("warnings-as-errors", false, "Fail on warnings as well as errors")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("warnings-as-errors")

	log, err := newLogger()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	failed := 0
	for _, path := range args {
		d, err := loadDesign(path, parseOptions(log))
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
			failed++
			continue
		}
		if !checkDesign(cmd.OutOrStdout(), path, d, strict) {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed", failed, len(args))
	}
	return nil
}

// checkDesign prints the diagnostics for d and reports whether it passes.
func checkDesign(w io.Writer, path string, d *defparser.Design, strict bool) bool {
	diags, err := defparser.ValidateOrError(d)
	for _, diag := range diags {
		fmt.Fprintf(w, "%s: %s\n", path, diag)
	}
	if err != nil {
		return false
	}
	if strict {
		for _, diag := range diags {
			if diag.Severity == defparser.Warning {
				return false
			}
		}
	}
	if len(diags) == 0 {
		fmt.Fprintf(w, "%s: ok\n", path)
	}
	return true
}
