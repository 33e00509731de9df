package main

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/martinemde/defparse/defparser"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <design.def>",
	Short: "Print the parsed design as JSON or YAML",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().StringP("format", "f", "json", "Output format: json or yaml")
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	log, err := newLogger()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	d, err := loadDesign(args[0], parseOptions(log))
	if err != nil {
		return err
	}
	return writeDesign(cmd.OutOrStdout(), d, format)
}

// writeDesign encodes d in the requested format.
func writeDesign(w io.Writer, d *defparser.Design, format string) error {
	switch format {
	case "json":
		data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(d, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
}
