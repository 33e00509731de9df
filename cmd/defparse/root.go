package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/martinemde/defparse/defparser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:          "defparse",
	Short:        "DEF design file inspector",
	Long:         "defparse reads Design Exchange Format files and summarizes, dumps or checks the parsed design.",
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("debug", false, "Debug output")
	rootCmd.PersistentFlags().Bool("lenient-counts", false, "Accept sections whose declared count differs from the members found")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("lenient_counts", rootCmd.PersistentFlags().Lookup("lenient-counts"))
}

func initConfig() {
	viper.SetEnvPrefix("DEFPARSE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// newLogger builds the logger handed to the parser. Debug output includes
// one event per parsed section.
func newLogger() (*zap.Logger, error) {
	switch {
	case viper.GetBool("debug"):
		return zap.NewDevelopment()
	case viper.GetBool("verbose"):
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		cfg.OutputPaths = []string{"stderr"}
		return cfg.Build()
	default:
		return zap.NewNop(), nil
	}
}

func parseOptions(log *zap.Logger) []defparser.Option {
	opts := []defparser.Option{defparser.WithLogger(log)}
	if viper.GetBool("lenient_counts") {
		opts = append(opts, defparser.WithLenientCounts())
	}
	return opts
}

// loadDesign reads and parses one DEF file.
func loadDesign(path string, opts []defparser.Option) (*defparser.Design, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading design file: %w", err)
	}
	d, err := defparser.Parse(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return d, nil
}
