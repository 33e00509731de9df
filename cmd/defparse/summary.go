package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/martinemde/defparse/defparser"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <design.def>...",
	Short: "Print section counts for one or more DEF files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().IntP("jobs", "j", 4, "Number of files parsed concurrently")
	rootCmd.AddCommand(summaryCmd)
}

// fileSummary is the parsed shape of one input file.
type fileSummary struct {
	Path     string
	Design   string
	Sections []defparser.SectionInfo
}

func runSummary(cmd *cobra.Command, args []string) error {
	jobs, _ := cmd.Flags().GetInt("jobs")

	log, err := newLogger()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	summaries, err := summarize(cmd.Context(), args, jobs, parseOptions(log))
	if err != nil {
		return err
	}
	log.Info("summarized designs", zap.Int("files", len(summaries)))
	renderSummary(cmd.OutOrStdout(), summaries)
	return nil
}

// summarize parses paths with at most jobs files in flight. Results keep
// the order of paths; the first failure cancels the rest.
func summarize(ctx context.Context, paths []string, jobs int, opts []defparser.Option) ([]fileSummary, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if jobs < 1 {
		jobs = 1
	}
	out := make([]fileSummary, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := loadDesign(path, opts)
			if err != nil {
				return err
			}
			out[i] = fileSummary{Path: path, Design: d.Config.Name, Sections: d.Sections()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func renderSummary(w io.Writer, summaries []fileSummary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"File", "Design", "Section", "Declared", "Parsed"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	for _, s := range summaries {
		rows := lo.Map(s.Sections, func(info defparser.SectionInfo, _ int) []string {
			return []string{s.Path, s.Design, info.Name, strconv.Itoa(info.Declared), strconv.Itoa(info.Parsed)}
		})
		if len(rows) == 0 {
			rows = [][]string{{s.Path, s.Design, "-", "0", "0"}}
		}
		table.AppendBulk(rows)
	}
	table.Render()
}
