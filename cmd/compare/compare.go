// Package compare implements the command that ranks candidate files by their
// overlap with an input file.
package compare

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"fjacquet/find-overlap/cmd/root"
	"fjacquet/find-overlap/internal/container"
	"fjacquet/find-overlap/internal/logging"
	"fjacquet/find-overlap/internal/overlap"
	"fjacquet/find-overlap/internal/parsererror"
	"fjacquet/find-overlap/internal/report"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// Options are the inputs of one comparison run.
type Options struct {
	InFile  string
	Pattern string
}

var opts Options

// Cmd represents the compare command
var Cmd = &cobra.Command{
	Use:   "compare",
	Short: "Find the candidate file sharing the most transactions with an input file",
	Long: `Compare the transactions of --in-file with every file matched by the --compare
glob pattern and report the candidate with the highest overlap percentage.

The overlap is the Jaccard similarity of the two transaction sets, scaled to
0-100. On a tie the candidate that sorts first wins.`,
	Example: `  find-overlap compare --in-file export.csv --compare 'archive/*.csv'
  find-overlap compare --in-file export.csv --compare 'archive/*' --skip-invalid --format json`,
	Args: cobra.NoArgs,
	Run:  compareFunc,
}

func init() {
	Cmd.Flags().StringVar(&opts.InFile, "in-file", "", "File whose transactions are searched for")
	Cmd.Flags().StringVar(&opts.Pattern, "compare", "", "Glob pattern of the candidate files")
	Cmd.Flags().Bool("skip-invalid", false, "Skip candidates that fail to load instead of aborting")
	Cmd.Flags().String("format", "", "Report format (text, json, markdown, xml)")
	Cmd.Flags().String("style", "", "Glamour style of the markdown report (raw to disable rendering)")
	_ = Cmd.MarkFlagRequired("in-file")
	_ = Cmd.MarkFlagRequired("compare")
}

func compareFunc(cmd *cobra.Command, args []string) {
	logger := root.Log.WithField(logging.FieldRunID, uuid.NewString())
	logger.Info("Compare command called",
		logging.Field{Key: logging.FieldInputFile, Value: opts.InFile},
		logging.Field{Key: logging.FieldPattern, Value: opts.Pattern})

	if err := Run(cmd.Context(), root.GetContainer(), logger, cmd.OutOrStdout(), opts); err != nil {
		if parsererror.IsFatal(err) {
			logger.WithError(err).Fatal("Input could not be processed")
		}
		logger.WithError(err).Fatal("Comparison failed")
	}
}

// Run performs one comparison and writes the report to w. Progress lines are
// written to w as well, except for the machine-readable formats.
func Run(ctx context.Context, c *container.Container, logger logging.Logger, w io.Writer, o Options) error {
	if c == nil {
		return errors.New("application container is not initialized")
	}
	if o.InFile == "" || o.Pattern == "" {
		return errors.New("both --in-file and --compare are required")
	}

	format := strings.ToLower(c.GetConfig().Report.Format)
	var observer overlap.Observer
	if format == report.FormatText || format == report.FormatMarkdown || format == "" {
		observer = report.NewProgressWriter(w)
	}

	result, err := c.NewSelector(logger, observer).Run(ctx, o.InFile, o.Pattern)
	if err != nil {
		return err
	}

	if result.NoCandidates {
		logger.WithError(parsererror.ErrNoCandidates).Info("Nothing to compare",
			logging.Field{Key: logging.FieldPattern, Value: o.Pattern})
	} else if result.HasMatch() {
		logger.Info("Best match selected",
			logging.Field{Key: logging.FieldCandidate, Value: result.Best.Path},
			logging.Field{Key: logging.FieldScore, Value: result.Best.Score})
	}

	out, err := c.GetReportGenerator().GenerateReport(result, format)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
