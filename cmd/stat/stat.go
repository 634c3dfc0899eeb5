// Package stat implements the command that summarizes one transaction file.
package stat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"fjacquet/find-overlap/cmd/root"
	"fjacquet/find-overlap/internal/container"
	"fjacquet/find-overlap/internal/logging"
	"fjacquet/find-overlap/internal/models"
	"fjacquet/find-overlap/internal/normalizer"
	"fjacquet/find-overlap/internal/stats"

	"github.com/spf13/cobra"
)

var jsonOutput bool

// Cmd represents the stat command
var Cmd = &cobra.Command{
	Use:   "stat FILE",
	Short: "Print the row count, date range and amount totals of a file",
	Long: `Print a summary of one transaction file: its columns, row count, the
earliest and latest Date and the count, minimum, maximum, sum and mean of the
Amount column. Column renames from the file's metadata are applied first.`,
	Args: cobra.ExactArgs(1),
	Run:  statFunc,
}

func init() {
	Cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the summary as JSON")
}

func statFunc(cmd *cobra.Command, args []string) {
	root.Log.Debug("Stat command called", logging.Field{Key: logging.FieldFile, Value: args[0]})
	if err := Run(cmd.Context(), root.GetContainer(), cmd.OutOrStdout(), args[0], jsonOutput); err != nil {
		root.Log.WithError(err).Fatal("Failed to summarize file")
	}
}

// Run summarizes path and writes the summary to w.
func Run(ctx context.Context, c *container.Container, w io.Writer, path string, asJSON bool) error {
	if c == nil {
		return errors.New("application container is not initialized")
	}

	table, err := c.GetReaders().Read(ctx, path)
	if err != nil {
		return err
	}
	custom, err := c.GetMetaStore().Load(path)
	if err != nil {
		return err
	}
	custom.Apply(table)
	if layout := custom.DateLayout(); layout != "" {
		normalizer.DateNormalizer{Layout: layout}.NormalizeColumn(table, models.ColumnDate)
	}

	summary := stats.Summarize(table)
	if asJSON {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode summary: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}
	_, err = io.WriteString(w, formatSummary(path, summary))
	return err
}

func formatSummary(path string, s stats.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "File:     %s\n", path)
	fmt.Fprintf(&b, "Columns:  %s\n", strings.Join(s.Columns, ", "))
	fmt.Fprintf(&b, "Rows:     %d\n", s.Rows)
	if s.DateMin != "" {
		fmt.Fprintf(&b, "Dates:    %s to %s\n", s.DateMin, s.DateMax)
	}
	if s.UnparsedDates > 0 {
		fmt.Fprintf(&b, "Unparsed dates: %d\n", s.UnparsedDates)
	}
	if s.AmountCount > 0 {
		fmt.Fprintf(&b, "Amounts:  %d (min %s, max %s, sum %s, mean %s)\n",
			s.AmountCount, s.AmountMin, s.AmountMax, s.AmountSum, s.AmountMean)
	}
	if s.UnparsedAmount > 0 {
		fmt.Fprintf(&b, "Unparsed amounts: %d\n", s.UnparsedAmount)
	}
	return b.String()
}
