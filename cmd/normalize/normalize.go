// Package normalize implements the command that writes the normalized
// Date, Description and Amount rows of a file as CSV.
package normalize

import (
	"context"
	"errors"
	"io"

	"fjacquet/find-overlap/cmd/root"
	"fjacquet/find-overlap/internal/common"
	"fjacquet/find-overlap/internal/container"
	"fjacquet/find-overlap/internal/logging"

	"github.com/spf13/cobra"
)

// Options control one normalize run.
type Options struct {
	Output string
	// Columns and DateFormat are merged into the file's metadata, which is
	// saved before normalizing when either is set.
	Columns    map[string]string
	DateFormat string
}

var opts Options

// Cmd represents the normalize command
var Cmd = &cobra.Command{
	Use:   "normalize FILE",
	Short: "Write the normalized transactions of a file as CSV",
	Long: `Load a file, apply its column metadata and write the rows exactly as they
are compared: truncated amounts and stemmed, stop-word-free descriptions.

--map and --date-format record column metadata next to the file before it is
normalized, so later compare runs pick them up.`,
	Example: `  find-overlap normalize export.csv
  find-overlap normalize bank.csv --map Buchungsdatum=Date --map Betrag=Amount --date-format '%d.%m.%Y' -o out.csv`,
	Args: cobra.ExactArgs(1),
	Run:  normalizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output CSV file (default is stdout)")
	Cmd.Flags().StringToStringVar(&opts.Columns, "map", nil, "Column rename SOURCE=TARGET saved to the file's metadata")
	Cmd.Flags().StringVar(&opts.DateFormat, "date-format", "", "Date layout saved to the file's metadata (strftime or Go layout)")
}

func normalizeFunc(cmd *cobra.Command, args []string) {
	root.Log.Debug("Normalize command called", logging.Field{Key: logging.FieldFile, Value: args[0]})
	if err := Run(cmd.Context(), root.GetContainer(), cmd.OutOrStdout(), args[0], opts); err != nil {
		root.Log.WithError(err).Fatal("Failed to normalize file")
	}
}

// Run normalizes path and writes the rows to o.Output, or to w when no output
// file is given.
func Run(ctx context.Context, c *container.Container, w io.Writer, path string, o Options) error {
	if c == nil {
		return errors.New("application container is not initialized")
	}
	logger := c.GetLogger()

	if len(o.Columns) > 0 || o.DateFormat != "" {
		if err := saveMetadata(c, path, o); err != nil {
			return err
		}
	}

	table, err := c.GetPreparer().PrepareTable(ctx, path)
	if err != nil {
		return err
	}
	transactions := common.TableTransactions(table)
	delimiter := c.GetConfig().DelimiterRune()

	if o.Output == "" {
		return common.WriteTransactions(w, transactions, delimiter)
	}
	if err := common.WriteTransactionsToCSV(transactions, o.Output, delimiter, logger); err != nil {
		return err
	}
	logger.Info("Normalized transactions written",
		logging.Field{Key: logging.FieldOutputFile, Value: o.Output},
		logging.Field{Key: logging.FieldRows, Value: len(transactions)})
	return nil
}

func saveMetadata(c *container.Container, path string, o Options) error {
	meta := c.GetMetaStore()
	custom, err := meta.Load(path)
	if err != nil {
		return err
	}
	if custom.Cols == nil {
		custom.Cols = make(map[string]string, len(o.Columns))
	}
	for from, to := range o.Columns {
		custom.Cols[from] = to
	}
	if o.DateFormat != "" {
		custom.DateFormat = o.DateFormat
	}
	_, err = meta.Save(path, custom)
	return err
}
