// Package common provides the CSV export shared by the commands.
package common

import (
	"encoding/csv"
	"fmt"
	"io"

	"fjacquet/find-overlap/internal/fileutils"
	"fjacquet/find-overlap/internal/logging"
	"fjacquet/find-overlap/internal/models"

	"github.com/gocarina/gocsv"
)

// TableTransactions returns one Transaction per row of a normalized table,
// in row order and without removing duplicates.
func TableTransactions(table models.RecordTable) []models.Transaction {
	rows := len(table[models.ColumnDate])
	transactions := make([]models.Transaction, 0, rows)
	for row := 0; row < rows; row++ {
		transactions = append(transactions, models.Transaction{
			Date:        models.FormatValue(table.Value(models.ColumnDate, row)),
			Description: models.FormatValue(table.Value(models.ColumnDescription, row)),
			Amount:      models.FormatValue(table.Value(models.ColumnAmount, row)),
		})
	}
	return transactions
}

// WriteTransactions writes transactions as CSV with a header row.
func WriteTransactions(w io.Writer, transactions []models.Transaction, delimiter rune) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = delimiter

	if err := gocsv.MarshalCSV(transactions, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteTransactionsToCSV writes transactions to csvFile, creating parent
// directories as needed.
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string, delimiter rune, logger logging.Logger) error {
	if logger == nil {
		logger = logging.GetLogger()
	}

	file, err := fileutils.CreateFile(csvFile, models.PermissionDirectory)
	if err != nil {
		logger.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := WriteTransactions(file, transactions, delimiter); err != nil {
		logger.WithError(err).Error("Failed to marshal transactions to CSV")
		return err
	}

	logger.Info("Wrote transactions to CSV file",
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
		logging.Field{Key: logging.FieldDelimiter, Value: string(delimiter)})
	return nil
}
