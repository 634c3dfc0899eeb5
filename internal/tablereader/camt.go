package tablereader

import (
	"context"
	"strings"

	"fjacquet/find-overlap/internal/models"
	"fjacquet/find-overlap/internal/parsererror"
	"fjacquet/find-overlap/internal/xmlutils"

	"gopkg.in/xmlpath.v2"
)

// Extra columns produced by the CAMT reader next to Date, Description and Amount
const (
	ColumnCurrency     = "Currency"
	ColumnCreditDebit  = "CreditDebit"
	ColumnValueDate    = "ValueDate"
	camtExpectedFormat = "ISO 20022 camt.053 statement"
)

// CamtReader flattens the entries of a camt.053 statement. Debit entries get
// a negative amount.
type CamtReader struct {
	paths xmlutils.CAMT053
}

// NewCamtReader creates a reader with the default camt.053 paths.
func NewCamtReader() *CamtReader {
	return &CamtReader{paths: xmlutils.DefaultCamt053XPaths()}
}

// Read loads the statement at path.
func (r *CamtReader) Read(ctx context.Context, path string) (models.RecordTable, error) {
	root, err := xmlutils.LoadXMLFile(path)
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: camtExpectedFormat,
			Msg:            err.Error(),
		}
	}

	ok, err := xmlutils.Exists(root, r.paths.Statement)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: camtExpectedFormat,
			Msg:            "no BkToCstmrStmt/Stmt element",
		}
	}

	entries, err := xmlutils.Nodes(root, r.paths.Entry)
	if err != nil {
		return nil, err
	}

	columns := []string{
		models.ColumnDate, models.ColumnDescription, models.ColumnAmount,
		ColumnCurrency, ColumnCreditDebit, ColumnValueDate,
	}
	table := models.NewRecordTable()
	for _, name := range columns {
		table[name] = make([]any, 0, len(entries))
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		values, err := r.entryValues(entry)
		if err != nil {
			return nil, err
		}
		for _, name := range columns {
			table[name] = append(table[name], values[name])
		}
	}

	return table, nil
}

func (r *CamtReader) entryValues(entry *xmlpath.Node) (map[string]any, error) {
	get := func(xpath string) (string, error) {
		return xmlutils.FirstValue(entry, xpath)
	}

	values := make(map[string]any, 6)
	amount, err := get(r.paths.Amount)
	if err != nil {
		return nil, err
	}
	indicator, err := get(r.paths.CreditDebitInd)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(indicator, models.TransactionTypeDebit) && amount != "" && !strings.HasPrefix(amount, "-") {
		amount = "-" + amount
	}
	values[models.ColumnAmount] = amount
	values[ColumnCreditDebit] = indicator

	if values[ColumnCurrency], err = get(r.paths.Currency); err != nil {
		return nil, err
	}

	valueDate, err := get(r.paths.ValueDate)
	if err != nil {
		return nil, err
	}
	values[ColumnValueDate] = valueDate

	date, err := get(r.paths.BookingDate)
	if err != nil {
		return nil, err
	}
	if date == "" {
		dateTime, err := get(r.paths.BookingDateTime)
		if err != nil {
			return nil, err
		}
		if len(dateTime) >= 10 {
			date = dateTime[:10]
		}
	}
	if date == "" {
		date = valueDate
	}
	values[models.ColumnDate] = date

	description := ""
	for _, xpath := range r.paths.Descriptions {
		if description, err = get(xpath); err != nil {
			return nil, err
		}
		if description != "" {
			break
		}
	}
	values[models.ColumnDescription] = description

	return values, nil
}
