package models

// Canonical column names every table must carry after customizations.
const (
	ColumnDate        = "Date"
	ColumnAmount      = "Amount"
	ColumnDescription = "Description"
)

// Credit/debit indicators used by CAMT.053 statements
const (
	TransactionTypeDebit  = "DBIT"
	TransactionTypeCredit = "CRDT"
)

// File permissions
const (
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)

// RequiredColumns returns the columns the schema validator insists on, sorted.
func RequiredColumns() []string {
	return []string{ColumnAmount, ColumnDate, ColumnDescription}
}

// ComparisonFields returns the ordered field list that makes up a Transaction.
func ComparisonFields() []string {
	return []string{ColumnDate, ColumnDescription, ColumnAmount}
}
