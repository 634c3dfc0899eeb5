package xmlutils

// CAMT053 holds the XPath expressions used to read a CAMT.053 statement.
// Entry fields are relative to an Ntry node.
type CAMT053 struct {
	Statement string
	Entry     string

	Amount          string
	Currency        string
	CreditDebitInd  string
	BookingDate     string
	BookingDateTime string
	ValueDate       string

	// Descriptions are tried in order; the first non-empty value wins.
	Descriptions []string
}

// DefaultCamt053XPaths returns the expressions for ISO 20022 camt.053 files.
func DefaultCamt053XPaths() CAMT053 {
	return CAMT053{
		Statement: "//BkToCstmrStmt/Stmt",
		Entry:     "//Ntry",

		Amount:          "Amt",
		Currency:        "Amt/@Ccy",
		CreditDebitInd:  "CdtDbtInd", // #nosec G101 -- XPath expression, not credentials
		BookingDate:     "BookgDt/Dt",
		BookingDateTime: "BookgDt/DtTm",
		ValueDate:       "ValDt/Dt",

		Descriptions: []string{
			"NtryDtls/TxDtls/RmtInf/Ustrd",
			"AddtlNtryInf",
			"NtryDtls/TxDtls/AddtlTxInf",
		},
	}
}
