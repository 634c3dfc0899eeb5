package models

// Transaction is the comparable (Date, Description, Amount) triple of one row.
// Fields hold the canonical text of the normalized values so that the struct
// can be used as a map key.
type Transaction struct {
	Date        string `csv:"Date" json:"date"`
	Description string `csv:"Description" json:"description"`
	Amount      string `csv:"Amount" json:"amount"`
}

// TransactionSet is an unordered set of transactions without duplicates.
type TransactionSet map[Transaction]struct{}

// NewTransactionSet builds a set from the given transactions.
func NewTransactionSet(transactions ...Transaction) TransactionSet {
	set := make(TransactionSet, len(transactions))
	for _, tx := range transactions {
		set.Add(tx)
	}
	return set
}

// Add inserts tx; adding an existing member is a no-op.
func (s TransactionSet) Add(tx Transaction) {
	s[tx] = struct{}{}
}

// Contains reports whether tx is a member.
func (s TransactionSet) Contains(tx Transaction) bool {
	_, ok := s[tx]
	return ok
}

// Len returns the number of distinct transactions.
func (s TransactionSet) Len() int {
	return len(s)
}

// IntersectionSize returns |s ∩ other|.
func (s TransactionSet) IntersectionSize(other TransactionSet) int {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	count := 0
	for tx := range small {
		if large.Contains(tx) {
			count++
		}
	}
	return count
}

// UnionSize returns |s ∪ other|.
func (s TransactionSet) UnionSize(other TransactionSet) int {
	return len(s) + len(other) - s.IntersectionSize(other)
}

// Equal reports whether both sets hold the same members.
func (s TransactionSet) Equal(other TransactionSet) bool {
	return len(s) == len(other) && s.IntersectionSize(other) == len(s)
}
