package models

import "encoding/xml"

// Comparison is the score of one candidate against the input file.
type Comparison struct {
	Path         string  `json:"path" xml:"path,attr"`
	Score        float64 `json:"score" xml:"score,attr"`
	Transactions int     `json:"transactions" xml:"transactions,attr"`
}

// SkippedCandidate is a candidate excluded from ranking because it failed to
// load or validate while skipping was enabled.
type SkippedCandidate struct {
	Path   string `json:"path" xml:"path,attr"`
	Reason string `json:"reason" xml:",chardata"`
}

// MatchResult is the outcome of ranking candidates against one input.
type MatchResult struct {
	XMLName           xml.Name           `json:"-" xml:"overlapReport"`
	Input             string             `json:"input" xml:"input"`
	Pattern           string             `json:"pattern,omitempty" xml:"pattern,omitempty"`
	InputTransactions int                `json:"input_transactions" xml:"inputTransactions"`
	Comparisons       []Comparison       `json:"comparisons" xml:"comparisons>comparison"`
	Skipped           []SkippedCandidate `json:"skipped,omitempty" xml:"skipped>candidate,omitempty"`
	Best              *Comparison        `json:"best,omitempty" xml:"best,omitempty"`
	// NoCandidates is set when the candidate list was empty.
	NoCandidates bool `json:"no_candidates" xml:"noCandidates"`
}

// HasMatch reports whether a best candidate was selected.
func (r *MatchResult) HasMatch() bool {
	return r != nil && r.Best != nil
}
