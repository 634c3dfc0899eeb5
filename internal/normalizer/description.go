package normalizer

import (
	"strings"
	"unicode"

	"fjacquet/find-overlap/internal/models"

	"github.com/kljensen/snowball/english"
	"github.com/mozillazg/go-unidecode"
)

// DescriptionNormalizer reduces free text to a signature of stemmed tokens.
type DescriptionNormalizer struct {
	stopWords   StopWordSet
	foldAccents bool
}

// DescriptionOption configures a DescriptionNormalizer.
type DescriptionOption func(*DescriptionNormalizer)

// WithStopWords replaces the default English stop words.
func WithStopWords(set StopWordSet) DescriptionOption {
	return func(n *DescriptionNormalizer) {
		n.stopWords = set
	}
}

// WithAccentFolding transliterates text to ASCII before tokenizing.
func WithAccentFolding(enabled bool) DescriptionOption {
	return func(n *DescriptionNormalizer) {
		n.foldAccents = enabled
	}
}

// NewDescriptionNormalizer creates a normalizer using StopWords unless
// overridden.
func NewDescriptionNormalizer(opts ...DescriptionOption) *DescriptionNormalizer {
	n := &DescriptionNormalizer{}
	for _, opt := range opts {
		opt(n)
	}
	if n.stopWords == nil {
		n.stopWords = StopWords()
	}
	return n
}

// Normalize lowercases text, splits it into word tokens, drops stop words
// and stems what is left. Token order is preserved.
func (n *DescriptionNormalizer) Normalize(text string) string {
	if n.foldAccents {
		text = unidecode.Unidecode(text)
	}
	tokens := strings.FieldsFunc(strings.ToLower(text), isSeparator)

	kept := tokens[:0]
	for _, tok := range tokens {
		if n.stopWords.Contains(tok) {
			continue
		}
		kept = append(kept, english.Stem(tok, true))
	}
	return strings.Join(kept, " ")
}

// NormalizeColumn replaces every value of column with its signature.
// Non-string values are rendered to text first.
func (n *DescriptionNormalizer) NormalizeColumn(table models.RecordTable, column string) {
	values, ok := table[column]
	if !ok {
		return
	}
	for row, v := range values {
		values[row] = n.Normalize(models.FormatValue(v))
	}
}

// NormalizeDescriptions normalizes column with the default English rules.
func NormalizeDescriptions(table models.RecordTable, column string) {
	NewDescriptionNormalizer().NormalizeColumn(table, column)
}

func isSeparator(r rune) bool {
	return !(unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_')
}
