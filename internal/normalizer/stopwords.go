package normalizer

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

//go:embed stopwords/english.txt
var englishStopWords string

// StopWordSet is a set of lowercase tokens dropped during description
// normalization.
type StopWordSet map[string]struct{}

// NewStopWordSet builds a set from the given words, lowercased.
func NewStopWordSet(words ...string) StopWordSet {
	set := make(StopWordSet, len(words))
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

// Contains reports whether word is a stop word.
func (s StopWordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// StopWords returns the embedded English stop-word list. It is parsed once
// per process.
var StopWords = sync.OnceValue(func() StopWordSet {
	set, err := ReadStopWords(strings.NewReader(englishStopWords))
	if err != nil {
		panic(fmt.Sprintf("embedded stop words: %v", err))
	}
	return set
})

// ReadStopWords reads one word per line. Blank lines and lines starting with
// '#' are ignored.
func ReadStopWords(r io.Reader) (StopWordSet, error) {
	set := make(StopWordSet)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set[strings.ToLower(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return set, nil
}

// LoadStopWordsFile reads a stop-word list from path.
func LoadStopWordsFile(path string) (StopWordSet, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("failed to open stop words file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	set, err := ReadStopWords(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read stop words file %s: %w", path, err)
	}
	return set, nil
}
