package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLogger_DerivedLoggersShareEntries(t *testing.T) {
	root := NewMockLogger()
	child := root.WithField(FieldRunID, "abc")

	child.Info("scored", Field{Key: FieldScore, Value: 75.0})
	child.WithError(errors.New("boom")).Warn("skipped")

	entries := root.GetEntries()
	require.Len(t, entries, 2)

	assert.Equal(t, "INFO", entries[0].Level)
	assert.Equal(t, []Field{{Key: FieldRunID, Value: "abc"}, {Key: FieldScore, Value: 75.0}}, entries[0].Fields)
	assert.Nil(t, entries[0].Error)

	assert.Equal(t, "WARN", entries[1].Level)
	assert.EqualError(t, entries[1].Error, "boom")
}

func TestMockLogger_Queries(t *testing.T) {
	m := &MockLogger{}
	m.Debug("loading")
	m.Error("candidate failed validation")
	m.Fatalf("exit %d", 1)

	assert.True(t, m.HasEntry("DEBUG", "loading"))
	assert.False(t, m.HasEntry("INFO", "loading"))
	assert.True(t, m.HasEntryContaining("ERROR", "validation"))
	assert.True(t, m.HasEntry("FATAL", "exit 1"))
	assert.Len(t, m.GetEntriesByLevel("ERROR"), 1)

	m.Clear()
	assert.Empty(t, m.GetEntries())
}
