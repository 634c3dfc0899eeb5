package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomizations_Renames(t *testing.T) {
	c := Customizations{
		Cols: map[string]string{"Memo": "Description"},
		Columns: []ColumnMeta{
			{Name: "Booked", Rename: "Date", Format: "%d.%m.%Y"},
			{Name: "Memo", Rename: "Text"},
			{Name: "Amount"},
		},
	}

	assert.Equal(t, map[string]string{"Booked": "Date", "Memo": "Description"}, c.Renames())
	assert.Equal(t, "%d.%m.%Y", c.DateLayout())
	assert.False(t, c.IsEmpty())
}

func TestCustomizations_DateLayout(t *testing.T) {
	assert.Equal(t, "", Customizations{}.DateLayout())
	assert.Equal(t, "2006-01-02", Customizations{DateFormat: "2006-01-02"}.DateLayout())
	assert.Equal(t, "%Y-%m-%d", Customizations{Columns: []ColumnMeta{{Name: "Date", Format: "%Y-%m-%d"}}}.DateLayout())
	assert.True(t, Customizations{}.IsEmpty())
}

func TestCustomizations_Apply(t *testing.T) {
	table := RecordTable{"Booked": {"01.02.2023"}, "Text": {"x"}, "Value": {"1"}}
	Customizations{Cols: map[string]string{"Booked": "Date", "Text": "Description", "Value": "Amount"}}.Apply(table)

	assert.Equal(t, []string{"Amount", "Date", "Description"}, table.Columns())
}
