package models

// ColumnMeta describes one column in a metadata file written next to a
// data file: the source column name, the canonical name it is renamed to,
// and an optional value format (used for dates).
type ColumnMeta struct {
	Name   string `json:"name" yaml:"name"`
	Rename string `json:"rename,omitempty" yaml:"rename,omitempty"`
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// Customizations is the per-file metadata applied before validation.
type Customizations struct {
	// Cols maps a source column name to its canonical name.
	Cols map[string]string `json:"cols,omitempty" yaml:"cols,omitempty"`
	// Columns is the list form written by the import tooling.
	Columns []ColumnMeta `json:"columns,omitempty" yaml:"columns,omitempty"`
	// DateFormat is the layout of the Date column, strftime or Go style.
	DateFormat string `json:"date_format,omitempty" yaml:"date_format,omitempty"`
}

// IsEmpty reports whether the customizations change nothing.
func (c Customizations) IsEmpty() bool {
	return len(c.Cols) == 0 && len(c.Columns) == 0 && c.DateFormat == ""
}

// Renames merges Cols and Columns into a single rename map. Entries in Cols
// take precedence.
func (c Customizations) Renames() map[string]string {
	renames := make(map[string]string, len(c.Cols)+len(c.Columns))
	for _, col := range c.Columns {
		if col.Name != "" && col.Rename != "" {
			renames[col.Name] = col.Rename
		}
	}
	for from, to := range c.Cols {
		renames[from] = to
	}
	return renames
}

// DateLayout returns the date format for the Date column: DateFormat when
// set, otherwise the format of the column that ends up named Date.
func (c Customizations) DateLayout() string {
	if c.DateFormat != "" {
		return c.DateFormat
	}
	for _, col := range c.Columns {
		target := col.Rename
		if target == "" {
			target = col.Name
		}
		if target == ColumnDate && col.Format != "" {
			return col.Format
		}
	}
	return ""
}

// Apply renames the table's columns in place.
func (c Customizations) Apply(table RecordTable) {
	if renames := c.Renames(); len(renames) > 0 {
		table.RenameColumns(renames)
	}
}
