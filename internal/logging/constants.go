package logging

// Standardized field names for structured logging.
const (
	FieldFile       = "file_path"
	FieldInputFile  = "input_file"
	FieldPattern    = "pattern"
	FieldCandidate  = "candidate"
	FieldReader     = "reader"
	FieldColumn     = "column"
	FieldOperation  = "operation"
	FieldError      = "error"
	FieldCount      = "count"
	FieldRows       = "rows"
	FieldScore      = "score"
	FieldRunID      = "run_id"
	FieldDelimiter  = "delimiter"
	FieldOutputFile = "output_file"
	FieldExtension  = "extension"
)
