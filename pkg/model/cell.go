// pkg/model/cell.go
package model

// Cell is one field value within one row. Valid distinguishes a present
// value (including the empty string) from the canonical "no value" marker
// used for missing text and missing or unparseable dates.
type Cell struct {
	Value string
	Valid bool
}

// String returns a cell holding the given value.
func String(value string) Cell {
	return Cell{Value: value, Valid: true}
}

// Null returns the "no value" cell.
func Null() Cell {
	return Cell{}
}

// IsNull reports whether the cell carries no value.
func (c Cell) IsNull() bool {
	return !c.Valid
}

// IsEmpty reports whether the cell is null or holds the empty string.
func (c Cell) IsEmpty() bool {
	return !c.Valid || c.Value == ""
}
