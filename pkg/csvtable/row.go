package csvtable

import (
	"strings"

	"github.com/gridfile/csvtable/internal/tokenizer"
)

// Row is an ordered sequence of string fields, one table line.
//
// Columns are 0-indexed and insertion order is column order. A Row enforces
// no uniform width; it is exactly as wide as what was appended or set.
// Typed getters return the type's zero value on an out-of-range index or
// unparseable content. Typed setters pad the row with empty fields as needed,
// so a set never fails.
type Row struct {
	fields []string
}

// NewRow creates a Row from the given field values.
func NewRow(fields ...string) Row {
	r := Row{fields: make([]string, len(fields))}
	copy(r.fields, fields)
	return r
}

// ParseRow tokenizes one raw CSV line into a Row.
// An empty separator defaults to ",".
func ParseRow(line, separator string) Row {
	if separator == "" {
		separator = DefaultSeparator
	}
	return Row{fields: tokenizer.Split(line, separator)}
}

// Len returns the number of fields in the row.
func (r Row) Len() int {
	return len(r.fields)
}

// Fields returns a copy of the row's field values.
func (r Row) Fields() []string {
	fields := make([]string, len(r.fields))
	copy(fields, r.fields)
	return fields
}

// String returns the field at index i, or "" if i is out of range.
func (r Row) String(i int) string {
	if i < 0 || i >= len(r.fields) {
		return ""
	}
	return r.fields[i]
}

// Int returns the field at index i as an int, or 0 if i is out of range or
// the field is not numeric.
func (r Row) Int(i int) int {
	return parseInt(r.String(i))
}

// Float returns the field at index i as a float64, or 0 if i is out of range
// or the field is not numeric.
func (r Row) Float(i int) float64 {
	return parseFloat(r.String(i))
}

// Bool returns the field at index i as a bool. The tokens "1" and "true"
// (case-insensitive) are true; everything else, including a missing field,
// is false.
func (r Row) Bool(i int) bool {
	return parseBool(r.String(i))
}

// SetString sets the field at index i, padding the row with empty fields
// when i is beyond the current width. Negative indices are ignored.
func (r *Row) SetString(i int, value string) {
	if i < 0 {
		return
	}
	for len(r.fields) <= i {
		r.fields = append(r.fields, "")
	}
	r.fields[i] = value
}

// SetInt sets the field at index i to an integer value.
func (r *Row) SetInt(i int, value int) {
	r.SetString(i, formatInt(value))
}

// SetFloat sets the field at index i to a float value.
func (r *Row) SetFloat(i int, value float64) {
	r.SetString(i, formatFloat(value))
}

// SetBool sets the field at index i to "1" or "0".
func (r *Row) SetBool(i int, value bool) {
	r.SetString(i, formatBool(value))
}

// AddString appends a field to the row.
func (r *Row) AddString(value string) {
	r.fields = append(r.fields, value)
}

// AddInt appends an integer field to the row.
func (r *Row) AddInt(value int) {
	r.AddString(formatInt(value))
}

// AddFloat appends a float field to the row.
func (r *Row) AddFloat(value float64) {
	r.AddString(formatFloat(value))
}

// AddBool appends a boolean field ("1" or "0") to the row.
func (r *Row) AddBool(value bool) {
	r.AddString(formatBool(value))
}

// Trim strips leading and trailing whitespace from every field in place.
// Fields hold already-unquoted values, so whitespace that was protected by
// quotes at parse time is trimmed like any other.
func (r *Row) Trim() {
	for i, field := range r.fields {
		r.fields[i] = strings.TrimSpace(field)
	}
}

// expand pads the row with empty fields until it has at least cols fields.
func (r *Row) expand(cols int) {
	for len(r.fields) < cols {
		r.fields = append(r.fields, "")
	}
}

// clone returns a deep copy of the row.
func (r Row) clone() Row {
	return NewRow(r.fields...)
}
