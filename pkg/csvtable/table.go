// Package csvtable is an in-memory tabular data store backed by CSV text.
//
// A Table loads a CSV file or string into a row/column grid, exposes typed
// cell access with lenient defaults, and serializes back to CSV text.
//
// # Building a table
//
//	tbl := csvtable.New()
//	tbl.SetString(0, 0, "name")
//	tbl.SetString(0, 1, "score")
//	tbl.SetString(1, 0, "alice")
//	tbl.SetInt(1, 1, 42)
//
// Writes never fail: setting a cell beyond the current bounds grows the
// table, padding new cells with empty strings.
//
// # Loading and saving
//
//	tbl := csvtable.New()
//	if err := tbl.Load("data.csv"); err != nil {
//	    // handle error
//	}
//	score := tbl.GetInt(1, 1) // 0 if the cell is missing or not numeric
//	if err := tbl.Save(""); err != nil { // "" = current path
//	    // handle error
//	}
//
// Lines starting with the comment prefix (default "#") are skipped on load.
// Parsing itself never fails; only the filesystem boundary produces errors,
// and the table's in-memory state is untouched when it does.
//
// # Concurrency
//
// A Table is an exclusively-owned mutable value with no internal locking.
// Callers needing concurrent access must serialize externally.
package csvtable

import (
	"iter"
	"strings"

	"github.com/spf13/afero"

	"github.com/gridfile/csvtable/internal/fsio"
	"github.com/gridfile/csvtable/internal/tokenizer"
)

// Table is an ordered sequence of Rows plus load/save configuration.
//
// Rows have no identity beyond position: removing or inserting a row shifts
// the positional identity of the rows after it.
type Table struct {
	rows []Row

	path          string
	separator     string
	commentPrefix string
	quoteFields   bool

	fs *fsio.FS
}

// New creates an empty Table with default configuration: comma separator,
// "#" comment prefix, unquoted saves, OS filesystem.
func New() *Table {
	return NewWithFs(nil)
}

// NewWithFs creates an empty Table reading and writing through the given
// afero filesystem. A nil fs means the OS filesystem; tests typically pass
// afero.NewMemMapFs().
func NewWithFs(fs afero.Fs) *Table {
	return &Table{
		separator:     DefaultSeparator,
		commentPrefix: DefaultCommentPrefix,
		fs:            fsio.New(fs),
	}
}

// ============================================================================
// File IO
// ============================================================================

// Load reads the CSV file at path and replaces the table's contents with it,
// using the table's current separator and comment prefix. An empty path
// reloads the current file. On error the table is left unchanged.
func (t *Table) Load(path string) error {
	return t.LoadWithOptions(path, LoadOptions{})
}

// LoadWithOptions reads the CSV file at path and replaces the table's
// contents with it. Non-zero option fields become the table's new defaults
// for subsequent operations; zero fields keep the current settings.
//
// The file is read before any state changes, so a missing or unreadable file
// leaves previously loaded rows and configuration untouched.
func (t *Table) LoadWithOptions(path string, opts LoadOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if path == "" {
		path = t.path
	}
	if path == "" {
		return ErrNoPath
	}

	text, err := t.fs.ReadText(path)
	if err != nil {
		return &FileError{Op: "load", Path: path, Err: err}
	}

	t.path = path
	t.applyLoadOptions(opts)
	t.rows = parseText(text, t.separator, t.commentPrefix)
	return nil
}

// LoadString replaces the table's contents with rows parsed from text, using
// the current separator and comment prefix. No filesystem is involved and
// the current path is unchanged.
func (t *Table) LoadString(text string) {
	t.rows = parseText(text, t.separator, t.commentPrefix)
}

// LoadStringWithOptions replaces the table's contents with rows parsed from
// text. Non-zero option fields become the table's new defaults.
func (t *Table) LoadStringWithOptions(text string, opts LoadOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	t.applyLoadOptions(opts)
	t.rows = parseText(text, t.separator, t.commentPrefix)
	return nil
}

// Save writes the table to path as CSV using the current separator and
// quote-on-save setting, creating any missing parent directories. An empty
// path saves to the current file. On error nothing is stored.
func (t *Table) Save(path string) error {
	return t.SaveWithOptions(path, SaveOptions{Quote: t.quoteFields})
}

// SaveWithOptions writes the table to path as CSV. An explicit Separator is
// used for this save only and does not replace the table's stored separator;
// the Quote flag does update the table's quote-on-save setting. A non-empty
// path becomes the table's current path.
func (t *Table) SaveWithOptions(path string, opts SaveOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if path == "" {
		path = t.path
	}
	if path == "" {
		return ErrNoPath
	}

	sep := opts.Separator
	if sep == "" {
		sep = t.separator
	}

	if err := t.fs.WriteText(path, t.render(sep, opts.Quote)); err != nil {
		return &FileError{Op: "save", Path: path, Err: err}
	}

	t.path = path
	t.quoteFields = opts.Quote
	return nil
}

// CreateFile creates an empty file at path, creating any missing parent
// directories, and makes it the table's current path. The table's rows are
// not modified.
func (t *Table) CreateFile(path string) error {
	if path == "" {
		return ErrNoPath
	}
	if err := t.fs.Touch(path); err != nil {
		return &FileError{Op: "create", Path: path, Err: err}
	}
	t.path = path
	return nil
}

func (t *Table) applyLoadOptions(opts LoadOptions) {
	if opts.Separator != "" {
		t.separator = opts.Separator
	}
	if opts.CommentPrefix != "" {
		t.commentPrefix = opts.CommentPrefix
	}
}

// parseText converts CSV text into rows. Comment lines are dropped before
// tokenization; blank lines are kept as single-empty-field rows.
func parseText(text, separator, commentPrefix string) []Row {
	lines := tokenizer.SplitLines(text)
	rows := make([]Row, 0, len(lines))
	for _, line := range lines {
		if tokenizer.IsComment(line, commentPrefix) {
			continue
		}
		rows = append(rows, Row{fields: tokenizer.Split(line, separator)})
	}
	return rows
}

// render serializes all rows to CSV text with a trailing newline.
func (t *Table) render(separator string, quote bool) string {
	var sb strings.Builder
	for _, row := range t.rows {
		sb.WriteString(tokenizer.Join(row.fields, separator, quote))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ============================================================================
// Bulk in-memory IO
// ============================================================================

// LoadRows replaces the table's contents with copies of the given rows,
// bypassing the tokenizer entirely.
func (t *Table) LoadRows(rows []Row) {
	t.rows = make([]Row, len(rows))
	for i, row := range rows {
		t.rows[i] = row.clone()
	}
}

// LoadFields replaces the table's contents with the given field values, one
// Row per inner slice, bypassing the tokenizer entirely.
func (t *Table) LoadFields(fields [][]string) {
	t.rows = make([]Row, len(fields))
	for i, rowFields := range fields {
		t.rows[i] = NewRow(rowFields...)
	}
}

// ============================================================================
// Row editing
// ============================================================================

// AddRow appends a copy of row to the table.
func (t *Table) AddRow(row Row) {
	t.rows = append(t.rows, row.clone())
}

// AddEmptyRow appends a row with no fields.
func (t *Table) AddEmptyRow() {
	t.rows = append(t.rows, Row{})
}

// SetRow replaces the row at index, expanding the table first when index is
// beyond the current row count. Negative indices are ignored.
func (t *Table) SetRow(index int, row Row) {
	if index < 0 {
		return
	}
	t.Expand(index+1, 0)
	t.rows[index] = row.clone()
}

// GetRow returns a copy of the row at index, or an empty Row when index is
// out of range.
func (t *Table) GetRow(index int) Row {
	if index < 0 || index >= len(t.rows) {
		return Row{}
	}
	return t.rows[index].clone()
}

// InsertRow inserts a copy of row at index, shifting subsequent rows down.
// The table expands first when index is beyond the current row count;
// negative indices are ignored.
func (t *Table) InsertRow(index int, row Row) {
	if index < 0 {
		return
	}
	if index >= len(t.rows) {
		t.SetRow(index, row)
		return
	}
	t.rows = append(t.rows, Row{})
	copy(t.rows[index+1:], t.rows[index:])
	t.rows[index] = row.clone()
}

// RemoveRow removes the row at index, shifting subsequent rows up. Removing
// an out-of-range index is a no-op, not an error.
func (t *Table) RemoveRow(index int) {
	if index < 0 || index >= len(t.rows) {
		return
	}
	t.rows = append(t.rows[:index], t.rows[index+1:]...)
}

// Expand grows the table to at least rows rows, and pads each of the first
// rows rows to at least cols fields, filling with empty strings. Expand
// never truncates: rows and fields beyond the requested floor are untouched.
func (t *Table) Expand(rows, cols int) {
	for len(t.rows) < rows {
		t.rows = append(t.rows, Row{})
	}
	for i := 0; i < rows && i < len(t.rows); i++ {
		t.rows[i].expand(cols)
	}
}

// Clear removes all rows. Configuration (path, separator, comment prefix,
// quote flag) is kept.
func (t *Table) Clear() {
	t.rows = nil
}

// ============================================================================
// Cell access
// ============================================================================

// GetString returns the cell at (row, col), or "" when out of range.
// Reading never expands the table.
func (t *Table) GetString(row, col int) string {
	if row < 0 || row >= len(t.rows) {
		return ""
	}
	return t.rows[row].String(col)
}

// GetInt returns the cell at (row, col) as an int, or 0 when out of range or
// not numeric.
func (t *Table) GetInt(row, col int) int {
	return parseInt(t.GetString(row, col))
}

// GetFloat returns the cell at (row, col) as a float64, or 0 when out of
// range or not numeric.
func (t *Table) GetFloat(row, col int) float64 {
	return parseFloat(t.GetString(row, col))
}

// GetBool returns the cell at (row, col) as a bool; "1" and "true"
// (case-insensitive) are true, everything else false.
func (t *Table) GetBool(row, col int) bool {
	return parseBool(t.GetString(row, col))
}

// SetString sets the cell at (row, col), expanding the table to fit first.
// Writes never fail; negative indices are ignored.
func (t *Table) SetString(row, col int, value string) {
	if row < 0 || col < 0 {
		return
	}
	t.Expand(row+1, col+1)
	t.rows[row].SetString(col, value)
}

// SetInt sets the cell at (row, col) to an integer value, expanding the
// table to fit first.
func (t *Table) SetInt(row, col int, value int) {
	t.SetString(row, col, formatInt(value))
}

// SetFloat sets the cell at (row, col) to a float value, expanding the table
// to fit first.
func (t *Table) SetFloat(row, col int, value float64) {
	t.SetString(row, col, formatFloat(value))
}

// SetBool sets the cell at (row, col) to "1" or "0", expanding the table to
// fit first.
func (t *Table) SetBool(row, col int, value bool) {
	t.SetString(row, col, formatBool(value))
}

// AddString appends a field to the last row, creating a first row on an
// empty table.
func (t *Table) AddString(value string) {
	if len(t.rows) == 0 {
		t.rows = append(t.rows, Row{})
	}
	t.rows[len(t.rows)-1].AddString(value)
}

// AddInt appends an integer field to the last row.
func (t *Table) AddInt(value int) {
	t.AddString(formatInt(value))
}

// AddFloat appends a float field to the last row.
func (t *Table) AddFloat(value float64) {
	t.AddString(formatFloat(value))
}

// AddBool appends a boolean field ("1" or "0") to the last row.
func (t *Table) AddBool(value bool) {
	t.AddString(formatBool(value))
}

// ============================================================================
// Dimensions
// ============================================================================

// NumRows returns the current number of rows.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// NumCols returns the number of fields in the given row, or 0 when the row
// does not exist. Rows may differ in width.
func (t *Table) NumCols(row int) int {
	if row < 0 || row >= len(t.rows) {
		return 0
	}
	return t.rows[row].Len()
}

// Len returns the number of rows, like NumRows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Empty reports whether the table has no rows.
func (t *Table) Empty() bool {
	return len(t.rows) == 0
}

// ============================================================================
// Raw access & iteration
// ============================================================================

// Rows returns a deep copy of the table's rows.
func (t *Table) Rows() []Row {
	rows := make([]Row, len(t.rows))
	for i, row := range t.rows {
		rows[i] = row.clone()
	}
	return rows
}

// At returns a copy of the row at index, like GetRow.
func (t *Table) At(index int) Row {
	return t.GetRow(index)
}

// Front returns a copy of the first row, or an empty Row on an empty table.
func (t *Table) Front() Row {
	return t.GetRow(0)
}

// Back returns a copy of the last row, or an empty Row on an empty table.
func (t *Table) Back() Row {
	return t.GetRow(len(t.rows) - 1)
}

// All returns a forward iterator over (index, row). The yielded rows share
// storage with the table; use Rows for detached copies.
//
//	for i, row := range tbl.All() {
//	    fmt.Println(i, row.Fields())
//	}
func (t *Table) All() iter.Seq2[int, Row] {
	return func(yield func(int, Row) bool) {
		for i, row := range t.rows {
			if !yield(i, row) {
				return
			}
		}
	}
}

// Backward returns a reverse iterator over (index, row), last row first.
func (t *Table) Backward() iter.Seq2[int, Row] {
	return func(yield func(int, Row) bool) {
		for i := len(t.rows) - 1; i >= 0; i-- {
			if !yield(i, t.rows[i]) {
				return
			}
		}
	}
}

// ============================================================================
// Utility
// ============================================================================

// Trim strips leading and trailing whitespace from every field of every row
// in place. Trim is idempotent.
func (t *Table) Trim() {
	for i := range t.rows {
		t.rows[i].Trim()
	}
}

// String renders the table as CSV text using the current separator and
// quote-on-save setting.
func (t *Table) String() string {
	return t.render(t.separator, t.quoteFields)
}

// Path returns the current file path, set by the last successful Load, Save,
// or CreateFile.
func (t *Table) Path() string {
	return t.path
}

// FieldSeparator returns the current field separator, default ",".
func (t *Table) FieldSeparator() string {
	return t.separator
}

// CommentPrefix returns the current comment line prefix, default "#".
func (t *Table) CommentPrefix() string {
	return t.commentPrefix
}

// QuoteFields reports whether fields are quoted on save, default false.
func (t *Table) QuoteFields() bool {
	return t.quoteFields
}
