package csvtable

import "strings"

// Defaults for table configuration.
const (
	// DefaultSeparator is the field separator used when none is configured.
	DefaultSeparator = ","
	// DefaultCommentPrefix marks lines that are skipped on load.
	DefaultCommentPrefix = "#"
)

// LoadOptions configures a single load and becomes the table's new defaults.
//
// Zero-value fields mean "keep the table's current setting", which is how a
// caller loads with the separator established by an earlier load.
type LoadOptions struct {
	// Separator is the field separator string. It may be longer than one
	// character. Empty: keep current.
	Separator string

	// CommentPrefix marks comment lines, matched against the raw line
	// before tokenization. Empty: keep current.
	CommentPrefix string
}

// DefaultLoadOptions returns the package defaults: comma separator, "#"
// comment prefix.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Separator:     DefaultSeparator,
		CommentPrefix: DefaultCommentPrefix,
	}
}

// Validate checks the options. Zero values are valid (they mean "keep
// current"); a set separator must not contain quote or newline characters,
// and the comment prefix must not equal the separator.
func (o LoadOptions) Validate() error {
	if o.Separator != "" && !validSeparator(o.Separator) {
		return ErrInvalidSeparator
	}
	if o.CommentPrefix != "" && o.CommentPrefix == o.Separator {
		return ErrInvalidCommentPrefix
	}
	return nil
}

// SaveOptions configures a single save.
//
// The Separator is used for this save only and never stored back on the
// table; the Quote flag IS stored, since it is the table's quote-on-save
// setting. Load settings persist, save settings are one-shot - except the
// quote flag, which mirrors the table's own state.
type SaveOptions struct {
	// Separator is the field separator for this save. Empty: use the
	// table's current separator.
	Separator string

	// Quote wraps every field in double quotes, doubling literal quotes
	// inside field content. Without it fields are written raw, which is
	// lossy for fields containing the separator or a newline.
	Quote bool
}

// DefaultSaveOptions returns the package defaults: the table separator,
// unquoted fields.
func DefaultSaveOptions() SaveOptions {
	return SaveOptions{}
}

// Validate checks the options.
func (o SaveOptions) Validate() error {
	if o.Separator != "" && !validSeparator(o.Separator) {
		return ErrInvalidSeparator
	}
	return nil
}

// validSeparator reports whether s can safely delimit fields.
func validSeparator(s string) bool {
	return s != "" && !strings.ContainsAny(s, "\"\n\r")
}
