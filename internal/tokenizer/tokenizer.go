// Package tokenizer converts between raw CSV text lines and field values.
//
// The tokenizer is deliberately lenient: it never rejects input. Quoting is
// auto-detected per field on the way in, and doubled quotes are un-escaped
// Excel style (`""` becomes one literal `"`). On the way out, quoting is
// all-or-nothing per call.
//
// Unlike encoding/csv, the field separator is a string rather than a rune,
// so multi-character separators such as "::" work.
package tokenizer

import (
	"strings"
)

// Split splits one raw text line into an ordered sequence of field values.
//
// The scan tracks an in-quotes flag character by character:
//   - `""` at the start of a field, immediately followed by a separator or
//     the end of the line, is an empty quoted field.
//   - Elsewhere, a `"` immediately followed by another `"` is an escaped
//     literal quote and contributes one `"` to the current field (Excel
//     style, so `""x""` is the three-character field `"x"`).
//   - Any other `"` toggles the in-quotes flag and is not included in the
//     field content.
//   - Outside quotes, separator ends the current field; the separator itself
//     is never part of field content. Inside quotes it is literal.
//
// Whitespace is preserved verbatim. A line with no separators yields a single
// field holding the whole line; an empty line yields one empty field, never
// zero fields.
func Split(line, separator string) []string {
	fields := make([]string, 0, strings.Count(line, separator)+1)
	var field strings.Builder
	inQuotes := false
	atFieldStart := true

	i := 0
	for i < len(line) {
		c := line[i]
		if c == '"' {
			if i+1 < len(line) && line[i+1] == '"' {
				rest := line[i+2:]
				if atFieldStart && (rest == "" || (separator != "" && strings.HasPrefix(rest, separator))) {
					// Empty quoted field, not an escaped quote.
					i += 2
					atFieldStart = false
					continue
				}
				field.WriteByte('"')
				i += 2
				atFieldStart = false
				continue
			}
			inQuotes = !inQuotes
			i++
			atFieldStart = false
			continue
		}
		if !inQuotes && separator != "" && strings.HasPrefix(line[i:], separator) {
			fields = append(fields, field.String())
			field.Reset()
			i += len(separator)
			atFieldStart = true
			continue
		}
		field.WriteByte(c)
		i++
		atFieldStart = false
	}
	fields = append(fields, field.String())

	return fields
}

// Join joins an ordered sequence of field values into one line.
//
// If quote is true, every field is wrapped in `"` and literal quotes inside
// field content are doubled, so any field value survives a round trip through
// Split. If quote is false, fields are emitted as-is with no escaping; a
// field containing the separator or a newline will not round-trip. That is a
// documented limitation of unquoted output, not something Join repairs.
func Join(fields []string, separator string, quote bool) string {
	var sb strings.Builder
	for i, field := range fields {
		if i > 0 {
			sb.WriteString(separator)
		}
		if quote {
			sb.WriteByte('"')
			sb.WriteString(strings.ReplaceAll(field, `"`, `""`))
			sb.WriteByte('"')
		} else {
			sb.WriteString(field)
		}
	}
	return sb.String()
}

// IsComment reports whether line is a comment under the given prefix.
// Classification happens on the raw line, before any tokenization.
// An empty prefix never matches.
func IsComment(line, prefix string) bool {
	return prefix != "" && strings.HasPrefix(line, prefix)
}

// SplitLines splits text into lines on `\n`, tolerating CRLF by stripping a
// single trailing `\r` from each line. A single trailing newline at the end
// of the text does not produce a phantom empty line; interior blank lines
// are kept.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
