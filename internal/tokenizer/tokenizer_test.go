package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		separator string
		want      []string
	}{
		{
			name:      "simple fields",
			line:      "a,b,c",
			separator: ",",
			want:      []string{"a", "b", "c"},
		},
		{
			name:      "quoted field with embedded separator",
			line:      `a,"b,c",d`,
			separator: ",",
			want:      []string{"a", "b,c", "d"},
		},
		{
			name:      "doubled quotes collapse to literal quote",
			line:      `a,""x""`,
			separator: ",",
			want:      []string{"a", `"x"`},
		},
		{
			name:      "excel-quoted word keeps its quotes",
			line:      `""hello""`,
			separator: ",",
			want:      []string{`"hello"`},
		},
		{
			name:      "quoted field loses its quotes",
			line:      `"hello"`,
			separator: ",",
			want:      []string{"hello"},
		},
		{
			name:      "doubled quote inside quoted field",
			line:      `"he said ""hi"""`,
			separator: ",",
			want:      []string{`he said "hi"`},
		},
		{
			name:      "empty quoted field",
			line:      `a,"",b`,
			separator: ",",
			want:      []string{"a", "", "b"},
		},
		{
			name:      "empty quoted field at line end",
			line:      `a,""`,
			separator: ",",
			want:      []string{"a", ""},
		},
		{
			name:      "lone empty quoted field",
			line:      `""`,
			separator: ",",
			want:      []string{""},
		},
		{
			name:      "no separator yields whole line",
			line:      "just one field",
			separator: ",",
			want:      []string{"just one field"},
		},
		{
			name:      "empty line yields one empty field",
			line:      "",
			separator: ",",
			want:      []string{""},
		},
		{
			name:      "empty fields preserved",
			line:      "a,,c,",
			separator: ",",
			want:      []string{"a", "", "c", ""},
		},
		{
			name:      "whitespace preserved verbatim",
			line:      " a , b ",
			separator: ",",
			want:      []string{" a ", " b "},
		},
		{
			name:      "whitespace inside quotes preserved",
			line:      `" a ",b`,
			separator: ",",
			want:      []string{" a ", "b"},
		},
		{
			name:      "multi-character separator",
			line:      "a::b::c",
			separator: "::",
			want:      []string{"a", "b", "c"},
		},
		{
			name:      "multi-character separator inside quotes is literal",
			line:      `a::"b::c"`,
			separator: "::",
			want:      []string{"a", "b::c"},
		},
		{
			name:      "tab separator",
			line:      "a\tb\tc",
			separator: "\t",
			want:      []string{"a", "b", "c"},
		},
		{
			name:      "separator only",
			line:      ",",
			separator: ",",
			want:      []string{"", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.line, tt.separator))
		})
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name      string
		fields    []string
		separator string
		quote     bool
		want      string
	}{
		{
			name:      "plain join",
			fields:    []string{"a", "b", "c"},
			separator: ",",
			quote:     false,
			want:      "a,b,c",
		},
		{
			name:      "quoted join wraps every field",
			fields:    []string{"a", "1.23", ""},
			separator: ",",
			quote:     true,
			want:      `"a","1.23",""`,
		},
		{
			name:      "quoted join doubles literal quotes",
			fields:    []string{`he said "hi"`},
			separator: ",",
			quote:     true,
			want:      `"he said ""hi"""`,
		},
		{
			name:      "unquoted join is lossy by design",
			fields:    []string{"a,b"},
			separator: ",",
			quote:     false,
			want:      "a,b",
		},
		{
			name:      "empty fields",
			fields:    []string{},
			separator: ",",
			quote:     false,
			want:      "",
		},
		{
			name:      "multi-character separator",
			fields:    []string{"a", "b"},
			separator: "::",
			quote:     false,
			want:      "a::b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Join(tt.fields, tt.separator, tt.quote))
		})
	}
}

// TestSplitJoinRoundTrip checks that quoted output reparses to the original
// field values, separator and quote content included. Fields consisting only
// of quote characters are the one known exception (Excel-style `""` escaping
// is ambiguous there) and are excluded.
func TestSplitJoinRoundTrip(t *testing.T) {
	cases := [][]string{
		{"a", "b", "c"},
		{"a,b", `quote " inside`, `"x"`},
		{"", "x", ""},
		{" leading", "trailing ", "\tboth\t"},
		{`,",`, `""a`, `a"`},
	}

	for _, fields := range cases {
		line := Join(fields, ",", true)
		assert.Equal(t, fields, Split(line, ","), "round trip of %q", line)
	}
}

func TestIsComment(t *testing.T) {
	assert.True(t, IsComment("# a comment", "#"))
	assert.True(t, IsComment("#", "#"))
	assert.True(t, IsComment("// note", "//"))
	assert.False(t, IsComment(" # indented is not a comment", "#"))
	assert.False(t, IsComment("a,b,c", "#"))
	assert.False(t, IsComment("anything", ""))
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty text", "", nil},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"trailing newline dropped", "a\nb\n", []string{"a", "b"}},
		{"interior blank line kept", "a\n\nb\n", []string{"a", "", "b"}},
		{"crlf stripped", "a\r\nb\r\n", []string{"a", "b"}},
		{"single line", "a", []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.text))
		})
	}
}
