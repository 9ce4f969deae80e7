package csvtable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gridfile/csvtable/pkg/csvtable"
)

func TestDetectSeparator(t *testing.T) {
	tests := []struct {
		name   string
		sample string
		want   string
	}{
		{
			name:   "comma",
			sample: "name,age\nalice,30\nbob,25",
			want:   ",",
		},
		{
			name:   "semicolon",
			sample: "name;age\nalice;30\nbob;25",
			want:   ";",
		},
		{
			name:   "tab",
			sample: "name\tage\nalice\t30\nbob\t25",
			want:   "\t",
		},
		{
			name:   "pipe",
			sample: "name|age\nalice|30\nbob|25",
			want:   "|",
		},
		{
			name:   "quoted commas do not fool semicolon detection",
			sample: "\"a,b\";c\n\"d,e,f\";g",
			want:   ";",
		},
		{
			name:   "consistency beats raw count",
			sample: "a,b;c;d;e\nf,g\nh,i",
			want:   ",",
		},
		{
			name:   "no signal falls back to comma",
			sample: "single field\nanother line",
			want:   ",",
		},
		{
			name:   "empty sample falls back to comma",
			sample: "",
			want:   ",",
		},
		{
			name:   "blank lines ignored",
			sample: "a;b\n\nc;d\n",
			want:   ";",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, csvtable.DetectSeparator(tt.sample))
		})
	}
}
