package jsobj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitArray(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "function with comma in body",
			in:   `[1,2,function(e){return e+1},3]`,
			want: []string{"1", "2", "function(e){return e+1}", "3"},
		},
		{
			name: "function last",
			in:   `[null,function(a,b){a.push(b,1)}]`,
			want: []string{"null", "function(a,b){a.push(b,1)}"},
		},
		{
			name: "function first",
			in:   `[function(){var x={a:1,b:[2,3]};return x},-5]`,
			want: []string{"function(){var x={a:1,b:[2,3]};return x}", "-5"},
		},
		{
			name: "regex in function body",
			in:   `[function(d){d.split(/,}/)},"s"]`,
			want: []string{"function(d){d.split(/,}/)}", `"s"`},
		},
		{
			name: "consecutive functions",
			in:   `[function(a){a,a},function(b){b,b}]`,
			want: []string{"function(a){a,a}", "function(b){b,b}"},
		},
		{
			name: "primitives only",
			in:   `[-1,"x",null,true]`,
			want: []string{"-1", `"x"`, "null", "true"},
		},
		{
			name: "whitespace kept",
			in:   `[1, 2]`,
			want: []string{"1", " 2"},
		},
		{
			name: "single element",
			in:   `[42]`,
			want: []string{"42"},
		},
		{
			name: "empty array",
			in:   `[]`,
			want: []string{},
		},
		{
			name: "function with array body",
			in:   `[function(a)[1,2],3]`,
			want: []string{"function(a)[1,2]", "3"},
		},
		{
			// nested literals are not tracked outside function bodies
			name: "nested array is split",
			in:   `[[1,2],3]`,
			want: []string{"[1", "2]", "3"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitArray(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitArrayErrors(t *testing.T) {
	_, err := SplitArray(`1,2]`)
	assert.ErrorIs(t, err, ErrInvalidStart)

	_, err = SplitArray(``)
	assert.ErrorIs(t, err, ErrInvalidStart)

	_, err = SplitArray(`[1,2`)
	assert.ErrorIs(t, err, ErrUnterminatedSpan)

	_, err = SplitArray(`[function(a) {return a}]`)
	assert.ErrorIs(t, err, ErrInvalidStart, "body must open right after the parameter list")

	_, err = SplitArray(`[function(a){return a`)
	assert.ErrorIs(t, err, ErrUnterminatedSpan)

	for _, in := range []string{`[function(a){return a}`, `[1,function(){}`, `[function(a)[1,2]`} {
		_, err = SplitArray(in)
		assert.ErrorIs(t, err, ErrUnterminatedSpan, "SplitArray(%q)", in)
	}
}
