package jsonc

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "full line comment",
			input: "// full line comment\n[1]",
			want:  "\n[1]",
		},
		{
			name:  "trailing line comment",
			input: "[1, // one\n2]",
			want:  "[1,\n2]",
		},
		{
			name:  "indented line comment",
			input: "[\n    // note\n    1\n]",
			want:  "[\n\n    1\n]",
		},
		{
			name:  "inline block comment",
			input: `[{"command":"x","keys":["ctrl+k"]} /* comment */]`,
			want:  `[{"command":"x","keys":["ctrl+k"]}]`,
		},
		{
			name:  "multi line block comment",
			input: "[\n/* first\n   second */\n1]",
			want:  "[\n\n1]",
		},
		{
			name:  "several comments",
			input: "// a\n[1, /* b */ 2] // c",
			want:  "\n[1,2]",
		},
		{
			name:  "slash before block comment starts a line comment",
			input: "[1] //* x */ tail */",
			want:  "[1]",
		},
		{
			name:  "lone slash is kept",
			input: `["ctrl+/"]`,
			want:  `["ctrl+/"]`,
		},
		{
			name:  "unterminated block comment is kept",
			input: "[1] /* open",
			want:  "[1] /* open",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Strip(tt.input))
		})
	}
}

func TestStripIdempotent(t *testing.T) {
	inputs := []string{
		`[{"command":"y","keys":["f5"]}]`,
		"[\n  {\"command\": \"a\", \"keys\": [\"ctrl+/\"]}\n]",
		"{}",
		"",
	}
	for _, in := range inputs {
		assert.Equal(t, in, Strip(in))
		assert.Equal(t, Strip(in), Strip(Strip(in)))
	}
}

func TestParseMatchesStandardDecoding(t *testing.T) {
	tests := []struct {
		commented string
		stripped  string
	}{
		{
			commented: "// full line comment\n[{\"command\":\"y\",\"keys\":[\"f5\"]}]",
			stripped:  `[{"command":"y","keys":["f5"]}]`,
		},
		{
			commented: "[\n  /* move */\n  {\"command\": \"move\", \"args\": {\"by\": \"lines\", \"forward\": true}, \"keys\": [\"down\"]}, // down\n  {\"command\": \"noop\", \"keys\": [\"ctrl+k\", \"ctrl+b\"], \"args\": null}\n]",
			stripped:  `[{"command":"move","args":{"by":"lines","forward":true},"keys":["down"]},{"command":"noop","keys":["ctrl+k","ctrl+b"],"args":null}]`,
		},
		{
			commented: "{\"n\": 1.5, /* b */ \"s\": \"x\"}",
			stripped:  `{"n":1.5,"s":"x"}`,
		},
	}

	for _, tt := range tests {
		got, err := Parse(tt.commented)
		require.NoError(t, err)

		var want any
		require.NoError(t, json.Unmarshal([]byte(tt.stripped), &want))
		assert.Equal(t, want, got)
	}
}

func TestParseKeymapExample(t *testing.T) {
	got, err := Parse("// full line comment\n[{\"command\":\"y\",\"keys\":[\"f5\"]}]")
	require.NoError(t, err)

	want := []any{
		map[string]any{"command": "y", "keys": []any{"f5"}},
	}
	assert.Equal(t, want, got)
}

func TestParseErrors(t *testing.T) {
	inputs := map[string]string{
		"empty":                "",
		"only comment":         "// nothing here",
		"malformed structure":  `[{"command": "x",]`,
		"unterminated string":  `["abc`,
		"trailing garbage":     `[1] x`,
		"unterminated comment": "[1] /* never closed",
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(in)
			require.Error(t, err)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.NotNil(t, parseErr.Unwrap())
		})
	}
}

func TestParseErrorOffset(t *testing.T) {
	_, err := Parse(`[1, }`)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, int64(5), parseErr.Offset)
	assert.Contains(t, parseErr.Error(), "offset 5")
}

func TestParseInto(t *testing.T) {
	var settings struct {
		Ignored []string `json:"ignored_packages"`
	}
	err := ParseInto("{\n  // disabled\n  \"ignored_packages\": [\"Vintage\", \"Markdown\"]\n}", &settings)
	require.NoError(t, err)
	assert.Equal(t, []string{"Vintage", "Markdown"}, settings.Ignored)

	err = ParseInto(`{"ignored_packages": 3}`, &settings)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}
