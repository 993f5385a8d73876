package common_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graph-gophers/graphql-parser/ast"
	"github.com/graph-gophers/graphql-parser/internal/common"
)

type valueTestCase struct {
	description string
	src         string
	want        ast.Value
	// rest is the unconsumed input after the value.
	rest string
}

var valueTests = []valueTestCase{{
	description: "int",
	src:         "42",
	want:        &ast.IntValue{Value: 42},
}, {
	description: "negative int with trailing space",
	src:         "-7 ",
	want:        &ast.IntValue{Value: -7},
}, {
	description: "zero",
	src:         "0",
	want:        &ast.IntValue{Value: 0},
}, {
	description: "float with fraction",
	src:         "3.25",
	want:        &ast.FloatValue{Value: 3.25},
}, {
	description: "float with fraction and exponent",
	src:         "1.0e2",
	want:        &ast.FloatValue{Value: 100},
}, {
	description: "integral exponent without point is an int",
	src:         "2E+2",
	want:        &ast.IntValue{Value: 200},
}, {
	description: "int64 min",
	src:         "-9223372036854775808",
	want:        &ast.IntValue{Value: math.MinInt64},
}, {
	description: "2^63 does not fit and is floored into a float",
	src:         "9223372036854775808",
	want:        &ast.FloatValue{Value: 9223372036854775808},
}, {
	description: "fractional exponent without point is floored",
	src:         "25e-1",
	want:        &ast.FloatValue{Value: 2},
}, {
	description: "negative fractional exponent is floored down",
	src:         "-25e-1",
	want:        &ast.FloatValue{Value: -3},
}, {
	description: "number stops at a comma",
	src:         "1,2",
	want:        &ast.IntValue{Value: 1},
	rest:        "2",
}, {
	description: "variable",
	src:         "$episode",
	want:        &ast.Variable{Name: "episode"},
}, {
	description: "booleans before enums",
	src:         "false",
	want:        &ast.BooleanValue{Value: false},
}, {
	description: "null",
	src:         "null",
	want:        &ast.NullValue{},
}, {
	description: "enum",
	src:         "NEWHOPE",
	want:        &ast.EnumValue{Value: "NEWHOPE"},
}, {
	description: "escaped quote does not end the string",
	src:         `"say \"hi\"" tail`,
	want:        &ast.StringValue{Value: `say "hi"`},
	rest:        "tail",
}, {
	description: "escaped backslash before the closing quote",
	src:         `"dir\\"`,
	want:        &ast.StringValue{Value: `dir\`},
}, {
	description: "unicode escape",
	src:         `"\u0041\u00e9"`,
	want:        &ast.StringValue{Value: "Aé"},
}, {
	description: "block string keeps escapes",
	src:         `"""C:\path \n"""`,
	want:        &ast.StringValue{Value: `C:\path \n`},
}, {
	description: "block string with escaped triple quote",
	src:         `"""a \""" b"""`,
	want:        &ast.StringValue{Value: `a """ b`},
}, {
	description: "block string dedent",
	src:         "\"\"\"\n    first\n      second\n    third\n\"\"\"",
	want:        &ast.StringValue{Value: "first\n  second\nthird"},
}, {
	description: "empty list",
	src:         "[ ]",
	want:        &ast.ListValue{},
}, {
	description: "nested list",
	src:         "[[1] [] $v]",
	want: &ast.ListValue{Values: []ast.Value{
		&ast.ListValue{Values: []ast.Value{&ast.IntValue{Value: 1}}},
		&ast.ListValue{},
		&ast.Variable{Name: "v"},
	}},
}, {
	description: "empty object",
	src:         "{}",
	want:        &ast.ObjectValue{},
}, {
	description: "object keeps order and duplicates",
	src:         `{b: 1 a: "x" b: [true]}`,
	want: &ast.ObjectValue{Fields: []*ast.ObjectField{
		{Name: "b", Value: &ast.IntValue{Value: 1}},
		{Name: "a", Value: &ast.StringValue{Value: "x"}},
		{Name: "b", Value: &ast.ListValue{Values: []ast.Value{&ast.BooleanValue{Value: true}}}},
	}},
}}

func parseValue(src string) (ast.Value, string, *common.Parser, bool) {
	p := common.NewParser(src)
	v, next, ok := common.ParseValue(p, p.Skip(0))
	return v, src[next:], p, ok
}

func TestParseValue(t *testing.T) {
	for _, test := range valueTests {
		t.Run(test.description, func(t *testing.T) {
			got, rest, p, ok := parseValue(test.src)
			if !ok {
				t.Fatalf("ParseValue(%q) failed: %v", test.src, p.Err("value error"))
			}
			assert.Equal(t, test.want, got)
			assert.Equal(t, test.rest, rest)
		})
	}
}

var invalidValues = []struct {
	description string
	src         string
}{
	{"empty input", ""},
	{"leading zero", "01"},
	{"trailing point", "1."},
	{"point without leading digit", ".5"},
	{"exponent without digits", "1e"},
	{"number followed by name", "3px"},
	{"float out of range", "1e400"},
	{"unterminated string", `"abc`},
	{"newline in string", "\"a\nb\""},
	{"raw tab in string", "\"a\tb\""},
	{"raw control character in string", "\"a\x01b\""},
	{"bad escape", `"\q"`},
	{"short unicode escape", `"\u12"`},
	{"unterminated block string", `"""abc`},
	{"unterminated list", "[1 2"},
	{"object field without value", "{a:}"},
	{"object field without colon", "{a 1}"},
	{"punctuation", "!"},
}

func TestParseValueInvalid(t *testing.T) {
	for _, test := range invalidValues {
		t.Run(test.description, func(t *testing.T) {
			_, rest, p, ok := parseValue(test.src)
			// A value may be a prefix of src, e.g. "0" of "01"; the rest
			// then must not be empty.
			if ok && rest == "" {
				t.Fatalf("ParseValue(%q) succeeded", test.src)
			}
			if !ok {
				assert.Equal(t, "value error", p.Err("").Rule)
			}
		})
	}
}

func TestStringDecodingMatchesJSON(t *testing.T) {
	for _, lit := range []string{
		`"plain"`,
		`"\"\\\/\b\f\n\r\t"`,
		`"\u0000\u001f\u007f"`,
		`"\uD834\uDD1E"`,
		`"mixed ü \u00fc"`,
		`"\uD800"`,
		`"\uDC00 tail"`,
		`"\uD800\u0041"`,
		`"\uD800\uD834\uDD1E"`,
		`"\\uD800"`,
		"\"a\x7fb\"",
		"\"a\xffb\"",
		"\"\xe9t\xe9\"",
		"\"a\tb\"",
		"\"a\x01b\"",
		"\"a\x1fb\"",
		`"\uZZZZ"`,
	} {
		t.Run(lit, func(t *testing.T) {
			var want string
			jsonErr := json.Unmarshal([]byte(lit), &want)

			got, rest, _, ok := parseValue(lit)
			if jsonErr != nil {
				assert.False(t, ok && rest == "", "parsed %q, JSON rejects it: %v", lit, jsonErr)
				return
			}
			require.True(t, ok, lit)
			assert.Empty(t, rest)
			assert.Equal(t, &ast.StringValue{Value: want}, got)
		})
	}
}

func TestStringRejectsRawControlCharacter(t *testing.T) {
	_, _, p, ok := parseValue("\"a\tb\"")
	require.False(t, ok)
	err := p.Err("")
	assert.Equal(t, 2, err.Offset)
	assert.Contains(t, err.Message, "escaped control character")
}

func TestNumberOutOfRange(t *testing.T) {
	_, _, p, ok := parseValue("1e400")
	require.False(t, ok)
	err := p.Err("")
	assert.Equal(t, 0, err.Offset)
	assert.Contains(t, err.Message, "finite number")
	assert.NotContains(t, err.Message, "in range")
}
