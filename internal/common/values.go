package common

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/buger/jsonparser"

	"github.com/graph-gophers/graphql-parser/ast"
	"github.com/graph-gophers/graphql-parser/internal/lexer"
)

// ParseValue parses a literal value. The alternatives are ordered: numbers
// before names, and the true, false and null keywords before enum values,
// which would otherwise accept them.
//
// http://spec.graphql.org/draft/#sec-Input-Values
func ParseValue(p *Parser, pos int) (ast.Value, int, bool) {
	v, next, ok := Choice(p, pos,
		parseVariable,
		parseNumber,
		parseBoolean,
		parseNull,
		parseString,
		parseEnum,
		parseList,
		parseObject,
	)
	if !ok {
		p.Label(pos, "value error")
	}
	return v, next, ok
}

func parseVariable(p *Parser, pos int) (ast.Value, int, bool) {
	next, ok := p.Literal(pos, "$")
	if !ok {
		return nil, pos, false
	}
	name, next, ok := p.Name(next)
	if !ok {
		return nil, pos, false
	}
	return &ast.Variable{Name: name}, next, true
}

// parseNumber matches -?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)? and
// classifies it with classifyNumber.
func parseNumber(p *Parser, pos int) (ast.Value, int, bool) {
	src := p.Src
	end := pos
	digits := func() int {
		start := end
		for end < len(src) && isDigit(src[end]) {
			end++
		}
		return end - start
	}

	if end < len(src) && src[end] == '-' {
		end++
	}
	if end >= len(src) || !isDigit(src[end]) {
		p.Fail(pos, "number")
		return nil, pos, false
	}
	if src[end] == '0' {
		end++
	} else {
		digits()
	}
	if end < len(src) && src[end] == '.' {
		end++
		if digits() == 0 {
			p.Fail(end, "digit")
			return nil, pos, false
		}
	}
	if end < len(src) && (src[end] == 'e' || src[end] == 'E') {
		end++
		if end < len(src) && (src[end] == '+' || src[end] == '-') {
			end++
		}
		if digits() == 0 {
			p.Fail(end, "digit")
			return nil, pos, false
		}
	}
	if end < len(src) && (src[end] == '.' || isDigit(src[end]) || lexer.IsNameStart(src[end])) {
		p.Fail(end, "end of number")
		return nil, pos, false
	}

	v, ok := classifyNumber(src[pos:end])
	if !ok {
		p.Fail(pos, "finite number")
		return nil, pos, false
	}
	return v, p.Skip(end), true
}

// classifyNumber decides between Int and Float. Text with a decimal point is
// always a Float. Otherwise the literal is an Int when it decodes to an exact
// int64; if it does not, the decoded value is floored into a Float. The
// floor loses the fraction of literals like 15e-1, which is accepted.
func classifyNumber(text string) (ast.Value, bool) {
	if strings.Contains(text, ".") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, false
		}
		return &ast.FloatValue{Value: f}, true
	}
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return &ast.IntValue{Value: n}, true
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, false
	}
	if f == math.Trunc(f) && f >= math.MinInt64 && f < -math.MinInt64 {
		return &ast.IntValue{Value: int64(f)}, true
	}
	return &ast.FloatValue{Value: math.Floor(f)}, true
}

func parseBoolean(p *Parser, pos int) (ast.Value, int, bool) {
	if next, ok := p.Literal(pos, "true"); ok {
		return &ast.BooleanValue{Value: true}, next, true
	}
	if next, ok := p.Literal(pos, "false"); ok {
		return &ast.BooleanValue{Value: false}, next, true
	}
	return nil, pos, false
}

func parseNull(p *Parser, pos int) (ast.Value, int, bool) {
	next, ok := p.Literal(pos, "null")
	if !ok {
		return nil, pos, false
	}
	return &ast.NullValue{}, next, true
}

// parseString finds the closing quote by tracking backslashes, then hands
// the quoted text to a JSON string decoder for the escape sequences. The
// result matches encoding/json: control characters must be escaped, while
// unpaired surrogate escapes and invalid UTF-8 bytes decode to U+FFFD.
func parseString(p *Parser, pos int) (ast.Value, int, bool) {
	src := p.Src
	if strings.HasPrefix(src[pos:], `"""`) {
		return parseBlockString(p, pos)
	}
	if pos >= len(src) || src[pos] != '"' {
		p.Fail(pos, "string")
		return nil, pos, false
	}

	escaped := false
	for i := pos + 1; i < len(src); i++ {
		switch c := src[i]; {
		case c == '\n' || c == '\r':
			p.Fail(i, `"\""`)
			return nil, pos, false
		case c < 0x20:
			p.Fail(i, "escaped control character")
			return nil, pos, false
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			s, err := jsonparser.GetString([]byte(replaceLoneSurrogates(src[pos : i+1])))
			if err != nil {
				p.Fail(pos, "valid string escape")
				return nil, pos, false
			}
			return &ast.StringValue{Value: replaceInvalidUTF8(s)}, p.Skip(i + 1), true
		}
	}
	p.Fail(len(src), `"\""`)
	return nil, pos, false
}

// replaceLoneSurrogates rewrites \u escapes of surrogates that do not form a
// valid pair to \uFFFD. Malformed escapes are left for the decoder to reject.
func replaceLoneSurrogates(lit string) string {
	if !strings.Contains(lit, `\u`) {
		return lit
	}
	var b strings.Builder
	last := 0
	for i := 0; i < len(lit); i++ {
		if lit[i] != '\\' {
			continue
		}
		r, ok := unicodeEscape(lit, i)
		if !ok {
			i++ // skip the escaped character
			continue
		}
		if !utf16.IsSurrogate(r) {
			i += 5
			continue
		}
		if low, ok := unicodeEscape(lit, i+6); ok && utf16.DecodeRune(r, low) != unicode.ReplacementChar {
			i += 11
			continue
		}
		b.WriteString(lit[last:i])
		b.WriteString(`\uFFFD`)
		last = i + 6
		i += 5
	}
	if last == 0 {
		return lit
	}
	b.WriteString(lit[last:])
	return b.String()
}

// unicodeEscape decodes the \uXXXX escape at i.
func unicodeEscape(s string, i int) (rune, bool) {
	if i+6 > len(s) || s[i] != '\\' || s[i+1] != 'u' {
		return 0, false
	}
	n, err := strconv.ParseUint(s[i+2:i+6], 16, 16)
	if err != nil {
		return 0, false
	}
	return rune(n), true
}

// replaceInvalidUTF8 replaces every byte that does not start a valid UTF-8
// sequence with U+FFFD.
func replaceInvalidUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteRune(utf8.RuneError)
		} else {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

// parseBlockString parses a """triple quoted""" string. Escapes are not
// interpreted except for \""".
//
// http://spec.graphql.org/draft/#sec-String-Value.Block-Strings
func parseBlockString(p *Parser, pos int) (ast.Value, int, bool) {
	src := p.Src
	var raw strings.Builder
	for i := pos + 3; i < len(src); {
		switch {
		case strings.HasPrefix(src[i:], `\"""`):
			raw.WriteString(`"""`)
			i += 4
		case strings.HasPrefix(src[i:], `"""`):
			return &ast.StringValue{Value: replaceInvalidUTF8(blockStringValue(raw.String()))}, p.Skip(i + 3), true
		default:
			raw.WriteByte(src[i])
			i++
		}
	}
	p.Fail(len(src), `"\"\"\""`)
	return nil, pos, false
}

func blockStringValue(raw string) string {
	lines := strings.Split(strings.ReplaceAll(strings.ReplaceAll(raw, "\r\n", "\n"), "\r", "\n"), "\n")

	commonIndent := -1
	for _, line := range lines[1:] {
		indent := leadingWhitespace(line)
		if indent < len(line) && (commonIndent < 0 || indent < commonIndent) {
			commonIndent = indent
		}
	}
	if commonIndent > 0 {
		for i, line := range lines[1:] {
			if len(line) < commonIndent {
				lines[i+1] = ""
			} else {
				lines[i+1] = line[commonIndent:]
			}
		}
	}

	for len(lines) > 0 && leadingWhitespace(lines[0]) == len(lines[0]) {
		lines = lines[1:]
	}
	for len(lines) > 0 && leadingWhitespace(lines[len(lines)-1]) == len(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

func leadingWhitespace(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

func parseEnum(p *Parser, pos int) (ast.Value, int, bool) {
	name, next, ok := p.Name(pos)
	if !ok {
		return nil, pos, false
	}
	return &ast.EnumValue{Value: name}, next, true
}

func parseList(p *Parser, pos int) (ast.Value, int, bool) {
	next, ok := p.Literal(pos, "[")
	if !ok {
		return nil, pos, false
	}
	values, next := Many(p, next, ParseValue)
	next, ok = p.Literal(next, "]")
	if !ok {
		return nil, pos, false
	}
	return &ast.ListValue{Values: values}, next, true
}

func parseObject(p *Parser, pos int) (ast.Value, int, bool) {
	next, ok := p.Literal(pos, "{")
	if !ok {
		return nil, pos, false
	}
	fields, next := Many(p, next, parseObjectField)
	next, ok = p.Literal(next, "}")
	if !ok {
		return nil, pos, false
	}
	return &ast.ObjectValue{Fields: fields}, next, true
}

func parseObjectField(p *Parser, pos int) (*ast.ObjectField, int, bool) {
	name, next, ok := p.Name(pos)
	if !ok {
		return nil, pos, false
	}
	next, ok = p.Literal(next, ":")
	if !ok {
		return nil, pos, false
	}
	value, next, ok := ParseValue(p, next)
	if !ok {
		return nil, pos, false
	}
	return &ast.ObjectField{Name: name, Value: value}, next, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
