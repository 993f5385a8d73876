// Package printer renders syntax trees back into GraphQL source text.
//
// The output is canonical: two-space indentation, one selection or field
// per line, a blank line between definitions. Parsing the output of Print
// yields a document equal to the printed one, apart from source locations.
package printer

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/graph-gophers/graphql-parser/ast"
)

const indentUnit = "  "

type printer struct {
	buf    *bytes.Buffer
	indent int
	// A bare selection set only reads back as a query when it is the whole
	// document.
	shorthand bool
}

// Print renders a document.
func Print(doc *ast.Document) string {
	p := newPrinter()
	defer p.release()
	p.shorthand = len(doc.Definitions) == 1
	for i, def := range doc.Definitions {
		if i > 0 {
			p.buf.WriteString("\n")
		}
		p.definition(def)
		p.buf.WriteString("\n")
	}
	return p.buf.String()
}

// PrintValue renders a single value on one line.
func PrintValue(v ast.Value) string {
	p := newPrinter()
	defer p.release()
	p.value(v)
	return p.buf.String()
}

// PrintType renders a type reference, e.g. [String!]!.
func PrintType(t ast.Type) string {
	return t.String()
}

func (p *printer) write(s ...string) {
	for _, str := range s {
		p.buf.WriteString(str)
	}
}

func (p *printer) newline() {
	p.buf.WriteString("\n")
	p.buf.WriteString(strings.Repeat(indentUnit, p.indent))
}

func (p *printer) definition(def ast.Definition) {
	switch d := def.(type) {
	case *ast.OperationDefinition:
		p.operation(d)
	case *ast.FragmentDefinition:
		p.write("fragment ", d.Name, " on ", d.TypeCondition.Name)
		p.directives(d.Directives)
		p.write(" ")
		p.selectionSet(d.SelectionSet)
	case *ast.ObjectTypeDefinition:
		p.objectType(d)
	case *ast.InterfaceTypeDefinition:
		p.write("interface ", d.Name)
		p.directives(d.Directives)
		p.write(" ")
		p.fieldsDefinition(d.Fields)
	case *ast.UnionTypeDefinition:
		p.write("union ", d.Name)
		p.directives(d.Directives)
		p.write(" = ", strings.Join(d.Types, " | "))
	case *ast.ScalarTypeDefinition:
		p.write("scalar ", d.Name)
		p.directives(d.Directives)
	case *ast.EnumTypeDefinition:
		p.write("enum ", d.Name)
		p.directives(d.Directives)
		p.write(" {")
		p.indent++
		for _, v := range d.Values {
			p.newline()
			p.write(v.Name)
			p.directives(v.Directives)
		}
		p.indent--
		p.newline()
		p.write("}")
	case *ast.InputObjectTypeDefinition:
		p.write("input ", d.Name)
		p.directives(d.Directives)
		p.write(" {")
		p.indent++
		for _, f := range d.Fields {
			p.newline()
			p.inputValue(f)
		}
		p.indent--
		p.newline()
		p.write("}")
	case *ast.TypeExtensionDefinition:
		p.write("extend ")
		p.objectType(d.Definition)
	}
}

func (p *printer) operation(op *ast.OperationDefinition) {
	if p.shorthand && op.Type == ast.Query && op.Name == "" && len(op.VariableDefinitions) == 0 && len(op.Directives) == 0 {
		p.selectionSet(op.SelectionSet)
		return
	}
	p.write(strings.ToLower(string(op.Type)))
	if op.Name != "" {
		p.write(" ", op.Name)
	}
	if len(op.VariableDefinitions) > 0 {
		p.write("(")
		for i, v := range op.VariableDefinitions {
			if i > 0 {
				p.write(", ")
			}
			p.write("$", v.Name, ": ", v.Type.String())
			if v.DefaultValue != nil {
				p.write(" = ")
				p.value(v.DefaultValue)
			}
		}
		p.write(")")
	}
	p.directives(op.Directives)
	p.write(" ")
	p.selectionSet(op.SelectionSet)
}

func (p *printer) selectionSet(sels ast.SelectionSet) {
	p.write("{")
	p.indent++
	for _, sel := range sels {
		p.newline()
		p.selection(sel)
	}
	p.indent--
	p.newline()
	p.write("}")
}

func (p *printer) selection(sel ast.Selection) {
	switch s := sel.(type) {
	case *ast.Field:
		if s.Alias != "" {
			p.write(s.Alias, ": ")
		}
		p.write(s.Name)
		p.arguments(s.Arguments)
		p.directives(s.Directives)
		if s.SelectionSet != nil {
			p.write(" ")
			p.selectionSet(s.SelectionSet)
		}
	case *ast.FragmentSpread:
		p.write("...", s.Name)
		p.directives(s.Directives)
	case *ast.InlineFragment:
		p.write("... on ", s.TypeCondition.Name)
		p.directives(s.Directives)
		p.write(" ")
		p.selectionSet(s.SelectionSet)
	}
}

func (p *printer) arguments(args ast.ArgumentList) {
	if len(args) == 0 {
		return
	}
	p.write("(")
	for i, arg := range args {
		if i > 0 {
			p.write(", ")
		}
		p.write(arg.Name, ": ")
		p.value(arg.Value)
	}
	p.write(")")
}

func (p *printer) directives(dirs ast.DirectiveList) {
	for _, d := range dirs {
		p.write(" @", d.Name)
		p.arguments(d.Arguments)
	}
}

func (p *printer) objectType(o *ast.ObjectTypeDefinition) {
	p.write("type ", o.Name)
	if len(o.Interfaces) > 0 {
		p.write(" implements ", strings.Join(o.Interfaces, " & "))
	}
	p.directives(o.Directives)
	p.write(" ")
	p.fieldsDefinition(o.Fields)
}

func (p *printer) fieldsDefinition(fields ast.FieldsDefinition) {
	p.write("{")
	p.indent++
	for _, f := range fields {
		p.newline()
		p.write(f.Name)
		if len(f.Arguments) > 0 {
			p.write("(")
			for i, arg := range f.Arguments {
				if i > 0 {
					p.write(", ")
				}
				p.inputValue(arg)
			}
			p.write(")")
		}
		p.write(": ", f.Type.String())
		p.directives(f.Directives)
	}
	p.indent--
	p.newline()
	p.write("}")
}

func (p *printer) inputValue(v *ast.InputValueDefinition) {
	p.write(v.Name, ": ", v.Type.String())
	if v.DefaultValue != nil {
		p.write(" = ")
		p.value(v.DefaultValue)
	}
	p.directives(v.Directives)
}

func (p *printer) value(v ast.Value) {
	switch v := v.(type) {
	case *ast.Variable:
		p.write("$", v.Name)
	case *ast.IntValue:
		p.write(strconv.FormatInt(v.Value, 10))
	case *ast.FloatValue:
		p.write(formatFloat(v.Value))
	case *ast.BooleanValue:
		p.write(strconv.FormatBool(v.Value))
	case *ast.StringValue:
		p.write(quote(v.Value))
	case *ast.EnumValue:
		p.write(v.Value)
	case *ast.NullValue:
		p.write("null")
	case *ast.ListValue:
		p.write("[")
		for i, elem := range v.Values {
			if i > 0 {
				p.write(", ")
			}
			p.value(elem)
		}
		p.write("]")
	case *ast.ObjectValue:
		p.write("{")
		for i, f := range v.Fields {
			if i > 0 {
				p.write(", ")
			}
			p.write(f.Name, ": ")
			p.value(f.Value)
		}
		p.write("}")
	}
}

// formatFloat always includes a decimal point so the literal reads back as
// a Float.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

const hex = "0123456789abcdef"

// quote escapes s as a JSON string literal. Bytes at or above 0x20 other
// than the quote and backslash are written unchanged.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if c < 0x20 {
				b.WriteString(`\u00`)
				b.WriteByte(hex[c>>4])
				b.WriteByte(hex[c&0xf])
				continue
			}
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
