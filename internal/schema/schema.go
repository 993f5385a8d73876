// Package schema implements the grammar of type-system definitions.
package schema

import (
	"github.com/graph-gophers/graphql-parser/ast"
	"github.com/graph-gophers/graphql-parser/internal/common"
)

// ParseTypeDefinition parses one of the type-system forms. Each form starts
// with its own keyword, so at most one of the alternatives can match.
//
// http://spec.graphql.org/draft/#TypeSystemDefinition
func ParseTypeDefinition(p *common.Parser, pos int) (ast.TypeDefinition, int, bool) {
	return common.Choice(p, pos,
		parseObjectTypeDef,
		parseInterfaceDef,
		parseUnionDef,
		parseScalarDef,
		parseEnumDef,
		parseInputDef,
		parseExtensionDef,
	)
}

// failed labels a failure inside a form whose keyword matched; start is the
// offset after the keyword.
func failed(p *common.Parser, start int) {
	p.Label(start, "typeDefinition error")
}

func parseObjectTypeDef(p *common.Parser, pos int) (ast.TypeDefinition, int, bool) {
	next, ok := p.Literal(pos, "type")
	if !ok {
		return nil, pos, false
	}
	o, next, ok := parseObjectTypeBody(p, next)
	if !ok {
		failed(p, next)
		return nil, pos, false
	}
	o.Loc = p.Location(pos)
	return o, next, true
}

// parseObjectTypeBody parses what follows the "type" keyword:
//
//	Name implements I1 & I2 @directives { fields }
//
// It is shared with type extensions.
func parseObjectTypeBody(p *common.Parser, pos int) (*ast.ObjectTypeDefinition, int, bool) {
	o := &ast.ObjectTypeDefinition{}
	name, next, ok := p.Name(pos)
	if !ok {
		return nil, pos, false
	}
	o.Name = name
	o.Interfaces, next = parseImplementsInterfaces(p, next)
	o.Directives, next = common.ParseDirectives(p, next)
	o.Fields, next, ok = parseFieldsDefinition(p, next)
	if !ok {
		return nil, pos, false
	}
	return o, next, true
}

// parseImplementsInterfaces accepts the interface names separated by white
// space, commas or '&'. A leading '&' is allowed.
func parseImplementsInterfaces(p *common.Parser, pos int) ([]string, int) {
	next, ok := p.Literal(pos, "implements")
	if !ok {
		return nil, pos
	}
	names, next, ok := common.Many1(p, next, func(p *common.Parser, pos int) (string, int, bool) {
		next := pos
		if n, ok := p.Literal(pos, "&"); ok {
			next = n
		}
		name, next, ok := p.Name(next)
		if !ok {
			return "", pos, false
		}
		return name, next, true
	})
	if !ok {
		return nil, pos
	}
	return names, next
}

func parseFieldsDefinition(p *common.Parser, pos int) (ast.FieldsDefinition, int, bool) {
	return common.Delimited(p, pos, "{", parseFieldDefinition, "}")
}

func parseFieldDefinition(p *common.Parser, pos int) (*ast.FieldDefinition, int, bool) {
	f := &ast.FieldDefinition{}
	name, next, ok := p.Name(pos)
	if !ok {
		return nil, pos, false
	}
	f.Name = name
	f.Arguments, next = parseArgumentsDefinition(p, next)
	if next, ok = p.Literal(next, ":"); !ok {
		return nil, pos, false
	}
	if f.Type, next, ok = common.ParseType(p, next); !ok {
		return nil, pos, false
	}
	f.Directives, next = common.ParseDirectives(p, next)
	return f, next, true
}

func parseArgumentsDefinition(p *common.Parser, pos int) (ast.InputValueDefinitionList, int) {
	args, next, ok := common.Delimited(p, pos, "(", parseInputValueDefinition, ")")
	if !ok {
		return nil, pos
	}
	return args, next
}

// parseInputValueDefinition parses `name: Type = default @directives`, used by
// field arguments and input object fields.
func parseInputValueDefinition(p *common.Parser, pos int) (*ast.InputValueDefinition, int, bool) {
	v := &ast.InputValueDefinition{}
	name, next, ok := p.Name(pos)
	if !ok {
		return nil, pos, false
	}
	v.Name = name
	if next, ok = p.Literal(next, ":"); !ok {
		return nil, pos, false
	}
	if v.Type, next, ok = common.ParseType(p, next); !ok {
		return nil, pos, false
	}
	if n, hasDefault := p.Literal(next, "="); hasDefault {
		if v.DefaultValue, next, ok = common.ParseValue(p, n); !ok {
			return nil, pos, false
		}
	}
	v.Directives, next = common.ParseDirectives(p, next)
	return v, next, true
}

func parseInterfaceDef(p *common.Parser, pos int) (ast.TypeDefinition, int, bool) {
	start, ok := p.Literal(pos, "interface")
	if !ok {
		return nil, pos, false
	}
	i := &ast.InterfaceTypeDefinition{Loc: p.Location(pos)}
	name, next, ok := p.Name(start)
	if ok {
		i.Name = name
		i.Directives, next = common.ParseDirectives(p, next)
		i.Fields, next, ok = parseFieldsDefinition(p, next)
	}
	if !ok {
		failed(p, start)
		return nil, pos, false
	}
	return i, next, true
}

func parseUnionDef(p *common.Parser, pos int) (ast.TypeDefinition, int, bool) {
	start, ok := p.Literal(pos, "union")
	if !ok {
		return nil, pos, false
	}
	u := &ast.UnionTypeDefinition{Loc: p.Location(pos)}
	name, next, ok := p.Name(start)
	if ok {
		u.Name = name
		u.Directives, next = common.ParseDirectives(p, next)
		next, ok = p.Literal(next, "=")
	}
	if ok {
		u.Types, next, ok = parseUnionMembers(p, next)
	}
	if !ok {
		failed(p, start)
		return nil, pos, false
	}
	return u, next, true
}

// parseUnionMembers parses `|? A | B | ...` with at least one member.
func parseUnionMembers(p *common.Parser, pos int) ([]string, int, bool) {
	next := pos
	if n, ok := p.Literal(pos, "|"); ok {
		next = n
	}
	first, next, ok := p.Name(next)
	if !ok {
		return nil, pos, false
	}
	rest, next := common.Many(p, next, func(p *common.Parser, pos int) (string, int, bool) {
		next, ok := p.Literal(pos, "|")
		if !ok {
			return "", pos, false
		}
		name, next, ok := p.Name(next)
		if !ok {
			return "", pos, false
		}
		return name, next, true
	})
	return append([]string{first}, rest...), next, true
}

func parseScalarDef(p *common.Parser, pos int) (ast.TypeDefinition, int, bool) {
	start, ok := p.Literal(pos, "scalar")
	if !ok {
		return nil, pos, false
	}
	name, next, ok := p.Name(start)
	if !ok {
		failed(p, start)
		return nil, pos, false
	}
	s := &ast.ScalarTypeDefinition{Name: name, Loc: p.Location(pos)}
	s.Directives, next = common.ParseDirectives(p, next)
	return s, next, true
}

func parseEnumDef(p *common.Parser, pos int) (ast.TypeDefinition, int, bool) {
	start, ok := p.Literal(pos, "enum")
	if !ok {
		return nil, pos, false
	}
	e := &ast.EnumTypeDefinition{Loc: p.Location(pos)}
	name, next, ok := p.Name(start)
	if ok {
		e.Name = name
		e.Directives, next = common.ParseDirectives(p, next)
		e.Values, next, ok = common.Delimited(p, next, "{", parseEnumValueDefinition, "}")
	}
	if !ok {
		failed(p, start)
		return nil, pos, false
	}
	return e, next, true
}

func parseEnumValueDefinition(p *common.Parser, pos int) (*ast.EnumValueDefinition, int, bool) {
	name, next, ok := p.Name(pos)
	if !ok {
		return nil, pos, false
	}
	v := &ast.EnumValueDefinition{Name: name}
	v.Directives, next = common.ParseDirectives(p, next)
	return v, next, true
}

func parseInputDef(p *common.Parser, pos int) (ast.TypeDefinition, int, bool) {
	start, ok := p.Literal(pos, "input")
	if !ok {
		return nil, pos, false
	}
	i := &ast.InputObjectTypeDefinition{Loc: p.Location(pos)}
	name, next, ok := p.Name(start)
	if ok {
		i.Name = name
		i.Directives, next = common.ParseDirectives(p, next)
		i.Fields, next, ok = common.Delimited(p, next, "{", parseInputValueDefinition, "}")
	}
	if !ok {
		failed(p, start)
		return nil, pos, false
	}
	return i, next, true
}

// parseExtensionDef parses `extend type ...`, reusing the object type grammar.
//
// http://spec.graphql.org/draft/#ObjectTypeExtension
func parseExtensionDef(p *common.Parser, pos int) (ast.TypeDefinition, int, bool) {
	start, ok := p.Literal(pos, "extend")
	if !ok {
		return nil, pos, false
	}
	next, ok := p.Literal(start, "type")
	var o *ast.ObjectTypeDefinition
	if ok {
		o, next, ok = parseObjectTypeBody(p, next)
	}
	if !ok {
		failed(p, start)
		return nil, pos, false
	}
	o.Loc = p.Location(start)
	return &ast.TypeExtensionDefinition{Definition: o, Loc: p.Location(pos)}, next, true
}
