package ast

import "github.com/graph-gophers/graphql-parser/errors"

// TypeDefinition is one of the type-system definition forms:
// *ObjectTypeDefinition, *InterfaceTypeDefinition, *UnionTypeDefinition,
// *ScalarTypeDefinition, *EnumTypeDefinition, *InputObjectTypeDefinition or
// *TypeExtensionDefinition.
//
// http://spec.graphql.org/draft/#TypeDefinition
type TypeDefinition interface {
	Definition
	// TypeName returns the name of the defined (or extended) type.
	TypeName() string
	// Location returns the position of the definition's keyword.
	Location() errors.Location
	isTypeDefinition()
}

// ObjectTypeDefinition represents a GraphQL ObjectTypeDefinition.
//
//	type FooObject implements Bar {
//		foo: String
//	}
//
// https://spec.graphql.org/draft/#sec-Objects
type ObjectTypeDefinition struct {
	Name       string
	Interfaces []string
	Directives DirectiveList
	Fields     FieldsDefinition
	Loc        errors.Location
}

// InterfaceTypeDefinition represents a list of named fields and their arguments.
//
// http://spec.graphql.org/draft/#sec-Interfaces
type InterfaceTypeDefinition struct {
	Name       string
	Directives DirectiveList
	Fields     FieldsDefinition
	Loc        errors.Location
}

// UnionTypeDefinition lists one or more member types: `union U = A | B`.
//
// http://spec.graphql.org/draft/#sec-Unions
type UnionTypeDefinition struct {
	Name       string
	Directives DirectiveList
	Types      []string
	Loc        errors.Location
}

// ScalarTypeDefinition types represent primitive leaf values.
//
// http://spec.graphql.org/draft/#sec-Scalars
type ScalarTypeDefinition struct {
	Name       string
	Directives DirectiveList
	Loc        errors.Location
}

// EnumTypeDefinition defines one or more possible values.
//
// http://spec.graphql.org/draft/#sec-Enums
type EnumTypeDefinition struct {
	Name       string
	Directives DirectiveList
	Values     []*EnumValueDefinition
	Loc        errors.Location
}

type EnumValueDefinition struct {
	Name       string
	Directives DirectiveList
}

// InputObjectTypeDefinition defines a set of input fields.
//
// http://spec.graphql.org/draft/#sec-Input-Objects
type InputObjectTypeDefinition struct {
	Name       string
	Directives DirectiveList
	Fields     InputValueDefinitionList
	Loc        errors.Location
}

// TypeExtensionDefinition is `extend type ...`. Only object types can be extended.
//
// http://spec.graphql.org/draft/#sec-Object-Extensions
type TypeExtensionDefinition struct {
	Definition *ObjectTypeDefinition
	Loc        errors.Location
}

// FieldDefinition is `name(arguments): Type`.
type FieldDefinition struct {
	Name       string
	Arguments  InputValueDefinitionList
	Type       Type
	Directives DirectiveList
}

type FieldsDefinition []*FieldDefinition

// Get returns the field definition with the given name, or nil.
func (l FieldsDefinition) Get(name string) *FieldDefinition {
	for _, f := range l {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// InputValueDefinition is `name: Type = default`. It is used for field
// arguments and for the fields of input objects.
type InputValueDefinition struct {
	Name         string
	Type         Type
	DefaultValue Value
	Directives   DirectiveList
}

type InputValueDefinitionList []*InputValueDefinition

func (l InputValueDefinitionList) Get(name string) *InputValueDefinition {
	for _, v := range l {
		if v.Name == name {
			return v
		}
	}
	return nil
}

func (*ObjectTypeDefinition) isDefinition()      {}
func (*InterfaceTypeDefinition) isDefinition()   {}
func (*UnionTypeDefinition) isDefinition()       {}
func (*ScalarTypeDefinition) isDefinition()      {}
func (*EnumTypeDefinition) isDefinition()        {}
func (*InputObjectTypeDefinition) isDefinition() {}
func (*TypeExtensionDefinition) isDefinition()   {}

func (*ObjectTypeDefinition) isTypeDefinition()      {}
func (*InterfaceTypeDefinition) isTypeDefinition()   {}
func (*UnionTypeDefinition) isTypeDefinition()       {}
func (*ScalarTypeDefinition) isTypeDefinition()      {}
func (*EnumTypeDefinition) isTypeDefinition()        {}
func (*InputObjectTypeDefinition) isTypeDefinition() {}
func (*TypeExtensionDefinition) isTypeDefinition()   {}

func (t *ObjectTypeDefinition) TypeName() string      { return t.Name }
func (t *InterfaceTypeDefinition) TypeName() string   { return t.Name }
func (t *UnionTypeDefinition) TypeName() string       { return t.Name }
func (t *ScalarTypeDefinition) TypeName() string      { return t.Name }
func (t *EnumTypeDefinition) TypeName() string        { return t.Name }
func (t *InputObjectTypeDefinition) TypeName() string { return t.Name }
func (t *TypeExtensionDefinition) TypeName() string   { return t.Definition.Name }

func (t *ObjectTypeDefinition) Location() errors.Location      { return t.Loc }
func (t *InterfaceTypeDefinition) Location() errors.Location   { return t.Loc }
func (t *UnionTypeDefinition) Location() errors.Location       { return t.Loc }
func (t *ScalarTypeDefinition) Location() errors.Location      { return t.Loc }
func (t *EnumTypeDefinition) Location() errors.Location        { return t.Loc }
func (t *InputObjectTypeDefinition) Location() errors.Location { return t.Loc }
func (t *TypeExtensionDefinition) Location() errors.Location   { return t.Loc }
