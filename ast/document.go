package ast

import "github.com/graph-gophers/graphql-parser/errors"

// Document is the result of parsing a GraphQL source text. Definitions are
// kept in source order.
//
// http://spec.graphql.org/draft/#sec-Document
type Document struct {
	Definitions []Definition
}

// Operations returns the operation definitions of the document in source order.
func (d *Document) Operations() []*OperationDefinition {
	var ops []*OperationDefinition
	for _, def := range d.Definitions {
		if op, ok := def.(*OperationDefinition); ok {
			ops = append(ops, op)
		}
	}
	return ops
}

// Fragments returns the fragment definitions of the document in source order.
func (d *Document) Fragments() []*FragmentDefinition {
	var frags []*FragmentDefinition
	for _, def := range d.Definitions {
		if frag, ok := def.(*FragmentDefinition); ok {
			frags = append(frags, frag)
		}
	}
	return frags
}

// TypeDefinitions returns the type-system definitions of the document in source order.
func (d *Document) TypeDefinitions() []TypeDefinition {
	var types []TypeDefinition
	for _, def := range d.Definitions {
		if t, ok := def.(TypeDefinition); ok {
			types = append(types, t)
		}
	}
	return types
}

// Definition is one of *OperationDefinition, *FragmentDefinition or a TypeDefinition.
type Definition interface {
	isDefinition()
}

// OperationType is the kind of an operation.
type OperationType string

const (
	Query        OperationType = "QUERY"
	Mutation     OperationType = "MUTATION"
	Subscription OperationType = "SUBSCRIPTION"
)

// OperationDefinition represents a query, mutation or subscription.
//
// http://spec.graphql.org/draft/#OperationDefinition
type OperationDefinition struct {
	Type OperationType
	Node
	Loc errors.Location
}

// Node holds the parts every operation shares. An anonymous operation has an
// empty Name.
type Node struct {
	Name                string
	VariableDefinitions []*VariableDefinition
	Directives          DirectiveList
	SelectionSet        SelectionSet
}

// VariableDefinition is `$name: Type = default`. DefaultValue is nil when absent.
//
// http://spec.graphql.org/draft/#VariableDefinition
type VariableDefinition struct {
	Name         string
	Type         Type
	DefaultValue Value
}

// FragmentDefinition represents `fragment Name on Type @directives { ... }`.
//
// http://spec.graphql.org/draft/#FragmentDefinition
type FragmentDefinition struct {
	Name          string
	TypeCondition *NamedType
	Directives    DirectiveList
	SelectionSet  SelectionSet
	Loc           errors.Location
}

func (*OperationDefinition) isDefinition() {}
func (*FragmentDefinition) isDefinition()  {}

// SelectionSet is an ordered list of selections.
type SelectionSet []Selection

// Selection is one of *Field, *FragmentSpread or *InlineFragment.
//
// http://spec.graphql.org/draft/#Selection
type Selection interface {
	isSelection()
}

// Field represents a selected field. Alias is empty when the field is not
// aliased and SelectionSet is nil for leaf fields.
//
// http://spec.graphql.org/draft/#sec-Language.Fields
type Field struct {
	Alias        string
	Name         string
	Arguments    ArgumentList
	Directives   DirectiveList
	SelectionSet SelectionSet
	Loc          errors.Location
}

// ResponseKey is the alias when present, the field name otherwise.
func (f *Field) ResponseKey() string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

// FragmentSpread is a reference to a named fragment: `...Name`.
//
// http://spec.graphql.org/draft/#FragmentSpread
type FragmentSpread struct {
	Name       string
	Directives DirectiveList
	Loc        errors.Location
}

// InlineFragment is `... on Type @directives { ... }`.
//
// http://spec.graphql.org/draft/#InlineFragment
type InlineFragment struct {
	TypeCondition *NamedType
	Directives    DirectiveList
	SelectionSet  SelectionSet
	Loc           errors.Location
}

func (*Field) isSelection()          {}
func (*FragmentSpread) isSelection() {}
func (*InlineFragment) isSelection() {}

// Argument is a name and value pair passed to a field or directive.
type Argument struct {
	Name  string
	Value Value
}

type ArgumentList []*Argument

// Get returns the value of the first argument with the given name.
func (l ArgumentList) Get(name string) (Value, bool) {
	for _, arg := range l {
		if arg.Name == name {
			return arg.Value, true
		}
	}
	return nil, false
}

// Directive is `@name(arguments)`.
//
// http://spec.graphql.org/draft/#sec-Language.Directives
type Directive struct {
	Name      string
	Arguments ArgumentList
}

type DirectiveList []*Directive

// Get returns the first directive with the given name, or nil.
func (l DirectiveList) Get(name string) *Directive {
	for _, d := range l {
		if d.Name == name {
			return d
		}
	}
	return nil
}
