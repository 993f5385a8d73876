package ast

// Type is a reference to a type: one of *NamedType, *ListType or *NonNullType.
//
// http://spec.graphql.org/draft/#sec-Type-References
type Type interface {
	// Kind returns one of NAMED, LIST or NON_NULL.
	Kind() string
	// String returns the type as it would be written in GraphQL, e.g. "[Int!]!".
	String() string
	isType()
}

// NamedType is a reference to a type by name.
type NamedType struct {
	Name string
}

// ListType wraps the type of its elements.
type ListType struct {
	OfType Type
}

// NonNullType wraps a *NamedType or a *ListType, never another NonNullType.
type NonNullType struct {
	OfType Type
}

func (*NamedType) Kind() string   { return "NAMED" }
func (*ListType) Kind() string    { return "LIST" }
func (*NonNullType) Kind() string { return "NON_NULL" }

func (t *NamedType) String() string   { return t.Name }
func (t *ListType) String() string    { return "[" + t.OfType.String() + "]" }
func (t *NonNullType) String() string { return t.OfType.String() + "!" }

func (*NamedType) isType()   {}
func (*ListType) isType()    {}
func (*NonNullType) isType() {}
