package ast

// Value is one of *Variable, *IntValue, *FloatValue, *BooleanValue,
// *StringValue, *EnumValue, *NullValue, *ListValue or *ObjectValue.
//
// http://spec.graphql.org/draft/#Value
type Value interface {
	isValue()
}

// Variable is a reference to an operation variable: `$name`.
type Variable struct {
	Name string
}

// IntValue is an integer literal.
type IntValue struct {
	Value int64
}

// FloatValue is a literal written with a decimal point, or an integer literal
// that could not be represented exactly as an int64.
type FloatValue struct {
	Value float64
}

type BooleanValue struct {
	Value bool
}

// StringValue holds the decoded string, escapes already applied.
type StringValue struct {
	Value string
}

// EnumValue is any bare name that is not true, false or null.
type EnumValue struct {
	Value string
}

type NullValue struct{}

type ListValue struct {
	Values []Value
}

// ObjectValue keeps its fields in source order. Duplicate names are kept.
type ObjectValue struct {
	Fields []*ObjectField
}

type ObjectField struct {
	Name  string
	Value Value
}

func (*Variable) isValue()     {}
func (*IntValue) isValue()     {}
func (*FloatValue) isValue()   {}
func (*BooleanValue) isValue() {}
func (*StringValue) isValue()  {}
func (*EnumValue) isValue()    {}
func (*NullValue) isValue()    {}
func (*ListValue) isValue()    {}
func (*ObjectValue) isValue()  {}
