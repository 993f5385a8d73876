/*
Package ast represents a parsed GraphQL document in code.

The names of the Go types, whenever possible, match 1:1 with the names from
the [GraphQL specification]. Every node with more than one shape (Definition,
Selection, Value, Type and TypeDefinition) is a sealed interface: only the
types declared in this package implement it, so a type switch over the
concrete types is exhaustive.

Nodes are created once by the parser and are never modified afterwards.

[GraphQL specification]: https://spec.graphql.org
*/
package ast
