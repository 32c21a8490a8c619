// Package sltype defines the external type-oracle contract the lowering
// engine queries (spec section 3: Type, TypeChecker). The engine treats
// Type as a black box beyond the query methods below — it never inspects
// a concrete implementation's internals.
package sltype

import "github.com/zengjie/TypescriptToLua/slast"

// Type is the opaque per-node type handle the checker hands back. A real
// front-end's type-checker implements this over its own type
// representation; nothing in this repository requires more than these
// nine queries.
type Type interface {
	IsString() bool
	IsStringLiteral() bool
	IsObject() bool
	IsArray() bool
	IsTuple() bool
	IsCompileMembersOnlyEnum() bool
	IsPureAbstractClass() bool
	IsExtensionClass() bool
	HasCustomDecorator(name string) bool
}

// TypeChecker maps a Node to its Type. Implementations must be pure and
// idempotent: calling TypeOf on the same node any number of times must
// return an equal answer (spec section 5).
type TypeChecker interface {
	TypeOf(node slast.Node) Type
}
