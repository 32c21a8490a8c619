package sltype

import "github.com/zengjie/TypescriptToLua/slast"

// simpleType is a minimal, concrete Type implementation. It is not part of
// the engine's input contract (a real front-end's checker would implement
// Type over its own richer type representation) — it exists so this
// repository's tests and its CLI's JSON front-end have something concrete
// to construct and hand to lualower.Transpile.
type simpleType struct {
	isString                bool
	isStringLiteral         bool
	isObject                bool
	isArray                 bool
	isTuple                 bool
	isCompileMembersOnlyEnum bool
	isPureAbstractClass     bool
	isExtensionClass        bool
	decorators              map[string]bool
}

func (t *simpleType) IsString() bool                { return t.isString }
func (t *simpleType) IsStringLiteral() bool         { return t.isStringLiteral }
func (t *simpleType) IsObject() bool                { return t.isObject }
func (t *simpleType) IsArray() bool                 { return t.isArray }
func (t *simpleType) IsTuple() bool                 { return t.isTuple }
func (t *simpleType) IsCompileMembersOnlyEnum() bool { return t.isCompileMembersOnlyEnum }
func (t *simpleType) IsPureAbstractClass() bool     { return t.isPureAbstractClass }
func (t *simpleType) IsExtensionClass() bool        { return t.isExtensionClass }
func (t *simpleType) HasCustomDecorator(name string) bool {
	return t.decorators != nil && t.decorators[name]
}

// String, Array, Object, Tuple, and StringLiteral build the handful of
// Type values tests need without exposing simpleType's fields.
func String() Type        { return &simpleType{isString: true} }
func StringLiteral() Type { return &simpleType{isString: true, isStringLiteral: true} }
func Array() Type         { return &simpleType{isArray: true} }
func Object() Type        { return &simpleType{isObject: true} }
func Tuple() Type         { return &simpleType{isTuple: true} }
func Unknown() Type       { return &simpleType{} }

// CompileMembersOnlyEnum, PureAbstractClass, and ExtensionClass build the
// decorator-bearing Type values the class and enum emitters branch on.
func CompileMembersOnlyEnum() Type { return &simpleType{isCompileMembersOnlyEnum: true} }
func PureAbstractClass() Type      { return &simpleType{isPureAbstractClass: true} }
func ExtensionClass() Type         { return &simpleType{isExtensionClass: true} }

// WithDecorator returns a copy of t carrying an additional named
// decorator, so callers can compose e.g. a superclass that is both a pure
// abstract class and decorated @NoClassOr.
func WithDecorator(t Type, name string) Type {
	st, ok := t.(*simpleType)
	base := simpleType{}
	if ok {
		base = *st
	}
	cp := base
	cp.decorators = make(map[string]bool, len(base.decorators)+1)
	for k, v := range base.decorators {
		cp.decorators[k] = v
	}
	cp.decorators[name] = true
	return &cp
}

// Table is a concrete TypeChecker: an identity map from Node to Type,
// mirroring how the teacher's type inference keys ExprTypes by the
// expression node's own identity rather than by a synthesized id.
type Table struct {
	types map[slast.Node]Type
}

// NewTable returns an empty Table. Unannotated nodes type as Unknown().
func NewTable() *Table {
	return &Table{types: make(map[slast.Node]Type)}
}

// Set records the type of node.
func (t *Table) Set(node slast.Node, typ Type) {
	t.types[node] = typ
}

// TypeOf implements TypeChecker.
func (t *Table) TypeOf(node slast.Node) Type {
	if typ, ok := t.types[node]; ok {
		return typ
	}
	return Unknown()
}
