package slastjson

import "github.com/zengjie/TypescriptToLua/sltype"

// wireTypeEntry is one row of the input's "types" array, correlated back
// to a decoded node by ID. The field set mirrors sltype.Type's nine
// queries exactly: the boolean flags back the Is* queries, and Decorators
// backs HasCustomDecorator (the class emitter looks up @NoClassOr there;
// pure-abstract classes are marked by isPureAbstractClass, not by name).
type wireTypeEntry struct {
	ID                       int      `json:"id"`
	IsString                 bool     `json:"isString"`
	IsStringLiteral          bool     `json:"isStringLiteral"`
	IsObject                 bool     `json:"isObject"`
	IsArray                  bool     `json:"isArray"`
	IsTuple                  bool     `json:"isTuple"`
	IsCompileMembersOnlyEnum bool     `json:"isCompileMembersOnlyEnum"`
	IsPureAbstractClass      bool     `json:"isPureAbstractClass"`
	IsExtensionClass         bool     `json:"isExtensionClass"`
	Decorators               []string `json:"decorators"`
}

func (e wireTypeEntry) toType() sltype.Type {
	var t sltype.Type
	switch {
	case e.IsStringLiteral:
		t = sltype.StringLiteral()
	case e.IsString:
		t = sltype.String()
	case e.IsArray:
		t = sltype.Array()
	case e.IsTuple:
		t = sltype.Tuple()
	case e.IsObject:
		t = sltype.Object()
	case e.IsCompileMembersOnlyEnum:
		t = sltype.CompileMembersOnlyEnum()
	case e.IsPureAbstractClass:
		t = sltype.PureAbstractClass()
	case e.IsExtensionClass:
		t = sltype.ExtensionClass()
	default:
		t = sltype.Unknown()
	}
	for _, name := range e.Decorators {
		t = sltype.WithDecorator(t, name)
	}
	return t
}
