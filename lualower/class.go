package lualower

import (
	"fmt"
	"strings"

	"github.com/zengjie/TypescriptToLua/slast"
	"github.com/zengjie/TypescriptToLua/sltype"
)

// emitClassDecl lowers a class to a plain Lua table acting as its own
// metatable (spec section 4.4). There is no Lua "class" construct: C is a
// table that doubles as the prototype every instance's __index points at,
// new() allocates an instance and runs the constructor, and inheritance is
// wired by making C itself an instance of the base class — the
// super-prototype trick below.
func (e *emitter) emitClassDecl(n *slast.ClassDecl) (string, error) {
	if n.Declare {
		return "", nil
	}
	classType := e.typeOf(n)
	var sb strings.Builder

	if classType == nil || !classType.IsExtensionClass() {
		header, err := e.emitClassHeader(n)
		if err != nil {
			return "", err
		}
		sb.WriteString(header)
	}

	ctor, fields := splitMembers(n.Members)
	for _, f := range fields {
		if f.Static {
			value := "nil"
			if f.Init != nil {
				text, err := e.emitExpr(f.Init, false)
				if err != nil {
					return "", err
				}
				value = text
			}
			sb.WriteString(fmt.Sprintf("%s%s.%s = %s\n", e.indent, n.Name, f.Name, value))
		}
	}

	ctorText, err := e.emitConstructor(n.Name, ctor, fields)
	if err != nil {
		return "", err
	}
	sb.WriteString(ctorText)

	for _, m := range n.Members {
		method, ok := m.(*slast.MethodMember)
		if !ok {
			continue
		}
		text, err := e.emitMethod(n.Name, method)
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
	}

	return sb.String(), nil
}

func splitMembers(members []slast.ClassMember) (*slast.ConstructorMember, []*slast.FieldMember) {
	var ctor *slast.ConstructorMember
	var fields []*slast.FieldMember
	for _, m := range members {
		switch mm := m.(type) {
		case *slast.ConstructorMember:
			ctor = mm
		case *slast.FieldMember:
			fields = append(fields, mm)
		}
	}
	return ctor, fields
}

// emitClassHeader emits the `C = ...` declaration with its reopen guard,
// the `C.__index = C` self-reference, the `C.__base` wiring (only when
// there's a kept superclass), and the generated C.new allocator.
func (e *emitter) emitClassHeader(n *slast.ClassDecl) (string, error) {
	name := n.Name
	var extType sltype.Type
	if n.Extends != nil {
		extType = e.typeOf(n.Extends)
	}
	dropExtends := extType != nil && extType.IsPureAbstractClass()
	reopenGuard := true
	if extType != nil && extType.HasCustomDecorator("NoClassOr") {
		reopenGuard = false
	}

	var sb strings.Builder
	if n.Extends != nil && !dropExtends {
		base, err := e.emitExpr(n.Extends, false)
		if err != nil {
			return "", err
		}
		if reopenGuard {
			sb.WriteString(fmt.Sprintf("%s%s = %s or %s.new()\n", e.indent, name, name, base))
		} else {
			sb.WriteString(fmt.Sprintf("%s%s = %s.new()\n", e.indent, name, base))
		}
		sb.WriteString(fmt.Sprintf("%s%s.__index = %s\n", e.indent, name, name))
		sb.WriteString(fmt.Sprintf("%s%s.__base = %s\n", e.indent, name, base))
	} else {
		if reopenGuard {
			sb.WriteString(fmt.Sprintf("%s%s = %s or {}\n", e.indent, name, name))
		} else {
			sb.WriteString(fmt.Sprintf("%s%s = {}\n", e.indent, name))
		}
		sb.WriteString(fmt.Sprintf("%s%s.__index = %s\n", e.indent, name, name))
	}

	sb.WriteString(fmt.Sprintf("%sfunction %s.new(construct, ...)\n", e.indent, name))
	e.pushIndent()
	sb.WriteString(fmt.Sprintf("%slocal instance = setmetatable({}, %s)\n", e.indent, name))
	sb.WriteString(fmt.Sprintf("%sif construct and %s.constructor then %s.constructor(instance, ...) end\n", e.indent, name, name))
	sb.WriteString(fmt.Sprintf("%sreturn instance\n", e.indent))
	e.popIndent()
	sb.WriteString(fmt.Sprintf("%send\n", e.indent))

	return sb.String(), nil
}

// emitConstructor merges field-modifier parameters, instance field
// initializers, and the constructor's own body into a single
// C.constructor(self, ...) function, in that order (spec section 4.4).
// Nothing is emitted when there's neither an explicit constructor nor any
// instance field with an initializer.
func (e *emitter) emitConstructor(className string, ctor *slast.ConstructorMember, fields []*slast.FieldMember) (string, error) {
	var instanceFields []*slast.FieldMember
	for _, f := range fields {
		if !f.Static && f.Init != nil {
			instanceFields = append(instanceFields, f)
		}
	}
	if ctor == nil && len(instanceFields) == 0 {
		return "", nil
	}

	var params []slast.Param
	var body []slast.Statement
	if ctor != nil {
		params = ctor.Params
		body = ctor.Body
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%sfunction %s.constructor(%s)\n", e.indent, className, joinArgs(append([]string{"self"}, paramNames(params)...))))
	e.pushIndent()
	for _, p := range params {
		if p.FieldModifier {
			sb.WriteString(fmt.Sprintf("%sself.%s = %s\n", e.indent, p.Name, p.Name))
		}
	}
	for _, f := range instanceFields {
		text, err := e.emitExpr(f.Init, false)
		if err != nil {
			e.popIndent()
			return "", err
		}
		sb.WriteString(fmt.Sprintf("%sself.%s = %s\n", e.indent, f.Name, text))
	}
	for _, s := range body {
		text, err := e.emitStmt(s)
		if err != nil {
			e.popIndent()
			return "", err
		}
		sb.WriteString(text)
	}
	e.popIndent()
	sb.WriteString(fmt.Sprintf("%send\n", e.indent))
	return sb.String(), nil
}

// emitMethod emits an instance method as C.NAME(self, params) or, for a
// static method, as C.NAME(params) with no implicit receiver.
func (e *emitter) emitMethod(className string, m *slast.MethodMember) (string, error) {
	params := paramNames(m.Params)
	if !m.Static {
		params = append([]string{"self"}, params...)
	}
	body, err := e.emitBody(m.Body)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%sfunction %s.%s(%s)\n%s%send\n", e.indent, className, m.Name, joinArgs(params), body, e.indent), nil
}
