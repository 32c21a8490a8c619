package lualower

import (
	"fmt"

	"github.com/zengjie/TypescriptToLua/slast"
)

// emitCallExpr dispatches a call by the shape of its callee (spec section
// 4.3: Call). A property-access callee on a string or array routes through
// the type-aware rewriters; a property-access callee on anything else
// passes the receiver again as an explicit first argument, since the
// class emitter never uses Lua's colon sugar; a super(...) call invokes
// the base class's constructor directly; anything else is a plain call.
func (e *emitter) emitCallExpr(n *slast.CallExpr) (string, error) {
	if prop, ok := n.Callee.(*slast.PropertyAccessExpr); ok {
		recvType := e.typeOf(prop.X)
		switch {
		case recvType != nil && (recvType.IsString() || recvType.IsStringLiteral()):
			return e.emitStringCall(n, prop)
		case recvType != nil && recvType.IsArray():
			return e.emitArrayCall(n, prop)
		default:
			receiver, err := e.emitExpr(prop.X, false)
			if err != nil {
				return "", err
			}
			callee := receiver + "." + prop.Name
			args, err := e.emitArgs(n.Args)
			if err != nil {
				return "", err
			}
			return callee + "(" + joinArgs(append([]string{receiver}, args...)) + ")", nil
		}
	}
	if _, ok := n.Callee.(*slast.SuperExpr); ok {
		args, err := e.emitArgs(n.Args)
		if err != nil {
			return "", err
		}
		return "self.__base.constructor(" + joinArgs(append([]string{"self"}, args...)) + ")", nil
	}
	callee, err := e.emitExpr(n.Callee, false)
	if err != nil {
		return "", err
	}
	args, err := e.emitArgs(n.Args)
	if err != nil {
		return "", err
	}
	return callee + "(" + joinArgs(args) + ")", nil
}

// emitNewExpr lowers `new C(args)` to `C.new(true, args)`; true tells the
// generated C.new to run the constructor, as opposed to the super-prototype
// instantiation trick the class emitter uses for `C = C or B.new()`.
func (e *emitter) emitNewExpr(n *slast.NewExpr) (string, error) {
	callee, err := e.emitExpr(n.Callee, false)
	if err != nil {
		return "", err
	}
	args, err := e.emitArgs(n.Args)
	if err != nil {
		return "", err
	}
	return callee + ".new(" + joinArgs(append([]string{"true"}, args...)) + ")", nil
}

func (e *emitter) emitArgs(args []slast.Expr) ([]string, error) {
	out := make([]string, len(args))
	for i, a := range args {
		text, err := e.emitExpr(a, false)
		if err != nil {
			return nil, err
		}
		out[i] = text
	}
	return out, nil
}

// emitPropertyAccessExpr lowers `.length` on strings/arrays to #, a
// compile-members-only enum member to its bare name, and everything else
// to a plain field access (spec section 4.3: Property access).
func (e *emitter) emitPropertyAccessExpr(n *slast.PropertyAccessExpr) (string, error) {
	t := e.typeOf(n.X)
	recv, err := e.emitExpr(n.X, false)
	if err != nil {
		return "", err
	}
	if t != nil {
		if t.IsString() || t.IsStringLiteral() || t.IsArray() {
			if n.Name == "length" {
				return "#" + recv, nil
			}
			reason := UnsupportedStringProperty
			if t.IsArray() {
				reason = UnsupportedArrayProperty
			}
			return "", newError(reason, n, "unsupported property %q", n.Name)
		}
		if t.IsCompileMembersOnlyEnum() {
			return n.Name, nil
		}
	}
	return recv + "." + n.Name, nil
}

// emitElementAccessExpr adds the 1-based offset for arrays and tuples,
// rewrites a string index into string.sub, and leaves object indexing
// untouched (spec section 4.3: Element access).
func (e *emitter) emitElementAccessExpr(n *slast.ElementAccessExpr) (string, error) {
	t := e.typeOf(n.X)
	recv, err := e.emitExpr(n.X, false)
	if err != nil {
		return "", err
	}
	idx, err := e.emitExpr(n.Index, false)
	if err != nil {
		return "", err
	}
	if t != nil && t.IsString() {
		return fmt.Sprintf("string.sub(%s, %s+1, %s+1)", recv, idx, idx), nil
	}
	if t != nil && (t.IsArray() || t.IsTuple()) {
		return fmt.Sprintf("%s[%s+1]", recv, idx), nil
	}
	return fmt.Sprintf("%s[%s]", recv, idx), nil
}
