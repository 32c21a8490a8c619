package lualower

import (
	"fmt"

	"github.com/zengjie/TypescriptToLua/slast"
)

// emitStringCall rewrites a method call on a string-typed receiver (spec
// section 4.5). Only the methods below are recognized; anything else is
// UnsupportedStringCall. replace is intentionally bug-for-bug compatible
// with the source tool this was distilled from: it rewrites to string.sub
// rather than a real substring replacement, which is wrong for any
// replacement string that doesn't happen to equal the original slice, but
// preserving that behavior is the documented requirement.
func (e *emitter) emitStringCall(call *slast.CallExpr, prop *slast.PropertyAccessExpr) (string, error) {
	recv, err := e.emitExpr(prop.X, false)
	if err != nil {
		return "", err
	}
	args, err := e.emitArgs(call.Args)
	if err != nil {
		return "", err
	}
	switch prop.Name {
	case "replace":
		return fmt.Sprintf("string.sub(%s)", joinArgs(append([]string{recv}, args...))), nil
	case "indexOf":
		switch len(args) {
		case 1:
			return fmt.Sprintf("(string.find(%s,%s,1,true) or 0)-1", recv, args[0]), nil
		case 2:
			return fmt.Sprintf("(string.find(%s,%s,%s+1,true) or 0)-1", recv, args[0], args[1]), nil
		default:
			return "", newError(UnsupportedStringCall, call, "indexOf expects 1 or 2 arguments, got %d", len(args))
		}
	default:
		return "", newError(UnsupportedStringCall, call, "unsupported string method %q", prop.Name)
	}
}

// emitArrayCall rewrites a method call on an array-typed receiver (spec
// section 4.5). push goes through table.insert; the higher-order methods
// route through the prelude's TS_* helpers, which take the array as their
// first argument and the SL-supplied callback as the rest.
func (e *emitter) emitArrayCall(call *slast.CallExpr, prop *slast.PropertyAccessExpr) (string, error) {
	recv, err := e.emitExpr(prop.X, false)
	if err != nil {
		return "", err
	}
	args, err := e.emitArgs(call.Args)
	if err != nil {
		return "", err
	}
	switch prop.Name {
	case "push":
		return fmt.Sprintf("table.insert(%s)", joinArgs(append([]string{recv}, args...))), nil
	case "forEach", "map", "filter", "some", "every", "slice":
		helper := "TS_" + prop.Name
		return fmt.Sprintf("%s(%s)", helper, joinArgs(append([]string{recv}, args...))), nil
	default:
		return "", newError(UnsupportedArrayCall, call, "unsupported array method %q", prop.Name)
	}
}
