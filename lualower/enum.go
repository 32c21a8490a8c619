package lualower

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zengjie/TypescriptToLua/slast"
)

// emitEnumDecl lowers an enum in one of two shapes (spec section 4.4). A
// compile-members-only enum (the checker's IsCompileMembersOnlyEnum) has no
// runtime table at all: every member becomes a bare global constant, and
// member access elsewhere (emitPropertyAccessExpr) resolves to that same
// bare name. A regular enum gets a table, one field per member. Numeric
// values auto-increment from 0 unless a member supplies its own numeric
// literal, in which case counting continues from there; a non-numeric
// initializer is UnsupportedEnumInit.
func (e *emitter) emitEnumDecl(n *slast.EnumDecl) (string, error) {
	if n.Declare {
		return "", nil
	}
	t := e.typeOf(n)
	compileMembersOnly := t != nil && t.IsCompileMembersOnlyEnum()

	var sb strings.Builder
	if !compileMembersOnly {
		sb.WriteString(fmt.Sprintf("%s%s = {}\n", e.indent, n.Name))
	}

	next := 0
	for _, m := range n.Members {
		var valueText string
		if m.Init != nil {
			lit, ok := m.Init.(*slast.NumericLiteral)
			if !ok {
				return "", newError(UnsupportedEnumInit, n, "enum member %q must initialize with a numeric literal", m.Name)
			}
			valueText = lit.Text
			if iv, err := strconv.Atoi(lit.Text); err == nil {
				next = iv
			}
		} else {
			valueText = strconv.Itoa(next)
		}
		if compileMembersOnly {
			sb.WriteString(fmt.Sprintf("%s%s = %s\n", e.indent, m.Name, valueText))
		} else {
			sb.WriteString(fmt.Sprintf("%s%s.%s = %s\n", e.indent, n.Name, m.Name, valueText))
		}
		next++
	}
	return sb.String(), nil
}
