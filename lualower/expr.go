package lualower

import (
	"fmt"
	"strings"

	"github.com/zengjie/TypescriptToLua/slast"
)

// emitExpr is the expression dispatcher (spec section 4.3). brackets
// requests that the result be wrapped in parentheses; every binary
// operator's two operands are emitted with brackets=true so that a chain
// of operators always reparses under Lua's own precedence rules regardless
// of what the source's precedence was. Template-string spans, the switch
// tag and case values, and the operands of a += /-= expansion are also
// emitted with brackets=true. Every other context — statement position,
// call arguments, array/object elements, return values — emits with
// brackets=false.
func (e *emitter) emitExpr(x slast.Expr, brackets bool) (string, error) {
	text, err := e.emitExprText(x)
	if err != nil {
		return "", err
	}
	if brackets {
		return "(" + text + ")", nil
	}
	return text, nil
}

func (e *emitter) emitExprText(x slast.Expr) (string, error) {
	switch n := x.(type) {
	case *slast.IdentExpr:
		return n.Name, nil
	case *slast.StringLiteral:
		return "\"" + n.Value + "\"", nil
	case *slast.NumericLiteral:
		return n.Text, nil
	case *slast.BooleanLiteral:
		if n.Value {
			return "true", nil
		}
		return "false", nil
	case *slast.NullLiteral:
		return "nil", nil
	case *slast.ThisExpr:
		return "self", nil
	case *slast.SuperExpr:
		return "self.__base", nil
	case *slast.TemplateExpr:
		return e.emitTemplateExpr(n)
	case *slast.BinaryExpr:
		return e.emitBinaryExpr(n)
	case *slast.ConditionalExpr:
		return e.emitConditionalExpr(n)
	case *slast.CallExpr:
		return e.emitCallExpr(n)
	case *slast.NewExpr:
		return e.emitNewExpr(n)
	case *slast.PropertyAccessExpr:
		return e.emitPropertyAccessExpr(n)
	case *slast.ElementAccessExpr:
		return e.emitElementAccessExpr(n)
	case *slast.UnaryExpr:
		return e.emitUnaryExpr(n)
	case *slast.ArrayLiteral:
		return e.emitArrayLiteral(n)
	case *slast.ObjectLiteral:
		return e.emitObjectLiteral(n)
	case *slast.FunctionExpr:
		return e.emitFunctionExpr(n)
	case *slast.ArrowFunctionExpr:
		return e.emitArrowFunctionExpr(n)
	case *slast.ParenExpr:
		return e.emitExprText(n.X)
	case *slast.TypeAssertionExpr:
		return e.emitExprText(n.X)
	case *slast.AsExpr:
		return e.emitExprText(n.X)
	default:
		return "", newError(UnsupportedSyntax, x, "unsupported expression kind %s", x.Kind())
	}
}

func (e *emitter) emitTemplateExpr(n *slast.TemplateExpr) (string, error) {
	parts := []string{"\"" + n.Head + "\""}
	for _, span := range n.Spans {
		text, err := e.emitExpr(span.Expr, true)
		if err != nil {
			return "", err
		}
		parts = append(parts, text, "\""+span.Text+"\"")
	}
	return strings.Join(parts, ".."), nil
}

// emitBinaryExpr handles every binary operator (spec section 4.3 and
// section 6.1). Arithmetic/relational operators with a direct Lua
// equivalent come from binaryOperatorText; everything else needs logic:
// + dispatches on string-ness, && /|| map to and/or, & /| go through the
// bit library, ===/!=/ !== collapse to Lua's two equality operators, and
// the compound assignments expand to a plain Lua assignment statement
// (valid only in statement position, same caveat as ++/--).
func (e *emitter) emitBinaryExpr(n *slast.BinaryExpr) (string, error) {
	switch n.Op.Op {
	case slast.OpAssign:
		return e.emitAssignLike(n, "")
	case slast.OpPlusAssign:
		return e.emitAssignLike(n, "+")
	case slast.OpMinusAssign:
		return e.emitAssignLike(n, "-")
	case slast.OpAdd:
		return e.emitAdd(n)
	case slast.OpAnd:
		return e.emitBinaryJoin(n, " and ")
	case slast.OpOr:
		return e.emitBinaryJoin(n, " or ")
	case slast.OpBitAnd:
		return e.emitBitCall(n, "bit.band")
	case slast.OpBitOr:
		return e.emitBitCall(n, "bit.bor")
	case slast.OpEq, slast.OpLooseEq:
		return e.emitBinaryJoin(n, "==")
	case slast.OpNeq, slast.OpStrictNeq:
		return e.emitBinaryJoin(n, "~=")
	default:
		opText, ok := binaryOperatorText[n.Op.Op]
		if !ok {
			return "", newError(UnsupportedSyntax, n, "unsupported binary operator %q", n.Op.Text)
		}
		return e.emitBinaryJoin(n, opText)
	}
}

func (e *emitter) emitBinaryJoin(n *slast.BinaryExpr, opText string) (string, error) {
	left, err := e.emitExpr(n.Left, true)
	if err != nil {
		return "", err
	}
	right, err := e.emitExpr(n.Right, true)
	if err != nil {
		return "", err
	}
	return left + opText + right, nil
}

func (e *emitter) emitBitCall(n *slast.BinaryExpr, fn string) (string, error) {
	left, err := e.emitExpr(n.Left, true)
	if err != nil {
		return "", err
	}
	right, err := e.emitExpr(n.Right, true)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s(%s,%s)", fn, left, right), nil
}

// emitAdd dispatches + on whether the left operand is statically known to
// be a string: concatenation (..) for strings, arithmetic (+) otherwise.
func (e *emitter) emitAdd(n *slast.BinaryExpr) (string, error) {
	left, err := e.emitExpr(n.Left, true)
	if err != nil {
		return "", err
	}
	right, err := e.emitExpr(n.Right, true)
	if err != nil {
		return "", err
	}
	if e.isStringLike(n.Left) {
		return left + ".." + right, nil
	}
	return left + "+" + right, nil
}

func (e *emitter) isStringLike(x slast.Expr) bool {
	if _, ok := x.(*slast.StringLiteral); ok {
		return true
	}
	t := e.typeOf(x)
	return t != nil && t.IsString()
}

// emitAssignLike handles plain assignment and the += /-= compound forms.
// The target is emitted unbracketed (it must remain a valid Lua assignment
// target); the same expression emitted bracketed stands in for its value
// when building the right-hand side of a compound form.
func (e *emitter) emitAssignLike(n *slast.BinaryExpr, op string) (string, error) {
	target, err := e.emitExpr(n.Left, false)
	if err != nil {
		return "", err
	}
	if op == "" {
		value, err := e.emitExpr(n.Right, false)
		if err != nil {
			return "", err
		}
		return target + " = " + value, nil
	}
	lvalue, err := e.emitExpr(n.Left, true)
	if err != nil {
		return "", err
	}
	rvalue, err := e.emitExpr(n.Right, true)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s = %s%s%s", target, lvalue, op, rvalue), nil
}

// emitConditionalExpr lowers a ternary to the TS_ITE thunk call: Lua has no
// ternary operator and `and/or` chains misbehave when the true branch is
// falsy, so both branches are wrapped as zero-argument functions and
// TS_ITE (prelude) picks which to call.
func (e *emitter) emitConditionalExpr(n *slast.ConditionalExpr) (string, error) {
	cond, err := e.emitExpr(n.Cond, false)
	if err != nil {
		return "", err
	}
	then, err := e.emitExpr(n.Then, false)
	if err != nil {
		return "", err
	}
	els, err := e.emitExpr(n.Else, false)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("TS_ITE(%s, function() return %s end, function() return %s end)", cond, then, els), nil
}

// emitUnaryExpr handles !x, unary -x, and pre/post ++/--. The increment
// forms lower to a plain assignment statement and are only valid where the
// front-end guarantees they appear in statement position.
func (e *emitter) emitUnaryExpr(n *slast.UnaryExpr) (string, error) {
	switch n.Op.Op {
	case slast.OpInc, slast.OpDec:
		target, err := e.emitExpr(n.X, false)
		if err != nil {
			return "", err
		}
		sym := "+"
		if n.Op.Op == slast.OpDec {
			sym = "-"
		}
		return fmt.Sprintf("%s = %s %s 1", target, target, sym), nil
	case slast.OpNot:
		x, err := e.emitExpr(n.X, false)
		if err != nil {
			return "", err
		}
		return "not " + x, nil
	case slast.OpNeg:
		x, err := e.emitExpr(n.X, false)
		if err != nil {
			return "", err
		}
		return "-" + x, nil
	default:
		return "", newError(UnsupportedSyntax, n, "unsupported unary operator %q", n.Op.Text)
	}
}

func (e *emitter) emitArrayLiteral(n *slast.ArrayLiteral) (string, error) {
	parts := make([]string, len(n.Elements))
	for i, el := range n.Elements {
		text, err := e.emitExpr(el, false)
		if err != nil {
			return "", err
		}
		parts[i] = text
	}
	return "{" + strings.Join(parts, ", ") + "}", nil
}

func (e *emitter) emitObjectLiteral(n *slast.ObjectLiteral) (string, error) {
	parts := make([]string, len(n.Props))
	for i, p := range n.Props {
		value, err := e.emitExpr(p.Value, false)
		if err != nil {
			return "", err
		}
		if !p.Computed {
			if ident, ok := p.Key.(*slast.IdentExpr); ok {
				parts[i] = fmt.Sprintf("%s = %s", ident.Name, value)
				continue
			}
		}
		key, err := e.emitExpr(p.Key, false)
		if err != nil {
			return "", err
		}
		parts[i] = fmt.Sprintf("[%s] = %s", key, value)
	}
	return "{" + strings.Join(parts, ", ") + "}", nil
}

func (e *emitter) emitFunctionExpr(n *slast.FunctionExpr) (string, error) {
	body, err := e.emitBody(n.Body)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("function(%s)\n%s%send", joinArgs(paramNames(n.Params)), body, e.indent), nil
}

func (e *emitter) emitArrowFunctionExpr(n *slast.ArrowFunctionExpr) (string, error) {
	params := joinArgs(paramNames(n.Params))
	if n.ConciseExpr != nil {
		text, err := e.emitExpr(n.ConciseExpr, false)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("function(%s) return %s end", params, text), nil
	}
	body, err := e.emitBody(n.Body)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("function(%s)\n%s%send", params, body, e.indent), nil
}
