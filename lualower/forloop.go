package lualower

import (
	"fmt"

	"github.com/zengjie/TypescriptToLua/slast"
)

// emitForStmt lowers a three-clause for loop to Lua's numeric for when its
// shape matches the pattern the analyzer recognizes (spec section 4.6):
// a single-declarator `let i = START`, a comparison of i (<, <=, >, >=)
// against a bound, and a plain increment/decrement or += /-= by a step
// expression, which is emitted as written.
// Anything else is rejected as UnsupportedForShape — there is no fallback
// to a while-loop rewrite.
func (e *emitter) emitForStmt(n *slast.ForStmt) (string, error) {
	loopVar, start, err := e.analyzeForInit(n.Init)
	if err != nil {
		return "", err
	}
	end, err := e.analyzeForCond(n.Cond, loopVar)
	if err != nil {
		return "", err
	}
	step, err := e.analyzeForPost(n.Post, loopVar)
	if err != nil {
		return "", err
	}
	body, err := e.emitBody(stmtsOf(n.Body))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%sfor %s=%s,%s,%s do\n%s%send\n", e.indent, loopVar, start, end, step, body, e.indent), nil
}

func (e *emitter) analyzeForInit(init slast.Statement) (loopVar, start string, err error) {
	v, ok := init.(*slast.VarStmt)
	if !ok || len(v.Declarators) != 1 {
		return "", "", newError(UnsupportedForShape, init, "for-loop init must be a single-declarator variable declaration")
	}
	d := v.Declarators[0]
	if d.Kind != slast.DeclIdent || d.Init == nil {
		return "", "", newError(UnsupportedForShape, init, "for-loop init must declare one identifier with an initializer")
	}
	startText, err := e.emitExpr(d.Init, false)
	if err != nil {
		return "", "", err
	}
	return d.Name, startText, nil
}

func (e *emitter) analyzeForCond(cond slast.Expr, loopVar string) (string, error) {
	bin, ok := cond.(*slast.BinaryExpr)
	if !ok {
		return "", newError(UnsupportedForShape, cond, "for-loop condition must compare the loop variable against a bound")
	}
	left, ok := bin.Left.(*slast.IdentExpr)
	if !ok || left.Name != loopVar {
		return "", newError(UnsupportedForShape, cond, "for-loop condition must have the loop variable on the left")
	}
	bound, err := e.emitExpr(bin.Right, false)
	if err != nil {
		return "", err
	}
	switch bin.Op.Op {
	case slast.OpLt:
		return bound + "-1", nil
	case slast.OpLe:
		return bound, nil
	case slast.OpGt:
		return bound + "+1", nil
	case slast.OpGe:
		return bound, nil
	default:
		return "", newError(UnsupportedForShape, cond, "unsupported for-loop comparison operator %q", bin.Op.Text)
	}
}

func (e *emitter) analyzeForPost(post slast.Statement, loopVar string) (string, error) {
	stmt := post
	if exprStmt, ok := post.(*slast.ExprStmt); ok {
		return e.analyzeForPostExpr(exprStmt.X, loopVar)
	}
	return "", newError(UnsupportedForShape, stmt, "for-loop post must be an increment, decrement, or += /-= of the loop variable")
}

func (e *emitter) analyzeForPostExpr(x slast.Expr, loopVar string) (string, error) {
	switch n := x.(type) {
	case *slast.UnaryExpr:
		ident, ok := n.X.(*slast.IdentExpr)
		if !ok || ident.Name != loopVar {
			return "", newError(UnsupportedForShape, n, "for-loop post must increment or decrement the loop variable")
		}
		switch n.Op.Op {
		case slast.OpInc:
			return "1", nil
		case slast.OpDec:
			return "-1", nil
		}
	case *slast.BinaryExpr:
		ident, ok := n.Left.(*slast.IdentExpr)
		if !ok || ident.Name != loopVar {
			return "", newError(UnsupportedForShape, n, "for-loop post must step the loop variable")
		}
		step, err := e.emitExpr(n.Right, false)
		if err != nil {
			return "", err
		}
		switch n.Op.Op {
		case slast.OpPlusAssign:
			return step, nil
		case slast.OpMinusAssign:
			return "-(" + step + ")", nil
		}
	}
	return "", newError(UnsupportedForShape, x, "unsupported for-loop post expression")
}
