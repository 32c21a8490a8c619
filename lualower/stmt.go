package lualower

import (
	"fmt"
	"strings"

	"github.com/zengjie/TypescriptToLua/slast"
)

// emitStmt dispatches on the statement's Go type (spec section 4.1's
// dispatcher, expressed as a type switch rather than a kind switch since Go
// gives us the node back typed). Declaration-only nodes emit "".
func (e *emitter) emitStmt(s slast.Statement) (string, error) {
	switch n := s.(type) {
	case *slast.ImportStarStmt:
		return e.emitImportStarStmt(n)
	case *slast.ImportNamedStmt:
		return e.emitImportNamedStmt(n)
	case *slast.ClassDecl:
		return e.emitClassDecl(n)
	case *slast.EnumDecl:
		return e.emitEnumDecl(n)
	case *slast.FuncDecl:
		if n.Declare {
			return "", nil
		}
		return e.emitFuncDecl(n)
	case *slast.VarStmt:
		if n.Declare {
			return "", nil
		}
		return e.emitVarStmt(n)
	case *slast.ExprStmt:
		return e.emitExprStmt(n)
	case *slast.ReturnStmt:
		return e.emitReturnStmt(n)
	case *slast.IfStmt:
		return e.emitIfStmt(n)
	case *slast.WhileStmt:
		return e.emitWhileStmt(n)
	case *slast.ForStmt:
		return e.emitForStmt(n)
	case *slast.ForOfStmt:
		return e.emitForOfStmt(n)
	case *slast.ForInStmt:
		return e.emitForInStmt(n)
	case *slast.SwitchStmt:
		return e.emitSwitchStmt(n)
	case *slast.BreakStmt:
		return e.emitBreakStmt(n)
	case *slast.ContinueStmt:
		return "", newError(UnsupportedSyntax, n, "continue has no Lua equivalent")
	case *slast.BlockStmt:
		return e.emitBody(n.Body)
	case *slast.TypeAliasDecl, *slast.InterfaceDecl, *slast.EOFMarker:
		return "", nil
	default:
		if expr, ok := s.(slast.Expr); ok {
			text, err := e.emitExpr(expr, false)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%s%s\n", e.indent, text), nil
		}
		return "", newError(UnsupportedSyntax, s, "unsupported statement kind %s", s.Kind())
	}
}

func (e *emitter) emitImportStarStmt(n *slast.ImportStarStmt) (string, error) {
	return fmt.Sprintf("%s%s = require(\"%s\")\n", e.indent, n.Alias, n.Module), nil
}

func (e *emitter) emitImportNamedStmt(n *slast.ImportNamedStmt) (string, error) {
	for _, spec := range n.Names {
		if spec.PropertyName != "" && spec.PropertyName != spec.Name {
			return "", newError(RenamedImport, n, "import %q as %q: renamed imports have no Lua equivalent", spec.PropertyName, spec.Name)
		}
	}
	return fmt.Sprintf("%srequire(\"%s\")\n", e.indent, n.Module), nil
}

func (e *emitter) emitFuncDecl(n *slast.FuncDecl) (string, error) {
	body, err := e.emitBody(n.Body)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%sfunction %s(%s)\n%s%send\n", e.indent, n.Name, joinArgs(paramNames(n.Params)), body, e.indent), nil
}

func (e *emitter) emitExprStmt(n *slast.ExprStmt) (string, error) {
	text, err := e.emitExpr(n.X, false)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%s\n", e.indent, text), nil
}

func (e *emitter) emitReturnStmt(n *slast.ReturnStmt) (string, error) {
	if n.Result == nil {
		return fmt.Sprintf("%sreturn\n", e.indent), nil
	}
	text, err := e.emitExpr(n.Result, false)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%sreturn %s\n", e.indent, text), nil
}

func (e *emitter) emitIfStmt(n *slast.IfStmt) (string, error) {
	cond, err := e.emitExpr(n.Cond, false)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%sif %s then\n", e.indent, cond))
	thenBody, err := e.emitBody(stmtsOf(n.Then))
	if err != nil {
		return "", err
	}
	sb.WriteString(thenBody)
	if n.Else != nil {
		sb.WriteString(fmt.Sprintf("%selse\n", e.indent))
		elseBody, err := e.emitBody(stmtsOf(n.Else))
		if err != nil {
			return "", err
		}
		sb.WriteString(elseBody)
	}
	sb.WriteString(fmt.Sprintf("%send\n", e.indent))
	return sb.String(), nil
}

func (e *emitter) emitWhileStmt(n *slast.WhileStmt) (string, error) {
	cond, err := e.emitExpr(n.Cond, false)
	if err != nil {
		return "", err
	}
	body, err := e.emitBody(stmtsOf(n.Body))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%swhile %s do\n%s%send\n", e.indent, cond, body, e.indent), nil
}

func (e *emitter) emitForOfStmt(n *slast.ForOfStmt) (string, error) {
	iterFn := e.iterFuncFor(n.Iterable)
	iter, err := e.emitExpr(n.Iterable, false)
	if err != nil {
		return "", err
	}
	body, err := e.emitBody(stmtsOf(n.Body))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%sfor _, %s in %s(%s) do\n%s%send\n", e.indent, n.Name, iterFn, iter, body, e.indent), nil
}

func (e *emitter) emitForInStmt(n *slast.ForInStmt) (string, error) {
	iterFn := e.iterFuncFor(n.Iterable)
	iter, err := e.emitExpr(n.Iterable, false)
	if err != nil {
		return "", err
	}
	body, err := e.emitBody(stmtsOf(n.Body))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%sfor %s, _ in %s(%s) do\n%s%send\n", e.indent, n.Name, iterFn, iter, body, e.indent), nil
}

// iterFuncFor picks ipairs for a checker-confirmed array, pairs otherwise
// (spec section 4.2: for-of/for-in).
func (e *emitter) iterFuncFor(iterable slast.Expr) string {
	if t := e.typeOf(iterable); t != nil && t.IsArray() {
		return "ipairs"
	}
	return "pairs"
}

func (e *emitter) emitBreakStmt(n *slast.BreakStmt) (string, error) {
	if e.inSwitch {
		return fmt.Sprintf("%sgoto switchDone%d\n", e.indent, e.genCounter), nil
	}
	return fmt.Sprintf("%sbreak\n", e.indent), nil
}

// emitVarStmt lowers a variable-declaration statement (spec section 4.2).
// Array-destructuring declarators spill through a generated __destr<N>
// temporary; everything else is rejected as UnsupportedSyntax.
func (e *emitter) emitVarStmt(v *slast.VarStmt) (string, error) {
	var sb strings.Builder
	for _, d := range v.Declarators {
		switch d.Kind {
		case slast.DeclIdent:
			init := "nil"
			if d.Init != nil {
				text, err := e.emitExpr(d.Init, false)
				if err != nil {
					return "", err
				}
				init = text
			}
			sb.WriteString(fmt.Sprintf("%slocal %s = %s\n", e.indent, d.Name, init))
		case slast.DeclArrayPattern:
			if d.Init == nil {
				return "", newError(UnsupportedSyntax, d.Node, "array destructuring requires an initializer")
			}
			tmp := fmt.Sprintf("__destr%d", e.genCounter)
			e.genCounter++
			init, err := e.emitExpr(d.Init, false)
			if err != nil {
				return "", err
			}
			sb.WriteString(fmt.Sprintf("%slocal %s = %s\n", e.indent, tmp, init))
			for i, el := range d.Elements {
				if el.Rest {
					sb.WriteString(fmt.Sprintf("%slocal %s = TS_slice(%s, %d)\n", e.indent, el.Name, tmp, i))
				} else {
					sb.WriteString(fmt.Sprintf("%slocal %s = %s[%d]\n", e.indent, el.Name, tmp, i+1))
				}
			}
		default:
			return "", newError(UnsupportedSyntax, d.Node, "unsupported declarator shape")
		}
	}
	return sb.String(), nil
}

// emitSwitchStmt lowers switch/case to a goto-label chain of if/elseif/else
// (spec section 4.2). Each case gets two labels it can be the target of:
// its own entry label (for explicit fallthrough) and the shared terminator
// label that `break` jumps to. The terminator label's number is the
// gen_counter value captured when the switch starts; a `break` emits a goto
// to whatever gen_counter currently holds, which is the documented
// behavior even though it can diverge from the captured base if a nested
// switch has advanced the counter in between (see DESIGN.md).
func (e *emitter) emitSwitchStmt(n *slast.SwitchStmt) (string, error) {
	tag, err := e.emitExpr(n.Tag, true)
	if err != nil {
		return "", err
	}
	base := e.genCounter
	var sb strings.Builder
	prevInSwitch := e.inSwitch
	for i, c := range n.Cases {
		if c.Test != nil {
			test, err := e.emitExpr(c.Test, true)
			if err != nil {
				return "", err
			}
			kw := "if"
			if i > 0 {
				kw = "elseif"
			}
			sb.WriteString(fmt.Sprintf("%s%s %s==%s then\n", e.indent, kw, tag, test))
		} else {
			sb.WriteString(fmt.Sprintf("%selse\n", e.indent))
		}
		e.pushIndent()
		sb.WriteString(fmt.Sprintf("%s::switchCase%d::\n", e.indent, base+i))
		e.inSwitch = true
		for _, stmt := range c.Body {
			text, err := e.emitStmt(stmt)
			if err != nil {
				e.inSwitch = prevInSwitch
				e.popIndent()
				return "", err
			}
			sb.WriteString(text)
		}
		e.inSwitch = prevInSwitch
		if i != len(n.Cases)-1 {
			sb.WriteString(fmt.Sprintf("%sgoto switchCase%d\n", e.indent, base+i+1))
		}
		e.popIndent()
	}
	sb.WriteString(fmt.Sprintf("%send\n", e.indent))
	sb.WriteString(fmt.Sprintf("%s::switchDone%d::\n", e.indent, base))
	e.genCounter = base + len(n.Cases)
	return sb.String(), nil
}
