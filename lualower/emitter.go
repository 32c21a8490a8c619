// Package lualower lowers an already type-checked slast.Program into Lua
// 5.x source text (spec section 4). It is a single recursive-descent pass:
// no backtracking, no intermediate IR, text emitted directly as nodes are
// visited, mirroring the teacher's codeGen walk over its own AST.
package lualower

import (
	"fmt"
	"strings"

	"github.com/zengjie/TypescriptToLua/slast"
	"github.com/zengjie/TypescriptToLua/sltype"
)

// Options configures a Transpile call. IndentWidth is carried for forward
// compatibility with front-ends that want a different indent unit, but
// section 4 fixes it at four spaces; callers leaving it at zero get that
// default, and any value other than 0 or 4 makes Transpile return an error.
type Options struct {
	IndentWidth int
}

// emitter is the engine's mutable state (spec section 3: EmitterState).
// indent is tracked as the literal prefix string rather than a depth
// counter, so every statement emitter can write it directly.
type emitter struct {
	indent     string
	indentUnit string
	genCounter int
	inSwitch   bool
	checker    sltype.TypeChecker
}

// Transpile lowers prog to Lua source text. checker must answer TypeOf for
// every node the engine queries; a nil checker is treated as "everything is
// Unknown", which disables every type-aware rewrite and is useful only for
// programs that never touch strings, arrays, classes, or enums.
func Transpile(prog *slast.Program, checker sltype.TypeChecker, opts Options) (string, error) {
	unit := "    "
	if opts.IndentWidth != 0 && opts.IndentWidth != len(unit) {
		return "", fmt.Errorf("lualower: IndentWidth %d is not supported; indentation is fixed at %d spaces", opts.IndentWidth, len(unit))
	}
	e := &emitter{indentUnit: unit, checker: checker}
	return e.emitProgram(prog)
}

func (e *emitter) emitProgram(prog *slast.Program) (string, error) {
	var sb strings.Builder
	for _, stmt := range prog.Statements {
		text, err := e.emitStmt(stmt)
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

func (e *emitter) pushIndent() { e.indent += e.indentUnit }

func (e *emitter) popIndent() {
	if len(e.indent) >= len(e.indentUnit) {
		e.indent = e.indent[:len(e.indent)-len(e.indentUnit)]
	}
}

func (e *emitter) typeOf(x slast.Node) sltype.Type {
	if e.checker == nil {
		return sltype.Unknown()
	}
	return e.checker.TypeOf(x)
}

// emitBody emits stmts one indent level deeper than the current one, the
// shared shape behind every block-bearing construct (if/while/for/function
// bodies).
func (e *emitter) emitBody(stmts []slast.Statement) (string, error) {
	e.pushIndent()
	var sb strings.Builder
	for _, s := range stmts {
		text, err := e.emitStmt(s)
		if err != nil {
			e.popIndent()
			return "", err
		}
		sb.WriteString(text)
	}
	e.popIndent()
	return sb.String(), nil
}

// stmtsOf normalizes a statement-or-block into a slice, so single-statement
// and braced bodies share emitBody.
func stmtsOf(s slast.Statement) []slast.Statement {
	if s == nil {
		return nil
	}
	if block, ok := s.(*slast.BlockStmt); ok {
		return block.Body
	}
	return []slast.Statement{s}
}

func paramNames(params []slast.Param) []string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return names
}

func joinArgs(args []string) string {
	return strings.Join(args, ",")
}
