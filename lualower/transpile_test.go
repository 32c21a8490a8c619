package lualower

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zengjie/TypescriptToLua/slast"
	"github.com/zengjie/TypescriptToLua/sltype"
)

func ident(name string) *slast.IdentExpr { return &slast.IdentExpr{Name: name} }
func num(text string) *slast.NumericLiteral { return &slast.NumericLiteral{Text: text} }

func program(stmts ...slast.Statement) *slast.Program {
	return &slast.Program{Statements: stmts}
}

func mustTranspile(t *testing.T, prog *slast.Program, checker sltype.TypeChecker) string {
	t.Helper()
	out, err := Transpile(prog, checker, Options{})
	require.NoError(t, err)
	return out
}

// scenario 1: `let x = 1 + 2;` -> `local x = (1)+(2)\n`
func TestTranspile_VarDeclWithBinaryAdd(t *testing.T) {
	prog := program(&slast.VarStmt{Declarators: []slast.Declarator{
		{Kind: slast.DeclIdent, Name: "x", Init: &slast.BinaryExpr{
			Op: slast.Token{Op: slast.OpAdd, Text: "+"}, Left: num("1"), Right: num("2"),
		}},
	}})
	out := mustTranspile(t, prog, nil)
	assert.Equal(t, "local x = (1)+(2)\n", out)
}

// scenario 2: `for (let i = 0; i < 10; i++) { print(i); }`
// -> "for i=0,10-1,1 do\n    print(i)\nend\n"
func TestTranspile_NumericForLoop(t *testing.T) {
	forStmt := &slast.ForStmt{
		Init: &slast.VarStmt{Declarators: []slast.Declarator{{Kind: slast.DeclIdent, Name: "i", Init: num("0")}}},
		Cond: &slast.BinaryExpr{Op: slast.Token{Op: slast.OpLt, Text: "<"}, Left: ident("i"), Right: num("10")},
		Post: &slast.ExprStmt{X: &slast.UnaryExpr{Op: slast.Token{Op: slast.OpInc, Text: "++"}, X: ident("i")}},
		Body: &slast.BlockStmt{Body: []slast.Statement{
			&slast.ExprStmt{X: &slast.CallExpr{Callee: ident("print"), Args: []slast.Expr{ident("i")}}},
		}},
	}
	out := mustTranspile(t, program(forStmt), nil)
	assert.Equal(t, "for i=0,10-1,1 do\n    print(i)\nend\n", out)
}

// scenario 3: switch(k) { case 1: a(); break; case 2: b(); default: c(); }
func TestTranspile_SwitchFallthroughAndBreak(t *testing.T) {
	sw := &slast.SwitchStmt{
		Tag: ident("k"),
		Cases: []slast.SwitchCase{
			{Test: num("1"), Body: []slast.Statement{
				&slast.ExprStmt{X: &slast.CallExpr{Callee: ident("a")}},
				&slast.BreakStmt{},
			}},
			{Test: num("2"), Body: []slast.Statement{
				&slast.ExprStmt{X: &slast.CallExpr{Callee: ident("b")}},
			}},
			{Test: nil, Body: []slast.Statement{
				&slast.ExprStmt{X: &slast.CallExpr{Callee: ident("c")}},
			}},
		},
	}
	out := mustTranspile(t, program(sw), nil)
	assert.Contains(t, out, "if (k)==(1) then")
	assert.Contains(t, out, "::switchCase0::")
	assert.Contains(t, out, "goto switchDone0")
	assert.Contains(t, out, "elseif (k)==(2) then")
	assert.Contains(t, out, "goto switchCase2")
	assert.Contains(t, out, "else")
	assert.Contains(t, out, "::switchCase2::")
	assert.Contains(t, out, "::switchDone0::")
}

// scenario 4: class C extends B { constructor(public x) { super(x); } m() { return this.x; } }
func TestTranspile_ClassExtendsConstructorSuper(t *testing.T) {
	class := &slast.ClassDecl{
		Name:    "C",
		Extends: ident("B"),
		Members: []slast.ClassMember{
			&slast.ConstructorMember{
				Params: []slast.Param{{Name: "x", FieldModifier: true}},
				Body: []slast.Statement{
					&slast.ExprStmt{X: &slast.CallExpr{Callee: &slast.SuperExpr{}, Args: []slast.Expr{ident("x")}}},
				},
			},
			&slast.MethodMember{
				Name: "m",
				Body: []slast.Statement{
					&slast.ReturnStmt{Result: &slast.PropertyAccessExpr{X: &slast.ThisExpr{}, Name: "x"}},
				},
			},
		},
	}
	out := mustTranspile(t, program(class), sltype.NewTable())
	assert.Contains(t, out, "C = C or B.new()")
	assert.Contains(t, out, "C.__base = B")
	assert.Contains(t, out, "function C.constructor(self,x)")
	assert.Contains(t, out, "self.x = x")
	assert.Contains(t, out, "self.__base.constructor(self,x)")
	assert.Contains(t, out, "function C.m(self)")
	assert.Contains(t, out, "return self.x")
}

// scenario 5: const [a, b, ...rest] = xs;
func TestTranspile_ArrayDestructuringWithRest(t *testing.T) {
	decl := &slast.VarStmt{Declarators: []slast.Declarator{{
		Kind: slast.DeclArrayPattern,
		Elements: []slast.PatternElement{
			{Name: "a"}, {Name: "b"}, {Name: "rest", Rest: true},
		},
		Init: ident("xs"),
	}}}
	out := mustTranspile(t, program(decl), nil)
	assert.Equal(t, "local __destr0 = xs\nlocal a = __destr0[1]\nlocal b = __destr0[2]\nlocal rest = TS_slice(__destr0, 2)\n", out)
}

// scenario 6: `hi ${name}!` -> "hi "..(name).."!"
func TestTranspile_TemplateStringInterpolation(t *testing.T) {
	tpl := &slast.TemplateExpr{
		Head: "hi ",
		Spans: []slast.TemplateSpan{{Expr: ident("name"), Text: "!"}},
	}
	out := mustTranspile(t, program(&slast.ExprStmt{X: tpl}), nil)
	assert.Equal(t, "\"hi \"..(name)..\"!\"\n", out)
}

// scenario 7: `continue;` has no Lua equivalent and always fails.
func TestTranspile_ContinueIsUnsupported(t *testing.T) {
	_, err := Transpile(program(&slast.ContinueStmt{}), nil, Options{})
	require.Error(t, err)
	te, ok := AsTranspileError(err)
	require.True(t, ok)
	assert.Equal(t, UnsupportedSyntax, te.Reason)
	assert.True(t, errors.Is(err, ErrUnsupportedSyntax))
}
