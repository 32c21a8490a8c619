package slast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNode_LineReportsSourceLine(t *testing.T) {
	n := &IdentExpr{Base: Base{SourceLine: 42}, Name: "x"}
	assert.Equal(t, 42, n.Line())
}

func TestNode_KindIdentifiesEachConcreteType(t *testing.T) {
	cases := []struct {
		name string
		node Node
		want Kind
	}{
		{"BinaryExpr", &BinaryExpr{}, KindBinaryExpr},
		{"CallExpr", &CallExpr{}, KindCallExpr},
		{"IfStmt", &IfStmt{}, KindIfStmt},
		{"SwitchStmt", &SwitchStmt{}, KindSwitchStmt},
		{"ClassDecl", &ClassDecl{}, KindClassDecl},
		{"EnumDecl", &EnumDecl{}, KindEnumDecl},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.node.Kind())
		})
	}
}

func TestClassMember_ConstructorAndMethodReportFuncDeclKind(t *testing.T) {
	assert.Equal(t, KindFuncDecl, (&ConstructorMember{}).Kind())
	assert.Equal(t, KindFuncDecl, (&MethodMember{}).Kind())
	assert.Equal(t, KindVarStmt, (&FieldMember{}).Kind())
}

func TestDeclarator_ArrayPatternCarriesElementsNotName(t *testing.T) {
	d := Declarator{
		Kind: DeclArrayPattern,
		Elements: []PatternElement{
			{Name: "a"},
			{Name: "rest", Rest: true},
		},
	}
	assert.Equal(t, "", d.Name)
	assert.Len(t, d.Elements, 2)
	assert.True(t, d.Elements[1].Rest)
}
