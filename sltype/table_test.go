package sltype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zengjie/TypescriptToLua/slast"
)

func TestTable_UnannotatedNodeTypesAsUnknown(t *testing.T) {
	tbl := NewTable()
	n := &slast.IdentExpr{Name: "x"}
	typ := tbl.TypeOf(n)
	require.NotNil(t, typ)
	assert.False(t, typ.IsString())
	assert.False(t, typ.IsArray())
	assert.False(t, typ.IsObject())
}

func TestTable_TypeOfIsPureAndIdempotent(t *testing.T) {
	tbl := NewTable()
	n := &slast.IdentExpr{Name: "s"}
	tbl.Set(n, String())

	first := tbl.TypeOf(n)
	second := tbl.TypeOf(n)
	assert.Equal(t, first.IsString(), second.IsString())
	assert.True(t, first.IsString())
}

func TestTable_KeyedByNodeIdentityNotValue(t *testing.T) {
	tbl := NewTable()
	a := &slast.IdentExpr{Name: "dup"}
	b := &slast.IdentExpr{Name: "dup"}
	tbl.Set(a, String())

	assert.True(t, tbl.TypeOf(a).IsString())
	assert.False(t, tbl.TypeOf(b).IsString())
}

func TestWithDecorator_ComposesOntoPureAbstractClass(t *testing.T) {
	base := PureAbstractClass()
	decorated := WithDecorator(base, "NoClassOr")

	assert.True(t, decorated.IsPureAbstractClass())
	assert.True(t, decorated.HasCustomDecorator("NoClassOr"))
	assert.False(t, decorated.HasCustomDecorator("SomethingElse"))
	// the original value passed to WithDecorator is untouched
	assert.False(t, base.HasCustomDecorator("NoClassOr"))
}

func TestStringLiteral_IsAlsoString(t *testing.T) {
	lit := StringLiteral()
	assert.True(t, lit.IsString())
	assert.True(t, lit.IsStringLiteral())
}
