package slastjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zengjie/TypescriptToLua/lualower"
)

func TestDecode_BinaryExprProgram(t *testing.T) {
	input := `{
		"program": {"kind": "Program", "statements": [
			{"kind": "VarStmt", "declarators": [
				{"kind": "ident", "name": "x", "init":
					{"kind": "BinaryExpr", "id": 1, "op": {"op": "Add", "text": "+"},
					 "left": {"kind": "NumericLiteral", "text": "1"},
					 "right": {"kind": "NumericLiteral", "text": "2"}}}
			]}
		]},
		"types": [{"id": 1, "isString": false}]
	}`
	prog, checker, err := Decode([]byte(input))
	require.NoError(t, err)
	require.NotNil(t, prog)
	require.NotNil(t, checker)

	out, err := lualower.Transpile(prog, checker, lualower.Options{})
	require.NoError(t, err)
	assert.Equal(t, "local x = (1)+(2)\n", out)
}

func TestDecode_UnknownNodeKindFails(t *testing.T) {
	input := `{"program": {"kind": "Nonsense"}, "types": []}`
	_, _, err := Decode([]byte(input))
	require.Error(t, err)
}

func TestDecode_TypeIDWithNoMatchingNodeFails(t *testing.T) {
	input := `{
		"program": {"kind": "Program", "statements": []},
		"types": [{"id": 99, "isString": true}]
	}`
	_, _, err := Decode([]byte(input))
	require.Error(t, err)
}

func TestDecode_TopLevelMustBeProgram(t *testing.T) {
	input := `{"program": {"kind": "NumericLiteral", "text": "1"}, "types": []}`
	_, _, err := Decode([]byte(input))
	require.Error(t, err)
}
