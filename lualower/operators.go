package lualower

import "github.com/zengjie/TypescriptToLua/slast"

// binaryOperatorText maps the non-special binary operators (spec section
// 6.1) to their Lua textual form. Operators with emission logic beyond a
// straight substitution — +, =, +=, -=, &&, ||, &, |, ===, !=, !== — are
// handled directly in emitBinaryExpr and are deliberately absent here.
var binaryOperatorText = map[slast.OperatorKind]string{
	slast.OpSub: "-",
	slast.OpMul: "*",
	slast.OpDiv: "/",
	slast.OpMod: "%",
	slast.OpLt:  "<",
	slast.OpGt:  ">",
	slast.OpLe:  "<=",
	slast.OpGe:  ">=",
}
