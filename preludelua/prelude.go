// Package preludelua embeds the Lua runtime helpers lualower's generated
// output calls into: TS_ITE for ternaries, the TS_* array higher-order
// functions, and the bit.band/bit.bor bitwise shims. None of this is part
// of the lowering engine's core contract (spec section 1 scopes the
// prelude's own contents out) — it exists so this repository's CLI and
// tests can produce runnable Lua without a caller supplying its own
// runtime.
package preludelua

import _ "embed"

//go:embed prelude.lua
var source string

// Source returns the prelude's Lua text, meant to be concatenated ahead of
// lualower.Transpile's output.
func Source() string {
	return source
}

// Helper names lualower's emitted code may reference, for callers that
// want to report which parts of the prelude a given program actually
// exercises.
var HelperNames = []string{
	"bit.band",
	"bit.bor",
	"TS_ITE",
	"TS_forEach",
	"TS_map",
	"TS_filter",
	"TS_some",
	"TS_every",
	"TS_slice",
}
