// Package slastjson decodes a JSON-encoded program and its accompanying
// type table into slast and sltype values the lowering engine can consume.
// This is not part of the engine's own contract (spec section 3 leaves the
// front-end unspecified); it exists so this repository's CLI has a
// concrete way to read input without requiring every caller to embed a
// Go-native front-end.
//
// The wire format is a JSON object:
//
//	{"program": <node>, "types": [{"id": N, ...type flags...}]}
//
// Every node is an object with a "kind" field naming one of the slast.Kind
// values and an optional "id" field used only to correlate a node with an
// entry in "types" — id has no meaning inside the engine itself. Class
// members are the exception: their "kind" is "Constructor", "Method" or
// "Field", and their "id" is not recorded.
package slastjson

import (
	"encoding/json"
	"fmt"

	"github.com/zengjie/TypescriptToLua/slast"
	"github.com/zengjie/TypescriptToLua/sltype"
)

// Decode parses the wire format described above and returns the program
// plus a TypeChecker built from the "types" section.
func Decode(data []byte) (*slast.Program, sltype.TypeChecker, error) {
	var doc struct {
		Program json.RawMessage   `json:"program"`
		Types   []wireTypeEntry   `json:"types"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("decoding input: %w", err)
	}
	d := &decoder{byID: make(map[int]slast.Node)}
	progNode, err := d.decodeNode(doc.Program)
	if err != nil {
		return nil, nil, err
	}
	prog, ok := progNode.(*slast.Program)
	if !ok {
		return nil, nil, fmt.Errorf("top-level node must be a Program, got %T", progNode)
	}
	table := sltype.NewTable()
	for _, entry := range doc.Types {
		node, ok := d.byID[entry.ID]
		if !ok {
			return nil, nil, fmt.Errorf("types: id %d does not match any decoded node", entry.ID)
		}
		table.Set(node, entry.toType())
	}
	return prog, table, nil
}

type decoder struct {
	byID map[int]slast.Node
}

// wireNode is the common envelope every node object carries.
type wireNode struct {
	Kind string `json:"kind"`
	ID   int    `json:"id"`
	Line int    `json:"line"`
}

func (d *decoder) remember(id int, n slast.Node) {
	if id != 0 {
		d.byID[id] = n
	}
}

func base(w wireNode) slast.Base { return slast.Base{SourceLine: w.Line} }

func (d *decoder) decodeNode(raw json.RawMessage) (slast.Node, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var w wireNode
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("decoding node envelope: %w", err)
	}
	switch w.Kind {
	case "Program":
		return d.decodeProgram(raw, w)
	case "ImportStarStmt":
		return d.decodeImportStarStmt(raw, w)
	case "ImportNamedStmt":
		return d.decodeImportNamedStmt(raw, w)
	case "ClassDecl":
		return d.decodeClassDecl(raw, w)
	case "EnumDecl":
		return d.decodeEnumDecl(raw, w)
	case "FuncDecl":
		return d.decodeFuncDecl(raw, w)
	case "VarStmt":
		return d.decodeVarStmt(raw, w)
	case "ExprStmt":
		return d.decodeExprStmt(raw, w)
	case "ReturnStmt":
		return d.decodeReturnStmt(raw, w)
	case "IfStmt":
		return d.decodeIfStmt(raw, w)
	case "WhileStmt":
		return d.decodeWhileStmt(raw, w)
	case "ForStmt":
		return d.decodeForStmt(raw, w)
	case "ForOfStmt":
		return d.decodeForOfStmt(raw, w)
	case "ForInStmt":
		return d.decodeForInStmt(raw, w)
	case "SwitchStmt":
		return d.decodeSwitchStmt(raw, w)
	case "BreakStmt":
		n := &slast.BreakStmt{Base: base(w)}
		d.remember(w.ID, n)
		return n, nil
	case "ContinueStmt":
		n := &slast.ContinueStmt{Base: base(w)}
		d.remember(w.ID, n)
		return n, nil
	case "BlockStmt":
		return d.decodeBlockStmt(raw, w)
	case "TypeAliasDecl":
		var body struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(raw, &body); err != nil {
			return nil, err
		}
		n := &slast.TypeAliasDecl{Base: base(w), Name: body.Name}
		d.remember(w.ID, n)
		return n, nil
	case "InterfaceDecl":
		var body struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(raw, &body); err != nil {
			return nil, err
		}
		n := &slast.InterfaceDecl{Base: base(w), Name: body.Name}
		d.remember(w.ID, n)
		return n, nil
	case "EOF":
		n := &slast.EOFMarker{Base: base(w)}
		d.remember(w.ID, n)
		return n, nil
	case "BinaryExpr":
		return d.decodeBinaryExpr(raw, w)
	case "ConditionalExpr":
		return d.decodeConditionalExpr(raw, w)
	case "CallExpr":
		return d.decodeCallExpr(raw, w)
	case "NewExpr":
		return d.decodeNewExpr(raw, w)
	case "PropertyAccessExpr":
		return d.decodePropertyAccessExpr(raw, w)
	case "ElementAccessExpr":
		return d.decodeElementAccessExpr(raw, w)
	case "IdentExpr":
		var body struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(raw, &body); err != nil {
			return nil, err
		}
		n := &slast.IdentExpr{Base: base(w), Name: body.Name}
		d.remember(w.ID, n)
		return n, nil
	case "StringLiteral":
		var body struct {
			Value string `json:"value"`
		}
		if err := json.Unmarshal(raw, &body); err != nil {
			return nil, err
		}
		n := &slast.StringLiteral{Base: base(w), Value: body.Value}
		d.remember(w.ID, n)
		return n, nil
	case "NumericLiteral":
		var body struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(raw, &body); err != nil {
			return nil, err
		}
		n := &slast.NumericLiteral{Base: base(w), Text: body.Text}
		d.remember(w.ID, n)
		return n, nil
	case "TemplateExpr":
		return d.decodeTemplateExpr(raw, w)
	case "BooleanLiteral":
		var body struct {
			Value bool `json:"value"`
		}
		if err := json.Unmarshal(raw, &body); err != nil {
			return nil, err
		}
		n := &slast.BooleanLiteral{Base: base(w), Value: body.Value}
		d.remember(w.ID, n)
		return n, nil
	case "NullLiteral":
		n := &slast.NullLiteral{Base: base(w)}
		d.remember(w.ID, n)
		return n, nil
	case "ThisExpr":
		n := &slast.ThisExpr{Base: base(w)}
		d.remember(w.ID, n)
		return n, nil
	case "SuperExpr":
		n := &slast.SuperExpr{Base: base(w)}
		d.remember(w.ID, n)
		return n, nil
	case "UnaryExpr":
		return d.decodeUnaryExpr(raw, w)
	case "ArrayLiteral":
		return d.decodeArrayLiteral(raw, w)
	case "ObjectLiteral":
		return d.decodeObjectLiteral(raw, w)
	case "FunctionExpr":
		return d.decodeFunctionExpr(raw, w)
	case "ArrowFunctionExpr":
		return d.decodeArrowFunctionExpr(raw, w)
	case "ParenExpr":
		return d.decodeWrapExpr(raw, w, func(x slast.Expr) slast.Node { return &slast.ParenExpr{Base: base(w), X: x} })
	case "TypeAssertionExpr":
		return d.decodeWrapExpr(raw, w, func(x slast.Expr) slast.Node { return &slast.TypeAssertionExpr{Base: base(w), X: x} })
	case "AsExpr":
		return d.decodeWrapExpr(raw, w, func(x slast.Expr) slast.Node { return &slast.AsExpr{Base: base(w), X: x} })
	default:
		return nil, fmt.Errorf("unknown node kind %q", w.Kind)
	}
}

func (d *decoder) decodeExpr(raw json.RawMessage) (slast.Expr, error) {
	n, err := d.decodeNode(raw)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	x, ok := n.(slast.Expr)
	if !ok {
		return nil, fmt.Errorf("node %s cannot appear in expression position", n.Kind())
	}
	return x, nil
}

func (d *decoder) decodeStmt(raw json.RawMessage) (slast.Statement, error) {
	n, err := d.decodeNode(raw)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	s, ok := n.(slast.Statement)
	if !ok {
		return nil, fmt.Errorf("node %s cannot appear in statement position", n.Kind())
	}
	return s, nil
}

func (d *decoder) decodeStmtList(raw []json.RawMessage) ([]slast.Statement, error) {
	out := make([]slast.Statement, 0, len(raw))
	for _, r := range raw {
		s, err := d.decodeStmt(r)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (d *decoder) decodeExprList(raw []json.RawMessage) ([]slast.Expr, error) {
	out := make([]slast.Expr, 0, len(raw))
	for _, r := range raw {
		x, err := d.decodeExpr(r)
		if err != nil {
			return nil, err
		}
		out = append(out, x)
	}
	return out, nil
}

func decodeParams(raw []struct {
	Name          string `json:"name"`
	FieldModifier bool   `json:"fieldModifier"`
}) []slast.Param {
	out := make([]slast.Param, len(raw))
	for i, p := range raw {
		out[i] = slast.Param{Name: p.Name, FieldModifier: p.FieldModifier}
	}
	return out
}

func (d *decoder) decodeWrapExpr(raw json.RawMessage, w wireNode, build func(slast.Expr) slast.Node) (slast.Node, error) {
	var body struct {
		X json.RawMessage `json:"x"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	x, err := d.decodeExpr(body.X)
	if err != nil {
		return nil, err
	}
	n := build(x)
	d.remember(w.ID, n)
	return n, nil
}
