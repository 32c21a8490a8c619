package slastjson

import (
	"encoding/json"
	"fmt"

	"github.com/zengjie/TypescriptToLua/slast"
)

var operatorsByName = map[string]slast.OperatorKind{
	"Add": slast.OpAdd, "Sub": slast.OpSub, "Mul": slast.OpMul, "Div": slast.OpDiv, "Mod": slast.OpMod,
	"Lt": slast.OpLt, "Gt": slast.OpGt, "Le": slast.OpLe, "Ge": slast.OpGe,
	"Eq": slast.OpEq, "LooseEq": slast.OpLooseEq, "Neq": slast.OpNeq, "StrictNeq": slast.OpStrictNeq,
	"And": slast.OpAnd, "Or": slast.OpOr, "Not": slast.OpNot,
	"BitAnd": slast.OpBitAnd, "BitOr": slast.OpBitOr,
	"PlusAssign": slast.OpPlusAssign, "MinusAssign": slast.OpMinusAssign,
	"Assign": slast.OpAssign, "Inc": slast.OpInc, "Dec": slast.OpDec, "Neg": slast.OpNeg,
}

func decodeToken(raw struct {
	Op   string `json:"op"`
	Text string `json:"text"`
}) (slast.Token, error) {
	op, ok := operatorsByName[raw.Op]
	if !ok {
		return slast.Token{}, fmt.Errorf("unknown operator %q", raw.Op)
	}
	return slast.Token{Op: op, Text: raw.Text}, nil
}

func (d *decoder) decodeBinaryExpr(raw json.RawMessage, w wireNode) (slast.Node, error) {
	var body struct {
		Op struct {
			Op   string `json:"op"`
			Text string `json:"text"`
		} `json:"op"`
		Left  json.RawMessage `json:"left"`
		Right json.RawMessage `json:"right"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	op, err := decodeToken(body.Op)
	if err != nil {
		return nil, err
	}
	left, err := d.decodeExpr(body.Left)
	if err != nil {
		return nil, err
	}
	right, err := d.decodeExpr(body.Right)
	if err != nil {
		return nil, err
	}
	n := &slast.BinaryExpr{Base: base(w), Op: op, Left: left, Right: right}
	d.remember(w.ID, n)
	return n, nil
}

func (d *decoder) decodeConditionalExpr(raw json.RawMessage, w wireNode) (slast.Node, error) {
	var body struct {
		Cond json.RawMessage `json:"cond"`
		Then json.RawMessage `json:"then"`
		Else json.RawMessage `json:"else"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	cond, err := d.decodeExpr(body.Cond)
	if err != nil {
		return nil, err
	}
	then, err := d.decodeExpr(body.Then)
	if err != nil {
		return nil, err
	}
	els, err := d.decodeExpr(body.Else)
	if err != nil {
		return nil, err
	}
	n := &slast.ConditionalExpr{Base: base(w), Cond: cond, Then: then, Else: els}
	d.remember(w.ID, n)
	return n, nil
}

func (d *decoder) decodeCallExpr(raw json.RawMessage, w wireNode) (slast.Node, error) {
	var body struct {
		Callee json.RawMessage   `json:"callee"`
		Args   []json.RawMessage `json:"args"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	callee, err := d.decodeExpr(body.Callee)
	if err != nil {
		return nil, err
	}
	args, err := d.decodeExprList(body.Args)
	if err != nil {
		return nil, err
	}
	n := &slast.CallExpr{Base: base(w), Callee: callee, Args: args}
	d.remember(w.ID, n)
	return n, nil
}

func (d *decoder) decodeNewExpr(raw json.RawMessage, w wireNode) (slast.Node, error) {
	var body struct {
		Callee json.RawMessage   `json:"callee"`
		Args   []json.RawMessage `json:"args"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	callee, err := d.decodeExpr(body.Callee)
	if err != nil {
		return nil, err
	}
	args, err := d.decodeExprList(body.Args)
	if err != nil {
		return nil, err
	}
	n := &slast.NewExpr{Base: base(w), Callee: callee, Args: args}
	d.remember(w.ID, n)
	return n, nil
}

func (d *decoder) decodePropertyAccessExpr(raw json.RawMessage, w wireNode) (slast.Node, error) {
	var body struct {
		X    json.RawMessage `json:"x"`
		Name string          `json:"name"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	x, err := d.decodeExpr(body.X)
	if err != nil {
		return nil, err
	}
	n := &slast.PropertyAccessExpr{Base: base(w), X: x, Name: body.Name}
	d.remember(w.ID, n)
	return n, nil
}

func (d *decoder) decodeElementAccessExpr(raw json.RawMessage, w wireNode) (slast.Node, error) {
	var body struct {
		X     json.RawMessage `json:"x"`
		Index json.RawMessage `json:"index"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	x, err := d.decodeExpr(body.X)
	if err != nil {
		return nil, err
	}
	index, err := d.decodeExpr(body.Index)
	if err != nil {
		return nil, err
	}
	n := &slast.ElementAccessExpr{Base: base(w), X: x, Index: index}
	d.remember(w.ID, n)
	return n, nil
}

func (d *decoder) decodeTemplateExpr(raw json.RawMessage, w wireNode) (slast.Node, error) {
	var body struct {
		Head  string `json:"head"`
		Spans []struct {
			Expr json.RawMessage `json:"expr"`
			Text string          `json:"text"`
		} `json:"spans"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	spans := make([]slast.TemplateSpan, len(body.Spans))
	for i, s := range body.Spans {
		expr, err := d.decodeExpr(s.Expr)
		if err != nil {
			return nil, err
		}
		spans[i] = slast.TemplateSpan{Expr: expr, Text: s.Text}
	}
	n := &slast.TemplateExpr{Base: base(w), Head: body.Head, Spans: spans}
	d.remember(w.ID, n)
	return n, nil
}

func (d *decoder) decodeUnaryExpr(raw json.RawMessage, w wireNode) (slast.Node, error) {
	var body struct {
		Op struct {
			Op   string `json:"op"`
			Text string `json:"text"`
		} `json:"op"`
		X      json.RawMessage `json:"x"`
		Prefix bool            `json:"prefix"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	op, err := decodeToken(body.Op)
	if err != nil {
		return nil, err
	}
	x, err := d.decodeExpr(body.X)
	if err != nil {
		return nil, err
	}
	n := &slast.UnaryExpr{Base: base(w), Op: op, X: x, Prefix: body.Prefix}
	d.remember(w.ID, n)
	return n, nil
}

func (d *decoder) decodeArrayLiteral(raw json.RawMessage, w wireNode) (slast.Node, error) {
	var body struct {
		Elements []json.RawMessage `json:"elements"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	elements, err := d.decodeExprList(body.Elements)
	if err != nil {
		return nil, err
	}
	n := &slast.ArrayLiteral{Base: base(w), Elements: elements}
	d.remember(w.ID, n)
	return n, nil
}

func (d *decoder) decodeObjectLiteral(raw json.RawMessage, w wireNode) (slast.Node, error) {
	var body struct {
		Props []struct {
			Key      json.RawMessage `json:"key"`
			Computed bool            `json:"computed"`
			Value    json.RawMessage `json:"value"`
		} `json:"props"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	props := make([]slast.ObjectProp, len(body.Props))
	for i, p := range body.Props {
		key, err := d.decodeExpr(p.Key)
		if err != nil {
			return nil, err
		}
		value, err := d.decodeExpr(p.Value)
		if err != nil {
			return nil, err
		}
		props[i] = slast.ObjectProp{Key: key, Computed: p.Computed, Value: value}
	}
	n := &slast.ObjectLiteral{Base: base(w), Props: props}
	d.remember(w.ID, n)
	return n, nil
}

func (d *decoder) decodeFunctionExpr(raw json.RawMessage, w wireNode) (slast.Node, error) {
	var body struct {
		Params []struct {
			Name          string `json:"name"`
			FieldModifier bool   `json:"fieldModifier"`
		} `json:"params"`
		Body []json.RawMessage `json:"body"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	stmts, err := d.decodeStmtList(body.Body)
	if err != nil {
		return nil, err
	}
	n := &slast.FunctionExpr{Base: base(w), Params: decodeParams(body.Params), Body: stmts}
	d.remember(w.ID, n)
	return n, nil
}

func (d *decoder) decodeArrowFunctionExpr(raw json.RawMessage, w wireNode) (slast.Node, error) {
	var body struct {
		Params []struct {
			Name          string `json:"name"`
			FieldModifier bool   `json:"fieldModifier"`
		} `json:"params"`
		Body        []json.RawMessage `json:"body"`
		ConciseExpr json.RawMessage   `json:"conciseExpr"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	stmts, err := d.decodeStmtList(body.Body)
	if err != nil {
		return nil, err
	}
	concise, err := d.decodeExpr(body.ConciseExpr)
	if err != nil {
		return nil, err
	}
	n := &slast.ArrowFunctionExpr{Base: base(w), Params: decodeParams(body.Params), Body: stmts, ConciseExpr: concise}
	d.remember(w.ID, n)
	return n, nil
}
