package slastjson

import (
	"encoding/json"
	"fmt"

	"github.com/zengjie/TypescriptToLua/slast"
)

func (d *decoder) decodeProgram(raw json.RawMessage, w wireNode) (slast.Node, error) {
	var body struct {
		Statements []json.RawMessage `json:"statements"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	stmts, err := d.decodeStmtList(body.Statements)
	if err != nil {
		return nil, err
	}
	n := &slast.Program{Base: base(w), Statements: stmts}
	d.remember(w.ID, n)
	return n, nil
}

func (d *decoder) decodeImportStarStmt(raw json.RawMessage, w wireNode) (slast.Node, error) {
	var body struct {
		Alias  string `json:"alias"`
		Module string `json:"module"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	n := &slast.ImportStarStmt{Base: base(w), Alias: body.Alias, Module: body.Module}
	d.remember(w.ID, n)
	return n, nil
}

func (d *decoder) decodeImportNamedStmt(raw json.RawMessage, w wireNode) (slast.Node, error) {
	var body struct {
		Names []struct {
			Name         string `json:"name"`
			PropertyName string `json:"propertyName"`
		} `json:"names"`
		Module string `json:"module"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	names := make([]slast.ImportSpecifier, len(body.Names))
	for i, spec := range body.Names {
		names[i] = slast.ImportSpecifier{Name: spec.Name, PropertyName: spec.PropertyName}
	}
	n := &slast.ImportNamedStmt{Base: base(w), Names: names, Module: body.Module}
	d.remember(w.ID, n)
	return n, nil
}

func (d *decoder) decodeClassDecl(raw json.RawMessage, w wireNode) (slast.Node, error) {
	var body struct {
		Name    string            `json:"name"`
		Extends json.RawMessage   `json:"extends"`
		Members []json.RawMessage `json:"members"`
		Declare bool              `json:"declare"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	extends, err := d.decodeExpr(body.Extends)
	if err != nil {
		return nil, err
	}
	members := make([]slast.ClassMember, 0, len(body.Members))
	for _, raw := range body.Members {
		m, err := d.decodeClassMember(raw)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	n := &slast.ClassDecl{Base: base(w), Name: body.Name, Extends: extends, Members: members, Declare: body.Declare}
	d.remember(w.ID, n)
	return n, nil
}

func (d *decoder) decodeClassMember(raw json.RawMessage) (slast.ClassMember, error) {
	var w wireNode
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, err
	}
	switch w.Kind {
	case "Constructor":
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
		return &slast.ConstructorMember{Base: base(w), Params: decodeParams(body.Params), Body: stmts}, nil
	case "Method":
		var body struct {
			Name   string `json:"name"`
			Params []struct {
				Name          string `json:"name"`
				FieldModifier bool   `json:"fieldModifier"`
			} `json:"params"`
			Body   []json.RawMessage `json:"body"`
			Static bool              `json:"static"`
		}
		if err := json.Unmarshal(raw, &body); err != nil {
			return nil, err
		}
		stmts, err := d.decodeStmtList(body.Body)
		if err != nil {
			return nil, err
		}
		return &slast.MethodMember{Base: base(w), Name: body.Name, Params: decodeParams(body.Params), Body: stmts, Static: body.Static}, nil
	case "Field":
		var body struct {
			Name   string          `json:"name"`
			Init   json.RawMessage `json:"init"`
			Static bool            `json:"static"`
		}
		if err := json.Unmarshal(raw, &body); err != nil {
			return nil, err
		}
		init, err := d.decodeExpr(body.Init)
		if err != nil {
			return nil, err
		}
		return &slast.FieldMember{Base: base(w), Name: body.Name, Init: init, Static: body.Static}, nil
	default:
		return nil, errUnknownMember(w.Kind)
	}
}

func (d *decoder) decodeEnumDecl(raw json.RawMessage, w wireNode) (slast.Node, error) {
	var body struct {
		Name    string `json:"name"`
		Members []struct {
			Name string          `json:"name"`
			Init json.RawMessage `json:"init"`
		} `json:"members"`
		Declare bool `json:"declare"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	members := make([]slast.EnumMember, len(body.Members))
	for i, m := range body.Members {
		init, err := d.decodeExpr(m.Init)
		if err != nil {
			return nil, err
		}
		members[i] = slast.EnumMember{Name: m.Name, Init: init}
	}
	n := &slast.EnumDecl{Base: base(w), Name: body.Name, Members: members, Declare: body.Declare}
	d.remember(w.ID, n)
	return n, nil
}

func (d *decoder) decodeFuncDecl(raw json.RawMessage, w wireNode) (slast.Node, error) {
	var body struct {
		Name   string `json:"name"`
		Params []struct {
			Name          string `json:"name"`
			FieldModifier bool   `json:"fieldModifier"`
		} `json:"params"`
		Body    []json.RawMessage `json:"body"`
		Declare bool              `json:"declare"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	stmts, err := d.decodeStmtList(body.Body)
	if err != nil {
		return nil, err
	}
	n := &slast.FuncDecl{Base: base(w), Name: body.Name, Params: decodeParams(body.Params), Body: stmts, Declare: body.Declare}
	d.remember(w.ID, n)
	return n, nil
}

func (d *decoder) decodeVarStmt(raw json.RawMessage, w wireNode) (slast.Node, error) {
	var body struct {
		Declarators []struct {
			Kind     string `json:"kind"`
			Name     string `json:"name"`
			Elements []struct {
				Name string `json:"name"`
				Rest bool   `json:"rest"`
			} `json:"elements"`
			Init json.RawMessage `json:"init"`
		} `json:"declarators"`
		Declare bool `json:"declare"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	decls := make([]slast.Declarator, len(body.Declarators))
	for i, dd := range body.Declarators {
		init, err := d.decodeExpr(dd.Init)
		if err != nil {
			return nil, err
		}
		kind := slast.DeclOther
		switch dd.Kind {
		case "ident":
			kind = slast.DeclIdent
		case "arrayPattern":
			kind = slast.DeclArrayPattern
		}
		elements := make([]slast.PatternElement, len(dd.Elements))
		for j, el := range dd.Elements {
			elements[j] = slast.PatternElement{Name: el.Name, Rest: el.Rest}
		}
		decls[i] = slast.Declarator{Kind: kind, Name: dd.Name, Elements: elements, Init: init}
	}
	n := &slast.VarStmt{Base: base(w), Declarators: decls, Declare: body.Declare}
	for i := range n.Declarators {
		n.Declarators[i].Node = n
	}
	d.remember(w.ID, n)
	return n, nil
}

func (d *decoder) decodeExprStmt(raw json.RawMessage, w wireNode) (slast.Node, error) {
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
	n := &slast.ExprStmt{Base: base(w), X: x}
	d.remember(w.ID, n)
	return n, nil
}

func (d *decoder) decodeReturnStmt(raw json.RawMessage, w wireNode) (slast.Node, error) {
	var body struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	result, err := d.decodeExpr(body.Result)
	if err != nil {
		return nil, err
	}
	n := &slast.ReturnStmt{Base: base(w), Result: result}
	d.remember(w.ID, n)
	return n, nil
}

func (d *decoder) decodeIfStmt(raw json.RawMessage, w wireNode) (slast.Node, error) {
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
	then, err := d.decodeStmt(body.Then)
	if err != nil {
		return nil, err
	}
	els, err := d.decodeStmt(body.Else)
	if err != nil {
		return nil, err
	}
	n := &slast.IfStmt{Base: base(w), Cond: cond, Then: then, Else: els}
	d.remember(w.ID, n)
	return n, nil
}

func (d *decoder) decodeWhileStmt(raw json.RawMessage, w wireNode) (slast.Node, error) {
	var body struct {
		Cond json.RawMessage `json:"cond"`
		Body json.RawMessage `json:"body"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	cond, err := d.decodeExpr(body.Cond)
	if err != nil {
		return nil, err
	}
	bodyStmt, err := d.decodeStmt(body.Body)
	if err != nil {
		return nil, err
	}
	n := &slast.WhileStmt{Base: base(w), Cond: cond, Body: bodyStmt}
	d.remember(w.ID, n)
	return n, nil
}

func (d *decoder) decodeForStmt(raw json.RawMessage, w wireNode) (slast.Node, error) {
	var body struct {
		Init json.RawMessage `json:"init"`
		Cond json.RawMessage `json:"cond"`
		Post json.RawMessage `json:"post"`
		Body json.RawMessage `json:"body"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	init, err := d.decodeStmt(body.Init)
	if err != nil {
		return nil, err
	}
	cond, err := d.decodeExpr(body.Cond)
	if err != nil {
		return nil, err
	}
	post, err := d.decodeStmt(body.Post)
	if err != nil {
		return nil, err
	}
	bodyStmt, err := d.decodeStmt(body.Body)
	if err != nil {
		return nil, err
	}
	n := &slast.ForStmt{Base: base(w), Init: init, Cond: cond, Post: post, Body: bodyStmt}
	d.remember(w.ID, n)
	return n, nil
}

func (d *decoder) decodeForOfStmt(raw json.RawMessage, w wireNode) (slast.Node, error) {
	var body struct {
		Name     string          `json:"name"`
		Iterable json.RawMessage `json:"iterable"`
		Body     json.RawMessage `json:"body"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	iterable, err := d.decodeExpr(body.Iterable)
	if err != nil {
		return nil, err
	}
	bodyStmt, err := d.decodeStmt(body.Body)
	if err != nil {
		return nil, err
	}
	n := &slast.ForOfStmt{Base: base(w), Name: body.Name, Iterable: iterable, Body: bodyStmt}
	d.remember(w.ID, n)
	return n, nil
}

func (d *decoder) decodeForInStmt(raw json.RawMessage, w wireNode) (slast.Node, error) {
	var body struct {
		Name     string          `json:"name"`
		Iterable json.RawMessage `json:"iterable"`
		Body     json.RawMessage `json:"body"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	iterable, err := d.decodeExpr(body.Iterable)
	if err != nil {
		return nil, err
	}
	bodyStmt, err := d.decodeStmt(body.Body)
	if err != nil {
		return nil, err
	}
	n := &slast.ForInStmt{Base: base(w), Name: body.Name, Iterable: iterable, Body: bodyStmt}
	d.remember(w.ID, n)
	return n, nil
}

func (d *decoder) decodeSwitchStmt(raw json.RawMessage, w wireNode) (slast.Node, error) {
	var body struct {
		Tag   json.RawMessage `json:"tag"`
		Cases []struct {
			Test json.RawMessage   `json:"test"`
			Body []json.RawMessage `json:"body"`
		} `json:"cases"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	tag, err := d.decodeExpr(body.Tag)
	if err != nil {
		return nil, err
	}
	cases := make([]slast.SwitchCase, len(body.Cases))
	for i, c := range body.Cases {
		test, err := d.decodeExpr(c.Test)
		if err != nil {
			return nil, err
		}
		stmts, err := d.decodeStmtList(c.Body)
		if err != nil {
			return nil, err
		}
		cases[i] = slast.SwitchCase{Test: test, Body: stmts}
	}
	n := &slast.SwitchStmt{Base: base(w), Tag: tag, Cases: cases}
	d.remember(w.ID, n)
	return n, nil
}

func (d *decoder) decodeBlockStmt(raw json.RawMessage, w wireNode) (slast.Node, error) {
	var body struct {
		Body []json.RawMessage `json:"body"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	stmts, err := d.decodeStmtList(body.Body)
	if err != nil {
		return nil, err
	}
	n := &slast.BlockStmt{Base: base(w), Body: stmts}
	d.remember(w.ID, n)
	return n, nil
}

func errUnknownMember(kind string) error {
	return fmt.Errorf("unknown class member kind %q", kind)
}
