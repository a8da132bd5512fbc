package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/broady/bricks/typedesc"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// JavaTypeKind is the kind of a Java type declaration.
type JavaTypeKind string

const (
	JavaClass      JavaTypeKind = "class"
	JavaInterface  JavaTypeKind = "interface"
	JavaEnum       JavaTypeKind = "enum"
	JavaRecord     JavaTypeKind = "record"
	JavaAnnotation JavaTypeKind = "annotation"
)

// JavaUnit is a parsed Java compilation unit.
type JavaUnit struct {
	Package string
	Imports []string
	Types   []JavaType
}

// JavaType is a type declared in a compilation unit. Nested types are listed
// separately, after their enclosing type.
type JavaType struct {
	// Name is the canonical name, e.g. "com.example.Outer.Inner".
	Name       string
	Kind       JavaTypeKind
	Abstract   bool
	TypeParams []string
	Fields     []JavaField
	Methods    []JavaMethod
}

// Node returns the declared node for the type itself, parameterized by its
// type variables.
func (t *JavaType) Node() typedesc.Node {
	args := make([]typedesc.Node, len(t.TypeParams))
	for i, p := range t.TypeParams {
		args[i] = typedesc.Other(p)
	}
	return &typedesc.DeclaredNode{
		Name:      t.Name,
		Args:      args,
		Abstract:  t.Abstract,
		Interface: t.Kind == JavaInterface || t.Kind == JavaAnnotation,
	}
}

// JavaField is a field, record component or interface constant.
type JavaField struct {
	Name string
	Type typedesc.Node
}

// JavaMethod is a method declaration. Constructors are not included.
type JavaMethod struct {
	Name    string
	Returns typedesc.Node
	Params  []JavaField
}

// ParseJava parses a Java compilation unit and returns its declarations with
// member types bound to typedesc Nodes.
func ParseJava(ctx context.Context, src []byte) (*JavaUnit, error) {
	tree, err := parseJava(ctx, src)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	p := &javaParser{
		src:      src,
		unit:     &JavaUnit{},
		imports:  make(map[string]string),
		declared: make(map[string]*JavaType),
	}
	p.collect(tree.RootNode())
	for _, d := range p.decls {
		p.members(d)
	}
	for _, d := range p.decls {
		p.unit.Types = append(p.unit.Types, *d.typ)
	}
	return p.unit, nil
}

// ParseJavaType parses a single Java type expression such as
// "java.util.Map<String, ? extends Number[]>" into a Node. Simple names
// resolve against java.lang only.
func ParseJavaType(ctx context.Context, text string) (typedesc.Node, error) {
	text = strings.TrimSpace(text)
	const prefix = "class __Holder { __Holder<"
	src := []byte(prefix + text + "> __value; }")
	tree, err := parseJava(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("invalid type %q: %w", text, err)
	}
	defer tree.Close()

	// The text must be the sole type argument of the only field, or it
	// escaped the wrapper.
	var fields []*sitter.Node
	var args *sitter.Node
	walk(tree.RootNode(), func(n *sitter.Node) bool {
		switch n.Type() {
		case "field_declaration":
			fields = append(fields, n)
		case "type_arguments":
			if args == nil {
				args = n
			}
		}
		return true
	})
	if len(fields) != 1 || args == nil || args.NamedChildCount() != 1 {
		return nil, fmt.Errorf("invalid type %q: expected exactly one type", text)
	}
	arg := args.NamedChild(0)
	if int(arg.StartByte()) != len(prefix) || int(arg.EndByte()) != len(prefix)+len(text) {
		return nil, fmt.Errorf("invalid type %q: expected exactly one type", text)
	}

	p := &javaParser{src: src, imports: map[string]string{}, declared: map[string]*JavaType{}}
	return p.convert(arg, nil), nil
}

func parseJava(ctx context.Context, src []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parsing: %w", err)
	}
	root := tree.RootNode()
	if root.HasError() {
		defer tree.Close()
		var bad *sitter.Node
		walk(root, func(n *sitter.Node) bool {
			if bad == nil && (n.Type() == "ERROR" || n.IsMissing()) {
				bad = n
			}
			return bad == nil
		})
		if bad != nil {
			pt := bad.StartPoint()
			return nil, fmt.Errorf("syntax error at %d:%d", pt.Row+1, pt.Column+1)
		}
		return nil, fmt.Errorf("syntax error")
	}
	return tree, nil
}

// walk visits n and its descendants depth first while fn returns true.
func walk(n *sitter.Node, fn func(*sitter.Node) bool) bool {
	if !fn(n) {
		return false
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if !walk(n.Child(i), fn) {
			return false
		}
	}
	return true
}

// javaDecl ties a declaration's syntax to the JavaType being built.
type javaDecl struct {
	node  *sitter.Node
	typ   *JavaType
	scope map[string]bool // type variables visible in the body
}

type javaParser struct {
	src      []byte
	unit     *JavaUnit
	imports  map[string]string    // simple name -> canonical name
	declared map[string]*JavaType // simple or dotted-relative name -> declaration
	decls    []*javaDecl
}

func (p *javaParser) text(n *sitter.Node) string {
	return n.Content(p.src)
}

// collect records the package, imports and every type declaration.
func (p *javaParser) collect(root *sitter.Node) {
	for i := 0; i < int(root.NamedChildCount()); i++ {
		n := root.NamedChild(i)
		switch n.Type() {
		case "package_declaration":
			for j := 0; j < int(n.NamedChildCount()); j++ {
				c := n.NamedChild(j)
				if c.Type() == "identifier" || c.Type() == "scoped_identifier" {
					p.unit.Package = compact(p.text(c))
				}
			}
		case "import_declaration":
			p.collectImport(n)
		default:
			p.collectDecl(n, "", "", nil)
		}
	}
}

func (p *javaParser) collectImport(n *sitter.Node) {
	var name string
	static, wildcard := false, false
	for j := 0; j < int(n.ChildCount()); j++ {
		c := n.Child(j)
		switch c.Type() {
		case "static":
			static = true
		case "asterisk":
			wildcard = true
		case "identifier", "scoped_identifier":
			name = compact(p.text(c))
		}
	}
	if name == "" {
		return
	}
	if wildcard {
		p.unit.Imports = append(p.unit.Imports, name+".*")
		return
	}
	p.unit.Imports = append(p.unit.Imports, name)
	if !static {
		p.imports[typedesc.SimpleName(name)] = name
	}
}

var declKinds = map[string]JavaTypeKind{
	"class_declaration":           JavaClass,
	"interface_declaration":       JavaInterface,
	"enum_declaration":            JavaEnum,
	"record_declaration":          JavaRecord,
	"annotation_type_declaration": JavaAnnotation,
}

// collectDecl registers n if it declares a type, then descends into its body.
func (p *javaParser) collectDecl(n *sitter.Node, outerName, outerRel string, outerScope map[string]bool) {
	kind, ok := declKinds[n.Type()]
	if !ok {
		return
	}
	nameNode := n.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	simple := p.text(nameNode)

	canonical := simple
	switch {
	case outerName != "":
		canonical = outerName + "." + simple
	case p.unit.Package != "":
		canonical = p.unit.Package + "." + simple
	}
	rel := simple
	if outerRel != "" {
		rel = outerRel + "." + simple
	}

	typ := &JavaType{
		Name:     canonical,
		Kind:     kind,
		Abstract: kind == JavaInterface || kind == JavaAnnotation || hasModifier(n, "abstract"),
	}
	scope := make(map[string]bool, len(outerScope))
	// Nested types are treated as inner classes, static or not.
	for k := range outerScope {
		scope[k] = true
	}
	if tps := childOfType(n, "type_parameters"); tps != nil {
		for j := 0; j < int(tps.NamedChildCount()); j++ {
			tp := tps.NamedChild(j)
			if tp.Type() != "type_parameter" {
				continue
			}
			for k := 0; k < int(tp.NamedChildCount()); k++ {
				if c := tp.NamedChild(k); c.Type() == "type_identifier" || c.Type() == "identifier" {
					typ.TypeParams = append(typ.TypeParams, p.text(c))
					scope[p.text(c)] = true
					break
				}
			}
		}
	}

	p.declared[rel] = typ
	if _, exists := p.declared[simple]; !exists {
		p.declared[simple] = typ
	}
	p.decls = append(p.decls, &javaDecl{node: n, typ: typ, scope: scope})

	body := n.ChildByFieldName("body")
	if body == nil {
		return
	}
	eachMember(body, func(m *sitter.Node) {
		p.collectDecl(m, canonical, rel, scope)
	})
}

func childOfType(n *sitter.Node, typ string) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if c := n.NamedChild(i); c.Type() == typ {
			return c
		}
	}
	return nil
}

// eachMember calls fn for each member declaration in a class, interface or
// enum body.
func eachMember(body *sitter.Node, fn func(*sitter.Node)) {
	for i := 0; i < int(body.NamedChildCount()); i++ {
		m := body.NamedChild(i)
		if m.Type() == "enum_body_declarations" {
			eachMember(m, fn)
			continue
		}
		fn(m)
	}
}

func hasModifier(decl *sitter.Node, modifier string) bool {
	for i := 0; i < int(decl.NamedChildCount()); i++ {
		mods := decl.NamedChild(i)
		if mods.Type() != "modifiers" {
			continue
		}
		for j := 0; j < int(mods.ChildCount()); j++ {
			if mods.Child(j).Type() == modifier {
				return true
			}
		}
	}
	return false
}

// members fills in the fields and methods of a collected declaration.
func (p *javaParser) members(d *javaDecl) {
	if d.typ.Kind == JavaRecord {
		if params := childOfType(d.node, "formal_parameters"); params != nil {
			d.typ.Fields = append(d.typ.Fields, p.params(params, d.scope)...)
		}
	}
	body := d.node.ChildByFieldName("body")
	if body == nil {
		return
	}
	eachMember(body, func(m *sitter.Node) {
		switch m.Type() {
		case "field_declaration", "constant_declaration":
			typeNode := m.ChildByFieldName("type")
			if typeNode == nil {
				return
			}
			for j := 0; j < int(m.NamedChildCount()); j++ {
				decl := m.NamedChild(j)
				if decl.Type() != "variable_declarator" {
					continue
				}
				d.typ.Fields = append(d.typ.Fields, p.declarator(typeNode, decl, d.scope))
			}

		case "method_declaration":
			d.typ.Methods = append(d.typ.Methods, p.method(m, d.scope))
		}
	})
}

func (p *javaParser) method(m *sitter.Node, outer map[string]bool) JavaMethod {
	scope := outer
	if tps := childOfType(m, "type_parameters"); tps != nil {
		scope = make(map[string]bool, len(outer))
		for k := range outer {
			scope[k] = true
		}
		for j := 0; j < int(tps.NamedChildCount()); j++ {
			tp := tps.NamedChild(j)
			for k := 0; k < int(tp.NamedChildCount()); k++ {
				if c := tp.NamedChild(k); c.Type() == "type_identifier" || c.Type() == "identifier" {
					scope[p.text(c)] = true
					break
				}
			}
		}
	}

	method := JavaMethod{Name: p.text(m.ChildByFieldName("name"))}
	if ret := m.ChildByFieldName("type"); ret != nil {
		method.Returns = p.convert(ret, scope)
	}
	if params := m.ChildByFieldName("parameters"); params != nil {
		method.Params = p.params(params, scope)
	}
	return method
}

func (p *javaParser) params(params *sitter.Node, scope map[string]bool) []JavaField {
	var out []JavaField
	for i := 0; i < int(params.NamedChildCount()); i++ {
		param := params.NamedChild(i)
		switch param.Type() {
		case "formal_parameter":
			typeNode := param.ChildByFieldName("type")
			if typeNode == nil {
				continue
			}
			out = append(out, p.declarator(typeNode, param, scope))

		case "spread_parameter":
			var typeNode, decl *sitter.Node
			for j := 0; j < int(param.NamedChildCount()); j++ {
				c := param.NamedChild(j)
				switch {
				case c.Type() == "variable_declarator":
					decl = c
				case c.Type() != "modifiers" && typeNode == nil:
					typeNode = c
				}
			}
			if typeNode == nil || decl == nil {
				continue
			}
			f := p.declarator(typeNode, decl, scope)
			f.Type = typedesc.ArrayOf(f.Type)
			out = append(out, f)
		}
	}
	return out
}

// declarator builds a field from a declared type and a declarator carrying
// the name and any C-style array dimensions.
func (p *javaParser) declarator(typeNode, decl *sitter.Node, scope map[string]bool) JavaField {
	t := p.convert(typeNode, scope)
	if dims := decl.ChildByFieldName("dimensions"); dims != nil {
		for range strings.Count(p.text(dims), "[") {
			t = typedesc.ArrayOf(t)
		}
	}
	name := ""
	if nameNode := decl.ChildByFieldName("name"); nameNode != nil {
		name = p.text(nameNode)
	}
	return JavaField{Name: name, Type: t}
}

var typeNodes = map[string]bool{
	"integral_type":          true,
	"floating_point_type":    true,
	"boolean_type":           true,
	"void_type":              true,
	"type_identifier":        true,
	"scoped_type_identifier": true,
	"generic_type":           true,
	"array_type":             true,
	"annotated_type":         true,
	"wildcard":               true,
}

// convert binds a tree-sitter type node to a typedesc Node.
func (p *javaParser) convert(n *sitter.Node, scope map[string]bool) typedesc.Node {
	switch n.Type() {
	case "integral_type", "floating_point_type", "boolean_type":
		return typedesc.Primitive(p.text(n))

	case "void_type":
		return typedesc.Void()

	case "type_identifier":
		return p.named(p.text(n), nil, scope)

	case "scoped_type_identifier":
		text := compact(p.text(n))
		if strings.Contains(text, "<") {
			// Outer<T>.Inner: a member of a parameterized type.
			return typedesc.Other(text)
		}
		return p.named(text, nil, scope)

	case "generic_type":
		var base string
		var args []typedesc.Node
		for i := 0; i < int(n.NamedChildCount()); i++ {
			c := n.NamedChild(i)
			switch c.Type() {
			case "type_identifier", "scoped_type_identifier":
				base = compact(p.text(c))
			case "type_arguments":
				for j := 0; j < int(c.NamedChildCount()); j++ {
					if a := c.NamedChild(j); typeNodes[a.Type()] {
						args = append(args, p.convert(a, scope))
					}
				}
			}
		}
		return p.named(base, args, scope)

	case "array_type":
		elem := p.convert(n.ChildByFieldName("element"), scope)
		dims := 1
		if d := n.ChildByFieldName("dimensions"); d != nil {
			dims = strings.Count(p.text(d), "[")
		}
		for range dims {
			elem = typedesc.ArrayOf(elem)
		}
		return elem

	case "annotated_type":
		for i := int(n.NamedChildCount()) - 1; i >= 0; i-- {
			if c := n.NamedChild(i); typeNodes[c.Type()] {
				return p.convert(c, scope)
			}
		}
		return typedesc.Other(p.text(n))

	case "wildcard":
		super := false
		var bound typedesc.Node
		for i := 0; i < int(n.ChildCount()); i++ {
			c := n.Child(i)
			switch {
			case c.Type() == "super":
				super = true
			case c.IsNamed() && typeNodes[c.Type()]:
				bound = p.convert(c, scope)
			}
		}
		switch {
		case bound == nil:
			return typedesc.Wildcard()
		case super:
			return typedesc.Super(bound)
		default:
			return typedesc.Extends(bound)
		}

	default:
		return typedesc.Other(p.text(n))
	}
}

// named resolves a simple or dotted type name to a declared node, or to an
// Other node when it names a type variable.
func (p *javaParser) named(name string, args []typedesc.Node, scope map[string]bool) typedesc.Node {
	if name == "" {
		return typedesc.Other("")
	}
	if scope[name] {
		return typedesc.Other(name)
	}

	canonical := p.canonical(name)
	node := &typedesc.DeclaredNode{Name: canonical, Args: args}
	if t, ok := p.declared[name]; ok && t.Name == canonical {
		node.Abstract = t.Abstract
		node.Interface = t.Kind == JavaInterface || t.Kind == JavaAnnotation
		return node
	}
	switch jdkTypes[canonical] {
	case jdkInterface:
		node.Abstract, node.Interface = true, true
	case jdkAbstract:
		node.Abstract = true
	}
	return node
}

func (p *javaParser) canonical(name string) string {
	head, rest, dotted := strings.Cut(name, ".")
	if t, ok := p.declared[name]; ok {
		return t.Name
	}
	if full, ok := p.imports[head]; ok {
		if dotted {
			return full + "." + rest
		}
		return full
	}
	if t, ok := p.declared[head]; ok && dotted {
		return t.Name + "." + rest
	}
	if dotted {
		return name
	}
	if _, ok := javaLang[name]; ok {
		return "java.lang." + name
	}
	if p.unit != nil && p.unit.Package != "" {
		return p.unit.Package + "." + name
	}
	return name
}

// compact removes whitespace from a dotted name.
func compact(s string) string {
	return strings.Join(strings.Fields(s), "")
}
