package adapter

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	m "testsmith.dev/pkg/testsmith/internal/model"
)

// JavaFileAdapter encapsulates Java-specific parsing so the domain layer
// can work against an already-parsed declaration surface while delegating
// grammar details to an infrastructure component.
type JavaFileAdapter interface {
	// Parse builds the declaration surface for every top-level type in the
	// provided source. The result is read-only; callers never mutate it.
	Parse(ctx context.Context, path m.Path, src []byte) ([]m.ClassDeclaration, error)
}

// TreeSitterJavaAdapter provides a concrete JavaFileAdapter backed by the
// tree-sitter Java grammar. A fresh parser is created per call, so the
// adapter is safe for concurrent use.
type TreeSitterJavaAdapter struct{}

// NewTreeSitterJavaAdapter constructs a TreeSitterJavaAdapter.
func NewTreeSitterJavaAdapter() *TreeSitterJavaAdapter {
	return &TreeSitterJavaAdapter{}
}

// Parse extracts package, imports, and top-level type declarations.
// Tree-sitter is error tolerant, so syntactically damaged files yield
// partial declarations instead of failing outright.
func (a *TreeSitterJavaAdapter) Parse(ctx context.Context, path m.Path, src []byte) ([]m.ClassDeclaration, error) {
	if !utf8.Valid(src) {
		return nil, fmt.Errorf("%s: source is not valid UTF-8", path)
	}

	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()

	packageName := extractPackageName(root, src)
	imports := extractImports(root, src)

	var decls []m.ClassDeclaration

	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)

		kind, ok := declarationKind(child.Type())
		if !ok {
			continue
		}

		decl := m.ClassDeclaration{
			PackageName: packageName,
			Kind:        kind,
			SourcePath:  path,
		}

		if name := child.ChildByFieldName("name"); name != nil {
			decl.Name = name.Content(src)
		}

		if body := child.ChildByFieldName("body"); body != nil && kind == m.KindClass {
			collectMembers(body, src, imports, &decl)
		}

		decls = append(decls, decl)
	}

	return decls, nil
}

func declarationKind(nodeType string) (m.DeclarationKind, bool) {
	switch nodeType {
	case "class_declaration":
		return m.KindClass, true
	case "interface_declaration":
		return m.KindInterface, true
	case "annotation_type_declaration":
		return m.KindAnnotation, true
	case "enum_declaration":
		return m.KindEnum, true
	case "record_declaration":
		return m.KindRecord, true
	}

	return "", false
}

func extractPackageName(root *sitter.Node, src []byte) string {
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		if child.Type() != "package_declaration" {
			continue
		}

		for j := 0; j < int(child.NamedChildCount()); j++ {
			name := child.NamedChild(j)
			if name.Type() == "scoped_identifier" || name.Type() == "identifier" {
				return name.Content(src)
			}
		}
	}

	return ""
}

// importTable maps simple type names to qualified names, and keeps the
// packages pulled in by wildcard imports.
type importTable struct {
	bySimpleName map[string]string
	wildcards    []string
}

func extractImports(root *sitter.Node, src []byte) importTable {
	table := importTable{bySimpleName: make(map[string]string)}

	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		if child.Type() != "import_declaration" {
			continue
		}

		var (
			path     string
			wildcard bool
		)

		for j := 0; j < int(child.NamedChildCount()); j++ {
			part := child.NamedChild(j)

			switch part.Type() {
			case "scoped_identifier", "identifier":
				path = part.Content(src)
			case "asterisk":
				wildcard = true
			}
		}

		if path == "" {
			continue
		}

		if wildcard {
			table.wildcards = append(table.wildcards, path)
			continue
		}

		if dot := strings.LastIndexByte(path, '.'); dot >= 0 {
			table.bySimpleName[path[dot+1:]] = path
		}
	}

	return table
}

// qualify resolves an annotation reference to candidate qualified names.
// Already-dotted references pass through; a simple name resolves via the
// import table, and every wildcard package contributes one candidate since
// the adapter cannot know which one the compiler would pick.
func (t importTable) qualify(name string) []string {
	if strings.ContainsRune(name, '.') {
		return []string{name}
	}

	if qualified, ok := t.bySimpleName[name]; ok {
		return []string{qualified}
	}

	candidates := []string{name}
	for _, wildcard := range t.wildcards {
		candidates = append(candidates, wildcard+"."+name)
	}

	return candidates
}

func collectMembers(body *sitter.Node, src []byte, imports importTable, decl *m.ClassDeclaration) {
	for i := 0; i < int(body.NamedChildCount()); i++ {
		member := body.NamedChild(i)

		switch member.Type() {
		case "field_declaration":
			decl.Fields = append(decl.Fields, collectFields(member, src, imports)...)
		case "constructor_declaration":
			decl.Constructors = append(decl.Constructors, m.ConstructorDeclaration{
				Parameters: collectParameters(member.ChildByFieldName("parameters"), src),
			})
		case "method_declaration":
			decl.Methods = append(decl.Methods, collectMethod(member, src))
		}
	}
}

// collectFields expands a single field_declaration into one declaration
// per declarator, all sharing the type and annotations.
func collectFields(node *sitter.Node, src []byte, imports importTable) []m.FieldDeclaration {
	typeName := ""
	if typeNode := node.ChildByFieldName("type"); typeNode != nil {
		typeName = typeNode.Content(src)
	}

	annotations := collectAnnotations(node, src, imports)

	var fields []m.FieldDeclaration

	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() != "variable_declarator" {
			continue
		}

		name := child.ChildByFieldName("name")
		if name == nil {
			continue
		}

		fields = append(fields, m.FieldDeclaration{
			TypeName:    typeName,
			Name:        name.Content(src),
			Annotations: annotations,
		})
	}

	return fields
}

func collectMethod(node *sitter.Node, src []byte) m.MethodDeclaration {
	method := m.MethodDeclaration{ReturnType: "void"}

	if name := node.ChildByFieldName("name"); name != nil {
		method.Name = name.Content(src)
	}

	if typeNode := node.ChildByFieldName("type"); typeNode != nil {
		method.ReturnType = typeNode.Content(src)
	}

	method.IsPublic = hasModifier(node, src, "public")
	method.IsStatic = hasModifier(node, src, "static")
	method.Parameters = collectParameters(node.ChildByFieldName("parameters"), src)
	method.Throws = collectThrows(node, src)

	return method
}

func collectParameters(params *sitter.Node, src []byte) []m.ParameterDeclaration {
	if params == nil {
		return nil
	}

	var out []m.ParameterDeclaration

	for i := 0; i < int(params.NamedChildCount()); i++ {
		param := params.NamedChild(i)

		switch param.Type() {
		case "formal_parameter":
			var p m.ParameterDeclaration

			if typeNode := param.ChildByFieldName("type"); typeNode != nil {
				p.TypeName = typeNode.Content(src)
			}

			if name := param.ChildByFieldName("name"); name != nil {
				p.Name = name.Content(src)
			}

			out = append(out, p)
		case "spread_parameter":
			out = append(out, spreadParameter(param, src))
		}
	}

	return out
}

// spreadParameter extracts a varargs parameter. The grammar exposes no
// type or name field here: the element type and the variable_declarator
// are plain named children. The type is rendered in array form so the
// generated call sites stay valid Java.
func spreadParameter(param *sitter.Node, src []byte) m.ParameterDeclaration {
	var p m.ParameterDeclaration

	for i := 0; i < int(param.NamedChildCount()); i++ {
		child := param.NamedChild(i)

		switch child.Type() {
		case "modifiers":
		case "variable_declarator":
			if name := child.ChildByFieldName("name"); name != nil {
				p.Name = name.Content(src)
			}
		default:
			p.TypeName = child.Content(src) + "[]"
		}
	}

	return p
}

func collectThrows(node *sitter.Node, src []byte) []string {
	var thrown []string

	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() != "throws" {
			continue
		}

		for j := 0; j < int(child.NamedChildCount()); j++ {
			thrown = append(thrown, child.NamedChild(j).Content(src))
		}
	}

	return thrown
}

func modifiersNode(node *sitter.Node) *sitter.Node {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == "modifiers" {
			return child
		}
	}

	return nil
}

func hasModifier(node *sitter.Node, src []byte, modifier string) bool {
	mods := modifiersNode(node)
	if mods == nil {
		return false
	}

	for i := 0; i < int(mods.ChildCount()); i++ {
		if mods.Child(i).Content(src) == modifier {
			return true
		}
	}

	return false
}

func collectAnnotations(node *sitter.Node, src []byte, imports importTable) []string {
	mods := modifiersNode(node)
	if mods == nil {
		return nil
	}

	var annotations []string

	for i := 0; i < int(mods.NamedChildCount()); i++ {
		child := mods.NamedChild(i)
		if child.Type() != "marker_annotation" && child.Type() != "annotation" {
			continue
		}

		name := child.ChildByFieldName("name")
		if name == nil {
			continue
		}

		annotations = append(annotations, imports.qualify(name.Content(src))...)
	}

	return annotations
}
