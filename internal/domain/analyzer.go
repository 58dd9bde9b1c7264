// Package domain contains the core test generation workflow and logic.
package domain

import (
	"errors"
	"strings"

	m "testsmith.dev/pkg/testsmith/internal/model"
)

// ErrNotConcreteClass is returned when a declaration cannot host generated
// tests (interface, annotation type, enum, record, or missing name).
var ErrNotConcreteClass = errors.New("declaration is not a concrete class")

// injectionMarkers are the qualified annotation names that mark a field as
// an injected dependency. The list is a closed set; extend it here.
var injectionMarkers = []string{
	"org.springframework.beans.factory.annotation.Autowired",
	"javax.inject.Inject",
	"jakarta.inject.Inject",
	"javax.annotation.Resource",
}

// objectMethods are universal methods every Java object carries. Overrides
// of these never produce tests.
var objectMethods = map[string]struct{}{
	"toString":  {},
	"hashCode":  {},
	"equals":    {},
	"clone":     {},
	"finalize":  {},
	"getClass":  {},
	"notify":    {},
	"notifyAll": {},
	"wait":      {},
}

// StructuralAnalyzer turns a parsed class declaration into a ClassModel.
type StructuralAnalyzer interface {
	Analyze(decl m.ClassDeclaration) (m.ClassModel, error)
}

type structuralAnalyzer struct{}

// NewStructuralAnalyzer creates a stateless StructuralAnalyzer.
func NewStructuralAnalyzer() StructuralAnalyzer {
	return &structuralAnalyzer{}
}

// Analyze extracts injected dependencies and testable operations from the
// declaration. Dependencies come from marker-annotated fields; when none
// exist it falls back to the constructor with the most parameters.
func (a *structuralAnalyzer) Analyze(decl m.ClassDeclaration) (m.ClassModel, error) {
	if !decl.IsConcreteClass() {
		return m.ClassModel{}, ErrNotConcreteClass
	}

	deps := extractMarkedFields(decl)
	if len(deps) == 0 {
		deps = extractConstructorInjected(decl)
	}

	return m.ClassModel{
		PackageName:  decl.PackageName,
		ClassName:    decl.Name,
		Dependencies: deps,
		Operations:   extractOperations(decl),
	}, nil
}

func extractMarkedFields(decl m.ClassDeclaration) []m.Dependency {
	deps := make([]m.Dependency, 0, len(decl.Fields))

	for _, field := range decl.Fields {
		if !isInjected(field) {
			continue
		}

		deps = append(deps, m.Dependency{
			TypeName:  NormalizeTypeName(field.TypeName),
			FieldName: field.Name,
		})
	}

	return deps
}

func isInjected(field m.FieldDeclaration) bool {
	for _, annotation := range field.Annotations {
		for _, marker := range injectionMarkers {
			if annotation == marker {
				return true
			}
		}
	}

	return false
}

// extractConstructorInjected treats the parameters of the largest
// constructor as dependencies. Ties keep the first constructor seen; with
// several same-arity constructors the result depends on declaration order.
func extractConstructorInjected(decl m.ClassDeclaration) []m.Dependency {
	var best *m.ConstructorDeclaration

	for i := range decl.Constructors {
		ctor := &decl.Constructors[i]
		if best == nil || len(ctor.Parameters) > len(best.Parameters) {
			best = ctor
		}
	}

	if best == nil {
		return nil
	}

	deps := make([]m.Dependency, 0, len(best.Parameters))
	for _, param := range best.Parameters {
		deps = append(deps, m.Dependency{
			TypeName:  NormalizeTypeName(param.TypeName),
			FieldName: param.Name,
		})
	}

	return deps
}

func extractOperations(decl m.ClassDeclaration) []m.Operation {
	ops := make([]m.Operation, 0, len(decl.Methods))

	for _, method := range decl.Methods {
		if !method.IsPublic || method.IsStatic {
			continue
		}

		if _, universal := objectMethods[method.Name]; universal {
			continue
		}

		returnType := "void"
		if method.ReturnType != "" && method.ReturnType != "void" {
			returnType = NormalizeTypeName(method.ReturnType)
		}

		params := make([]m.Parameter, 0, len(method.Parameters))
		for _, p := range method.Parameters {
			params = append(params, m.Parameter{
				TypeName: NormalizeTypeName(p.TypeName),
				Name:     p.Name,
			})
		}

		failures := make([]string, 0, len(method.Throws))
		for _, thrown := range method.Throws {
			failures = append(failures, NormalizeTypeName(thrown))
		}

		ops = append(ops, m.Operation{
			Name:         method.Name,
			ReturnType:   returnType,
			IsVoid:       returnType == "void",
			Parameters:   params,
			FailureModes: failures,
		})
	}

	return ops
}

// NormalizeTypeName strips qualifiers from a type reference while
// preserving generic arguments: each dotted name keeps only its final
// identifier, applied recursively inside angle brackets.
//
//	java.util.Optional<java.util.List<com.example.Order>> -> Optional<List<Order>>
//	pkg.sub.Outer.Inner<pkg2.Generic<pkg3.T>>             -> Inner<Generic<T>>
//
// The "void" sentinel passes through untouched.
func NormalizeTypeName(typeName string) string {
	typeName = strings.TrimSpace(typeName)
	if typeName == "" || typeName == "void" {
		return typeName
	}

	open := strings.IndexByte(typeName, '<')
	if open < 0 {
		return lastIdentifier(typeName)
	}

	close := strings.LastIndexByte(typeName, '>')
	if close < open {
		// Unbalanced generics; normalize the raw name as-is.
		return lastIdentifier(typeName)
	}

	base := lastIdentifier(typeName[:open])
	suffix := typeName[close+1:] // array brackets and the like

	args := splitTopLevelArgs(typeName[open+1 : close])
	for i, arg := range args {
		args[i] = NormalizeTypeName(arg)
	}

	return base + "<" + strings.Join(args, ", ") + ">" + suffix
}

// lastIdentifier keeps trailing array brackets while dropping every dotted
// qualifier before the final identifier.
func lastIdentifier(name string) string {
	name = strings.TrimSpace(name)

	suffix := ""
	if idx := strings.IndexByte(name, '['); idx >= 0 {
		suffix = name[idx:]
		name = name[:idx]
	}

	if dot := strings.LastIndexByte(name, '.'); dot >= 0 {
		name = name[dot+1:]
	}

	return name + suffix
}

// splitTopLevelArgs splits generic arguments on commas that are not nested
// inside further angle brackets.
func splitTopLevelArgs(args string) []string {
	var (
		parts []string
		depth int
		start int
	)

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(args[start:i]))
				start = i + 1
			}
		}
	}

	parts = append(parts, strings.TrimSpace(args[start:]))

	return parts
}
