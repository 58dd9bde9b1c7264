// Package model defines the data structures for test generation.
package model

import "strings"

// Path represents a file system path.
type Path string

// Parameter is one declared parameter of an operation.
type Parameter struct {
	TypeName string
	Name     string
}

// Dependency is a collaborator the class under test needs injected,
// detected either via marker annotations or constructor shape.
type Dependency struct {
	TypeName  string // normalized, generics preserved
	FieldName string
}

// Operation is a public, testable behavior of the class under test.
type Operation struct {
	Name         string
	ReturnType   string // "void" is a sentinel, not a real type
	IsVoid       bool   // invariant: IsVoid == (ReturnType == "void")
	Parameters   []Parameter
	FailureModes []string // simple names of declared checked failure types
}

// ClassModel is an immutable snapshot of one class under test.
// Dependency and operation order follows declaration order; the first
// dependency is the one chosen for stubbing, so order is semantic.
type ClassModel struct {
	PackageName  string
	ClassName    string
	Dependencies []Dependency
	Operations   []Operation
}

// Select returns a new ClassModel containing only the operations whose
// names appear in the provided set. The receiver is never modified.
func (c ClassModel) Select(names []string) ClassModel {
	wanted := make(map[string]struct{}, len(names))
	for _, name := range names {
		wanted[name] = struct{}{}
	}

	selected := make([]Operation, 0, len(c.Operations))

	for _, op := range c.Operations {
		if _, ok := wanted[op.Name]; ok {
			selected = append(selected, op)
		}
	}

	return ClassModel{
		PackageName:  c.PackageName,
		ClassName:    c.ClassName,
		Dependencies: c.Dependencies,
		Operations:   selected,
	}
}

// InjectTargetName is the field name used for the class-under-test
// instance in generated code: the class name with a lowered first rune.
func (c ClassModel) InjectTargetName() string {
	return Decapitalize(c.ClassName)
}

// Decapitalize lowers the first character of an identifier.
func Decapitalize(name string) string {
	if name == "" {
		return name
	}

	return strings.ToLower(name[:1]) + name[1:]
}
