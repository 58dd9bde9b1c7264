package model

// DeclarationKind categorizes a top-level Java type declaration.
type DeclarationKind string

const (
	// KindClass is a concrete (or abstract) class declaration.
	KindClass DeclarationKind = "class"
	// KindInterface is an interface declaration.
	KindInterface DeclarationKind = "interface"
	// KindAnnotation is an annotation type declaration.
	KindAnnotation DeclarationKind = "annotation"
	// KindEnum is an enum declaration.
	KindEnum DeclarationKind = "enum"
	// KindRecord is a record declaration.
	KindRecord DeclarationKind = "record"
)

// FieldDeclaration is one field of a parsed class, annotations resolved
// to qualified names where the import table allows it.
type FieldDeclaration struct {
	TypeName    string
	Name        string
	Annotations []string // qualified where resolvable, simple otherwise
}

// ParameterDeclaration is one formal parameter of a method or constructor.
type ParameterDeclaration struct {
	TypeName string
	Name     string
}

// ConstructorDeclaration is one declared constructor.
type ConstructorDeclaration struct {
	Parameters []ParameterDeclaration
}

// MethodDeclaration is one declared method, with enough modifier
// information to decide testability.
type MethodDeclaration struct {
	Name       string
	ReturnType string // "void" when the method declares no return type
	IsPublic   bool
	IsStatic   bool
	Parameters []ParameterDeclaration
	Throws     []string // declared throw types, source order
}

// ClassDeclaration is the read-only, already-parsed surface of one
// top-level type. It is produced by the Java file adapter and consumed
// by the structural analyzer; neither side mutates it after parsing.
type ClassDeclaration struct {
	PackageName  string
	Name         string
	Kind         DeclarationKind
	Fields       []FieldDeclaration
	Constructors []ConstructorDeclaration
	Methods      []MethodDeclaration
	SourcePath   Path
}

// IsConcreteClass reports whether the declaration can host generated tests.
func (d ClassDeclaration) IsConcreteClass() bool {
	return d.Name != "" && d.Kind == KindClass
}
