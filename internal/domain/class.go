package domain

// SourceFile is a source file read once per scan
type SourceFile struct {
	Path    string // Path to the file on disk
	Content string // Raw text content
}

// ClassInfo describes a class declaration found in a source file
type ClassInfo struct {
	ClassName    string // Simple class name, never empty
	IsDataClass  bool   // Declared with the data modifier
	InheritsFrom string // Raw inheritance clause, empty if none
}

// QualifiedName joins a package and a simple class name
func QualifiedName(pkg, className string) string {
	if pkg == "" {
		return className
	}
	return pkg + "." + className
}

// SimpleName returns the last dotted segment of a qualified name
func SimpleName(qualified string) string {
	for i := len(qualified) - 1; i >= 0; i-- {
		if qualified[i] == '.' {
			return qualified[i+1:]
		}
	}
	return qualified
}
