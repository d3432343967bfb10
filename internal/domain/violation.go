package domain

import "fmt"

// ViolationKind identifies which naming rule a file broke
type ViolationKind int

const (
	// MultipleTestClasses means a file declares more than one test class
	MultipleTestClasses ViolationKind = iota + 1
	// FileClassNameMismatch means a test class is named differently from its file
	FileClassNameMismatch
	// InvalidTestClassSuffix means a test class does not end in Test or Spec
	InvalidTestClassSuffix
)

var violationKindNames = map[ViolationKind]string{
	MultipleTestClasses:    "MULTIPLE_TEST_CLASSES",
	FileClassNameMismatch:  "FILE_CLASS_NAME_MISMATCH",
	InvalidTestClassSuffix: "INVALID_TEST_CLASS_SUFFIX",
}

// ViolationKinds lists every kind in rule order
var ViolationKinds = []ViolationKind{MultipleTestClasses, FileClassNameMismatch, InvalidTestClassSuffix}

func (k ViolationKind) String() string {
	if name, ok := violationKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ViolationKind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler
func (k ViolationKind) MarshalText() ([]byte, error) {
	if _, ok := violationKindNames[k]; !ok {
		return nil, fmt.Errorf("unknown violation kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *ViolationKind) UnmarshalText(text []byte) error {
	for kind, name := range violationKindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown violation kind %q", string(text))
}

// NamingViolation is a single broken naming rule in a test source file
type NamingViolation struct {
	FilePath string        `json:"file_path"`
	Kind     ViolationKind `json:"kind"`
	Message  string        `json:"message"`
}
