package check

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"testconv/internal/domain"
)

func TestNamingValidator_ValidateFile(t *testing.T) {
	v := newTestValidator()

	t.Run("single matching test class", func(t *testing.T) {
		file := domain.SourceFile{Path: "/src/UserTest.kt", Content: "package a\n\nclass UserTest {\n}\n"}
		assert.Empty(t, v.ValidateFile(file))
	})

	t.Run("data classes next to the test class are allowed", func(t *testing.T) {
		file := domain.SourceFile{Path: "/src/UserTest.kt", Content: `
data class Row(val id: Int)
class UserTest {
    data class Fixture(val name: String)
}`}
		assert.Empty(t, v.ValidateFile(file))
	})

	t.Run("file without test classes", func(t *testing.T) {
		file := domain.SourceFile{Path: "/src/Whatever.kt", Content: "class Helper\nclass Builder\nobject UserTest\ninterface ServiceSpec"}
		assert.Empty(t, v.ValidateFile(file))
	})

	t.Run("class name does not match file name", func(t *testing.T) {
		file := domain.SourceFile{Path: "/src/WrongFileName.kt", Content: "class UserTest { }"}

		violations := v.ValidateFile(file)

		require.Len(t, violations, 1)
		assert.Equal(t, domain.FileClassNameMismatch, violations[0].Kind)
		assert.Equal(t, "/src/WrongFileName.kt", violations[0].FilePath)
		assert.Contains(t, violations[0].Message, "UserTest")
		assert.Contains(t, violations[0].Message, "WrongFileName")
	})

	t.Run("invalid suffix", func(t *testing.T) {
		file := domain.SourceFile{Path: "/src/UserShould.kt", Content: "class UserShould {}"}

		violations := v.ValidateFile(file)

		require.Len(t, violations, 1)
		assert.Equal(t, domain.InvalidTestClassSuffix, violations[0].Kind)
		assert.Equal(t, "Test class 'UserShould' must end with 'Test' or 'Spec'", violations[0].Message)
	})

	t.Run("kotest style base with any name", func(t *testing.T) {
		file := domain.SourceFile{Path: "/src/Calculator.kt", Content: `class Calculator : FunSpec({ test("adds") {} })`}

		violations := v.ValidateFile(file)

		require.Len(t, violations, 1)
		assert.Equal(t, domain.InvalidTestClassSuffix, violations[0].Kind)
	})

	t.Run("rules co-occur", func(t *testing.T) {
		file := domain.SourceFile{Path: "/src/UserTest.kt", Content: "class UserTest {}\nclass OrderTests {}\n"}

		violations := v.ValidateFile(file)

		require.Len(t, violations, 3)
		assert.Equal(t, domain.MultipleTestClasses, violations[0].Kind)
		assert.Equal(t, "File contains 2 test classes: UserTest, OrderTests. Only one test class per file is allowed.", violations[0].Message)
		assert.Equal(t, domain.FileClassNameMismatch, violations[1].Kind)
		assert.Equal(t, "Test class name 'OrderTests' does not match file name 'UserTest'", violations[1].Message)
		assert.Equal(t, domain.InvalidTestClassSuffix, violations[2].Kind)
	})
}

func TestNamingValidator_MultipleTestClassesCount(t *testing.T) {
	v := newTestValidator()

	for n := 2; n <= 5; n++ {
		var b strings.Builder
		for i := 0; i < n; i++ {
			b.WriteString("class Case")
			b.WriteByte(byte('A' + i))
			b.WriteString("Test {}\n")
		}

		violations := v.ValidateFile(domain.SourceFile{Path: "/src/Cases.kt", Content: b.String()})

		multiple := 0
		for _, violation := range violations {
			if violation.Kind == domain.MultipleTestClasses {
				multiple++
				assert.Contains(t, violation.Message, "File contains "+string(rune('0'+n))+" test classes")
			}
		}
		assert.Equal(t, 1, multiple, "n=%d", n)
	}
}

func TestNamingValidator_NonTestNamesNeverViolate(t *testing.T) {
	v := newTestValidator()

	for _, name := range []string{"UserTestData", "TestDataProvider", "Helper", "SpecHelper", "Testing"} {
		file := domain.SourceFile{Path: "/src/Other.kt", Content: "class " + name + " {}"}
		assert.Empty(t, v.ValidateFile(file), name)
	}
}

func TestNamingCheck_Run(t *testing.T) {
	t.Run("passes", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "src/test/kotlin/com/example/UserTest.kt", "package com.example\n\nclass UserTest {}\n")
		writeFile(t, dir, "src/test/kotlin/com/example/Fixtures.kt", "package com.example\n\ndata class Fixture(val id: Int)\n")

		var out bytes.Buffer
		report, err := newTestNamingCheck(t).Run(&out, NamingTarget{
			Module:     "app",
			BaseDir:    dir,
			SourceDirs: []string{filepath.Join(dir, "src/test/kotlin"), filepath.Join(dir, "src/test/java")},
		})

		require.NoError(t, err)
		assert.True(t, report.Passed)
		assert.Equal(t, domain.CheckNaming, report.Check)
		assert.NotEmpty(t, report.ID)
		assert.Contains(t, out.String(), "✅ All test files follow proper naming conventions.")
		assert.Contains(t, out.String(), "Test source files checked: 2")
	})

	t.Run("wrong file name", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "src/test/kotlin/WrongFileName.kt", "class UserTest { }")

		var out bytes.Buffer
		report, err := newTestNamingCheck(t).Run(&out, NamingTarget{
			Module:     "app",
			BaseDir:    dir,
			SourceDirs: []string{filepath.Join(dir, "src/test/kotlin")},
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "1")
		assert.Contains(t, err.Error(), "naming convention violations")

		var violationErr *ViolationError
		require.True(t, errors.As(err, &violationErr))
		assert.Equal(t, domain.CheckNaming, violationErr.Check)
		assert.Equal(t, 1, violationErr.Count)

		require.Len(t, report.Violations, 1)
		assert.Equal(t, domain.FileClassNameMismatch, report.Violations[0].Kind)
		assert.False(t, report.Passed)
		assert.Equal(t, err.Error(), report.Summary)

		assert.Contains(t, out.String(), "📁 "+filepath.Join("src", "test", "kotlin", "WrongFileName.kt")+":")
	})

	t.Run("aggregates every file before failing", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a/First.kt", "class FirstTest")
		writeFile(t, dir, "b/Second.kt", "class SecondTest")
		writeFile(t, dir, "b/ignored.java", "class JavaTest {}")

		_, err := newTestNamingCheck(t).Run(&bytes.Buffer{}, NamingTarget{SourceDirs: []string{dir}})

		require.Error(t, err)
		assert.Equal(t, "2 test file naming convention violations found.", err.Error())
	})

	t.Run("missing source dirs", func(t *testing.T) {
		report, err := newTestNamingCheck(t).Run(&bytes.Buffer{}, NamingTarget{
			SourceDirs: []string{filepath.Join(t.TempDir(), "missing")},
		})

		require.NoError(t, err)
		assert.True(t, report.Passed)
	})
}
