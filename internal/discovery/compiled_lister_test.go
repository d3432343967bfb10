package discovery

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func newTestCompiledLister(t *testing.T) *CompiledLister {
	logger := zaptest.NewLogger(t)
	return NewCompiledLister(NewScanner(nil, logger), NewClassifier(), logger)
}

func TestCompiledLister_ListFromCompiled(t *testing.T) {
	t.Run("missing directory yields nothing", func(t *testing.T) {
		lister := newTestCompiledLister(t)

		assert.Empty(t, lister.ListFromCompiled(filepath.Join(t.TempDir(), "non-existent"), ListTestsOnly))
		assert.Empty(t, lister.ListFromCompiled(filepath.Join(t.TempDir(), "non-existent"), ListAll))
	})

	t.Run("empty directory yields nothing", func(t *testing.T) {
		lister := newTestCompiledLister(t)

		assert.Empty(t, lister.ListFromCompiled(t.TempDir(), ListTestsOnly))
	})

	t.Run("excludes inner classes", func(t *testing.T) {
		classesDir := t.TempDir()
		writeFile(t, classesDir, "com/example/Outer.class", "")
		writeFile(t, classesDir, "com/example/Outer$Inner.class", "")
		writeFile(t, classesDir, "com/example/Outer$1.class", "")
		lister := newTestCompiledLister(t)

		assert.Equal(t, []string{"com.example.Outer"}, lister.ListFromCompiled(classesDir, ListAll))
	})

	t.Run("tests only mode applies the name rule", func(t *testing.T) {
		classesDir := t.TempDir()
		writeFile(t, classesDir, "com/example/ActualTest.class", "")
		writeFile(t, classesDir, "com/example/BehaviorSpec.class", "")
		writeFile(t, classesDir, "com/example/ItShould.class", "")
		writeFile(t, classesDir, "com/example/SampleTestData.class", "")
		writeFile(t, classesDir, "com/example/Helper.class", "")
		writeFile(t, classesDir, "com/example/UserTests.class", "")
		lister := newTestCompiledLister(t)

		assert.Equal(t, []string{
			"com.example.ActualTest",
			"com.example.BehaviorSpec",
			"com.example.ItShould",
			"com.example.UserTests",
		}, lister.ListFromCompiled(classesDir, ListTestsOnly))
	})

	t.Run("all mode keeps every top-level class", func(t *testing.T) {
		classesDir := t.TempDir()
		writeFile(t, classesDir, "com/example/Helper.class", "")
		writeFile(t, classesDir, "com/example/deep/nested/DeepTest.class", "")
		writeFile(t, classesDir, "SimpleTest.class", "")
		writeFile(t, classesDir, "META-INF/main.kotlin_module", "")
		lister := newTestCompiledLister(t)

		assert.ElementsMatch(t, []string{
			"com.example.Helper",
			"com.example.deep.nested.DeepTest",
			"SimpleTest",
		}, lister.ListFromCompiled(classesDir, ListAll))
	})
}
