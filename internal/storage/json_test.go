package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"testconv/internal/domain"
)

func TestJSONStorage_SaveAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".testconv")
	s := NewJSONStorage(dir)

	report := &domain.CheckReport{
		ID:     "b3c1a7d2-0000-4000-8000-000000000001",
		Check:  domain.CheckNaming,
		Module: "app",
		Passed: false,
		Violations: []domain.NamingViolation{
			{FilePath: "/p/WrongFileName.kt", Kind: domain.FileClassNameMismatch, Message: "Test class name 'UserTest' does not match file name 'WrongFileName'"},
		},
		Summary: "1 test file naming convention violations found.",
	}
	require.NoError(t, s.Save(report))

	_, err := os.Stat(filepath.Join(dir, "naming-app-report.json"))
	require.NoError(t, err)

	loaded, err := s.Load(domain.CheckNaming, "app")
	require.NoError(t, err)
	assert.Equal(t, report, loaded)

	raw, err := os.ReadFile(filepath.Join(dir, "naming-app-report.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"kind": "FILE_CLASS_NAME_MISMATCH"`)
}

func TestJSONStorage_SaveReplacesPreviousReport(t *testing.T) {
	s := NewJSONStorage(t.TempDir())

	require.NoError(t, s.Save(&domain.CheckReport{ID: "1", Check: domain.CheckInclusion, Module: "app", Excluded: []string{"a.ServiceSpec"}}))
	require.NoError(t, s.Save(&domain.CheckReport{ID: "2", Check: domain.CheckInclusion, Module: "app", Passed: true}))

	loaded, err := s.Load(domain.CheckInclusion, "app")
	require.NoError(t, err)
	assert.Equal(t, "2", loaded.ID)
	assert.Empty(t, loaded.Excluded)
}

func TestJSONStorage_ModulesKeptApart(t *testing.T) {
	dir := t.TempDir()
	s := NewJSONStorage(dir)

	require.NoError(t, s.Save(&domain.CheckReport{ID: "1", Check: domain.CheckNaming, Module: "app", Summary: "2 test file naming convention violations found."}))
	require.NoError(t, s.Save(&domain.CheckReport{ID: "2", Check: domain.CheckNaming, Module: "lib", Passed: true}))
	require.NoError(t, s.Save(&domain.CheckReport{ID: "3", Check: domain.CheckNaming, Module: "services/api", Passed: true}))

	app, err := s.Load(domain.CheckNaming, "app")
	require.NoError(t, err)
	assert.False(t, app.Passed)
	assert.Equal(t, "app", app.Module)

	lib, err := s.Load(domain.CheckNaming, "lib")
	require.NoError(t, err)
	assert.True(t, lib.Passed)

	assert.FileExists(t, filepath.Join(dir, "naming-services_api-report.json"))
	nested, err := s.Load(domain.CheckNaming, "services/api")
	require.NoError(t, err)
	assert.Equal(t, "3", nested.ID)
}

func TestJSONStorage_LoadMissing(t *testing.T) {
	s := NewJSONStorage(t.TempDir())

	_, err := s.Load(domain.CheckOutput, "app")
	assert.ErrorIs(t, err, ErrNoReport)
}

func TestJSONStorage_LoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "naming-app-report.json"), []byte("{not json"), 0644))

	_, err := NewJSONStorage(dir).Load(domain.CheckNaming, "app")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoReport)
}

func TestJSONStorage_SaveWithoutCheck(t *testing.T) {
	assert.Error(t, NewJSONStorage(t.TempDir()).Save(&domain.CheckReport{}))
}
