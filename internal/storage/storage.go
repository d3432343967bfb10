package storage

import "testconv/internal/domain"

// Storage persists and loads the last report of each check and module (e.g. for the browse viewer).
type Storage interface {
	Save(report *domain.CheckReport) error
	Load(check, module string) (*domain.CheckReport, error)
}

// JSONStorage stores one JSON file per check and module under a report directory.
type JSONStorage struct {
	dir string
}

// NewJSONStorage returns a Storage that reads/writes reports under dir.
func NewJSONStorage(dir string) *JSONStorage {
	return &JSONStorage{dir: dir}
}
