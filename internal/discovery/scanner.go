package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Scanner walks a directory tree for files with a given extension
type Scanner struct {
	skipDirs map[string]bool
	logger   *zap.Logger
}

// NewScanner creates a new Scanner with the given directories to skip
func NewScanner(skipDirs []string, logger *zap.Logger) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{skipDirs: skipMap, logger: logger}
}

// Scan finds all files under root whose extension is ext, in lexical walk order.
// A root that does not exist yields no files and no error. Unreadable entries
// below the root are logged and skipped; only a failure on the root itself is returned.
func (s *Scanner) Scan(root, ext string) ([]string, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", root)
	}

	suffix := "." + strings.TrimPrefix(ext, ".")
	var files []string

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			s.logger.Debug("skipping unreadable entry", zap.String("path", path), zap.Error(err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			if s.skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		if filepath.Ext(d.Name()) == suffix {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	return files, nil
}
