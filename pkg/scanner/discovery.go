package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DiscoverDirectories walks rootDir and returns every directory not removed
// by cfg.Exclude, the root included. Hidden directories (leading ".") below
// the root are skipped with their subtrees. Paths are absolute and sorted.
//
// Unreadable subtrees are skipped. A missing or unreadable root is an error.
func DiscoverDirectories(rootDir string, cfg ScanConfig) ([]string, error) {
	for _, pattern := range cfg.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern: %s", pattern)
		}
	}

	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root path: %w", err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("cannot access root %s: %w", rootDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory", rootDir)
	}

	var dirs []string

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == absRoot {
				return fmt.Errorf("cannot enumerate root %s: %w", rootDir, err)
			}
			return nil // Continue walking on errors.
		}
		if !d.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(absRoot, path)
		if err != nil {
			relPath = path
		}
		relPath = filepath.ToSlash(relPath)

		if path != absRoot && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir // hidden directories are never walked
		}
		if excluded(relPath, cfg.Exclude) {
			return filepath.SkipDir
		}

		dirs = append(dirs, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(dirs)
	return dirs, nil
}

func excluded(relPath string, patterns []string) bool {
	if relPath == "." {
		return false
	}
	for _, pattern := range patterns {
		if matched, _ := doublestar.Match(pattern, relPath); matched {
			return true
		}
	}
	return false
}
