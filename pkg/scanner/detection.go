package scanner

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// EntryFileNames returns the file names that make dirName a component
// directory: index.ts, index.tsx, <dirName>.tsx, <dirName>.ts.
func EntryFileNames(dirName string) []string {
	return []string{"index.ts", "index.tsx", dirName + ".tsx", dirName + ".ts"}
}

// DescriptionCandidates returns, in lookup order, the files consulted for a
// component's description.
func DescriptionCandidates(dir string) []string {
	name := filepath.Base(dir)
	return []string{
		filepath.Join(dir, name+".tsx"),
		filepath.Join(dir, "index.tsx"),
		filepath.Join(dir, name+".ts"),
		filepath.Join(dir, "index.ts"),
	}
}

// IsComponentDirectory reports whether dir is a component directory: its
// base name is not a support directory and it directly contains an entry
// file. An unreadable directory is not a component directory.
func IsComponentDirectory(dir string, cfg ScanConfig) bool {
	name := filepath.Base(dir)
	if slices.Contains(cfg.SkipDirs, name) {
		return false
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}

	entryFiles := EntryFileNames(name)
	for _, e := range entries {
		if slices.Contains(entryFiles, e.Name()) {
			return true
		}
	}
	return false
}

// HasStorybook reports whether dir directly contains a file ending in
// cfg.StorySuffix. Read errors yield false.
func HasStorybook(dir string, cfg ScanConfig) bool {
	if cfg.StorySuffix == "" {
		return false
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), cfg.StorySuffix) {
			return true
		}
	}
	return false
}
