// Package scanner walks a component library source tree and builds the
// component index: which directories are components, what they are called,
// how they are categorized and what their documentation says.
package scanner

import "github.com/gnana997/uicatalog/pkg/catalog"

// ScanConfig configures directory discovery and per-directory heuristics.
type ScanConfig struct {
	// Exclude glob patterns, matched against slash-separated paths relative
	// to the root. A matching directory is skipped with its whole subtree.
	Exclude []string
	// SkipDirs are support directory base names that are never components.
	SkipDirs []string
	// StorySuffix marks interactive example files.
	StorySuffix string
	// DeprecationMarker is searched case-insensitively in descriptions.
	DeprecationMarker string
}

// DefaultScanConfig returns the default configuration.
func DefaultScanConfig() ScanConfig {
	return ScanConfig{
		Exclude: []string{
			"**/node_modules/**",
			"**/*.test.*",
			"**/*.stories.*",
			"**/stories/**",
		},
		SkipDirs: []string{
			"models",
			"multilingualization",
			"stories",
			"types",
			"utils",
			"helpers",
		},
		StorySuffix:       ".stories.tsx",
		DeprecationMarker: "@deprecated",
	}
}

// BuildStats holds metrics about an index build.
type BuildStats struct {
	DirectoriesScanned int                      `json:"directoriesScanned"`
	ComponentsFound    int                      `json:"componentsFound"`
	DuplicatesSkipped  int                      `json:"duplicatesSkipped"`
	Described          int                      `json:"described"`
	Deprecated         int                      `json:"deprecated"`
	WithStorybook      int                      `json:"withStorybook"`
	ByCategory         map[catalog.Category]int `json:"byCategory"`
	DiscoveryTimeMs    int64                    `json:"discoveryTimeMs"`
	TotalTimeMs        int64                    `json:"totalTimeMs"`
}

// BuildResult holds the sorted records and build metrics.
type BuildResult struct {
	Records []catalog.ComponentRecord
	Stats   BuildStats
	// Duplicates lists directories skipped because an earlier directory
	// already claimed the same component name.
	Duplicates []Duplicate
}

// Duplicate records a skipped directory and the one that won.
type Duplicate struct {
	Name    string
	Kept    string
	Skipped string
}
