package scanner

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gnana997/uicatalog/pkg/catalog"
	"github.com/gnana997/uicatalog/pkg/classify"
	"github.com/gnana997/uicatalog/pkg/parser"
	"github.com/gnana997/uicatalog/pkg/util"
)

// Builder orchestrates an index build: discovery, detection, classification
// and description extraction, one directory at a time.
type Builder struct {
	cfg        ScanConfig
	classifier *classify.Classifier
	pm         *parser.ParserManager
	log        *slog.Logger
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithScanConfig replaces DefaultScanConfig.
func WithScanConfig(cfg ScanConfig) BuilderOption {
	return func(b *Builder) { b.cfg = cfg }
}

// WithClassifier replaces the default classifier.
func WithClassifier(c *classify.Classifier) BuilderOption {
	return func(b *Builder) {
		if c != nil {
			b.classifier = c
		}
	}
}

// NewBuilder creates a builder with all required dependencies.
// The builder owns a parser manager and must be closed.
func NewBuilder(logger *slog.Logger, opts ...BuilderOption) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	b := &Builder{
		cfg:        DefaultScanConfig(),
		classifier: classify.NewDefault(),
		pm:         parser.NewParserManager(logger),
		log:        logger,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Close releases parser resources.
func (b *Builder) Close() error {
	return b.pm.Close()
}

// Build scans rootDir and returns records sorted by (category, name).
// It fails only when rootDir itself cannot be enumerated; per-directory
// read failures degrade to absent data.
func (b *Builder) Build(rootDir string) (*BuildResult, error) {
	totalStart := time.Now()
	stats := BuildStats{ByCategory: make(map[catalog.Category]int)}

	discoveryStart := time.Now()
	dirs, err := DiscoverDirectories(rootDir, b.cfg)
	if err != nil {
		return nil, fmt.Errorf("discovery failed: %w", err)
	}
	stats.DirectoriesScanned = len(dirs)
	stats.DiscoveryTimeMs = time.Since(discoveryStart).Milliseconds()

	b.log.Info("discovery complete", "root", rootDir, "directories", len(dirs), "ms", stats.DiscoveryTimeMs)

	files := util.NewFileCache(util.DefaultMaxCachedFiles, b.log)
	defer func() {
		if err := files.Close(); err != nil {
			b.log.Warn("failed to release source files", "error", err)
		}
	}()
	describer := NewDescriptionExtractor(b.pm, files, b.log)

	var (
		records    []catalog.ComponentRecord
		duplicates []Duplicate
		seen       = make(map[string]string)
	)

	for _, dir := range dirs {
		if !IsComponentDirectory(dir, b.cfg) {
			continue
		}

		name := filepath.Base(dir)
		if kept, dup := seen[name]; dup {
			duplicates = append(duplicates, Duplicate{Name: name, Kept: kept, Skipped: dir})
			b.log.Warn("duplicate component name, skipping", "name", name, "kept", kept, "skipped", dir)
			continue
		}
		seen[name] = dir

		record := b.buildRecord(dir, name, describer)
		records = append(records, record)

		b.log.Info("component", "name", record.Name, "category", record.Category)
	}

	catalog.SortRecords(records)

	for _, r := range records {
		stats.ByCategory[r.Category]++
		if r.Description != nil {
			stats.Described++
		}
		if r.Deprecated {
			stats.Deprecated++
		}
		if r.HasStorybook {
			stats.WithStorybook++
		}
	}
	stats.ComponentsFound = len(records)
	stats.DuplicatesSkipped = len(duplicates)
	stats.TotalTimeMs = time.Since(totalStart).Milliseconds()

	b.logBreakdown(stats)

	if records == nil {
		records = []catalog.ComponentRecord{}
	}
	return &BuildResult{Records: records, Stats: stats, Duplicates: duplicates}, nil
}

func (b *Builder) buildRecord(dir, name string, describer *DescriptionExtractor) catalog.ComponentRecord {
	record := catalog.ComponentRecord{
		Name:         name,
		Category:     b.classifier.Classify(name),
		HasStorybook: HasStorybook(dir, b.cfg),
	}
	if desc, ok := describer.Describe(dir); ok {
		record.Description = catalog.StringPtr(desc)
		record.Deprecated = IsDeprecated(desc, b.cfg.DeprecationMarker)
	}
	return record
}

func (b *Builder) logBreakdown(stats BuildStats) {
	b.log.Info("build complete",
		"components", stats.ComponentsFound,
		"described", stats.Described,
		"deprecated", stats.Deprecated,
		"storybook", stats.WithStorybook,
		"duplicates", stats.DuplicatesSkipped,
		"ms", stats.TotalTimeMs)

	for _, c := range catalog.AllCategories() {
		if n := stats.ByCategory[c]; n > 0 {
			b.log.Info("category breakdown", "category", c, "count", n)
		}
	}
}
