package util

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/edsrzf/mmap-go"
)

// FileCache reads source files through read-only memory maps.
//
// Mapped bytes stay valid until Close. Files that cannot be mapped are read
// with os.ReadFile instead. One cache is meant to live for one index build.
type FileCache struct {
	maxFiles int
	logger   *slog.Logger

	mu    sync.Mutex
	files map[string]*mappedFile
	stats FileCacheStats
}

type mappedFile struct {
	data   []byte
	mapped mmap.MMap // nil for empty files and read fallbacks
}

// FileCacheStats tracks cache usage.
type FileCacheStats struct {
	FilesLoaded  int64
	CacheHits    int64
	MmapFailures int64
	BytesLoaded  int64
}

// DefaultMaxCachedFiles bounds the mappings held by a FileCache.
const DefaultMaxCachedFiles = 10000

// NewFileCache creates a FileCache. maxFiles <= 0 means unlimited.
func NewFileCache(maxFiles int, logger *slog.Logger) *FileCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileCache{
		maxFiles: maxFiles,
		logger:   logger,
		files:    make(map[string]*mappedFile),
	}
}

// Read returns the contents of path, loading it on first access.
// The returned slice must not be modified or used after Close.
func (fc *FileCache) Read(path string) ([]byte, error) {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	if fc.files == nil {
		return nil, errors.New("file cache is closed")
	}
	if mf, ok := fc.files[path]; ok {
		fc.stats.CacheHits++
		return mf.data, nil
	}
	if fc.maxFiles > 0 && len(fc.files) >= fc.maxFiles {
		return nil, fmt.Errorf("file cache limit reached: %d files", fc.maxFiles)
	}

	mf, err := fc.load(path)
	if err != nil {
		return nil, err
	}
	fc.files[path] = mf
	fc.stats.FilesLoaded++
	fc.stats.BytesLoaded += int64(len(mf.data))
	return mf.data, nil
}

// load must be called with mu held.
func (fc *FileCache) load(path string) (*mappedFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", path, err)
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to stat file %q: %w", path, err)
	}
	if !stat.Mode().IsRegular() {
		file.Close()
		return nil, fmt.Errorf("not a regular file: %q", path)
	}

	// Zero-length files cannot be mapped.
	if stat.Size() == 0 {
		file.Close()
		return &mappedFile{data: []byte{}}, nil
	}

	m, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		fc.logger.Debug("mmap failed, using fallback", "file", path, "error", err)
		fc.stats.MmapFailures++
		file.Close()

		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("mmap failed and fallback failed for %q: %w", path, errors.Join(err, readErr))
		}
		return &mappedFile{data: data}, nil
	}

	// The mapping outlives the descriptor.
	if err := file.Close(); err != nil {
		fc.logger.Debug("close after mmap failed", "file", path, "error", err)
	}
	return &mappedFile{data: m, mapped: m}, nil
}

// Len returns the number of cached files.
func (fc *FileCache) Len() int {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return len(fc.files)
}

// Stats returns current cache counters.
func (fc *FileCache) Stats() FileCacheStats {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.stats
}

// Close unmaps every file.
func (fc *FileCache) Close() error {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	var errs []error
	for path, mf := range fc.files {
		if mf.mapped != nil {
			if err := mf.mapped.Unmap(); err != nil {
				errs = append(errs, fmt.Errorf("unmap %q: %w", path, err))
			}
		}
	}
	fc.files = nil

	fc.logger.Debug("FileCache closed",
		"files_loaded", fc.stats.FilesLoaded,
		"cache_hits", fc.stats.CacheHits,
		"mmap_failures", fc.stats.MmapFailures)

	return errors.Join(errs...)
}
