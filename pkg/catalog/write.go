package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gofrs/flock"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortRecords orders records by category then name, comparing with a
// root-locale collator. The sort is stable; exact collation ties fall back
// to byte order so the result does not depend on input order.
func SortRecords(records []ComponentRecord) {
	// Collators keep internal buffers; one per call.
	col := collate.New(language.Und)
	compare := func(a, b string) int {
		if c := col.CompareString(a, b); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	}

	slices.SortStableFunc(records, func(a, b ComponentRecord) int {
		if c := compare(string(a.Category), string(b.Category)); c != 0 {
			return c
		}
		return compare(a.Name, b.Name)
	})
}

// MarshalRecords encodes records as the persisted index format: a JSON array
// with two-space indentation and a trailing newline. Identical input always
// yields identical bytes.
func MarshalRecords(records []ComponentRecord) ([]byte, error) {
	if records == nil {
		records = []ComponentRecord{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("failed to encode index: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteIndexFile replaces the index at path with records.
// The write holds an exclusive lock on path+".lock" and goes through a
// temporary file renamed over the target, so readers never observe a
// partially written index.
func WriteIndexFile(path string, records []ComponentRecord) error {
	data, err := MarshalRecords(records)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	fileLock := flock.New(path + ".lock")
	if err := fileLock.Lock(); err != nil {
		return fmt.Errorf("acquire index lock: %w", err)
	}
	defer func() { _ = fileLock.Unlock() }()

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write index: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync index: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close index: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("failed to set index permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace index: %w", err)
	}
	return nil
}
