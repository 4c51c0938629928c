package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Index is the loaded, immutable component index.
// Records keep their persisted (category, name) order.
type Index struct {
	records []ComponentRecord
	byName  map[string]int
}

// Validate checks records for internal consistency.
// Returns a slice of validation errors (empty slice if valid).
func Validate(records []ComponentRecord) []error {
	var errs []error
	seen := make(map[string]bool, len(records))

	for i, r := range records {
		if r.Name == "" {
			errs = append(errs, fmt.Errorf("records[%d]: name is required", i))
			continue
		}
		if seen[r.Name] {
			errs = append(errs, fmt.Errorf("component %q: duplicate component name", r.Name))
			continue
		}
		seen[r.Name] = true

		if !r.Category.Valid() {
			errs = append(errs, fmt.Errorf("component %q: unknown category %q", r.Name, r.Category))
		}
	}

	return errs
}

// NewIndex validates records and builds the lookup table.
// The slice is copied; later changes by the caller are not observed.
func NewIndex(records []ComponentRecord) (*Index, error) {
	if errs := Validate(records); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidIndex, errors.Join(errs...))
	}

	idx := &Index{
		records: make([]ComponentRecord, len(records)),
		byName:  make(map[string]int, len(records)),
	}
	for i, r := range records {
		idx.records[i] = r.clone()
		idx.byName[r.Name] = i
	}
	return idx, nil
}

// LoadIndexFile reads, parses and validates a persisted index.
func LoadIndexFile(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read index file: %w", err)
	}
	return LoadIndex(data)
}

// LoadIndex parses and validates a persisted index from raw JSON bytes.
func LoadIndex(data []byte) (*Index, error) {
	var records []ComponentRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: failed to parse index JSON: %w", ErrInvalidIndex, err)
	}
	if records == nil {
		return nil, fmt.Errorf("%w: index must be a JSON array", ErrInvalidIndex)
	}
	return NewIndex(records)
}

// Len returns the number of records.
func (x *Index) Len() int { return len(x.records) }

// Records returns a copy of all records in persisted order.
func (x *Index) Records() []ComponentRecord {
	out := make([]ComponentRecord, len(x.records))
	for i, r := range x.records {
		out[i] = r.clone()
	}
	return out
}

// Lookup finds a record by exact, case-sensitive name.
func (x *Index) Lookup(name string) (ComponentRecord, bool) {
	i, ok := x.byName[name]
	if !ok {
		return ComponentRecord{}, false
	}
	return x.records[i].clone(), true
}

// each calls fn for every record in persisted order without copying the slice.
func (x *Index) each(fn func(r *ComponentRecord)) {
	for i := range x.records {
		fn(&x.records[i])
	}
}

func (r ComponentRecord) clone() ComponentRecord {
	if r.Description != nil {
		r.Description = StringPtr(*r.Description)
	}
	return r
}
