package catalog

import (
	"fmt"
	"slices"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultExportPath is the package identifier used in ComponentInfo and generated imports.
const DefaultExportPath = "smarthr-ui"

// DefaultSearchCacheSize is the number of distinct search queries memoised.
const DefaultSearchCacheSize = 128

// QueryService provides read-only query methods over a loaded index.
// It never mutates or re-sorts the index; every result is in persisted order.
type QueryService struct {
	index       *Index
	exportPath  string
	searchCache *lru.Cache[string, []ComponentInfo]
}

// QueryOption configures a QueryService.
type QueryOption func(*queryConfig)

type queryConfig struct {
	exportPath string
	cacheSize  int
}

// WithExportPath overrides DefaultExportPath.
func WithExportPath(path string) QueryOption {
	return func(c *queryConfig) {
		if path != "" {
			c.exportPath = path
		}
	}
}

// WithSearchCacheSize sets the search result cache size. Zero or less disables caching.
func WithSearchCacheSize(n int) QueryOption {
	return func(c *queryConfig) { c.cacheSize = n }
}

// NewQueryService creates a QueryService over an immutable index.
func NewQueryService(idx *Index, opts ...QueryOption) (*QueryService, error) {
	if idx == nil {
		return nil, fmt.Errorf("query service requires an index")
	}

	cfg := queryConfig{exportPath: DefaultExportPath, cacheSize: DefaultSearchCacheSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	q := &QueryService{index: idx, exportPath: cfg.exportPath}
	if cfg.cacheSize > 0 {
		cache, err := lru.New[string, []ComponentInfo](cfg.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create search cache: %w", err)
		}
		q.searchCache = cache
	}
	return q, nil
}

// LoadAndQuery loads an index from file and returns a ready-to-use QueryService.
func LoadAndQuery(path string, opts ...QueryOption) (*QueryService, error) {
	idx, err := LoadIndexFile(path)
	if err != nil {
		return nil, err
	}
	return NewQueryService(idx, opts...)
}

// LoadAndQueryBytes loads an index from raw JSON bytes and returns a ready-to-use QueryService.
func LoadAndQueryBytes(data []byte, opts ...QueryOption) (*QueryService, error) {
	idx, err := LoadIndex(data)
	if err != nil {
		return nil, err
	}
	return NewQueryService(idx, opts...)
}

// ExportPath returns the configured package identifier.
func (q *QueryService) ExportPath() string { return q.exportPath }

// Index returns the underlying index handle.
func (q *QueryService) Index() *Index { return q.index }

// DiscoverComponents returns the records passing opts, in persisted order.
// The zero DiscoveryOptions excludes Experimental and deprecated records.
// Categories, when non-nil, further restricts the result; it never re-admits
// records the other two filters removed.
func (q *QueryService) DiscoverComponents(opts DiscoveryOptions) []ComponentInfo {
	result := make([]ComponentInfo, 0)
	q.index.each(func(r *ComponentRecord) {
		if !opts.IncludeExperimental && r.Category == CategoryExperimental {
			return
		}
		if !opts.IncludeDeprecated && r.Deprecated {
			return
		}
		if opts.Categories != nil && !slices.Contains(opts.Categories, r.Category) {
			return
		}
		result = append(result, q.info(r))
	})
	return result
}

// GetComponent looks up a component by exact, case-sensitive name over the
// unfiltered index. The bool indicates whether the component was found.
func (q *QueryService) GetComponent(name string) (*ComponentDetail, bool) {
	i, ok := q.index.byName[name]
	if !ok {
		return nil, false
	}
	return &ComponentDetail{
		ComponentInfo: q.info(&q.index.records[i]),
		Props:         []Prop{},
		Examples:      []Example{},
		Dependencies:  []string{},
	}, true
}

// SearchComponents performs a case-insensitive substring search across
// name, category and description. Experimental components are searched;
// deprecated ones never are.
func (q *QueryService) SearchComponents(query string) []ComponentInfo {
	query = strings.ToLower(query)

	if q.searchCache != nil {
		if cached, ok := q.searchCache.Get(query); ok {
			return cloneInfos(cached)
		}
	}

	result := make([]ComponentInfo, 0)
	for _, info := range q.DiscoverComponents(DiscoveryOptions{IncludeExperimental: true}) {
		if matchesQuery(info, query) {
			result = append(result, info)
		}
	}

	if q.searchCache != nil {
		q.searchCache.Add(query, cloneInfos(result))
	}
	return result
}

// cloneInfos copies infos including their descriptions, so cached results
// never share memory with what callers hold.
func cloneInfos(infos []ComponentInfo) []ComponentInfo {
	out := make([]ComponentInfo, len(infos))
	for i, info := range infos {
		if info.Description != nil {
			info.Description = StringPtr(*info.Description)
		}
		out[i] = info
	}
	return out
}

func matchesQuery(info ComponentInfo, query string) bool {
	if strings.Contains(strings.ToLower(info.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(string(info.Category)), query) {
		return true
	}
	return info.Description != nil && strings.Contains(strings.ToLower(*info.Description), query)
}

// GetComponentsByCategory returns the default discovery set restricted to
// category, compared case-insensitively. Because the default set already
// excludes Experimental, asking for "Experimental" yields nothing.
func (q *QueryService) GetComponentsByCategory(category string) []ComponentInfo {
	result := make([]ComponentInfo, 0)
	for _, info := range q.DiscoverComponents(DiscoveryOptions{}) {
		if strings.EqualFold(string(info.Category), category) {
			result = append(result, info)
		}
	}
	return result
}

// CategoryCounts returns, for every category in boundary order, how many
// records DiscoverComponents(opts) yields in it.
func (q *QueryService) CategoryCounts(opts DiscoveryOptions) []CategoryCount {
	counts := make(map[Category]int)
	for _, info := range q.DiscoverComponents(opts) {
		counts[info.Category]++
	}

	result := make([]CategoryCount, 0, len(allCategories))
	for _, c := range allCategories {
		result = append(result, CategoryCount{Category: c, Count: counts[c]})
	}
	return result
}

func (q *QueryService) info(r *ComponentRecord) ComponentInfo {
	var desc *string
	if r.Description != nil {
		desc = StringPtr(*r.Description)
	}
	return ComponentInfo{
		Name:         r.Name,
		DisplayName:  r.Name,
		Category:     r.Category,
		Description:  desc,
		HasStorybook: r.HasStorybook,
		Deprecated:   r.Deprecated,
		ExportPath:   q.exportPath,
	}
}
