package catalog

import (
	"fmt"
	"strings"
)

// Category is one of the fixed component categories.
type Category string

const (
	CategoryButton       Category = "Button"
	CategoryForm         Category = "Form"
	CategoryLayout       Category = "Layout"
	CategoryNavigation   Category = "Navigation"
	CategoryDisplay      Category = "Display"
	CategoryFeedback     Category = "Feedback"
	CategoryDialog       Category = "Dialog"
	CategoryTable        Category = "Table"
	CategoryInput        Category = "Input"
	CategoryInteractive  Category = "Interactive"
	CategoryExperimental Category = "Experimental"
	CategoryOther        Category = "Other"
)

var allCategories = []Category{
	CategoryButton,
	CategoryForm,
	CategoryLayout,
	CategoryNavigation,
	CategoryDisplay,
	CategoryFeedback,
	CategoryDialog,
	CategoryTable,
	CategoryInput,
	CategoryInteractive,
	CategoryExperimental,
	CategoryOther,
}

// AllCategories returns the closed category set in boundary order.
func AllCategories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// CategoryNames returns AllCategories as plain strings (for enum schemas).
func CategoryNames() []string {
	names := make([]string, len(allCategories))
	for i, c := range allCategories {
		names[i] = string(c)
	}
	return names
}

// Valid reports whether c is a member of the category set.
func (c Category) Valid() bool {
	for _, known := range allCategories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string { return string(c) }

// ParseCategory accepts an exact category name.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}

// ParseCategoryFold is ParseCategory ignoring case.
func ParseCategoryFold(s string) (Category, error) {
	for _, known := range allCategories {
		if strings.EqualFold(s, string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

// ComponentRecord is one entry of the persisted index.
type ComponentRecord struct {
	Name         string   `json:"name"`
	Category     Category `json:"category"`
	Description  *string  `json:"description,omitempty"`
	HasStorybook bool     `json:"hasStorybook"`
	Deprecated   bool     `json:"deprecated"`
}

// DescriptionText returns the description or "" when absent.
func (r ComponentRecord) DescriptionText() string {
	if r.Description == nil {
		return ""
	}
	return *r.Description
}

// ComponentInfo is the query-layer view of a record.
type ComponentInfo struct {
	Name         string   `json:"name"`
	DisplayName  string   `json:"displayName"`
	Category     Category `json:"category"`
	Description  *string  `json:"description,omitempty"`
	HasStorybook bool     `json:"hasStorybook"`
	Deprecated   bool     `json:"deprecated"`
	ExportPath   string   `json:"exportPath"`
}

// ComponentDetail extends ComponentInfo with reserved containers.
// Props, Examples and Dependencies are never populated by the indexer but
// are always present (empty, not nil).
type ComponentDetail struct {
	ComponentInfo
	Props        []Prop    `json:"props"`
	Examples     []Example `json:"examples"`
	Dependencies []string  `json:"dependencies"`
}

// Prop represents a component property.
type Prop struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Default     string `json:"default,omitempty"`
	Description string `json:"description,omitempty"`
}

// Example is a titled code sample.
type Example struct {
	Title string `json:"title"`
	Code  string `json:"code"`
}

// DiscoveryOptions filters DiscoverComponents.
// A nil Categories means no restriction; a non-nil slice restricts to its members.
type DiscoveryOptions struct {
	IncludeExperimental bool       `json:"includeExperimental"`
	IncludeDeprecated   bool       `json:"includeDeprecated"`
	Categories          []Category `json:"categories,omitempty"`
}

// CategoryCount pairs a category with a record count.
type CategoryCount struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string { return &s }
