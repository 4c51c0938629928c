package classify

import (
	"fmt"
	"strings"

	"github.com/gnana997/uicatalog/pkg/catalog"
)

// Stage names reported in a Decision.
const (
	StageExact    = "exact"
	StagePrefix   = "prefix"
	StageMarker   = "marker"
	StageKeyword  = "keyword"
	StageFallback = "fallback"
)

// Decision records which stage classified a name and on what.
type Decision struct {
	Category catalog.Category `json:"category"`
	Stage    string           `json:"stage"`
	Matched  string           `json:"matched,omitempty"` // rule key or keyword term
}

// Stage is one link of the classification chain. Stages are immutable.
type Stage interface {
	Name() string
	Match(name string) (Decision, bool)
}

// ExactStage matches names equal to a rule key.
type ExactStage struct {
	table *RuleTable
}

func NewExactStage(table *RuleTable) ExactStage { return ExactStage{table: table} }

func (ExactStage) Name() string { return StageExact }

func (s ExactStage) Match(name string) (Decision, bool) {
	c, ok := s.table.exact[name]
	if !ok {
		return Decision{}, false
	}
	return Decision{Category: c, Stage: StageExact, Matched: name}, true
}

// PrefixStage matches the first rule, in declaration order, whose key
// prefixes the name. It is neither longest- nor shortest-match.
type PrefixStage struct {
	table *RuleTable
}

func NewPrefixStage(table *RuleTable) PrefixStage { return PrefixStage{table: table} }

func (PrefixStage) Name() string { return StagePrefix }

func (s PrefixStage) Match(name string) (Decision, bool) {
	for _, r := range s.table.rules {
		if strings.HasPrefix(name, r.Key) {
			return Decision{Category: r.Category, Stage: StagePrefix, Matched: r.Key}, true
		}
	}
	return Decision{}, false
}

// MarkerStage matches names containing a marker, ignoring case.
type MarkerStage struct {
	marker   string
	category catalog.Category
}

// NewMarkerStage returns a stage mapping names containing marker to category.
func NewMarkerStage(marker string, category catalog.Category) MarkerStage {
	return MarkerStage{marker: strings.ToLower(marker), category: category}
}

func (MarkerStage) Name() string { return StageMarker }

func (s MarkerStage) Match(name string) (Decision, bool) {
	if s.marker == "" || !strings.Contains(strings.ToLower(name), s.marker) {
		return Decision{}, false
	}
	return Decision{Category: s.category, Stage: StageMarker, Matched: s.marker}, true
}

// KeywordStage tests keyword groups in order; the first group with any hit wins.
type KeywordStage struct {
	groups []KeywordGroup
}

// NewKeywordStage lower-cases every term and keeps group order.
func NewKeywordStage(groups []KeywordGroup) KeywordStage {
	norm := make([]KeywordGroup, len(groups))
	for i, g := range groups {
		norm[i] = KeywordGroup{
			Category: g.Category,
			Contains: lowerAll(g.Contains),
			Suffixes: lowerAll(g.Suffixes),
		}
	}
	return KeywordStage{groups: norm}
}

func (KeywordStage) Name() string { return StageKeyword }

func (s KeywordStage) Match(name string) (Decision, bool) {
	lower := strings.ToLower(name)
	for _, g := range s.groups {
		for _, term := range g.Contains {
			if strings.Contains(lower, term) {
				return Decision{Category: g.Category, Stage: StageKeyword, Matched: term}, true
			}
		}
		for _, term := range g.Suffixes {
			if strings.HasSuffix(lower, term) {
				return Decision{Category: g.Category, Stage: StageKeyword, Matched: "*" + term}, true
			}
		}
	}
	return Decision{}, false
}

// FallbackStage always matches.
type FallbackStage struct {
	category catalog.Category
}

func NewFallbackStage(category catalog.Category) FallbackStage {
	return FallbackStage{category: category}
}

func (FallbackStage) Name() string { return StageFallback }

func (s FallbackStage) Match(string) (Decision, bool) {
	return Decision{Category: s.category, Stage: StageFallback}, true
}

// Classifier runs stages in order.
type Classifier struct {
	stages []Stage
}

// New builds a Classifier from explicit stages. The last stage must always
// match; otherwise Classify falls back to Other.
func New(stages ...Stage) *Classifier {
	return &Classifier{stages: append([]Stage(nil), stages...)}
}

// NewDefault builds the standard five-stage chain over DefaultRules.
func NewDefault() *Classifier {
	c, err := NewFromRules(DefaultRules(), DefaultKeywordGroups())
	if err != nil {
		panic(fmt.Sprintf("classify: default rules are invalid: %v", err))
	}
	return c
}

// NewFromRules builds the standard five-stage chain over custom tables.
func NewFromRules(rules []Rule, groups []KeywordGroup) (*Classifier, error) {
	table, err := NewRuleTable(rules)
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		if !g.Category.Valid() {
			return nil, fmt.Errorf("keyword group: %w: %q", catalog.ErrInvalidCategory, g.Category)
		}
	}
	return New(
		NewExactStage(table),
		NewPrefixStage(table),
		NewMarkerStage("experimental", catalog.CategoryExperimental),
		NewKeywordStage(groups),
		NewFallbackStage(catalog.CategoryOther),
	), nil
}

// Classify returns exactly one category for name.
func (c *Classifier) Classify(name string) catalog.Category {
	return c.Explain(name).Category
}

// Explain returns the decision of the first matching stage.
func (c *Classifier) Explain(name string) Decision {
	for _, s := range c.stages {
		if d, ok := s.Match(name); ok {
			return d
		}
	}
	return Decision{Category: catalog.CategoryOther, Stage: StageFallback}
}

// Stages returns the stage names in evaluation order.
func (c *Classifier) Stages() []string {
	names := make([]string, len(c.stages))
	for i, s := range c.stages {
		names[i] = s.Name()
	}
	return names
}

func lowerAll(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if t != "" {
			out = append(out, strings.ToLower(t))
		}
	}
	return out
}
