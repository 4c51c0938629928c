package parser

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	ts "github.com/tree-sitter/go-tree-sitter"
	ts_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// ParserManager owns one tree-sitter parser per dialect, created lazily.
//
// Memory Management:
// - ParserManager owns parser instances and must be closed via Close()
// - Callers own Tree instances and must call tree.Close() after use
//
// Parsing is serialized with a mutex; indexing reads one file at a time.
//
// Example:
//
//	manager := NewParserManager(logger)
//	defer manager.Close()
//
//	doc, ok, err := manager.FirstDocComment(src, DialectTSX)
type ParserManager struct {
	mutex   sync.Mutex
	parsers map[Dialect]*ts.Parser
	logger  *slog.Logger

	stats struct {
		parsersCreated int
		parsesCalled   int
	}
}

// NewParserManager creates a new ParserManager instance.
func NewParserManager(logger *slog.Logger) *ParserManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &ParserManager{
		parsers: make(map[Dialect]*ts.Parser),
		logger:  logger,
	}
}

// Parse parses source with the grammar for dialect.
//
// Returns a Tree that MUST be closed by the caller via tree.Close().
// Trees containing syntax errors are still returned; partial trees are
// enough to locate comments.
func (pm *ParserManager) Parse(source []byte, dialect Dialect) (*ts.Tree, error) {
	pm.mutex.Lock()
	defer pm.mutex.Unlock()

	if pm.parsers == nil {
		return nil, fmt.Errorf("parser manager is closed")
	}

	p, err := pm.parserFor(dialect)
	if err != nil {
		return nil, err
	}
	pm.stats.parsesCalled++

	tree := p.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("parser.Parse returned nil tree")
	}
	if tree.RootNode().HasError() {
		pm.logger.Debug("parse tree contains errors", "dialect", dialect.String())
	}
	return tree, nil
}

// ParseFile detects the dialect from filePath and parses source.
func (pm *ParserManager) ParseFile(source []byte, filePath string) (*ts.Tree, error) {
	dialect := DetectDialect(filePath)
	if dialect == DialectUnknown {
		return nil, fmt.Errorf("unsupported file extension: %s", filePath)
	}
	return pm.Parse(source, dialect)
}

// FirstDocComment returns the text of the first "/** ... */" comment in
// document order, delimiters included.
func (pm *ParserManager) FirstDocComment(source []byte, dialect Dialect) (string, bool, error) {
	tree, err := pm.Parse(source, dialect)
	if err != nil {
		return "", false, err
	}
	defer tree.Close()

	root := tree.RootNode()
	cursor := root.Walk()
	defer cursor.Close()

	// Pre-order walk; comments are extras and may sit at any depth.
	for {
		node := cursor.Node()
		if node.Kind() == "comment" {
			if text := node.Utf8Text(source); IsDocComment(text) {
				return text, true, nil
			}
		}
		if cursor.GotoFirstChild() {
			continue
		}
		for !cursor.GotoNextSibling() {
			if !cursor.GotoParent() {
				return "", false, nil
			}
		}
	}
}

// IsDocComment reports whether a block comment is a documentation comment.
func IsDocComment(text string) bool {
	return strings.HasPrefix(text, "/**") && text != "/**/" && strings.HasSuffix(text, "*/")
}

// Stats returns the number of parsers created and parses run.
func (pm *ParserManager) Stats() (parsersCreated, parsesCalled int) {
	pm.mutex.Lock()
	defer pm.mutex.Unlock()
	return pm.stats.parsersCreated, pm.stats.parsesCalled
}

// Close releases all parsers. After Close the manager cannot be used.
func (pm *ParserManager) Close() error {
	pm.mutex.Lock()
	defer pm.mutex.Unlock()

	pm.logger.Debug("closing ParserManager",
		"parsers_created", pm.stats.parsersCreated,
		"parses_called", pm.stats.parsesCalled)

	for _, p := range pm.parsers {
		p.Close()
	}
	pm.parsers = nil
	return nil
}

// parserFor must be called with the mutex held.
func (pm *ParserManager) parserFor(dialect Dialect) (*ts.Parser, error) {
	if p, ok := pm.parsers[dialect]; ok {
		return p, nil
	}

	var lang *ts.Language
	switch dialect {
	case DialectTypeScript:
		lang = ts.NewLanguage(ts_typescript.LanguageTypescript())
	case DialectTSX:
		lang = ts.NewLanguage(ts_typescript.LanguageTSX())
	default:
		return nil, fmt.Errorf("cannot parse unknown dialect")
	}

	p := ts.NewParser()
	if err := p.SetLanguage(lang); err != nil {
		p.Close()
		return nil, fmt.Errorf("failed to set %s language: %w", dialect, err)
	}
	pm.parsers[dialect] = p
	pm.stats.parsersCreated++
	return p, nil
}
