package scanner

import (
	"log/slog"
	"regexp"
	"strings"

	"golang.org/x/text/cases"

	"github.com/gnana997/uicatalog/pkg/parser"
	"github.com/gnana997/uicatalog/pkg/util"
)

var (
	// docBlockPattern locates a doc block when the source cannot be parsed.
	docBlockPattern = regexp.MustCompile(`(?s)/\*\*.*?\*/`)
	// docLinePattern captures the first prose line after a leading '*'.
	docLinePattern = regexp.MustCompile(`(?s)\*\s+(.+?)(?:\n|\*/)`)
)

// FirstDocLine extracts the first line of prose from a doc comment block:
// the text after the first '*' followed by whitespace, up to the next
// newline or the closing delimiter, with every '*' removed and surrounding
// whitespace trimmed. Returns "" when there is no such line.
func FirstDocLine(block string) string {
	m := docLinePattern.FindStringSubmatch(block)
	if m == nil {
		return ""
	}
	line := strings.TrimSpace(m[1])
	return strings.TrimSpace(strings.ReplaceAll(line, "*", ""))
}

// IsDeprecated reports whether description contains marker, compared with
// Unicode case folding.
func IsDeprecated(description, marker string) bool {
	if description == "" || marker == "" {
		return false
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(description), fold.String(marker))
}

// DescriptionExtractor reads component descriptions from source files.
type DescriptionExtractor struct {
	pm    *parser.ParserManager
	files *util.FileCache
	log   *slog.Logger
}

// NewDescriptionExtractor creates an extractor. A nil pm falls back to
// pattern matching on the raw source.
func NewDescriptionExtractor(pm *parser.ParserManager, files *util.FileCache, logger *slog.Logger) *DescriptionExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	if files == nil {
		files = util.NewFileCache(util.DefaultMaxCachedFiles, logger)
	}
	return &DescriptionExtractor{pm: pm, files: files, log: logger}
}

// Describe returns the description for a component directory.
//
// Candidates are tried in DescriptionCandidates order. Missing or unreadable
// files and files without a doc block are skipped silently. The first file
// that has a doc block decides: its first prose line is the description, and
// an empty line means no description at all.
func (e *DescriptionExtractor) Describe(dir string) (string, bool) {
	for _, path := range DescriptionCandidates(dir) {
		src, err := e.files.Read(path)
		if err != nil {
			continue
		}
		block, ok := e.firstDocBlock(src, path)
		if !ok {
			continue
		}
		desc := FirstDocLine(block)
		return desc, desc != ""
	}
	return "", false
}

func (e *DescriptionExtractor) firstDocBlock(src []byte, path string) (string, bool) {
	if e.pm != nil {
		block, ok, err := e.pm.FirstDocComment(src, parser.DetectDialect(path))
		if err == nil {
			return block, ok
		}
		e.log.Debug("parse failed, scanning raw source", "file", path, "error", err)
	}

	loc := docBlockPattern.FindIndex(src)
	if loc == nil {
		return "", false
	}
	return string(src[loc[0]:loc[1]]), true
}
