package parser

import (
	"path/filepath"
	"strings"
)

// Dialect selects the TypeScript grammar variant.
type Dialect int

const (
	// DialectTypeScript is plain TypeScript (.ts, .mts, .cts)
	DialectTypeScript Dialect = iota
	// DialectTSX is TypeScript with JSX (.tsx)
	DialectTSX
	// DialectUnknown represents an unsupported file
	DialectUnknown
)

// String returns the string representation of the dialect.
func (d Dialect) String() string {
	switch d {
	case DialectTypeScript:
		return "typescript"
	case DialectTSX:
		return "tsx"
	default:
		return "unknown"
	}
}

// DetectDialect detects the grammar variant from a file path.
// Returns DialectUnknown if the file extension is not recognized.
func DetectDialect(filePath string) Dialect {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".ts", ".mts", ".cts":
		return DialectTypeScript
	case ".tsx":
		return DialectTSX
	default:
		return DialectUnknown
	}
}
