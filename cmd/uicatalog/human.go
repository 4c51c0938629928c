package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/gnana997/uicatalog/pkg/catalog"
)

const maxWidth = 80

// printComponentHuman prints a readable component summary.
func printComponentHuman(w io.Writer, comp *catalog.ComponentDetail) {
	header := comp.DisplayName
	if comp.Deprecated {
		header += "  [DEPRECATED]"
	}
	fmt.Fprintf(w, "%s  [%s]\n", header, comp.Category)

	if comp.Description != nil && *comp.Description != "" {
		fmt.Fprintln(w)
		printWrapped(w, *comp.Description, 0, maxWidth)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Import")
	fmt.Fprintf(w, "  import { %s } from '%s'\n", comp.Name, comp.ExportPath)

	fmt.Fprintln(w)
	if comp.HasStorybook {
		fmt.Fprintln(w, "Storybook: yes")
	} else {
		fmt.Fprintln(w, "Storybook: no")
	}
}

// printWrapped prints text word-wrapped at width with the given left indent.
// Text without spaces (Japanese prose, for one) is printed on a single line.
func printWrapped(w io.Writer, text string, indent, width int) {
	words := strings.Fields(text)
	prefix := strings.Repeat(" ", indent)
	line := prefix
	for _, word := range words {
		switch {
		case line == prefix:
			line += word
		case len(line)+len(word)+1 > width:
			fmt.Fprintln(w, line)
			line = prefix + word
		default:
			line += " " + word
		}
	}
	if line != prefix {
		fmt.Fprintln(w, line)
	}
}
