package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gnana997/uicatalog/pkg/catalog"
)

func TestPrintComponentHuman(t *testing.T) {
	detail := &catalog.ComponentDetail{
		ComponentInfo: catalog.ComponentInfo{
			Name:         "OldTable",
			DisplayName:  "OldTable",
			Category:     catalog.CategoryTable,
			Description:  catalog.StringPtr("@deprecated Use Table"),
			HasStorybook: true,
			Deprecated:   true,
			ExportPath:   "smarthr-ui",
		},
		Props:        []catalog.Prop{},
		Examples:     []catalog.Example{},
		Dependencies: []string{},
	}

	var out bytes.Buffer
	printComponentHuman(&out, detail)

	assert.Equal(t, `OldTable  [DEPRECATED]  [Table]

@deprecated Use Table

Import
  import { OldTable } from 'smarthr-ui'

Storybook: yes
`, out.String())
	assert.NotContains(t, out.String(), "Props")
}

func TestPrintComponentHuman_NoDescription(t *testing.T) {
	detail := &catalog.ComponentDetail{
		ComponentInfo: catalog.ComponentInfo{
			Name:        "Stack",
			DisplayName: "Stack",
			Category:    catalog.CategoryLayout,
			ExportPath:  "my-ui",
		},
	}

	var out bytes.Buffer
	printComponentHuman(&out, detail)

	assert.Equal(t, "Stack  [Layout]\n\nImport\n  import { Stack } from 'my-ui'\n\nStorybook: no\n", out.String())
}

func TestPrintWrapped(t *testing.T) {
	var out bytes.Buffer
	printWrapped(&out, strings.Repeat("word ", 30), 2, 40)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	assert.Greater(t, len(lines), 1)
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 40)
		assert.True(t, strings.HasPrefix(line, "  word"), line)
	}
}
