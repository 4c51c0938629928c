package scanner

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsComponentDirectory(t *testing.T) {
	tmp := t.TempDir()
	cfg := DefaultScanConfig()

	writeFile(t, tmp, "Button/index.ts", "export * from './Button'")
	writeFile(t, tmp, "Dialog/index.tsx", "export {}")
	writeFile(t, tmp, "Chip/Chip.tsx", "export const Chip = () => null")
	writeFile(t, tmp, "Text/Text.ts", "export {}")
	writeFile(t, tmp, "Loose/Other.tsx", "export {}")
	writeFile(t, tmp, "Wrong/index.js", "export {}")
	writeFile(t, tmp, "Nested/inner/index.ts", "export {}")
	writeFile(t, tmp, "utils/index.ts", "export {}")
	writeFile(t, tmp, "types/types.ts", "export {}")
	writeFile(t, tmp, "helpers/index.tsx", "export {}")

	tests := []struct {
		dir  string
		want bool
	}{
		{"Button", true},
		{"Dialog", true},
		{"Chip", true},
		{"Text", true},
		{"Loose", false},
		{"Wrong", false},
		{"Nested", false},
		{"Nested/inner", true},
		{"utils", false},
		{"types", false},
		{"helpers", false},
		{"Missing", false},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			assert.Equal(t, tt.want, IsComponentDirectory(filepath.Join(tmp, filepath.FromSlash(tt.dir)), cfg))
		})
	}
}

func TestIsComponentDirectory_Unreadable(t *testing.T) {
	if runtime.GOOS == "windows" || os.Getuid() == 0 {
		t.Skip("permission bits are not enforced")
	}
	tmp := t.TempDir()
	writeFile(t, tmp, "Locked/index.ts", "export {}")
	dir := filepath.Join(tmp, "Locked")
	require.NoError(t, os.Chmod(dir, 0o000))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	assert.False(t, IsComponentDirectory(dir, DefaultScanConfig()))
	assert.False(t, HasStorybook(dir, DefaultScanConfig()))
}

func TestHasStorybook(t *testing.T) {
	tmp := t.TempDir()
	cfg := DefaultScanConfig()

	writeFile(t, tmp, "Button/Button.tsx", "")
	writeFile(t, tmp, "Button/Button.stories.tsx", "")
	writeFile(t, tmp, "Chip/Chip.tsx", "")
	writeFile(t, tmp, "Chip/Chip.stories.ts", "")
	writeFile(t, tmp, "Card/Card.tsx", "")
	writeFile(t, tmp, "Card/stories/Card.stories.tsx", "")

	assert.True(t, HasStorybook(filepath.Join(tmp, "Button"), cfg))
	assert.False(t, HasStorybook(filepath.Join(tmp, "Chip"), cfg), "only the .tsx suffix counts")
	assert.False(t, HasStorybook(filepath.Join(tmp, "Card"), cfg), "only direct children count")

	cfg.StorySuffix = ""
	assert.False(t, HasStorybook(filepath.Join(tmp, "Button"), cfg))
}

func TestDescriptionCandidates_Order(t *testing.T) {
	got := DescriptionCandidates(filepath.Join("src", "Button"))
	want := []string{
		filepath.Join("src", "Button", "Button.tsx"),
		filepath.Join("src", "Button", "index.tsx"),
		filepath.Join("src", "Button", "Button.ts"),
		filepath.Join("src", "Button", "index.ts"),
	}
	assert.Equal(t, want, got)
}
