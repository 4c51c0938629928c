package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverDirectories_IncludesRootAndNested(t *testing.T) {
	tmp := t.TempDir()
	mkdirs(t, tmp, "Button", "Dialog/ActionDialog", "Layout/Stack")

	dirs, err := DiscoverDirectories(tmp, DefaultScanConfig())
	require.NoError(t, err)

	rel := relPaths(t, tmp, dirs)
	assert.Equal(t, []string{".", "Button", "Dialog", "Dialog/ActionDialog", "Layout", "Layout/Stack"}, rel)

	for _, d := range dirs {
		assert.True(t, filepath.IsAbs(d), "expected absolute path, got %s", d)
	}
}

func TestDiscoverDirectories_Excludes(t *testing.T) {
	tmp := t.TempDir()
	mkdirs(t, tmp,
		"Button",
		"node_modules/pkg/Button",
		"Button/node_modules/dep",
		"Button/stories",
		"Button/stories/Deep",
		"Chip/Chip.stories.data",
		"Form/Form.test.fixtures",
	)

	dirs, err := DiscoverDirectories(tmp, DefaultScanConfig())
	require.NoError(t, err)

	rel := relPaths(t, tmp, dirs)
	assert.Equal(t, []string{".", "Button", "Chip", "Form"}, rel)
}

func TestDiscoverDirectories_SkipsHiddenDirectories(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, ".components")
	mkdirs(t, root, "Button", ".cache/Foo", ".storybook", "Form/.generated/Bar")

	dirs, err := DiscoverDirectories(root, DefaultScanConfig())
	require.NoError(t, err)

	rel := relPaths(t, root, dirs)
	assert.Equal(t, []string{".", "Button", "Form"}, rel, "a hidden root is still walked")
}

func TestDiscoverDirectories_SortedOutput(t *testing.T) {
	tmp := t.TempDir()
	mkdirs(t, tmp, "zeta", "Alpha", "beta/Gamma")

	dirs, err := DiscoverDirectories(tmp, DefaultScanConfig())
	require.NoError(t, err)
	require.Greater(t, len(dirs), 1)

	for i := 1; i < len(dirs); i++ {
		assert.LessOrEqual(t, dirs[i-1], dirs[i], "directories should be sorted")
	}
}

func TestDiscoverDirectories_RootErrors(t *testing.T) {
	tmp := t.TempDir()

	_, err := DiscoverDirectories(filepath.Join(tmp, "missing"), DefaultScanConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot access root")

	file := filepath.Join(tmp, "file.ts")
	writeFile(t, tmp, "file.ts", "export {}")
	_, err = DiscoverDirectories(file, DefaultScanConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestDiscoverDirectories_InvalidPattern(t *testing.T) {
	cfg := DefaultScanConfig()
	cfg.Exclude = []string{"[unclosed"}
	_, err := DiscoverDirectories(t.TempDir(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid exclude pattern")
}

// --- helpers ---

func mkdirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, filepath.FromSlash(d)), 0o755))
	}
}

func relPaths(t *testing.T, root string, paths []string) []string {
	t.Helper()
	absRoot, err := filepath.Abs(root)
	require.NoError(t, err)
	out := make([]string, len(paths))
	for i, p := range paths {
		rel, err := filepath.Rel(absRoot, p)
		require.NoError(t, err)
		out[i] = filepath.ToSlash(rel)
	}
	return out
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
