package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortRecords_CategoryThenName(t *testing.T) {
	records := []ComponentRecord{
		{Name: "Tooltip", Category: CategoryFeedback},
		{Name: "Button", Category: CategoryButton},
		{Name: "ActionDialog", Category: CategoryDialog},
		{Name: "AnchorButton", Category: CategoryButton},
		{Name: "Balloon", Category: CategoryFeedback},
		{Name: "Zebra", Category: CategoryOther},
		{Name: "apple", Category: CategoryOther},
	}
	SortRecords(records)

	want := []string{"AnchorButton", "Button", "ActionDialog", "Balloon", "Tooltip", "apple", "Zebra"}
	got := make([]string, len(records))
	for i, r := range records {
		got[i] = r.Name
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sort order mismatch (-want +got):\n%s", diff)
	}
}

func TestSortRecords_IndependentOfInputOrder(t *testing.T) {
	a := []ComponentRecord{
		{Name: "b", Category: CategoryOther},
		{Name: "B", Category: CategoryOther},
		{Name: "a", Category: CategoryOther},
	}
	b := []ComponentRecord{a[2], a[1], a[0]}
	SortRecords(a)
	SortRecords(b)
	assert.Equal(t, a, b)
}

func TestMarshalRecords_Format(t *testing.T) {
	data, err := MarshalRecords([]ComponentRecord{
		{Name: "Button", Category: CategoryButton, Description: StringPtr("A <b>button</b> & more"), HasStorybook: true},
		{Name: "Loader", Category: CategoryDisplay},
	})
	require.NoError(t, err)

	want := `[
  {
    "name": "Button",
    "category": "Button",
    "description": "A <b>button</b> & more",
    "hasStorybook": true,
    "deprecated": false
  },
  {
    "name": "Loader",
    "category": "Display",
    "hasStorybook": false,
    "deprecated": false
  }
]
`
	assert.Equal(t, want, string(data))
}

func TestMarshalRecords_Empty(t *testing.T) {
	data, err := MarshalRecords(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestWriteIndexFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "components.json")
	records := testRecords()

	require.NoError(t, WriteIndexFile(path, records))

	idx, err := LoadIndexFile(path)
	require.NoError(t, err)
	if diff := cmp.Diff(records, idx.Records()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteIndexFile_ReplacesAndIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "components.json")
	require.NoError(t, os.WriteFile(path, []byte("stale content"), 0o644))

	require.NoError(t, WriteIndexFile(path, testRecords()))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, WriteIndexFile(path, testRecords()))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotContains(t, string(first), "stale")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp")
	}
}
