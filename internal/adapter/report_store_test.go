package adapter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "testsmith.dev/pkg/testsmith/internal/model"
)

func sampleRecords() []m.GenerationRecord {
	return []m.GenerationRecord{
		{
			ClassName:   "Widget",
			PackageName: "org.sample",
			TargetPath:  "src/test/java/org/sample/WidgetTest.java",
			Methods:     3,
			Merged:      false,
			GeneratedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		},
	}
}

func TestReportStore_SaveAndLoadRoundTrip(t *testing.T) {
	dir := m.Path(t.TempDir())
	store := NewReportStore()

	require.NoError(t, store.SaveRecords(dir, sampleRecords()))

	loaded, err := store.LoadRecords(dir)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Widget", loaded[0].ClassName)
	assert.Equal(t, m.Path("src/test/java/org/sample/WidgetTest.java"), loaded[0].TargetPath)
	assert.Equal(t, 3, loaded[0].Methods)
	assert.True(t, loaded[0].GeneratedAt.Equal(sampleRecords()[0].GeneratedAt))
}

func TestReportStore_LoadMissingFileIsEmpty(t *testing.T) {
	records, err := NewReportStore().LoadRecords(m.Path(t.TempDir()))

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReportStore_AppendExtendsExisting(t *testing.T) {
	dir := m.Path(t.TempDir())
	store := NewReportStore()

	require.NoError(t, store.SaveRecords(dir, sampleRecords()))
	require.NoError(t, store.AppendRecords(dir, []m.GenerationRecord{
		{ClassName: "Gadget", Methods: 1, Merged: true},
	}))

	loaded, err := store.LoadRecords(dir)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "Widget", loaded[0].ClassName)
	assert.Equal(t, "Gadget", loaded[1].ClassName)
	assert.True(t, loaded[1].Merged)
}

func TestReportStore_AppendIntoEmptyDir(t *testing.T) {
	dir := m.Path(filepath.Join(t.TempDir(), "reports"))
	store := NewReportStore()

	require.NoError(t, store.AppendRecords(dir, sampleRecords()))

	loaded, err := store.LoadRecords(dir)
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}

func TestReportStore_LoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, recordsFileName), []byte("{not yaml"), 0o600))

	_, err := NewReportStore().LoadRecords(m.Path(dir))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode records")
}
