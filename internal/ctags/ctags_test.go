package ctags

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTags(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const sampleTags = `!_TAG_FILE_FORMAT	2	/extended format/
!_TAG_PROGRAM_NAME	Exuberant Ctags	//
Widget	lib/widget.rb	/^class Widget$/;"	c
render	lib/widget.rb	/^  def render$/;"	f	class:Widget
resize	lib/widget.rb	/^  def resize$/;"	f	class:Widget
VERSION	lib/version.rb	3
`

func TestParseLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   Tag
		wantOK bool
	}{
		{
			name:   "extended format with kind",
			line:   "Widget\tlib/widget.rb\t/^class Widget$/;\"\tc",
			want:   Tag{Name: "Widget", File: "lib/widget.rb", ExCmd: "/^class Widget$/", Kind: "c"},
			wantOK: true,
		},
		{
			name:   "kind with field name",
			line:   "render\tlib/widget.rb\t/^  def render$/;\"\tkind:f",
			want:   Tag{Name: "render", File: "lib/widget.rb", ExCmd: "/^  def render$/", Kind: "f"},
			wantOK: true,
		},
		{
			name:   "plain line number excmd",
			line:   "VERSION\tlib/version.rb\t3",
			want:   Tag{Name: "VERSION", File: "lib/version.rb", ExCmd: "3"},
			wantOK: true,
		},
		{name: "header", line: "!_TAG_FILE_FORMAT\t2\t//", wantOK: false},
		{name: "empty", line: "", wantOK: false},
		{name: "too few fields", line: "name\tfile", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseLine(tt.line)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				require.Equal(t, tt.want, got)
			}
		})
	}
}

func TestLoadAndComplete(t *testing.T) {
	dir := t.TempDir()
	path := writeTags(t, dir, "tags", sampleTags)

	idx := New()
	require.NoError(t, idx.Load(context.Background(), []string{path}))
	require.Equal(t, 4, idx.Len())

	got := idx.Complete("re")
	require.Len(t, got, 2)
	require.Equal(t, "render", got[0].Name)
	require.Equal(t, "resize", got[1].Name)

	require.Empty(t, idx.Complete("zz"))
}

func TestCompleteDeduplicatesAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	entry := "Widget\tlib/widget.rb\t/^class Widget$/;\"\tc\n"
	a := writeTags(t, dir, "tags.a", entry)
	b := writeTags(t, dir, "tags.b", entry)

	idx := New()
	require.NoError(t, idx.Load(context.Background(), []string{a, b}))

	got := idx.Complete("Wid")
	require.Len(t, got, 1, "same (name, file) pair from two tags files should collapse")
}

func TestLookup(t *testing.T) {
	dir := t.TempDir()
	path := writeTags(t, dir, "tags", sampleTags)

	idx := New()
	require.NoError(t, idx.Reload(path))

	got := idx.Lookup("render")
	require.Len(t, got, 1)
	require.Equal(t, "f", got[0].Kind)

	require.Empty(t, idx.Lookup("rend"))
}

func TestReloadReplacesEntries(t *testing.T) {
	dir := t.TempDir()
	path := writeTags(t, dir, "tags", sampleTags)

	idx := New()
	require.NoError(t, idx.Reload(path))
	require.Equal(t, 4, idx.Len())

	writeTags(t, dir, "tags", "only\tlib/only.rb\t1\n")
	require.NoError(t, idx.Reload(path))
	require.Equal(t, 1, idx.Len())
	require.Empty(t, idx.Lookup("Widget"))
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	path := writeTags(t, dir, "tags", sampleTags)

	idx := New()
	require.NoError(t, idx.Reload(path))
	idx.Remove(path)
	require.Zero(t, idx.Len())
}

func TestLoadMissingFileIsSkipped(t *testing.T) {
	idx := New()
	// Unreadable files are logged and skipped, not fatal.
	require.NoError(t, idx.Load(context.Background(), []string{"/nonexistent/tags"}))
	require.Zero(t, idx.Len())
}
