package importer

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"plain.scss":        {Data: []byte("plain")},
		"_partial.scss":     {Data: []byte("partial")},
		"exact":             {Data: []byte("exact")},
		"lib/_index.scss":   {Data: []byte("lib index")},
		"sub/child.scss":    {Data: []byte("child")},
		"sub/_sibling.scss": {Data: []byte("sibling")},
	}
}

func TestFindFile(t *testing.T) {
	files := New(testFS())

	tests := []struct {
		name string
		path string
		want string
	}{
		{"appends scss extension", "plain", "plain"},
		{"finds partials", "partial", "partial"},
		{"exact name wins", "exact", "exact"},
		{"directory index", "lib", "lib index"},
		{"path with directory", "sub/child", "child"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, data, ok := files.FindFile(tt.path)
			require.True(t, ok, "FindFile(%q)", tt.path)
			require.Equal(t, tt.want, string(data))
		})
	}
}

func TestFindFileMiss(t *testing.T) {
	files := New(testFS())
	if _, _, ok := files.FindFile("nothing"); ok {
		t.Error("FindFile should miss on unknown names")
	}
}

func TestSubContextResolvesRelative(t *testing.T) {
	files := New(testFS())

	sub, _, ok := files.FindFile("sub/child")
	require.True(t, ok)

	// the sub-context resolves siblings of the imported file
	_, data, ok := sub.FindFile("sibling")
	require.True(t, ok)
	require.Equal(t, "sibling", string(data))

	// but not files that only exist at the root
	if _, _, ok := sub.FindFile("plain"); ok {
		t.Error("sub-context should search relative to the imported file")
	}
}

func TestNilFilesystem(t *testing.T) {
	files := New(nil)
	if _, _, ok := files.FindFile("anything"); ok {
		t.Error("a nil filesystem resolves nothing")
	}
	if _, _, err := files.File("anything"); err == nil {
		t.Error("File should fail on a nil filesystem")
	}
}
