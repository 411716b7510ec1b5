package testdata_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/titpetric/sassgo"
	"github.com/titpetric/sassgo/writer"
)

// TestFixtures compiles every fixtures/*.scss file and compares the
// result with the neighbouring .css file (expanded output) and, when
// present, the .min.css file (compressed output). Files starting with
// an underscore are import partials and not compiled directly.
func TestFixtures(t *testing.T) {
	entries, err := os.ReadDir("fixtures")
	require.NoError(t, err, "failed to read fixtures directory")

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, "_") || !strings.HasSuffix(name, ".scss") {
			continue
		}

		t.Run(name, func(t *testing.T) {
			testFixture(t, filepath.Join("fixtures", name))
		})
	}
}

func testFixture(t *testing.T, scssPath string) {
	base := strings.TrimSuffix(scssPath, ".scss")

	expected, err := os.ReadFile(base + ".css")
	require.NoError(t, err, "every fixture needs an expected .css file")

	var buf bytes.Buffer
	require.NoError(t, sassgo.CompileScssFile(scssPath, &buf, writer.Expanded(0)))
	if diff := cmp.Diff(string(expected), buf.String()); diff != "" {
		t.Error(diff)
	}

	minified, err := os.ReadFile(base + ".min.css")
	if err != nil {
		return
	}
	buf.Reset()
	require.NoError(t, sassgo.CompileScssFile(scssPath, &buf, writer.Compressed()))
	if diff := cmp.Diff(string(minified), buf.String()); diff != "" {
		t.Error(diff)
	}
}
