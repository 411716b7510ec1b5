package sassgo

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/titpetric/sassgo/writer"
)

func TestCompileScssFS(t *testing.T) {
	files := fstest.MapFS{
		"_colors.scss": {Data: []byte("$primary: #336699;")},
	}
	src := []byte(`@import "colors"; a { color: $primary }`)

	var buf bytes.Buffer
	require.NoError(t, CompileScssFS(files, src, &buf, writer.Compressed()))
	require.Equal(t, "a{color:#369}\n", buf.String())

	buf.Reset()
	require.NoError(t, CompileScssFS(files, src, &buf, writer.Expanded(0)))
	require.Equal(t, "a {\n  color: #336699;\n}\n", buf.String())
}

func TestCompileValue(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"10px + 4px", "14px"},
		{"mix(black, white)", "gray"},
		{"1px 2px 3px", "1px 2px 3px"},
		{`"a" + "b"`, `"ab"`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := CompileValue([]byte(tt.input))
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, string(got)); diff != "" {
				t.Error(diff)
			}
		})
	}
}

// re-parsing and re-emitting an already compiled value must not
// change it
func TestCompileValueIdempotent(t *testing.T) {
	inputs := []string{
		"10px + 4px",
		"rgba(1, 2, 3, 0.5)",
		"1px 2px",
		"a, b, c",
		`"quoted"`,
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			once, err := CompileValue([]byte(input))
			require.NoError(t, err)
			twice, err := CompileValue(once)
			require.NoError(t, err)
			require.Equal(t, string(once), string(twice))
		})
	}
}

func TestHandlerServesCompiledScss(t *testing.T) {
	files := fstest.MapFS{
		"style.scss": {Data: []byte("a { b { c: d } }")},
	}
	handler := NewHandler(files, "/css")

	req := httptest.NewRequest("GET", "/css/style.scss", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "text/css; charset=utf-8", w.Header().Get("Content-Type"))
	require.Equal(t, "a b {\n  c: d;\n}\n", w.Body.String())
}

func TestHandlerRejects(t *testing.T) {
	files := fstest.MapFS{
		"style.scss": {Data: []byte("a { c: d }")},
	}
	handler := NewHandler(files, "")

	for _, tt := range []struct {
		method string
		path   string
		code   int
	}{
		{"POST", "/style.scss", http.StatusMethodNotAllowed},
		{"GET", "/style.css", http.StatusNotFound},
		{"GET", "/missing.scss", http.StatusNotFound},
	} {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		require.Equal(t, tt.code, w.Code, "%s %s", tt.method, tt.path)
	}
}

func TestMiddlewarePassthrough(t *testing.T) {
	files := fstest.MapFS{}
	mw := NewMiddleware("/css", files)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest("GET", "/other", nil)
	w := httptest.NewRecorder()
	mw(next).ServeHTTP(w, req)
	require.Equal(t, http.StatusTeapot, w.Code)
}
