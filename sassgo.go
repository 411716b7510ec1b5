// Package sassgo compiles scss to css.
//
// The compiler is a best-effort reimplementation of the sass 3.x
// language: variables, nesting, mixins with @content, functions,
// control flow and arithmetic over typed values.
//
//	var buf bytes.Buffer
//	err := sassgo.CompileScss([]byte("a { b { c: d } }"), &buf, writer.Compressed())
//	// buf: a b{c:d}\n
package sassgo

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/titpetric/sassgo/compiler"
	"github.com/titpetric/sassgo/importer"
	"github.com/titpetric/sassgo/parser"
	"github.com/titpetric/sassgo/scope"
	"github.com/titpetric/sassgo/value"
	"github.com/titpetric/sassgo/writer"
)

// Error types for scss compilation and serving
var (
	ErrNotFound          = errors.New("not found")
	ErrCompilationFailed = errors.New("compilation failed")
)

// CompileScss parses scss source bytes and writes css in the given
// style. Any @import directives resolve relative to the current
// working directory.
func CompileScss(input []byte, output io.Writer, style writer.Style) error {
	return CompileScssFS(os.DirFS("."), input, output, style)
}

// CompileScssFS is CompileScss with @import resolution over the given
// filesystem.
func CompileScssFS(fsys fs.FS, input []byte, output io.Writer, style writer.Style) error {
	items, err := parser.Parse(input)
	if err != nil {
		return err
	}
	cssItems, err := compiler.Compile(importer.New(fsys), items)
	if err != nil {
		return err
	}
	return writer.Write(output, style, cssItems)
}

// CompileScssFile compiles a single scss file, resolving @import
// relative to the file's directory.
func CompileScssFile(path string, output io.Writer, style writer.Style) error {
	files := importer.New(os.DirFS(filepath.Dir(path)))
	sub, data, err := files.File(filepath.Base(path))
	if err != nil {
		return err
	}
	items, err := parser.Parse(data)
	if err != nil {
		return err
	}
	cssItems, err := compiler.Compile(sub, items)
	if err != nil {
		return err
	}
	return writer.Write(output, style, cssItems)
}

// CompileValue evaluates a single value expression under an empty
// scope and returns its rendered bytes.
func CompileValue(input []byte) ([]byte, error) {
	expr, err := parser.ParseValue(input)
	if err != nil {
		return nil, err
	}
	v, err := compiler.Eval(scope.NewGlobal(), expr)
	if err != nil {
		return nil, err
	}
	return []byte(value.Render(v, false)), nil
}
