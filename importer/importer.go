// Package importer resolves @import paths against a filesystem,
// honouring the sass partial conventions.
package importer

import (
	"fmt"
	"io/fs"
	"path"
)

// FileContext resolves import paths relative to the file currently
// being compiled. Resolving a file yields a sub-context so that
// transitive imports resolve relative to the imported file's
// directory.
type FileContext struct {
	fsys fs.FS
	dir  string
}

// New creates a file context rooted at the given filesystem
func New(fsys fs.FS) *FileContext {
	return &FileContext{fsys: fsys}
}

// candidates lists the names tried for an import path, per sass
// convention: the name itself, a _partial, with .scss appended, and a
// directory index.
func candidates(name string) []string {
	dir, base := path.Split(name)
	return []string{
		name,
		dir + "_" + base,
		name + ".scss",
		dir + "_" + base + ".scss",
		name + "/_index.scss",
		name + "/index.scss",
	}
}

// FindFile probes for an import target. It returns the sub-context and
// file contents when found; a miss is not an error.
func (c *FileContext) FindFile(name string) (*FileContext, []byte, bool) {
	if c.fsys == nil {
		return nil, nil, false
	}
	for _, candidate := range candidates(path.Join(c.dir, name)) {
		data, err := fs.ReadFile(c.fsys, candidate)
		if err != nil {
			continue
		}
		sub := &FileContext{fsys: c.fsys, dir: path.Dir(candidate)}
		return sub, data, true
	}
	return nil, nil, false
}

// File resolves an import target that must exist
func (c *FileContext) File(name string) (*FileContext, []byte, error) {
	if sub, data, ok := c.FindFile(name); ok {
		return sub, data, nil
	}
	return nil, nil, fmt.Errorf("import not found: %q", name)
}
