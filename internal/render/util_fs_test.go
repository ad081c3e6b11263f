package render_test

import (
	"testing/fstest"
)

// templateFS builds an in-memory template directory from file contents keyed
// by path.
func templateFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, contents := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(contents), Mode: 0o444}
	}
	return fsys
}
