package render_test

import (
	"testing/fstest"
)

// templates builds an in-memory template filesystem from path/contents pairs.
func templates(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, contents := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(contents), Mode: 0o444}
	}
	return fsys
}
