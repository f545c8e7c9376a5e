package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"io/fs"
	"path"
	"strings"
	"sync"
)

// Resolver turns an asset identifier into a URL.
type Resolver interface {
	URL(id string) string
}

// Catalog is a Resolver backed by a filesystem. URLs for files present in
// the filesystem carry a short content hash so they can be cached forever.
type Catalog struct {
	fsys fs.FS
	base string

	mu     sync.RWMutex
	hashes map[string]string
}

// NewCatalog returns a Catalog serving files from fsys under the base URL,
// e.g. "/static" or "https://cdn.example.com/elysion".
func NewCatalog(fsys fs.FS, base string) *Catalog {
	return &Catalog{
		fsys:   fsys,
		base:   strings.TrimSuffix(base, "/"),
		hashes: map[string]string{},
	}
}

// URL returns the URL for id. Unknown identifiers resolve to their plain
// path under the base URL.
func (c *Catalog) URL(id string) string {
	name := strings.TrimPrefix(path.Clean("/"+id), "/")
	u := c.base + "/" + name
	if hash := c.hash(name); hash != "" {
		u += "?v=" + hash
	}
	return u
}

func (c *Catalog) hash(name string) string {
	if c.fsys == nil || name == "" || name == "." {
		return ""
	}
	c.mu.RLock()
	hash, ok := c.hashes[name]
	c.mu.RUnlock()
	if ok {
		return hash
	}
	data, err := fs.ReadFile(c.fsys, name)
	if err == nil {
		sum := sha256.Sum256(data)
		hash = hex.EncodeToString(sum[:])[:10]
	}
	c.mu.Lock()
	c.hashes[name] = hash
	c.mu.Unlock()
	return hash
}
