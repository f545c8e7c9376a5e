package render

import (
	"context"
	"html/template"
	"io/fs"
	"sync"
)

// Site is an interface for the singleton that will be used to render HTML.
// Consumers should use it to store any clients or cross-request state they
// need, and use it to render Pages.
type Site interface {
	// TemplateDir returns an fs.FS containing all the templates needed to
	// render every Page on the Site.
	TemplateDir(ctx context.Context) fs.FS
}

// TemplateCacher is an optional interface for Sites. Those fulfilling it can
// cache template parsing using the Key of each Page. The data used to execute
// the cached template may still differ between renders, so the output HTML
// cannot be presumed to be cacheable.
type TemplateCacher interface {
	// GetCachedTemplate returns the *template.Template stored under key,
	// or nil if there is none yet.
	GetCachedTemplate(ctx context.Context, key string) *template.Template

	// SetCachedTemplate stores tmpl under key. It is best-effort and
	// surfaces no errors.
	SetCachedTemplate(ctx context.Context, key string, tmpl *template.Template)
}

// ServerErrorPager defines an interface that Sites can optionally implement.
// If a Site implements ServerErrorPager and Render encounters an error, the
// output of ServerErrorPage will be rendered instead.
type ServerErrorPager interface {
	ServerErrorPage(ctx context.Context) Page
}

var _ Site = &CachedSite{}
var _ TemplateCacher = &CachedSite{}

// CachedSite is an implementation of the Site interface that can be embedded
// in other Site implementations. It caches parsed templates in memory and
// exposes the template fs.FS passed to NewCachedSite. Its empty value is not
// usable.
type CachedSite struct {
	templateCache   map[string]*template.Template
	templateCacheMu sync.RWMutex

	templateDir fs.FS
}

// NewCachedSite returns a CachedSite instance that is ready to be used.
func NewCachedSite(templates fs.FS) *CachedSite {
	return &CachedSite{
		templateCache: map[string]*template.Template{},
		templateDir:   templates,
	}
}

// GetCachedTemplate returns the cached template associated with the passed
// key, if one exists.
//
// It can safely be used by multiple goroutines.
func (s *CachedSite) GetCachedTemplate(_ context.Context, key string) *template.Template {
	s.templateCacheMu.RLock()
	defer s.templateCacheMu.RUnlock()
	return s.templateCache[key]
}

// SetCachedTemplate caches a template for the given key.
//
// It can safely be used by multiple goroutines.
func (s *CachedSite) SetCachedTemplate(_ context.Context, key string, tmpl *template.Template) {
	s.templateCacheMu.Lock()
	defer s.templateCacheMu.Unlock()
	s.templateCache[key] = tmpl
}

// TemplateDir returns the fs.FS passed to NewCachedSite.
func (s *CachedSite) TemplateDir(_ context.Context) fs.FS {
	return s.templateDir
}
