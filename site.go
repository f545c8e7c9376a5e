package elysion

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"

	"impractical.co/elysion/assets"
	"impractical.co/elysion/content"
	"impractical.co/elysion/render"
	"impractical.co/elysion/reveal"
)

//go:embed templates
var embedded embed.FS

// Templates returns the site's templates.
func Templates() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		// the directory is embedded above, so this can't happen
		panic(err)
	}
	return sub
}

var (
	_ render.Site             = &Site{}
	_ render.FuncMapExtender  = &Site{}
	_ render.ServerErrorPager = &Site{}
)

// Site is the render.Site for ELYSION. Its empty value is not usable; use
// NewSite.
type Site struct {
	*render.CachedSite

	// Content is the copy every page renders. It must not be modified
	// once the Site is in use.
	Content content.Bundle

	// Assets resolves image and stylesheet identifiers to URLs.
	Assets assets.Resolver
}

// NewSite returns a Site rendering bundle with the embedded templates. It
// returns an error if bundle doesn't pass validation.
func NewSite(bundle content.Bundle, resolver assets.Resolver) (*Site, error) {
	if err := bundle.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}
	return &Site{
		CachedSite: render.NewCachedSite(Templates()),
		Content:    bundle,
		Assets:     resolver,
	}, nil
}

// Title is the document title, e.g. "ELYSION 5.0".
func (s *Site) Title() string {
	return s.Content.Event.Title()
}

// FuncMap makes the reveal helpers, asset URLs, and icons available to every
// template.
func (s *Site) FuncMap(_ context.Context) template.FuncMap {
	funcs := reveal.FuncMap()
	funcs["asset"] = s.Assets.URL
	funcs["icon"] = assets.SymbolID
	funcs["sprite"] = assets.Sprite
	return funcs
}

// ServerErrorPage is rendered in place of any page that fails.
func (s *Site) ServerErrorPage(_ context.Context) render.Page {
	return ErrorPage{Layout: s.Layout()}
}

// Layout returns the BaseLayout every page uses.
func (s *Site) Layout() BaseLayout {
	return BaseLayout{Stylesheet: s.Assets.URL(StylesheetAsset)}
}

// HomePage returns the landing page.
func (s *Site) HomePage() HomePage {
	return HomePage{
		Layout:    s.Layout(),
		About:     AboutSection{Copy: s.Content.About},
		Workshops: WorkshopsSection{Copy: s.Content.Workshops},
	}
}
