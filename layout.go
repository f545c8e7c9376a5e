package elysion

import (
	"context"

	"impractical.co/elysion/render"
)

// StylesheetAsset is the asset identifier of the site's stylesheet.
const StylesheetAsset = "css/site.css"

// BaseLayout is the HTML skeleton shared by every page. Pages fill its
// "body" block.
type BaseLayout struct {
	// Stylesheet is the URL of the site stylesheet.
	Stylesheet string
}

func (BaseLayout) Templates(_ context.Context) []string {
	return []string{"base.html.tmpl"}
}

// BaseTemplate is the template pages using the layout execute.
func (BaseLayout) BaseTemplate() string {
	return "base.html.tmpl"
}

func (l BaseLayout) LinkCSS(_ context.Context) []render.CSSLink {
	if l.Stylesheet == "" {
		return nil
	}
	return []render.CSSLink{{Href: l.Stylesheet}}
}

func (BaseLayout) EmbedJS(_ context.Context) []render.JSInline {
	return []render.JSInline{
		{TemplatePath: "reveal.js.tmpl", PlaceInFooter: true},
	}
}
