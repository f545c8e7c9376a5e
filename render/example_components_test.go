package render_test

import (
	"context"
	"log/slog"
	"os"

	"impractical.co/elysion/render"
)

type SharedSite struct {
	*render.CachedSite

	Title string
}

type SharedIcon struct {
	Symbol string
}

func (SharedIcon) Templates(_ context.Context) []string {
	return []string{"icon.html.tmpl"}
}

type SharedLayout struct {
	Logo SharedIcon
}

func (SharedLayout) Templates(_ context.Context) []string {
	return []string{"base.html.tmpl"}
}

func (l SharedLayout) UseComponents(_ context.Context) []render.Component {
	return []render.Component{l.Logo}
}

type SharedWorkshopsPage struct {
	Layout SharedLayout
	Badge  SharedIcon
}

func (SharedWorkshopsPage) Templates(_ context.Context) []string {
	return []string{"workshops.html.tmpl"}
}

func (p SharedWorkshopsPage) UseComponents(_ context.Context) []render.Component {
	// both the layout and the page use the icon component; its template is
	// only parsed once
	return []render.Component{p.Layout, p.Badge}
}

func (SharedWorkshopsPage) Key(_ context.Context) string {
	return "workshops"
}

func (SharedWorkshopsPage) ExecutedTemplate(_ context.Context) string {
	return "base.html.tmpl"
}

func ExampleRender_sharedComponents() {
	fsys := templates(map[string]string{
		"workshops.html.tmpl": `{{ define "body" }}<h2>Workshops</h2>{{ template "icon" .Page.Badge }}{{ end }}`,
		"icon.html.tmpl":      `{{ define "icon" }}<svg><use href="#{{ .Symbol }}"></use></svg>{{ end }}`,
		"base.html.tmpl": `<!doctype html>
<html lang="en">
	<head>
		<title>{{ .Site.Title }}</title>
	</head>
	<body>
		<nav>{{ template "icon" .Page.Layout.Logo }}</nav>
		{{ block "body" . }}{{ end }}
	</body>
</html>`,
	})

	ctx := render.LoggingContext(context.Background(), slog.Default())

	site := SharedSite{
		CachedSite: render.NewCachedSite(fsys),
		Title:      "ELYSION",
	}
	page := SharedWorkshopsPage{
		Layout: SharedLayout{Logo: SharedIcon{Symbol: "lucide-sparkle"}},
		Badge:  SharedIcon{Symbol: "lucide-camera"},
	}
	render.Render(ctx, os.Stdout, site, page)

	//Output:
	// <!doctype html>
	// <html lang="en">
	// 	<head>
	// 		<title>ELYSION</title>
	// 	</head>
	// 	<body>
	// 		<nav><svg><use href="#lucide-sparkle"></use></svg></nav>
	// 		<h2>Workshops</h2><svg><use href="#lucide-camera"></use></svg>
	// 	</body>
	// </html>
}
