package elysion

import (
	"context"

	"impractical.co/elysion/render"
)

var (
	_ render.Page = HomePage{}
	_ render.Page = ErrorPage{}
)

// HomePage is the landing page: the About section followed by the
// Workshops section.
type HomePage struct {
	Layout    BaseLayout
	About     AboutSection
	Workshops WorkshopsSection
}

func (HomePage) Templates(_ context.Context) []string {
	return []string{"home.html.tmpl"}
}

func (h HomePage) UseComponents(_ context.Context) []render.Component {
	return []render.Component{h.Layout, h.About, h.Workshops}
}

func (HomePage) Key(_ context.Context) string {
	return "home"
}

func (h HomePage) ExecutedTemplate(_ context.Context) string {
	return h.Layout.BaseTemplate()
}

// ErrorPage tells the visitor something went wrong on our end.
type ErrorPage struct {
	Layout BaseLayout
}

func (ErrorPage) Templates(_ context.Context) []string {
	return []string{"server_error.html.tmpl"}
}

func (e ErrorPage) UseComponents(_ context.Context) []render.Component {
	return []render.Component{e.Layout}
}

func (ErrorPage) Key(_ context.Context) string {
	return "server_error"
}

func (e ErrorPage) ExecutedTemplate(_ context.Context) string {
	return e.Layout.BaseTemplate()
}
