package render

import (
	"context"
	"html/template"
)

// Component is an interface for a UI component that can be rendered to HTML.
type Component interface {
	// Templates returns a list of filepaths (or fs.Glob patterns) to
	// html/template contents that need to be parsed before the component
	// can be rendered.
	Templates(context.Context) []string
}

// ComponentUser is an interface that a Component can optionally implement to
// list the Components that it relies upon. Those Components will have their
// templates parsed and their optional interfaces honoured whenever the
// parent is rendered.
type ComponentUser interface {
	// UseComponents returns the Components that this Component relies on.
	UseComponents(context.Context) []Component
}

// FuncMapExtender is an interface that Components and Sites can fulfill to
// add to the map of functions available when rendering.
type FuncMapExtender interface {
	// FuncMap returns the functions the implementer adds.
	FuncMap(context.Context) template.FuncMap
}

// Page is a Component that can be passed to Render. It defines a single
// logical page, composed of one or more Components.
type Page interface {
	Component

	// Key is a unique key to use when caching this page's parsed
	// templates. A good key is consistent, but unique per Page.
	Key(context.Context) string

	// ExecutedTemplate is the template that is executed to render the
	// page. It is usually the base layout's template, which the Page's own
	// templates fill blocks in.
	ExecutedTemplate(context.Context) string
}

// components returns component and everything it uses, depth first, with
// component itself first.
func components(ctx context.Context, component Component) []Component {
	results := []Component{component}
	if uses, ok := component.(ComponentUser); ok {
		for _, child := range uses.UseComponents(ctx) {
			results = append(results, components(ctx, child)...)
		}
	}
	return results
}

func templatePaths(ctx context.Context, comps []Component) []string {
	var results []string
	seen := map[string]struct{}{}
	appendPath := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		results = append(results, path)
	}
	for _, comp := range comps {
		for _, path := range comp.Templates(ctx) {
			appendPath(path)
		}
		if embedder, ok := comp.(CSSEmbedder); ok {
			for _, block := range embedder.EmbedCSS(ctx) {
				appendPath(block.TemplatePath)
			}
		}
		if embedder, ok := comp.(JSEmbedder); ok {
			for _, block := range embedder.EmbedJS(ctx) {
				appendPath(block.TemplatePath)
			}
		}
	}
	return results
}

func funcMap(ctx context.Context, site Site, comps []Component) template.FuncMap {
	results := template.FuncMap{}
	if fm, ok := site.(FuncMapExtender); ok {
		results = mergeFuncMaps(results, fm.FuncMap(ctx))
	}
	// apply in reverse so the page's own functions win over those of the
	// components it uses
	for i := len(comps) - 1; i >= 0; i-- {
		fm, ok := comps[i].(FuncMapExtender)
		if !ok {
			continue
		}
		results = mergeFuncMaps(results, fm.FuncMap(ctx))
	}
	return results
}

// mergeFuncMaps flattens two FuncMaps into one, with the values in `override`
// replacing the values in `in` if they have the same keys.
func mergeFuncMaps(in template.FuncMap, override template.FuncMap) template.FuncMap {
	res := template.FuncMap{}
	for k, v := range in {
		res[k] = v
	}
	for k, v := range override {
		res[k] = v
	}
	return res
}
