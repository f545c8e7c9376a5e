package render

import (
	"context"
	"fmt"
	"html/template"
)

// JSLinker is an interface that Components can fulfill to include JavaScript
// that should be loaded separately from the HTML document, using a <script>
// tag with a src attribute.
type JSLinker interface {
	// LinkJS returns the scripts that should be linked to from the output
	// HTML, in the order they should appear.
	LinkJS(context.Context) []JSLink
}

// JSEmbedder is an interface that Components can fulfill to include
// JavaScript that should be embedded directly into the rendered HTML.
type JSEmbedder interface {
	// EmbedJS returns the templates, without <script> tags, whose output
	// should be embedded in the output HTML.
	EmbedJS(context.Context) []JSInline
}

// JSLink is a script loaded through a <script src> element.
type JSLink struct {
	// Src is the URL of the script.
	Src string

	// PlaceInFooter renders the script in .FooterJS instead of .HeaderJS.
	PlaceInFooter bool

	// Defer adds the defer attribute to the script element.
	Defer bool

	// DisableImplicitOrdering opts the script out of being ordered after
	// the resource declared before it by the same Component.
	DisableImplicitOrdering bool

	// JSLinkRelationCalculator, if set, is consulted against every other
	// linked script in the same placement.
	JSLinkRelationCalculator func(context.Context, JSLink) ResourceRelationship

	// JSInlineRelationCalculator, if set, is consulted against every
	// embedded script in the same placement.
	JSInlineRelationCalculator func(context.Context, JSInline) ResourceRelationship
}

// JSInline is a template whose output is embedded in a <script> element. The
// template is executed with the same data as the page.
type JSInline struct {
	// TemplatePath is the path of the template within the Site's
	// TemplateDir.
	TemplatePath string

	// PlaceInFooter renders the script in .FooterJS instead of .HeaderJS.
	PlaceInFooter bool

	// DisableImplicitOrdering opts the script out of being ordered after
	// the resource declared before it by the same Component.
	DisableImplicitOrdering bool

	// JSLinkRelationCalculator, if set, is consulted against every linked
	// script in the same placement.
	JSLinkRelationCalculator func(context.Context, JSLink) ResourceRelationship

	// JSInlineRelationCalculator, if set, is consulted against every other
	// embedded script in the same placement.
	JSInlineRelationCalculator func(context.Context, JSInline) ResourceRelationship
}

// jsResource is either a JSLink or a JSInline.
type jsResource interface {
	identity() string
	implicitlyOrdered() bool
	relationTo(context.Context, jsResource) (ResourceRelationship, bool)
	sortKey() (int, string)
	describe() string
	markup(context.Context, *template.Template, any) (string, error)
	footer() bool
}

func (l JSLink) identity() string { return "link:" + l.Src }

func (l JSLink) implicitlyOrdered() bool {
	return !l.DisableImplicitOrdering && l.JSLinkRelationCalculator == nil && l.JSInlineRelationCalculator == nil
}

func (l JSLink) relationTo(ctx context.Context, other jsResource) (ResourceRelationship, bool) {
	return jsRelation(ctx, l.JSLinkRelationCalculator, l.JSInlineRelationCalculator, other)
}

func (l JSLink) sortKey() (int, string) { return 0, l.Src }

func (l JSLink) describe() string { return fmt.Sprintf("JSLink(%s)", l.Src) }

func (l JSLink) footer() bool { return l.PlaceInFooter }

func (l JSLink) markup(_ context.Context, _ *template.Template, _ any) (string, error) {
	attrs := ""
	if l.Defer {
		attrs = " defer"
	}
	return fmt.Sprintf("<script src=\"%s\"%s></script>\n", template.HTMLEscapeString(l.Src), attrs), nil
}

func (i JSInline) identity() string { return "inline:" + i.TemplatePath }

func (i JSInline) implicitlyOrdered() bool {
	return !i.DisableImplicitOrdering && i.JSLinkRelationCalculator == nil && i.JSInlineRelationCalculator == nil
}

func (i JSInline) relationTo(ctx context.Context, other jsResource) (ResourceRelationship, bool) {
	return jsRelation(ctx, i.JSLinkRelationCalculator, i.JSInlineRelationCalculator, other)
}

func (i JSInline) sortKey() (int, string) { return 1, i.TemplatePath }

func (i JSInline) describe() string { return fmt.Sprintf("JSInline(%s)", i.TemplatePath) }

func (i JSInline) footer() bool { return i.PlaceInFooter }

func (i JSInline) templatePath() string { return i.TemplatePath }

func (i JSInline) markup(_ context.Context, tmpl *template.Template, data any) (string, error) {
	body, err := executeInline(tmpl, i.TemplatePath, data)
	if err != nil {
		return "", err
	}
	return "<script>\n" + body + "\n</script>\n", nil
}

func jsRelation(ctx context.Context, links func(context.Context, JSLink) ResourceRelationship, inlines func(context.Context, JSInline) ResourceRelationship, other jsResource) (ResourceRelationship, bool) {
	switch res := other.(type) {
	case JSLink:
		if links == nil {
			return ResourceRelationshipNeutral, false
		}
		return links(ctx, res), true
	case JSInline:
		if inlines == nil {
			return ResourceRelationshipNeutral, false
		}
		return inlines(ctx, res), true
	}
	return ResourceRelationshipNeutral, false
}

// collectJS builds one graph for scripts placed in the page header and one
// for scripts placed in the footer. Implicit ordering is tracked separately
// for each placement.
func collectJS(ctx context.Context, components []Component) (head, foot *graph[jsResource]) {
	head, foot = newGraph[jsResource](), newGraph[jsResource]()
	split := func(resources []jsResource) {
		var inHead, inFoot []jsResource
		for _, res := range resources {
			if res.footer() {
				inFoot = append(inFoot, res)
			} else {
				inHead = append(inHead, res)
			}
		}
		head.addSequence(inHead)
		foot.addSequence(inFoot)
	}
	for _, component := range components {
		if linker, ok := component.(JSLinker); ok {
			links := linker.LinkJS(ctx)
			resources := make([]jsResource, 0, len(links))
			for _, link := range links {
				resources = append(resources, link)
			}
			split(resources)
		}
		if embedder, ok := component.(JSEmbedder); ok {
			blocks := embedder.EmbedJS(ctx)
			resources := make([]jsResource, 0, len(blocks))
			for _, block := range blocks {
				resources = append(resources, block)
			}
			split(resources)
		}
	}
	head.applyRelations(ctx)
	foot.applyRelations(ctx)
	return head, foot
}
