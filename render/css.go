package render

import (
	"context"
	"fmt"
	"html/template"
)

// CSSLinker is an interface that Components can fulfill to include CSS that
// should be loaded through a <link> element.
type CSSLinker interface {
	// LinkCSS returns the stylesheets that should be linked to from the
	// output HTML, in the order they should appear.
	LinkCSS(context.Context) []CSSLink
}

// CSSEmbedder is an interface that Components can fulfill to include CSS that
// should be embedded directly into the rendered HTML inside <style> tags.
type CSSEmbedder interface {
	// EmbedCSS returns the templates, without <style> tags, whose output
	// should be embedded in the output HTML.
	EmbedCSS(context.Context) []CSSInline
}

// CSSLink is a stylesheet loaded with a <link> element.
type CSSLink struct {
	// Href is the URL of the stylesheet.
	Href string

	// DisableImplicitOrdering opts the stylesheet out of being ordered
	// after the resource declared before it by the same Component.
	DisableImplicitOrdering bool

	// CSSLinkRelationCalculator, if set, is consulted against every other
	// linked stylesheet on the page.
	CSSLinkRelationCalculator func(context.Context, CSSLink) ResourceRelationship

	// CSSInlineRelationCalculator, if set, is consulted against every
	// embedded stylesheet on the page.
	CSSInlineRelationCalculator func(context.Context, CSSInline) ResourceRelationship
}

// CSSInline is a template whose output is embedded in a <style> element. The
// template is executed with the same data as the page.
type CSSInline struct {
	// TemplatePath is the path of the template within the Site's
	// TemplateDir.
	TemplatePath string

	// DisableImplicitOrdering opts the block out of being ordered after
	// the resource declared before it by the same Component.
	DisableImplicitOrdering bool

	// CSSLinkRelationCalculator, if set, is consulted against every
	// linked stylesheet on the page.
	CSSLinkRelationCalculator func(context.Context, CSSLink) ResourceRelationship

	// CSSInlineRelationCalculator, if set, is consulted against every
	// other embedded stylesheet on the page.
	CSSInlineRelationCalculator func(context.Context, CSSInline) ResourceRelationship
}

// cssResource is either a CSSLink or a CSSInline.
type cssResource interface {
	identity() string
	implicitlyOrdered() bool
	relationTo(context.Context, cssResource) (ResourceRelationship, bool)
	sortKey() (int, string)
	describe() string
	markup(context.Context, *template.Template, any) (string, error)
}

func (l CSSLink) identity() string { return "link:" + l.Href }

func (l CSSLink) implicitlyOrdered() bool {
	return !l.DisableImplicitOrdering && l.CSSLinkRelationCalculator == nil && l.CSSInlineRelationCalculator == nil
}

func (l CSSLink) relationTo(ctx context.Context, other cssResource) (ResourceRelationship, bool) {
	return cssRelation(ctx, l.CSSLinkRelationCalculator, l.CSSInlineRelationCalculator, other)
}

func (l CSSLink) sortKey() (int, string) { return 0, l.Href }

func (l CSSLink) describe() string { return fmt.Sprintf("CSSLink(%s)", l.Href) }

func (l CSSLink) markup(_ context.Context, _ *template.Template, _ any) (string, error) {
	return fmt.Sprintf("<link href=\"%s\" rel=\"stylesheet\">\n", template.HTMLEscapeString(l.Href)), nil
}

func (i CSSInline) identity() string { return "inline:" + i.TemplatePath }

func (i CSSInline) implicitlyOrdered() bool {
	return !i.DisableImplicitOrdering && i.CSSLinkRelationCalculator == nil && i.CSSInlineRelationCalculator == nil
}

func (i CSSInline) relationTo(ctx context.Context, other cssResource) (ResourceRelationship, bool) {
	return cssRelation(ctx, i.CSSLinkRelationCalculator, i.CSSInlineRelationCalculator, other)
}

func (i CSSInline) sortKey() (int, string) { return 1, i.TemplatePath }

func (i CSSInline) describe() string { return fmt.Sprintf("CSSInline(%s)", i.TemplatePath) }

func (i CSSInline) templatePath() string { return i.TemplatePath }

func (i CSSInline) markup(_ context.Context, tmpl *template.Template, data any) (string, error) {
	body, err := executeInline(tmpl, i.TemplatePath, data)
	if err != nil {
		return "", err
	}
	return "<style>\n" + body + "\n</style>\n", nil
}

func cssRelation(ctx context.Context, links func(context.Context, CSSLink) ResourceRelationship, inlines func(context.Context, CSSInline) ResourceRelationship, other cssResource) (ResourceRelationship, bool) {
	switch res := other.(type) {
	case CSSLink:
		if links == nil {
			return ResourceRelationshipNeutral, false
		}
		return links(ctx, res), true
	case CSSInline:
		if inlines == nil {
			return ResourceRelationshipNeutral, false
		}
		return inlines(ctx, res), true
	}
	return ResourceRelationshipNeutral, false
}

func collectCSS(ctx context.Context, components []Component) *graph[cssResource] {
	result := newGraph[cssResource]()
	for _, component := range components {
		if linker, ok := component.(CSSLinker); ok {
			links := linker.LinkCSS(ctx)
			resources := make([]cssResource, 0, len(links))
			for _, link := range links {
				resources = append(resources, link)
			}
			result.addSequence(resources)
		}
		if embedder, ok := component.(CSSEmbedder); ok {
			blocks := embedder.EmbedCSS(ctx)
			resources := make([]cssResource, 0, len(blocks))
			for _, block := range blocks {
				resources = append(resources, block)
			}
			result.addSequence(resources)
		}
	}
	result.applyRelations(ctx)
	return result
}
