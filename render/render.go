package render

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "impractical.co/elysion/render"

var (
	// ErrNoTemplatePath is returned when a template path is needed, but
	// none are supplied.
	ErrNoTemplatePath = errors.New("need at least one template path")

	// ErrTemplatePatternMatchesNoFiles is returned when a template path is
	// a pattern, but that pattern doesn't match any files.
	ErrTemplatePatternMatchesNoFiles = errors.New("pattern matches no files")
)

// RenderData is the data that is passed to a page's templates when rendering
// it, and to the templates of its embedded CSS and JavaScript.
type RenderData[SiteType Site, PageType Page] struct {
	// Site is the Site the page is being rendered for.
	Site SiteType

	// Page is the page being rendered.
	Page PageType

	// CSS holds the <link> and <style> elements for every stylesheet the
	// page's Components declared, in dependency order.
	CSS template.HTML

	// HeaderJS holds the <script> elements that belong in the document
	// head.
	HeaderJS template.HTML

	// FooterJS holds the <script> elements that belong at the end of the
	// document body.
	FooterJS template.HTML
}

// Render renders the passed Page to the Writer. If it can't, a server error
// page is written instead. If the Site implements ServerErrorPager, that will
// be rendered; if not, a simple text page indicating a server error will be
// written.
//
// Callers that need to know whether rendering failed, to set a status code
// for example, should use Execute.
func Render[SiteType Site, PageType Page](ctx context.Context, out io.Writer, site SiteType, page PageType) {
	defer func() {
		// if the writer can be closed, let's try to close it
		if closer, ok := out.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				logger(ctx).ErrorContext(ctx, "error closing response writer", "error", err)
			}
		}
	}()

	err := Execute(ctx, out, site, page)
	if err == nil {
		return
	}
	logger(ctx).ErrorContext(ctx, "error rendering page", "error", err, "page", fmt.Sprintf("%T", page))
	RenderServerError(ctx, out, site)
}

// RenderServerError writes the Site's server error page to out, falling back
// to a plain text message when the Site has none or it fails to render.
func RenderServerError[SiteType Site](ctx context.Context, out io.Writer, site SiteType) {
	if pager, ok := Site(site).(ServerErrorPager); ok {
		err := Execute(ctx, out, site, pager.ServerErrorPage(ctx))
		if err == nil {
			return
		}
		// if we can't do that, everything's doomed, just log it and
		// fall back to the plain message
		logger(ctx).ErrorContext(ctx, "error rendering server error page", "error", err)
	}
	if _, err := out.Write([]byte("Server error.")); err != nil {
		logger(ctx).ErrorContext(ctx, "error writing server error message", "error", err)
	}
}

// Execute renders page to out and returns any error encountered. Nothing is
// written to out unless the page rendered successfully.
func Execute[SiteType Site, PageType Page](ctx context.Context, out io.Writer, site SiteType, page PageType) (err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "render.Execute", trace.WithAttributes(
		attribute.String("render.page", fmt.Sprintf("%T", page)),
		attribute.String("render.key", page.Key(ctx)),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	comps := components(ctx, page)
	tmpl, err := getTemplate(ctx, site, page, comps)
	if err != nil {
		return err
	}

	data := RenderData[SiteType, PageType]{
		Site: site,
		Page: page,
	}
	cssGraph := collectCSS(ctx, comps)
	headGraph, footGraph := collectJS(ctx, comps)
	if data.CSS, err = renderGraph(ctx, cssGraph, tmpl, data); err != nil {
		return fmt.Errorf("error rendering CSS for %T: %w", page, err)
	}
	if data.HeaderJS, err = renderGraph(ctx, headGraph, tmpl, data); err != nil {
		return fmt.Errorf("error rendering header JavaScript for %T: %w", page, err)
	}
	if data.FooterJS, err = renderGraph(ctx, footGraph, tmpl, data); err != nil {
		return fmt.Errorf("error rendering footer JavaScript for %T: %w", page, err)
	}

	// render into a buffer first so a failure halfway through doesn't
	// leave a partial page in out
	var buf strings.Builder
	executed := page.ExecutedTemplate(ctx)
	if err = tmpl.ExecuteTemplate(&buf, executed, data); err != nil {
		return fmt.Errorf("error executing template %q for %T: %w", executed, page, err)
	}
	if _, err = io.WriteString(out, buf.String()); err != nil {
		return fmt.Errorf("error writing %T: %w", page, err)
	}
	return nil
}

func getTemplate(ctx context.Context, site Site, page Page, comps []Component) (*template.Template, error) {
	key := page.Key(ctx)
	cache, cacheable := site.(TemplateCacher)
	if cacheable {
		if cached := cache.GetCachedTemplate(ctx, key); cached != nil {
			return cached, nil
		}
	}
	paths := templatePaths(ctx, comps)
	if len(paths) < 1 {
		return nil, fmt.Errorf("error rendering %T: %w", page, ErrNoTemplatePath)
	}
	parsed, err := parseTemplates(site.TemplateDir(ctx), funcMap(ctx, site, comps), paths...)
	if err != nil {
		return nil, fmt.Errorf("error parsing templates %v for page %T: %w", paths, page, err)
	}
	if cacheable {
		cache.SetCachedTemplate(ctx, key, parsed)
	}
	return parsed, nil
}

func parseTemplates(fsys fs.FS, funcs template.FuncMap, patterns ...string) (*template.Template, error) {
	var files []string
	for _, pattern := range patterns {
		list, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("error listing files for %q: %w", pattern, err)
		}
		if len(list) < 1 {
			return nil, fmt.Errorf("error parsing %q: %w", pattern, ErrTemplatePatternMatchesNoFiles)
		}
		files = append(files, list...)
	}
	if len(files) < 1 {
		return nil, ErrNoTemplatePath
	}
	tmpl := template.New("").Funcs(funcs)
	for _, file := range files {
		if tmpl.Lookup(file) != nil {
			continue
		}
		contents, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("error reading %q: %w", file, err)
		}
		if _, err = tmpl.New(file).Parse(string(contents)); err != nil {
			return nil, fmt.Errorf("error parsing %q: %w", file, err)
		}
	}
	return tmpl, nil
}

func executeInline(tmpl *template.Template, path string, data any) (string, error) {
	var buf strings.Builder
	if err := tmpl.ExecuteTemplate(&buf, path, data); err != nil {
		return "", fmt.Errorf("error executing template %q: %w", path, err)
	}
	return buf.String(), nil
}
