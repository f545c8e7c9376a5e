package reveal

import (
	_ "embed"
	"fmt"
	"html/template"
	"strconv"
	"strings"
)

//go:embed reveal.js
var clientScript string

// ClientScript returns the browser implementation of the reveal contract,
// without <script> tags. It reveals every element carrying the attributes
// written by Attrs.
func ClientScript() string {
	return clientScript
}

// NoScriptCSS shows every animated element when scripts are disabled. It
// belongs inside a <noscript><style> block.
const NoScriptCSS = "[data-reveal]{opacity:1!important;transform:none!important;}"

// Attrs returns the attributes that put an element under the client script's
// control: its Hidden presentation as an inline style, and the transition to
// its Revealed one.
func Attrs(m Motion) template.HTMLAttr {
	d := m.Directive(Hidden)
	axis := "y"
	if m.Axis == AxisX {
		axis = "x"
	}
	timing := fmt.Sprintf("%dms %s %dms", d.Duration.Milliseconds(), d.Easing, d.Delay.Milliseconds())
	style := strings.Join([]string{
		"opacity:" + formatFloat(d.Opacity),
		fmt.Sprintf("transform:translate3d(%spx,%spx,0)", formatFloat(d.TranslateX), formatFloat(d.TranslateY)),
		"transition:opacity " + timing + ",transform " + timing,
	}, ";")
	return template.HTMLAttr(fmt.Sprintf( // #nosec G203
		`data-reveal="%s" data-reveal-threshold="%s" style="%s"`,
		axis,
		formatFloat(m.threshold()),
		template.HTMLEscapeString(style),
	))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FuncMap exposes the package to templates: {{ reveal .Motion }} writes an
// element's attributes, {{ revealScript }} the client script, and
// {{ revealNoScript }} the fallback CSS.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"reveal": Attrs,
		"revealScript": func() template.HTML {
			return template.HTML(clientScript) // #nosec G203
		},
		"revealNoScript": func() template.CSS {
			return template.CSS(NoScriptCSS)
		},
	}
}
