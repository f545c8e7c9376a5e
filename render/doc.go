// Package render provides the HTML rendering framework the site is built on,
// layered over the html/template package.
//
// render is organized around Components and Pages. A Component is some piece
// of the HTML document that you want included in the page's output: a
// section, a card, the base layout. A Page is a Component that gets rendered
// itself rather than being included in another Component.
//
// Each server should have a Site, which acts as a singleton for the server
// and provides the fs.FS containing the templates that Components are using.
// The Site is available at render time as .Site, the Page as .Page.
//
// Components declare the CSS and JavaScript they need through the optional
// CSSLinker, CSSEmbedder, JSLinker, and JSEmbedder interfaces. Resources are
// deduplicated across every Component a Page uses, kept in declaration order
// within a Component, and can express explicit ordering against other
// resources with a ResourceRelationship. The ordered output is available to
// templates as .CSS, .HeaderJS, and .FooterJS.
package render
