// Package elysion renders the ELYSION event website.
//
// The site is built from Components in the render package's sense: a
// BaseLayout shared by every page, an AboutSection and a WorkshopsSection,
// and the HomePage that composes them. Every animated element is emitted in
// its hidden presentation with the attributes from reveal.Attrs, and the
// layout ships the reveal client script that flips each element to revealed
// exactly once, the first time it scrolls into view.
//
// A Site holds the validated content.Bundle and an assets.Resolver, and is
// shared by every request.
package elysion
