// Package assets resolves asset identifiers to URLs and maps the site's icon
// identifiers onto the Lucide sprite.
//
// Asset identifiers are paths relative to the static root, such as
// "images/couple-dance.svg". A Catalog knows which files exist and appends a
// content hash to their URLs; identifiers it does not know still resolve to a
// plain path, and the browser deals with whatever is missing.
package assets
