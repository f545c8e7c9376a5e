package assets

import (
	_ "embed"
	"html/template"
)

// Icon identifiers used by content.
const (
	IconCamera  = "camera"
	IconGlasses = "glasses"
	IconCheck   = "check"
)

const lucideSymbolPrefix = "lucide-"

// FallbackIcon is drawn for icon identifiers the sprite does not carry.
const FallbackIcon = IconCheck

//go:embed lucide.svg
var lucideSprite string

var lucideIconNames = map[string]string{
	IconCamera:  "camera",
	IconGlasses: "glasses",
	IconCheck:   "check",
}

// LucideName returns the Lucide icon name for an icon identifier.
func LucideName(icon string) (string, bool) {
	name, ok := lucideIconNames[icon]
	return name, ok
}

// SymbolID returns the sprite symbol ID to reference from <use href="#...">.
// Unknown identifiers get the FallbackIcon's symbol.
func SymbolID(icon string) string {
	name, ok := lucideIconNames[icon]
	if !ok {
		name = lucideIconNames[FallbackIcon]
	}
	return lucideSymbolPrefix + name
}

// Sprite returns the inline SVG sprite holding every known icon.
func Sprite() template.HTML {
	return template.HTML(lucideSprite)
}
