// Package content holds the site's static copy: the About section, the
// workshops, and the event itself. Content is loaded once, validated, and
// never mutated afterwards.
package content

// Event identifies the event the site promotes.
type Event struct {
	Name    string `yaml:"name" json:"name"`
	Edition string `yaml:"edition" json:"edition"`
	Tagline string `yaml:"tagline" json:"tagline"`
}

// Title is the event's display name, e.g. "ELYSION 5.0".
func (e Event) Title() string {
	if e.Edition == "" {
		return e.Name
	}
	return e.Name + " " + e.Edition
}

// Header is the eyebrow, heading, and optional subheading that open a
// section.
type Header struct {
	Eyebrow    string `yaml:"eyebrow" json:"eyebrow"`
	Heading    string `yaml:"heading" json:"heading"`
	Subheading string `yaml:"subheading,omitempty" json:"subheading,omitempty"`
}

// SectionCopy is the copy for a prose section. BodyParagraphs are in reading
// order.
type SectionCopy struct {
	Header           `yaml:",inline"`
	BodyParagraphs   []string `yaml:"body" json:"body"`
	ClosingStatement string   `yaml:"closing" json:"closing"`
	Image            string   `yaml:"image" json:"image"`
	ImageAlt         string   `yaml:"imageAlt" json:"imageAlt"`
}

// Person is a presenter on a panel.
type Person struct {
	Name  string `yaml:"name" json:"name"`
	Title string `yaml:"title" json:"title"`
}

// Leader is the single presenter of a workshop, with the highlights of
// their career and an optional call to action.
type Leader struct {
	Name         string   `yaml:"name" json:"name"`
	Title        string   `yaml:"title" json:"title"`
	Highlights   []string `yaml:"highlights,omitempty" json:"highlights,omitempty"`
	CallToAction string   `yaml:"cta,omitempty" json:"cta,omitempty"`
}

// PresenterKind says which presenter shape a WorkshopEntry uses.
type PresenterKind int

const (
	// PresenterNone is reported for entries that fail validation.
	PresenterNone PresenterKind = iota
	// PresenterSolo means the entry has a Leader.
	PresenterSolo
	// PresenterPanel means the entry has Leaders.
	PresenterPanel
)

func (k PresenterKind) String() string {
	switch k {
	case PresenterSolo:
		return "solo"
	case PresenterPanel:
		return "panel"
	}
	return "none"
}

// WorkshopEntry is one workshop. Exactly one of Leader and Leaders is set.
type WorkshopEntry struct {
	ID             string   `yaml:"id" json:"id"`
	Title          string   `yaml:"title" json:"title"`
	Description    string   `yaml:"description" json:"description"`
	AdditionalInfo string   `yaml:"additionalInfo,omitempty" json:"additionalInfo,omitempty"`
	Image          string   `yaml:"image" json:"image"`
	Icon           string   `yaml:"icon" json:"icon"`
	Leader         *Leader  `yaml:"leader,omitempty" json:"leader,omitempty"`
	Leaders        []Person `yaml:"leaders,omitempty" json:"leaders,omitempty"`
}

// PresenterKind reports which presenter shape the entry uses, or
// PresenterNone when it has both or neither.
func (w WorkshopEntry) PresenterKind() PresenterKind {
	solo, panel := w.Leader != nil, len(w.Leaders) > 0
	switch {
	case solo && !panel:
		return PresenterSolo
	case panel && !solo:
		return PresenterPanel
	}
	return PresenterNone
}

// WorkshopsCopy is the Workshops section: its header and the entries in
// display order.
type WorkshopsCopy struct {
	Header  `yaml:",inline"`
	Entries []WorkshopEntry `yaml:"entries" json:"entries"`
}

// Workshop returns the entry with the given ID.
func (w WorkshopsCopy) Workshop(id string) (WorkshopEntry, bool) {
	for _, entry := range w.Entries {
		if entry.ID == id {
			return entry, true
		}
	}
	return WorkshopEntry{}, false
}

// Bundle is all of the site's content.
type Bundle struct {
	Event     Event         `yaml:"event" json:"event"`
	About     SectionCopy   `yaml:"about" json:"about"`
	Workshops WorkshopsCopy `yaml:"workshops" json:"workshops"`
}
