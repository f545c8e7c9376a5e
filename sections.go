package elysion

import (
	"context"
	"time"

	"impractical.co/elysion/content"
	"impractical.co/elysion/render"
	"impractical.co/elysion/reveal"
)

// Offsets and delays for section elements, in CSS pixels.
const (
	headerRise  = 30
	closingRise = 20
	cardRise    = 40
	columnSlide = 30
)

// CardStagger is how much later each workshop card starts revealing than
// the one before it.
const CardStagger = 200 * time.Millisecond

// SectionHeader is the eyebrow, heading, and optional subheading that open
// a section, revealed as one element.
type SectionHeader struct {
	content.Header
	Motion reveal.Motion
}

func (SectionHeader) Templates(_ context.Context) []string {
	return []string{"header.html.tmpl"}
}

func newSectionHeader(h content.Header) SectionHeader {
	return SectionHeader{Header: h, Motion: reveal.Rise(headerRise, 0)}
}

// AboutSection introduces the event. Its header rises in first, then the
// image slides in from the left and the copy from the right, and the closing
// statement rises in last.
type AboutSection struct {
	Copy content.SectionCopy
}

func (AboutSection) Templates(_ context.Context) []string {
	return []string{"about.html.tmpl"}
}

func (a AboutSection) UseComponents(_ context.Context) []render.Component {
	return []render.Component{a.Header()}
}

func (AboutSection) EmbedCSS(_ context.Context) []render.CSSInline {
	return []render.CSSInline{{TemplatePath: "about.css.tmpl"}}
}

// Header returns the section's header component.
func (a AboutSection) Header() SectionHeader {
	return newSectionHeader(a.Copy.Header)
}

// ImageMotion is the Motion of the image column.
func (AboutSection) ImageMotion() reveal.Motion {
	return reveal.Slide(-columnSlide, 200*time.Millisecond)
}

// CopyMotion is the Motion of the body paragraphs' column.
func (AboutSection) CopyMotion() reveal.Motion {
	return reveal.Slide(columnSlide, 300*time.Millisecond)
}

// ClosingMotion is the Motion of the closing statement.
func (AboutSection) ClosingMotion() reveal.Motion {
	return reveal.Rise(closingRise, 500*time.Millisecond)
}

// WorkshopsSection lists the workshops as cards that rise in one after the
// other.
type WorkshopsSection struct {
	Copy content.WorkshopsCopy
}

func (WorkshopsSection) Templates(_ context.Context) []string {
	return []string{"workshops.html.tmpl"}
}

func (w WorkshopsSection) UseComponents(_ context.Context) []render.Component {
	return []render.Component{w.Header()}
}

// Header returns the section's header component.
func (w WorkshopsSection) Header() SectionHeader {
	return newSectionHeader(w.Copy.Header)
}

// Cards returns a WorkshopCard per entry, in display order. An entry that
// fails validation, such as one with both or neither of a leader and
// leaders, is an error, and fails any template ranging over Cards.
func (w WorkshopsSection) Cards() ([]WorkshopCard, error) {
	cards := make([]WorkshopCard, 0, len(w.Copy.Entries))
	for i, entry := range w.Copy.Entries {
		if err := entry.Validate(); err != nil {
			return nil, err
		}
		cards = append(cards, WorkshopCard{
			Entry:  entry,
			Motion: reveal.Rise(cardRise, reveal.Stagger(0, CardStagger, i)),
		})
	}
	return cards, nil
}

// WorkshopCard is one workshop entry and the Motion it reveals with.
type WorkshopCard struct {
	Entry  content.WorkshopEntry
	Motion reveal.Motion
}

// Solo reports whether the card is led by a single presenter.
func (c WorkshopCard) Solo() bool {
	return c.Entry.PresenterKind() == content.PresenterSolo
}

// Panel reports whether the card lists several session leaders.
func (c WorkshopCard) Panel() bool {
	return c.Entry.PresenterKind() == content.PresenterPanel
}
