package reveal

import (
	"time"
)

// DefaultDuration is how long the transition between phases takes when a
// Motion doesn't say otherwise.
const DefaultDuration = 600 * time.Millisecond

// DefaultEasing is the CSS timing function used when a Motion doesn't set
// one.
const DefaultEasing = "cubic-bezier(0.25, 0.1, 0.25, 1)"

// Axis is the direction a Hidden element is offset along.
type Axis int

const (
	// AxisY offsets vertically; positive values start below the final
	// position.
	AxisY Axis = iota
	// AxisX offsets horizontally; positive values start to the right of
	// the final position.
	AxisX
)

// Motion describes how an element moves between its Hidden and Revealed
// phases.
type Motion struct {
	Axis Axis

	// Offset is the distance, in CSS pixels, the element is translated
	// by while Hidden.
	Offset float64

	// Duration of the transition. Zero means DefaultDuration.
	Duration time.Duration

	// Delay before the transition starts, used to stagger siblings.
	Delay time.Duration

	// Easing is a CSS timing function. Empty means DefaultEasing.
	Easing string

	// Threshold is the fraction of the element, from 0 to 1, that must be
	// visible before it reveals. Zero means any overlap at all.
	Threshold float64
}

// Rise returns a Motion that slides up into place from offset pixels below.
func Rise(offset float64, delay time.Duration) Motion {
	return Motion{Axis: AxisY, Offset: offset, Delay: delay}
}

// Slide returns a Motion that slides horizontally into place. A negative
// offset enters from the left.
func Slide(offset float64, delay time.Duration) Motion {
	return Motion{Axis: AxisX, Offset: offset, Delay: delay}
}

// Stagger returns the delay for the index'th element of a list whose first
// element waits base and each later one step more.
func Stagger(base, step time.Duration, index int) time.Duration {
	if index < 0 {
		index = 0
	}
	return base + time.Duration(index)*step
}

// Directive is the concrete presentation of an element in a phase.
type Directive struct {
	TranslateX float64
	TranslateY float64
	Opacity    float64
	Duration   time.Duration
	Delay      time.Duration
	Easing     string
}

// Directive returns the presentation for phase p.
func (m Motion) Directive(p Phase) Directive {
	d := Directive{
		Opacity:  1,
		Duration: m.duration(),
		Delay:    m.Delay,
		Easing:   m.easing(),
	}
	if p == Revealed {
		return d
	}
	d.Opacity = 0
	switch m.Axis {
	case AxisX:
		d.TranslateX = m.Offset
	default:
		d.TranslateY = m.Offset
	}
	return d
}

func (m Motion) duration() time.Duration {
	if m.Duration <= 0 {
		return DefaultDuration
	}
	return m.Duration
}

func (m Motion) easing() string {
	if m.Easing == "" {
		return DefaultEasing
	}
	return m.Easing
}

func (m Motion) threshold() float64 {
	switch {
	case m.Threshold < 0:
		return 0
	case m.Threshold > 1:
		return 1
	}
	return m.Threshold
}
