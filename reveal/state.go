package reveal

// Phase is the presentation phase of an animated element.
type Phase int

const (
	// Hidden is the initial phase: offset and transparent.
	Hidden Phase = iota
	// Revealed is the terminal phase: in place and opaque.
	Revealed
)

func (p Phase) String() string {
	switch p {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	}
	return "unknown"
}

// Event is something a State reacts to.
type Event int

const (
	// EventEnter means the element now intersects the viewport.
	EventEnter Event = iota
	// EventLeave means the element no longer intersects the viewport.
	EventLeave
)

// State is the reveal state of a single element. The zero value is Hidden
// and ready to use.
type State struct {
	phase     Phase
	triggered bool
}

// NewState returns a State in the Hidden phase.
func NewState() State {
	return State{phase: Hidden}
}

// Phase reports the current phase.
func (s State) Phase() Phase {
	return s.phase
}

// Triggered reports whether the state has ever been revealed.
func (s State) Triggered() bool {
	return s.triggered
}

// Send applies evt and reports whether the phase changed. The only
// transition is Hidden -> Revealed on EventEnter; everything else is
// ignored.
func (s *State) Send(evt Event) bool {
	if s.triggered {
		return false
	}
	if s.phase == Hidden && evt == EventEnter {
		s.phase = Revealed
		s.triggered = true
		return true
	}
	return false
}

// Observe is Send for a sampled intersection status.
func (s *State) Observe(intersecting bool) bool {
	if intersecting {
		return s.Send(EventEnter)
	}
	return s.Send(EventLeave)
}
