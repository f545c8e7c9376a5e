package reveal

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrAlreadyMounted is returned when mounting an ID that is already
	// tracked.
	ErrAlreadyMounted = errors.New("element already mounted")

	// ErrEmptyID is returned when mounting an element without an ID.
	ErrEmptyID = errors.New("element ID is required")
)

// ObserveOptions configure an intersection subscription.
type ObserveOptions struct {
	// Threshold is the visible fraction required before notifying.
	Threshold float64

	// Once asks the surface to stop notifying after the first
	// intersecting notification. Trackers release the subscription
	// themselves either way.
	Once bool
}

// Observer delivers intersection changes for elements.
type Observer interface {
	// Observe starts delivering intersection changes for the element id
	// to notify. The returned stop function ends the subscription; it
	// must be safe to call more than once.
	Observe(id string, opts ObserveOptions, notify func(intersecting bool)) (stop func(), err error)
}

// Layout reports geometry for elements.
type Layout interface {
	// Bounds returns the bounding box of the element id, and false if the
	// element hasn't been laid out yet.
	Bounds(id string) (Rect, bool)

	// Viewport returns the visible region.
	Viewport() Rect
}

type element struct {
	motion Motion
	state  State
	stop   func()
}

// Tracker owns the reveal State of every mounted element and keeps them in
// sync with an Observer and a Layout.
type Tracker struct {
	observer Observer
	layout   Layout
	onReveal func(id string, d Directive)

	mu       sync.Mutex
	elements map[string]*element
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithOnReveal registers fn to be called, outside the Tracker's lock, every
// time an element transitions to Revealed.
func WithOnReveal(fn func(id string, d Directive)) TrackerOption {
	return func(t *Tracker) {
		t.onReveal = fn
	}
}

// NewTracker returns a Tracker using observer for notifications and layout
// for the initial check. Either may be nil: without an observer elements
// only reveal through layout checks, without a layout only through
// notifications.
func NewTracker(observer Observer, layout Layout, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		observer: observer,
		layout:   layout,
		elements: map[string]*element{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Mount starts tracking the element id in the Hidden phase. If the element
// already intersects the viewport it reveals immediately, without waiting
// for a notification, and no subscription is made.
func (t *Tracker) Mount(ctx context.Context, id string, motion Motion) error {
	if id == "" {
		return ErrEmptyID
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	el := &element{motion: motion, state: NewState()}

	t.mu.Lock()
	if _, ok := t.elements[id]; ok {
		t.mu.Unlock()
		return fmt.Errorf("mount %q: %w", id, ErrAlreadyMounted)
	}
	t.elements[id] = el
	t.mu.Unlock()

	if t.checkLayout(id, el) {
		return nil
	}
	if t.observer == nil {
		return nil
	}

	// the observer may notify synchronously, so it must not be called
	// with the lock held
	stop, err := t.observer.Observe(id, ObserveOptions{Threshold: motion.threshold(), Once: true}, func(intersecting bool) {
		t.notify(id, el, intersecting)
	})
	if err != nil {
		t.mu.Lock()
		if t.elements[id] == el {
			delete(t.elements, id)
		}
		t.mu.Unlock()
		return fmt.Errorf("observe %q: %w", id, err)
	}

	t.mu.Lock()
	current := t.elements[id] == el
	if current && !el.state.Triggered() {
		el.stop = stop
		stop = nil
	}
	t.mu.Unlock()
	if stop != nil {
		// revealed or unmounted while subscribing
		stop()
	}
	return nil
}

// Unmount stops tracking the element id and releases its subscription. It
// is safe to call for unknown IDs and more than once.
func (t *Tracker) Unmount(id string) {
	t.mu.Lock()
	el, ok := t.elements[id]
	if ok {
		delete(t.elements, id)
	}
	var stop func()
	if el != nil {
		stop, el.stop = el.stop, nil
	}
	t.mu.Unlock()
	if stop != nil {
		stop()
	}
}

// Close unmounts every element.
func (t *Tracker) Close() {
	t.mu.Lock()
	ids := make([]string, 0, len(t.elements))
	for id := range t.elements {
		ids = append(ids, id)
	}
	t.mu.Unlock()
	for _, id := range ids {
		t.Unmount(id)
	}
}

// Relayout re-runs the layout check for every element that is still
// Hidden. Call it once layout has settled or the viewport has changed.
func (t *Tracker) Relayout() {
	t.mu.Lock()
	pending := map[string]*element{}
	for id, el := range t.elements {
		if !el.state.Triggered() {
			pending[id] = el
		}
	}
	t.mu.Unlock()
	for id, el := range pending {
		t.checkLayout(id, el)
	}
}

// Phase returns the phase of the element id, and false if it isn't mounted.
func (t *Tracker) Phase(id string) (Phase, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	el, ok := t.elements[id]
	if !ok {
		return Hidden, false
	}
	return el.state.Phase(), true
}

// Directive returns the current presentation of the element id, and false
// if it isn't mounted.
func (t *Tracker) Directive(id string) (Directive, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	el, ok := t.elements[id]
	if !ok {
		return Directive{}, false
	}
	return el.motion.Directive(el.state.Phase()), true
}

// checkLayout reveals el if the layout says it's in view, and reports
// whether it is now Revealed.
func (t *Tracker) checkLayout(id string, el *element) bool {
	if t.layout == nil {
		return false
	}
	bounds, ok := t.layout.Bounds(id)
	if !ok {
		return false
	}
	return t.notify(id, el, Intersects(bounds, t.layout.Viewport(), el.motion.threshold()))
}

// notify feeds an intersection sample to el, ignoring elements that have
// since been unmounted or replaced. It reports whether el is Revealed.
func (t *Tracker) notify(id string, el *element, intersecting bool) bool {
	t.mu.Lock()
	if t.elements[id] != el {
		t.mu.Unlock()
		return false
	}
	changed := el.state.Observe(intersecting)
	revealed := el.state.Phase() == Revealed
	var stop func()
	if changed {
		stop, el.stop = el.stop, nil
	}
	directive := el.motion.Directive(el.state.Phase())
	t.mu.Unlock()

	if stop != nil {
		stop()
	}
	if changed && t.onReveal != nil {
		t.onReveal(id, directive)
	}
	return revealed
}
