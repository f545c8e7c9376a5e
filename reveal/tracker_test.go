package reveal_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"impractical.co/elysion/reveal"
)

// fakeSurface is an Observer and Layout backed by maps.
type fakeSurface struct {
	mu        sync.Mutex
	viewport  reveal.Rect
	bounds    map[string]reveal.Rect
	notify    map[string]func(bool)
	options   map[string]reveal.ObserveOptions
	stops     map[string]int
	observeFn func(id string) error
	// fireOnObserve makes Observe notify synchronously, like a surface
	// that reports the current status as soon as you subscribe.
	fireOnObserve map[string]bool
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{
		viewport:      reveal.Rect{Width: 1280, Height: 720},
		bounds:        map[string]reveal.Rect{},
		notify:        map[string]func(bool){},
		options:       map[string]reveal.ObserveOptions{},
		stops:         map[string]int{},
		fireOnObserve: map[string]bool{},
	}
}

func (f *fakeSurface) Observe(id string, opts reveal.ObserveOptions, notify func(bool)) (func(), error) {
	if f.observeFn != nil {
		if err := f.observeFn(id); err != nil {
			return nil, err
		}
	}
	f.mu.Lock()
	f.notify[id] = notify
	f.options[id] = opts
	fire, intersecting := f.fireOnObserve[id]
	f.mu.Unlock()
	if fire {
		notify(intersecting)
	}
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.stops[id]++
		delete(f.notify, id)
	}, nil
}

func (f *fakeSurface) Bounds(id string) (reveal.Rect, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.bounds[id]
	return r, ok
}

func (f *fakeSurface) Viewport() reveal.Rect {
	return f.viewport
}

// fire delivers a notification the way a surface would, including to
// subscriptions the tracker has already released.
func (f *fakeSurface) fire(id string, intersecting bool) bool {
	f.mu.Lock()
	fn, ok := f.notify[id]
	f.mu.Unlock()
	if ok {
		fn(intersecting)
	}
	return ok
}

func (f *fakeSurface) subscribed(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.notify[id]
	return ok
}

func (f *fakeSurface) stopCount(id string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stops[id]
}

func TestTrackerRevealsOnIntersection(t *testing.T) {
	t.Parallel()

	surface := newFakeSurface()
	surface.bounds["card-0"] = reveal.Rect{Y: 2000, Width: 400, Height: 300}
	var revealed []string
	tracker := reveal.NewTracker(surface, surface, reveal.WithOnReveal(func(id string, d reveal.Directive) {
		revealed = append(revealed, id)
		assert.Equal(t, 1.0, d.Opacity)
	}))

	require.NoError(t, tracker.Mount(context.Background(), "card-0", reveal.Rise(40, 0)))
	phase, ok := tracker.Phase("card-0")
	require.True(t, ok)
	assert.Equal(t, reveal.Hidden, phase)
	assert.True(t, surface.subscribed("card-0"))
	assert.Equal(t, reveal.ObserveOptions{Once: true}, surface.options["card-0"])

	d, ok := tracker.Directive("card-0")
	require.True(t, ok)
	assert.Equal(t, 0.0, d.Opacity)
	assert.Equal(t, 40.0, d.TranslateY)

	surface.fire("card-0", false)
	phase, _ = tracker.Phase("card-0")
	assert.Equal(t, reveal.Hidden, phase)

	surface.fire("card-0", true)
	phase, _ = tracker.Phase("card-0")
	assert.Equal(t, reveal.Revealed, phase)
	assert.Equal(t, []string{"card-0"}, revealed)
	assert.False(t, surface.subscribed("card-0"), "subscription is released once revealed")
	assert.Equal(t, 1, surface.stopCount("card-0"))
}

func TestTrackerStaysRevealed(t *testing.T) {
	t.Parallel()

	surface := newFakeSurface()
	var calls int
	tracker := reveal.NewTracker(surface, nil, reveal.WithOnReveal(func(string, reveal.Directive) { calls++ }))
	require.NoError(t, tracker.Mount(context.Background(), "about-copy", reveal.Slide(30, 0)))

	// keep the callback around so late notifications can be delivered
	surface.mu.Lock()
	late := surface.notify["about-copy"]
	surface.mu.Unlock()

	surface.fire("about-copy", true)
	late(false)
	late(true)
	late(false)

	phase, _ := tracker.Phase("about-copy")
	assert.Equal(t, reveal.Revealed, phase)
	assert.Equal(t, 1, calls)
	d, _ := tracker.Directive("about-copy")
	assert.Equal(t, reveal.Directive{Opacity: 1, Duration: reveal.DefaultDuration, Easing: reveal.DefaultEasing}, d)
}

func TestTrackerRevealsAtMountWhenAlreadyVisible(t *testing.T) {
	t.Parallel()

	surface := newFakeSurface()
	surface.bounds["about-header"] = reveal.Rect{X: 100, Y: 100, Width: 600, Height: 200}
	tracker := reveal.NewTracker(surface, surface)

	require.NoError(t, tracker.Mount(context.Background(), "about-header", reveal.Rise(30, 0)))

	phase, ok := tracker.Phase("about-header")
	require.True(t, ok)
	assert.Equal(t, reveal.Revealed, phase, "no scroll event should be needed")
	assert.False(t, surface.subscribed("about-header"))
}

func TestTrackerZeroAreaWaitsForLayout(t *testing.T) {
	t.Parallel()

	surface := newFakeSurface()
	surface.bounds["img"] = reveal.Rect{X: 100, Y: 100}
	tracker := reveal.NewTracker(surface, surface)
	require.NoError(t, tracker.Mount(context.Background(), "img", reveal.Rise(30, 0)))

	phase, _ := tracker.Phase("img")
	assert.Equal(t, reveal.Hidden, phase)

	surface.mu.Lock()
	surface.bounds["img"] = reveal.Rect{X: 100, Y: 100, Width: 400, Height: 300}
	surface.mu.Unlock()
	tracker.Relayout()

	phase, _ = tracker.Phase("img")
	assert.Equal(t, reveal.Revealed, phase)
	assert.Equal(t, 1, surface.stopCount("img"))
}

func TestTrackerSynchronousNotification(t *testing.T) {
	t.Parallel()

	surface := newFakeSurface()
	surface.fireOnObserve["closing"] = true
	tracker := reveal.NewTracker(surface, nil)

	require.NoError(t, tracker.Mount(context.Background(), "closing", reveal.Rise(20, 0)))

	phase, _ := tracker.Phase("closing")
	assert.Equal(t, reveal.Revealed, phase)
	assert.Equal(t, 1, surface.stopCount("closing"))
}

func TestTrackerUnmountIsIdempotent(t *testing.T) {
	t.Parallel()

	surface := newFakeSurface()
	tracker := reveal.NewTracker(surface, nil)
	require.NoError(t, tracker.Mount(context.Background(), "card-1", reveal.Rise(40, 0)))

	surface.mu.Lock()
	late := surface.notify["card-1"]
	surface.mu.Unlock()

	tracker.Unmount("card-1")
	tracker.Unmount("card-1")
	tracker.Unmount("never-mounted")

	assert.Equal(t, 1, surface.stopCount("card-1"))
	_, ok := tracker.Phase("card-1")
	assert.False(t, ok)

	// a notification racing the unmount must not resurrect the element
	assert.NotPanics(t, func() { late(true) })
	_, ok = tracker.Phase("card-1")
	assert.False(t, ok)
}

func TestTrackerUnmountWithoutSubscription(t *testing.T) {
	t.Parallel()

	tracker := reveal.NewTracker(nil, nil)
	require.NoError(t, tracker.Mount(context.Background(), "static", reveal.Rise(30, 0)))
	assert.NotPanics(t, func() {
		tracker.Unmount("static")
		tracker.Close()
	})
}

func TestTrackerRemountStartsHidden(t *testing.T) {
	t.Parallel()

	surface := newFakeSurface()
	tracker := reveal.NewTracker(surface, nil)
	ctx := context.Background()

	require.NoError(t, tracker.Mount(ctx, "card-0", reveal.Rise(40, 0)))
	surface.fire("card-0", true)
	tracker.Unmount("card-0")

	require.NoError(t, tracker.Mount(ctx, "card-0", reveal.Rise(40, 0)))
	phase, _ := tracker.Phase("card-0")
	assert.Equal(t, reveal.Hidden, phase)
}

func TestTrackerMountErrors(t *testing.T) {
	t.Parallel()

	surface := newFakeSurface()
	tracker := reveal.NewTracker(surface, nil)
	ctx := context.Background()

	assert.ErrorIs(t, tracker.Mount(ctx, "", reveal.Rise(30, 0)), reveal.ErrEmptyID)

	require.NoError(t, tracker.Mount(ctx, "dup", reveal.Rise(30, 0)))
	assert.ErrorIs(t, tracker.Mount(ctx, "dup", reveal.Rise(30, 0)), reveal.ErrAlreadyMounted)

	errSurface := errors.New("surface gone")
	surface.observeFn = func(string) error { return errSurface }
	assert.ErrorIs(t, tracker.Mount(ctx, "broken", reveal.Rise(30, 0)), errSurface)
	_, ok := tracker.Phase("broken")
	assert.False(t, ok, "failed mounts are not tracked")

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.ErrorIs(t, tracker.Mount(cancelled, "late", reveal.Rise(30, 0)), context.Canceled)
}

func TestTrackerThresholdIsPassedThrough(t *testing.T) {
	t.Parallel()

	surface := newFakeSurface()
	surface.bounds["half"] = reveal.Rect{Y: 670, Width: 100, Height: 100}
	tracker := reveal.NewTracker(surface, surface)

	m := reveal.Rise(30, 0)
	m.Threshold = 0.75
	require.NoError(t, tracker.Mount(context.Background(), "half", m))

	phase, _ := tracker.Phase("half")
	assert.Equal(t, reveal.Hidden, phase, "half visible is below the threshold")
	assert.Equal(t, 0.75, surface.options["half"].Threshold)
}

func TestTrackerClose(t *testing.T) {
	t.Parallel()

	surface := newFakeSurface()
	tracker := reveal.NewTracker(surface, nil)
	ctx := context.Background()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, tracker.Mount(ctx, id, reveal.Rise(30, 0)))
	}
	tracker.Close()
	for _, id := range []string{"a", "b", "c"} {
		assert.Equal(t, 1, surface.stopCount(id))
		assert.False(t, surface.subscribed(id))
	}
}
