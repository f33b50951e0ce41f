// Package viewport models the parts of a browser viewport the site reacts to:
// the vertical scroll offset and the visible fraction of tracked regions.
//
// A Window is the event source. Browsers report what they see and the Window
// dispatches it synchronously to whoever subscribed: scroll listeners and
// intersection observers. VisibilityTracker and ScrollTracker are the two
// consumers the screens use.
package viewport

import "sync"

// Entry is one intersection observation for a region.
type Entry struct {
	Region            string
	IntersectionRatio float64
	IsIntersecting    bool
}

// Observer watches regions and reports entries to the callback it was
// created with. It mirrors the browser IntersectionObserver surface.
type Observer interface {
	Observe(region string)
	Unobserve(region string)
	Disconnect()
}

// ObserverFactory creates an Observer bound to opts that reports to cb.
type ObserverFactory func(opts Options, cb func(Entry)) Observer

// ScrollSource is anything that reports a vertical scroll offset and notifies
// on change.
type ScrollSource interface {
	ScrollY() float64
	OnScroll(fn func(y float64)) (remove func())
}

// Window is the in-process state of one viewport.
type Window struct {
	mu sync.Mutex

	scrollY   float64
	nextID    int
	listeners map[int]func(float64)
	observers map[*windowObserver]struct{}
}

// NewWindow returns a window scrolled to the top with nothing observed.
func NewWindow() *Window {
	return &Window{
		listeners: make(map[int]func(float64)),
		observers: make(map[*windowObserver]struct{}),
	}
}

// ScrollY returns the current vertical offset in pixels.
func (w *Window) ScrollY() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.scrollY
}

// OnScroll registers fn for every scroll notification. The returned func
// removes it and is safe to call more than once.
func (w *Window) OnScroll(fn func(y float64)) func() {
	w.mu.Lock()
	id := w.nextID
	w.nextID++
	w.listeners[id] = fn
	w.mu.Unlock()

	return func() {
		w.mu.Lock()
		delete(w.listeners, id)
		w.mu.Unlock()
	}
}

// Scroll records a new offset and notifies every scroll listener in turn.
// The offset is kept as reported, including negative overscroll values.
func (w *Window) Scroll(y float64) {
	w.mu.Lock()
	w.scrollY = y
	fns := make([]func(float64), 0, len(w.listeners))
	for _, fn := range w.listeners {
		fns = append(fns, fn)
	}
	w.mu.Unlock()

	for _, fn := range fns {
		fn(y)
	}
}

// Intersect reports the visible fraction of region, counting any positive
// ratio as intersecting. Use Deliver when the intersecting flag is known.
func (w *Window) Intersect(region string, ratio float64) {
	w.Deliver(Entry{Region: region, IntersectionRatio: ratio, IsIntersecting: ratio > 0})
}

// Deliver sends e to the observers currently watching e.Region; everyone
// else ignores it. A region touching the viewport edge arrives with a zero
// ratio and IsIntersecting set.
func (w *Window) Deliver(e Entry) {
	switch {
	case e.IntersectionRatio < 0:
		e.IntersectionRatio = 0
	case e.IntersectionRatio > 1:
		e.IntersectionRatio = 1
	}

	w.mu.Lock()
	var cbs []func(Entry)
	for o := range w.observers {
		if _, ok := o.regions[e.Region]; ok {
			cbs = append(cbs, o.cb)
		}
	}
	w.mu.Unlock()

	for _, cb := range cbs {
		cb(e)
	}
}

// NewObserver is an ObserverFactory backed by this window. Root and
// RootMargin are carried for the browser side; the window itself always
// measures against the viewport.
func (w *Window) NewObserver(opts Options, cb func(Entry)) Observer {
	o := &windowObserver{
		w:       w,
		opts:    opts,
		cb:      cb,
		regions: make(map[string]struct{}),
	}
	w.mu.Lock()
	w.observers[o] = struct{}{}
	w.mu.Unlock()
	return o
}

// Observers returns how many observers are connected. Used by tests and the
// hub's stale checks.
func (w *Window) Observers() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.observers)
}

type windowObserver struct {
	w       *Window
	opts    Options
	cb      func(Entry)
	regions map[string]struct{}
}

func (o *windowObserver) Observe(region string) {
	o.w.mu.Lock()
	o.regions[region] = struct{}{}
	o.w.mu.Unlock()
}

func (o *windowObserver) Unobserve(region string) {
	o.w.mu.Lock()
	delete(o.regions, region)
	o.w.mu.Unlock()
}

func (o *windowObserver) Disconnect() {
	o.w.mu.Lock()
	delete(o.w.observers, o)
	clear(o.regions)
	o.w.mu.Unlock()
}
