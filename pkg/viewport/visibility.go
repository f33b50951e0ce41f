package viewport

import "sync"

// DefaultThreshold is the visible fraction a region needs before it counts as
// entered.
const DefaultThreshold = 0.1

// Options configures intersection observation. The zero value of Root means
// the viewport.
type Options struct {
	Root       string
	RootMargin string
	Threshold  float64
}

// DefaultOptions returns root = viewport, margin = 0px, threshold = 0.1.
func DefaultOptions() *Options {
	return &Options{
		RootMargin: "0px",
		Threshold:  DefaultThreshold,
	}
}

// VisibilityTracker flips a flag from false to true the first time its
// region becomes visible enough, then stops observing. The flag never goes
// back to false.
type VisibilityTracker struct {
	mu sync.Mutex

	factory  ObserverFactory
	opts     *Options
	observer Observer
	region   string
	attached bool
	visible  bool
	onChange []func(bool)
}

// NewVisibilityTracker returns a tracker that builds observers with factory.
// A nil opts uses DefaultOptions.
func NewVisibilityTracker(factory ObserverFactory, opts *Options) *VisibilityTracker {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &VisibilityTracker{
		factory: factory,
		opts:    opts,
	}
}

// Visible reports whether the region has been seen.
func (t *VisibilityTracker) Visible() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visible
}

// Region returns the attached region, or "" when detached.
func (t *VisibilityTracker) Region() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.attached {
		return ""
	}
	return t.region
}

// OnChange registers fn to run once, synchronously, when the flag flips.
func (t *VisibilityTracker) OnChange(fn func(visible bool)) {
	t.mu.Lock()
	t.onChange = append(t.onChange, fn)
	t.mu.Unlock()
}

// Attach starts observing region. Attaching while already attached moves the
// tracker to the new region.
func (t *VisibilityTracker) Attach(region string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.teardownLocked()
	t.region = region
	t.attached = true
	t.connectLocked()
}

// Detach stops observing. The flag keeps whatever value it had.
func (t *VisibilityTracker) Detach() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.teardownLocked()
	t.attached = false
	t.region = ""
}

// SetOptions swaps the observer configuration. Options are compared by
// identity: passing a different pointer, even with equal fields, re-creates
// the observer against the same region.
func (t *VisibilityTracker) SetOptions(opts *Options) {
	if opts == nil {
		opts = DefaultOptions()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if opts == t.opts {
		return
	}
	t.opts = opts
	if t.attached {
		t.teardownLocked()
		t.connectLocked()
	}
}

// Close is Detach.
func (t *VisibilityTracker) Close() {
	t.Detach()
}

func (t *VisibilityTracker) connectLocked() {
	if t.visible || t.factory == nil {
		return
	}
	opts := *t.opts
	var obs Observer
	obs = t.factory(opts, func(e Entry) { t.handle(obs, e) })
	t.observer = obs
	obs.Observe(t.region)
}

func (t *VisibilityTracker) teardownLocked() {
	if t.observer == nil {
		return
	}
	t.observer.Unobserve(t.region)
	t.observer.Disconnect()
	t.observer = nil
}

func (t *VisibilityTracker) handle(from Observer, e Entry) {
	t.mu.Lock()
	// Entries from an observer that has since been replaced are stale.
	if from != t.observer || t.visible || e.Region != t.region {
		t.mu.Unlock()
		return
	}
	if !e.IsIntersecting || e.IntersectionRatio < t.opts.Threshold {
		t.mu.Unlock()
		return
	}

	t.visible = true
	t.teardownLocked()
	fns := append([]func(bool){}, t.onChange...)
	t.mu.Unlock()

	for _, fn := range fns {
		fn(true)
	}
}
