package viewport

import "sync"

// NavbarScrollThreshold is the offset past which the navigation bar switches
// to its solid background.
const NavbarScrollThreshold = 10

// Scrolled reports whether offset is past the navbar threshold.
func Scrolled(offset float64) bool {
	return offset > NavbarScrollThreshold
}

// ScrollTracker mirrors a ScrollSource's offset. Every notification is
// applied as it arrives; nothing is debounced.
type ScrollTracker struct {
	mu       sync.Mutex
	offset   float64
	remove   func()
	onChange []func(float64)
}

// TrackScroll reads src immediately and then follows it until Close.
func TrackScroll(src ScrollSource) *ScrollTracker {
	t := &ScrollTracker{}
	t.mu.Lock()
	t.remove = src.OnScroll(t.update)
	t.offset = src.ScrollY()
	t.mu.Unlock()
	return t
}

// Offset returns the latest vertical offset in pixels.
func (t *ScrollTracker) Offset() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.offset
}

// OnChange registers fn for every update.
func (t *ScrollTracker) OnChange(fn func(offset float64)) {
	t.mu.Lock()
	t.onChange = append(t.onChange, fn)
	t.mu.Unlock()
}

// Close releases the subscription. Later scrolls are not seen.
func (t *ScrollTracker) Close() {
	t.mu.Lock()
	remove := t.remove
	t.remove = nil
	t.mu.Unlock()

	if remove != nil {
		remove()
	}
}

func (t *ScrollTracker) update(y float64) {
	t.mu.Lock()
	if t.remove == nil {
		t.mu.Unlock()
		return
	}
	t.offset = y
	fns := append([]func(float64){}, t.onChange...)
	t.mu.Unlock()

	for _, fn := range fns {
		fn(y)
	}
}
