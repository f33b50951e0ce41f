package telemetry

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/pkg/viewport"
)

const (
	// DefaultStaleAfter is how long a view may go without reports or an open
	// stream before the janitor drops it.
	DefaultStaleAfter = 10 * time.Minute

	// Hard caps to keep the web process responsive even if someone opens
	// a silly number of tabs.
	maxStreamsPerView = 3
	maxTotalStreams   = 500
	maxViews          = 10000
)

// EventType distinguishes telemetry event kinds.
type EventType int

const (
	EventScroll EventType = iota
	EventReveal
)

// Event is a tracker change broadcast to a view's subscribers.
type Event struct {
	Typ     EventType
	View    string
	Region  string
	ScrollY float64
}

// Region declares one revealed block of a view.
type Region struct {
	Key     string
	Options *viewport.Options
}

// Entry is one intersection sample reported by the browser.
type Entry struct {
	Region string  `json:"region"`
	Ratio  float64 `json:"ratio"`
	// Intersecting is the browser's isIntersecting flag. When absent, any
	// positive ratio counts as intersecting.
	Intersecting *bool `json:"intersecting,omitempty"`
}

// Report is the body the browser posts for a view.
type Report struct {
	ScrollY *float64 `json:"scrollY,omitempty"`
	Entries []Entry  `json:"entries,omitempty"`
}

// Snapshot is the current tracker state of a view.
type Snapshot struct {
	ScrollY  float64
	Revealed map[string]bool
}

// Hub manages per-view viewport state and subscriber notifications.
type Hub struct {
	mu sync.Mutex

	views map[string]*view

	totalStreams int
	staleAfter   time.Duration
	now          func() time.Time
}

type view struct {
	window   *viewport.Window
	scroll   *viewport.ScrollTracker
	trackers map[string]*viewport.VisibilityTracker

	streams  int
	lastSeen time.Time
	subs     map[chan Event]struct{}
}

// NewHub creates a hub that forgets idle views after staleAfter.
func NewHub(staleAfter time.Duration) *Hub {
	if staleAfter <= 0 {
		staleAfter = DefaultStaleAfter
	}
	return &Hub{
		views:      make(map[string]*view),
		staleAfter: staleAfter,
		now:        time.Now,
	}
}

// Open registers a view with its regions. Opening a known view only marks it
// as seen. It returns false when the view limit is reached.
func (h *Hub) Open(id string, regions ...Region) bool {
	if h.touch(id) {
		return true
	}

	v := newView(h, id, regions)

	h.mu.Lock()
	if existing, ok := h.views[id]; ok {
		existing.lastSeen = h.now()
		h.mu.Unlock()
		v.close()
		return true
	}
	if len(h.views) >= maxViews {
		h.mu.Unlock()
		v.close()
		return false
	}
	v.lastSeen = h.now()
	h.views[id] = v
	h.mu.Unlock()
	return true
}

// newView wires a window and its trackers. Tracker callbacks look the view up
// by id, so nothing is delivered before the view is registered.
func newView(h *Hub, id string, regions []Region) *view {
	v := &view{
		window:   viewport.NewWindow(),
		trackers: make(map[string]*viewport.VisibilityTracker, len(regions)),
		subs:     make(map[chan Event]struct{}),
	}

	v.scroll = viewport.TrackScroll(v.window)
	v.scroll.OnChange(func(y float64) {
		h.broadcast(id, Event{Typ: EventScroll, View: id, ScrollY: y})
	})
	for _, r := range regions {
		tr := viewport.NewVisibilityTracker(v.window.NewObserver, r.Options)
		key := r.Key
		tr.OnChange(func(visible bool) {
			if visible {
				h.broadcast(id, Event{Typ: EventReveal, View: id, Region: key})
			}
		})
		tr.Attach(key)
		v.trackers[key] = tr
	}
	return v
}

// Report applies a browser report to the view. Unknown regions are ignored.
func (h *Hub) Report(id string, r Report) bool {
	h.mu.Lock()
	v, ok := h.views[id]
	if ok {
		v.lastSeen = h.now()
	}
	h.mu.Unlock()
	if !ok {
		return false
	}

	if r.ScrollY != nil {
		v.window.Scroll(*r.ScrollY)
	}
	for _, e := range r.Entries {
		intersecting := e.Ratio > 0
		if e.Intersecting != nil {
			intersecting = *e.Intersecting
		}
		v.window.Deliver(viewport.Entry{
			Region:            e.Region,
			IntersectionRatio: e.Ratio,
			IsIntersecting:    intersecting,
		})
	}
	return true
}

// Snapshot returns the view's scroll offset and the regions revealed so far.
func (h *Hub) Snapshot(id string) (Snapshot, bool) {
	h.mu.Lock()
	v, ok := h.views[id]
	h.mu.Unlock()
	if !ok {
		return Snapshot{}, false
	}

	snap := Snapshot{
		ScrollY:  v.scroll.Offset(),
		Revealed: make(map[string]bool, len(v.trackers)),
	}
	for k, tr := range v.trackers {
		snap.Revealed[k] = tr.Visible()
	}
	return snap, true
}

// Views returns the number of open views.
func (h *Hub) Views() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.views)
}

// AcquireStream attempts to reserve an SSE slot for the given view.
func (h *Hub) AcquireStream(id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.totalStreams >= maxTotalStreams {
		return false
	}

	v, ok := h.views[id]
	if !ok || v.streams >= maxStreamsPerView {
		return false
	}

	v.streams++
	v.lastSeen = h.now()
	h.totalStreams++
	return true
}

// ReleaseStream frees an SSE slot for the given view.
func (h *Hub) ReleaseStream(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if v, ok := h.views[id]; ok {
		if v.streams > 0 {
			v.streams--
		}
		v.lastSeen = h.now()
	}
	if h.totalStreams > 0 {
		h.totalStreams--
	}
}

// Touch marks the view as seen.
func (h *Hub) Touch(id string) {
	h.touch(id)
}

func (h *Hub) touch(id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	v, ok := h.views[id]
	if ok {
		v.lastSeen = h.now()
	}
	return ok
}

// Subscribe returns a channel that receives the view's events, and an
// unsubscribe function. The channel is closed when the view is pruned.
func (h *Hub) Subscribe(id string) (<-chan Event, func(), bool) {
	ch := make(chan Event, 32)

	h.mu.Lock()
	v, ok := h.views[id]
	if !ok {
		h.mu.Unlock()
		return nil, func() {}, false
	}
	v.subs[ch] = struct{}{}
	h.mu.Unlock()

	unsubscribe := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		v, ok := h.views[id]
		if !ok {
			return
		}
		if _, ok := v.subs[ch]; ok {
			delete(v.subs, ch)
			close(ch)
		}
	}

	return ch, unsubscribe, true
}

func (h *Hub) broadcast(id string, evt Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	v, ok := h.views[id]
	if !ok {
		return
	}
	for sub := range v.subs {
		select {
		case sub <- evt:
		default:
			// Drop rather than block the webserver.
		}
	}
}

// PruneStale drops views with no open stream that have not been seen within
// the stale threshold. It returns the number removed.
func (h *Hub) PruneStale(now time.Time) int {
	var dead []*view

	h.mu.Lock()
	for id, v := range h.views {
		if v.streams > 0 || now.Sub(v.lastSeen) <= h.staleAfter {
			continue
		}
		delete(h.views, id)
		for sub := range v.subs {
			delete(v.subs, sub)
			close(sub)
		}
		dead = append(dead, v)
	}
	h.mu.Unlock()

	for _, v := range dead {
		v.close()
	}
	return len(dead)
}

// RunJanitor prunes stale views every interval until ctx is done.
func (h *Hub) RunJanitor(ctx context.Context, every time.Duration) error {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := h.PruneStale(h.now()); n > 0 {
				slog.Debug("pruned stale views", "removed", n)
			}
		}
	}
}

func (v *view) close() {
	v.scroll.Close()
	for _, tr := range v.trackers {
		tr.Close()
	}
}
