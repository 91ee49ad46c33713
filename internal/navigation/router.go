package navigation

import (
	"path"
	"slices"
	"strings"
	"sync"
)

const (
	RouteHome      = "/"
	RouteAbout     = "/about"
	RouteMenu      = "/menu"
	RouteBooking   = "/booking"
	RouteConfirmed = "/confirmed"
	RouteOrder     = "/order"
	RouteLogin     = "/login"
)

// Normalize cleans p into the form routes are registered with: rooted, no
// trailing slash, no dot segments.
func Normalize(p string) string {
	if p == "" {
		return RouteHome
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

// Router tracks the current page of one visitor. Navigate is the only active
// mutator; Sync follows a location reported by the browser (back/forward)
// without adding history.
type Router struct {
	mu        sync.RWMutex
	current   string
	history   []string
	listeners map[int]func(string)
	nextID    int
}

func NewRouter(initial string) *Router {
	return &Router{
		current:   Normalize(initial),
		listeners: map[int]func(string){},
	}
}

func (r *Router) Path() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

func (r *Router) Navigate(p string) {
	p = Normalize(p)

	r.mu.Lock()
	r.current = p
	r.history = append(r.history, p)
	listeners := r.snapshotListeners()
	r.mu.Unlock()

	notify(listeners, p)
}

// Sync reports whether the current path changed.
func (r *Router) Sync(p string) bool {
	p = Normalize(p)

	r.mu.Lock()
	if r.current == p {
		r.mu.Unlock()
		return false
	}
	r.current = p
	listeners := r.snapshotListeners()
	r.mu.Unlock()

	notify(listeners, p)
	return true
}

// History lists the entries pushed by Navigate, oldest first.
func (r *Router) History() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.history)
}

// Subscribe registers fn to run after every path change.
func (r *Router) Subscribe(fn func(path string)) (unsubscribe func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	r.listeners[id] = fn
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.listeners, id)
	}
}

func (r *Router) snapshotListeners() []func(string) {
	ids := make([]int, 0, len(r.listeners))
	for id := range r.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	out := make([]func(string), 0, len(ids))
	for _, id := range ids {
		out = append(out, r.listeners[id])
	}
	return out
}

func notify(listeners []func(string), p string) {
	for _, fn := range listeners {
		fn(p)
	}
}
