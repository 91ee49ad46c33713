package navigation

import "fmt"

// Registry maps each route to exactly one view.
type Registry[V any] struct {
	views map[string]V
	order []string
}

func NewRegistry[V any]() *Registry[V] {
	return &Registry[V]{views: map[string]V{}}
}

// Register panics on a duplicate path; routes are wired once at startup.
func (r *Registry[V]) Register(path string, view V) *Registry[V] {
	path = Normalize(path)
	if _, dup := r.views[path]; dup {
		panic(fmt.Sprintf("navigation: route %q registered twice", path))
	}
	r.views[path] = view
	r.order = append(r.order, path)
	return r
}

// Resolve returns the view for path. An unknown path is reported with false,
// never an error; callers decide on the fallback.
func (r *Registry[V]) Resolve(path string) (V, bool) {
	v, ok := r.views[Normalize(path)]
	return v, ok
}

func (r *Registry[V]) Paths() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
