package model

import "fmt"

// Store is the ordered surface collection. Iteration order is
// insertion order, which makes every pass over the model
// deterministic. The split and match passes mutate the store only by
// removing a record and appending its replacements.
type Store struct {
	surfaces []*Surface
	byName   map[string]*Surface
}

// NewStore returns an empty surface collection.
func NewStore() *Store {
	return &Store{byName: make(map[string]*Surface)}
}

// Add appends a surface. Names must be unique within the store.
func (st *Store) Add(s *Surface) error {
	if s.Name == "" {
		return fmt.Errorf("model: surface must have a name")
	}
	if _, ok := st.byName[s.Name]; ok {
		return fmt.Errorf("model: duplicate surface name %q", s.Name)
	}
	st.surfaces = append(st.surfaces, s)
	st.byName[s.Name] = s
	return nil
}

// Remove deletes a surface by identity. It reports whether the
// surface was present.
func (st *Store) Remove(s *Surface) bool {
	for i, cur := range st.surfaces {
		if cur == s {
			st.surfaces = append(st.surfaces[:i], st.surfaces[i+1:]...)
			delete(st.byName, s.Name)
			return true
		}
	}
	return false
}

// Get returns the surface with the given name, or nil.
func (st *Store) Get(name string) *Surface {
	return st.byName[name]
}

// Surfaces returns surfaces in insertion order. With no arguments it
// returns every surface; otherwise only those of the given types.
func (st *Store) Surfaces(types ...SurfaceType) []*Surface {
	if len(types) == 0 {
		return append([]*Surface(nil), st.surfaces...)
	}
	want := make(map[SurfaceType]bool, len(types))
	for _, t := range types {
		want[t] = true
	}
	var out []*Surface
	for _, s := range st.surfaces {
		if want[s.Type] {
			out = append(out, s)
		}
	}
	return out
}

// Len returns the number of surfaces in the store.
func (st *Store) Len() int {
	return len(st.surfaces)
}
