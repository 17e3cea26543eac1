// Package headers accumulates which architectures produced each configure
// header and synthesizes the umbrella headers dispatching between them.
package headers

import "sort"

// Guard is the preprocessor wrapper one architecture contributed for a
// header filename.
type Guard struct {
	Prefix string
	Arch   string
	Suffix string
}

// Registry maps a header filename to the set of guards recorded for it
// across all built targets of one generation run. It is owned by the driver
// and threaded through the target builds; it is never persisted.
type Registry map[string]map[Guard]struct{}

// NewRegistry returns an empty registry.
func NewRegistry() Registry {
	return make(Registry)
}

// Record notes that the architecture behind guard produced name. Recording
// the same pair twice is a no-op.
func (r Registry) Record(name string, g Guard) {
	set, ok := r[name]
	if !ok {
		set = make(map[Guard]struct{})
		r[name] = set
	}
	set[g] = struct{}{}
}

// Names returns every recorded header filename, sorted.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Guards returns the guards recorded for name, sorted by architecture so
// generated output is stable across runs.
func (r Registry) Guards(name string) []Guard {
	set := r[name]
	guards := make([]Guard, 0, len(set))
	for g := range set {
		guards = append(guards, g)
	}
	sort.Slice(guards, func(i, j int) bool { return guards[i].Arch < guards[j].Arch })
	return guards
}
