package codegen

// Registry keeps synthesizers in the order they run
type Registry struct {
	order        []string
	synthesizers map[string]Synthesizer
}

// NewRegistry creates a new synthesizer registry
func NewRegistry() *Registry {
	r := &Registry{
		synthesizers: make(map[string]Synthesizer),
	}
	return r
}

// Register adds a synthesizer. Registering an existing name replaces it in place.
func (r *Registry) Register(s Synthesizer) {
	name := s.Name()
	if _, exists := r.synthesizers[name]; !exists {
		r.order = append(r.order, name)
	}
	r.synthesizers[name] = s
}

// Names returns the registered synthesizer names in run order
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Synthesizers returns the registered synthesizers in run order
func (r *Registry) Synthesizers() []Synthesizer {
	out := make([]Synthesizer, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.synthesizers[name])
	}
	return out
}
