package pathcfg

// Registry is a named table of Config pointers, built once per layer (or
// once per print, for configs that never vary by layer) before planning
// starts. Per spec, the registry is read-only once planning begins: build
// it fully with Register, then hand it to the planner and stop mutating it.
// Registry is not safe for concurrent mutation; it does not need to be,
// since nothing in this module mutates one after construction.
type Registry struct {
	byName map[string]*Config
	order  []string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Config)}
}

// Register adds cfg under name. It returns ErrDuplicateName if name was
// already registered, preserving the "one Config instance per role"
// invariant the identity-equality rule depends on.
func (r *Registry) Register(name string, cfg *Config) error {
	if _, exists := r.byName[name]; exists {
		return ErrDuplicateName
	}
	r.byName[name] = cfg
	r.order = append(r.order, name)
	return nil
}

// Get returns the Config registered under name, or ErrUnknownName.
func (r *Registry) Get(name string) (*Config, error) {
	cfg, exists := r.byName[name]
	if !exists {
		return nil, ErrUnknownName
	}
	return cfg, nil
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
