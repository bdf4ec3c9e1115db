package menu

// Registry exposes lookup utilities for the main menu definitions.
type Registry struct {
	options []Option
	byID    map[string]Option
}

// BuildRegistry indexes the main menu options by item ID.
func BuildRegistry() *Registry {
	options := Options()
	byID := make(map[string]Option, len(options))
	for _, opt := range options {
		byID[opt.Kind.ID()] = opt
	}
	return &Registry{options: options, byID: byID}
}

// Items returns the navigator entries in display order.
func (r *Registry) Items() []Item {
	items := make([]Item, 0, len(r.options))
	for _, opt := range r.options {
		items = append(items, opt.Item())
	}
	return items
}

// Find locates an option by item ID.
func (r *Registry) Find(id string) (Option, bool) {
	opt, ok := r.byID[id]
	return opt, ok
}
