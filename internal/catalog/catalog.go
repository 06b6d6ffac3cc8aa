// Package catalog holds the fixed service catalog rendered on the services
// pages. The data is compiled in: it changes with releases, not at runtime,
// so there is nothing to persist or cache.
package catalog

// Service describes a single offering on the services pages.
type Service struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Icon        string   `json:"icon"`
	Price       string   `json:"price"`
	Duration    string   `json:"duration"`
	Category    string   `json:"category"`
}

// Category groups services for filtering on the frontend.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Services returns all offerings in display order. Callers receive a copy
// and may not mutate catalog state.
func Services() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

// ServicesByCategory returns the offerings in the given category, in display
// order. An unknown category yields an empty slice.
func ServicesByCategory(category string) []Service {
	var out []Service
	for _, s := range services {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// ServiceByID returns the offering with the given id, or false when no such
// offering exists.
func ServiceByID(id string) (Service, bool) {
	for _, s := range services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// Categories returns the category list in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}
