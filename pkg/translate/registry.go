package translate

import (
	"cmp"
	"slices"
	"sync"
)

// Registry holds all registered matchers.
type Registry struct {
	mu      sync.RWMutex
	byID    map[string]Matcher
	byName  map[string]Matcher
	aliases map[string]string // alias -> canonical ID
}

// NewRegistry creates an empty matcher registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:    make(map[string]Matcher),
		byName:  make(map[string]Matcher),
		aliases: make(map[string]string),
	}
}

// Register adds a matcher to the registry.
// If a matcher with the same ID already exists, it is replaced.
func (r *Registry) Register(m Matcher) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[m.ID()] = m
	r.byName[m.Name()] = m
}

// RegisterAlias maps an alias to a canonical matcher ID.
// Used for the clang hipify binding names (e.g., "cudaLaunchKernel" -> "CH008").
func (r *Registry) RegisterAlias(alias, matcherID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases[alias] = matcherID
}

// Get retrieves a matcher by ID or name.
// It tries ID first, then falls back to name lookup.
func (r *Registry) Get(key string) (Matcher, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Try ID first
	if m, ok := r.byID[key]; ok {
		return m, true
	}
	// Fall back to name
	if m, ok := r.byName[key]; ok {
		return m, true
	}
	return nil, false
}

// GetByID retrieves a matcher by its ID only.
func (r *Registry) GetByID(id string) (Matcher, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.byID[id]
	return m, ok
}

// GetByName retrieves a matcher by its name only.
func (r *Registry) GetByName(name string) (Matcher, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.byName[name]
	return m, ok
}

// Resolve returns the canonical ID and matcher for a given key.
// The key can be a matcher ID, name, or alias.
// Returns (id, matcher, found).
func (r *Registry) Resolve(key string) (string, Matcher, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Try ID first
	if m, ok := r.byID[key]; ok {
		return m.ID(), m, true
	}
	// Try name
	if m, ok := r.byName[key]; ok {
		return m.ID(), m, true
	}
	// Try alias
	if targetID, ok := r.aliases[key]; ok {
		if m, ok := r.byID[targetID]; ok {
			return m.ID(), m, true
		}
	}
	return "", nil, false
}

// Matchers returns all registered matchers.
func (r *Registry) Matchers() []Matcher {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Matcher, 0, len(r.byID))
	for _, m := range r.byID {
		result = append(result, m)
	}

	// Sort by matcher ID for consistent, deterministic output.
	slices.SortFunc(result, func(a, b Matcher) int {
		return cmp.Compare(a.ID(), b.ID())
	})

	return result
}

// IDs returns all registered matcher IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.byID))
	for id := range r.byID {
		result = append(result, id)
	}

	slices.Sort(result)
	return result
}

// DefaultRegistry is the global registry for built-in matchers.
// Matchers register themselves during init().
//
//nolint:gochecknoglobals // Global registry is intentional for matcher registration
var DefaultRegistry = NewRegistry()
