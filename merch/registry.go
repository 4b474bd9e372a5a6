package merch

import (
	"fmt"
	"sync"

	"github.com/galaplate/creational/logger"
)

// Constructor builds a fresh factory for a brand.
type Constructor func() Factory

// Registry maps brands to factory constructors and tracks a default brand.
type Registry struct {
	mu           sync.RWMutex
	defaultBrand Brand
	constructors map[Brand]Constructor
}

// NewRegistry creates an empty registry.
func NewRegistry(defaultBrand Brand) *Registry {
	return &Registry{
		defaultBrand: defaultBrand,
		constructors: make(map[Brand]Constructor),
	}
}

// DefaultRegistry returns a registry holding every known brand with Endava as default.
func DefaultRegistry() *Registry {
	r := NewRegistry(Endava)
	r.Register(Harman, NewHarmanFactory)
	r.Register(Endava, NewEndavaFactory)
	return r
}

func (r *Registry) Register(brand Brand, ctor Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.constructors[brand] = ctor
}

// Factory builds the factory registered for brand.
func (r *Registry) Factory(brand Brand) (Factory, error) {
	r.mu.RLock()
	ctor, exists := r.constructors[brand]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBrand, string(brand))
	}
	return ctor(), nil
}

// Default builds the factory of the default brand.
func (r *Registry) Default() (Factory, error) {
	r.mu.RLock()
	brand := r.defaultBrand
	r.mu.RUnlock()

	return r.Factory(brand)
}

func (r *Registry) DefaultBrand() Brand {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultBrand
}

// SetDefault changes the default brand. The brand must be registered.
func (r *Registry) SetDefault(brand Brand) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.constructors[brand]; !exists {
		return fmt.Errorf("%w: %q", ErrUnknownBrand, string(brand))
	}
	r.defaultBrand = brand
	return nil
}

// Brands lists registered brands in the order of Brands(), followed by any others.
func (r *Registry) Brands() []Brand {
	r.mu.RLock()
	defer r.mu.RUnlock()

	brands := make([]Brand, 0, len(r.constructors))
	seen := make(map[Brand]bool, len(r.constructors))
	for _, b := range Brands() {
		if _, ok := r.constructors[b]; ok {
			brands = append(brands, b)
			seen[b] = true
		}
	}
	for b := range r.constructors {
		if !seen[b] {
			brands = append(brands, b)
		}
	}
	return brands
}

var (
	globalMu       sync.Mutex
	globalRegistry *Registry
)

// Initialize installs a fresh default registry as the global one, with defaultBrand as its
// default.
func Initialize(defaultBrand Brand) error {
	r := DefaultRegistry()
	if err := r.SetDefault(defaultBrand); err != nil {
		return err
	}

	globalMu.Lock()
	globalRegistry = r
	globalMu.Unlock()

	logger.Debug("Merch registry initialized", map[string]any{"default_brand": string(defaultBrand)})
	return nil
}

// Global returns the global registry. Without Initialize it is DefaultRegistry().
func Global() *Registry {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalRegistry == nil {
		globalRegistry = DefaultRegistry()
	}
	return globalRegistry
}
