package calc

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/fin-tools/calc-atlas/pkg/models/domain"
)

// Calculator is a named financial calculator. Inputs arrive as raw form-field
// values; implementations normalize defensively and never fail on malformed
// numbers — an error means the calculator itself is misconfigured or unknown.
type Calculator interface {
	// Name returns the registry key, e.g. "loan".
	Name() string
	// Describe returns a one-line human description.
	Describe() string
	// Calculate runs the calculator over raw field values.
	Calculate(ctx context.Context, inputs map[string]any) (*domain.Report, error)
}

// Factory creates a Calculator instance.
type Factory func() Calculator

// Registry manages calculator factories
type Registry interface {
	// Register adds a new calculator factory
	Register(name string, factory Factory) error
	// Create instantiates the named calculator
	Create(name string) (Calculator, error)
	// ListCalculators returns the registered names, sorted
	ListCalculators() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a new calculator registry
func NewRegistry(factories map[string]Factory) Registry {
	r := &registry{factories: make(map[string]Factory)}
	for name, factory := range factories {
		_ = r.Register(name, factory)
	}
	return r
}

func (r *registry) Register(name string, factory Factory) error {
	if name == "" {
		return fmt.Errorf("calculator name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("calculator %q is already registered", name)
	}

	r.factories[name] = factory
	return nil
}

func (r *registry) Create(name string) (Calculator, error) {
	r.mu.RLock()
	factory, exists := r.factories[name]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("calculator %q is not registered", name)
	}

	return factory(), nil
}

func (r *registry) ListCalculators() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
