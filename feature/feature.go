// Package feature implements the coaching feature modules behind the
// dashboard. Each module accepts its own JSON input and synthesizes a
// feedback result locally; there is no external inference call anywhere.
package feature

import (
	"context"
	"encoding/json"
	"fmt"
)

// Module is one coaching feature selectable from the dashboard.
type Module interface {
	// ID is the stable feature identifier used in routes and usage counters.
	ID() string
	// Title is the human-readable feature name.
	Title() string
	// Generate runs the module's primary generate/analyze action. Input
	// validation failures return an InputError and must have no side effects.
	Generate(ctx context.Context, input json.RawMessage) (any, error)
}

// InputError marks a request rejected at the boundary for bad input.
type InputError struct {
	Message string
}

func (e InputError) Error() string {
	return e.Message
}

// Registry holds the available feature modules keyed by id, preserving
// registration order for catalog listings.
type Registry struct {
	order   []string
	modules map[string]Module
}

func NewRegistry() *Registry {
	return &Registry{modules: map[string]Module{}}
}

// Register installs a module. Duplicate ids are a programming error.
func (r *Registry) Register(m Module) error {
	if m == nil {
		return fmt.Errorf("nil module")
	}
	id := m.ID()
	if id == "" {
		return fmt.Errorf("module has empty id")
	}
	if _, exists := r.modules[id]; exists {
		return fmt.Errorf("duplicate module id %q", id)
	}
	r.modules[id] = m
	r.order = append(r.order, id)
	return nil
}

// Get returns the module registered under id.
func (r *Registry) Get(id string) (Module, bool) {
	m, ok := r.modules[id]
	return m, ok
}

// IDs returns module ids in registration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// DefaultRegistry installs the built-in feature modules.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, m := range []Module{
		&QATrainer{},
		&PricingCalculator{},
		&NegotiationTrainer{},
		&Shotgun{},
	} {
		if err := r.Register(m); err != nil {
			panic(err)
		}
	}
	return r
}
