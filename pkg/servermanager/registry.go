package servermanager

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Builder creates a Manager from its config and host collaborators.
type Builder func(cfg Config, deps Deps) (Manager, error)

// Registry maps manager types to builders.
type Registry interface {
	Register(typ string, builder Builder)
	ManagerFor(typ string, cfg Config, deps Deps) (Manager, error)
	Types() []string
}

type registry struct {
	mu       sync.RWMutex
	builders map[string]Builder
}

// NewRegistry returns a registry with optional pre-registered builders.
func NewRegistry(builders map[string]Builder) Registry {
	r := &registry{
		builders: make(map[string]Builder),
	}
	for typ, b := range builders {
		r.Register(typ, b)
	}
	return r
}

// Register associates a builder with a manager type.
func (r *registry) Register(typ string, builder Builder) {
	if typ = strings.TrimSpace(strings.ToLower(typ)); typ == "" || builder == nil {
		return
	}

	r.mu.Lock()
	r.builders[typ] = builder
	r.mu.Unlock()
}

// ManagerFor builds the manager registered for typ and runs its Init hook
// exactly once. Builders should leave validation to that call.
func (r *registry) ManagerFor(typ string, cfg Config, deps Deps) (Manager, error) {
	key := strings.TrimSpace(strings.ToLower(typ))
	if key == "" {
		return nil, fmt.Errorf("server manager type is empty")
	}

	r.mu.RLock()
	builder := r.builders[key]
	r.mu.RUnlock()

	if builder == nil {
		return nil, fmt.Errorf("no server manager registered for type %q", typ)
	}

	m, err := builder(cfg, deps)
	if err != nil {
		return nil, err
	}
	if err := m.Init(); err != nil {
		return nil, err
	}
	return m, nil
}

// Types lists registered manager types in sorted order.
func (r *registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.builders))
	for typ := range r.builders {
		out = append(out, typ)
	}
	sort.Strings(out)
	return out
}
