package definitions

import (
	"fmt"
	"strings"

	"github.com/jvdt-hub/backend/internal/models"
)

// Registry holds the loaded definitions. It is read-only after construction.
type Registry struct {
	defs  map[string]*models.TestDefinition
	order []string
}

// NewRegistry loads every embedded definition.
func NewRegistry() (*Registry, error) {
	r := &Registry{defs: make(map[string]*models.TestDefinition)}
	for _, id := range List() {
		def, err := Load(id)
		if err != nil {
			return nil, fmt.Errorf("load registry: %w", err)
		}
		r.Add(def)
	}
	return r, nil
}

// Add registers def, replacing any definition with the same id.
func (r *Registry) Add(def *models.TestDefinition) {
	if r.defs == nil {
		r.defs = make(map[string]*models.TestDefinition)
	}
	if _, ok := r.defs[def.ID]; !ok {
		r.order = append(r.order, def.ID)
	}
	r.defs[def.ID] = def
}

func (r *Registry) Get(id string) (*models.TestDefinition, error) {
	def, ok := r.defs[id]
	if !ok {
		return nil, fmt.Errorf("test %q: %w", id, ErrUnknownTest)
	}
	return def, nil
}

// All returns the definitions in registration order.
func (r *Registry) All() []*models.TestDefinition {
	out := make([]*models.TestDefinition, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.defs[id])
	}
	return out
}

// Warnings validates every registered definition, keyed by id.
func (r *Registry) Warnings() map[string][]string {
	out := map[string][]string{}
	for _, id := range r.order {
		if w := Validate(r.defs[id]); len(w) > 0 {
			out[id] = w
		}
	}
	return out
}

// Practices returns the practice texts for an axis at a named stage, across
// all registered instruments. Axis matches a category's axis, id or name;
// both arguments are case-insensitive.
func (r *Registry) Practices(axis, stage string) []string {
	practices := []string{}
	seen := map[string]bool{}
	for _, def := range r.All() {
		for _, c := range def.Categories {
			if !matchesAxis(c, axis) {
				continue
			}
			for _, s := range c.Stages {
				if !strings.EqualFold(s.Name, stage) || s.Practice == "" || seen[s.Practice] {
					continue
				}
				seen[s.Practice] = true
				practices = append(practices, s.Practice)
			}
		}
	}
	return practices
}

func matchesAxis(c models.AxisCategory, axis string) bool {
	if c.Axis == "" {
		return false
	}
	return strings.EqualFold(c.Axis, axis) || strings.EqualFold(c.ID, axis) || strings.EqualFold(c.Name, axis)
}
