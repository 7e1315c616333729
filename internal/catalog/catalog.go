// Package catalog holds the read-only set of agreement templates.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dtroode/agreement-server/internal/model"
)

//go:embed templates.yaml
var defaultTemplates []byte

type document struct {
	Templates []model.Template `yaml:"templates"`
}

// Catalog is an ordered, immutable template catalog.
type Catalog struct {
	templates []model.Template
	byID      map[string]int
}

// Default returns the catalog shipped with the binary.
func Default() (*Catalog, error) {
	return Load(defaultTemplates)
}

// Load parses a YAML catalog. Template order is preserved.
func Load(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse template catalog: %w", err)
	}

	c := &Catalog{byID: make(map[string]int, len(doc.Templates))}
	for _, t := range doc.Templates {
		t.ID = strings.TrimSpace(t.ID)
		t.Name = strings.TrimSpace(t.Name)
		if t.ID == "" || t.Name == "" || strings.TrimSpace(t.Content) == "" {
			return nil, fmt.Errorf("template %q: id, name and content are required", t.ID)
		}
		if _, dup := c.byID[t.ID]; dup {
			return nil, fmt.Errorf("template %q: duplicate id", t.ID)
		}
		c.byID[t.ID] = len(c.templates)
		c.templates = append(c.templates, t)
	}
	return c, nil
}

// List returns id and name of every template in catalog order.
func (c *Catalog) List() []model.TemplateSummary {
	out := make([]model.TemplateSummary, 0, len(c.templates))
	for _, t := range c.templates {
		out = append(out, model.TemplateSummary{ID: t.ID, Name: t.Name})
	}
	return out
}

// Get returns the template with the given id.
func (c *Catalog) Get(id string) (model.Template, error) {
	i, ok := c.byID[id]
	if !ok {
		return model.Template{}, fmt.Errorf("template %q: %w", id, model.ErrNotFound)
	}
	return c.templates[i], nil
}

// ByName finds a template by its display name, ignoring case and surrounding space.
func (c *Catalog) ByName(name string) (model.Template, bool) {
	name = strings.TrimSpace(name)
	for _, t := range c.templates {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return model.Template{}, false
}

// Names returns template display names in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.templates))
	for _, t := range c.templates {
		out = append(out, t.Name)
	}
	return out
}
