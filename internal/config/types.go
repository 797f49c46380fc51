package config

import (
	"github.com/alexisbeaulieu97/fancyui/internal/components"
	"github.com/alexisbeaulieu97/fancyui/internal/variant"
)

// Document is a file of component variant schemas.
type Document struct {
	Version    string      `yaml:"version" toml:"version" validate:"required,semver"`
	Components []Component `yaml:"components" toml:"components" validate:"required,min=1,dive"`
}

// Component declares one component's base classes and variant axes.
type Component struct {
	Name        string `yaml:"name" toml:"name" validate:"required,component_name"`
	Description string `yaml:"description,omitempty" toml:"description,omitempty" validate:"max=200"`
	Base        string `yaml:"base,omitempty" toml:"base,omitempty"`
	Axes        []Axis `yaml:"axes" toml:"axes" validate:"required,min=1,dive"`
}

// Axis declares a variant axis. Options are applied in file order.
type Axis struct {
	Name    string   `yaml:"name" toml:"name" validate:"required,component_name"`
	Default string   `yaml:"default,omitempty" toml:"default,omitempty"`
	Options []Option `yaml:"options" toml:"options" validate:"required,min=1,dive"`
}

// Option maps an option name to its space separated classes.
type Option struct {
	Name    string `yaml:"name" toml:"name" validate:"required"`
	Classes string `yaml:"classes,omitempty" toml:"classes,omitempty"`
}

// Resolver builds the component's resolver, surfacing schema and default errors.
func (c Component) Resolver() (*variant.Resolver, error) {
	axes := make([]variant.Axis, 0, len(c.Axes))
	defaults := make(variant.Defaults)

	for _, axis := range c.Axes {
		options := make([]variant.Option, 0, len(axis.Options))
		for _, opt := range axis.Options {
			options = append(options, variant.Opt(opt.Name, opt.Classes))
		}
		axes = append(axes, variant.Ax(axis.Name, options...))
		if axis.Default != "" {
			defaults[axis.Name] = axis.Default
		}
	}

	schema, err := variant.NewSchema(axes...)
	if err != nil {
		return nil, err
	}
	return variant.New(schema, defaults, c.Base)
}

// Resolvers builds a resolver per component keyed by name.
func (d *Document) Resolvers() (map[string]*variant.Resolver, error) {
	resolvers := make(map[string]*variant.Resolver, len(d.Components))
	for _, component := range d.Components {
		r, err := component.Resolver()
		if err != nil {
			return nil, err
		}
		resolvers[component.Name] = r
	}
	return resolvers, nil
}

// Catalogue builds a component catalogue in document order.
func (d *Document) Catalogue() (*components.Catalogue, error) {
	entries := make([]components.Entry, 0, len(d.Components))
	for _, component := range d.Components {
		r, err := component.Resolver()
		if err != nil {
			return nil, err
		}
		entries = append(entries, components.Entry{
			Name:        component.Name,
			Description: component.Description,
			Resolver:    r,
		})
	}
	return components.NewCatalogue(entries...)
}
