// Package variant turns a declarative table of style axes and a chosen
// combination into a deterministic class-name string.
//
// A Resolver is built once per component type from a Schema, a set of
// default options and base tokens. Each call supplies a Selection and
// optional override tokens:
//
//	button := variant.MustNew(schema, variant.Defaults{"variant": "default"}, "inline-flex")
//	class, err := button.Resolve(variant.Selection{"variant": "outline"}, "ml-4")
//
// Output order is base tokens, then each axis in declaration order, then
// overrides. Exact duplicate tokens keep only their last occurrence.
package variant

import (
	fancyerrors "github.com/alexisbeaulieu97/fancyui/pkg/errors"
)

// Defaults maps an axis to the option used when the caller omits it.
type Defaults map[string]string

// Selection maps an axis to the caller's chosen option. Empty values and
// axes unknown to the schema are ignored.
type Selection map[string]string

// Resolver resolves selections against an immutable schema. It is safe for
// concurrent use.
type Resolver struct {
	schema   Schema
	defaults Defaults
	base     []string
}

// New validates defaults against schema and returns a Resolver.
func New(schema Schema, defaults Defaults, base ...string) (*Resolver, error) {
	if len(schema.axes) == 0 {
		return nil, fancyerrors.NewSchemaError("", "", "schema must declare at least one axis")
	}

	copied := make(Defaults, len(defaults))
	for axis, option := range defaults {
		if !schema.HasOption(axis, option) {
			return nil, fancyerrors.NewConfigError(axis, option)
		}
		copied[axis] = option
	}

	return &Resolver{
		schema:   schema,
		defaults: copied,
		base:     Split(base...),
	}, nil
}

// MustNew is like New but panics on error. It is intended for package-level
// component definitions where a bad schema is a programming error.
func MustNew(schema Schema, defaults Defaults, base ...string) *Resolver {
	r, err := New(schema, defaults, base...)
	if err != nil {
		panic(err)
	}
	return r
}

// MustSchema is like NewSchema but panics on error.
func MustSchema(axes ...Axis) Schema {
	s, err := NewSchema(axes...)
	if err != nil {
		panic(err)
	}
	return s
}

// Schema returns the resolver's schema.
func (r *Resolver) Schema() Schema {
	return r.schema
}

// Default returns the default option for axis, if any.
func (r *Resolver) Default(axis string) (string, bool) {
	option, ok := r.defaults[axis]
	return option, ok
}

// Base returns a copy of the always-applied tokens.
func (r *Resolver) Base() []string {
	return append([]string(nil), r.base...)
}

// Effective returns the option each axis resolves to for sel. Axes with
// neither a selection nor a default are omitted.
func (r *Resolver) Effective(sel Selection) (Selection, error) {
	effective := make(Selection, len(r.schema.axes))
	for _, axis := range r.schema.axes {
		option, ok := r.option(axis.Name, sel)
		if !ok {
			continue
		}
		if !r.schema.HasOption(axis.Name, option) {
			return nil, fancyerrors.NewSelectionError(axis.Name, option)
		}
		effective[axis.Name] = option
	}
	return effective, nil
}

// Tokens returns the ordered, deduplicated token list for sel and overrides.
func (r *Resolver) Tokens(sel Selection, overrides ...string) ([]string, error) {
	tokens := make([]string, 0, len(r.base)+4*len(r.schema.axes))
	tokens = append(tokens, r.base...)

	for _, axis := range r.schema.axes {
		option, ok := r.option(axis.Name, sel)
		if !ok {
			continue
		}
		optionTokens, ok := r.schema.tokens(axis.Name, option)
		if !ok {
			return nil, fancyerrors.NewSelectionError(axis.Name, option)
		}
		tokens = append(tokens, optionTokens...)
	}

	tokens = append(tokens, Split(overrides...)...)
	return Dedupe(tokens), nil
}

// Resolve returns the class attribute value for sel and overrides.
func (r *Resolver) Resolve(sel Selection, overrides ...string) (string, error) {
	tokens, err := r.Tokens(sel, overrides...)
	if err != nil {
		return "", err
	}
	return Join(tokens), nil
}

func (r *Resolver) option(axis string, sel Selection) (string, bool) {
	if option := sel[axis]; option != "" {
		return option, true
	}
	option, ok := r.defaults[axis]
	return option, ok
}

// Resolve validates its inputs and resolves them in one call. Prefer a
// long-lived Resolver when the same schema is used repeatedly.
func Resolve(schema Schema, defaults Defaults, sel Selection, base, overrides []string) (string, error) {
	r, err := New(schema, defaults, base...)
	if err != nil {
		return "", err
	}
	return r.Resolve(sel, overrides...)
}
