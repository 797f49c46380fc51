package variant

import (
	"strings"

	fancyerrors "github.com/alexisbeaulieu97/fancyui/pkg/errors"
)

// Option is one concrete choice within an axis and the tokens it contributes.
type Option struct {
	Name   string
	Tokens []string
}

// Axis is an independent dimension of variation. Options keep declaration order.
type Axis struct {
	Name    string
	Options []Option
}

// Opt builds an Option from a space separated class string.
func Opt(name, classes string) Option {
	return Option{Name: name, Tokens: Split(classes)}
}

// Ax builds an Axis from options.
func Ax(name string, options ...Option) Axis {
	return Axis{Name: name, Options: options}
}

// Schema is a validated, ordered table of axes. Later axes are applied after
// earlier ones so they can stylistically override them.
type Schema struct {
	axes  []Axis
	index map[string]map[string][]string
}

// NewSchema validates the axes and returns an immutable Schema.
func NewSchema(axes ...Axis) (Schema, error) {
	if len(axes) == 0 {
		return Schema{}, fancyerrors.NewSchemaError("", "", "schema must declare at least one axis")
	}

	index := make(map[string]map[string][]string, len(axes))
	copied := make([]Axis, 0, len(axes))

	for _, axis := range axes {
		name := strings.TrimSpace(axis.Name)
		if name == "" {
			return Schema{}, fancyerrors.NewSchemaError("", "", "axis name is required")
		}
		if _, exists := index[name]; exists {
			return Schema{}, fancyerrors.NewSchemaError(name, "", "duplicate axis")
		}
		if len(axis.Options) == 0 {
			return Schema{}, fancyerrors.NewSchemaError(name, "", "axis has no options")
		}

		options := make(map[string][]string, len(axis.Options))
		copiedOptions := make([]Option, 0, len(axis.Options))
		for _, opt := range axis.Options {
			optName := strings.TrimSpace(opt.Name)
			if optName == "" {
				return Schema{}, fancyerrors.NewSchemaError(name, "", "option name is required")
			}
			if _, exists := options[optName]; exists {
				return Schema{}, fancyerrors.NewSchemaError(name, optName, "duplicate option")
			}
			tokens := Split(opt.Tokens...)
			options[optName] = tokens
			copiedOptions = append(copiedOptions, Option{Name: optName, Tokens: tokens})
		}

		index[name] = options
		copied = append(copied, Axis{Name: name, Options: copiedOptions})
	}

	return Schema{axes: copied, index: index}, nil
}

// Axes returns the axis names in declaration order.
func (s Schema) Axes() []string {
	names := make([]string, len(s.axes))
	for i, axis := range s.axes {
		names[i] = axis.Name
	}
	return names
}

// Options returns the option names of an axis in declaration order.
func (s Schema) Options(axis string) []string {
	for _, a := range s.axes {
		if a.Name != axis {
			continue
		}
		names := make([]string, len(a.Options))
		for i, opt := range a.Options {
			names[i] = opt.Name
		}
		return names
	}
	return nil
}

// HasAxis reports whether the schema declares axis.
func (s Schema) HasAxis(axis string) bool {
	_, ok := s.index[axis]
	return ok
}

// HasOption reports whether option is a member of axis.
func (s Schema) HasOption(axis, option string) bool {
	_, ok := s.index[axis][option]
	return ok
}

// tokens returns the option's tokens; callers must not mutate the result.
func (s Schema) tokens(axis, option string) ([]string, bool) {
	tokens, ok := s.index[axis][option]
	return tokens, ok
}
