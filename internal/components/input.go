package components

import (
	"github.com/alexisbeaulieu97/fancyui/internal/variant"
)

const inputBase = "flex h-10 w-full rounded border border-input bg-background py-2 text-sm transition-all " +
	"duration-normal ease-standard placeholder:text-muted-foreground focus-ring hover:border-border-hover " +
	"file:border-0 file:bg-transparent file:text-sm file:font-medium disabled:cursor-not-allowed " +
	"disabled:opacity-50 disabled:bg-muted/30"

// Classes for the icon slots that wrap an input.
const (
	InputStartIconClass = "absolute left-3 top-1/2 -translate-y-1/2 text-muted-foreground [&_svg]:size-4"
	InputEndIconClass   = "absolute right-3 top-1/2 -translate-y-1/2 text-muted-foreground [&_svg]:size-4"
	InputWrapperClass   = "relative"
)

// The padding axis makes room for icons; state layers the error border last.
var inputVariants = variant.MustNew(
	variant.MustSchema(
		variant.Ax("padding",
			variant.Opt("plain", "px-3"),
			variant.Opt("start", "pl-10 pr-3"),
			variant.Opt("end", "pl-3 pr-10"),
			variant.Opt("both", "pl-10 pr-10"),
		),
		variant.Ax("state",
			variant.Opt("default", ""),
			variant.Opt("error", "border-2 border-destructive focus-visible:ring-destructive hover:border-destructive-hover shadow-sm shadow-destructive/20"),
		),
	),
	variant.Defaults{"padding": "plain", "state": "default"},
	inputBase,
)

var inputCache = variant.NewCache(inputVariants)

// InputProps configures a text input.
type InputProps struct {
	Class     string
	Error     bool
	StartIcon bool
	EndIcon   bool
}

// InputView is the resolved presentation of an input and its optional icons.
type InputView struct {
	Class          string
	WrapperClass   string
	StartIconClass string
	EndIconClass   string
}

// InputVariants exposes the input resolver.
func InputVariants() *variant.Resolver {
	return inputVariants
}

// InputClasses resolves the class attribute of the input element.
func InputClasses(props InputProps) (string, error) {
	return inputCache.Resolve(props.selection(), props.Class)
}

// Input resolves props into a view. Icon slots are only populated when the
// matching icon is present.
func Input(props InputProps) (InputView, error) {
	class, err := InputClasses(props)
	if err != nil {
		return InputView{}, err
	}

	view := InputView{Class: class}
	if props.StartIcon || props.EndIcon {
		view.WrapperClass = InputWrapperClass
	}
	if props.StartIcon {
		view.StartIconClass = InputStartIconClass
	}
	if props.EndIcon {
		view.EndIconClass = InputEndIconClass
	}
	return view, nil
}

func (p InputProps) selection() variant.Selection {
	padding := "plain"
	switch {
	case p.StartIcon && p.EndIcon:
		padding = "both"
	case p.StartIcon:
		padding = "start"
	case p.EndIcon:
		padding = "end"
	}

	state := "default"
	if p.Error {
		state = "error"
	}

	return variant.Selection{"padding": padding, "state": state}
}
