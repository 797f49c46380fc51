package components

import (
	"github.com/alexisbeaulieu97/fancyui/internal/variant"
)

// ButtonVariant selects the button's colour treatment.
type ButtonVariant string

const (
	ButtonDefault     ButtonVariant = "default"
	ButtonDestructive ButtonVariant = "destructive"
	ButtonOutline     ButtonVariant = "outline"
	ButtonSecondary   ButtonVariant = "secondary"
	ButtonGhost       ButtonVariant = "ghost"
	ButtonLink        ButtonVariant = "link"
)

// ButtonSize selects the button's dimensions.
type ButtonSize string

const (
	ButtonSizeDefault ButtonSize = "default"
	ButtonSizeSmall   ButtonSize = "sm"
	ButtonSizeLarge   ButtonSize = "lg"
	ButtonSizeIcon    ButtonSize = "icon"
)

const buttonBase = "inline-flex items-center justify-center gap-2 whitespace-nowrap rounded text-sm font-medium " +
	"transition-all duration-normal ease-standard focus-ring disabled:pointer-events-none disabled:opacity-50 " +
	"[&_svg]:pointer-events-none [&_svg]:size-4 [&_svg]:shrink-0"

// ButtonSpinnerClass styles the spinner shown while a button is loading.
const ButtonSpinnerClass = "animate-spin h-4 w-4 mr-1"

var buttonVariants = variant.MustNew(
	variant.MustSchema(
		variant.Ax("variant",
			variant.Opt(string(ButtonDefault), "bg-primary text-primary-foreground hover:bg-primary-hover hover:shadow-elevation-md hover-lift active-press active:bg-primary-active"),
			variant.Opt(string(ButtonDestructive), "bg-destructive text-destructive-foreground hover:bg-destructive-hover hover:shadow-elevation-md hover-lift active-press active:bg-destructive-active"),
			variant.Opt(string(ButtonOutline), "border border-input bg-background hover:bg-accent hover:text-accent-foreground hover:border-border-hover hover-lift active-press"),
			variant.Opt(string(ButtonSecondary), "bg-secondary text-secondary-foreground hover:bg-secondary-hover hover-lift active-press active:bg-secondary-active"),
			variant.Opt(string(ButtonGhost), "hover:bg-accent hover:text-accent-foreground hover-lift active-press"),
			variant.Opt(string(ButtonLink), "text-primary underline-offset-4 hover:underline hover:text-primary-hover active:text-primary-active"),
		),
		variant.Ax("size",
			variant.Opt(string(ButtonSizeDefault), "h-10 px-4 py-2"),
			variant.Opt(string(ButtonSizeSmall), "h-9 px-3 text-xs"),
			variant.Opt(string(ButtonSizeLarge), "h-11 px-8 text-base"),
			variant.Opt(string(ButtonSizeIcon), "h-9 w-9"),
		),
	),
	variant.Defaults{"variant": string(ButtonDefault), "size": string(ButtonSizeDefault)},
	buttonBase,
)

var buttonCache = variant.NewCache(buttonVariants)

// ButtonProps configures a button. Zero values fall back to the defaults.
type ButtonProps struct {
	Variant  ButtonVariant
	Size     ButtonSize
	Class    string
	Label    string
	Disabled bool
	Loading  bool
}

// ButtonView is the resolved presentation of a button.
type ButtonView struct {
	Class        string
	Label        string
	Disabled     bool
	SpinnerClass string
}

// ButtonVariants exposes the button resolver.
func ButtonVariants() *variant.Resolver {
	return buttonVariants
}

// ButtonClasses resolves the class attribute for props.
func ButtonClasses(props ButtonProps) (string, error) {
	return buttonCache.Resolve(props.selection(), props.Class)
}

// Button resolves props into a view. Loading buttons are disabled and show
// a spinner with a loading label.
func Button(props ButtonProps) (ButtonView, error) {
	class, err := ButtonClasses(props)
	if err != nil {
		return ButtonView{}, err
	}

	view := ButtonView{
		Class:    class,
		Label:    props.Label,
		Disabled: props.Disabled || props.Loading,
	}
	if props.Loading {
		view.Label = "Loading..."
		view.SpinnerClass = ButtonSpinnerClass
	}
	return view, nil
}

func (p ButtonProps) selection() variant.Selection {
	return variant.Selection{
		"variant": string(p.Variant),
		"size":    string(p.Size),
	}
}
