package components

import (
	"github.com/alexisbeaulieu97/fancyui/internal/variant"
)

// ModalSize selects the modal content's maximum width.
type ModalSize string

const (
	ModalSizeSmall      ModalSize = "sm"
	ModalSizeMedium     ModalSize = "md"
	ModalSizeLarge      ModalSize = "lg"
	ModalSizeExtraLarge ModalSize = "xl"
)

const (
	ModalOverlayClass = "fixed inset-0 z-50 bg-black/80 backdrop-blur-sm " +
		"data-[state=open]:modal-overlay-enter data-[state=closed]:modal-overlay-exit"
	ModalCloseClass = "absolute right-4 top-4 rounded-sm p-1 opacity-70 transition-all duration-200 ease-out " +
		"hover:opacity-100 hover:bg-accent hover:text-accent-foreground hover:rotate-90 hover:scale-110 " +
		"focus-ring disabled:pointer-events-none"
	ModalHeaderClass      = "flex flex-col space-y-1.5 text-center sm:text-left"
	ModalFooterClass      = "flex flex-col-reverse sm:flex-row sm:justify-end sm:space-x-2"
	ModalTitleClass       = "text-lg font-semibold leading-none tracking-tight"
	ModalDescriptionClass = "text-sm text-muted-foreground"
)

const modalContentBase = "fixed left-[50%] top-[50%] z-50 grid w-full translate-x-[-50%] translate-y-[-50%] " +
	"gap-lg border bg-background p-6 shadow-elevation-2xl rounded-lg " +
	"data-[state=open]:modal-content-enter data-[state=closed]:modal-content-exit"

var modalContentVariants = variant.MustNew(
	variant.MustSchema(
		variant.Ax("size",
			variant.Opt(string(ModalSizeSmall), "max-w-sm"),
			variant.Opt(string(ModalSizeMedium), "max-w-lg"),
			variant.Opt(string(ModalSizeLarge), "max-w-2xl"),
			variant.Opt(string(ModalSizeExtraLarge), "max-w-4xl"),
		),
	),
	variant.Defaults{"size": string(ModalSizeMedium)},
	modalContentBase,
)

var modalCache = variant.NewCache(modalContentVariants)

// Node is anything that can present itself as text, such as a child placed
// inside a modal body.
type Node interface {
	View() string
}

// Text is a Node holding plain text.
type Text string

// View returns the text.
func (t Text) View() string { return string(t) }

// ModalProps configures a modal dialog.
type ModalProps struct {
	Open        bool
	Title       string
	Description string
	Size        ModalSize
	Class       string
	Children    []Node
	OnClose     func()
}

// ModalView is the resolved presentation of an open modal.
type ModalView struct {
	OverlayClass     string
	ContentClass     string
	CloseClass       string
	ShowHeader       bool
	HeaderClass      string
	Title            string
	TitleClass       string
	Description      string
	DescriptionClass string
	Body             []string
}

// ModalVariants exposes the modal content resolver.
func ModalVariants() *variant.Resolver {
	return modalContentVariants
}

// ModalContentClasses resolves the class attribute of the modal panel.
func ModalContentClasses(size ModalSize, class string) (string, error) {
	return modalCache.Resolve(variant.Selection{"size": string(size)}, class)
}

// Modal resolves props into a view. It reports false when the modal is closed.
func Modal(props ModalProps) (ModalView, bool, error) {
	if !props.Open {
		return ModalView{}, false, nil
	}

	content, err := ModalContentClasses(props.Size, props.Class)
	if err != nil {
		return ModalView{}, false, err
	}

	view := ModalView{
		OverlayClass: ModalOverlayClass,
		ContentClass: content,
		CloseClass:   ModalCloseClass,
		ShowHeader:   props.Title != "" || props.Description != "",
		Title:        props.Title,
		Description:  props.Description,
	}
	if view.ShowHeader {
		view.HeaderClass = ModalHeaderClass
	}
	if props.Title != "" {
		view.TitleClass = ModalTitleClass
	}
	if props.Description != "" {
		view.DescriptionClass = ModalDescriptionClass
	}
	for _, child := range props.Children {
		if child == nil {
			continue
		}
		view.Body = append(view.Body, child.View())
	}
	return view, true, nil
}

// SetModalOpen applies an open-state change from the dialog primitive,
// invoking OnClose when the modal is dismissed.
func SetModalOpen(props *ModalProps, open bool) {
	wasOpen := props.Open
	props.Open = open
	if wasOpen && !open && props.OnClose != nil {
		props.OnClose()
	}
}
