package components

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/fancyui/internal/variant"
)

// ErrDateDisabled is returned when selecting a day outside the allowed range.
var ErrDateDisabled = errors.New("date is outside the selectable range")

// ErrPickerDisabled is returned when interacting with a disabled picker.
var ErrPickerDisabled = errors.New("date picker is disabled")

const (
	DatePickerTriggerClass = "w-full justify-start text-left font-normal"
	DatePickerEmptyClass   = "text-muted-foreground"
	DatePickerIconClass    = "mr-2 h-4 w-4"
	DatePickerPopoverClass = "z-50 w-72 rounded-lg border bg-popover p-4 text-popover-foreground shadow-elevation-lg " +
		"outline-none transition-all duration-slow ease-decelerated data-[state=open]:animate-in " +
		"data-[state=closed]:animate-out data-[state=closed]:fade-out-0 data-[state=open]:fade-in-0 " +
		"data-[state=closed]:zoom-out-95 data-[state=open]:zoom-in-95 data-[side=bottom]:slide-in-from-top-2 " +
		"data-[side=left]:slide-in-from-right-2 data-[side=right]:slide-in-from-left-2 " +
		"data-[side=top]:slide-in-from-bottom-2"
	datePickerContentClass = "w-auto p-0"
	defaultDatePlaceholder = "Pick a date"
)

// DateRange bounds the selectable days. Nil bounds are open; set bounds are
// inclusive and compared by calendar day.
type DateRange struct {
	Min *time.Time
	Max *time.Time
}

// Disabled reports whether day falls before Min or after Max.
func (r DateRange) Disabled(day time.Time) bool {
	d := calendarDay(day)
	if r.Min != nil && d.Before(calendarDay(*r.Min)) {
		return true
	}
	if r.Max != nil && d.After(calendarDay(*r.Max)) {
		return true
	}
	return false
}

// DatePickerProps configures a date picker.
type DatePickerProps struct {
	Value       *time.Time
	Placeholder string
	Disabled    bool
	MinDate     *time.Time
	MaxDate     *time.Time
	Class       string
	OnChange    func(*time.Time)
}

// DatePicker holds the popover state of a picker between renders.
type DatePicker struct {
	props DatePickerProps
	open  bool
}

// NewDatePicker creates a closed picker.
func NewDatePicker(props DatePickerProps) *DatePicker {
	return &DatePicker{props: props}
}

// Range returns the selectable range derived from MinDate and MaxDate.
func (p *DatePicker) Range() DateRange {
	return DateRange{Min: p.props.MinDate, Max: p.props.MaxDate}
}

// Value returns the selected day, if any.
func (p *DatePicker) Value() *time.Time {
	return p.props.Value
}

// IsOpen reports whether the calendar popover is showing.
func (p *DatePicker) IsOpen() bool {
	return p.open
}

// SetOpen opens or closes the popover. Disabled pickers stay closed.
func (p *DatePicker) SetOpen(open bool) error {
	if open && p.props.Disabled {
		return ErrPickerDisabled
	}
	p.open = open
	return nil
}

// Select picks day, closes the popover and notifies OnChange. Picking the
// already selected day clears the value.
func (p *DatePicker) Select(day time.Time) error {
	if p.props.Disabled {
		return ErrPickerDisabled
	}
	if p.Range().Disabled(day) {
		return fmt.Errorf("%w: %s", ErrDateDisabled, FormatDate(day))
	}

	if p.props.Value != nil && sameDay(*p.props.Value, day) {
		p.props.Value = nil
	} else {
		selected := day
		p.props.Value = &selected
	}

	p.open = false
	if p.props.OnChange != nil {
		p.props.OnChange(p.props.Value)
	}
	return nil
}

// The trigger is an outline button; its own axis only tracks whether a date
// is shown.
var datePickerTriggerVariants = variant.MustNew(
	variant.MustSchema(
		variant.Ax("state",
			variant.Opt("empty", DatePickerEmptyClass),
			variant.Opt("filled", ""),
		),
	),
	variant.Defaults{"state": "empty"},
	outlineButtonClass(),
	DatePickerTriggerClass,
)

var datePickerTriggerCache = variant.NewCache(datePickerTriggerVariants)

func outlineButtonClass() string {
	class, err := ButtonVariants().Resolve(variant.Selection{"variant": string(ButtonOutline)})
	if err != nil {
		panic(err)
	}
	return class
}

// DatePickerTriggerVariants exposes the trigger resolver.
func DatePickerTriggerVariants() *variant.Resolver {
	return datePickerTriggerVariants
}

// TriggerView is the resolved presentation of the picker's trigger button.
type TriggerView struct {
	Class     string
	IconClass string
	Label     string
	Disabled  bool
}

// Trigger resolves the outline button that opens the calendar.
func (p *DatePicker) Trigger() (TriggerView, error) {
	state := "empty"
	if p.props.Value != nil {
		state = "filled"
	}
	class, err := datePickerTriggerCache.Resolve(variant.Selection{"state": state}, p.props.Class)
	if err != nil {
		return TriggerView{}, err
	}

	label := p.props.Placeholder
	if label == "" {
		label = defaultDatePlaceholder
	}
	if p.props.Value != nil {
		label = FormatDate(*p.props.Value)
	}

	return TriggerView{
		Class:     class,
		IconClass: DatePickerIconClass,
		Label:     label,
		Disabled:  p.props.Disabled,
	}, nil
}

// PopoverClass returns the classes of the calendar popover panel.
func (p *DatePicker) PopoverClass() string {
	return variant.Classes(DatePickerPopoverClass, datePickerContentClass)
}

// Month builds the calendar grid for year/month as the picker shows it.
func (p *DatePicker) Month(year int, month time.Month, today time.Time) []Week {
	return Month(year, month, today, p.props.Value, p.Range())
}

// FormatDate renders day as a long date, for example "October 17th, 2026".
func FormatDate(day time.Time) string {
	return fmt.Sprintf("%s %d%s, %d", day.Month(), day.Day(), ordinalSuffix(day.Day()), day.Year())
}

func ordinalSuffix(n int) string {
	if n%100 >= 11 && n%100 <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	return calendarDay(a).Equal(calendarDay(b))
}
