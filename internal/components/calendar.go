package components

import (
	"time"

	"github.com/alexisbeaulieu97/fancyui/internal/variant"
)

// Day is one cell of a month grid.
type Day struct {
	Date     time.Time
	Outside  bool
	Today    bool
	Selected bool
	Disabled bool
}

// Class returns the calendar classes for the cell's modifiers.
func (d Day) Class() string {
	return variant.Classes(
		"rdp-day",
		variant.When(d.Today, "rdp-day_today"),
		variant.When(d.Selected, "rdp-day_selected"),
		variant.When(d.Outside, "rdp-day_outside"),
		variant.When(d.Disabled, "rdp-day_disabled"),
	)
}

// Week is seven consecutive days starting on Sunday.
type Week [7]Day

// Month returns the weeks covering year/month. Leading and trailing cells
// from adjacent months are marked Outside.
func Month(year int, month time.Month, today time.Time, selected *time.Time, rng DateRange) []Week {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	start := first.AddDate(0, 0, -int(first.Weekday()))
	end := last.AddDate(0, 0, int(time.Saturday-last.Weekday()))

	var weeks []Week
	var week Week
	i := 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		week[i] = Day{
			Date:     day,
			Outside:  day.Month() != month,
			Today:    sameDay(day, today),
			Selected: selected != nil && sameDay(day, *selected),
			Disabled: rng.Disabled(day),
		}
		i++
		if i == len(week) {
			weeks = append(weeks, week)
			week = Week{}
			i = 0
		}
	}
	return weeks
}
