package store

import (
	"fmt"
	"time"

	"github.com/trackinhq/trackin/internal/model"
)

// Weekdays are the calendar column headers, Sunday first.
var Weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

var monthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Calendar tracks the month in view and the selected day. Forward
// navigation is clamped at the real current month so future dates can
// never be selected from the grid.
type Calendar struct {
	now      func() time.Time
	selected string
	year     int
	month    time.Month
}

// NewCalendar creates a calendar showing the current month with today
// selected. now is injectable for tests; nil means time.Now.
func NewCalendar(now func() time.Time) *Calendar {
	if now == nil {
		now = time.Now
	}
	today := now()
	return &Calendar{
		now:      now,
		year:     today.Year(),
		month:    today.Month(),
		selected: today.Format(model.DateFormat),
	}
}

// Label returns the month heading, e.g. "Mar 2024".
func (c *Calendar) Label() string {
	return fmt.Sprintf("%s %d", monthNames[c.month-1], c.year)
}

// Days returns the month grid: zeroes for the leading blanks before the
// first weekday, then the day numbers.
func (c *Calendar) Days() []int {
	first := time.Date(c.year, c.month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	days := make([]int, 0, int(first.Weekday())+daysInMonth)
	for i := 0; i < int(first.Weekday()); i++ {
		days = append(days, 0)
	}
	for d := 1; d <= daysInMonth; d++ {
		days = append(days, d)
	}
	return days
}

// CanGoNext reports whether forward navigation is allowed. The month in
// view never advances past the real current month.
func (c *Calendar) CanGoNext() bool {
	today := c.now()
	return c.year < today.Year() || (c.year == today.Year() && c.month < today.Month())
}

// Next advances one month, unless clamped.
func (c *Calendar) Next() {
	if !c.CanGoNext() {
		return
	}
	c.month++
	if c.month > time.December {
		c.month = time.January
		c.year++
	}
}

// Prev goes back one month.
func (c *Calendar) Prev() {
	c.month--
	if c.month < time.January {
		c.month = time.December
		c.year--
	}
}

// Select picks a day in the month in view and returns the selection in
// YYYY-MM-DD form. Blank cells (day 0) are ignored.
func (c *Calendar) Select(day int) string {
	if day == 0 {
		return c.selected
	}
	c.selected = fmt.Sprintf("%04d-%02d-%02d", c.year, c.month, day)
	return c.selected
}

// Selected returns the selected date in YYYY-MM-DD form.
func (c *Calendar) Selected() string {
	return c.selected
}

// IsSelected reports whether a day cell in the month in view is the
// current selection.
func (c *Calendar) IsSelected(day int) bool {
	if day == 0 {
		return false
	}
	return c.selected == fmt.Sprintf("%04d-%02d-%02d", c.year, c.month, day)
}
