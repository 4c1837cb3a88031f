package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedNow(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 10, 30, 0, 0, time.UTC)
	}
}

func TestCalendar_StartsAtToday(t *testing.T) {
	c := NewCalendar(fixedNow(2024, time.March, 15))

	assert.Equal(t, "Mar 2024", c.Label())
	assert.Equal(t, "2024-03-15", c.Selected())
	assert.True(t, c.IsSelected(15))
	assert.False(t, c.IsSelected(14))
}

func TestCalendar_Days(t *testing.T) {
	// March 2024 starts on a Friday, so the grid leads with five blanks.
	c := NewCalendar(fixedNow(2024, time.March, 15))

	days := c.Days()
	assert.Equal(t, []int{0, 0, 0, 0, 0}, days[:5])
	assert.Equal(t, 1, days[5])
	assert.Equal(t, 31, days[len(days)-1])
	assert.Len(t, days, 36)
}

func TestCalendar_Navigation(t *testing.T) {
	c := NewCalendar(fixedNow(2024, time.March, 15))

	// The current month is the forward boundary.
	assert.False(t, c.CanGoNext())
	c.Next()
	assert.Equal(t, "Mar 2024", c.Label())

	c.Prev()
	assert.Equal(t, "Feb 2024", c.Label())
	assert.True(t, c.CanGoNext())
	c.Next()
	assert.Equal(t, "Mar 2024", c.Label())

	// Year boundaries roll correctly in both directions.
	c.Prev()
	c.Prev()
	c.Prev()
	assert.Equal(t, "Dec 2023", c.Label())
	c.Next()
	assert.Equal(t, "Jan 2024", c.Label())
}

func TestCalendar_Select(t *testing.T) {
	c := NewCalendar(fixedNow(2024, time.March, 15))

	assert.Equal(t, "2024-03-03", c.Select(3))
	assert.True(t, c.IsSelected(3))

	// Blank cells keep the current selection.
	assert.Equal(t, "2024-03-03", c.Select(0))

	// Selecting in a different month in view moves the scope there.
	c.Prev()
	assert.Equal(t, "2024-02-29", c.Select(29))
	assert.False(t, c.IsSelected(3))
}
