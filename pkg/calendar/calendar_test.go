package calendar_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropcal/entities"
	"cropcal/pkg/calendar"
	"cropcal/pkg/catalog"
)

func date(s string) time.Time {
	d, err := time.Parse(entities.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return d
}

func tomatoCalendar(t *testing.T, sowing string) *entities.Calendar {
	t.Helper()
	gen := calendar.NewGenerator(catalog.New())
	cal, err := gen.Generate("Tomato", sowing, bangalore, "U1")
	require.NoError(t, err)
	return cal
}

func TestUpdateActivityStatus(t *testing.T) {
	cal := tomatoCalendar(t, "2025-01-01")
	now := time.Date(2025, 1, 3, 10, 30, 0, 0, time.UTC)

	err := calendar.UpdateActivityStatus(cal, "Nursery Irrigation", entities.StatusCompleted, "done early", now)
	require.NoError(t, err)

	act := cal.Activities[1]
	assert.Equal(t, entities.StatusCompleted, act.Status)
	assert.Equal(t, "done early", act.Notes)
	assert.Equal(t, "2025-01-03T10:30:00Z", act.UpdatedAt)
}

func TestUpdateActivityStatusKeepsNotes(t *testing.T) {
	cal := tomatoCalendar(t, "2025-01-01")
	now := time.Now()

	require.NoError(t, calendar.UpdateActivityStatus(cal, "Nursery Irrigation", entities.StatusSkipped, "too wet", now))
	require.NoError(t, calendar.UpdateActivityStatus(cal, "Nursery Irrigation", entities.StatusPending, "", now))

	// Empty notes on a later update must not erase the earlier note.
	assert.Equal(t, "too wet", cal.Activities[1].Notes)
}

func TestUpdateActivityStatusErrors(t *testing.T) {
	cal := tomatoCalendar(t, "2025-01-01")
	now := time.Now()

	err := calendar.UpdateActivityStatus(cal, "No Such Task", entities.StatusCompleted, "", now)
	var notFound *calendar.ActivityNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "No Such Task", notFound.Name)

	err = calendar.UpdateActivityStatus(cal, "Nursery Irrigation", "paused", "", now)
	require.Error(t, err)
	assert.Equal(t, entities.StatusPending, cal.Activities[1].Status)
}

func TestUpcomingActivities(t *testing.T) {
	cal := tomatoCalendar(t, "2025-01-01")
	today := date("2025-01-09")

	up := calendar.UpcomingActivities(cal, today, 7)
	// Day 10 (Seedling Care) is the only task in [Jan 9, Jan 16].
	require.Len(t, up, 1)
	assert.Equal(t, "Seedling Care", up[0].Name)
	assert.Equal(t, 2, up[0].DaysUntil)

	up = calendar.UpcomingActivities(cal, today, 30)
	// Days 10 through 35 fall inside [Jan 9, Feb 8].
	require.Len(t, up, 7)
	// Soonest first.
	assert.Equal(t, "Seedling Care", up[0].Name)
	assert.Equal(t, "Staking", up[6].Name)
}

func TestUpcomingSkipsCompleted(t *testing.T) {
	cal := tomatoCalendar(t, "2025-01-01")
	require.NoError(t, calendar.UpdateActivityStatus(cal, "Seedling Care", entities.StatusCompleted, "", time.Now()))

	up := calendar.UpcomingActivities(cal, date("2025-01-09"), 7)
	assert.Empty(t, up)
}

func TestOverdueActivities(t *testing.T) {
	cal := tomatoCalendar(t, "2025-01-01")
	today := date("2025-01-12")

	od := calendar.OverdueActivities(cal, today)
	// Nursery Irrigation (Jan 3) and Seedling Care (Jan 11); most overdue first.
	require.Len(t, od, 2)
	assert.Equal(t, "Nursery Irrigation", od[0].Name)
	assert.Equal(t, 9, od[0].DaysOverdue)
	assert.Equal(t, "Seedling Care", od[1].Name)
	assert.Equal(t, 1, od[1].DaysOverdue)
}

func TestCalendarProgress(t *testing.T) {
	cal := tomatoCalendar(t, "2025-01-01")
	require.NoError(t, calendar.UpdateActivityStatus(cal, "Nursery Irrigation", entities.StatusCompleted, "", time.Now()))
	require.NoError(t, calendar.UpdateActivityStatus(cal, "Seedling Care", entities.StatusSkipped, "", time.Now()))

	p := calendar.CalendarProgress(cal, date("2025-01-31"))
	assert.Equal(t, 18, p.TotalActivities)
	assert.Equal(t, 2, p.Completed) // sowing-day task plus one manual completion
	assert.Equal(t, 1, p.Skipped)
	assert.Equal(t, 15, p.Pending)
	assert.Equal(t, 11.1, p.ProgressPercent) // 2/18 rounded to one decimal
	assert.Equal(t, 30, p.DaysElapsed)
	assert.Equal(t, 60, p.DaysRemaining)
	assert.False(t, p.IsComplete)
}

func TestCalendarProgressComplete(t *testing.T) {
	cal := tomatoCalendar(t, "2025-01-01")
	for _, a := range cal.Activities {
		require.NoError(t, calendar.UpdateActivityStatus(cal, a.Name, entities.StatusCompleted, "", time.Now()))
	}

	p := calendar.CalendarProgress(cal, date("2025-06-01"))
	assert.Equal(t, 100.0, p.ProgressPercent)
	assert.True(t, p.IsComplete)
	assert.Zero(t, p.DaysRemaining)
}
