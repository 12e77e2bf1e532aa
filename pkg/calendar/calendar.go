package calendar

import (
	"fmt"
	"sort"
	"time"

	"cropcal/entities"
)

// UpdateActivityStatus sets the status of the named activity in place. It is
// the caller-driven mutation path ("mark complete"); automatic date shifts go
// through the scheduler package.
func UpdateActivityStatus(cal *entities.Calendar, name, status, notes string, now time.Time) error {
	switch status {
	case entities.StatusPending, entities.StatusCompleted, entities.StatusSkipped, entities.StatusRescheduled:
	default:
		return fmt.Errorf("invalid activity status %q", status)
	}
	for i := range cal.Activities {
		if cal.Activities[i].Name != name {
			continue
		}
		cal.Activities[i].Status = status
		if notes != "" {
			cal.Activities[i].Notes = notes
		}
		cal.Activities[i].UpdatedAt = now.UTC().Format(time.RFC3339)
		return nil
	}
	return &ActivityNotFoundError{Name: name}
}

// UpcomingActivity pairs an activity with how many days away it is.
type UpcomingActivity struct {
	entities.Activity
	DaysUntil int `json:"daysUntil"`
}

// UpcomingActivities lists not-yet-completed activities scheduled within the
// next daysAhead days, soonest first.
func UpcomingActivities(cal *entities.Calendar, today time.Time, daysAhead int) []UpcomingActivity {
	day := midnight(today)
	cutoff := day.AddDate(0, 0, daysAhead)

	var out []UpcomingActivity
	for _, a := range cal.Activities {
		if a.Status == entities.StatusCompleted {
			continue
		}
		d, err := time.Parse(entities.DateFormat, a.ScheduledDate)
		if err != nil {
			continue
		}
		if d.Before(day) || d.After(cutoff) {
			continue
		}
		out = append(out, UpcomingActivity{Activity: a, DaysUntil: daysBetween(day, d)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ScheduledDate < out[j].ScheduledDate })
	return out
}

// OverdueActivity pairs an activity with how many days late it is.
type OverdueActivity struct {
	entities.Activity
	DaysOverdue int `json:"daysOverdue"`
}

// OverdueActivities lists pending activities whose date has passed, most
// overdue first.
func OverdueActivities(cal *entities.Calendar, today time.Time) []OverdueActivity {
	day := midnight(today)

	var out []OverdueActivity
	for _, a := range cal.Activities {
		if a.Status != entities.StatusPending {
			continue
		}
		d, err := time.Parse(entities.DateFormat, a.ScheduledDate)
		if err != nil || !d.Before(day) {
			continue
		}
		out = append(out, OverdueActivity{Activity: a, DaysOverdue: daysBetween(d, day)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DaysOverdue > out[j].DaysOverdue })
	return out
}

// Progress summarizes how far a calendar has advanced.
type Progress struct {
	TotalActivities int     `json:"totalActivities"`
	Completed       int     `json:"completed"`
	Pending         int     `json:"pending"`
	Skipped         int     `json:"skipped"`
	Rescheduled     int     `json:"rescheduled"`
	ProgressPercent float64 `json:"progressPercent"`
	DaysElapsed     int     `json:"daysElapsed"`
	DaysRemaining   int     `json:"daysRemaining"`
	IsComplete      bool    `json:"isComplete"`
}

func CalendarProgress(cal *entities.Calendar, today time.Time) Progress {
	p := Progress{TotalActivities: len(cal.Activities)}
	for _, a := range cal.Activities {
		switch a.Status {
		case entities.StatusCompleted:
			p.Completed++
		case entities.StatusPending:
			p.Pending++
		case entities.StatusSkipped:
			p.Skipped++
		case entities.StatusRescheduled:
			p.Rescheduled++
		}
	}
	if p.TotalActivities > 0 {
		pct := float64(p.Completed) / float64(p.TotalActivities) * 100
		p.ProgressPercent = float64(int(pct*10+0.5)) / 10
	}
	if sowing, err := time.Parse(entities.DateFormat, cal.SowingDate); err == nil {
		p.DaysElapsed = daysBetween(sowing, midnight(today))
		if rem := cal.DurationDays - p.DaysElapsed; rem > 0 {
			p.DaysRemaining = rem
		}
	}
	p.IsComplete = p.Completed == p.TotalActivities
	return p
}

// midnight truncates t to its calendar day in UTC, so day arithmetic against
// parsed YYYY-MM-DD values is exact.
func midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
