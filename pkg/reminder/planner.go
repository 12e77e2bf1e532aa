package reminder

import (
	"time"

	"cropcal/entities"
)

// Activities further out than this produce no reminders at all.
const maxHorizonDays = 30

// Plan derives the reminder schedule for every pending or rescheduled
// activity. An activity 3+ days out legitimately yields up to three reminders
// (3-day, 1-day, day-of), each dated to fire on its own day; callers filter by
// ReminderDate to get what is due. Plan is a pure function of the calendar and
// today — identical inputs give identical output.
func Plan(cal *entities.Calendar, today time.Time) []entities.Reminder {
	day := midnight(today)
	todayStr := day.Format(entities.DateFormat)

	var out []entities.Reminder
	for _, act := range cal.Activities {
		if act.Status != entities.StatusPending && act.Status != entities.StatusRescheduled {
			continue
		}
		d, err := time.Parse(entities.DateFormat, act.ScheduledDate)
		if err != nil {
			continue
		}
		daysUntil := int(d.Sub(day).Hours() / 24)
		if daysUntil > maxHorizonDays {
			continue
		}

		base := entities.Reminder{
			ActivityName:        act.Name,
			ActivityDate:        act.ScheduledDate,
			ActivityCategory:    act.Category,
			ActivityDescription: act.Description,
			ActivitySource:      sourceOrDefault(act.Source),
		}

		if daysUntil >= 3 {
			r := base
			r.ReminderType = entities.ReminderThreeDaysBefore
			r.ReminderDate = d.AddDate(0, 0, -3).Format(entities.DateFormat)
			r.DaysUntil = 3
			r.Priority = entities.PriorityMedium
			out = append(out, r)
		}
		if daysUntil >= 1 {
			r := base
			r.ReminderType = entities.ReminderOneDayBefore
			r.ReminderDate = d.AddDate(0, 0, -1).Format(entities.DateFormat)
			r.DaysUntil = 1
			r.Priority = entities.PriorityHigh
			out = append(out, r)
		}
		if daysUntil == 0 {
			r := base
			r.ReminderType = entities.ReminderMorningOf
			r.ReminderDate = act.ScheduledDate
			r.Priority = entities.PriorityUrgent
			out = append(out, r)
		}
		if daysUntil < 0 {
			r := base
			r.ReminderType = entities.ReminderOverdue
			r.ReminderDate = todayStr
			r.DaysOverdue = -daysUntil
			r.Priority = entities.PriorityUrgent
			out = append(out, r)
		}
	}
	return out
}

// DueToday filters the plan down to reminders that should fire today.
func DueToday(cal *entities.Calendar, today time.Time) []entities.Reminder {
	todayStr := midnight(today).Format(entities.DateFormat)
	var due []entities.Reminder
	for _, r := range Plan(cal, today) {
		if r.ReminderDate == todayStr {
			due = append(due, r)
		}
	}
	return due
}

func sourceOrDefault(s string) string {
	if s == "" {
		return "Standard practice"
	}
	return s
}

func midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
