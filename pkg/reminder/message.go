package reminder

import (
	"fmt"
	"unicode/utf8"

	"cropcal/entities"
)

// Message is the rendered notification content for one reminder.
type Message struct {
	Title      string `json:"title"`
	Body       string `json:"body"`
	ActionText string `json:"actionText"`
	ActionURL  string `json:"actionUrl"`
}

// BuildMessage formats a reminder for display. Bodies are kept short; the app
// links back to the calendar for the full activity description.
func BuildMessage(r entities.Reminder, crop string) Message {
	desc := truncate(r.ActivityDescription, 100)

	switch r.ReminderType {
	case entities.ReminderThreeDaysBefore:
		return Message{
			Title:      "Upcoming: " + r.ActivityName,
			Body:       fmt.Sprintf("In 3 days for %s: %s", crop, desc),
			ActionText: "View Calendar",
			ActionURL:  "/calendar/" + r.ActivityDate,
		}
	case entities.ReminderOneDayBefore:
		return Message{
			Title:      "Tomorrow: " + r.ActivityName,
			Body:       fmt.Sprintf("%s: %s\n\nSource: %s", crop, desc, r.ActivitySource),
			ActionText: "Check Weather",
			ActionURL:  "/weather",
		}
	case entities.ReminderMorningOf:
		return Message{
			Title:      "Today: " + r.ActivityName,
			Body:       fmt.Sprintf("%s: %s\n\nCategory: %s", crop, desc, r.ActivityCategory),
			ActionText: "Mark as Done",
			ActionURL:  "/calendar/complete/" + r.ActivityDate,
		}
	case entities.ReminderOverdue:
		return Message{
			Title:      "Overdue: " + r.ActivityName,
			Body:       fmt.Sprintf("%s: This was scheduled %d day(s) ago. Complete soon!", crop, r.DaysOverdue),
			ActionText: "Reschedule",
			ActionURL:  "/calendar/reschedule",
		}
	}
	return Message{
		Title:      r.ActivityName,
		Body:       fmt.Sprintf("%s: %s", crop, desc),
		ActionText: "View",
		ActionURL:  "/calendar",
	}
}

// truncate cuts s to at most n runes, never splitting a multi-byte character.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
