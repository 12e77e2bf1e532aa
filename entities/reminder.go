package entities

// Reminder types.
const (
	ReminderThreeDaysBefore = "3_days_before"
	ReminderOneDayBefore    = "1_day_before"
	ReminderMorningOf       = "morning_of"
	ReminderOverdue         = "overdue"
)

// Reminder priorities.
const (
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Reminder is a derived, time-anchored notice about an activity. Reminders are
// regenerated from calendar state on each planning pass, never stored.
type Reminder struct {
	ActivityName        string `json:"activityName"`
	ActivityDate        string `json:"activityDate"`
	ActivityCategory    string `json:"activityCategory"`
	ActivityDescription string `json:"activityDescription"`
	ActivitySource      string `json:"activitySource"`
	ReminderType        string `json:"reminderType"`
	ReminderDate        string `json:"reminderDate"` // the day this reminder should fire
	DaysUntil           int    `json:"daysUntil"`
	DaysOverdue         int    `json:"daysOverdue,omitempty"`
	Priority            string `json:"priority"`
}
