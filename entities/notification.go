package entities

import (
	"time"

	"gorm.io/gorm"
)

// Notification is a stored in-app notice materialized from a Reminder.
// Delivery to devices is handled outside this service; we only keep the
// read/unread state the app surfaces.
type Notification struct {
	gorm.Model
	UserID       string     `gorm:"index" json:"userId"`
	CalendarID   string     `gorm:"index" json:"calendarId"`
	Crop         string     `json:"crop"`
	ActivityName string     `json:"activityName"`
	ActivityDate string     `json:"activityDate"`
	ReminderType string     `json:"reminderType"`
	Priority     string     `gorm:"index" json:"priority"`
	Title        string     `json:"title"`
	Body         string     `json:"body"`
	ActionText   string     `json:"actionText"`
	ActionURL    string     `json:"actionUrl"`
	Read         bool       `gorm:"index" json:"read"`
	ReadAt       *time.Time `json:"readAt,omitempty"`
}
