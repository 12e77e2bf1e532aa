package service

import "cropcal/entities"

type Summary struct {
	UserID       string `json:"userId"`
	TotalUnread  int64  `json:"totalUnread"`
	UrgentUnread int64  `json:"urgentUnread"`
}

type NotificationService interface {
	CreateFromReminder(r entities.Reminder, cal *entities.Calendar) error
	List(userID string, unreadOnly bool, limit int) ([]entities.Notification, error)
	MarkRead(id uint) error
	Summarize(userID string) (Summary, error)
}
