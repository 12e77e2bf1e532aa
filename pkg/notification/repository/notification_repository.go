package repository

import "cropcal/entities"

type NotificationRepository interface {
	Create(*entities.Notification) error
	ListByUser(userID string, unreadOnly bool, limit int) ([]entities.Notification, error)
	MarkRead(id uint) error
	CountUnread(userID string) (total int64, urgent int64, err error)
}
