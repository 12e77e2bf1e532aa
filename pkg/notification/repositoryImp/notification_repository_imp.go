package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"cropcal/entities"
	"cropcal/pkg/notification/repository"
)

type notifRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.NotificationRepository { return &notifRepo{db} }

func (r *notifRepo) Create(n *entities.Notification) error { return r.db.Create(n).Error }

func (r *notifRepo) ListByUser(userID string, unreadOnly bool, limit int) ([]entities.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	q := r.db.Where("user_id = ?", userID)
	if unreadOnly {
		q = q.Where("read = ?", false)
	}
	var out []entities.Notification
	if err := q.Order("created_at DESC").Limit(limit).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *notifRepo) MarkRead(id uint) error {
	now := time.Now()
	return r.db.Model(&entities.Notification{}).Where("id = ?", id).
		Updates(map[string]any{"read": true, "read_at": &now}).Error
}

func (r *notifRepo) CountUnread(userID string) (int64, int64, error) {
	var total, urgent int64
	if err := r.db.Model(&entities.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.Model(&entities.Notification{}).
		Where("user_id = ? AND read = ? AND priority = ?", userID, false, entities.PriorityUrgent).
		Count(&urgent).Error; err != nil {
		return 0, 0, err
	}
	return total, urgent, nil
}
