package serviceImp

import (
	"cropcal/entities"
	"cropcal/pkg/notification/repository"
	svc "cropcal/pkg/notification/service"
	"cropcal/pkg/reminder"
)

type service struct{ repo repository.NotificationRepository }

func New(r repository.NotificationRepository) svc.NotificationService { return &service{repo: r} }

// CreateFromReminder materializes a planned reminder into a stored in-app
// notification for the calendar's owner.
func (s *service) CreateFromReminder(r entities.Reminder, cal *entities.Calendar) error {
	msg := reminder.BuildMessage(r, cal.Crop)
	return s.repo.Create(&entities.Notification{
		UserID:       cal.UserID,
		CalendarID:   cal.CalendarID,
		Crop:         cal.Crop,
		ActivityName: r.ActivityName,
		ActivityDate: r.ActivityDate,
		ReminderType: r.ReminderType,
		Priority:     r.Priority,
		Title:        msg.Title,
		Body:         msg.Body,
		ActionText:   msg.ActionText,
		ActionURL:    msg.ActionURL,
	})
}

func (s *service) List(userID string, unreadOnly bool, limit int) ([]entities.Notification, error) {
	return s.repo.ListByUser(userID, unreadOnly, limit)
}

func (s *service) MarkRead(id uint) error { return s.repo.MarkRead(id) }

func (s *service) Summarize(userID string) (svc.Summary, error) {
	total, urgent, err := s.repo.CountUnread(userID)
	if err != nil {
		return svc.Summary{}, err
	}
	return svc.Summary{UserID: userID, TotalUnread: total, UrgentUnread: urgent}, nil
}
