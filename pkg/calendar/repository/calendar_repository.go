package repository

import "cropcal/entities"

type CalendarRepository interface {
	Save(*entities.Calendar) (string, error)
	Load(id string) (*entities.Calendar, error)
	ListActive() ([]entities.Calendar, error)
	ListByUser(userID string) ([]entities.Calendar, error)
}
