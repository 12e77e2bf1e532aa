package repositoryImp

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"cropcal/entities"
	"cropcal/pkg/calendar/repository"
)

type calRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CalendarRepository { return &calRepo{db} }

func (r *calRepo) Save(c *entities.Calendar) (string, error) {
	if c.CalendarID == "" {
		c.CalendarID = uuid.NewString()
	}
	return c.CalendarID, r.db.Save(c).Error
}

func (r *calRepo) Load(id string) (*entities.Calendar, error) {
	var c entities.Calendar
	if err := r.db.First(&c, "calendar_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *calRepo) ListActive() ([]entities.Calendar, error) {
	var out []entities.Calendar
	if err := r.db.Where("status = ?", entities.CalendarActive).Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *calRepo) ListByUser(userID string) ([]entities.Calendar, error) {
	var out []entities.Calendar
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
