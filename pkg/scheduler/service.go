package scheduler

import (
	"log"
	"time"

	"cropcal/entities"
	"cropcal/pkg/weather"
)

type calendarSaver interface {
	Save(*entities.Calendar) (string, error)
}

// Service runs the reschedule pass against the live forecast and persists the
// result. The pure evaluation/application logic stays in this package's
// free functions; Service only adds the I/O edges.
type Service struct {
	weather weather.Client
	repo    calendarSaver
}

func NewService(w weather.Client, repo calendarSaver) *Service {
	return &Service{weather: w, repo: repo}
}

// RunOnce fetches the 7-day forecast for the calendar's location, evaluates
// and applies rescheduling, and saves the calendar when anything changed.
// Forecast failures are logged and treated as no signal.
func (s *Service) RunOnce(cal *entities.Calendar, now time.Time) (*entities.Calendar, Evaluation, error) {
	fc, err := s.weather.Forecast(cal.Location.Lat, cal.Location.Lng, WindowDays)
	if err != nil {
		log.Printf("[scheduler] forecast unavailable for calendar %s: %v", cal.CalendarID, err)
		fc = nil
	}

	cal, eval := AutoReschedule(cal, fc, now)
	if eval.NeedsRescheduling {
		if _, err := s.repo.Save(cal); err != nil {
			return cal, eval, err
		}
	}
	return cal, eval, nil
}
