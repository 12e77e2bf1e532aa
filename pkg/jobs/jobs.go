package jobs

import (
	"log"
	"time"

	"cropcal/pkg/calendar/repository"
	"cropcal/pkg/notification/service"
	"cropcal/pkg/reminder"
	"cropcal/pkg/scheduler"
)

// Processor drives the periodic pass over all active calendars: check the
// forecast, reschedule where needed, and store today's reminders as in-app
// notifications. Calendars are independent units of work and are handled
// sequentially; one failing calendar never stops the sweep.
type Processor struct {
	repo  repository.CalendarRepository
	sched *scheduler.Service
	notif service.NotificationService
}

func New(repo repository.CalendarRepository, sched *scheduler.Service, notif service.NotificationService) *Processor {
	return &Processor{repo: repo, sched: sched, notif: notif}
}

func (p *Processor) ProcessActiveCalendars(now time.Time) {
	cals, err := p.repo.ListActive()
	if err != nil {
		log.Printf("[jobs] list active calendars: %v", err)
		return
	}
	log.Printf("[jobs] processing %d active calendar(s)", len(cals))

	for i := range cals {
		cal := &cals[i]

		updated, eval, err := p.sched.RunOnce(cal, now)
		if err != nil {
			log.Printf("[jobs] calendar %s: reschedule: %v", cal.CalendarID, err)
			continue
		}
		if eval.NeedsRescheduling {
			log.Printf("[jobs] calendar %s (%s): rescheduled %d activities", cal.CalendarID, cal.Crop, len(eval.Recommendations))
		}

		stored := 0
		for _, r := range reminder.DueToday(updated, now) {
			if err := p.notif.CreateFromReminder(r, updated); err != nil {
				log.Printf("[jobs] calendar %s: store reminder %q: %v", cal.CalendarID, r.ActivityName, err)
				continue
			}
			stored++
		}
		if stored > 0 {
			log.Printf("[jobs] calendar %s: %d reminder(s) stored", cal.CalendarID, stored)
		}
	}
}

// Run executes one pass immediately, then repeats on the interval until stop
// closes.
func (p *Processor) Run(interval time.Duration, stop <-chan struct{}) {
	log.Printf("[jobs] scheduler started, interval %s", interval)
	p.ProcessActiveCalendars(time.Now())

	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			p.ProcessActiveCalendars(time.Now())
		case <-stop:
			log.Printf("[jobs] scheduler stopped")
			return
		}
	}
}
