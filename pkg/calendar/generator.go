package calendar

import (
	"time"

	"cropcal/entities"
	"cropcal/pkg/catalog"
)

// Generator expands catalog templates into dated calendars. It holds only the
// injected catalog reference and performs no I/O.
type Generator struct {
	cat *catalog.Catalog
}

func NewGenerator(cat *catalog.Catalog) *Generator { return &Generator{cat: cat} }

// Generate builds a Calendar for crop sown on sowingDate (YYYY-MM-DD).
// Each activity lands on sowingDate + its template offset, in catalog order.
// The day-0 activity starts out completed: creating a calendar means the
// sowing-day work already happened.
func (g *Generator) Generate(crop, sowingDate string, loc entities.Location, userID string) (*entities.Calendar, error) {
	t, err := g.cat.Get(crop)
	if err != nil {
		return nil, err
	}

	sowing, err := time.Parse(entities.DateFormat, sowingDate)
	if err != nil {
		return nil, &InvalidDateError{Value: sowingDate}
	}

	acts := make([]entities.Activity, 0, len(t.Activities))
	for _, at := range t.Activities {
		date := sowing.AddDate(0, 0, at.Day).Format(entities.DateFormat)
		status := entities.StatusPending
		if at.Day == 0 {
			status = entities.StatusCompleted
		}
		acts = append(acts, entities.Activity{
			Name:          at.Name,
			Category:      at.Category,
			Description:   at.Description,
			Source:        at.Source,
			ScheduledDate: date,
			OriginalDate:  date,
			DayOffset:     at.Day,
			Status:        status,
		})
	}

	// The calendar snapshots the template's conditions; the critical-stages
	// map must be copied so edits to one calendar never reach the shared
	// catalog entry.
	optimal := t.Optimal
	if t.Optimal.CriticalStages != nil {
		optimal.CriticalStages = make(map[string]string, len(t.Optimal.CriticalStages))
		for stage, note := range t.Optimal.CriticalStages {
			optimal.CriticalStages[stage] = note
		}
	}

	return &entities.Calendar{
		UserID:              userID,
		Crop:                crop,
		SowingDate:          sowingDate,
		ExpectedHarvestDate: sowing.AddDate(0, 0, t.DurationDays).Format(entities.DateFormat),
		Location:            loc,
		DurationDays:        t.DurationDays,
		Activities:          acts,
		ReschedulingHistory: []entities.HistoryEntry{},
		OptimalConditions:   optimal,
		Status:              entities.CalendarActive,
		DataSource:          t.DataSource,
	}, nil
}
