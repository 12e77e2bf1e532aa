package scheduler

import (
	"time"

	"cropcal/entities"
	"cropcal/pkg/weather"
)

// Forecasts beyond a week are too unreliable to act on; later runs pick those
// activities up as their dates approach.
const WindowDays = 7

// Recommendation is one infeasible-activity finding from an evaluation pass.
type Recommendation struct {
	Activity           string `json:"activity"`
	CurrentDate        string `json:"currentDate"`
	Reason             string `json:"reason"`
	Action             string `json:"action"`
	SuggestedDelayDays int    `json:"suggestedDelayDays"`
}

// Evaluation is the outcome of checking one calendar against the forecast.
type Evaluation struct {
	NeedsRescheduling    bool                    `json:"needsRescheduling"`
	Reason               string                  `json:"reason,omitempty"`
	AdverseWeatherEvents []entities.AdverseEvent `json:"adverseWeatherEvents"`
	Recommendations      []Recommendation        `json:"recommendations"`
	ForecastCheckedAt    string                  `json:"forecastCheckedAt"`
}

// EvaluateForRescheduling checks every pending activity scheduled within
// [today, today+WindowDays] against the forecast. Activities already
// rescheduled, completed, or skipped are not eligible, which is what makes
// back-to-back runs idempotent. A nil forecast produces an evaluation with no
// recommendations.
func EvaluateForRescheduling(cal *entities.Calendar, fc *entities.Forecast, now time.Time) Evaluation {
	eval := Evaluation{ForecastCheckedAt: now.UTC().Format(time.RFC3339)}
	if fc == nil {
		eval.Reason = "Weather data unavailable"
		return eval
	}

	eval.AdverseWeatherEvents = weather.Analyze(fc, cal.OptimalConditions)

	day := midnight(now)
	cutoff := day.AddDate(0, 0, WindowDays)
	for _, act := range cal.Activities {
		if act.Status != entities.StatusPending {
			continue
		}
		d, err := time.Parse(entities.DateFormat, act.ScheduledDate)
		if err != nil || d.Before(day) || d.After(cutoff) {
			continue
		}
		feas := weather.Evaluate(act, fc.Day(act.ScheduledDate), cal.OptimalConditions)
		if feas.Feasible {
			continue
		}
		eval.Recommendations = append(eval.Recommendations, Recommendation{
			Activity:           act.Name,
			CurrentDate:        act.ScheduledDate,
			Reason:             feas.Reason,
			Action:             feas.Recommendation,
			SuggestedDelayDays: feas.SuggestedDelayDays,
		})
	}

	eval.NeedsRescheduling = len(eval.Recommendations) > 0
	return eval
}

// ApplyRescheduling shifts each recommended activity by its suggested delay
// and marks it rescheduled. A recommendation naming an unknown activity is
// skipped; one bad entry must not abort the rest of the batch. When at least
// one activity changed, exactly one history entry covering the whole pass is
// appended.
func ApplyRescheduling(cal *entities.Calendar, recs []Recommendation, now time.Time) *entities.Calendar {
	stamp := now.UTC().Format(time.RFC3339)

	var changes []entities.HistoryChange
	for _, rec := range recs {
		for i := range cal.Activities {
			act := &cal.Activities[i]
			if act.Name != rec.Activity {
				continue
			}
			oldDate := act.ScheduledDate
			d, err := time.Parse(entities.DateFormat, oldDate)
			if err != nil {
				break
			}
			newDate := d.AddDate(0, 0, rec.SuggestedDelayDays).Format(entities.DateFormat)

			act.ScheduledDate = newDate
			act.Status = entities.StatusRescheduled
			act.RescheduledAt = stamp
			act.ReschedulingReason = rec.Reason

			changes = append(changes, entities.HistoryChange{
				Activity: rec.Activity,
				OldDate:  oldDate,
				NewDate:  newDate,
				Reason:   rec.Reason,
			})
			break
		}
	}

	if len(changes) > 0 {
		cal.ReschedulingHistory = append(cal.ReschedulingHistory, entities.HistoryEntry{
			Timestamp: stamp,
			Changes:   changes,
			Reason:    "Automatic weather-based rescheduling",
		})
	}
	return cal
}

// AutoReschedule composes evaluation and application.
func AutoReschedule(cal *entities.Calendar, fc *entities.Forecast, now time.Time) (*entities.Calendar, Evaluation) {
	eval := EvaluateForRescheduling(cal, fc, now)
	if eval.NeedsRescheduling {
		cal = ApplyRescheduling(cal, eval.Recommendations, now)
	}
	return cal, eval
}

func midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
