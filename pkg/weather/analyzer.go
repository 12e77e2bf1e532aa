package weather

import (
	"fmt"

	"cropcal/entities"
)

// Fallbacks when a calendar carries zero-valued optimal conditions, matching
// the provider-side defaults the thresholds were tuned against.
const (
	defaultRainfallThresholdMm = 50
	defaultTempMax             = 35
	defaultTempMin             = 10
)

// Analyze scans the forecast for adverse conditions relative to the crop's
// optimal thresholds. Each day is checked independently and can contribute
// several events at once. A nil forecast yields no events; missing weather
// data is no signal, not an error.
func Analyze(fc *entities.Forecast, optimal entities.OptimalConditions) []entities.AdverseEvent {
	if fc == nil {
		return nil
	}

	rainThreshold := optimal.RainfallThresholdMm
	if rainThreshold == 0 {
		rainThreshold = defaultRainfallThresholdMm
	}
	tempMax := optimal.TempMax
	if tempMax == 0 {
		tempMax = defaultTempMax
	}
	tempMin := optimal.TempMin
	if tempMin == 0 {
		tempMin = defaultTempMin
	}

	var events []entities.AdverseEvent
	for _, day := range fc.Days {
		if day.TotalPrecipMm > rainThreshold {
			events = append(events, entities.AdverseEvent{
				Date:        day.Date,
				Type:        entities.EventHeavyRain,
				Severity:    severityAbove(day.TotalPrecipMm, 100),
				Value:       day.TotalPrecipMm,
				Unit:        "mm",
				Description: fmt.Sprintf("Heavy rainfall expected: %gmm", day.TotalPrecipMm),
			})
		}
		if day.MaxTempC > tempMax {
			events = append(events, entities.AdverseEvent{
				Date:        day.Date,
				Type:        entities.EventExtremeHeat,
				Severity:    severityAbove(day.MaxTempC, tempMax+5),
				Value:       day.MaxTempC,
				Unit:        "°C",
				Description: fmt.Sprintf("Extreme heat expected: %g°C", day.MaxTempC),
			})
		}
		if day.MinTempC < tempMin {
			sev := entities.SeverityMedium
			if day.MinTempC < 5 {
				sev = entities.SeverityHigh
			}
			events = append(events, entities.AdverseEvent{
				Date:        day.Date,
				Type:        entities.EventFrostRisk,
				Severity:    sev,
				Value:       day.MinTempC,
				Unit:        "°C",
				Description: fmt.Sprintf("Frost risk: %g°C", day.MinTempC),
			})
		}
		if day.MaxWindKph > 40 {
			events = append(events, entities.AdverseEvent{
				Date:        day.Date,
				Type:        entities.EventStrongWind,
				Severity:    severityAbove(day.MaxWindKph, 60),
				Value:       day.MaxWindKph,
				Unit:        "km/h",
				Description: fmt.Sprintf("Strong winds expected: %g km/h", day.MaxWindKph),
			})
		}
		// Dry-day signal. Fires on every rainless day and is always low
		// severity, so downstream consumers must treat it as advisory.
		if day.TotalPrecipMm == 0 {
			events = append(events, entities.AdverseEvent{
				Date:        day.Date,
				Type:        entities.EventNoRain,
				Severity:    entities.SeverityLow,
				Value:       0,
				Unit:        "mm",
				Description: "No rainfall expected",
			})
		}
	}
	return events
}

func severityAbove(value, highCutoff float64) string {
	if value > highCutoff {
		return entities.SeverityHigh
	}
	return entities.SeverityMedium
}
