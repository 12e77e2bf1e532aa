package entities

// Adverse event types.
const (
	EventHeavyRain   = "heavy_rain"
	EventExtremeHeat = "extreme_heat"
	EventFrostRisk   = "frost_risk"
	EventStrongWind  = "strong_wind"
	EventNoRain      = "no_rain"
)

// Event severities.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// ForecastDay is one normalized day of the provider forecast.
type ForecastDay struct {
	Date          string  `json:"date"` // YYYY-MM-DD
	MaxTempC      float64 `json:"maxTempC"`
	MinTempC      float64 `json:"minTempC"`
	TotalPrecipMm float64 `json:"totalPrecipMm"`
	MaxWindKph    float64 `json:"maxWindKph"`
}

type Forecast struct {
	Days []ForecastDay `json:"days"`
}

// Day returns the forecast day matching date, or nil when none matches.
func (f *Forecast) Day(date string) *ForecastDay {
	if f == nil {
		return nil
	}
	for i := range f.Days {
		if f.Days[i].Date == date {
			return &f.Days[i]
		}
	}
	return nil
}

type WeatherAlert struct {
	Headline    string `json:"headline"`
	Severity    string `json:"severity"`
	Urgency     string `json:"urgency"`
	Description string `json:"description"`
	Effective   string `json:"effective"`
	Expires     string `json:"expires"`
}

// AdverseEvent is a detected forecast condition exceeding a crop's thresholds.
// Events are produced fresh on every evaluation and never persisted.
type AdverseEvent struct {
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Severity    string  `json:"severity"`
	Value       float64 `json:"value"`
	Unit        string  `json:"unit"`
	Description string  `json:"description"`
}
