// pkg/weather/client.go

package weather

import "cropcal/entities"

// Client fetches forecasts for a coordinate. Implementations must return
// promptly; a failed or missing forecast is reported as an error and treated
// downstream as "no signal", never as a reason to block.
type Client interface {
	Forecast(lat, lng float64, days int) (*entities.Forecast, error)
	Alerts(lat, lng float64) ([]entities.WeatherAlert, error)
}
