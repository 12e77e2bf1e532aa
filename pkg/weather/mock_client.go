// pkg/weather/mock_client.go

package weather

import "cropcal/entities"

type mockClient struct {
	forecast *entities.Forecast
	alerts   []entities.WeatherAlert
}

// NewMock returns a Client serving a fixed forecast. Used when no API key is
// configured, and by tests.
func NewMock(fc *entities.Forecast, alerts []entities.WeatherAlert) Client {
	return &mockClient{forecast: fc, alerts: alerts}
}

func (m *mockClient) Forecast(lat, lng float64, days int) (*entities.Forecast, error) {
	return m.forecast, nil
}

func (m *mockClient) Alerts(lat, lng float64) ([]entities.WeatherAlert, error) {
	return m.alerts, nil
}
