// pkg/weather/weatherapi_client.go

package weather

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cropcal/entities"
)

type weatherAPI struct {
	endpoint string
	key      string
	httpc    *http.Client
}

// NewWeatherAPI returns a Client backed by the weatherapi.com v1 forecast
// endpoint.
func NewWeatherAPI(endpoint, key string) Client {
	return &weatherAPI{
		endpoint: strings.TrimRight(endpoint, "/"),
		key:      key,
		httpc:    &http.Client{Timeout: 10 * time.Second},
	}
}

// providerResponse is the subset of the provider payload we consume.
type providerResponse struct {
	Forecast struct {
		ForecastDay []struct {
			Date string `json:"date"`
			Day  struct {
				MaxTempC      float64 `json:"maxtemp_c"`
				MinTempC      float64 `json:"mintemp_c"`
				TotalPrecipMm float64 `json:"totalprecip_mm"`
				MaxWindKph    float64 `json:"maxwind_kph"`
			} `json:"day"`
		} `json:"forecastday"`
	} `json:"forecast"`
	Alerts struct {
		Alert []struct {
			Headline  string `json:"headline"`
			Severity  string `json:"severity"`
			Urgency   string `json:"urgency"`
			Desc      string `json:"desc"`
			Effective string `json:"effective"`
			Expires   string `json:"expires"`
		} `json:"alert"`
	} `json:"alerts"`
}

func (c *weatherAPI) fetch(lat, lng float64, days int) (*providerResponse, error) {
	if days > 14 {
		days = 14 // provider cap
	}
	q := url.Values{}
	q.Set("key", c.key)
	q.Set("q", fmt.Sprintf("%f,%f", lat, lng))
	q.Set("days", fmt.Sprintf("%d", days))
	q.Set("aqi", "no")
	q.Set("alerts", "yes")

	resp, err := c.httpc.Get(c.endpoint + "/forecast.json?" + q.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather api: status %d", resp.StatusCode)
	}

	var out providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *weatherAPI) Forecast(lat, lng float64, days int) (*entities.Forecast, error) {
	out, err := c.fetch(lat, lng, days)
	if err != nil {
		return nil, err
	}
	fc := &entities.Forecast{}
	for _, d := range out.Forecast.ForecastDay {
		fc.Days = append(fc.Days, entities.ForecastDay{
			Date:          d.Date,
			MaxTempC:      d.Day.MaxTempC,
			MinTempC:      d.Day.MinTempC,
			TotalPrecipMm: d.Day.TotalPrecipMm,
			MaxWindKph:    d.Day.MaxWindKph,
		})
	}
	return fc, nil
}

func (c *weatherAPI) Alerts(lat, lng float64) ([]entities.WeatherAlert, error) {
	out, err := c.fetch(lat, lng, 1)
	if err != nil {
		return nil, err
	}
	var alerts []entities.WeatherAlert
	for _, a := range out.Alerts.Alert {
		alerts = append(alerts, entities.WeatherAlert{
			Headline:    a.Headline,
			Severity:    a.Severity,
			Urgency:     a.Urgency,
			Description: a.Desc,
			Effective:   a.Effective,
			Expires:     a.Expires,
		})
	}
	return alerts, nil
}
