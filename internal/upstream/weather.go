package upstream

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// WeatherClient запрашивает текущую погоду у OpenWeather
type WeatherClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewWeatherClient(baseURL, apiKey string, timeout time.Duration) *WeatherClient {
	return &WeatherClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: newHTTPClient(timeout),
	}
}

// Current возвращает погоду для координат в метрических единицах
func (c *WeatherClient) Current(ctx context.Context, latitude, longitude string) ([]byte, error) {
	params := url.Values{}
	params.Set("lat", latitude)
	params.Set("lon", longitude)
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")

	return getJSON(ctx, c.httpClient, c.baseURL, params)
}
