package dashboard

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/settings"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
)

// WeatherClient açık hava durumu API'sine (Open-Meteo) gider. Anahtar
// gerektirmez; çiftlik profilindeki koordinatlar kullanılır.
type WeatherClient struct {
	httpClient *resty.Client
}

func NewWeatherClient(baseURL string) *WeatherClient {
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetTimeout(10 * time.Second)

	return &WeatherClient{httpClient: client}
}

type openMeteoResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    float64 `json:"relative_humidity_2m"`
		WindSpeed   float64 `json:"wind_speed_10m"`
		WeatherCode int     `json:"weather_code"`
	} `json:"current"`
}

type WeatherResponse struct {
	Available   bool    `json:"available"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	Condition   string  `json:"condition"`
}

// WMO hava kodlarının kabaca Türkçe karşılığı
func describeWeatherCode(code int) string {
	switch {
	case code == 0:
		return "Açık"
	case code <= 3:
		return "Parçalı bulutlu"
	case code <= 48:
		return "Sisli"
	case code <= 57:
		return "Çisenti"
	case code <= 67:
		return "Yağmurlu"
	case code <= 77:
		return "Kar yağışlı"
	case code <= 82:
		return "Sağanak"
	case code <= 86:
		return "Kar sağanağı"
	default:
		return "Fırtına"
	}
}

func (w *WeatherClient) Current(ctx context.Context, lat, lon float64) (*WeatherResponse, error) {
	result := new(openMeteoResponse)

	resp, err := w.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"latitude":  fmt.Sprintf("%.4f", lat),
			"longitude": fmt.Sprintf("%.4f", lon),
			"current":   "temperature_2m,relative_humidity_2m,wind_speed_10m,weather_code",
		}).
		SetResult(result).
		Get("/v1/forecast")
	if err != nil {
		return nil, fmt.Errorf("hava durumu isteği: %w", err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, fmt.Errorf("hava durumu api hatası: status=%d", resp.StatusCode())
	}

	return &WeatherResponse{
		Available:   true,
		Temperature: result.Current.Temperature,
		Humidity:    result.Current.Humidity,
		WindSpeed:   result.Current.WindSpeed,
		Condition:   describeWeatherCode(result.Current.WeatherCode),
	}, nil
}

// GET /api/dashboard/weather
// API'ye ulaşılamazsa hata yerine available=false döner; ana ekran
// hava durumu yüzünden kırılmaz.
func WeatherHandler(client *WeatherClient) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, err := settings.GetOrCreateProfile(database.DB)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çiftlik profili okunamadı")
		}

		ctx, cancel := context.WithTimeout(c.Context(), 8*time.Second)
		defer cancel()

		weather, err := client.Current(ctx, profile.Latitude, profile.Longitude)
		if err != nil {
			return c.JSON(WeatherResponse{Available: false})
		}

		return c.JSON(weather)
	}
}
