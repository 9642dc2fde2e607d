// Package genai implements domain.Forecaster over Google's Gemini API.
package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/Vexa12/climexa/internal/domain"
	"github.com/Vexa12/climexa/internal/observability"
)

// Forecaster asks a generative model for an event weather prediction and
// strictly parses the JSON reply. There is no retry; a failed request is the
// caller's cue to fall back.
type Forecaster struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewForecaster creates a Gemini-backed forecaster.
func NewForecaster(ctx context.Context, apiKey, model string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) (*Forecaster, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("genai api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Forecaster{
		client:  client,
		model:   model,
		timeout: timeout,
		metrics: metrics,
		logger:  logger,
	}, nil
}

// EventForecast requests a prediction for the given date, location, and
// activity. The model is instructed to reply with only a JSON object of the
// expected shape; any deviation is an error, never a partial result.
func (f *Forecaster) EventForecast(ctx context.Context, date, location, activity string) (domain.EventForecast, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	prompt := buildPrompt(date, location, activity)

	start := time.Now()
	resp, err := f.client.Models.GenerateContent(ctx,
		f.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	f.metrics.ForecastDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		f.metrics.ForecastRequests.WithLabelValues("error").Inc()
		return domain.EventForecast{}, fmt.Errorf("generate forecast: %w", err)
	}

	forecast, err := parseForecast(resp.Text())
	if err != nil {
		f.metrics.ForecastRequests.WithLabelValues("error").Inc()
		f.logger.Warn("forecast reply did not parse",
			"date", date,
			"location", location,
			"activity", activity,
			"error", err,
		)
		return domain.EventForecast{}, err
	}

	f.metrics.ForecastRequests.WithLabelValues("success").Inc()
	return forecast, nil
}

// buildPrompt embeds the event details in the prediction prompt and pins the
// reply format to a bare JSON object.
func buildPrompt(date, location, activity string) string {
	return fmt.Sprintf("Predice el clima para la fecha %s en %s, Cochabamba, Bolivia, "+
		"para la actividad de %s. Devuelve un objeto JSON con: temperature (número en °C), "+
		"conditions (string), humidity (número en %%), windSpeed (número en km/h), "+
		"precipitation (número en %%), visibility (número en %%), recommendation (string "+
		"con recomendaciones), warnings (arreglo de strings con advertencias). "+
		"Solo devuelve el JSON, sin texto adicional.", date, location, activity)
}

// forecastPayload mirrors the expected reply shape with pointer fields so a
// missing field is detectable instead of silently defaulting to zero.
type forecastPayload struct {
	Temperature    *float64 `json:"temperature"`
	Conditions     *string  `json:"conditions"`
	Humidity       *float64 `json:"humidity"`
	WindSpeed      *float64 `json:"windSpeed"`
	Precipitation  *float64 `json:"precipitation"`
	Visibility     *float64 `json:"visibility"`
	Recommendation *string  `json:"recommendation"`
	Warnings       []string `json:"warnings"`
}

// parseForecast strictly parses the model reply into a fully-populated
// forecast. Models sometimes wrap JSON in a fenced code block despite the
// instructions, so fences are stripped first.
func parseForecast(text string) (domain.EventForecast, error) {
	text = stripCodeFence(text)

	var p forecastPayload
	if err := json.Unmarshal([]byte(text), &p); err != nil {
		return domain.EventForecast{}, fmt.Errorf("parse forecast reply: %w", err)
	}

	missing := missingFields(p)
	if len(missing) > 0 {
		return domain.EventForecast{}, fmt.Errorf("forecast reply missing fields: %s", strings.Join(missing, ", "))
	}

	warnings := p.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return domain.EventForecast{
		Temperature:    *p.Temperature,
		Conditions:     *p.Conditions,
		Humidity:       *p.Humidity,
		WindSpeed:      *p.WindSpeed,
		Precipitation:  *p.Precipitation,
		Visibility:     *p.Visibility,
		Recommendation: *p.Recommendation,
		Warnings:       warnings,
	}, nil
}

func missingFields(p forecastPayload) []string {
	var missing []string
	if p.Temperature == nil {
		missing = append(missing, "temperature")
	}
	if p.Conditions == nil {
		missing = append(missing, "conditions")
	}
	if p.Humidity == nil {
		missing = append(missing, "humidity")
	}
	if p.WindSpeed == nil {
		missing = append(missing, "windSpeed")
	}
	if p.Precipitation == nil {
		missing = append(missing, "precipitation")
	}
	if p.Visibility == nil {
		missing = append(missing, "visibility")
	}
	if p.Recommendation == nil {
		missing = append(missing, "recommendation")
	}
	return missing
}

func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
