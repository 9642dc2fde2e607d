package genai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validReply = `{
	"temperature": 16,
	"conditions": "Parcialmente nublado",
	"humidity": 55,
	"windSpeed": 12,
	"precipitation": 20,
	"visibility": 90,
	"recommendation": "Llevar abrigo ligero",
	"warnings": ["Posible llovizna por la tarde"]
}`

func TestParseForecast_Valid(t *testing.T) {
	forecast, err := parseForecast(validReply)
	require.NoError(t, err)

	assert.InDelta(t, 16, forecast.Temperature, 0.001)
	assert.Equal(t, "Parcialmente nublado", forecast.Conditions)
	assert.InDelta(t, 55, forecast.Humidity, 0.001)
	assert.InDelta(t, 12, forecast.WindSpeed, 0.001)
	assert.InDelta(t, 20, forecast.Precipitation, 0.001)
	assert.InDelta(t, 90, forecast.Visibility, 0.001)
	assert.Equal(t, "Llevar abrigo ligero", forecast.Recommendation)
	assert.Equal(t, []string{"Posible llovizna por la tarde"}, forecast.Warnings)
}

func TestParseForecast_FencedReply(t *testing.T) {
	forecast, err := parseForecast("```json\n" + validReply + "\n```")
	require.NoError(t, err)
	assert.Equal(t, "Llevar abrigo ligero", forecast.Recommendation)
}

func TestParseForecast_MissingWarningsBecomesEmpty(t *testing.T) {
	reply := `{"temperature": 16, "conditions": "Despejado", "humidity": 55,
		"windSpeed": 12, "precipitation": 20, "visibility": 90,
		"recommendation": "Salir temprano"}`

	forecast, err := parseForecast(reply)
	require.NoError(t, err)
	assert.NotNil(t, forecast.Warnings)
	assert.Empty(t, forecast.Warnings)
}

// A reply with missing scalar fields is rejected outright rather than
// returned with silently-defaulted zeros.
func TestParseForecast_MissingFields(t *testing.T) {
	reply := `{"temperature": 16, "conditions": "Despejado"}`

	_, err := parseForecast(reply)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "humidity")
	assert.Contains(t, err.Error(), "recommendation")
}

func TestParseForecast_NotJSON(t *testing.T) {
	_, err := parseForecast("El clima estará agradable mañana.")
	require.Error(t, err)
}

func TestBuildPrompt_EmbedsInputs(t *testing.T) {
	prompt := buildPrompt("2025-10-17", "Parque Tunari", "camping")

	assert.Contains(t, prompt, "2025-10-17")
	assert.Contains(t, prompt, "Parque Tunari")
	assert.Contains(t, prompt, "camping")
	assert.Contains(t, prompt, "Solo devuelve el JSON")
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence(`{"a":1}`))
}
