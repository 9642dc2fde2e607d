// Package climate serves the static historical climate statistics and
// advisory alerts for the Cochabamba region. All content is design-fixed.
package climate

import "github.com/Vexa12/climexa/internal/domain"

// normals holds the twelve monthly averages, January first.
var normals = []domain.ClimateNormal{
	{Month: "Enero", Temp: 18, Rain: 125, Humidity: 75},
	{Month: "Febrero", Temp: 17, Rain: 110, Humidity: 78},
	{Month: "Marzo", Temp: 17, Rain: 85, Humidity: 72},
	{Month: "Abril", Temp: 16, Rain: 35, Humidity: 65},
	{Month: "Mayo", Temp: 14, Rain: 10, Humidity: 58},
	{Month: "Junio", Temp: 13, Rain: 5, Humidity: 55},
	{Month: "Julio", Temp: 13, Rain: 8, Humidity: 54},
	{Month: "Agosto", Temp: 15, Rain: 12, Humidity: 52},
	{Month: "Septiembre", Temp: 16, Rain: 25, Humidity: 58},
	{Month: "Octubre", Temp: 18, Rain: 45, Humidity: 62},
	{Month: "Noviembre", Temp: 19, Rain: 65, Humidity: 68},
	{Month: "Diciembre", Temp: 19, Rain: 95, Humidity: 72},
}

// bestMonths names the most favorable months per activity.
var bestMonths = map[string][]string{
	"camping":     {"Mayo", "Junio", "Julio", "Agosto"},
	"hiking":      {"Abril", "Mayo", "Septiembre", "Octubre"},
	"photography": {"Junio", "Julio", "Agosto"},
	"astronomy":   {"Mayo", "Junio", "Julio"},
}

// Normals returns the monthly averages, January first.
func Normals() []domain.ClimateNormal {
	out := make([]domain.ClimateNormal, len(normals))
	copy(out, normals)
	return out
}

// CurrentNormal returns the averages for the current month.
func CurrentNormal() domain.ClimateNormal {
	return normals[domain.CurrentMonth()-1]
}

// BestMonths returns the most favorable months for the given activity, or
// nil for unknown activities.
func BestMonths(activity string) []string {
	months, ok := bestMonths[activity]
	if !ok {
		return nil
	}
	out := make([]string, len(months))
	copy(out, months)
	return out
}

// Alerts returns the fixed advisory set shown on the alerts screen.
func Alerts() []domain.WeatherAlert {
	return []domain.WeatherAlert{
		{
			Type:        "warning",
			Title:       "Alerta de Viento Fuerte",
			Description: "Vientos de hasta 35 km/h esperados el jueves en zonas altas",
			Location:    "Parque Tunari",
			Date:        "12 de Octubre",
			Severity:    "Moderado",
			Recommendations: []string{
				"Evitar actividades en alturas",
				"Asegurar objetos sueltos",
				"Llevar ropa abrigada",
			},
		},
		{
			Type:        "info",
			Title:       "Condiciones Óptimas",
			Description: "Clima ideal para actividades al aire libre",
			Location:    "Toro Toro",
			Date:        "15-18 de Octubre",
			Severity:    "Favorable",
			Recommendations: []string{
				"Aprovechar para camping",
				"Excelente para fotografía",
				"Llevar protección solar",
			},
		},
		{
			Type:        "alert",
			Title:       "Posible Lluvia",
			Description: "40% de probabilidad de precipitación",
			Location:    "Valle Alto",
			Date:        "20 de Octubre",
			Severity:    "Leve",
			Recommendations: []string{
				"Llevar impermeable",
				"Planificar actividades bajo techo",
				"Verificar pronóstico actualizado",
			},
		},
	}
}
