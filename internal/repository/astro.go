package repository

import (
	"errors"
	"log/slog"

	"github.com/Vexa12/climexa/internal/domain"
	"github.com/Vexa12/climexa/internal/store"
)

// AstronomicalEvents accesses the astronomical event collection. The
// collection is read-only from the API's perspective; it is seeded with a
// fixed default set the first time it is read while empty, and that seed is
// persisted so later reads are stable.
type AstronomicalEvents struct {
	store  *store.Store
	logger *slog.Logger
}

// NewAstronomicalEvents creates the astronomical event repository.
func NewAstronomicalEvents(s *store.Store, logger *slog.Logger) *AstronomicalEvents {
	return &AstronomicalEvents{store: s, logger: logger}
}

// List returns all astronomical events, seeding the defaults on first read.
func (r *AstronomicalEvents) List() ([]domain.AstronomicalEvent, error) {
	var events []domain.AstronomicalEvent
	err := r.store.Read(store.KeyAstronomicalEvents, &events)
	if err == nil {
		return events, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	events = DefaultAstronomicalEvents()
	if err := r.store.Write(store.KeyAstronomicalEvents, events); err != nil {
		return nil, err
	}
	r.logger.Info("seeded default astronomical events", "count", len(events))
	return events, nil
}

// DefaultAstronomicalEvents returns the fixed seed set. The dates, times,
// and locations are design-fixed content, not computed.
func DefaultAstronomicalEvents() []domain.AstronomicalEvent {
	return []domain.AstronomicalEvent{
		{
			ID:              "1",
			Type:            domain.AstroFullMoon,
			Title:           "Luna Llena de Octubre",
			Date:            "2025-10-17",
			Time:            "20:12",
			Description:     "Luna llena visible con claridad excepcional",
			Visibility:      90,
			OptimalLocation: "Mirador del Cristo, Cochabamba",
			Recommendations: []string{"Mejor hora: 20:00 - 23:00", "Llevar cámara", "Temperatura estimada: 12°C"},
		},
		{
			ID:              "2",
			Type:            domain.AstroMeteorShower,
			Title:           "Lluvia de Meteoros Oriónidas",
			Date:            "2025-10-21",
			Time:            "02:00",
			Description:     "Pico de actividad de las Oriónidas con hasta 20 meteoros por hora",
			Visibility:      85,
			OptimalLocation: "Parque Tunari",
			Recommendations: []string{"Mejor hora: 02:00 - 05:00", "Alejarse de luces urbanas", "Llevar abrigo"},
		},
		{
			ID:              "3",
			Type:            domain.AstroNewMoon,
			Title:           "Luna Nueva",
			Date:            "2025-11-01",
			Time:            "05:47",
			Description:     "Fase ideal para observación de estrellas y cielo profundo",
			Visibility:      95,
			OptimalLocation: "Toro Toro",
			Recommendations: []string{"Cielo más oscuro del mes", "Ideal para fotografía astronómica", "Llevar telescopio"},
		},
	}
}
