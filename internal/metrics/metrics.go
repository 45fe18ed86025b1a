package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReadingsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cosmicweather_readings_generated_total",
			Help: "Total horoscope readings generated",
		},
		[]string{"mood", "influence"},
	)

	WeatherFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cosmicweather_weather_fetches_total",
			Help: "Weather store lookups by result",
		},
		[]string{"result"},
	)

	ScenariosSeeded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cosmicweather_scenarios_seeded_total",
			Help: "Weather scenarios written to the store",
		},
	)
)

// WriteTextfile writes the default registry to path in the text exposition
// format, for node_exporter's textfile collector.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
