package telemetry

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	metricsdk "go.opentelemetry.io/otel/sdk/metric"
)

// SetupMeterProvider installs a global meter provider whose instruments, including the
// otelhttp server metrics, are exposed through reg. Counters gain a _total suffix and names
// are otherwise kept as they are, dots included.
func SetupMeterProvider(reg prometheus.Registerer) (ShutdownFunc, error) {
	exporter, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}
	mp := metricsdk.NewMeterProvider(metricsdk.WithReader(exporter))
	otel.SetMeterProvider(mp)
	return mp.Shutdown, nil
}
