package match

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "gridduel/internal/usecase/match"

type metrics struct {
	processed metric.Int64Counter
	rejected  metric.Int64Counter
	dropped   metric.Int64Counter
}

// newMetrics uses the global OTel meter, which is a no-op unless a provider
// has been installed.
func newMetrics() (*metrics, error) {
	m := otel.Meter(instrumentationName)

	processed, err := m.Int64Counter(
		"gridduel.commands.processed",
		metric.WithDescription("Commands accepted and committed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating processed counter: %w", err)
	}

	rejected, err := m.Int64Counter(
		"gridduel.commands.rejected",
		metric.WithDescription("Commands rejected by rule validation"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating rejected counter: %w", err)
	}

	dropped, err := m.Int64Counter(
		"gridduel.archive.dropped",
		metric.WithDescription("Archive records dropped due to a full queue"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating dropped counter: %w", err)
	}

	return &metrics{processed: processed, rejected: rejected, dropped: dropped}, nil
}

func (m *metrics) accepted(ctx context.Context, command string) {
	m.processed.Add(ctx, 1, metric.WithAttributes(attribute.String("command", command)))
}

func (m *metrics) rejection(ctx context.Context, command, kind string) {
	m.rejected.Add(ctx, 1, metric.WithAttributes(
		attribute.String("command", command),
		attribute.String("error", kind),
	))
}
