package usecase

import (
	"io"
	"log/slog"

	"club-ads/internal/metrics"
)

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return logger
}

func orNop(m *metrics.Metrics) *metrics.Metrics {
	if m == nil {
		return metrics.NewNop()
	}
	return m
}
