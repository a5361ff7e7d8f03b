package bootstrap

import (
	"shelter-scheduler/internal/infra/metrics"
	"shelter-scheduler/internal/usecase/shared"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.NewRecorder,
		func(r *metrics.Recorder) shared.Metrics {
			return r
		},
	),
)
