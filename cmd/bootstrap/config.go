package bootstrap

import (
	"time"

	"shelter-scheduler/internal/pkg/config"
	"shelter-scheduler/internal/pkg/errs"
	"shelter-scheduler/internal/pkg/timefmt"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(ConfigureTimeZone),
)

// ConfigureTimeZone sets the zone wire datetimes are read and written in.
func ConfigureTimeZone(cfg config.Config) error {
	loc, err := time.LoadLocation(cfg.Schedule.TimeZone)
	if err != nil {
		return errs.Wrapf(err, "invalid SCHEDULE_TIMEZONE %q", cfg.Schedule.TimeZone)
	}
	timefmt.SetLocation(loc)
	return nil
}
