package commands

import (
	"fmt"
	"time"

	"github.com/marmos91/epochctl/internal/caltime"
	"github.com/marmos91/epochctl/internal/config"
	"github.com/marmos91/epochctl/internal/convert"
	"github.com/marmos91/epochctl/internal/logger"
)

// InitLogger initializes the structured logger from configuration.
func InitLogger(cfg *config.Config) error {
	loggerCfg := logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}
	if err := logger.Init(loggerCfg); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// newConverter builds a converter with the given timezone for local output
// renderings. An empty timezone uses the system's local zone.
func newConverter(timezone string, maxYear int) (*convert.Converter, error) {
	local := time.Local
	if timezone != "" {
		loc, err := (caltime.SystemZones{}).Resolve(timezone)
		if err != nil {
			return nil, fmt.Errorf("timezone %q: %w", timezone, err)
		}
		local = loc
	}
	return convert.New(local, maxYear, caltime.SystemZones{}), nil
}
