package sensors

import (
	"fmt"
	"io"
	"time"

	"github.com/aquanet/fleet-alerting/pkg/types"
	"gopkg.in/yaml.v2"
)

type limitsFile struct {
	CooldownMinutes int                          `yaml:"cooldownMinutes"`
	SensorLimits    map[string]types.SensorLimit `yaml:"sensorlimits"`
}

// LoadConfiguration reads the sensor limits table. Sensors without an
// entry are ignored entirely by the monitor.
func LoadConfiguration(r io.Reader) (*Config, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	f := limitsFile{}
	err = yaml.Unmarshal(b, &f)
	if err != nil {
		return nil, fmt.Errorf("could not parse sensor limits: %w", err)
	}

	cfg := DefaultConfig()

	if f.CooldownMinutes > 0 {
		cfg.Cooldown = time.Duration(f.CooldownMinutes) * time.Minute
	}
	if len(f.SensorLimits) > 0 {
		cfg.Limits = f.SensorLimits
	}

	return cfg, nil
}
