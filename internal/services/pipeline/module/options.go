package module

import (
	"time"

	"tareeq/internal/platform/config"
)

// Options holds configuration settings for the pipeline module
type Options struct {
	BatchSize        int
	Workers          int
	Threshold        float64
	Window           time.Duration
	MinConfirmations int
	Interval         time.Duration
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	pf := cfg.Prefix("CORE_PIPELINE_")
	return Options{
		BatchSize:        pf.MayInt("BATCH_SIZE", 500),
		Workers:          pf.MayInt("WORKERS", 4),
		Threshold:        pf.MayFloat64("THRESHOLD", 0.8),
		Window:           pf.MayDuration("WINDOW", 2*time.Hour),
		MinConfirmations: pf.MayInt("MIN_CONFIRMATIONS", 2),
		Interval:         pf.MayDuration("INTERVAL", 5*time.Minute),
	}
}
