package scheduler

import "time"

// Config controls recompute cadence and per-run limits.
type Config struct {
	RunInterval time.Duration
	JobTimeout  time.Duration
}

func DefaultConfig() Config {
	return Config{
		RunInterval: time.Hour,
		JobTimeout:  5 * time.Minute,
	}
}

func (c Config) withDefaults() Config {
	defaults := DefaultConfig()
	if c.RunInterval <= 0 {
		c.RunInterval = defaults.RunInterval
	}
	if c.JobTimeout <= 0 {
		c.JobTimeout = defaults.JobTimeout
	}
	return c
}
