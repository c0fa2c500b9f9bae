package qsim

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

/*
Config tunes the shot pool. A zero Seed means every shot draws from a fresh
randomly seeded source; any other value makes a run reproducible, shot k
using NewSource(Seed + k).
*/
type Config struct {
	Workers           int
	QueueSize         int
	SchedulingTimeout time.Duration
	JobTimeout        time.Duration
	ResultTTL         time.Duration
	Seed              uint64
}

func NewConfig() *Config {
	return &Config{
		Workers:           4,
		QueueSize:         64,
		SchedulingTimeout: 10 * time.Second,
		JobTimeout:        30 * time.Second,
		ResultTTL:         time.Minute,
	}
}

/*
LoadConfig reads an optional qsim.yaml from the working directory and QSIM_*
environment variables on top of the defaults of NewConfig.
*/
func LoadConfig() (*Config, error) {
	v := viper.New()
	defaults := NewConfig()

	v.SetDefault("workers", defaults.Workers)
	v.SetDefault("queue_size", defaults.QueueSize)
	v.SetDefault("scheduling_timeout", defaults.SchedulingTimeout)
	v.SetDefault("job_timeout", defaults.JobTimeout)
	v.SetDefault("result_ttl", defaults.ResultTTL)
	v.SetDefault("seed", defaults.Seed)

	v.SetConfigName("qsim")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("QSIM")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return &Config{
		Workers:           v.GetInt("workers"),
		QueueSize:         v.GetInt("queue_size"),
		SchedulingTimeout: v.GetDuration("scheduling_timeout"),
		JobTimeout:        v.GetDuration("job_timeout"),
		ResultTTL:         v.GetDuration("result_ttl"),
		Seed:              v.GetUint64("seed"),
	}, nil
}

func (cfg *Config) workers() int {
	if cfg == nil || cfg.Workers < 1 {
		return 1
	}

	return cfg.Workers
}

func (cfg *Config) queueSize() int {
	if cfg == nil || cfg.QueueSize < 0 {
		return 0
	}

	return cfg.QueueSize
}

func (cfg *Config) schedulingTimeout() time.Duration {
	if cfg != nil && cfg.SchedulingTimeout > 0 {
		return cfg.SchedulingTimeout
	}

	return 5 * time.Second
}

func (cfg *Config) jobTimeout() time.Duration {
	if cfg != nil && cfg.JobTimeout > 0 {
		return cfg.JobTimeout
	}

	return 30 * time.Second
}

func (cfg *Config) resultTTL() time.Duration {
	if cfg != nil && cfg.ResultTTL > 0 {
		return cfg.ResultTTL
	}

	return time.Minute
}
