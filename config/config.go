package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	DefaultAlgorithm      string
	RoundRobinTimeQuantum int
	MaxBurstTotal         int
	MaxSlices             int
	RateLimit             float64
	RateBurst             int
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads config.yaml from the working directory once and
// exits the process if it is malformed.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		cfg, err := Load("./")
		if err != nil {
			log.Fatalln(err)
		}
		config = cfg
	})

	return config
}

// Load reads config.yaml from dir. A missing file leaves every key at its
// default. Environment variables named after the key (PORT,
// SCHEDULER_ROUND_ROBIN_TIME_QUANTUM, API_RATE_LIMIT...) override the file.
func Load(dir string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.default_algorithm", "fcfs")
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.max_burst_total", 1000000)
	v.SetDefault("scheduler.max_slices", 100000)
	v.SetDefault("api.rate_limit", 0)
	v.SetDefault("api.rate_burst", 1)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading scheduler config: %w", err)
		}
	}

	cfg := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		DefaultAlgorithm:      v.GetString("scheduler.default_algorithm"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		MaxBurstTotal:         v.GetInt("scheduler.max_burst_total"),
		MaxSlices:             v.GetInt("scheduler.max_slices"),
		RateLimit:             v.GetFloat64("api.rate_limit"),
		RateBurst:             v.GetInt("api.rate_burst"),
	}
	if cfg.Port <= 0 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.RateBurst < 1 {
		cfg.RateBurst = 1
	}
	return cfg, nil
}
