package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                                     int
	RoundRobinTimeQuantum                    int
	MultilevelFeedbackQueueLevelsTimeQuantum []int
	// Cases are the CSV process files offered by `cases` and `simulate --case`.
	Cases      []string
	RecordPath string
	Verbose    bool
}

// New returns a viper instance with defaults and env bindings, reading
// path when given or ./config.yaml otherwise.
func New(path string) (*viper.Viper, error) {
	// a missing .env is fine
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.multilevel_feedback_queue.levels_time_quantum", []int{2, 4, 8})
	v.SetDefault("cases", []string{})
	v.SetDefault("record.path", "")
	v.SetDefault("log.verbose", false)

	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	return v, nil
}

// Load reads and validates the configuration.
func Load(path string) (*SchedulerConfig, error) {
	v, err := New(path)
	if err != nil {
		return nil, err
	}
	return FromViper(v)
}

// FromViper extracts a validated SchedulerConfig from v.
func FromViper(v *viper.Viper) (*SchedulerConfig, error) {
	c := &SchedulerConfig{}
	c.Port = v.GetInt("port")
	c.RoundRobinTimeQuantum = v.GetInt("scheduler.round_robin.time_quantum")
	c.MultilevelFeedbackQueueLevelsTimeQuantum = v.GetIntSlice("scheduler.multilevel_feedback_queue.levels_time_quantum")
	c.Cases = v.GetStringSlice("cases")
	c.RecordPath = v.GetString("record.path")
	c.Verbose = v.GetBool("log.verbose")

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the scheduler parameters.
func (c *SchedulerConfig) Validate() error {
	if c.RoundRobinTimeQuantum <= 0 {
		return fmt.Errorf("invalid config: round robin time quantum must be positive, got %d", c.RoundRobinTimeQuantum)
	}
	for i, q := range c.MultilevelFeedbackQueueLevelsTimeQuantum {
		if q <= 0 {
			return fmt.Errorf("invalid config: mlfq level %d time quantum must be positive, got %d", i, q)
		}
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid config: port %d out of range", c.Port)
	}
	return nil
}

// Case resolves a 1-based case index.
func (c *SchedulerConfig) Case(index int) (string, error) {
	if index < 1 || index > len(c.Cases) {
		return "", fmt.Errorf("case %d out of range, %d cases configured", index, len(c.Cases))
	}
	return c.Cases[index-1], nil
}
