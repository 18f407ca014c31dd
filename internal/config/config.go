package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/NextRouter/routingFlow/internal/model"
)

// NICConfig declares which physical interface backs each role slot.
type NICConfig struct {
	LAN  string `yaml:"lan"`
	WAN0 string `yaml:"wan0"`
	WAN1 string `yaml:"wan1"`
}

// MonitorConfig holds the endpoints and timing for one monitoring cycle.
type MonitorConfig struct {
	PrometheusURL string    `yaml:"prometheus_url"`
	StatusURL     string    `yaml:"status_url"`
	QueryTimeout  string    `yaml:"query_timeout"`
	NICs          NICConfig `yaml:"nics"`
}

// NATSConfig configures the optional cycle-result publisher.
type NATSConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
	Subject string `yaml:"subject"`
}

// Config is the top-level configuration struct for the entire application.
type Config struct {
	Monitor MonitorConfig `yaml:"monitor"`
	NATS    NATSConfig    `yaml:"nats"`
}

// LoadConfig reads the configuration from a YAML file and returns a Config struct.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	m := c.Monitor
	if m.PrometheusURL == "" {
		return fmt.Errorf("monitor.prometheus_url is required")
	}
	if m.StatusURL == "" {
		return fmt.Errorf("monitor.status_url is required")
	}
	if m.NICs.LAN == "" || m.NICs.WAN0 == "" || m.NICs.WAN1 == "" {
		return fmt.Errorf("monitor.nics must declare lan, wan0 and wan1")
	}
	if m.QueryTimeout != "" {
		if _, err := time.ParseDuration(m.QueryTimeout); err != nil {
			return fmt.Errorf("invalid monitor.query_timeout: %w", err)
		}
	}
	if c.NATS.Enabled && c.NATS.Subject == "" {
		return fmt.Errorf("nats.subject is required when nats is enabled")
	}
	return nil
}

// QueryTimeout returns the parsed per-request timeout, defaulting to 10s
// when the config leaves it unset.
func (c *Config) QueryTimeout() time.Duration {
	if c.Monitor.QueryTimeout == "" {
		return 10 * time.Second
	}
	d, err := time.ParseDuration(c.Monitor.QueryTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// Interfaces returns the configured NIC names as a model.InterfaceSet.
func (c *Config) Interfaces() model.InterfaceSet {
	return model.InterfaceSet{
		LAN:  c.Monitor.NICs.LAN,
		WAN0: c.Monitor.NICs.WAN0,
		WAN1: c.Monitor.NICs.WAN1,
	}
}
