package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/hcl"
	"gopkg.in/yaml.v3"
)

// Config defines the orchestrator configuration params
type Config struct {
	Network       string `json:"network" yaml:"network" hcl:"network" toml:"network" env:"ROUTER_NETWORK"`
	JSONRPCAddr   string `json:"json_rpc" yaml:"json_rpc" hcl:"json_rpc" toml:"json_rpc" env:"JSON_RPC_URL"`
	PrivateKey    string `json:"private_key" yaml:"private_key" hcl:"private_key" toml:"private_key" env:"PRIVATE_KEY"`
	DomainsFile   string `json:"domains_file" yaml:"domains_file" hcl:"domains_file" toml:"domains_file"`
	AddressesFile string `json:"addresses_file" yaml:"addresses_file" hcl:"addresses_file" toml:"addresses_file"`
	ArtifactFile  string `json:"artifact_file" yaml:"artifact_file" hcl:"artifact_file" toml:"artifact_file"`
	StateDB       string `json:"state_db" yaml:"state_db" hcl:"state_db" toml:"state_db"`
	LogLevel      string `json:"log_level" yaml:"log_level" hcl:"log_level" toml:"log_level" env:"LOG_LEVEL"`
	JSONLogFormat bool   `json:"json_log_format" yaml:"json_log_format" hcl:"json_log_format" toml:"json_log_format"`
	Telemetry     bool   `json:"telemetry" yaml:"telemetry" hcl:"telemetry" toml:"telemetry"`

	// ReceiptPollInterval is a duration string, e.g. "500ms"
	ReceiptPollInterval string `json:"receipt_poll_interval" yaml:"receipt_poll_interval" hcl:"receipt_poll_interval" toml:"receipt_poll_interval"`
	ReceiptMaxAttempts  int    `json:"receipt_max_attempts" yaml:"receipt_max_attempts" hcl:"receipt_max_attempts" toml:"receipt_max_attempts"`
}

const (
	DefaultJSONRPCAddr         = "http://127.0.0.1:8545"
	DefaultAddressesFile       = "environment/hyperlane/addresses.json"
	DefaultArtifactFile        = "artifacts/contracts/LayerZeroRouter.sol/LayerZeroRouter.json"
	DefaultStateDB             = "lzrouter.db"
	DefaultReceiptPollInterval = "500ms"
	DefaultReceiptMaxAttempts  = 600
)

// DefaultConfig returns the default orchestrator configuration.
// An empty DomainsFile selects the embedded registry.
func DefaultConfig() *Config {
	return &Config{
		JSONRPCAddr:         DefaultJSONRPCAddr,
		AddressesFile:       DefaultAddressesFile,
		ArtifactFile:        DefaultArtifactFile,
		StateDB:             DefaultStateDB,
		LogLevel:            "INFO",
		ReceiptPollInterval: DefaultReceiptPollInterval,
		ReceiptMaxAttempts:  DefaultReceiptMaxAttempts,
	}
}

// ReadConfigFile reads the config file from the specified path on top of the defaults.
//
// Supported file types: .json, .hcl, .yaml, .yml, .toml
func ReadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	var unmarshalFunc func([]byte, interface{}) error

	switch {
	case strings.HasSuffix(path, ".hcl"):
		unmarshalFunc = hcl.Unmarshal
	case strings.HasSuffix(path, ".json"):
		unmarshalFunc = json.Unmarshal
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		unmarshalFunc = yaml.Unmarshal
	case strings.HasSuffix(path, ".toml"):
		unmarshalFunc = toml.Unmarshal
	default:
		return nil, fmt.Errorf("suffix of %s is neither hcl, json, yaml, yml nor toml", path)
	}

	config := DefaultConfig()

	if err := unmarshalFunc(data, config); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	return config, nil
}

// ApplyEnv overrides the fields tagged with env by the variables that are set
func (c *Config) ApplyEnv() error {
	return env.Parse(c)
}

// PollInterval returns the parsed receipt poll interval
func (c *Config) PollInterval() (time.Duration, error) {
	return time.ParseDuration(c.ReceiptPollInterval)
}

// Validate checks the configuration before any workflow runs
func (c *Config) Validate() error {
	if c.Network == "" {
		return errors.New("host network is not set (use --network or ROUTER_NETWORK)")
	}

	if c.JSONRPCAddr == "" {
		return errors.New("json rpc address is not set")
	}

	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("unsupported log level %q", c.LogLevel)
	}

	interval, err := c.PollInterval()
	if err != nil {
		return fmt.Errorf("invalid receipt poll interval: %w", err)
	}

	if interval <= 0 {
		return fmt.Errorf("receipt poll interval must be positive, got %s", interval)
	}

	if c.ReceiptMaxAttempts <= 0 {
		return fmt.Errorf("receipt max attempts must be positive, got %d", c.ReceiptMaxAttempts)
	}

	return nil
}
