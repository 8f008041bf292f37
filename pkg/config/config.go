package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/orghub/config"
	ConfigFileName    = "orghub.yml"
)

// ValidTokenAlgorithms is the list of supported token signing algorithms.
var ValidTokenAlgorithms = []string{"HS256", "HS384", "HS512"}

// Config holds all orghub configuration settings
type Config struct {
	// TokenAlgorithm is the HMAC algorithm used to sign session tokens
	TokenAlgorithm string `yaml:"token_algorithm" json:"token_algorithm"`

	// TokenTTLSeconds is the session token lifetime in seconds
	TokenTTLSeconds int `yaml:"token_ttl" json:"token_ttl"`

	// MinPasswordLength is the minimum admin password length
	MinPasswordLength int `yaml:"min_password_length" json:"min_password_length"`

	// APIListLimitMax is the maximum number of results for listing requests
	APIListLimitMax int `yaml:"api_list_limit_max" json:"api_list_limit_max"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *Config
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			// Return defaults on error
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *Config {
	return &Config{
		TokenAlgorithm:    "HS256",
		TokenTTLSeconds:   3600,
		MinPasswordLength: 6,
		APIListLimitMax:   1000,
		sources:           make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("ORGHUB_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"token_algorithm", "token_ttl", "min_password_length",
		"api_list_limit_max",
	}
}

func (c *Config) applyFileConfig(file *Config) {
	if file.TokenAlgorithm != "" {
		c.TokenAlgorithm = file.TokenAlgorithm
		c.sources["token_algorithm"] = "file"
	}
	if file.TokenTTLSeconds != 0 {
		c.TokenTTLSeconds = file.TokenTTLSeconds
		c.sources["token_ttl"] = "file"
	}
	if file.MinPasswordLength != 0 {
		c.MinPasswordLength = file.MinPasswordLength
		c.sources["min_password_length"] = "file"
	}
	if file.APIListLimitMax != 0 {
		c.APIListLimitMax = file.APIListLimitMax
		c.sources["api_list_limit_max"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("ORGHUB_TOKEN_ALGORITHM"); val != "" {
		c.TokenAlgorithm = val
		c.sources["token_algorithm"] = "environment"
	}
	if val := os.Getenv("ORGHUB_TOKEN_TTL"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.TokenTTLSeconds = i
			c.sources["token_ttl"] = "environment"
		}
	}
	if val := os.Getenv("ORGHUB_MIN_PASSWORD_LENGTH"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.MinPasswordLength = i
			c.sources["min_password_length"] = "environment"
		}
	}
	if val := os.Getenv("ORGHUB_API_LIST_LIMIT_MAX"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.APIListLimitMax = i
			c.sources["api_list_limit_max"] = "environment"
		}
	}
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// TokenTTL returns the session token lifetime as a duration
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLSeconds) * time.Second
}

// Validate validates the configuration
func (c *Config) Validate() error {
	valid := false
	for _, alg := range ValidTokenAlgorithms {
		if c.TokenAlgorithm == alg {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid token_algorithm: %s", c.TokenAlgorithm)
	}

	if c.TokenTTLSeconds <= 0 {
		return fmt.Errorf("token_ttl must be positive, got %d", c.TokenTTLSeconds)
	}

	if c.MinPasswordLength < 1 {
		return fmt.Errorf("min_password_length must be at least 1, got %d", c.MinPasswordLength)
	}

	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *Config) Attributes() []Attribute {
	return []Attribute{
		{Name: "token_algorithm", Value: c.TokenAlgorithm, Source: c.Source("token_algorithm")},
		{Name: "token_ttl", Value: strconv.Itoa(c.TokenTTLSeconds), Source: c.Source("token_ttl")},
		{Name: "min_password_length", Value: strconv.Itoa(c.MinPasswordLength), Source: c.Source("min_password_length")},
		{Name: "api_list_limit_max", Value: strconv.Itoa(c.APIListLimitMax), Source: c.Source("api_list_limit_max")},
	}
}

// FormatText returns a text representation of the configuration
func (c *Config) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *Config) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
