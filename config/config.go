// Package config provides layered configuration whose lookups return
// option.Option instead of zero values.
//
// Values are resolved from the last layer that sets them: defaults, then
// files, then environment variables. Nested maps in files are flattened to
// dotted keys so that "db.port" in YAML and APP_DB_PORT in the environment
// address the same setting.
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/authcorp/libs/go/tiger/codec"
	"github.com/authcorp/libs/go/tiger/option"
)

// Config holds configuration values.
type Config struct {
	values   map[string]any
	defaults map[string]any
}

// New creates a new empty Config.
func New() *Config {
	return &Config{
		values:   make(map[string]any),
		defaults: make(map[string]any),
	}
}

// WithDefaults sets default values.
func (c *Config) WithDefaults(defaults map[string]any) *Config {
	flatten("", defaults, c.defaults)
	return c
}

// LoadFile loads configuration from a JSON or YAML file.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var values map[string]any
	if err := codec.ForPath(path).Decode(data, &values); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	flatten("", values, c.values)
	return nil
}

// LoadEnv loads configuration from environment variables with prefix.
// PREFIX_DB_PORT is stored as db.port.
func (c *Config) LoadEnv(prefix string) *Config {
	for _, env := range os.Environ() {
		key, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}
		if prefix != "" {
			if !strings.HasPrefix(key, prefix+"_") {
				continue
			}
			key = strings.TrimPrefix(key, prefix+"_")
		}
		c.values[strings.ToLower(strings.ReplaceAll(key, "_", "."))] = value
	}
	return c
}

// Set sets a configuration value.
func (c *Config) Set(key string, value any) {
	c.values[key] = value
}

// Lookup returns the value stored under key. A key explicitly set to null
// is None.
func (c *Config) Lookup(key string) option.Option[any] {
	if v, ok := c.values[key]; ok {
		return option.From(v)
	}
	if v, ok := c.defaults[key]; ok {
		return option.From(v)
	}
	return option.None[any]()
}

// String returns the value under key formatted as a string.
func (c *Config) String(key string) option.Option[string] {
	return option.Map(c.Lookup(key), func(v any) string {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	})
}

// Int returns the value under key as an int. Values that are not integral
// numbers or numeric strings are None.
func (c *Config) Int(key string) option.Option[int] {
	return option.Bind(c.Lookup(key), func(v any) option.Option[int] {
		switch val := v.(type) {
		case int:
			return option.Some(val)
		case int64:
			return option.FromOk(int(val), val >= math.MinInt && val <= math.MaxInt)
		case uint64:
			return option.FromOk(int(val), val <= math.MaxInt)
		case float64:
			return option.Some(int(val)).Filter(func(i int) bool { return float64(i) == val })
		case string:
			i, err := strconv.Atoi(val)
			return option.FromOk(i, err == nil)
		}
		return option.None[int]()
	})
}

// Float returns the value under key as a float64.
func (c *Config) Float(key string) option.Option[float64] {
	return option.Bind(c.Lookup(key), func(v any) option.Option[float64] {
		switch val := v.(type) {
		case float64:
			return option.Some(val)
		case int:
			return option.Some(float64(val))
		case int64:
			return option.Some(float64(val))
		case string:
			f, err := strconv.ParseFloat(val, 64)
			return option.FromOk(f, err == nil)
		}
		return option.None[float64]()
	})
}

// Bool returns the value under key as a bool. The strings "true", "1" and
// "yes" are true; "false", "0" and "no" are false.
func (c *Config) Bool(key string) option.Option[bool] {
	return option.Bind(c.Lookup(key), func(v any) option.Option[bool] {
		switch val := v.(type) {
		case bool:
			return option.Some(val)
		case string:
			switch strings.ToLower(val) {
			case "true", "1", "yes":
				return option.Some(true)
			case "false", "0", "no":
				return option.Some(false)
			}
		}
		return option.None[bool]()
	})
}

// Duration returns the value under key parsed with time.ParseDuration.
func (c *Config) Duration(key string) option.Option[time.Duration] {
	return option.Bind(c.Lookup(key), func(v any) option.Option[time.Duration] {
		switch val := v.(type) {
		case time.Duration:
			return option.Some(val)
		case string:
			d, err := time.ParseDuration(val)
			return option.FromOk(d, err == nil)
		}
		return option.None[time.Duration]()
	})
}

// StringSlice returns a string slice configuration value. Comma separated
// strings are split.
func (c *Config) StringSlice(key string) option.Option[[]string] {
	return option.Bind(c.Lookup(key), func(v any) option.Option[[]string] {
		switch val := v.(type) {
		case []string:
			return option.Some(val)
		case []any:
			result := make([]string, len(val))
			for i, item := range val {
				result[i] = fmt.Sprintf("%v", item)
			}
			return option.Some(result)
		case string:
			return option.Some(strings.Split(val, ","))
		}
		return option.None[[]string]()
	})
}

// Validate checks that required keys are present.
func (c *Config) Validate(required ...string) error {
	var missing []string
	for _, key := range required {
		if c.Lookup(key).IsNone() {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{MissingKeys: missing}
	}
	return nil
}

// ValidationError represents configuration validation errors.
type ValidationError struct {
	MissingKeys []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required config keys: %s", strings.Join(e.MissingKeys, ", "))
}

// All returns all configuration values, later layers winning.
func (c *Config) All() map[string]any {
	result := make(map[string]any, len(c.defaults)+len(c.values))
	for k, v := range c.defaults {
		result[k] = v
	}
	for k, v := range c.values {
		result[k] = v
	}
	return result
}

func flatten(prefix string, in map[string]any, out map[string]any) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flatten(key, nested, out)
			continue
		}
		out[key] = v
	}
}
