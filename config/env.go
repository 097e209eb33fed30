package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// GetEnv returns the value of key or defaultValue when it is unset or empty.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// GetEnvDuration accepts Go duration strings ("5s", "250ms").
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// LoadFile decodes the YAML file at path into out. An empty path is not an error.
func LoadFile(path string, out any) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

func overrideString(dst *string, key string) {
	*dst = GetEnv(key, *dst)
}

func overrideInt(dst *int, key string) {
	*dst = GetEnvInt(key, *dst)
}

func overrideDuration(dst *time.Duration, key string) {
	*dst = GetEnvDuration(key, *dst)
}
