package config

import "os"

// EnvOrDefault returns the value of key, or def when unset or empty.
func EnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
