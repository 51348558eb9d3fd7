package config

import "strings"

// SplitComma splits a comma-separated list, dropping empty items.
func SplitComma(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
