package store

import "testing"

func TestConfigKey(t *testing.T) {
	if got := configKey("Visualizer"); got != "/Visualizer/config" {
		t.Fatalf("configKey = %q, want /Visualizer/config", got)
	}
}
