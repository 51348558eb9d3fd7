package diff

import (
	"fmt"

	"github.com/usingsystem/video-native-visualizer/pkg/deploy"
)

// Diff returns a human-readable structural diff between two deployment specs.
// Specs must already be normalized.
func Diff(a, b *deploy.Spec) []string {
	var out []string

	if a.Name != b.Name {
		out = append(out, fmt.Sprintf("name: %q → %q", a.Name, b.Name))
	}

	if a.Namespace != b.Namespace {
		out = append(out, fmt.Sprintf("namespace: %q → %q", a.Namespace, b.Namespace))
	}

	if a.Image != b.Image {
		out = append(out, fmt.Sprintf("image: %q → %q", a.Image, b.Image))
	}

	if a.DevMode != b.DevMode {
		out = append(out, fmt.Sprintf("dev_mode: %t → %t", a.DevMode, b.DevMode))
	}

	if a.Upstream.Name != b.Upstream.Name {
		out = append(out, fmt.Sprintf("upstream.name: %q → %q", a.Upstream.Name, b.Upstream.Name))
	}

	if a.Upstream.Instances != b.Upstream.Instances {
		out = append(out, fmt.Sprintf("upstream.instances: %d → %d", a.Upstream.Instances, b.Upstream.Instances))
	}

	if a.Upstream.PublishPort != b.Upstream.PublishPort {
		out = append(out, fmt.Sprintf("upstream.publish_port: %d → %d", a.Upstream.PublishPort, b.Upstream.PublishPort))
	}

	if a.Visualizer.IPC != b.Visualizer.IPC {
		out = append(out, fmt.Sprintf("visualizer.ipc: %t → %t", a.Visualizer.IPC, b.Visualizer.IPC))
	}

	if a.Visualizer.SocketDir != b.Visualizer.SocketDir {
		out = append(out, fmt.Sprintf("visualizer.socket_dir: %q → %q", a.Visualizer.SocketDir, b.Visualizer.SocketDir))
	}

	if len(a.Env) != len(b.Env) {
		out = append(out, fmt.Sprintf("env: %d → %d", len(a.Env), len(b.Env)))
	}

	return out
}
