package validate

import (
	"fmt"

	"github.com/usingsystem/video-native-visualizer/pkg/deploy"
)

const maxPort = 65535

// Validate performs semantic validation of a deployment Spec.
// The spec is expected to be normalized before validation.
func Validate(spec *deploy.Spec) error {
	if spec == nil {
		return &Error{"spec", "deployment spec is nil"}
	}

	// --------------------------------------------------
	// Deployment-level validation
	// --------------------------------------------------

	if spec.Name == "" {
		return &Error{"name", "deployment name is required"}
	}

	// --------------------------------------------------
	// Upstream publishers
	// --------------------------------------------------

	if spec.Upstream.Name == "" {
		return &Error{"upstream.name", "upstream publisher name is required"}
	}

	if spec.Upstream.Instances < 1 {
		return &Error{
			Field: "upstream.instances",
			Message: fmt.Sprintf(
				"at least one publisher instance is required, got %d",
				spec.Upstream.Instances,
			),
		}
	}

	if spec.Upstream.PublishPort < 1 || spec.Upstream.PublishPort > maxPort {
		return &Error{
			Field: "upstream.publish_port",
			Message: fmt.Sprintf(
				"publish port %d outside 1..%d",
				spec.Upstream.PublishPort,
				maxPort,
			),
		}
	}

	// Each TCP instance binds its own port starting at publish_port
	if last := spec.Upstream.PublishPort + spec.Upstream.Instances - 1; last > maxPort {
		return &Error{
			Field: "upstream.instances",
			Message: fmt.Sprintf(
				"%d instances from port %d would exceed port %d",
				spec.Upstream.Instances,
				spec.Upstream.PublishPort,
				maxPort,
			),
		}
	}

	// --------------------------------------------------
	// Visualizer options
	// --------------------------------------------------

	if spec.Visualizer.IPC && spec.Visualizer.SocketDir == "" {
		return &Error{
			Field:   "visualizer.socket_dir",
			Message: "socket directory is required in IPC mode",
		}
	}

	if spec.Visualizer.SaveImage && spec.Visualizer.ImageDir == "" {
		return &Error{
			Field:   "visualizer.image_dir",
			Message: "image directory is required when save_image is set",
		}
	}

	return nil
}
