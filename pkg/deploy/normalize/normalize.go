package normalize

import "github.com/usingsystem/video-native-visualizer/pkg/deploy"

const (
	defaultName        = "Visualizer"
	defaultNamespace   = "eva"
	defaultUpstream    = "VideoAnalytics"
	defaultPublishPort = 65013
	defaultSocketDir   = "/opt/eva/sockets"
)

// Normalize fills deployment defaults. An unset instance count means one
// publisher; an explicitly negative count is left for validation to reject.
func Normalize(in *deploy.Spec) *deploy.Spec {
	if in == nil {
		return nil
	}

	spec := *in

	if spec.Name == "" {
		spec.Name = defaultName
	}

	if spec.Namespace == "" {
		spec.Namespace = defaultNamespace
	}

	if spec.Upstream.Name == "" {
		spec.Upstream.Name = defaultUpstream
	}

	if spec.Upstream.Instances == 0 {
		spec.Upstream.Instances = 1
	}

	if spec.Upstream.PublishPort == 0 {
		spec.Upstream.PublishPort = defaultPublishPort
	}

	if spec.Visualizer.IPC && spec.Visualizer.SocketDir == "" {
		spec.Visualizer.SocketDir = defaultSocketDir
	}

	return &spec
}
