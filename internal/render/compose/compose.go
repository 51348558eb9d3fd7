package compose

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/usingsystem/video-native-visualizer/pkg/deploy"
	"github.com/usingsystem/video-native-visualizer/pkg/deploy/endpoint"
)

const networkName = "eva-network"

// Service is the docker-compose service schema subset the visualizer uses.
type Service struct {
	Image         string            `yaml:"image"`
	ContainerName string            `yaml:"container_name"`
	Hostname      string            `yaml:"hostname"`
	Restart       string            `yaml:"restart"`
	Environment   map[string]string `yaml:"environment"`
	Volumes       []string          `yaml:"volumes,omitempty"`
	Secrets       []string          `yaml:"secrets,omitempty"`
	Networks      []string          `yaml:"networks"`
}

// File is a renderable docker-compose fragment.
type File struct {
	Services map[string]Service `yaml:"services"`
	Networks map[string]any     `yaml:"networks"`
}

// Render builds the compose fragment for a normalized, validated deployment
// spec. Dev mode omits the message-bus cert secrets; production mode
// references them.
func Render(spec *deploy.Spec) (*File, error) {
	if spec == nil {
		return nil, fmt.Errorf("deployment spec is required")
	}
	if spec.Image == "" {
		return nil, fmt.Errorf("container image is required for deployment %q", spec.Name)
	}

	entries, err := endpoint.Resolve(endpoint.Config{
		InstanceCount: spec.Upstream.Instances,
		BasePort:      spec.Upstream.PublishPort,
		UpstreamName:  spec.Upstream.Name,
		IPCEnabled:    spec.Visualizer.IPC,
		SocketDir:     spec.Visualizer.SocketDir,
	})
	if err != nil {
		return nil, fmt.Errorf("resolve subscriber endpoints: %w", err)
	}

	serviceName := strings.ToLower(spec.Name)

	svc := Service{
		Image:         spec.Image,
		ContainerName: serviceName,
		Hostname:      serviceName,
		Restart:       "unless-stopped",
		Environment:   environment(spec, entries),
		Networks:      []string{networkName},
	}

	if spec.Visualizer.IPC {
		svc.Volumes = append(svc.Volumes, bindMount(spec.Visualizer.SocketDir))
	}
	if spec.Visualizer.ImageDir != "" {
		svc.Volumes = append(svc.Volumes, bindMount(spec.Visualizer.ImageDir))
	}

	if !spec.DevMode {
		svc.Secrets = []string{
			"ca_cert",
			fmt.Sprintf("%s_cert", serviceName),
			fmt.Sprintf("%s_key", serviceName),
		}
	}

	return &File{
		Services: map[string]Service{serviceName: svc},
		Networks: map[string]any{networkName: map[string]string{"driver": "bridge"}},
	}, nil
}

// Encode marshals a compose fragment to YAML.
func Encode(f *File) ([]byte, error) {
	data, err := yaml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("yaml encode: %w", err)
	}

	return data, nil
}

func environment(spec *deploy.Spec, entries []endpoint.Entry) map[string]string {
	env := map[string]string{
		"AppName":  spec.Name,
		"DEV_MODE": fmt.Sprintf("%t", spec.DevMode),
	}

	if spec.Visualizer.IPC {
		env["SOCKET_DIR"] = spec.Visualizer.SocketDir
	}
	if spec.Visualizer.ImageDir != "" {
		env["IMAGE_DIR"] = spec.Visualizer.ImageDir
		env["SAVE_IMAGE"] = fmt.Sprintf("%t", spec.Visualizer.SaveImage)
	}

	for _, e := range entries {
		for key, value := range e.Env() {
			env[key] = value
		}
	}

	// Rendered env wins over extra env on key collisions
	for key, value := range spec.Env {
		if _, ok := env[key]; ok {
			continue
		}
		env[key] = value
	}

	return env
}

func bindMount(dir string) string {
	return fmt.Sprintf("%s:%s", dir, dir)
}
