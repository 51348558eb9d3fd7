package codec

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/usingsystem/video-native-visualizer/pkg/deploy"
)

// Load reads a YAML deployment spec file.
func Load(path string) (*deploy.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return Decode(data)
}

// Decode parses YAML bytes into a deployment spec.
func Decode(data []byte) (*deploy.Spec, error) {
	var spec deploy.Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("yaml decode: %w", err)
	}

	return &spec, nil
}

// Encode marshals a deployment spec to YAML.
func Encode(spec *deploy.Spec) ([]byte, error) {
	data, err := yaml.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("yaml encode: %w", err)
	}

	return data, nil
}
