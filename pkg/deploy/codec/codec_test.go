package codec_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/usingsystem/video-native-visualizer/pkg/deploy"
	"github.com/usingsystem/video-native-visualizer/pkg/deploy/codec"
)

const specYAML = `name: Visualizer
namespace: eva
image: eva/visualizer:2.3
dev_mode: true
upstream:
  name: VideoAnalytics
  instances: 3
  publish_port: 65013
visualizer:
  ipc: false
  save_image: true
  image_dir: /var/eva/saved_images
env:
  PY_LOG_LEVEL: debug
`

func TestLoadSpec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visualizer.yaml")
	if err := os.WriteFile(path, []byte(specYAML), 0o644); err != nil {
		t.Fatalf("write spec: %v", err)
	}

	spec, err := codec.Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if spec.Name != "Visualizer" || spec.Namespace != "eva" {
		t.Fatalf("unexpected identity %q/%q", spec.Namespace, spec.Name)
	}
	if spec.Upstream.Instances != 3 || spec.Upstream.PublishPort != 65013 {
		t.Fatalf("unexpected upstream %+v", spec.Upstream)
	}
	if !spec.DevMode || !spec.Visualizer.SaveImage {
		t.Fatalf("unexpected flags dev_mode=%t save_image=%t", spec.DevMode, spec.Visualizer.SaveImage)
	}
	if spec.Env["PY_LOG_LEVEL"] != "debug" {
		t.Fatalf("unexpected env %v", spec.Env)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := codec.Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestDecodeInvalidYAML(t *testing.T) {
	if _, err := codec.Decode([]byte("upstream: [")); err == nil {
		t.Fatalf("expected yaml decode error")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := &deploy.Spec{
		Name:  "Visualizer",
		Image: "eva/visualizer:2.3",
		Upstream: deploy.Upstream{
			Name:        "VideoAnalytics",
			Instances:   2,
			PublishPort: 65013,
		},
		Visualizer: deploy.Visualizer{
			IPC:       true,
			SocketDir: "/sockets",
			Labels: map[string]map[string]string{
				"camera1_stream": {"0": "MISSING", "1": "SHORT"},
			},
		},
	}

	data, err := codec.Encode(in)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	out, err := codec.Decode(data)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}

	if out.Upstream != in.Upstream {
		t.Fatalf("upstream round trip: %+v != %+v", out.Upstream, in.Upstream)
	}
	if out.Visualizer.SocketDir != "/sockets" {
		t.Fatalf("socket dir round trip: %q", out.Visualizer.SocketDir)
	}
	if out.Visualizer.Labels["camera1_stream"]["1"] != "SHORT" {
		t.Fatalf("labels round trip: %v", out.Visualizer.Labels)
	}
}
