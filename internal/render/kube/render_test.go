package kube

import (
	"context"
	"testing"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"

	"github.com/usingsystem/video-native-visualizer/pkg/deploy"
)

func tcpSpec(instances int) *deploy.Spec {
	return &deploy.Spec{
		Name:      "Visualizer",
		Namespace: "eva",
		Image:     "eva/visualizer:2.3",
		DevMode:   true,
		Upstream: deploy.Upstream{
			Name:        "VideoAnalytics",
			Instances:   instances,
			PublishPort: 65013,
		},
	}
}

func envValue(t *testing.T, res *Resources, name string) string {
	t.Helper()

	for _, e := range res.Deployment.Spec.Template.Spec.Containers[0].Env {
		if e.Name == name {
			return e.Value
		}
	}

	t.Fatalf("env %q not rendered", name)
	return ""
}

func TestRenderSingleInstanceEnv(t *testing.T) {
	res, err := Render(tcpSpec(1))
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	if got := envValue(t, res, "SUBSCRIBER_default_ENDPOINT"); got != "VideoAnalytics:65013" {
		t.Fatalf("endpoint = %q, want VideoAnalytics:65013", got)
	}
	if got := envValue(t, res, "SUBSCRIBER_default_TYPE"); got != "zmq_tcp" {
		t.Fatalf("type = %q, want zmq_tcp", got)
	}
}

func TestRenderMultiInstanceEnv(t *testing.T) {
	res, err := Render(tcpSpec(3))
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	want := map[string]string{
		"SUBSCRIBER_default1_ENDPOINT": "VideoAnalytics1:65013",
		"SUBSCRIBER_default2_ENDPOINT": "VideoAnalytics2:65014",
		"SUBSCRIBER_default3_ENDPOINT": "VideoAnalytics3:65015",
		"SUBSCRIBER_default3_TYPE":     "zmq_tcp",
	}
	for name, value := range want {
		if got := envValue(t, res, name); got != value {
			t.Fatalf("%s = %q, want %q", name, got, value)
		}
	}
}

func TestRenderIPCMountsSocketDir(t *testing.T) {
	spec := tcpSpec(2)
	spec.Visualizer.IPC = true
	spec.Visualizer.SocketDir = "/opt/eva/sockets"

	res, err := Render(spec)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	if got := envValue(t, res, "SUBSCRIBER_default1_ENDPOINT"); got != "/opt/eva/sockets" {
		t.Fatalf("endpoint = %q, want /opt/eva/sockets", got)
	}
	if got := envValue(t, res, "SUBSCRIBER_default2_TYPE"); got != "zmq_ipc" {
		t.Fatalf("type = %q, want zmq_ipc", got)
	}
	if got := envValue(t, res, "SOCKET_DIR"); got != "/opt/eva/sockets" {
		t.Fatalf("SOCKET_DIR = %q", got)
	}

	found := false
	for _, v := range res.Deployment.Spec.Template.Spec.Volumes {
		if v.HostPath != nil && v.HostPath.Path == "/opt/eva/sockets" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected hostPath volume for socket directory")
	}
}

func TestRenderProdMountsCertSecret(t *testing.T) {
	spec := tcpSpec(1)
	spec.DevMode = false

	res, err := Render(spec)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	found := false
	for _, v := range res.Deployment.Spec.Template.Spec.Volumes {
		if v.Secret != nil && v.Secret.SecretName == "visualizer-certs" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected cert secret volume in prod mode")
	}
	if got := envValue(t, res, "DEV_MODE"); got != "false" {
		t.Fatalf("DEV_MODE = %q", got)
	}
}

func TestRenderDevSkipsCertSecret(t *testing.T) {
	res, err := Render(tcpSpec(1))
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	for _, v := range res.Deployment.Spec.Template.Spec.Volumes {
		if v.Secret != nil {
			t.Fatalf("unexpected secret volume %q in dev mode", v.Name)
		}
	}
}

func TestRenderExtraEnvSortedAndNonOverriding(t *testing.T) {
	spec := tcpSpec(1)
	spec.Env = map[string]string{
		"PY_LOG_LEVEL": "debug",
		"DEV_MODE":     "maliciously-flipped",
		"AAA_FIRST":    "1",
	}

	res, err := Render(spec)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	if got := envValue(t, res, "DEV_MODE"); got != "true" {
		t.Fatalf("extra env overrode DEV_MODE: %q", got)
	}
	if got := envValue(t, res, "PY_LOG_LEVEL"); got != "debug" {
		t.Fatalf("PY_LOG_LEVEL = %q", got)
	}

	env := res.Deployment.Spec.Template.Spec.Containers[0].Env
	var tail []string
	for _, e := range env {
		if e.Name == "AAA_FIRST" || e.Name == "PY_LOG_LEVEL" {
			tail = append(tail, e.Name)
		}
	}
	if len(tail) != 2 || tail[0] != "AAA_FIRST" || tail[1] != "PY_LOG_LEVEL" {
		t.Fatalf("extra env not sorted: %v", tail)
	}
}

func TestRenderMissingImage(t *testing.T) {
	spec := tcpSpec(1)
	spec.Image = ""

	if _, err := Render(spec); err == nil {
		t.Fatalf("expected error for missing image")
	}
}

func TestRenderInvalidInstanceCount(t *testing.T) {
	if _, err := Render(tcpSpec(0)); err == nil {
		t.Fatalf("expected error for zero instances")
	}
}

func TestRenderConfigMapPayload(t *testing.T) {
	res, err := Render(tcpSpec(1))
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	if res.ConfigMap.Name != "visualizer-config" {
		t.Fatalf("configmap name = %q", res.ConfigMap.Name)
	}
	if res.ConfigMap.Data[specConfigKey] == "" {
		t.Fatalf("expected spec payload under %q", specConfigKey)
	}
	if got := res.Deployment.Spec.Template.Annotations[specChecksumKey]; got != res.Checksum {
		t.Fatalf("checksum annotation = %q, want %q", got, res.Checksum)
	}
}

func TestApplyCreatesResources(t *testing.T) {
	client := fake.NewSimpleClientset()

	res, err := Render(tcpSpec(2))
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	workload, err := Apply(context.Background(), client, res)
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if workload != "visualizer" {
		t.Fatalf("workload = %q, want visualizer", workload)
	}

	if _, err := client.CoreV1().ConfigMaps("eva").Get(context.Background(), "visualizer-config", metav1.GetOptions{}); err != nil {
		t.Fatalf("expected configmap: %v", err)
	}

	deployment, err := client.AppsV1().Deployments("eva").Get(context.Background(), "visualizer", metav1.GetOptions{})
	if err != nil {
		t.Fatalf("expected deployment: %v", err)
	}
	if got := deployment.Spec.Template.Spec.Containers[0].Image; got != "eva/visualizer:2.3" {
		t.Fatalf("image = %q", got)
	}
}

func TestApplyUpdatesExistingDeployment(t *testing.T) {
	client := fake.NewSimpleClientset()

	first, err := Render(tcpSpec(1))
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if _, err := Apply(context.Background(), client, first); err != nil {
		t.Fatalf("Apply error: %v", err)
	}

	second, err := Render(tcpSpec(3))
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if _, err := Apply(context.Background(), client, second); err != nil {
		t.Fatalf("second Apply error: %v", err)
	}

	deployment, err := client.AppsV1().Deployments("eva").Get(context.Background(), "visualizer", metav1.GetOptions{})
	if err != nil {
		t.Fatalf("expected deployment: %v", err)
	}

	found := false
	for _, e := range deployment.Spec.Template.Spec.Containers[0].Env {
		if e.Name == "SUBSCRIBER_default3_ENDPOINT" && e.Value == "VideoAnalytics3:65015" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected updated subscriber env after re-apply")
	}
}
