package kube

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/usingsystem/video-native-visualizer/pkg/deploy"
	"github.com/usingsystem/video-native-visualizer/pkg/deploy/codec"
	"github.com/usingsystem/video-native-visualizer/pkg/deploy/endpoint"
)

const (
	appLabelKey        = "eva.io/app-name"
	specConfigKey      = "visualizer.yaml"
	specConfigMountDir = "/config"
	specConfigPath     = "/config/visualizer.yaml"
	specChecksumKey    = "eva.io/config-checksum"

	configVolumeName = "visualizer-config"
	socketVolumeName = "zmq-sockets"
	certVolumeName   = "msgbus-certs"
	certMountDir     = "/run/secrets/eva"
)

// Resources bundles the rendered Kubernetes objects for one deployment spec.
type Resources struct {
	ConfigMap  *corev1.ConfigMap
	Deployment *appsv1.Deployment
	Checksum   string
}

// Render builds the ConfigMap and Deployment for a normalized, validated
// deployment spec. Subscriber endpoints are resolved into the container
// environment; IPC mode mounts the shared socket directory and production
// (non-dev) mode mounts the message-bus cert secret.
func Render(spec *deploy.Spec) (*Resources, error) {
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

	payload, err := codec.Encode(spec)
	if err != nil {
		return nil, fmt.Errorf("encode deployment spec: %w", err)
	}
	checksum := sha256.Sum256(payload)
	checksumValue := hex.EncodeToString(checksum[:])

	workloadName := workloadName(spec)
	configMapName := fmt.Sprintf("%s-config", workloadName)

	configMap := &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{
			Name:      configMapName,
			Namespace: spec.Namespace,
			Labels: map[string]string{
				appLabelKey: spec.Name,
			},
		},
		Data: map[string]string{
			specConfigKey: string(payload),
		},
	}

	deployment := buildDeployment(spec, entries, workloadName, configMapName, checksumValue)

	return &Resources{
		ConfigMap:  configMap,
		Deployment: deployment,
		Checksum:   checksumValue,
	}, nil
}

func workloadName(spec *deploy.Spec) string {
	return strings.ToLower(spec.Name)
}

func buildDeployment(
	spec *deploy.Spec,
	entries []endpoint.Entry,
	workloadName string,
	configMapName string,
	configChecksum string,
) *appsv1.Deployment {
	volumes := []corev1.Volume{
		{
			Name: configVolumeName,
			VolumeSource: corev1.VolumeSource{
				ConfigMap: &corev1.ConfigMapVolumeSource{
					LocalObjectReference: corev1.LocalObjectReference{Name: configMapName},
				},
			},
		},
	}
	mounts := []corev1.VolumeMount{
		{
			Name:      configVolumeName,
			MountPath: specConfigMountDir,
		},
	}

	if spec.Visualizer.IPC {
		// Publishers and the visualizer rendezvous on the same host directory
		volumes = append(volumes, corev1.Volume{
			Name: socketVolumeName,
			VolumeSource: corev1.VolumeSource{
				HostPath: &corev1.HostPathVolumeSource{
					Path: spec.Visualizer.SocketDir,
					Type: hostPathTypePtr(corev1.HostPathDirectoryOrCreate),
				},
			},
		})
		mounts = append(mounts, corev1.VolumeMount{
			Name:      socketVolumeName,
			MountPath: spec.Visualizer.SocketDir,
		})
	}

	if !spec.DevMode {
		volumes = append(volumes, corev1.Volume{
			Name: certVolumeName,
			VolumeSource: corev1.VolumeSource{
				Secret: &corev1.SecretVolumeSource{
					SecretName: fmt.Sprintf("%s-certs", workloadName),
				},
			},
		})
		mounts = append(mounts, corev1.VolumeMount{
			Name:      certVolumeName,
			MountPath: certMountDir,
			ReadOnly:  true,
		})
	}

	return &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{
			Name:      workloadName,
			Namespace: spec.Namespace,
			Labels: map[string]string{
				appLabelKey: spec.Name,
			},
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: int32Ptr(1),
			Selector: &metav1.LabelSelector{
				MatchLabels: map[string]string{
					appLabelKey: spec.Name,
				},
			},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels: map[string]string{
						appLabelKey: spec.Name,
					},
					Annotations: map[string]string{
						specChecksumKey: configChecksum,
					},
				},
				Spec: corev1.PodSpec{
					Containers: []corev1.Container{
						{
							Name:         "visualizer",
							Image:        spec.Image,
							Args:         []string{specConfigPath},
							Env:          containerEnv(spec, entries),
							VolumeMounts: mounts,
						},
					},
					Volumes: volumes,
				},
			},
		},
	}
}

func containerEnv(spec *deploy.Spec, entries []endpoint.Entry) []corev1.EnvVar {
	env := []corev1.EnvVar{
		{Name: "AppName", Value: spec.Name},
		{Name: "DEV_MODE", Value: fmt.Sprintf("%t", spec.DevMode)},
	}

	if spec.Visualizer.IPC {
		env = append(env, corev1.EnvVar{Name: "SOCKET_DIR", Value: spec.Visualizer.SocketDir})
	}

	if spec.Visualizer.ImageDir != "" {
		env = append(env,
			corev1.EnvVar{Name: "IMAGE_DIR", Value: spec.Visualizer.ImageDir},
			corev1.EnvVar{Name: "SAVE_IMAGE", Value: fmt.Sprintf("%t", spec.Visualizer.SaveImage)},
		)
	}

	for _, e := range entries {
		env = append(env,
			corev1.EnvVar{Name: e.Label + "_ENDPOINT", Value: e.Address},
			corev1.EnvVar{Name: e.Label + "_TYPE", Value: string(e.Transport)},
		)
	}

	if len(spec.Env) == 0 {
		return env
	}

	existing := make(map[string]struct{}, len(env))
	for _, entry := range env {
		existing[entry.Name] = struct{}{}
	}

	keys := make([]string, 0, len(spec.Env))
	for key := range spec.Env {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if _, ok := existing[key]; ok {
			continue
		}
		env = append(env, corev1.EnvVar{Name: key, Value: spec.Env[key]})
	}

	return env
}

func int32Ptr(v int32) *int32 {
	return &v
}

func hostPathTypePtr(v corev1.HostPathType) *corev1.HostPathType {
	return &v
}
