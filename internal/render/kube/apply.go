package kube

import (
	"context"
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

// Apply create-or-updates the rendered resources in the cluster and returns
// the workload name.
func Apply(ctx context.Context, client kubernetes.Interface, res *Resources) (string, error) {
	if client == nil {
		return "", fmt.Errorf("kubernetes client is required")
	}
	if res == nil || res.ConfigMap == nil || res.Deployment == nil {
		return "", fmt.Errorf("rendered resources are required")
	}

	namespace := res.Deployment.Namespace

	cmClient := client.CoreV1().ConfigMaps(namespace)
	currentCM, err := cmClient.Get(ctx, res.ConfigMap.Name, metav1.GetOptions{})
	if err != nil {
		if !apierrors.IsNotFound(err) {
			return "", fmt.Errorf("get configmap %q: %w", res.ConfigMap.Name, err)
		}
		if _, err := cmClient.Create(ctx, res.ConfigMap, metav1.CreateOptions{}); err != nil {
			return "", fmt.Errorf("create configmap %q: %w", res.ConfigMap.Name, err)
		}
	} else {
		currentCM.Data = res.ConfigMap.Data
		currentCM.Labels = res.ConfigMap.Labels
		if _, err := cmClient.Update(ctx, currentCM, metav1.UpdateOptions{}); err != nil {
			return "", fmt.Errorf("update configmap %q: %w", res.ConfigMap.Name, err)
		}
	}

	deployments := client.AppsV1().Deployments(namespace)
	current, err := deployments.Get(ctx, res.Deployment.Name, metav1.GetOptions{})
	if err != nil {
		if !apierrors.IsNotFound(err) {
			return "", fmt.Errorf("get deployment %q: %w", res.Deployment.Name, err)
		}
		if _, err := deployments.Create(ctx, res.Deployment, metav1.CreateOptions{}); err != nil {
			return "", fmt.Errorf("create deployment %q: %w", res.Deployment.Name, err)
		}
		return res.Deployment.Name, nil
	}

	current.Spec = res.Deployment.Spec
	current.Labels = res.Deployment.Labels
	if _, err := deployments.Update(ctx, current, metav1.UpdateOptions{}); err != nil {
		return "", fmt.Errorf("update deployment %q: %w", res.Deployment.Name, err)
	}

	return res.Deployment.Name, nil
}
