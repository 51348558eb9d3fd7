package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/usingsystem/video-native-visualizer/internal/config"
	"github.com/usingsystem/video-native-visualizer/pkg/deploy"
	"github.com/usingsystem/video-native-visualizer/pkg/deploy/codec"
	"github.com/usingsystem/video-native-visualizer/pkg/deploy/normalize"
	"github.com/usingsystem/video-native-visualizer/pkg/deploy/validate"
)

var (
	etcdEndpoints string
	namespace     string
	otelEndpoint  string
	serviceName   string
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "evactl",
	Short: "evactl renders visualizer deployment configuration",
	Long: `evactl is the deployment tool for the edge-video-analytics visualizer.

It loads a declarative deployment spec, wires the visualizer's message-bus
subscriber endpoints to the upstream publisher instances, and renders the
result as Kubernetes resources or a docker-compose fragment.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&etcdEndpoints,
		"etcd",
		config.EnvOrDefault("EVA_ETCD_ENDPOINTS", "http://127.0.0.1:2379"),
		"comma-separated etcd endpoints (or set EVA_ETCD_ENDPOINTS)",
	)
	rootCmd.PersistentFlags().StringVar(
		&namespace,
		"namespace",
		"",
		"override the spec's Kubernetes namespace",
	)
	rootCmd.PersistentFlags().StringVar(
		&otelEndpoint,
		"otel-endpoint",
		config.EnvOrDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		"OTLP collector endpoint (host:port)",
	)
	rootCmd.PersistentFlags().StringVar(
		&serviceName,
		"service-name",
		config.EnvOrDefault("OTEL_SERVICE_NAME", "evactl"),
		"logical service name for observability signals",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output",
	)

	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)
}

func debugf(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

// connConfig collects the persistent connection flags into a Config.
func connConfig() config.Config {
	return config.Config{
		EtcdEndpoints: config.SplitComma(etcdEndpoints),
		OTLPEndpoint:  otelEndpoint,
		ServiceName:   serviceName,
	}
}

// loadSpec runs the load → normalize → validate pipeline every command uses.
func loadSpec(path string) (*deploy.Spec, error) {
	spec, err := codec.Load(path)
	if err != nil {
		return nil, err
	}

	spec = normalize.Normalize(spec)

	if err := validate.Validate(spec); err != nil {
		return nil, err
	}

	if namespace != "" {
		spec.Namespace = namespace
	}

	return spec, nil
}
