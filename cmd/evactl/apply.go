package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	kubeclient "github.com/usingsystem/video-native-visualizer/internal/kube"
	"github.com/usingsystem/video-native-visualizer/internal/observability"
	"github.com/usingsystem/video-native-visualizer/internal/render/kube"
)

var applyCmd = &cobra.Command{
	Use:   "apply <spec.yaml>",
	Short: "Render and apply the deployment to the current cluster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := loadSpec(args[0])
		if err != nil {
			return err
		}

		shutdown, logger, err := observability.Setup(cmd.Context(), connConfig())
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Error(context.Background(), "failed to shutdown telemetry", slog.Any("error", err))
			}
		}()

		res, err := kube.Render(spec)
		if err != nil {
			return err
		}

		client, err := kubeclient.New()
		if err != nil {
			return err
		}

		ctx, span := observability.Tracer("evactl").Start(cmd.Context(), "apply")
		defer span.End()

		workload, err := kube.Apply(ctx, client.Clientset, res)
		if err != nil {
			logger.Error(ctx, "apply failed", slog.Any("error", err))
			return err
		}

		logger.Info(ctx, "deployment applied",
			slog.String("workload", workload),
			slog.String("namespace", res.Deployment.Namespace),
			slog.String("checksum", res.Checksum),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)
}
