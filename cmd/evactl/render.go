package main

import (
	"fmt"

	"github.com/spf13/cobra"
	sigsyaml "sigs.k8s.io/yaml"

	"github.com/usingsystem/video-native-visualizer/internal/render/compose"
	"github.com/usingsystem/video-native-visualizer/internal/render/kube"
)

var renderTarget string

var renderCmd = &cobra.Command{
	Use:   "render <spec.yaml>",
	Short: "Render deployment configuration for a target platform",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := loadSpec(args[0])
		if err != nil {
			return err
		}

		debugf("rendering %q for target %s", spec.Name, renderTarget)

		switch renderTarget {
		case "kubernetes":
			res, err := kube.Render(spec)
			if err != nil {
				return err
			}

			cmData, err := sigsyaml.Marshal(res.ConfigMap)
			if err != nil {
				return fmt.Errorf("encode configmap: %w", err)
			}
			depData, err := sigsyaml.Marshal(res.Deployment)
			if err != nil {
				return fmt.Errorf("encode deployment: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), string(cmData))
			fmt.Fprintln(cmd.OutOrStdout(), "---")
			fmt.Fprint(cmd.OutOrStdout(), string(depData))
			return nil

		case "compose":
			f, err := compose.Render(spec)
			if err != nil {
				return err
			}

			data, err := compose.Encode(f)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil

		default:
			return fmt.Errorf("unknown render target %q (kubernetes, compose)", renderTarget)
		}
	},
}

func init() {
	renderCmd.Flags().StringVar(
		&renderTarget,
		"target",
		"kubernetes",
		"render target: kubernetes or compose",
	)

	rootCmd.AddCommand(renderCmd)
}
