package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/usingsystem/video-native-visualizer/pkg/deploy/codec"
	"github.com/usingsystem/video-native-visualizer/pkg/deploy/normalize"
	"github.com/usingsystem/video-native-visualizer/pkg/deploy/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate <spec.yaml>",
	Short: "Validate a deployment spec",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := codec.Load(args[0])
		if err != nil {
			return err
		}

		spec = normalize.Normalize(spec)

		if err := validate.Validate(spec); err != nil {
			fmt.Fprintln(os.Stderr, "❌ deployment spec is invalid")
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "✅ deployment spec is valid")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
