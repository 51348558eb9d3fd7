package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/usingsystem/video-native-visualizer/pkg/deploy/codec"
	"github.com/usingsystem/video-native-visualizer/pkg/deploy/fingerprint"
	"github.com/usingsystem/video-native-visualizer/pkg/deploy/normalize"
)

var fingerprintCmd = &cobra.Command{
	Use:   "fingerprint <spec.yaml>",
	Short: "Print the stable hash of a deployment spec",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := codec.Load(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), fingerprint.Fingerprint(normalize.Normalize(spec)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fingerprintCmd)
}
