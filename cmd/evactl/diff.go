package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/usingsystem/video-native-visualizer/pkg/deploy/codec"
	"github.com/usingsystem/video-native-visualizer/pkg/deploy/diff"
	"github.com/usingsystem/video-native-visualizer/pkg/deploy/normalize"
)

var diffCmd = &cobra.Command{
	Use:   "diff <a.yaml> <b.yaml>",
	Short: "Show structural differences between two deployment specs",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := codec.Load(args[0])
		if err != nil {
			return err
		}
		b, err := codec.Load(args[1])
		if err != nil {
			return err
		}

		lines := diff.Diff(normalize.Normalize(a), normalize.Normalize(b))
		if len(lines) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no differences")
			return nil
		}

		for _, line := range lines {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
