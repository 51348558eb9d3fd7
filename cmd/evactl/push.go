package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/usingsystem/video-native-visualizer/internal/store"
)

var pushTimeout time.Duration

var pushCmd = &cobra.Command{
	Use:   "push <spec.yaml>",
	Short: "Store a deployment spec in etcd for the running visualizer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := loadSpec(args[0])
		if err != nil {
			return err
		}

		st, err := store.NewEtcd(connConfig().EtcdEndpoints)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), pushTimeout)
		defer cancel()

		if err := st.PutSpec(ctx, spec); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "stored config for %q\n", spec.Name)
		return nil
	},
}

func init() {
	pushCmd.Flags().DurationVar(
		&pushTimeout,
		"timeout",
		5*time.Second,
		"etcd request timeout",
	)

	rootCmd.AddCommand(pushCmd)
}
