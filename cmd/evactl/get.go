package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/usingsystem/video-native-visualizer/internal/store"
	"github.com/usingsystem/video-native-visualizer/pkg/deploy/codec"
)

var getTimeout time.Duration

var getCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Fetch a stored deployment spec from etcd",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.NewEtcd(connConfig().EtcdEndpoints)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), getTimeout)
		defer cancel()

		spec, err := st.GetSpec(ctx, args[0])
		if err != nil {
			return err
		}

		data, err := codec.Encode(spec)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	getCmd.Flags().DurationVar(
		&getTimeout,
		"timeout",
		5*time.Second,
		"etcd request timeout",
	)

	rootCmd.AddCommand(getCmd)
}
