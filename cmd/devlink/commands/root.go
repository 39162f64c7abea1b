package commands

import (
	"time"

	"github.com/spf13/cobra"

	"devlink/internal/app"
)

var (
	relayAddr string
	timeout   time.Duration
	appCtx    *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "devlink",
		Short: "Pair a new device into an existing identity over a relay",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			appCtx = app.NewWire(app.Config{RelayAddr: relayAddr})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&relayAddr, "relay", "ws://127.0.0.1:1999", "relay base URL")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "how long to wait for the peer")

	root.AddCommand(codeCmd(), parentCmd(), childCmd())
	return root.Execute()
}
