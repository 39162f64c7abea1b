package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"devlink/internal/crypto"
	"devlink/internal/domain"
	"devlink/internal/linking"
)

// parentCmd waits for exactly one new device on the session code and
// authorizes it. Keys are held in memory only; each run is a fresh
// identity, which makes the command a working harness for the protocol
// rather than a key manager.
func parentCmd() *cobra.Command {
	var (
		code        string
		humanName   string
		deviceLabel string
	)

	cmd := &cobra.Command{
		Use:   "parent",
		Short: "Wait for a new device and authorize it",
		RunE: func(cmd *cobra.Command, args []string) error {
			kr, err := crypto.NewKeyring()
			if err != nil {
				return err
			}
			defer kr.Wipe()

			if code == "" {
				if code, err = linking.NewCode(); err != nil {
					return err
				}
			} else if code, err = linking.ParseCode(code); err != nil {
				return err
			}

			id := appCtx.Identities.Create(kr.DID(), kr.ExchangeKeyText(), humanName, deviceLabel)
			fmt.Fprintf(os.Stderr, "Session code: %s\nWaiting for the new device...\n", code)

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			updated, err := appCtx.Linker.Parent(ctx, id, kr, domain.LinkOptions{
				RelayAddr: appCtx.RelayAddr,
				Code:      code,
			})
			if err != nil {
				return fmt.Errorf("pairing failed: %w", err)
			}

			fmt.Fprintf(os.Stderr, "Device authorized. Identity now has %d devices.\n", len(updated.Devices))
			return json.NewEncoder(os.Stdout).Encode(updated)
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "session code (generated when empty)")
	cmd.Flags().StringVar(&humanName, "human-name", "devlink user", "human name for the identity")
	cmd.Flags().StringVar(&deviceLabel, "device-label", "parent device", "label for this device")
	return cmd
}
