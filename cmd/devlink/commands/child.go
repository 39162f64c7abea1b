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

// childCmd enrolls this device using a code obtained from the parent out
// of band.
func childCmd() *cobra.Command {
	var (
		code       string
		deviceName string
	)

	cmd := &cobra.Command{
		Use:   "child",
		Short: "Enroll this device using a code from the parent",
		RunE: func(cmd *cobra.Command, args []string) error {
			kr, err := crypto.NewKeyring()
			if err != nil {
				return err
			}
			defer kr.Wipe()

			if code, err = linking.ParseCode(code); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			result, err := appCtx.Linker.Child(ctx, kr, domain.LinkOptions{
				RelayAddr:       appCtx.RelayAddr,
				Code:            code,
				HumanDeviceName: deviceName,
			})
			if err != nil {
				return fmt.Errorf("pairing failed: %w", err)
			}

			// The trust anchor: we were certified, and certified as us.
			if result.Certificate.Recipient != kr.DID() {
				return fmt.Errorf("certificate names %s, not this device", result.Certificate.Recipient)
			}
			if err := appCtx.Certificates.Verify(result.Certificate); err != nil {
				return fmt.Errorf("certificate rejected: %w", err)
			}

			fmt.Fprintf(os.Stderr, "Enrolled as %s into identity %s.\n",
				appCtx.Identities.DeviceNameFor(kr.DID()), result.Identity.Username)
			return json.NewEncoder(os.Stdout).Encode(result)
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "session code from the parent device")
	cmd.Flags().StringVar(&deviceName, "name", "", "human-readable name for this device")
	_ = cmd.MarkFlagRequired("code")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
