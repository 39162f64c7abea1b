package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"devlink/internal/linking"
)

func codeCmd() *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "code",
		Short: "Generate a session code to share with the new device",
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := linking.NewCodeN(length)
			if err != nil {
				return err
			}
			fmt.Println(code)
			return nil
		},
	}

	cmd.Flags().IntVar(&length, "length", linking.CodeLength, "number of digits")
	return cmd
}
