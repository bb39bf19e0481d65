package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/adivina/internal/console"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Jugar en modo texto, sin pantalla completa",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer e.Close()

		return console.New(e.svc, cmd.InOrStdin(), cmd.OutOrStdout(), e.log).Run(cmd.Context())
	},
}
