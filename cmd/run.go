package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/adivina/internal/app"
)

func runApp(cmd *cobra.Command) error {
	e, err := openEnv(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer e.Close()

	skip, _ := cmd.Flags().GetBool("no-splash")
	return app.Run(app.Options{
		Service:     e.svc,
		Logger:      e.log,
		SkipWelcome: skip,
	})
}
