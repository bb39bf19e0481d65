package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Recuperar el árbol desde la última copia guardada",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer e.Close()

		snap, err := e.svc.Restore(cmd.Context())
		if err != nil {
			return err
		}
		st := snap.Tree.Stats()
		fmt.Fprintf(cmd.OutOrStdout(), "Recuperada la copia #%d del %s: %d preguntas, %d personajes.\n",
			snap.Sequence, snap.Timestamp.Local().Format("2006-01-02 15:04"), st.Questions, st.Subjects)
		return nil
	},
}
