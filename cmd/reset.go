package cmd

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/adivina/internal/console"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Borrar el árbol aprendido y el historial de partidas",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		out := cmd.OutOrStdout()

		if !yes {
			fmt.Fprint(out, "Se borrará todo lo aprendido y el historial. ¿Continuar? (s/n): ")
			line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if confirmed, ok := console.ParseAnswer(line); !ok || !confirmed {
				fmt.Fprintln(out, "Cancelado.")
				return nil
			}
		}

		e, err := openEnv(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.kb.Reset(cmd.Context()); err != nil {
			return err
		}
		if err := e.db.Clear(cmd.Context()); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}
		fmt.Fprintln(out, "Listo. Empezamos de cero.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
