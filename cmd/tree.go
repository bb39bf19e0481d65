package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/adivina/internal/ui/components"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Mostrar el árbol de preguntas",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer e.Close()

		out := cmd.OutOrStdout()
		root := e.svc.Root()

		plain, _ := cmd.Flags().GetBool("plain")
		if plain {
			_, err = fmt.Fprint(out, components.RenderTree(root, components.PlainTreeStyles()))
			return err
		}
		// Colors are dropped when out is not a terminal.
		_, err = lipgloss.Fprint(out, components.RenderTree(root, components.DefaultTreeStyles()))
		return err
	},
}

func init() {
	treeCmd.Flags().Bool("plain", false, "Print without colors")
}
