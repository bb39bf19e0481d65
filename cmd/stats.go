package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	statsscreen "github.com/abhisek/adivina/internal/screens/stats"
	"github.com/abhisek/adivina/internal/session"
	"github.com/abhisek/adivina/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Mostrar estadísticas del árbol y de las partidas",
	RunE: func(cmd *cobra.Command, args []string) error {
		recent, _ := cmd.Flags().GetInt("recent")

		e, err := openEnv(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer e.Close()

		ov, err := e.svc.Overview(cmd.Context(), recent)
		if err != nil {
			return err
		}
		_, err = lipgloss.Fprint(cmd.OutOrStdout(), formatOverview(ov))
		return err
	},
}

func init() {
	statsCmd.Flags().IntP("recent", "n", 5, "Number of recent games to list")
}

func formatOverview(ov *session.Overview) string {
	var b strings.Builder
	heading := theme.Subtitle.Render

	fmt.Fprintln(&b, heading("Árbol"))
	fmt.Fprintf(&b, "  Preguntas      %d\n", ov.Tree.Questions)
	fmt.Fprintf(&b, "  Personajes     %d\n", ov.Tree.Subjects)
	fmt.Fprintf(&b, "  Sin explorar   %d\n", ov.Tree.Unexplored)
	fmt.Fprintf(&b, "  Profundidad    %d\n", ov.Tree.Depth)
	fmt.Fprintf(&b, "  Copias         %d\n\n", ov.Snapshots)

	h := ov.History
	fmt.Fprintln(&b, heading("Partidas"))
	if h.Total == 0 {
		fmt.Fprintln(&b, "  Todavía no hay partidas.")
		return b.String()
	}
	fmt.Fprintf(&b, "  Jugadas        %d\n", h.Total)
	fmt.Fprintf(&b, "  Acertadas      %d\n", h.Guessed)
	fmt.Fprintf(&b, "  Aprendidas     %d\n", h.Learned)
	fmt.Fprintf(&b, "  Abandonadas    %d\n", h.Abandoned)
	if h.Failed > 0 {
		fmt.Fprintf(&b, "  Fallidas       %d\n", h.Failed)
	}
	if h.Guessed+h.Learned > 0 {
		fmt.Fprintf(&b, "  Acierto        %.0f%%\n", h.GuessRate()*100)
	}
	fmt.Fprintf(&b, "  Media          %.1f respuestas\n", h.AvgSteps)

	if len(ov.Recent) > 0 {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, heading("Recientes"))
		for _, r := range ov.Recent {
			fmt.Fprintf(&b, "  %s  %-10s  %s\n",
				r.StartedAt.Local().Format("2006-01-02 15:04"),
				statsscreen.OutcomeLabel(r.Outcome),
				statsscreen.Describe(r))
		}
	}
	return b.String()
}
