package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/abhisek/adivina/internal/config"
)

// v resolves flags, ADIVINA_* variables and the config file.
var v = config.New()

var rootCmd = &cobra.Command{
	Use:   "adivina",
	Short: "Adivino de personajes que aprende",
	Long: "Adivina: piensa en un personaje y responde sí o no. Si no lo adivino, " +
		"dime quién era y lo recordaré para la próxima.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command until it finishes or the process is
// interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String(config.KeyKnowledge, "", "Path to the knowledge base JSON file (overrides ADIVINA_KNOWLEDGE)")
	flags.String(config.KeyDB, "", "Path to the SQLite history database (overrides ADIVINA_DB)")
	flags.String(config.KeyLogFile, "", "Write structured logs to this file (overrides ADIVINA_LOG_FILE)")
	flags.Bool(config.KeyDebug, false, "Enable debug logging (logs to the data dir unless --log-file is set)")
	flags.Int(config.KeySnapshotKeep, config.DefaultSnapshotKeep, "Number of knowledge snapshots to keep")

	for _, key := range []string{config.KeyKnowledge, config.KeyDB, config.KeyLogFile, config.KeyDebug, config.KeySnapshotKeep} {
		_ = v.BindPFlag(key, flags.Lookup(key))
	}

	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(versionCmd)
}
