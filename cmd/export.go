package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/adivina/internal/knowledge"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exportar el árbol de conocimiento",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		e, err := openEnv(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer e.Close()

		data, err := encodeTree(e.svc.Root(), format)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	exportCmd.Flags().StringP("format", "f", "json", "Output format: json or yaml")
}

func encodeTree(root *knowledge.Node, format string) ([]byte, error) {
	switch format {
	case "json":
		return knowledge.Marshal(root)
	case "yaml", "yml":
		return yaml.Marshal(root)
	default:
		return nil, fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
}
