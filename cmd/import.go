package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/adivina/internal/knowledge"
)

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Reemplazar el árbol de conocimiento por el de un fichero JSON o YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := decodeTreeFile(args[0])
		if err != nil {
			return err
		}

		// The current file may be corrupt; importing is how users replace it.
		e, err := openEnv(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.kb.Save(cmd.Context(), root); err != nil {
			return err
		}
		st := root.Stats()
		fmt.Fprintf(cmd.OutOrStdout(), "Importado: %d preguntas, %d personajes.\n", st.Questions, st.Subjects)
		return nil
	},
}

// decodeTreeFile reads a tree exported by `adivina export`. YAML input is
// re-encoded as JSON so that both formats pass the same schema checks.
func decodeTreeFile(path string) (*knowledge.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var n knowledge.Node
		if err := yaml.Unmarshal(data, &n); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if data, err = knowledge.Marshal(&n); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	root, err := knowledge.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return root, nil
}
