package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jalshboul/template-based-question-generation/internal/domain"
)

// explainCmd represents the explain command.
var explainCmd = newExplainCmd()

func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <file>",
		Short: "Explain a source file and report code-quality metrics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := parsePath(args)

			formats, err := configuredFormats()
			if err != nil {
				return err
			}

			return workflow.Explain(cmd.Context(), domain.ExplainArgs{
				Path:   path,
				Output: artifactPath(path, "_explanation", documentFormat(formats)),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(explainCmd)
}
