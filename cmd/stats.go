package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jalshboul/template-based-question-generation/internal/adapter"
	"github.com/jalshboul/template-based-question-generation/internal/domain"
)

var statsFromFlag string

// statsCmd represents the stats command.
var statsCmd = newStatsCmd()

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [samples-dir]",
		Short: "Show how saved questions spread over Bloom's cognitive levels",
		Long: `Read every *_questions.<format> file below a samples directory (default:
samples.dir) and count the questions per cognitive level.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := adapter.ParseFormat(statsFromFlag)
			if err != nil {
				return err
			}

			formats, err := configuredFormats()
			if err != nil {
				return err
			}

			return workflow.Stats(cmd.Context(), domain.StatsArgs{
				Root:   samplesRoot(args),
				Format: from,
				Output: artifactPath("bloom", "_distribution", documentFormat(formats)),
			})
		},
	}

	cmd.Flags().StringVar(&statsFromFlag, "from", defaultDistributionInput, "format of the question files to read")

	return cmd
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
