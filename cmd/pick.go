package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jalshboul/template-based-question-generation/internal/domain"
)

// pickCmd represents the pick command.
var pickCmd = newPickCmd()

func newPickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick [samples-dir]",
		Short: "Choose a sample interactively and generate questions for it",
		Long: `Choose an algorithm folder and one of its implementations, then print a
mixed set of questions (mixed.beginner, mixed.intermediate, mixed.advanced),
save it next to the sample, and explain the code.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats, err := configuredFormats()
			if err != nil {
				return err
			}

			return workflow.Pick(cmd.Context(), domain.PickArgs{
				Root: samplesRoot(args),
				Counts: domain.TierCounts{
					Beginner:     viper.GetInt(mixedBeginnerKey),
					Intermediate: viper.GetInt(mixedIntermediateKey),
					Advanced:     viper.GetInt(mixedAdvancedKey),
				},
				Seed:    viper.GetInt64(generateSeedKey),
				Formats: formats,
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(pickCmd)
}
