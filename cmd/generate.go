package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jalshboul/template-based-question-generation/internal/domain"
	m "github.com/jalshboul/template-based-question-generation/internal/model"
)

var generateCountFlag int
var generateTierFlag string
var generateMixedFlag bool
var mixedBeginnerFlag int
var mixedIntermediateFlag int
var mixedAdvancedFlag int

// generateCmd represents the generate command.
var generateCmd = newGenerateCmd()

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <file>",
		Short: "Generate questions for a source file",
		Long: `Generate questions about the functions, loops, conditionals, variables
and recognised algorithm of a source file.

With --mixed the questions are drawn per tier using --beginner,
--intermediate and --advanced. When an output directory is set the set is
saved as <file>_questions.<format> for every configured format.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := parsePath(args)

			tier, err := m.ParseTier(viper.GetString(generateTierKey))
			if err != nil {
				return err
			}

			formats, err := configuredFormats()
			if err != nil {
				return err
			}

			var outputs []m.Path

			for _, format := range formats {
				if output := artifactPath(path, "_questions", format); output != "" {
					outputs = append(outputs, output)
				}
			}

			return workflow.Generate(cmd.Context(), domain.GenerateArgs{
				Path:  path,
				Count: viper.GetInt(generateCountKey),
				Tier:  tier,
				Mixed: generateMixedFlag,
				Counts: domain.TierCounts{
					Beginner:     viper.GetInt(mixedBeginnerKey),
					Intermediate: viper.GetInt(mixedIntermediateKey),
					Advanced:     viper.GetInt(mixedAdvancedKey),
				},
				Seed:    viper.GetInt64(generateSeedKey),
				Outputs: outputs,
			})
		},
	}

	configureGenerateFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func configureGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&generateCountFlag, countFlagName, "n", viper.GetInt(generateCountKey), "number of questions to generate")
	bindFlagToConfig(cmd.Flags().Lookup(countFlagName), generateCountKey)

	cmd.Flags().StringVarP(&generateTierFlag, tierFlagName, "t", viper.GetString(generateTierKey), "question tier: beginner, intermediate or advanced")
	bindFlagToConfig(cmd.Flags().Lookup(tierFlagName), generateTierKey)

	cmd.Flags().BoolVarP(&generateMixedFlag, "mixed", "m", false, "draw questions from every tier")

	cmd.Flags().IntVar(&mixedBeginnerFlag, "beginner", viper.GetInt(mixedBeginnerKey), "beginner questions in a mixed set")
	bindFlagToConfig(cmd.Flags().Lookup("beginner"), mixedBeginnerKey)

	cmd.Flags().IntVar(&mixedIntermediateFlag, "intermediate", viper.GetInt(mixedIntermediateKey), "intermediate questions in a mixed set")
	bindFlagToConfig(cmd.Flags().Lookup("intermediate"), mixedIntermediateKey)

	cmd.Flags().IntVar(&mixedAdvancedFlag, "advanced", viper.GetInt(mixedAdvancedKey), "advanced questions in a mixed set")
	bindFlagToConfig(cmd.Flags().Lookup("advanced"), mixedAdvancedKey)
}
