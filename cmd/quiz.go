package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jalshboul/template-based-question-generation/internal/adapter"
	"github.com/jalshboul/template-based-question-generation/internal/domain"
)

var quizCountFlag int
var quizMixedFlag bool

// quizCmd represents the quiz command.
var quizCmd = newQuizCmd()

func newQuizCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz <file>",
		Short: "Build a quiz for a source file",
		Long: `Build a quiz of --count questions together with the detected language
and algorithm. With --mixed half the questions are beginner, a fifth are
advanced and the rest intermediate.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := parsePath(args)

			formats, err := configuredFormats()
			if err != nil {
				return err
			}

			format := adapter.FormatJSON
			if len(formats) > 0 {
				format = formats[0]
			}

			return workflow.Quiz(cmd.Context(), domain.QuizArgs{
				Path:   path,
				Count:  quizCountFlag,
				Mixed:  quizMixedFlag,
				Seed:   viper.GetInt64(generateSeedKey),
				Output: artifactPath(path, "_quiz", format),
			})
		},
	}

	cmd.Flags().IntVarP(&quizCountFlag, countFlagName, "n", defaultQuizCount, "number of quiz questions")
	cmd.Flags().BoolVarP(&quizMixedFlag, "mixed", "m", true, "mix beginner, intermediate and advanced questions")

	return cmd
}

func init() {
	rootCmd.AddCommand(quizCmd)
}
