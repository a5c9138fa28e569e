package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jalshboul/template-based-question-generation/internal/domain"
	m "github.com/jalshboul/template-based-question-generation/internal/model"
)

var batchParallelFlag int
var batchCountFlag int
var batchTierFlag string
var batchSpillDirFlag string

// batchCmd represents the batch command.
var batchCmd = newBatchCmd()

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [samples-dir]",
		Short: "Regenerate the questions of every sample in a directory",
		Long: `Walk a samples directory (default: samples.dir), generate questions for
every Python, Java, C and C++ file and save them next to the file as
<algorithm>_<file>_questions.<format>, where <algorithm> is the name of the
folder holding the file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tier, err := m.ParseTier(viper.GetString(batchTierKey))
			if err != nil {
				return err
			}

			formats, err := configuredFormats()
			if err != nil {
				return err
			}

			return workflow.Batch(cmd.Context(), domain.BatchArgs{
				Root:     samplesRoot(args),
				Count:    viper.GetInt(batchCountKey),
				Tier:     tier,
				Threads:  viper.GetInt(batchParallelKey),
				Formats:  formats,
				Seed:     viper.GetInt64(generateSeedKey),
				SpillDir: batchSpillDirFlag,
			})
		},
	}

	configureBatchFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func configureBatchFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&batchParallelFlag, parallelFlagName, "p", viper.GetInt(batchParallelKey), "number of parallel workers")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), batchParallelKey)

	cmd.Flags().IntVarP(&batchCountFlag, countFlagName, "n", viper.GetInt(batchCountKey), "number of questions per sample")
	bindFlagToConfig(cmd.Flags().Lookup(countFlagName), batchCountKey)

	cmd.Flags().StringVarP(&batchTierFlag, tierFlagName, "t", viper.GetString(batchTierKey), "question tier: beginner, intermediate or advanced")
	bindFlagToConfig(cmd.Flags().Lookup(tierFlagName), batchTierKey)

	cmd.Flags().StringVar(&batchSpillDirFlag, "spill-dir", "", "directory for the temporary result buffer (defaults to the system temp dir)")
}
