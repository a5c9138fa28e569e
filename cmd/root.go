// Package cmd provides the root command and CLI setup for codeqg.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jalshboul/template-based-question-generation/internal/adapter"
	"github.com/jalshboul/template-based-question-generation/internal/controller"
	"github.com/jalshboul/template-based-question-generation/internal/domain"
	m "github.com/jalshboul/template-based-question-generation/internal/model"
)

// workflow is built on first use so flag values reach the adapters. Tests
// replace it with a mock.
var workflow domain.Workflow

var outputDirFlag string
var formatsFlag []string
var seedFlag int64
var logFileFlag string
var verboseFlag bool

const rootLongDescription = `codeqg generates comprehension questions about source code from a
library of templates. It extracts the functions, loops, conditionals and
variables of Python, Java, C and C++ snippets, recognises common
algorithms, and balances the questions across Bloom's cognitive levels.

Questions can be printed, saved as csv, json or yaml, regenerated for a
whole samples directory, and analysed for their cognitive-level mix.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "codeqg",
		Short: "Template-based question generation for source code",
		Long:  rootLongDescription,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag)
			setupWorkflow(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outputDirFlag, outputFlagName, "o",
			viper.GetString(outputConfigKey),
			"directory to save generated files to (nothing is saved when empty)",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputConfigKey)

	cmd.PersistentFlags().StringSliceVarP(&formatsFlag, formatFlagName, "f", viper.GetStringSlice(formatConfigKey), "formats to save question sets in (csv, json, yaml)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(formatFlagName), formatConfigKey)

	cmd.PersistentFlags().Int64Var(&seedFlag, seedFlagName, viper.GetInt64(generateSeedKey), "random seed for reproducible question selection (0 picks one)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(seedFlagName), generateSeedKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "log file path (defaults to log.filename)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log at debug level")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// setupWorkflow wires the adapters behind the package-level workflow.
func setupWorkflow(cmd *cobra.Command) {
	if workflow != nil {
		return
	}

	fsAdapter := adapter.NewLocalSourceFSAdapter()
	scripts := adapter.NewLocalScriptRunnerAdapter(viper.GetString(testInterpreterKey), testTimeout())
	tty := controller.IsTTY(os.Stdin) && controller.IsTTY(os.Stdout)

	workflow = domain.NewWorkflow(
		fsAdapter,
		adapter.NewQuestionStore(fsAdapter),
		adapter.NewTestCaseLoader(fsAdapter),
		controller.NewUI(cmd.Root(), tty),
		domain.NewTestRunner(fsAdapter, scripts, viper.GetInt(testParallelKey)),
		domain.DefaultGeneratorFactory,
	)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

func parsePath(args []string) m.Path {
	if len(args) == 0 {
		return ""
	}

	return m.Path(args[0])
}

// samplesRoot returns the directory argument or samples.dir.
func samplesRoot(args []string) m.Path {
	if root := parsePath(args); root != "" {
		return root
	}

	return m.Path(viper.GetString(samplesDirKey))
}
