package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jalshboul/template-based-question-generation/internal/adapter"
	"github.com/jalshboul/template-based-question-generation/internal/domain"
	m "github.com/jalshboul/template-based-question-generation/internal/model"
)

var testCasesFlag string
var testTimeoutFlag int64
var testInterpreterFlag string
var testParallelFlag int

// testCmd represents the test command.
var testCmd = newTestCmd()

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test <file>",
		Short: "Run unit-test cases against a Python source file",
		Long: `Run the unit-test cases of a source file. Each case names a function,
its inputs and the expected output; it runs in its own interpreter process
with a time limit.

Cases are read from --cases or from <file>` + adapter.TestCasesSuffix + ` next to the file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := parsePath(args)

			formats, err := configuredFormats()
			if err != nil {
				return err
			}

			return workflow.Test(cmd.Context(), domain.TestArgs{
				Path:   path,
				Cases:  m.Path(testCasesFlag),
				Output: artifactPath(path, "_test_report", documentFormat(formats)),
			})
		},
	}

	configureTestFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(testCmd)
}

func configureTestFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&testCasesFlag, "cases", "c", "", "test-case file (yaml or json)")

	cmd.Flags().Int64Var(&testTimeoutFlag, timeoutFlagName, viper.GetInt64(testTimeoutKey), "time limit per test case in seconds")
	bindFlagToConfig(cmd.Flags().Lookup(timeoutFlagName), testTimeoutKey)

	cmd.Flags().StringVar(&testInterpreterFlag, "interpreter", viper.GetString(testInterpreterKey), "interpreter used to run the cases")
	bindFlagToConfig(cmd.Flags().Lookup("interpreter"), testInterpreterKey)

	cmd.Flags().IntVarP(&testParallelFlag, parallelFlagName, "p", viper.GetInt(testParallelKey), "number of cases run at once")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), testParallelKey)
}
