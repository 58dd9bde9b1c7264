package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"testsmith.dev/pkg/testsmith/internal/domain"
	m "testsmith.dev/pkg/testsmith/internal/model"
)

var generateAllFlag bool
var generateMethodsFlag []string
var generateDryRunFlag bool
var generatePatternFlag string
var generateTestRootFlag string
var generateFailureTestsFlag bool
var generateHintsFlag bool

// generateCmd represents the generate command.
var generateCmd = newGenerateCmd()

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [paths...]",
		Short: "Generate JUnit test skeletons",
		Long:  generateLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Generate(context.Background(), domain.GenerateArgs{
				Paths:    parsePaths(args),
				Exclude:  viper.GetStringSlice(excludeConfigKey),
				Methods:  generateMethodsFlag,
				All:      generateAllFlag,
				DryRun:   generateDryRunFlag,
				TestRoot: m.Path(viper.GetString(testRootKey)),
				Reports:  m.Path(viper.GetString(outputFlagName)),
				Config:   generatorConfig(),
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
	cmd.Flags().BoolVarP(&generateAllFlag, "all", "a", false, "generate for every public method without prompting")
	cmd.Flags().StringArrayVarP(&generateMethodsFlag, "method", "m", nil, "generate only for the named method (can be repeated)")
	cmd.Flags().BoolVar(&generateDryRunFlag, "dry-run", false, "print generated source instead of writing files")

	cmd.Flags().StringVarP(&generatePatternFlag, patternFlagName, "p", viper.GetString(namingPatternKey), "test naming pattern with {method} and {suffix} placeholders")
	bindFlagToConfig(cmd.Flags().Lookup(patternFlagName), namingPatternKey)

	cmd.Flags().StringVarP(&generateTestRootFlag, testRootFlagName, "t", viper.GetString(testRootKey), "test source root (default: mirror src/main/java to src/test/java)")
	bindFlagToConfig(cmd.Flags().Lookup(testRootFlagName), testRootKey)

	cmd.Flags().BoolVar(&generateFailureTestsFlag, failureTestsFlagName, viper.GetBool(failureTestsKey), "emit a failure-path test per declared exception")
	bindFlagToConfig(cmd.Flags().Lookup(failureTestsFlagName), failureTestsKey)

	cmd.Flags().BoolVar(&generateHintsFlag, hintsFlagName, viper.GetBool(guidanceCommentsKey), "append inline hints next to placeholder invocations")
	bindFlagToConfig(cmd.Flags().Lookup(hintsFlagName), guidanceCommentsKey)
}
