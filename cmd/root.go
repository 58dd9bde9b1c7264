// Package cmd provides the root command and CLI setup for testsmith.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"testsmith.dev/pkg/testsmith/internal/adapter"
	"testsmith.dev/pkg/testsmith/internal/controller"
	"testsmith.dev/pkg/testsmith/internal/domain"
	m "testsmith.dev/pkg/testsmith/internal/model"
)

var javaAdapter adapter.JavaFileAdapter
var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var ui controller.UI
var workflow domain.Workflow

// reportsOutputDirFlag is a root-level flag shared by commands that
// read/write generation records.
var reportsOutputDirFlag string

// excludePatterns is a root-level flag that filters files for applicable
// commands.
var excludePatterns []string

// verboseFlag switches file logging to debug level.
var verboseFlag bool

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	javaAdapter = adapter.NewTreeSitterJavaAdapter()
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(
		javaAdapter,
		fsAdapter,
		reportStore,
		ui,
		domain.NewStructuralAnalyzer(),
		domain.NewTestCodeSynthesizer(),
		domain.NewIncrementalMerger(),
	)
}

const pathArgumentsHelp = `Paths may be single .java files or directories:
  - .                 scan the current directory recursively
  - src/main/java     scan one source tree
  - Foo.java Bar.java analyze specific files`

const rootLongDescription = `Testsmith generates JUnit 5 + Mockito test skeletons for Java classes.
It detects injected dependencies (annotation markers or constructor
injection), builds one happy-path test per public method plus one
failure-path test per declared exception, and merges new methods into an
existing test class without duplicating earlier output.

` + pathArgumentsHelp

const generateLongDescription = `Generate test classes for the given paths (default: current directory).

` + pathArgumentsHelp

const listLongDescription = `List Java classes with their dependency and testable method counts.

` + pathArgumentsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "testsmith",
		Short: "JUnit test skeleton generator",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), verboseFlag || viper.GetBool(logVerboseKey))
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
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for generation records",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "debug-level logging to the log file")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values
// feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
