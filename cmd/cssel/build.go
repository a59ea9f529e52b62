package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yacobolo/cssel"
)

// errBuildFailed signals a non-zero exit after output has been written
var errBuildFailed = errors.New("one or more selectors failed to build")

var buildCmd = &cobra.Command{
	Use:     "build",
	Aliases: []string{"b"},
	Short:   "Build selectors from recipe files",
	Long: `Read YAML recipe files and render every selector they declare.
Selectors that break ordering or uniqueness rules are reported as issues.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runBuild,
}

func init() {
	f := buildCmd.Flags()
	f.StringSlice("paths", nil, "Glob patterns for recipe files (default recipes/**/*.yaml)")
	f.Bool("strict", false, "Fail on the first bad recipe file or selector")
	f.String("format", "", "Output format: text|json|list")
	f.Bool("specificity", false, "Show selector specificity in text output")
}

// runBuild is shared between `cssel build` and `cssel` with no subcommand.
func runBuild(cmd *cobra.Command, _ []string) error {
	config := buildBuildConfig()
	log := commandLogger(cmd.ErrOrStderr())
	defer func() { _ = log.Sync() }()

	quiet := getBool("quiet", false)
	format := cssel.DetermineOutputFormat(getString("build.format", ""), quiet)

	result, err := cssel.Build(config, log)
	if result != nil && !quiet {
		cssel.WriteOutput(cmd.OutOrStdout(), result, format, config)
	}
	if err != nil {
		return err
	}

	// Only errors fail the build, warnings do not
	if result.ErrorCount > 0 {
		log.Debug("Build has errors", zap.Int("errors", result.ErrorCount))
		return errBuildFailed
	}

	return nil
}
