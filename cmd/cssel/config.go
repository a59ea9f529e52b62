package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/cssel"
)

var k = koanf.New(".")

// defaultPaths are the recipe globs used when neither flags nor config set any
var defaultPaths = []string{"recipes/**/*.yaml"}

// flagKeys maps command flag names onto their config file keys so that a flag
// left at its default does not shadow the config file.
var flagKeys = map[string]string{
	"paths":       "build.paths",
	"strict":      "build.strict",
	"format":      "build.format",
	"specificity": "build.specificity",
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".cssel.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence). Unchanged flags only fill keys that are still unset.
	fs := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
		key := f.Name
		if mapped, ok := flagKeys[key]; ok {
			key = mapped
		}
		return key, posflag.FlagVal(fs, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CSSEL_* prefix)
	if err := k.Load(env.Provider("CSSEL_", ".", func(s string) string {
		// CSSEL_BUILD_STRICT -> build.strict
		// CSSEL_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "CSSEL_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildBuildConfig constructs the library's BuildConfig from koanf state.
func buildBuildConfig() cssel.BuildConfig {
	paths := k.Strings("build.paths")
	if len(paths) == 0 {
		paths = defaultPaths
	}

	return cssel.BuildConfig{
		Paths:            paths,
		Strict:           getBool("build.strict", false),
		PrintSpecificity: getBool("build.specificity", false),
		UseColors:        getBool("color", false),
	}
}

// getString returns the value at key, or defaultVal when unset or empty.
func getString(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getBool returns the value at key, or defaultVal when unset.
func getBool(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}
