package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssel.yaml config file",
	Long: `Create a .cssel.yaml configuration file in the current directory with sensible defaults.
With --example also write recipes/example.yaml.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		example, _ := cmd.Flags().GetBool("example")

		if _, err := os.Stat(".cssel.yaml"); err == nil && !force {
			return fmt.Errorf(".cssel.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".cssel.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Created .cssel.yaml")

		if example {
			if err := os.MkdirAll("recipes", 0755); err != nil {
				return fmt.Errorf("creating recipes directory: %w", err)
			}
			if err := os.WriteFile("recipes/example.yaml", []byte(exampleRecipe), 0644); err != nil {
				return fmt.Errorf("writing example recipe: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Created recipes/example.yaml")
		}
		return nil
	},
}

const defaultConfig = `# cssel configuration
# Docs: https://github.com/yacobolo/cssel

# Shared settings
verbose: false
quiet: false
color: false

# Build settings
build:
  paths:
    - "recipes/**/*.yaml"
  strict: false
  format: text          # text | json | list
  specificity: false
`

const exampleRecipe = `# Each selector is built from parts in order:
# element, id, class, attribute, pseudo-class, pseudo-element.
selectors:
  - name: main
    parts:
      - {kind: element, value: div}
      - {kind: id, value: main}
  - name: data
    parts:
      - {kind: element, value: table}
      - {kind: id, value: data}
  - name: main-then-data
    combine: {left: main, combinator: "+", right: data}
  - name: image-link
    parts:
      - {kind: element, value: a}
      - {kind: attr, value: 'href$=".png"'}
      - {kind: pseudo-class, value: focus}
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
	initCmd.Flags().Bool("example", false, "Also write recipes/example.yaml")
}
