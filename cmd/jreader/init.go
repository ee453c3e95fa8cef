package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/ludo-technologies/jreader/internal/config"
	"github.com/ludo-technologies/jreader/internal/constants"
)

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a jreader configuration file",
		Long: `Generate a documented jreader configuration file with sensible defaults.

By default, creates jreader.yaml in the current directory with full
documentation. Use --interactive for a guided setup wizard.

Examples:
  # Create jreader.yaml in current directory
  jreader init

  # Custom output path
  jreader init --config custom.yaml

  # Overwrite existing file
  jreader init --force

  # Generate smaller config with essential options only
  jreader init --minimal

  # Interactive setup wizard
  jreader init --interactive
  jreader init -i`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}

	cmd.Flags().StringP("config", "c", constants.ConfigFileName,
		"Output path for the config file")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing config file")
	cmd.Flags().Bool("minimal", false,
		"Generate minimal config with essential options only")
	cmd.Flags().BoolP("interactive", "i", false,
		"Interactive setup wizard")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	// Get flag values from command
	configPath, _ := cmd.Flags().GetString("config")
	force, _ := cmd.Flags().GetBool("force")
	minimal, _ := cmd.Flags().GetBool("minimal")
	interactive, _ := cmd.Flags().GetBool("interactive")

	opts := config.DefaultTemplateOptions()

	// Run interactive setup if requested
	if interactive {
		var err error
		opts, configPath, err = runInteractiveSetup(cmd.OutOrStdout(), configPath)
		if err != nil {
			return err
		}
	}

	var content string
	if minimal {
		content = config.GetMinimalConfigTemplate()
	} else {
		content = config.GetFullConfigTemplate(opts)
	}

	if err := writeConfigFile(configPath, content, force); err != nil {
		return err
	}

	// Print success message with absolute path if possible, otherwise use relative path
	displayPath := configPath
	if absPath, err := filepath.Abs(configPath); err == nil {
		displayPath = absPath
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", displayPath)
	fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'jreader analyze .' to analyze your project.")

	return nil
}

// writeConfigFile writes content to path, refusing to replace an existing
// file unless force is set
func writeConfigFile(path, content string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists. Use --force to overwrite", path)
		}
	}

	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			return fmt.Errorf("directory does not exist: %s", dir)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func runInteractiveSetup(w io.Writer, defaultConfigPath string) (config.TemplateOptions, string, error) {
	opts := config.DefaultTemplateOptions()

	fmt.Fprintln(w)
	fmt.Fprintln(w, "jreader Configuration Setup")
	fmt.Fprintln(w, "===========================")
	fmt.Fprintln(w)

	// Strictness selection
	strictnessLevels := []struct {
		Label       string
		Description string
		Value       config.Strictness
	}{
		{"Standard (recommended)", "Balanced thresholds for most projects", config.StrictnessStandard},
		{"Relaxed", "Higher thresholds, no check limits", config.StrictnessRelaxed},
		{"Strict", "Lower thresholds, CI/CD enforcement", config.StrictnessStrict},
	}

	strictnessTemplates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "\U0001F449 {{ .Label | cyan }} - {{ .Description | faint }}",
		Inactive: "   {{ .Label | white }} - {{ .Description | faint }}",
		Selected: "\U00002705 {{ .Label | green }}",
	}

	strictnessPrompt := promptui.Select{
		Label:     "How strict should the analysis be?",
		Items:     strictnessLevels,
		Templates: strictnessTemplates,
	}

	strictnessIdx, _, err := strictnessPrompt.Run()
	if err != nil {
		return opts, "", fmt.Errorf("strictness selection cancelled: %w", err)
	}
	opts.Strictness = strictnessLevels[strictnessIdx].Value

	fmt.Fprintln(w)

	// Recursion
	recursivePrompt := promptui.Prompt{
		Label:     "Walk subdirectories",
		IsConfirm: true,
	}
	// A "no" answer is reported as ErrAbort
	if _, err := recursivePrompt.Run(); err == nil {
		opts.Recursive = true
	} else if err != promptui.ErrAbort {
		return opts, "", fmt.Errorf("recursion input cancelled: %w", err)
	}

	// Extensions
	extPrompt := promptui.Prompt{
		Label:   "File suffixes (comma-separated)",
		Default: strings.Join(opts.Extensions, ","),
	}
	extInput, err := extPrompt.Run()
	if err != nil {
		return opts, "", fmt.Errorf("extension input cancelled: %w", err)
	}
	if exts := parseExtensions(extInput); len(exts) > 0 {
		opts.Extensions = exts
	}

	// Output path prompt
	outputPrompt := promptui.Prompt{
		Label:   "Output file path",
		Default: defaultConfigPath,
	}

	outputPath, err := outputPrompt.Run()
	if err != nil {
		return opts, "", fmt.Errorf("output path input cancelled: %w", err)
	}

	// Use default if empty
	if outputPath == "" {
		outputPath = defaultConfigPath
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Creating %s... ", outputPath)

	return opts, outputPath, nil
}

// parseExtensions splits a comma-separated suffix list, dropping blanks
func parseExtensions(input string) []string {
	var exts []string
	for _, part := range strings.Split(input, ",") {
		if ext := strings.TrimSpace(part); ext != "" {
			exts = append(exts, ext)
		}
	}
	return exts
}
