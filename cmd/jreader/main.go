package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ludo-technologies/jreader/internal/config"
	"github.com/ludo-technologies/jreader/internal/version"
	"github.com/ludo-technologies/jreader/service"
)

var (
	// Version information (set via ldflags during build)
	Version = version.Version

	verbose bool
	logger  *logrus.Logger
)

const directoryPrompt = "Which directory would you like to analyze?"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Handle custom exit codes from check command
		var exitErr *CheckExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintf(os.Stderr, "Error: %s\n", exitErr.Message)
			}
			// Silently exit with the specified code (output already printed)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jreader",
		Short: "jreader - Java complexity reader",
		Long: `jreader reads the Java files of a directory and reports, per file, the
methods with the highest cyclomatic complexity and the share of method
names that do not follow camelCase.

Run without arguments to be prompted for a directory.`,
		Version:           Version,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupEnvironment,
		RunE:              runInteractive,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

// setupEnvironment configures logging and loads .env before any command runs
func setupEnvironment(cmd *cobra.Command, args []string) error {
	logger = newLogger(cmd.ErrOrStderr(), verbose)

	path, err := config.LoadDotEnv(".")
	if err != nil {
		logger.WithError(err).Warn("ignoring .env file")
		return nil
	}
	if path != "" {
		logger.WithField("path", path).Debug("loaded environment file")
	}
	return nil
}

func newLogger(w io.Writer, debug bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if debug {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.InfoLevel)
	}
	return l
}

func printWelcome(w io.Writer) {
	bold := color.New(color.Bold)
	bold.Fprintln(w, "Welcome to the Java Complexity Reader!")
	fmt.Fprintln(w, "This program will analyze the complexity of Java files in a given directory.")
	fmt.Fprintln(w)
}

// runInteractive asks for a directory and analyzes it with the discovered configuration
func runInteractive(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	printWelcome(out)

	dir, err := readDirectory(cmd)
	if err != nil {
		return err
	}

	cfg, err := loadCommandConfig("", dir)
	if err != nil {
		return err
	}

	_, err = executeAnalysis(commandContext(cmd), cfg, dir, out, true)
	return err
}

// readDirectory prompts on a terminal, otherwise reads the first line of stdin
func readDirectory(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()
	if in == os.Stdin && service.IsInteractiveInput() {
		prompt := promptui.Prompt{
			Label:    directoryPrompt,
			Validate: validateDirectoryInput,
		}
		dir, err := prompt.Run()
		if err != nil {
			return "", fmt.Errorf("directory input cancelled: %w", err)
		}
		return strings.TrimSpace(dir), nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), directoryPrompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read directory: %w", err)
	}
	line = strings.TrimSpace(line)
	if err := validateDirectoryInput(line); err != nil {
		return "", fmt.Errorf("no directory given; run '%s analyze <directory>'", cmd.Root().Name())
	}
	return line, nil
}

func validateDirectoryInput(input string) error {
	if strings.TrimSpace(input) == "" {
		return errors.New("directory cannot be empty")
	}
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			if verbose {
				fmt.Fprintln(cmd.OutOrStdout(), version.GetFullVersion())
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "jreader version %s\n", version.GetVersion())
			}
		},
	}
}
