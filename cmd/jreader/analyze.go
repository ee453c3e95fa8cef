package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/jreader/app"
	"github.com/ludo-technologies/jreader/domain"
	"github.com/ludo-technologies/jreader/internal/config"
	"github.com/ludo-technologies/jreader/internal/constants"
	"github.com/ludo-technologies/jreader/internal/reporter"
	"github.com/ludo-technologies/jreader/service"
)

var (
	outputFormat string
	topMethods   int
	recursive    bool
	extensions   []string
	configPath   string
	noProgress   bool
	noColor      bool
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [directory]",
		Short: "Analyze the Java files of a directory",
		Long: `Analyze the Java files of a directory and report, per file, the most
complex methods and the share of method names not following camelCase.

The directory defaults to the current one. Only its direct entries are
read unless --recursive is given.

Examples:
  jreader analyze src/
  jreader analyze --top 5 --recursive src/
  jreader analyze --format json src/ > report.json
  jreader analyze --ext .java,.jav legacy/`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text",
		"Output format: text, json, yaml, csv")
	cmd.Flags().IntVar(&topMethods, "top", constants.DefaultTopMethods,
		"Number of methods listed per file")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false,
		"Walk subdirectories")
	cmd.Flags().StringSliceVar(&extensions, "ext", nil,
		"File suffixes to analyze (default .java)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "",
		"Path to config file")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false,
		"Disable the progress bar")
	cmd.Flags().BoolVar(&noColor, "no-color", false,
		"Disable colored output")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	dir := targetDirectory(args)

	cfg, err := loadCommandConfig(configPath, dir)
	if err != nil {
		return err
	}
	loader := service.NewConfigurationLoader()
	cfg = loader.MergeConfig(cfg, analyzeOverrides(cmd))
	if err := loader.ValidateConfig(cfg); err != nil {
		return err
	}

	_, err = executeAnalysis(commandContext(cmd), cfg, dir, cmd.OutOrStdout(), !noProgress)
	return err
}

// analyzeOverrides collects the flags set explicitly on the command line
func analyzeOverrides(cmd *cobra.Command) service.ConfigOverrides {
	var o service.ConfigOverrides
	flags := cmd.Flags()
	if flags.Changed("format") {
		o.Format = &outputFormat
	}
	if flags.Changed("top") {
		o.Top = &topMethods
	}
	if flags.Changed("recursive") {
		o.Recursive = &recursive
	}
	if flags.Changed("ext") {
		o.Extensions = extensions
	}
	o.NoColor = noColor
	return o
}

func targetDirectory(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadCommandConfig loads path, or the configuration discovered from dir
func loadCommandConfig(path, dir string) (*config.Config, error) {
	loader := service.NewConfigurationLoader()
	cfg, err := loader.LoadConfig(path, dir)
	if err != nil {
		return nil, err
	}
	if logger != nil {
		if found := loader.FindDefaultConfigFile(dir); path == "" && found != "" {
			logger.WithField("path", found).Debug("using configuration file")
		}
	}
	return cfg, nil
}

// newAnalyzeUseCase wires the file helper, analysis service and formatter
func newAnalyzeUseCase(cfg *config.Config, pm domain.ProgressManager) (*app.AnalyzeUseCase, error) {
	reader := app.NewFileHelper()
	reader.RespectGitignore = cfg.Analysis.RespectGitignore

	return app.NewAnalyzeUseCaseBuilder().
		WithService(service.NewAnalysisServiceWithProgress(cfg, reader, logger, pm)).
		WithFileReader(reader).
		WithFormatter(service.NewOutputFormatter(cfg)).
		Build()
}

func newAnalyzeRequest(cfg *config.Config, dir string, w io.Writer) domain.AnalyzeRequest {
	return domain.AnalyzeRequest{
		Directory:        dir,
		Extensions:       cfg.Analysis.Extensions,
		Recursive:        cfg.Analysis.Recursive,
		ExcludePatterns:  cfg.Analysis.ExcludePatterns,
		RespectGitignore: cfg.Analysis.RespectGitignore,
		OutputFormat:     domain.OutputFormat(cfg.Output.Format),
		OutputWriter:     w,
		Top:              cfg.Output.Top,
		Color:            cfg.Output.Color,
	}
}

// executeAnalysis analyzes dir and writes the report to w
func executeAnalysis(ctx context.Context, cfg *config.Config, dir string, w io.Writer, showProgress bool) (*domain.AnalyzeResponse, error) {
	pm := service.NewProgressManager(showProgress && cfg.Output.Format == constants.OutputFormatText)
	defer pm.Close()

	uc, err := newAnalyzeUseCase(cfg, pm)
	if err != nil {
		return nil, fmt.Errorf("failed to set up analysis: %w", err)
	}
	resp, err := uc.Execute(ctx, newAnalyzeRequest(cfg, dir, w))
	if err != nil {
		return nil, err
	}
	if logger != nil {
		logger.Debug(reporter.FormatBrief(resp))
	}
	return resp, nil
}
