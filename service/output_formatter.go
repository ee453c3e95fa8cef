package service

import (
	"io"

	"github.com/ludo-technologies/jreader/domain"
	"github.com/ludo-technologies/jreader/internal/config"
	"github.com/ludo-technologies/jreader/internal/reporter"
)

// OutputFormatterImpl implements domain.ReportWriter on top of the
// file reporter
type OutputFormatterImpl struct {
	config *config.Config
}

// NewOutputFormatter creates a new output formatter. A nil config uses the defaults.
func NewOutputFormatter(cfg *config.Config) *OutputFormatterImpl {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &OutputFormatterImpl{config: cfg}
}

// Write renders response in format. The formatter's config is copied so a
// per-call format never leaks into later calls.
func (f *OutputFormatterImpl) Write(response *domain.AnalyzeResponse, format domain.OutputFormat, writer io.Writer) error {
	if _, err := domain.ParseOutputFormat(string(format)); err != nil {
		return err
	}

	cfg := *f.config
	if format != "" {
		cfg.Output.Format = string(format)
	}

	r, err := reporter.NewFileReporter(&cfg, writer)
	if err != nil {
		return domain.NewOutputError("failed to create reporter", err)
	}
	return r.ReportAll(response)
}
