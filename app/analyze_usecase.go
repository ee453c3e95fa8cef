package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ludo-technologies/jreader/domain"
)

// AnalyzeUseCase orchestrates the analysis of a directory: file
// resolution, per-file analysis and report writing
type AnalyzeUseCase struct {
	service    domain.AnalysisService
	fileReader domain.SourceFileReader
	formatter  domain.ReportWriter
}

// NewAnalyzeUseCase creates a new analyze use case
func NewAnalyzeUseCase(
	service domain.AnalysisService,
	fileReader domain.SourceFileReader,
	formatter domain.ReportWriter,
) *AnalyzeUseCase {
	return &AnalyzeUseCase{
		service:    service,
		fileReader: fileReader,
		formatter:  formatter,
	}
}

// Execute analyzes req.Directory and writes the report to req.OutputWriter
func (uc *AnalyzeUseCase) Execute(ctx context.Context, req domain.AnalyzeRequest) (*domain.AnalyzeResponse, error) {
	response, err := uc.Analyze(ctx, req)
	if err != nil {
		return nil, err
	}

	if req.OutputWriter != nil {
		if err := uc.formatter.Write(response, req.OutputFormat, req.OutputWriter); err != nil {
			return nil, domain.NewOutputError("failed to write report", err)
		}
	}

	return response, nil
}

// Analyze resolves and analyzes the files of req without writing a report
func (uc *AnalyzeUseCase) Analyze(ctx context.Context, req domain.AnalyzeRequest) (*domain.AnalyzeResponse, error) {
	if err := uc.validateRequest(req); err != nil {
		return nil, err
	}

	if len(req.Paths) == 0 {
		files, err := ResolveFilePaths(
			uc.fileReader,
			req.Directory,
			req.Recursive,
			req.Extensions,
			req.ExcludePatterns,
		)
		if err != nil {
			return nil, err
		}
		req.Paths = files
	}

	response, err := uc.service.Analyze(ctx, req)
	if err != nil {
		var de domain.DomainError
		if errors.As(err, &de) {
			return nil, err
		}
		return nil, domain.NewAnalysisError("analysis failed", err)
	}

	return response, nil
}

// validateRequest validates the analyze request
func (uc *AnalyzeUseCase) validateRequest(req domain.AnalyzeRequest) error {
	if strings.TrimSpace(req.Directory) == "" && len(req.Paths) == 0 {
		return domain.NewInvalidInputError("directory path cannot be empty", nil)
	}
	if len(req.Extensions) == 0 && len(req.Paths) == 0 {
		return domain.NewInvalidInputError("no source file extensions specified", nil)
	}
	if req.Top < 0 {
		return domain.NewInvalidInputError(fmt.Sprintf("top cannot be negative: %d", req.Top), nil)
	}
	if _, err := domain.ParseOutputFormat(string(req.OutputFormat)); err != nil {
		return err
	}
	return nil
}

// AnalyzeUseCaseBuilder builds an AnalyzeUseCase
type AnalyzeUseCaseBuilder struct {
	service    domain.AnalysisService
	fileReader domain.SourceFileReader
	formatter  domain.ReportWriter
}

// NewAnalyzeUseCaseBuilder creates a new builder
func NewAnalyzeUseCaseBuilder() *AnalyzeUseCaseBuilder {
	return &AnalyzeUseCaseBuilder{}
}

// WithService sets the analysis service
func (b *AnalyzeUseCaseBuilder) WithService(service domain.AnalysisService) *AnalyzeUseCaseBuilder {
	b.service = service
	return b
}

// WithFileReader sets the source file reader
func (b *AnalyzeUseCaseBuilder) WithFileReader(reader domain.SourceFileReader) *AnalyzeUseCaseBuilder {
	b.fileReader = reader
	return b
}

// WithFormatter sets the report writer
func (b *AnalyzeUseCaseBuilder) WithFormatter(formatter domain.ReportWriter) *AnalyzeUseCaseBuilder {
	b.formatter = formatter
	return b
}

// Build creates the AnalyzeUseCase with the configured dependencies
func (b *AnalyzeUseCaseBuilder) Build() (*AnalyzeUseCase, error) {
	if b.service == nil {
		return nil, fmt.Errorf("analysis service is required")
	}
	if b.formatter == nil {
		return nil, fmt.Errorf("report writer is required")
	}

	reader := b.fileReader
	if reader == nil {
		reader = NewFileHelper()
	}

	return NewAnalyzeUseCase(b.service, reader, b.formatter), nil
}
