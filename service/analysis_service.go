package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ludo-technologies/jreader/domain"
	"github.com/ludo-technologies/jreader/internal/analyzer"
	"github.com/ludo-technologies/jreader/internal/config"
	"github.com/ludo-technologies/jreader/internal/version"
)

// AnalysisServiceImpl implements domain.AnalysisService
type AnalysisServiceImpl struct {
	config   *config.Config
	reader   domain.SourceFileReader
	analyzer *analyzer.FileAnalyzer
	logger   *logrus.Logger
	progress domain.ProgressManager
}

// NewAnalysisService creates an analysis service. A nil logger discards
// all log output.
func NewAnalysisService(cfg *config.Config, reader domain.SourceFileReader, logger *logrus.Logger) *AnalysisServiceImpl {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &AnalysisServiceImpl{
		config: cfg,
		reader: reader,
		analyzer: analyzer.NewFileAnalyzer(
			analyzer.NewKeywordSet(cfg.Heuristics.ConditionalKeywords...),
			analyzer.NewKeywordSet(cfg.Heuristics.OperatorSymbols...),
		),
		logger: logger,
	}
}

// NewAnalysisServiceWithProgress creates an analysis service reporting progress to pm
func NewAnalysisServiceWithProgress(cfg *config.Config, reader domain.SourceFileReader, logger *logrus.Logger, pm domain.ProgressManager) *AnalysisServiceImpl {
	s := NewAnalysisService(cfg, reader, logger)
	s.progress = pm
	return s
}

// fileTask analyzes one file and stores the outcome in its slot
type fileTask struct {
	path   string
	run    func(ctx context.Context, path string) (*domain.FileAnalysis, error)
	result **domain.FileAnalysis
	err    *error
}

func (t *fileTask) Name() string {
	return t.path
}

func (t *fileTask) IsEnabled() bool {
	return true
}

func (t *fileTask) Execute(ctx context.Context) (interface{}, error) {
	analysis, err := t.run(ctx, t.path)
	*t.result = analysis
	*t.err = err
	return analysis, err
}

// Analyze analyzes every file of req.Paths. Files are reported in the order
// of req.Paths; a file that cannot be read or analyzed, or that the run
// timeout left unread, is logged, listed in the response errors and skipped.
func (s *AnalysisServiceImpl) Analyze(ctx context.Context, req domain.AnalyzeRequest) (*domain.AnalyzeResponse, error) {
	results := make([]*domain.FileAnalysis, len(req.Paths))
	failures := make([]error, len(req.Paths))

	tasks := make([]domain.ExecutableTask, len(req.Paths))
	for i, path := range req.Paths {
		tasks[i] = &fileTask{
			path:   path,
			run:    s.AnalyzeFile,
			result: &results[i],
			err:    &failures[i],
		}
	}

	var pm domain.ProgressManager = &NoOpProgressManager{}
	if s.progress != nil {
		pm = s.progress
	}
	executor := NewParallelExecutorWithProgress(&s.config.Performance, pm)
	executor.SetDescription("Analyzing files")
	executor.SetLogger(s.logger)

	s.logger.WithFields(logrus.Fields{
		"directory": req.Directory,
		"files":     len(req.Paths),
	}).Debug("starting analysis")

	execErr := executor.Execute(ctx, tasks)
	if err := ctx.Err(); err != nil {
		return nil, domain.NewAnalysisError("analysis cancelled", err)
	}

	response := &domain.AnalyzeResponse{
		Directory:   req.Directory,
		Files:       make([]domain.FileAnalysis, 0, len(req.Paths)),
		GeneratedAt: time.Now().Format(time.RFC3339),
		Version:     version.Version,
	}

	failed := 0
	for i, path := range req.Paths {
		if results[i] == nil && failures[i] == nil {
			// queued behind the executor deadline, never run
			failures[i] = domain.NewAnalysisError("file not analyzed before timeout", timeoutCause(execErr))
		}
		if failures[i] != nil {
			failed++
			s.logger.WithFields(logrus.Fields{
				"file":  path,
				"error": failures[i],
			}).Warn("skipping file")
			response.Errors = append(response.Errors, fmt.Sprintf("%s: %v", path, failures[i]))
			continue
		}
		if results[i] != nil {
			response.Files = append(response.Files, *results[i])
		}
	}

	if failed > 0 && failed == len(req.Paths) {
		return nil, domain.NewAnalysisError("no file could be analyzed", execErr)
	}

	response.Summary = s.summarize(response.Files, failed)
	return response, nil
}

// timeoutCause returns the deadline error carried by execErr, or
// context.DeadlineExceeded when the executor reported task failures only
func timeoutCause(execErr error) error {
	if execErr != nil && errors.Is(execErr, context.DeadlineExceeded) {
		return execErr
	}
	return context.DeadlineExceeded
}

// AnalyzeFile reads and analyzes a single source file
func (s *AnalysisServiceImpl) AnalyzeFile(ctx context.Context, filePath string) (*domain.FileAnalysis, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if s.reader == nil {
		return nil, domain.NewAnalysisError("no source file reader configured", nil)
	}

	content, err := s.reader.ReadContent(filePath)
	if err != nil {
		return nil, err
	}

	result, err := s.analyzer.Analyze(content)
	if err != nil {
		return nil, domain.NewAnalysisError(fmt.Sprintf("failed to analyze %s", filePath), err)
	}

	s.logger.WithFields(logrus.Fields{
		"file":    filePath,
		"methods": result.TotalMethods,
	}).Debug("file analyzed")

	return s.toFileAnalysis(filePath, result), nil
}

func (s *AnalysisServiceImpl) toFileAnalysis(filePath string, result *analyzer.FileResult) *domain.FileAnalysis {
	methods := make([]domain.MethodComplexity, 0, len(result.Methods))
	for _, rec := range result.Methods {
		methods = append(methods, domain.MethodComplexity{
			Name:       rec.Name,
			Complexity: rec.Complexity,
			Line:       rec.Line,
			CamelCase:  rec.CamelCase,
			RiskLevel:  s.config.Complexity.AssessRiskLevel(rec.Complexity),
		})
	}

	return &domain.FileAnalysis{
		FilePath:                  filePath,
		FileName:                  filepath.Base(filePath),
		Lines:                     result.Lines,
		TotalMethods:              result.TotalMethods,
		NonCamelCaseMethods:       result.NonCamelCaseMethods,
		NamingViolationPercentage: result.NamingViolationPercentage,
		Methods:                   methods,
	}
}

// summarize aggregates the files of a run. The first method reaching the
// maximum complexity names it.
func (s *AnalysisServiceImpl) summarize(files []domain.FileAnalysis, failed int) domain.AnalyzeSummary {
	summary := domain.AnalyzeSummary{
		FilesAnalyzed: len(files),
		FilesFailed:   failed,
	}

	totalComplexity := 0
	records := 0
	for _, file := range files {
		summary.TotalLines += file.Lines
		summary.TotalMethods += file.TotalMethods
		summary.NonCamelCaseMethods += file.NonCamelCaseMethods

		for _, m := range file.Methods {
			totalComplexity += m.Complexity
			records++
			if records == 1 || m.Complexity > summary.MaxComplexity {
				summary.MaxComplexity = m.Complexity
				summary.MaxComplexityMethod = fmt.Sprintf("%s:%s", file.FileName, m.Name)
			}
		}
	}

	summary.NamingViolationPercentage, _ = analyzer.NamingViolationPercentage(
		summary.NonCamelCaseMethods, summary.TotalMethods)
	if records > 0 {
		summary.AverageComplexity = math.Round(float64(totalComplexity)/float64(records)*100) / 100
	}
	return summary
}
