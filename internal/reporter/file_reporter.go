package reporter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"gopkg.in/yaml.v3"

	"github.com/ludo-technologies/jreader/domain"
	"github.com/ludo-technologies/jreader/internal/config"
	"github.com/ludo-technologies/jreader/internal/constants"
)

// Column headers of the per-file method table
const (
	HeaderMethodName = "method name"
	HeaderComplexity = "complexity"
)

// FileReporter renders file analyses in the configured output format
type FileReporter struct {
	config *config.Config
	writer io.Writer

	bold   *color.Color
	low    *color.Color
	medium *color.Color
	high   *color.Color
}

// NewFileReporter creates a reporter writing to writer
func NewFileReporter(cfg *config.Config, writer io.Writer) (*FileReporter, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if writer == nil {
		return nil, fmt.Errorf("writer cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	r := &FileReporter{
		config: cfg,
		writer: writer,
		bold:   color.New(color.Bold),
		low:    color.New(color.FgGreen),
		medium: color.New(color.FgYellow),
		high:   color.New(color.FgRed, color.Bold),
	}
	if !cfg.Output.Color {
		for _, c := range []*color.Color{r.bold, r.low, r.medium, r.high} {
			c.DisableColor()
		}
	}
	return r, nil
}

// Report writes the text report of one file: a banner, the top methods by
// complexity and the naming violation line.
func (r *FileReporter) Report(file *domain.FileAnalysis) error {
	if file == nil {
		return fmt.Errorf("file analysis cannot be nil")
	}

	name := file.FileName
	if name == "" {
		name = filepath.Base(file.FilePath)
	}
	r.bold.Fprintf(r.writer, "File: %s\n", name)

	table := tablewriter.NewTable(r.writer,
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignLeft},
				Formatting: tw.CellFormatting{
					AutoFormat: tw.Off,
				},
			},
			Row: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.Border{
				Left:   tw.Off,
				Right:  tw.Off,
				Top:    tw.Off,
				Bottom: tw.Off,
			},
		}),
	)
	table.Header([]string{HeaderMethodName, HeaderComplexity})
	for _, m := range file.TopMethods(r.config.Output.Top) {
		table.Append([]string{m.Name, r.colorize(m.RiskLevel, strconv.Itoa(m.Complexity))})
	}
	table.Render()

	fmt.Fprintln(r.writer, FormatNamingLine(file))
	fmt.Fprintln(r.writer)
	return nil
}

// ReportAll writes a whole run in the configured format
func (r *FileReporter) ReportAll(response *domain.AnalyzeResponse) error {
	if response == nil {
		return fmt.Errorf("response cannot be nil")
	}

	switch r.config.Output.Format {
	case constants.OutputFormatJSON:
		return r.writeJSON(response)
	case constants.OutputFormatYAML:
		return r.writeYAML(response)
	case constants.OutputFormatCSV:
		return r.writeCSV(response)
	case constants.OutputFormatText, "":
		return r.writeText(response)
	default:
		return domain.NewUnsupportedFormatError(r.config.Output.Format)
	}
}

func (r *FileReporter) writeText(response *domain.AnalyzeResponse) error {
	if response.Directory != "" {
		r.bold.Fprintf(r.writer, "DIRECTORY: %s\n\n", response.Directory)
	}
	for i := range response.Files {
		if err := r.Report(&response.Files[i]); err != nil {
			return err
		}
	}
	if len(response.Errors) > 0 {
		r.high.Fprintln(r.writer, "Errors:")
		for _, e := range response.Errors {
			fmt.Fprintf(r.writer, "  %s\n", e)
		}
		fmt.Fprintln(r.writer)
	}
	r.writeSummary(response.Summary)
	return nil
}

func (r *FileReporter) writeSummary(s domain.AnalyzeSummary) {
	r.bold.Fprintln(r.writer, "Summary")
	fmt.Fprintf(r.writer, "  Files analyzed: %s\n", humanize.Comma(int64(s.FilesAnalyzed)))
	if s.FilesFailed > 0 {
		fmt.Fprintf(r.writer, "  Files failed:   %s\n", humanize.Comma(int64(s.FilesFailed)))
	}
	fmt.Fprintf(r.writer, "  Lines:          %s\n", humanize.Comma(int64(s.TotalLines)))
	fmt.Fprintf(r.writer, "  Methods:        %s\n", humanize.Comma(int64(s.TotalMethods)))
	if s.TotalMethods > 0 {
		fmt.Fprintf(r.writer, "  Not CamelCase:  %s (%.1f%%)\n",
			humanize.Comma(int64(s.NonCamelCaseMethods)), s.NamingViolationPercentage)
		fmt.Fprintf(r.writer, "  Avg complexity: %.2f\n", s.AverageComplexity)
		fmt.Fprintf(r.writer, "  Max complexity: %d (%s)\n", s.MaxComplexity, s.MaxComplexityMethod)
	}
}

func (r *FileReporter) writeJSON(response *domain.AnalyzeResponse) error {
	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(response); err != nil {
		return domain.NewOutputError("failed to encode JSON", err)
	}
	return nil
}

func (r *FileReporter) writeYAML(response *domain.AnalyzeResponse) error {
	encoder := yaml.NewEncoder(r.writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(response); err != nil {
		return domain.NewOutputError("failed to encode YAML", err)
	}
	if err := encoder.Close(); err != nil {
		return domain.NewOutputError("failed to encode YAML", err)
	}
	return nil
}

func (r *FileReporter) writeCSV(response *domain.AnalyzeResponse) error {
	w := csv.NewWriter(r.writer)
	if err := w.Write([]string{"File", "Method", "Line", "Complexity", "Risk", "CamelCase"}); err != nil {
		return domain.NewOutputError("failed to write CSV header", err)
	}
	for _, file := range response.Files {
		for _, m := range file.Methods {
			record := []string{
				file.FilePath,
				m.Name,
				strconv.Itoa(m.Line),
				strconv.Itoa(m.Complexity),
				m.RiskLevel,
				strconv.FormatBool(m.CamelCase),
			}
			if err := w.Write(record); err != nil {
				return domain.NewOutputError("failed to write CSV record", err)
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return domain.NewOutputError("failed to flush CSV", err)
	}
	return nil
}

// colorize paints a value by risk level
func (r *FileReporter) colorize(risk, value string) string {
	switch risk {
	case "high":
		return r.high.Sprint(value)
	case "medium":
		return r.medium.Sprint(value)
	case "low":
		return r.low.Sprint(value)
	default:
		return value
	}
}

// FormatNamingLine returns the naming violation line of a file
func FormatNamingLine(file *domain.FileAnalysis) string {
	if !file.HasMethods() {
		return constants.NamingViolationLabel + "n/a (no methods detected)"
	}
	return fmt.Sprintf("%s%.1f%%", constants.NamingViolationLabel, file.NamingViolationPercentage)
}

// FormatBrief returns a one-line summary of a run
func FormatBrief(response *domain.AnalyzeResponse) string {
	if response == nil || response.Summary.FilesAnalyzed == 0 {
		return "No files analyzed"
	}
	s := response.Summary
	parts := []string{
		fmt.Sprintf("%s files analyzed", humanize.Comma(int64(s.FilesAnalyzed))),
		fmt.Sprintf("%s methods", humanize.Comma(int64(s.TotalMethods))),
		fmt.Sprintf("Max: %d", s.MaxComplexity),
		fmt.Sprintf("Not CamelCase: %.1f%%", s.NamingViolationPercentage),
	}
	if s.FilesFailed > 0 {
		parts = append(parts, fmt.Sprintf("Failed: %d", s.FilesFailed))
	}
	return strings.Join(parts, ", ")
}
