package service

import (
	"io"
	"os"
	"sync"

	"github.com/schollz/progressbar/v3"

	"github.com/ludo-technologies/jreader/domain"
)

// ProgressManagerImpl renders one progress bar per task on stderr
type ProgressManagerImpl struct {
	writer io.Writer
	mu     sync.Mutex
	tasks  []*progressbar.ProgressBar
}

// NewProgressManager returns a bar-rendering manager when enabled and stderr
// is an interactive terminal, and a no-op manager otherwise
func NewProgressManager(enabled bool) domain.ProgressManager {
	if enabled && IsInteractiveEnvironment() {
		return NewProgressManagerWithWriter(os.Stderr)
	}
	return &NoOpProgressManager{}
}

// NewProgressManagerWithWriter creates a manager rendering to w
func NewProgressManagerWithWriter(w io.Writer) *ProgressManagerImpl {
	return &ProgressManagerImpl{
		writer: w,
		tasks:  make([]*progressbar.ProgressBar, 0),
	}
}

// StartTask creates a new progress task with a description and total count
func (pm *ProgressManagerImpl) StartTask(description string, total int) domain.TaskProgress {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(pm.writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(18),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionClearOnFinish(),
	)
	pm.mu.Lock()
	pm.tasks = append(pm.tasks, bar)
	pm.mu.Unlock()
	return &TaskProgressImpl{bar: bar}
}

// IsInteractive returns true if progress bars should be shown
func (pm *ProgressManagerImpl) IsInteractive() bool {
	return true
}

// Close cleans up all tasks
func (pm *ProgressManagerImpl) Close() {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	for _, bar := range pm.tasks {
		_ = bar.Finish()
	}
	pm.tasks = nil
}

// TaskProgressImpl implements TaskProgress with a progressbar. Increment
// and Describe may be called from the executor's goroutines.
type TaskProgressImpl struct {
	mu  sync.Mutex
	bar *progressbar.ProgressBar
}

// Increment adds n to the current progress
func (tp *TaskProgressImpl) Increment(n int) {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	_ = tp.bar.Add(n)
}

// Describe shows the file currently being analyzed
func (tp *TaskProgressImpl) Describe(description string) {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	tp.bar.Describe(description)
}

// Complete marks the task as finished
func (tp *TaskProgressImpl) Complete() {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	_ = tp.bar.Finish()
}

// NoOpProgressManager implements ProgressManager with no-op methods
type NoOpProgressManager struct{}

// StartTask returns a no-op task progress
func (pm *NoOpProgressManager) StartTask(_ string, _ int) domain.TaskProgress {
	return &NoOpTaskProgress{}
}

// IsInteractive returns false for no-op manager
func (pm *NoOpProgressManager) IsInteractive() bool {
	return false
}

// Close is a no-op
func (pm *NoOpProgressManager) Close() {}

// NoOpTaskProgress implements TaskProgress with no-op methods
type NoOpTaskProgress struct{}

// Increment is a no-op
func (tp *NoOpTaskProgress) Increment(_ int) {}

// Describe is a no-op
func (tp *NoOpTaskProgress) Describe(_ string) {}

// Complete is a no-op
func (tp *NoOpTaskProgress) Complete() {}
