package domain

import "context"

// ExecutableTask is a unit of work run by a ParallelExecutor
type ExecutableTask interface {
	Name() string
	Execute(ctx context.Context) (interface{}, error)
	IsEnabled() bool
}

// ParallelExecutor runs tasks concurrently
type ParallelExecutor interface {
	Execute(ctx context.Context, tasks []ExecutableTask) error
}
