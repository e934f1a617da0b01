package engine

import (
	"context"

	"tabprep/internal/pipeline"
)

type Config struct {
	PipelineYml string
	Mode        string // pipeline.ModeConvert or pipeline.ModeReverse
	MetricsPort int    // 0 disables the /metrics endpoint
}

type Engine struct {
	runner *pipeline.Runner
	mode   string
}

// Run executes one batch and releases source/sink resources.
func (e *Engine) Run(ctx context.Context) error {
	defer func() { _ = e.runner.Close() }()
	return e.runner.Execute(ctx, e.mode)
}
