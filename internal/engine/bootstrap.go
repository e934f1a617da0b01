package engine

import (
	"context"
	"fmt"

	"tabprep/internal/pipeline"
	"tabprep/internal/telemetry"
)

func Bootstrap(_ context.Context, cfg Config) (*Engine, error) {
	// 1. pipeline runner
	runner, err := pipeline.Compile(cfg.PipelineYml)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	// 2. metrics
	if cfg.MetricsPort > 0 {
		telemetry.Expose(cfg.MetricsPort)
	}

	return &Engine{
		runner: runner,
		mode:   cfg.Mode,
	}, nil
}
