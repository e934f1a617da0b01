package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"tabprep/internal/engine"
	"tabprep/internal/logging"
	"tabprep/internal/pipeline"
)

func main() {
	var (
		pipelineYml = flag.String("pipeline", "pipeline.yml", "pipeline spec file")
		mode        = flag.String("mode", pipeline.ModeConvert, "convert or reverse")
		metricsPort = flag.Int("metrics-port", 9100, "prometheus port (0 = off)")
	)
	flag.Parse()
	logging.InitFromEnv()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	e, err := engine.Bootstrap(ctx, engine.Config{
		PipelineYml: *pipelineYml,
		Mode:        *mode,
		MetricsPort: *metricsPort,
	})
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	if err := e.Run(ctx); err != nil {
		log.Fatalf("engine: %v", err)
	}
}
