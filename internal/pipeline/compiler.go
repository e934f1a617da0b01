package pipeline

import (
	"fmt"

	"tabprep/internal/config"
	"tabprep/internal/formatter"
	"tabprep/internal/metadata"
	"tabprep/sink"
	sinkcsv "tabprep/sink/csvfile"
	sinkkafka "tabprep/sink/kafka"
	sinkstdout "tabprep/sink/stdout"
	"tabprep/source"

	// Formatters self-register; source drivers register via the config
	// package's loader imports.
	_ "tabprep/internal/formatter/datetime"
)

func Compile(path string) (*Runner, error) {
	r := NewRunner()
	if err := LoadYAML(path, r); err != nil {
		return nil, err
	}
	return r, nil
}

func LoadYAML(path string, r *Runner) error {
	cfg, err := config.LoadPipelineSpec(path)
	if err != nil {
		return err
	}

	if cfg.Metadata == "" {
		return fmt.Errorf("pipeline: metadata path is required")
	}
	meta, err := metadata.Load(cfg.Metadata)
	if err != nil {
		return err
	}
	r.SetMetadata(meta)

	src, err := source.NewAdapter(cfg.Source.Driver)
	if err != nil {
		return err
	}
	switch cfg.Source.Kind {
	case "csv":
		cc, err := config.LoadCSVConfig(cfg.Source.Config)
		if err != nil {
			return err
		}
		if err := src.Configure(cc); err != nil {
			return err
		}
	case "kafka":
		kc, err := config.LoadKafkaConfig(cfg.Source.Config)
		if err != nil {
			return err
		}
		if err := src.Configure(kc); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported source %q", cfg.Source.Kind)
	}
	r.SetSource(src)

	for _, name := range cfg.Formatters {
		f, err := formatter.New(name)
		if err != nil {
			return err
		}
		r.AddFormatter(name, f)
	}

	for _, name := range cfg.Sinks {
		sDrv, err := sink.NewAdapter(name)
		if err != nil {
			return err
		}

		switch name {
		case "stdout":
			err = sDrv.Configure(sinkstdout.Config{
				MaxRows:       cfg.SinkConfigs.Stdout.MaxRows,
				ValueMaxBytes: cfg.SinkConfigs.Stdout.ValueMaxBytes,
			})
		case "csv":
			err = sDrv.Configure(sinkcsv.Config{Path: cfg.SinkConfigs.CSV.Path})
		case "kafka":
			err = sDrv.Configure(sinkkafka.Config{
				Brokers: cfg.SinkConfigs.Kafka.Brokers,
				Topic:   cfg.SinkConfigs.Kafka.Topic,
				Acks:    cfg.SinkConfigs.Kafka.Acks,
			})
		default:
			err = fmt.Errorf("no config block for sink %q", name)
		}
		if err != nil {
			return err
		}
		r.AddSink(sDrv)
	}
	return nil
}
