package spec

type StdoutSinkSpec struct {
	MaxRows       int `yaml:"max_rows"`
	ValueMaxBytes int `yaml:"value_max_bytes"`
}

type CSVSinkSpec struct {
	Path string `yaml:"path"`
}

type KafkaSinkSpec struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
	Acks    int16    `yaml:"required_acks"` // 0,1,-1
}

type sinkConfigs struct {
	Stdout StdoutSinkSpec `yaml:"stdout"`
	CSV    CSVSinkSpec    `yaml:"csv"`
	Kafka  KafkaSinkSpec  `yaml:"kafka"`
}

type File struct {
	SchemaVersion string `yaml:"schema_version"`

	// Metadata is the path to the column classification document,
	// resolved relative to the pipeline file.
	Metadata string `yaml:"metadata"`

	Source struct {
		Kind   string `yaml:"kind"`
		Driver string `yaml:"driver"`
		Config string `yaml:"config"`
	} `yaml:"source"`

	// Ordered list of formatter stages applied during convert; reverse
	// conversion walks the same list backwards.
	Formatters []string `yaml:"formatters"`

	Sinks       []string    `yaml:"sinks"`
	SinkConfigs sinkConfigs `yaml:"sink_configs"`
}
