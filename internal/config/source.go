package config

import (
	ccfg "tabprep/source/csvfile"
	kcfg "tabprep/source/kafka"
)

// LoadCSVConfig and LoadKafkaConfig delegate to the source loaders while
// centralizing loader entrypoints under internal/config.
func LoadCSVConfig(path string) (ccfg.Config, error) {
	return ccfg.LoadConfig(path)
}

func LoadKafkaConfig(path string) (kcfg.Config, error) {
	return kcfg.LoadConfig(path)
}
