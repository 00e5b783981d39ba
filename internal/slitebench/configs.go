package slitebench

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// benchmarksConfig holds all parameters for each benchmark. The defaults
// can be overridden with a YAML file via --config.
type benchmarksConfig struct {
	Simple benchmarkSimpleConfig `yaml:"simple"`
	Many   benchmarkManyConfig   `yaml:"many"`
	Large  benchmarkLargeConfig  `yaml:"large"`
}

type benchmarkSimpleConfig struct {
	InsertUsers      int `yaml:"insertUsers"`
	InsertGoroutines int `yaml:"insertGoroutines"`
}

type benchmarkManyConfig struct {
	InsertUsers     int `yaml:"insertUsers"`
	QueryTimes      int `yaml:"queryTimes"`
	QueryGoroutines int `yaml:"queryGoroutines"`
}

type benchmarkLargeConfig struct {
	InsertUsers      int `yaml:"insertUsers"`
	PayloadBytes     int `yaml:"payloadBytes"`
	InsertGoroutines int `yaml:"insertGoroutines"`
}

func defaultConfig() benchmarksConfig {
	return benchmarksConfig{
		Simple: benchmarkSimpleConfig{
			InsertUsers:      100_000,
			InsertGoroutines: 10,
		},
		Many: benchmarkManyConfig{
			InsertUsers:     1_000,
			QueryTimes:      1_000,
			QueryGoroutines: 10,
		},
		Large: benchmarkLargeConfig{
			InsertUsers:      10_000,
			PayloadBytes:     10_000,
			InsertGoroutines: 10,
		},
	}
}

// loadConfig returns the default parameters, overridden by the YAML file
// at path when one is given.
func loadConfig(path string) (benchmarksConfig, error) {
	conf := defaultConfig()
	if path == "" {
		return conf, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return conf, err
	}
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return conf, fmt.Errorf("error parsing %s: %w", path, err)
	}

	return conf, nil
}
