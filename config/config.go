package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	yaml "gopkg.in/yaml.v3"
)

type Log struct {
	Level      string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"maxSizeMB"`
	MaxBackups int    `yaml:"maxBackups"`
}

type Config struct {
	// Source is the path of the tabular file to scan for URLs.
	Source string `yaml:"source" validate:"required"`
	// Table selects the sheet / table within the source, where the format
	// supports more than one.
	Table           string `yaml:"table"`
	Concurrency     int    `yaml:"concurrency" validate:"min=1,max=256"`
	TimeoutSeconds  int    `yaml:"timeoutSeconds" validate:"min=1"`
	IntervalMinutes int    `yaml:"intervalMinutes" validate:"min=1"`
	Agent           string `yaml:"agent"`
	RespectRobots   bool   `yaml:"respectRobots"`
	// Addr is where the metrics / status endpoint listens, empty disables it.
	Addr   string `yaml:"addr"`
	Reveal bool   `yaml:"reveal"`
	Log    Log    `yaml:"log"`
}

func Default() *Config {
	return &Config{
		Concurrency:     16,
		TimeoutSeconds:  10,
		IntervalMinutes: 60,
		Agent:           "linkprobe",
		Reveal:          true,
		Log: Log{
			Level:      "info",
			MaxSizeMB:  20,
			MaxBackups: 3,
		},
	}
}

func Get(filename string) (conf *Config, err error) {
	conf = Default()
	yamlBytes, errRead := os.ReadFile(filename)
	if errRead != nil {
		err = errRead
		return
	}
	errUnmarshal := yaml.Unmarshal(yamlBytes, conf)
	if errUnmarshal != nil {
		err = errUnmarshal
		return
	}
	errValidate := validator.New().Struct(conf)
	if errValidate != nil {
		err = errValidate
		return
	}
	return
}
