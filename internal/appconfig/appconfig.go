package appconfig

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"text/template"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"
)

const (
	SourceFile = "file"
	SourceS3   = "s3"
)

// Config holds all configuration details
type Config struct {
	Host     string       `yaml:"host"`
	Title    string       `yaml:"title"`
	BasePath string       `yaml:"basePath"`
	DocsPath string       `yaml:"docsPath"`
	Data     DataConfig   `yaml:"data"`
	Views    ViewsConfig  `yaml:"views"`
	Static   StaticConfig `yaml:"static"`
}

// DataConfig defines where the users resource is read from
type DataConfig struct {
	Source string   `yaml:"source"`
	Path   string   `yaml:"path"`
	S3     S3Config `yaml:"s3"`
}

type S3Config struct {
	Bucket string `yaml:"bucket"`
	Key    string `yaml:"key"`
	Region string `yaml:"region"`
}

// ViewsConfig points at a directory of page templates. Empty means the
// templates compiled into the binary.
type ViewsConfig struct {
	Dir string `yaml:"dir"`
}

type StaticConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// DefaultConfig returns the configuration used when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		Title:    "Users",
		BasePath: "/api",
		DocsPath: "/api/docs",
		Data: DataConfig{
			Source: SourceFile,
			Path:   "data.json",
		},
		Static: StaticConfig{
			Dir:    "public",
			Prefix: "/static/",
		},
	}
}

// LoadConfig loads and parses the configuration from a given file path.
// Values missing from the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		err := errors.New("config file path is required")
		log.Error().Err(err).Msg("config file not provided")
		return nil, err
	}

	// Parse the template file
	tmpl, err := template.ParseFiles(path)
	if err != nil {
		log.Error().Err(err).Msg("error parsing config file template")
		return nil, err
	}

	// Create a map of environment variables
	envVars := loadEnvVars()

	// Execute the template with environment variables
	var buf bytes.Buffer
	err = tmpl.Execute(&buf, envVars)
	if err != nil {
		log.Error().Err(err).Msg("error executing config file template")
		return nil, err
	}

	// Load and unmarshal the YAML
	config := DefaultConfig()
	if err := yaml.Unmarshal(buf.Bytes(), config); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal config YAML")
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that the selected data source is fully described.
func (c *Config) Validate() error {
	switch c.Data.Source {
	case SourceFile:
		if c.Data.Path == "" {
			return errors.New("data.path is required for the file source")
		}
	case SourceS3:
		if c.Data.S3.Bucket == "" || c.Data.S3.Key == "" {
			return errors.New("data.s3.bucket and data.s3.key are required for the s3 source")
		}
	default:
		return errors.New("data.source must be one of: file, s3")
	}
	return nil
}

// loadEnvVars loads environment variables into a map
func loadEnvVars() map[string]string {
	envVars := make(map[string]string)
	for _, env := range os.Environ() {
		kv := strings.SplitN(env, "=", 2)
		if len(kv) == 2 {
			envVars[kv[0]] = kv[1]
		}
	}
	return envVars
}
