package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Output struct {
		Dir          string `yaml:"dir"`           // directory for per-section files
		EpisodesFile string `yaml:"episodes_file"` // path of the episodes JSON export
	} `yaml:"output"`
	Episode struct {
		NamePrefix string `yaml:"name_prefix"`
		SourceDesc string `yaml:"source_desc"`
	} `yaml:"episode"`
}

// LoadConfig reads config.yaml and applies environment overrides. A missing
// config file is not an error; defaults apply.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := defaults()

	// 2. Load YAML config
	file, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// 3. Override with Environment Variables if present
	if dir := os.Getenv("MDSPLIT_OUTPUT_DIR"); dir != "" {
		cfg.Output.Dir = dir
	}
	if desc := os.Getenv("MDSPLIT_SOURCE_DESC"); desc != "" {
		cfg.Episode.SourceDesc = desc
	}

	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Output.Dir = "sections"
	cfg.Output.EpisodesFile = "episodes.json"
	cfg.Episode.NamePrefix = "Document: "
	cfg.Episode.SourceDesc = "Section from file: %s"
	return cfg
}
