// Package config loads lemmabase settings from defaults, an optional YAML
// file and the environment, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/happyhackingspace/lemmabase/internal/report"
	"github.com/happyhackingspace/lemmabase/internal/textutil"
)

// DefaultDataURL points at the English Web Treebank of Universal Dependencies.
const DefaultDataURL = "https://github.com/UniversalDependencies/UD_English-EWT/archive/refs/heads/master.tar.gz"

type CorpusConfig struct {
	FormField     int    `yaml:"form_field"`
	LemmaField    int    `yaml:"lemma_field"`
	SkipMalformed bool   `yaml:"skip_malformed"`
	Normalize     string `yaml:"normalize"`
	Lowercase     bool   `yaml:"lowercase"`
}

type ReportConfig struct {
	Output string `yaml:"output"`
	Format string `yaml:"format"`
}

type DataConfig struct {
	URL    string `yaml:"url"`
	Folder string `yaml:"folder"`
}

type Config struct {
	LogLevel string       `yaml:"log_level"`
	Corpus   CorpusConfig `yaml:"corpus"`
	Report   ReportConfig `yaml:"report"`
	Data     DataConfig   `yaml:"data"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Corpus: CorpusConfig{
			FormField:  1,
			LemmaField: 2,
		},
		Report: ReportConfig{
			Output: "lookup-output.txt",
			Format: string(report.FormatText),
		},
		Data: DataConfig{
			URL:    DefaultDataURL,
			Folder: "data",
		},
	}
}

// Load starts from Default, overlays the YAML file at path (skipped when
// path is empty) and then LEMMABASE_* environment variables. A .env file in
// the working directory is loaded first if present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.LogLevel = getEnv("LEMMABASE_LOG_LEVEL", c.LogLevel)
	c.Corpus.FormField = getEnvInt("LEMMABASE_FORM_FIELD", c.Corpus.FormField)
	c.Corpus.LemmaField = getEnvInt("LEMMABASE_LEMMA_FIELD", c.Corpus.LemmaField)
	c.Corpus.SkipMalformed = getEnvBool("LEMMABASE_SKIP_MALFORMED", c.Corpus.SkipMalformed)
	c.Corpus.Normalize = getEnv("LEMMABASE_NORMALIZE", c.Corpus.Normalize)
	c.Corpus.Lowercase = getEnvBool("LEMMABASE_LOWERCASE", c.Corpus.Lowercase)
	c.Report.Output = getEnv("LEMMABASE_OUTPUT", c.Report.Output)
	c.Report.Format = getEnv("LEMMABASE_FORMAT", c.Report.Format)
	c.Data.URL = getEnv("LEMMABASE_DATA_URL", c.Data.URL)
}

// Validate checks column indices, normalisation form, report format and log level.
func (c *Config) Validate() error {
	if c.Corpus.FormField < 0 || c.Corpus.LemmaField < 0 {
		return fmt.Errorf("corpus fields must be non-negative")
	}
	if c.Corpus.FormField == c.Corpus.LemmaField {
		return fmt.Errorf("form_field and lemma_field must differ")
	}
	if _, _, err := textutil.ParseForm(c.Corpus.Normalize); err != nil {
		return err
	}
	if _, err := report.ParseFormat(c.Report.Format); err != nil {
		return err
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error", "":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
