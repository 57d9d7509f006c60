package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DefaultBaseURL    = "https://jay3779.github.io/decoder.html"
	DefaultOutputPath = "/tmp/test_url.txt"
	DefaultEncoding   = "std"
	DefaultLogLevel   = "warn"
)

// Config holds the generator settings. Zero-argument runs use the defaults.
type Config struct {
	BaseURL    string `json:"base_url" yaml:"base_url" env:"DECODER_BASE_URL"`
	OutputPath string `json:"output_path" yaml:"output_path" env:"OUTPUT_PATH"`
	InputPath  string `json:"input_path" yaml:"input_path" env:"INPUT_PATH"`
	Title      string `json:"title" yaml:"title" env:"POST_TITLE"`
	Encoding   string `json:"encoding" yaml:"encoding" env:"PAYLOAD_ENCODING"`
	Minify     bool   `json:"minify" yaml:"minify" env:"MINIFY_HTML"`
	ReportPath string `json:"report_path" yaml:"report_path" env:"REPORT_PATH"`
	LogLevel   string `json:"log_level" yaml:"log_level" env:"LOG_LEVEL"`
}

// NewConfig builds the configuration from, in increasing priority:
// defaults, the config file (-c or CONFIG), command-line flags, environment.
func NewConfig() (*Config, error) {
	cfg := defaultConfig()
	flags := *cfg

	var configPath string
	flag.StringVar(&configPath, "c", "", "Path to a JSON or YAML config file")
	flag.StringVar(&flags.BaseURL, "b", cfg.BaseURL, "Decoder page address (e.g. https://example.com/decoder.html)")
	flag.StringVar(&flags.OutputPath, "o", cfg.OutputPath, "File the generated URL is written to")
	flag.StringVar(&flags.InputPath, "i", cfg.InputPath, "Document to encode instead of the built-in test post (- for stdin)")
	flag.StringVar(&flags.Title, "t", cfg.Title, "Post title (default: taken from the document)")
	flag.StringVar(&flags.Encoding, "e", cfg.Encoding, "Payload encoding: std or url")
	flag.BoolVar(&flags.Minify, "m", cfg.Minify, "Minify HTML before compressing")
	flag.StringVar(&flags.ReportPath, "r", cfg.ReportPath, "Also write a JSON report to this file")
	flag.StringVar(&flags.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")

	flag.Parse()

	if envConfig := os.Getenv("CONFIG"); envConfig != "" {
		configPath = envConfig
	}

	if configPath != "" {
		if err := cleanenv.ReadConfig(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	flag.Visit(func(f *flag.Flag) {
		applyFlag(cfg, &flags, f.Name)
	})

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		BaseURL:    DefaultBaseURL,
		OutputPath: DefaultOutputPath,
		Encoding:   DefaultEncoding,
		LogLevel:   DefaultLogLevel,
	}
}

func applyFlag(cfg, flags *Config, name string) {
	switch name {
	case "b":
		cfg.BaseURL = flags.BaseURL
	case "o":
		cfg.OutputPath = flags.OutputPath
	case "i":
		cfg.InputPath = flags.InputPath
	case "t":
		cfg.Title = flags.Title
	case "e":
		cfg.Encoding = flags.Encoding
	case "m":
		cfg.Minify = flags.Minify
	case "r":
		cfg.ReportPath = flags.ReportPath
	case "log-level":
		cfg.LogLevel = flags.LogLevel
	}
}
