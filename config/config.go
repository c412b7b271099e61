// Package config provides the configuration schema and loader for phrasematch.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Config is the root configuration structure.
type Config struct {
	LogLevel  LogLevel        `yaml:"log_level"`
	Tokenizer TokenizerConfig `yaml:"tokenizer"`
	Segment   SegmentConfig   `yaml:"segment"`
	Match     MatchConfig     `yaml:"match"`
	Output    OutputConfig    `yaml:"output"`
}

// TokenizerConfig selects the kagome dictionary and analysis mode.
type TokenizerConfig struct {
	Dict     string `yaml:"dict"`
	UserDict string `yaml:"user_dict"`
	Mode     string `yaml:"mode"`
}

type SegmentConfig struct {
	SuppressDependentBreaks bool `yaml:"suppress_dependent_breaks"`
}

// MatchConfig configures the reference word list and the matcher.
type MatchConfig struct {
	Wordlist string `yaml:"wordlist"`

	// SkipSilent drops word-list entries with an empty pronunciation.
	SkipSilent bool `yaml:"skip_silent"`

	// Concurrency is the number of phrases matched in parallel.
	Concurrency int `yaml:"concurrency"`
}

type OutputConfig struct {
	// Kana is the script pronunciations are printed in: katakana or hiragana.
	Kana string `yaml:"kana"`

	// ReportDir receives one JSON report per sentence. Empty disables reports.
	ReportDir string `yaml:"report_dir"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel:  LogInfo,
		Tokenizer: TokenizerConfig{Dict: "ipa", Mode: "normal"},
		Segment:   SegmentConfig{SuppressDependentBreaks: true},
		Match:     MatchConfig{Wordlist: "sample_wordlist.csv", Concurrency: 1},
		Output:    OutputConfig{Kana: "katakana"},
	}
}

// Load reads the YAML configuration file at path and returns a validated [Config].
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes YAML from r over [Default] and validates the result.
// Unknown keys are rejected.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.LogLevel != "" && !cfg.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("log_level %q is invalid; valid values: debug, info, warn, error", cfg.LogLevel))
	}
	switch cfg.Tokenizer.Dict {
	case "", "ipa", "uni":
	default:
		errs = append(errs, fmt.Errorf("tokenizer.dict %q is invalid; valid values: ipa, uni", cfg.Tokenizer.Dict))
	}
	switch cfg.Tokenizer.Mode {
	case "", "normal", "search", "extended":
	default:
		errs = append(errs, fmt.Errorf("tokenizer.mode %q is invalid; valid values: normal, search, extended", cfg.Tokenizer.Mode))
	}
	if cfg.Match.Wordlist == "" {
		errs = append(errs, errors.New("match.wordlist is required"))
	}
	if cfg.Match.Concurrency < 0 {
		errs = append(errs, fmt.Errorf("match.concurrency %d must not be negative", cfg.Match.Concurrency))
	}
	switch cfg.Output.Kana {
	case "", "katakana", "hiragana":
	default:
		errs = append(errs, fmt.Errorf("output.kana %q is invalid; valid values: katakana, hiragana", cfg.Output.Kana))
	}

	return errors.Join(errs...)
}
