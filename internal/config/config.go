package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bennysutils/bennys-utils/internal/logging"
	"github.com/bennysutils/bennys-utils/internal/output"
	"github.com/bennysutils/bennys-utils/pkg/money"
	"github.com/bennysutils/bennys-utils/pkg/prompt"
)

// Configuration holds the CLI defaults that flags can override.
type Configuration struct {
	Money   MoneyDefaults   `yaml:"money"`
	Prompt  PromptDefaults  `yaml:"prompt"`
	Output  OutputSettings  `yaml:"output"`
	Logging LoggingSettings `yaml:"logging"`
}

// MoneyDefaults configures currency rendering.
type MoneyDefaults struct {
	Currency  string `yaml:"currency"`
	Shortform bool   `yaml:"shortform"`
}

// PromptDefaults configures the input prompt.
type PromptDefaults struct {
	CaseSensitive bool `yaml:"case_sensitive"`
	MaxAttempts   int  `yaml:"max_attempts"`
	FailOnExhaust bool `yaml:"fail_on_exhaust"`
}

// OutputSettings selects the batch formatter.
type OutputSettings struct {
	Format string `yaml:"format"`
}

// LoggingSettings configures the stderr logger.
type LoggingSettings struct {
	Level string `yaml:"level"`
}

// PromptOptions converts the defaults into prompt options for the given choices.
func (p PromptDefaults) PromptOptions(choices []string) prompt.Options {
	return prompt.Options{
		Choices:       choices,
		CaseSensitive: p.CaseSensitive,
		MaxAttempts:   p.MaxAttempts,
		FailOnExhaust: p.FailOnExhaust,
	}
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Configuration {
	return &Configuration{
		Money:   MoneyDefaults{Currency: money.DefaultCurrency},
		Output:  OutputSettings{Format: "console"},
		Logging: LoggingSettings{Level: "info"},
	}
}

// InputParser handles parsing of configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file. Keys missing from the
// file keep their DefaultConfig values.
func (ip *InputParser) LoadFromFile(filename string) (*Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes YAML bytes over the defaults and validates the result.
func (ip *InputParser) Parse(data []byte) (*Configuration, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *Configuration) error {
	if config.Prompt.MaxAttempts < 0 {
		return fmt.Errorf("prompt max_attempts cannot be negative")
	}
	if output.GetFormatterByName(config.Output.Format) == nil {
		return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, config.Output.Format)
	}
	if !logging.ValidLevel(config.Logging.Level) {
		return fmt.Errorf("unknown log level %q", config.Logging.Level)
	}
	return nil
}
