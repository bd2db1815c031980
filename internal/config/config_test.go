package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bennysutils/bennys-utils/internal/output"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "USD", cfg.Money.Currency)
	assert.False(t, cfg.Money.Shortform)
	assert.Equal(t, 0, cfg.Prompt.MaxAttempts)
	assert.Equal(t, "console", cfg.Output.Format)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NoError(t, NewInputParser().ValidateConfiguration(cfg))
}

func TestLoadFromFile_Success(t *testing.T) {
	testConfig := "money:\n" +
		"  currency: EUR\n" +
		"  shortform: true\n" +
		"prompt:\n" +
		"  case_sensitive: true\n" +
		"  max_attempts: 3\n" +
		"  fail_on_exhaust: true\n" +
		"output:\n" +
		"  format: json\n"

	path := filepath.Join(t.TempDir(), "bennys.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o644))

	config, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "EUR", config.Money.Currency)
	assert.True(t, config.Money.Shortform)
	assert.True(t, config.Prompt.CaseSensitive)
	assert.Equal(t, 3, config.Prompt.MaxAttempts)
	assert.True(t, config.Prompt.FailOnExhaust)
	assert.Equal(t, "json", config.Output.Format)
	// not in the file, so the default survives
	assert.Equal(t, "info", config.Logging.Level)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	config, err := NewInputParser().LoadFromFile("nonexistent_file.yaml")
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := NewInputParser().Parse([]byte("money: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidateConfiguration(t *testing.T) {
	parser := NewInputParser()

	cfg := DefaultConfig()
	cfg.Prompt.MaxAttempts = -2
	assert.ErrorContains(t, parser.ValidateConfiguration(cfg), "max_attempts")

	cfg = DefaultConfig()
	cfg.Output.Format = "pdf"
	assert.ErrorIs(t, parser.ValidateConfiguration(cfg), output.ErrUnsupportedFormat)

	cfg = DefaultConfig()
	cfg.Logging.Level = "loud"
	assert.ErrorContains(t, parser.ValidateConfiguration(cfg), "unknown log level")
}

func TestPromptOptions(t *testing.T) {
	defaults := PromptDefaults{CaseSensitive: true, MaxAttempts: 4, FailOnExhaust: true}
	opts := defaults.PromptOptions([]string{"a", "b"})
	assert.Equal(t, []string{"a", "b"}, opts.Choices)
	assert.True(t, opts.CaseSensitive)
	assert.Equal(t, 4, opts.MaxAttempts)
	assert.True(t, opts.FailOnExhaust)
}
