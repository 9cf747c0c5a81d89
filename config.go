package sort_suite

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	cp "github.com/jinzhu/copier"
)

type InputConfig struct {
	Path  string `toml:"path"`
	Limit int    `toml:"limit"`
}

type RunConfig struct {
	Algorithm string `toml:"algorithm"`
	Print     bool   `toml:"print"`
	Verify    bool   `toml:"verify"`
	Format    string `toml:"format"`
}

// ToolConfig is the sortsuite config file.
type ToolConfig struct {
	LogLevel  string          `toml:"log_level"`
	Input     InputConfig     `toml:"input"`
	Run       RunConfig       `toml:"run"`
	Generator GeneratorConfig `toml:"generator"`
	Ledger    LedgerConfig    `toml:"ledger"`
}

func DefaultToolConfig() *ToolConfig {
	return &ToolConfig{
		LogLevel: "info",
		Input: InputConfig{
			Path:  "data.txt",
			Limit: DefaultLimit,
		},
		Run: RunConfig{
			Algorithm: Quick.String(),
			Verify:    true,
			Format:    FormatText,
		},
		Generator: GeneratorConfig{
			Count: 1000,
			Lower: 0,
			Upper: 100000,
		},
		Ledger: LedgerConfig{
			Path:          ".",
			Name:          "sortsuite.db",
			SQLitePragmas: []string{"journal_mode(WAL)", "busy_timeout(5000)"},
		},
	}
}

// LoadToolConfig decodes path on top of the defaults. A missing file is not
// an error when path is empty; an explicitly named file must exist.
func LoadToolConfig(path string) (*ToolConfig, error) {
	config := DefaultToolConfig()
	if path == "" {
		return config, nil
	}

	if _, err := toml.DecodeFile(path, config); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("unable to load sortsuite config %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to unmarshal sortsuite config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects settings no command could run with.
func (c *ToolConfig) Validate() error {
	if c.Run.Algorithm != "" {
		if _, err := ParseAlgorithm(c.Run.Algorithm); err != nil {
			return fmt.Errorf("run.algorithm: %w", err)
		}
	}
	switch c.Run.Format {
	case "", FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("run.format: %w: %q", ErrUnknownFormat, c.Run.Format)
	}
	if c.Input.Limit < 0 {
		return fmt.Errorf("input.limit [%d] must not be negative", c.Input.Limit)
	}
	return nil
}

// Merge copies every non-zero field of override onto c. Booleans can only
// be switched on this way.
func (c *ToolConfig) Merge(override *ToolConfig) error {
	if override == nil {
		return nil
	}
	opt := cp.Option{IgnoreEmpty: true, DeepCopy: true}

	if override.LogLevel != "" {
		c.LogLevel = override.LogLevel
	}
	if err := cp.CopyWithOption(&c.Input, &override.Input, opt); err != nil {
		return fmt.Errorf("failed to merge input config: %w", err)
	}
	if err := cp.CopyWithOption(&c.Run, &override.Run, opt); err != nil {
		return fmt.Errorf("failed to merge run config: %w", err)
	}
	if err := cp.CopyWithOption(&c.Generator, &override.Generator, opt); err != nil {
		return fmt.Errorf("failed to merge generator config: %w", err)
	}
	if err := cp.CopyWithOption(&c.Ledger, &override.Ledger, opt); err != nil {
		return fmt.Errorf("failed to merge ledger config: %w", err)
	}
	return c.Validate()
}

// WriteToolConfig encodes c as TOML at path.
func WriteToolConfig(path string, c *ToolConfig) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(c)
}
