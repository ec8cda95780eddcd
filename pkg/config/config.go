/*
Package config manages TOML config for jumble.

Values are layered: built-in defaults, then the TOML file, then JUMBLE_*
environment variables. Command line flags are applied last by the caller.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bastiangx/jumble/internal/utils"
	"github.com/bastiangx/jumble/pkg/solver"
	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultDictPath is the word list looked up when none is configured.
const DefaultDictPath = "corncob_lowercase.txt"

// Config holds the entire config structure
type Config struct {
	Solver SolverConfig `toml:"solver"`
	Dict   DictConfig   `toml:"dict"`
	CLI    CliConfig    `toml:"cli"`
}

// SolverConfig controls strategy selection.
type SolverConfig struct {
	Threshold int    `toml:"threshold" env:"JUMBLE_THRESHOLD" validate:"gte=0"`
	Strategy  string `toml:"strategy"  env:"JUMBLE_STRATEGY"  validate:"oneof=auto permutation perm signature sig"`
	Prune     bool   `toml:"prune"     env:"JUMBLE_PRUNE"`
}

// DictConfig holds word list options.
type DictConfig struct {
	Path string `toml:"path" env:"JUMBLE_DICT" validate:"required"`
}

// CliConfig holds cli output options.
type CliConfig struct {
	Limit int  `toml:"limit" env:"JUMBLE_LIMIT" validate:"gte=0"`
	Color bool `toml:"color" env:"JUMBLE_COLOR"`
}

var validate = validator.New()

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	opts := solver.DefaultOptions()
	return &Config{
		Solver: SolverConfig{
			Threshold: opts.Threshold,
			Strategy:  opts.Strategy.String(),
			Prune:     opts.Prune,
		},
		Dict: DictConfig{
			Path: DefaultDictPath,
		},
		CLI: CliConfig{
			Limit: 0,
			Color: true,
		},
	}
}

// Validate checks every field against its constraints. The strategy name is
// lowercased first, matching solver.ParseStrategy.
func (c *Config) Validate() error {
	c.Solver.Strategy = strings.ToLower(strings.TrimSpace(c.Solver.Strategy))
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SolverOptions converts the solver section into solver.Options.
func (c *Config) SolverOptions() (solver.Options, error) {
	strategy, err := solver.ParseStrategy(c.Solver.Strategy)
	if err != nil {
		return solver.Options{}, err
	}
	return solver.Options{
		Threshold: c.Solver.Threshold,
		Strategy:  strategy,
		Prune:     c.Solver.Prune,
	}, nil
}

// ApplyEnv overrides fields whose JUMBLE_* variable is set.
func (c *Config) ApplyEnv() error {
	if err := cleanenv.ReadEnv(c); err != nil {
		return fmt.Errorf("failed to read environment overrides: %w", err)
	}
	return nil
}

// GetDefaultConfigPath returns [UserConfigDir]/jumble/config.toml, or a temp
// location when that directory is not writable.
func GetDefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	pr := utils.NewPathResolverAt("", "", utils.ConfigDirFor(homeDir, "jumble"))
	return pr.GetConfigPath("config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from -config flag
// 2. Default path: [UserConfigDir]/jumble/config.toml
// 3. Builtin defaults
//
// Environment overrides are applied on top and the result is validated.
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	config, path := loadFile(customConfigPath)
	if err := config.ApplyEnv(); err != nil {
		return nil, path, err
	}
	if err := config.Validate(); err != nil {
		return nil, path, err
	}
	return config, path, nil
}

func loadFile(customConfigPath string) (*Config, string) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), ""
	}
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), ""
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. Keys missing from the file keep their
// defaults; a file that fails strict decoding is salvaged section by section.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	unknown, err := utils.DecodeTOMLFile(configPath, config)
	if err != nil {
		return tryPartialParse(configPath)
	}
	for _, key := range unknown {
		log.Warnf("Ignoring unknown config key %s in %s", key, configPath)
	}
	return config, nil
}

// tryPartialParse keeps every well-typed key of a damaged TOML file
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	sections, err := utils.DecodeTOMLSections(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := sections["solver"]; ok {
		extractSolverConfig(section, &config.Solver)
	}
	if section, ok := sections["dict"]; ok {
		extractDictConfig(section, &config.Dict)
	}
	if section, ok := sections["cli"]; ok {
		extractCliConfig(section, &config.CLI)
	}
	return config, nil
}

func extractSolverConfig(section utils.Section, s *SolverConfig) {
	if val, ok := section.Int("threshold"); ok {
		s.Threshold = val
	}
	if val, ok := section.String("strategy"); ok {
		s.Strategy = val
	}
	if val, ok := section.Bool("prune"); ok {
		s.Prune = val
	}
}

func extractDictConfig(section utils.Section, dict *DictConfig) {
	if val, ok := section.String("path"); ok {
		dict.Path = val
	}
}

func extractCliConfig(section utils.Section, cli *CliConfig) {
	if val, ok := section.Int("limit"); ok {
		cli.Limit = val
	}
	if val, ok := section.Bool("color"); ok {
		cli.Color = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
