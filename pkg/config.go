package findclone

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-ini/ini"
	"github.com/kelseyhightower/envconfig"
)

// Config represents the findclone configuration file
type Config struct {
	configPath string
	ini        *ini.File
}

// HashConfig represents hash algorithm configuration
type HashConfig struct {
	Default string // Default hash algorithm
}

// OutputConfig represents output format configuration
type OutputConfig struct {
	Format string // human, json or fdupes
}

// VerboseConfig represents verbosity configuration
type VerboseConfig struct {
	Level int    // 0=quiet, 1=basic, 2=detailed, 3=trace
	Debug string // comma-separated debug flags
}

// PerformanceConfig represents performance-related configuration
type PerformanceConfig struct {
	HashWorkers int    // concurrent hash workers, 0 means one per CPU (default: 1)
	HashBuffer  string // read size for hashing and comparison (default: "8K")
}

// ErrorConfig represents how hashing and comparison failures are handled
type ErrorConfig struct {
	Policy string // abort or skip
}

// IgnoreConfig represents paths excluded from the scan
type IgnoreConfig struct {
	Patterns []string // regular expressions matched against root-relative paths
	File     string   // optional file with one pattern per line
}

// AllConfig represents all configuration options
type AllConfig struct {
	Hash        *HashConfig
	Output      *OutputConfig
	Verbose     *VerboseConfig
	Performance *PerformanceConfig
	Errors      *ErrorConfig
	Ignore      *IgnoreConfig
}

// Environment holds the FINDCLONE_* variables read at start-up. Field names map directly
// onto variable names, so unprefixed variables such as DEBUG are never consulted.
type Environment struct {
	Config    string   // FINDCLONE_CONFIG: path of the ini file
	Overrides []string // FINDCLONE_OVERRIDES: key:value overrides, comma-separated
	Debug     string   // FINDCLONE_DEBUG: debug flags, take precedence over the file
}

// LoadEnvironment reads the FINDCLONE_* environment variables
func LoadEnvironment() (*Environment, error) {
	var env Environment
	if err := envconfig.Process("findclone", &env); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return &env, nil
}

// LoadConfig loads configuration from configPath. An empty path or a missing file gives
// the defaults; nothing is written to disk.
func LoadConfig(configPath string) (*Config, error) {
	cfg := &Config{configPath: configPath}

	if configPath == "" {
		cfg.ini = ini.Empty()
		return cfg, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		VerboseLog(1, "config file %s not found, using defaults", configPath)
		cfg.ini = ini.Empty()
		return cfg, nil
	}

	iniFile, err := ini.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	cfg.ini = iniFile
	return cfg, nil
}

func (c *Config) value(section, key string) (string, bool) {
	if !c.ini.HasSection(section) {
		return "", false
	}
	s := c.ini.Section(section)
	if !s.HasKey(key) {
		return "", false
	}
	return s.Key(key).String(), true
}

// GetHashConfig returns the hash configuration
func (c *Config) GetHashConfig() *HashConfig {
	hashConfig := &HashConfig{Default: "sha256"}
	if v, ok := c.value("filehash", "default"); ok && v != "" {
		hashConfig.Default = v
	}
	return hashConfig
}

// GetOutputConfig returns the output configuration
func (c *Config) GetOutputConfig() *OutputConfig {
	outputConfig := &OutputConfig{Format: FormatHuman}
	if v, ok := c.value("output", "format"); ok && v != "" {
		outputConfig.Format = v
	}
	return outputConfig
}

// GetVerboseConfig returns the verbose configuration
func (c *Config) GetVerboseConfig() *VerboseConfig {
	verboseConfig := &VerboseConfig{}
	if c.ini.HasSection("verbose") {
		section := c.ini.Section("verbose")
		if section.HasKey("level") {
			if level, err := section.Key("level").Int(); err == nil {
				verboseConfig.Level = level
			}
		}
		if section.HasKey("debug") {
			verboseConfig.Debug = section.Key("debug").String()
		}
	}
	return verboseConfig
}

// GetPerformanceConfig returns the performance configuration
func (c *Config) GetPerformanceConfig() *PerformanceConfig {
	performanceConfig := &PerformanceConfig{
		HashWorkers: 1,
		HashBuffer:  "8K",
	}
	if c.ini.HasSection("performance") {
		section := c.ini.Section("performance")
		if section.HasKey("hash_workers") {
			if workers, err := section.Key("hash_workers").Int(); err == nil {
				performanceConfig.HashWorkers = workers
			}
		}
		if section.HasKey("hash_buffer") {
			if bufferSize := section.Key("hash_buffer").String(); bufferSize != "" {
				performanceConfig.HashBuffer = bufferSize
			}
		}
	}
	return performanceConfig
}

// GetErrorConfig returns the error handling configuration
func (c *Config) GetErrorConfig() *ErrorConfig {
	errorConfig := &ErrorConfig{Policy: PolicyAbort}
	if v, ok := c.value("errors", "policy"); ok && v != "" {
		errorConfig.Policy = strings.ToLower(v)
	}
	return errorConfig
}

// GetIgnoreConfig returns the ignore configuration
func (c *Config) GetIgnoreConfig() *IgnoreConfig {
	ignoreConfig := &IgnoreConfig{}
	if c.ini.HasSection("ignore") {
		section := c.ini.Section("ignore")
		if section.HasKey("patterns") {
			ignoreConfig.Patterns = section.Key("patterns").Strings(",")
		}
		if section.HasKey("file") {
			ignoreConfig.File = section.Key("file").String()
		}
	}
	return ignoreConfig
}

// GetAllConfig returns all configuration options
func (c *Config) GetAllConfig() *AllConfig {
	return &AllConfig{
		Hash:        c.GetHashConfig(),
		Output:      c.GetOutputConfig(),
		Verbose:     c.GetVerboseConfig(),
		Performance: c.GetPerformanceConfig(),
		Errors:      c.GetErrorConfig(),
		Ignore:      c.GetIgnoreConfig(),
	}
}

// ApplyOverrides applies overrides to the configuration
// Accepts strings like "default:sha512", "format:json", "level:2", "hash_workers:4"
func (c *Config) ApplyOverrides(overrides []string) error {
	for _, override := range overrides {
		if strings.TrimSpace(override) == "" {
			continue
		}
		parts := strings.SplitN(override, ":", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid override format '%s', expected 'key:value'", override)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		var section string
		switch key {
		case "default":
			section = "filehash"
		case "format":
			section = "output"
		case "level", "debug":
			section = "verbose"
		case "hash_workers", "hash_buffer":
			section = "performance"
		case "policy":
			section = "errors"
		default:
			return fmt.Errorf("unsupported override key '%s' (supported: default, format, level, debug, hash_workers, hash_buffer, policy)", key)
		}
		c.ini.Section(section).Key(key).SetValue(value)
	}
	return nil
}

// Validate checks every configured value
func (c *Config) Validate() error {
	all := c.GetAllConfig()
	if err := ValidateHashAlgorithm(all.Hash.Default); err != nil {
		return err
	}
	if err := ValidateOutputFormat(all.Output.Format); err != nil {
		return err
	}
	if err := ValidateVerboseLevel(all.Verbose.Level); err != nil {
		return err
	}
	if err := ValidateHashWorkers(all.Performance.HashWorkers); err != nil {
		return err
	}
	if _, err := ParseHumanSize(all.Performance.HashBuffer); err != nil {
		return fmt.Errorf("invalid hash buffer: %w", err)
	}
	return ValidateErrorPolicy(all.Errors.Policy)
}

// Options builds finder options from the configuration
func (c *Config) Options() (Options, error) {
	if err := c.Validate(); err != nil {
		return Options{}, err
	}
	all := c.GetAllConfig()

	algorithm, err := GetHashAlgorithm(all.Hash.Default)
	if err != nil {
		return Options{}, err
	}
	bufferSize, err := ParseHumanSize(all.Performance.HashBuffer)
	if err != nil {
		return Options{}, fmt.Errorf("invalid hash buffer: %w", err)
	}

	ignore, err := NewIgnoreManager(all.Ignore.Patterns)
	if err != nil {
		return Options{}, err
	}
	if all.Ignore.File != "" {
		if err := ignore.LoadIgnoreFile(all.Ignore.File); err != nil {
			return Options{}, err
		}
	}

	return Options{
		Algorithm:   algorithm,
		BufferSize:  bufferSize,
		HashWorkers: all.Performance.HashWorkers,
		Policy:      all.Errors.Policy,
		Ignore:      ignore,
	}, nil
}

// ValidateHashAlgorithm validates that a hash algorithm is supported
func ValidateHashAlgorithm(algorithm string) error {
	if _, ok := HashTypeFromName(algorithm); !ok {
		return fmt.Errorf("%w: %s (supported: sha1, sha256, sha512, blake2b)", ErrUnsupportedAlgorithm, algorithm)
	}
	return nil
}

// ValidateOutputFormat validates that an output format is supported
func ValidateOutputFormat(format string) error {
	switch strings.ToLower(format) {
	case FormatHuman, FormatJSON, FormatFdupes:
		return nil
	default:
		return fmt.Errorf("%w: %s (supported: human, json, fdupes)", ErrUnsupportedFormat, format)
	}
}

// ValidateVerboseLevel validates that a verbose level is valid
func ValidateVerboseLevel(level int) error {
	if level < 0 || level > 3 {
		return fmt.Errorf("invalid verbose level: %d (supported: 0-3)", level)
	}
	return nil
}

// ValidateHashWorkers validates that the hash worker count is reasonable
func ValidateHashWorkers(workers int) error {
	if workers < 0 {
		return fmt.Errorf("hash workers must not be negative, got: %d", workers)
	}
	if workers > 64 {
		return fmt.Errorf("hash workers should not exceed 64, got: %d", workers)
	}
	return nil
}

// ValidateErrorPolicy validates the hashing/comparison failure policy
func ValidateErrorPolicy(policy string) error {
	switch strings.ToLower(policy) {
	case PolicyAbort, PolicySkip:
		return nil
	default:
		return fmt.Errorf("unsupported error policy: %s (supported: abort, skip)", policy)
	}
}
