package findclone

// This file wires configuration into the package-level logging state

// InitDebugFlags initialises debug flags, leaving them untouched for an empty string
func InitDebugFlags(flagsStr string) {
	if flagsStr != "" {
		SetDebugFlags(flagsStr)
	}
}

// ApplyVerboseConfig sets the verbose level and debug flags from the configuration.
// Debug flags from the environment take precedence over the file.
func ApplyVerboseConfig(cfg *Config, env *Environment) {
	verbose := cfg.GetVerboseConfig()
	SetVerboseLevel(verbose.Level)
	InitDebugFlags(verbose.Debug)
	if env != nil {
		InitDebugFlags(env.Debug)
	}
	VerboseLog(1, "verbose level %d", verbose.Level)
}

// LoadFromEnvironment loads the configuration named by FINDCLONE_CONFIG, applies
// FINDCLONE_OVERRIDES and configures logging
func LoadFromEnvironment() (*Config, error) {
	env, err := LoadEnvironment()
	if err != nil {
		return nil, err
	}
	cfg, err := LoadConfig(env.Config)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyOverrides(env.Overrides); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ApplyVerboseConfig(cfg, env)
	return cfg, nil
}
