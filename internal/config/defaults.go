package config

const (
	defaultHost        = "0.0.0.0"
	defaultPort        = 47334
	defaultConfigPath  = "~/.config/mindforge/config.toml"
	defaultStoragePath = "~/.local/share/mindforge/storage"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Host:        defaultHost,
		Port:        defaultPort,
		ConfigPath:  defaultConfigPath,
		StoragePath: defaultStoragePath,
	}
}
