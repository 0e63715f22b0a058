package launcher

import (
	"os"

	"forgectl/internal/config"
)

// credentialVars are optional secrets forwarded to the service only when
// present in the launcher's own environment. Absent variables are omitted,
// never defaulted.
var credentialVars = []string{"OPENAI_API_KEY", "HUGGINGFACE_API_KEY"}

// Bindings returns the explicit KEY=value exports for the service process.
func Bindings(cfg *config.Config) []string {
	bindings := []string{
		"MINDFORGE_STORAGE_DIR=" + cfg.StoragePath,
		"MINDFORGE_CONFIG_PATH=" + cfg.ConfigPath,
	}
	for _, key := range credentialVars {
		if value, ok := os.LookupEnv(key); ok {
			bindings = append(bindings, key+"="+value)
		}
	}
	return bindings
}

// Environ builds the full child-process environment: the inherited
// environment followed by the explicit bindings, which therefore win on
// duplicate keys. The launcher never mutates its own environment.
func Environ(cfg *config.Config) []string {
	return append(os.Environ(), Bindings(cfg)...)
}
