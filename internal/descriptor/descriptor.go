package descriptor

import (
	"forgectl/internal/config"
)

// Binding is the network bind section of the descriptor.
type Binding struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// Integration is a named external data-source connection entry.
type Integration struct {
	Enabled  bool   `toml:"enabled"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Database string `toml:"database"`
	Publish  bool   `toml:"publish"`
}

// Handler is a named pluggable processing backend entry.
type Handler struct {
	Enabled bool `toml:"enabled"`
}

// Document is the full on-disk configuration descriptor.
type Document struct {
	Debug        bool                   `toml:"debug"`
	StorageDir   string                 `toml:"storage_dir"`
	API          Binding                `toml:"api"`
	Integrations map[string]Integration `toml:"integrations"`
	Handlers     map[string]Handler     `toml:"handlers"`
}

// integrationCatalogue holds the connection defaults written for every
// generated descriptor. Entries ship disabled; operators enable them in the
// descriptor after pointing them at real endpoints.
var integrationCatalogue = map[string]Integration{
	"postgres":   {Host: "127.0.0.1", Port: 5432, User: "postgres", Database: "postgres", Publish: true},
	"mysql":      {Host: "127.0.0.1", Port: 3306, User: "root", Database: "mysql", Publish: true},
	"mariadb":    {Host: "127.0.0.1", Port: 3306, User: "root", Database: "mariadb", Publish: true},
	"clickhouse": {Host: "127.0.0.1", Port: 8123, User: "default", Database: "default", Publish: true},
	"mongodb":    {Host: "127.0.0.1", Port: 27017, User: "admin", Database: "admin", Publish: true},
	"mssql":      {Host: "127.0.0.1", Port: 1433, User: "sa", Database: "master", Publish: true},
}

var handlerCatalogue = map[string]Handler{
	"openai":      {},
	"huggingface": {},
	"ollama":      {},
}

// Build assembles the descriptor document for the given resolved config.
func Build(cfg *config.Config) Document {
	integrations := make(map[string]Integration, len(integrationCatalogue))
	for name, entry := range integrationCatalogue {
		integrations[name] = entry
	}
	handlers := make(map[string]Handler, len(handlerCatalogue))
	for name, entry := range handlerCatalogue {
		handlers[name] = entry
	}
	return Document{
		Debug:      false,
		StorageDir: cfg.StoragePath,
		API: Binding{
			Host: cfg.Host,
			Port: cfg.Port,
		},
		Integrations: integrations,
		Handlers:     handlers,
	}
}
