package drivers

// Group names one pip invocation worth of related packages.
type Group struct {
	Name     string
	Packages []string
}

// Catalogue returns the fixed set of optional integration packages.
func Catalogue() []Group {
	return []Group{
		{
			Name: "database drivers",
			Packages: []string{
				"psycopg2-binary",
				"mysql-connector-python",
				"clickhouse-driver",
				"pymongo",
				"pymssql",
			},
		},
		{
			Name: "cloud SDKs",
			Packages: []string{
				"boto3",
				"google-cloud-storage",
			},
		},
		{
			Name: "language-model clients",
			Packages: []string{
				"openai",
				"transformers",
			},
		},
		{
			Name: "web scraping",
			Packages: []string{
				"beautifulsoup4",
				"lxml",
				"html5lib",
			},
		},
	}
}
