package config

// Config holds runtime settings for the CLI.
//
// Fields:
//   - DatabaseDSN: path of the SQLite file that holds the user registry and
//     the active session.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	DatabaseDSN string
	LogLevel    string
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "data/auth.db"
	c.LogLevel = "info"
}

// LoadConfig builds a Config from defaults, then the JSON file named by
// -c/-config (if any), then command-line flags. Later sources win.
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
