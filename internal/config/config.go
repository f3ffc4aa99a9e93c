package config

// Config is everything tunable from folio.yaml or FOLIO_* env vars.
type Config struct {
	DataDir    string   `mapstructure:"dataDir"`
	OutputDir  string   `mapstructure:"outputDir"`
	Port       int      `mapstructure:"port"`
	ImageHosts []string `mapstructure:"imageHosts"`
	Secret     Secret   `mapstructure:"secret"`
}

// Secret overrides the contact-form unlock triple. Owners set this to
// something only they know; it is obscurity, not authentication.
type Secret struct {
	Name    string `mapstructure:"name"`
	Email   string `mapstructure:"email"`
	Message string `mapstructure:"message"`
}
