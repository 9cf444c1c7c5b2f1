package cliconfig

import "os"

// Environment variable names
const (
	EnvToken     = "NITRADO_TOKEN"
	EnvAPIURL    = "NITRADO_API_URL"
	EnvServiceID = "NITRADO_SERVICE_ID"
	EnvVerbose   = "NITRADO_VERBOSE"
	EnvConfig    = "NITRADO_CONFIG"
)

// LoadEnv overlays environment variables onto cfg. Only variables that are
// actually set take effect.
func LoadEnv(cfg *Config) {
	if cfg.Sources == nil {
		cfg.Sources = make(map[string]string)
	}

	if v := os.Getenv(EnvToken); v != "" {
		cfg.Token = v
		cfg.Sources["token"] = SourceEnv
	}
	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.APIURL = v
		cfg.Sources["apiUrl"] = SourceEnv
	}
	if v := os.Getenv(EnvServiceID); v != "" {
		cfg.ServiceID = v
		cfg.Sources["serviceId"] = SourceEnv
	}
	if v := os.Getenv(EnvVerbose); v != "" {
		cfg.Verbose = v == "true" || v == "1" || v == "yes"
		cfg.Sources["verbose"] = SourceEnv
	}
}
