package cliconfig

// Value sources, recorded per field so `nitractl config` style tooling can
// say where a setting came from.
const (
	SourceDefault = "default"
	SourceFile    = "file"
	SourceEnv     = "env"
	SourceFlag    = "flag"
)

// DefaultAPIURL is the public Nitrado API endpoint.
const DefaultAPIURL = "https://api.nitrado.net"

// Config holds everything nitractl needs to talk to a game server.
type Config struct {
	// Token is the long-lived bearer token from account settings.
	Token string `yaml:"token"`
	// APIURL overrides the API endpoint, mostly for testing.
	APIURL string `yaml:"api_url"`
	// ServiceID is the default service when the flag is omitted.
	ServiceID string `yaml:"service_id"`
	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`

	// Sources records where each field's value came from.
	Sources map[string]string `yaml:"-"`
}

// NewDefault returns a Config holding only defaults.
func NewDefault() *Config {
	return &Config{
		APIURL: DefaultAPIURL,
		Sources: map[string]string{
			"apiUrl": SourceDefault,
		},
	}
}

// Merge copies the non-zero fields of src over dst, tagging them with the
// given source.
func Merge(dst, src *Config, source string) {
	if dst.Sources == nil {
		dst.Sources = make(map[string]string)
	}
	if src.Token != "" {
		dst.Token = src.Token
		dst.Sources["token"] = source
	}
	if src.APIURL != "" {
		dst.APIURL = src.APIURL
		dst.Sources["apiUrl"] = source
	}
	if src.ServiceID != "" {
		dst.ServiceID = src.ServiceID
		dst.Sources["serviceId"] = source
	}
	if src.Verbose {
		dst.Verbose = true
		dst.Sources["verbose"] = source
	}
}
