package jsonbin

import "time"

// DefaultBaseURL is the public JSONBin v3 API root
const DefaultBaseURL = "https://api.jsonbin.io/v3"

// Config holds JSONBin connection settings
type Config struct {
	// BaseURL is the API root (override for tests)
	BaseURL string

	// BinID identifies the bin holding the user document
	BinID string

	// MasterKey is sent as X-Master-Key on every request
	MasterKey string

	// AccessKey is sent as X-Access-Key; optional
	AccessKey string

	// Timeout bounds each outbound request
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults for JSONBin configuration
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Timeout: 30 * time.Second,
	}
}
