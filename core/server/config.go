package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// Currency is the reporting currency for commission amounts.
	Currency string `mapstructure:"currency" default:"USD"`
	// StatsCacheSeconds is the TTL for cached dashboard statistics.
	// Zero disables caching.
	StatsCacheSeconds int `mapstructure:"stats_cache_seconds" default:"60"`
}

const (
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
	CurrencyGBP = "GBP"
	CurrencyTRY = "TRY"
)

// IsValidCurrency checks if the configured reporting currency is supported.
func (c Config) IsValidCurrency() bool {
	switch c.Currency {
	case CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyTRY:
		return true
	default:
		return false
	}
}
