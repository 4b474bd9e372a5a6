package config

// Config retrieves a value from the global manager using dot notation.
// Example: config.Config("shows.cinema.ticket_price")
func Config(key string) any {
	return GetGlobal().Get(key)
}

// ConfigString retrieves a string value from the global manager.
// Example: config.ConfigString("merch.default_brand")
func ConfigString(key string) string {
	return GetGlobal().GetString(key)
}

// ConfigInt retrieves an int value from the global manager.
func ConfigInt(key string) int {
	return GetGlobal().GetInt(key)
}

// ConfigFloat retrieves a float value from the global manager.
// Example: config.ConfigFloat("shows.theatre.ticket_price")
func ConfigFloat(key string) float64 {
	return GetGlobal().GetFloat(key)
}

// ConfigBool retrieves a bool value from the global manager.
func ConfigBool(key string) bool {
	return GetGlobal().GetBool(key)
}

// ConfigStringOr returns ConfigString(key), or fallback when the key is unset.
func ConfigStringOr(key, fallback string) string {
	if !GetGlobal().Has(key) {
		return fallback
	}
	return ConfigString(key)
}
