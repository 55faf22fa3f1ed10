package domain

// Config mirrors ~/.vmodem99a/config.yaml.
type Config struct {
	BaudRate       int    `yaml:"baud_rate" json:"baud_rate"`
	ConnectionType string `yaml:"connection_type" json:"connection_type"`
	SoundEnabled   bool   `yaml:"sound_enabled" json:"sound_enabled"`
	LogLevel       string `yaml:"log_level" json:"log_level"`
	HistoryBackend string `yaml:"history_backend,omitempty" json:"history_backend,omitempty"`
}

// DefaultConfig returns the factory settings of the modem.
func DefaultConfig() Config {
	return Config{
		BaudRate:       DefaultBaudRate,
		ConnectionType: DefaultConnectionType,
		SoundEnabled:   true,
		LogLevel:       DefaultLogLevel,
		HistoryBackend: HistoryBackendJSON,
	}
}
