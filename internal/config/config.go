package config

// Config carries the CLI's connection settings.
type Config struct {
	EtcdEndpoints []string
	OTLPEndpoint  string
	ServiceName   string
}
