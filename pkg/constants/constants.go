package constants

const (
	ConfigName   = "config"
	ConfigFormat = "yaml"
	EnvPrefix    = "SORRISO"

	ServiceName = "diario-sorriso-backend"
)
