package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// AllowedOrigins configures CORS. The default allows every origin,
	// matching the development posture of the frontends this API serves;
	// restrict it in production deployments.
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"required,min=1"`
}
