package configs

// Config holds all configuration for the application.
type Config struct {
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Input   InputConfig   `mapstructure:"input" validate:"required"`
	Parsing ParsingConfig `mapstructure:"parsing" validate:"required"`
	Report  ReportConfig  `mapstructure:"report" validate:"required"`
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,loglevel"`
	Format string `mapstructure:"format" validate:"required,oneof=json console"`
}

// InputConfig locates the access log to analyze: LogFile is resolved inside RootDir.
type InputConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
	LogFile string `mapstructure:"log_file" validate:"required"`
}

// ParsingConfig holds the line error policy.
type ParsingConfig struct {
	Mode string `mapstructure:"mode" validate:"required,oneof=strict lenient"`
}

// ReportConfig holds report rendering configuration.
type ReportConfig struct {
	Format    string `mapstructure:"format" validate:"required,oneof=table json"`
	Precision int    `mapstructure:"precision" validate:"min=0,max=6"` // decimals of the percentage column
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// MetricsConfig holds metrics export configuration.
type MetricsConfig struct {
	TextfilePath string `mapstructure:"textfile_path"` // empty disables the one-shot dump
}
