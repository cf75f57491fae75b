package settings

type Config struct {
	Server Server `mapstructure:"server" yaml:"server"`
	Logger Logger `mapstructure:"logger" yaml:"logger"`
	Queue  Queue  `mapstructure:"queue" yaml:"queue"`
}

// Server is the configuration for the HTTP inspector
type Server struct {
	Mode string `mapstructure:"mode" yaml:"mode" validate:"oneof=debug release test"`
	Host string `mapstructure:"host" yaml:"host"`
	Port int    `mapstructure:"port" yaml:"port" validate:"min=1,max=65535"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	FileLogName string `mapstructure:"file_log_name" yaml:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups" validate:"min=0"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age" validate:"min=0"`   // Days
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size" validate:"min=0"` // Megabytes
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// Queue is the configuration for the served queue
type Queue struct {
	Label           string `mapstructure:"label" yaml:"label" validate:"required"`
	InitialCapacity int    `mapstructure:"initial_capacity" yaml:"initial_capacity" validate:"min=1,ltefield=MaxCapacity"`
	MaxCapacity     int    `mapstructure:"max_capacity" yaml:"max_capacity" validate:"min=1,max=100000"`
}
