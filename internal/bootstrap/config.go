package bootstrap

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort      string        `mapstructure:"SERVER_PORT"`
	RedisUrl        string        `mapstructure:"REDIS_URL"`
	MongoUri        string        `mapstructure:"MONGO_URI"`
	MongoDatabase   string        `mapstructure:"MONGO_DATABASE"`
	IsLocalCors     bool          `mapstructure:"LOCAL_CORS"`
	StaticDir       string        `mapstructure:"STATIC_DIR"`
	InboxSize       int           `mapstructure:"INBOX_SIZE"`
	ArchiveBuffer   int           `mapstructure:"ARCHIVE_BUFFER"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

var defaults = map[string]any{
	"SERVER_PORT":      ":8080",
	"REDIS_URL":        "",
	"MONGO_URI":        "",
	"MONGO_DATABASE":   "gridduel",
	"LOCAL_CORS":       false,
	"STATIC_DIR":       "",
	"INBOX_SIZE":       64,
	"ARCHIVE_BUFFER":   256,
	"LOG_LEVEL":        "info",
	"SHUTDOWN_TIMEOUT": "5s",
}

// Setup reads cfgPath when it exists, then lets environment variables
// override any key. A missing file is not an error.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}
