package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Log    LogConfig
	DB     DBConfig
}

type ServerConfig struct {
	Address string
	Mode    string
}

type LogConfig struct {
	Level  string
	Format string
}

type DBConfig struct {
	Driver       string
	Path         string
	Host         string
	User         string
	Password     string
	Name         string
	Port         int
	MaxOpenConns int `mapstructure:"max_open_conns"`
}

// Load 讀取 config.yaml 並套用 MESSAGE_BOARD_ 開頭的環境變數
// 找不到配置文件時使用預設值
func Load() (*Config, error) {
	return LoadFrom("./pkg/config", ".")
}

// LoadFrom 依序在指定目錄中尋找 config.yaml
func LoadFrom(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	setDefaults(v)

	v.SetEnvPrefix("MESSAGE_BOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":5555")
	v.SetDefault("server.mode", "debug")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.path", "app.db")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "postgres")
	v.SetDefault("db.name", "message_board")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.max_open_conns", 10)
}
