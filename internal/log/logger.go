package log

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"message_board/pkg/config"
)

// Init 設定全域 zerolog logger，format 為 console 時輸出人類可讀格式
func Init(cfg config.LogConfig) zerolog.Logger {
	return InitWriter(cfg, os.Stdout)
}

func InitWriter(cfg config.LogConfig, out io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	log.Logger = zerolog.New(out).Level(level).With().Timestamp().Logger()
	return log.Logger
}
