package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"message_board/internal/api"
	clog "message_board/internal/log"
	"message_board/internal/models"
	"message_board/internal/repository"
	"message_board/internal/service"
	"message_board/internal/storage"
	"message_board/pkg/config"
)

func main() {
	// 載入應用程式配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logger := clog.Init(cfg.Log)

	// 初始化資料庫連接，預設為本地 sqlite 文件
	db, err := storage.Open(cfg.DB, logger)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("open database")
	}
	defer db.Close()

	// 服務啟動前確保 messages 表已存在
	if err := db.AutoMigrate(&models.Message{}); err != nil {
		logger.Fatal().Err(err).Msg("migrate database")
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos)

	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	api.SetupRoutes(r, services, logger)

	logger.Info().Str("address", cfg.Server.Address).Msg("server listening")
	if err := r.Run(cfg.Server.Address); err != nil {
		logger.Fatal().Err(err).Msg("server run")
	}
}
