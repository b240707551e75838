package main

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	httpadp "creditwise-backend/internal/adapter/http"
	mw "creditwise-backend/internal/adapter/middleware"
	"creditwise-backend/internal/adapter/repository/mysql"
	"creditwise-backend/internal/adapter/repository/redischat"
	"creditwise-backend/internal/config"
	"creditwise-backend/internal/infrastructure/cache"
	"creditwise-backend/internal/infrastructure/db"
	chatuc "creditwise-backend/internal/usecase/chat"
	historyuc "creditwise-backend/internal/usecase/history"
	profileuc "creditwise-backend/internal/usecase/profile"
	scoreuc "creditwise-backend/internal/usecase/score"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid config")
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN(), log)
	if err != nil {
		log.WithError(err).Fatal("mysql connect failed")
	}
	if err := db.AutoMigrate(gdb); err != nil {
		log.WithError(err).Fatal("migration failed")
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.WithError(err).Fatal("redis connect failed")
	}

	profileRepo := mysql.NewProfileRepository(gdb)
	historyRepo := mysql.NewHistoryRepository(gdb)
	unit := mysql.NewGormUoW(gdb)
	chatStore := redischat.New(rdb, time.Duration(cfg.ChatTTLSecs)*time.Second)

	profiles := profileuc.NewUsecase(profileRepo, unit)
	scores := scoreuc.NewUsecase(profileRepo, historyRepo, log)
	snapshots := historyuc.NewUsecase(historyRepo)
	chatbot := chatuc.NewUsecase(chatStore)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	h := httpadp.NewHandler()
	ph := httpadp.NewProfileHandler(profiles)
	sh := httpadp.NewScoreHandler(scores, snapshots)
	eh := httpadp.NewEMIHandler()
	ch := httpadp.NewChatHandler(chatbot)

	auth := mw.JWTAuth([]byte(cfg.JWTSecret))
	idem := mw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, log)

	api := e.Group("/api")
	api.GET("/health", h.Health)

	fp := api.Group("/financial-profile", auth)
	fp.POST("", ph.Create, idem)
	fp.GET("", ph.Get)
	fp.PUT("", ph.Update, idem)
	fp.GET("/exists", ph.Exists)

	cs := api.Group("/credit-score", auth)
	cs.POST("/calculate", sh.Calculate)
	cs.GET("", sh.GetScore)
	cs.POST("/what-if", sh.WhatIf)
	cs.GET("/history", sh.History)

	// EMI endpoints are public
	api.POST("/emi/calculate", eh.Calculate)
	api.POST("/emi/quick", eh.Quick)

	cb := api.Group("/chatbot", auth)
	cb.POST("/message", ch.Message)
	cb.GET("/history", ch.History)

	addr := ":" + cfg.AppPort
	log.WithField("addr", addr).Info("listening")
	if err := e.Start(addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
