package main

import (
	"Trendscope/internal/api/config"
	"Trendscope/internal/pkg/cron"
	"Trendscope/internal/pkg/database"
	"Trendscope/internal/pkg/logger"
	"Trendscope/internal/pkg/mongo"
	"Trendscope/internal/pkg/redis"
	"Trendscope/internal/wire"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"
)

func main() {
	// 加载配置
	if err := config.LoadConfig(); err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		panic(err)
	}
	cfg := config.Cfg
	gin.SetMode(cfg.Server.Mode)

	// 初始化日志
	logger.InitLogger()

	// 数据库连接
	dbCfg := cfg.DB
	db, err := database.NewGormDB(&dbCfg)
	if err != nil {
		log.Error("Fatal error: failed to create database connection", "err", err)
		panic(err)
	}

	// Redis 连接
	err = redis.InitRedis(cfg.Redis)
	if err != nil {
		log.Error("Fatal error: failed to create redis connection", "err", err)
		panic(err)
	}

	// Mongo 连接，未配置时不记录管理端审计
	var mongoConn *mongodrv.Database
	if cfg.Mongo.URI != "" {
		mongoConn, err = mongo.InitMongo(cfg.Mongo)
		if err != nil {
			log.Error("Fatal error: failed to create mongo connection", "err", err)
			panic(err)
		}
	}

	// 依赖注入
	app, err := wire.BuildApplication(db, mongoConn, cfg)
	if err != nil {
		log.Error("Fatal error: failed to create application", "err", err)
		panic(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	// 定时任务
	if app.CronMgr != nil {
		err = cron.InitCron(app.CronMgr)
		if err != nil {
			log.Error("Fatal error: failed to start cron jobs", "err", err)
			panic(err)
		}
		g.Go(func() error {
			<-ctx.Done()
			log.Info("Cron Jobs stopping...")
			app.CronMgr.Stop()
			return nil
		})
	}

	// HTTP 服务器
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	g.Go(func() error {
		log.Info("HTTP Server starting...", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// 优雅退出
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case <-ctx.Done():
		case sig := <-quit:
			log.Info("Received signal, shutting down...", "signal", sig)
			cancel()
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP Server shutdown failed", "err", err)
		}
		return nil
	})

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("App exited with error", "err", err)
	}

	if app.Producer != nil {
		if err = app.Producer.Close(); err != nil {
			log.Error("Kafka producer close failed", "err", err)
		}
	}
	if err = redis.Close(); err != nil {
		log.Error("Redis close failed", "err", err)
	}
	if mongoConn != nil {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err = mongoConn.Client().Disconnect(closeCtx); err != nil {
			log.Error("Mongo disconnect failed", "err", err)
		}
		closeCancel()
	}
	log.Info("App exited successfully.")
}
