package main

import (
	"Trendscope/internal/api/config"
	"Trendscope/internal/pkg/database"
	"Trendscope/internal/pkg/logger"
	"Trendscope/internal/pkg/redis"
	"Trendscope/internal/pkg/security"
	"Trendscope/internal/service"
	"Trendscope/internal/wire"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
)

type options struct {
	Scope      string `long:"scope" description:"Ranking scope: product or article"`
	Period     string `long:"period" default:"DAILY" description:"Granularity: FOUR_HOURLY, DAILY, MONTHLY or YEARLY"`
	Date       string `long:"date" description:"Reference date, e.g. 2026-01-02 or 2026-01-02T15:04:05Z (defaults to now)"`
	ConfigDir  string `long:"config-dir" env:"TRENDSCOPE_CONFIG_DIR" default:"./configs" description:"Directory containing config.yaml"`
	HashSecret string `long:"hash-secret" description:"Print the bcrypt hash of a cron secret and exit"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, err := parseOptions(args)
	if err != nil {
		// go-flags 已输出解析错误与帮助信息
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) {
			if flagsErr.Type == flags.ErrHelp {
				return 0
			}
			return 1
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if opts.HashSecret != "" {
		hash, err := security.HashSecret(opts.HashSecret)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println(hash)
		return 0
	}

	if err = rank(opts); err != nil {
		log.Error("ranking run failed", "err", err)
		return 1
	}
	return 0
}

func parseOptions(args []string) (*options, error) {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}
	if opts.HashSecret == "" && opts.Scope == "" {
		return nil, errors.New("--scope is required")
	}
	return &opts, nil
}

func rank(opts *options) error {
	scope, err := service.NormalizeScope(opts.Scope)
	if err != nil {
		return err
	}
	g, err := service.ParseGranularity(opts.Period)
	if err != nil {
		return err
	}
	if err = service.ValidateGranularity(scope, g); err != nil {
		return err
	}
	ref, err := service.ParseReferenceDate(opts.Date)
	if err != nil {
		return err
	}

	if err = config.LoadConfig(opts.ConfigDir); err != nil {
		return err
	}
	cfg := config.Cfg
	logger.InitLogger()

	dbCfg := cfg.DB
	db, err := database.NewGormDB(&dbCfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	// 配置了 Redis 时必须可用，否则计算后无法清理查询缓存
	if cfg.Redis.Addr != "" {
		if err = redis.InitRedis(cfg.Redis); err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer redis.Close()
	}

	rankers, err := wire.BuildRankers(db, cfg)
	if err != nil {
		return err
	}
	if rankers.Producer != nil {
		defer rankers.Producer.Close()
	}

	ctx, stop := signal.NotifyContext(logger.WithJobTrace(context.Background(), "cli"), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	result, err := rankers.Trigger.Trigger(ctx, scope, g, ref)
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "ranking run finished",
		"scope", result.Scope,
		"granularity", result.Granularity,
		"period_id", result.PeriodID,
		"rankings", result.RankingsWritten,
		"elapsed", time.Since(start),
	)
	return nil
}
