package database

import (
	"Trendscope/internal/api/config"
	"Trendscope/internal/model"
	"Trendscope/internal/pkg/logger"
	"fmt"
	log "log/slog"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewGormDB 初始化并返回 *gorm.DB 实例，处理连接池配置
func NewGormDB(cfg *config.DBConfig) (*gorm.DB, error) {
	dsn, err := NormalizeDSN(cfg.DSN)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:      logger.NewGormLogger(),
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdle)
	sqlDB.SetMaxOpenConns(cfg.MaxOpen)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Minute)

	if err = sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database connection check failed: %w", err)
	}

	if cfg.AutoMigrate {
		if err = Migrate(db); err != nil {
			return nil, err
		}
	}

	log.Info("Database connection established successfully.")
	return db, nil
}

// NormalizeDSN 强制 parseTime 与本地时区，周期边界依赖 time.Time 的正确还原
func NormalizeDSN(dsn string) (string, error) {
	parsed, err := mysqldriver.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("invalid database dsn: %w", err)
	}
	parsed.ParseTime = true
	parsed.Loc = time.Local
	return parsed.FormatDSN(), nil
}

// Migrate 建表及索引
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Product{},
		&model.Video{},
		&model.VideoMetric{},
		&model.Article{},
		&model.ArticleView{},
		&model.ArticleShare{},
		&model.RankingPeriod{},
		&model.ProductRanking{},
		&model.ArticleRanking{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	return nil
}
