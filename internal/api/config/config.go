package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件加载配置并填充到 Cfg，环境变量可覆盖同名配置项（如 DATABASE_DSN）。
// 未指定目录时读取 ./configs
func LoadConfig(dirs ...string) error {
	if len(dirs) == 0 {
		dirs = []string{"./configs"}
	}
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	for _, dir := range dirs {
		viper.AddConfigPath(dir)
	}
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file not found: %w", err)
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}

// setDefaults 只有注册过的键才会在 Unmarshal 时读取环境变量，密钥类配置默认留空
func setDefaults() {
	viper.SetDefault("database.dsn", "")
	viper.SetDefault("redis.addr", "127.0.0.1:6379")
	viper.SetDefault("mongo.uri", "")
	viper.SetDefault("security.jwt_secret", "")
	viper.SetDefault("security.cron_secret_hash", "")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "release")
	viper.SetDefault("database.max_idle", 10)
	viper.SetDefault("database.max_open", 50)
	viper.SetDefault("database.max_lifetime", 30)
	viper.SetDefault("mongo.database", "trendscope")
	viper.SetDefault("kafka_ranking_publisher.topic", "ranking-computed")
	viper.SetDefault("logstash.index", "logstash-trendscope")
	viper.SetDefault("ranking.cache_ttl", 600)
	viper.SetDefault("ranking.default_limit", 20)
	viper.SetDefault("ranking.max_limit", 100)
	viper.SetDefault("ranking.period_list_size", 50)
}
