package config

// Config 配置主体
type Config struct {
	Server          ServerConfig          `mapstructure:"server"`
	DB              DBConfig              `mapstructure:"database"`
	Redis           RedisConfig           `mapstructure:"redis"`
	Mongo           MongoConfig           `mapstructure:"mongo"`
	Kafka           KafkaConfig           `mapstructure:"kafka"`
	KafkaRankingPub KafkaRankingPublisher `mapstructure:"kafka_ranking_publisher"`
	Logstash        LogstashConfig        `mapstructure:"logstash"`
	Security        SecurityConfig        `mapstructure:"security"`
	Cron            CronConfig            `mapstructure:"cron"`
	Ranking         RankingConfig         `mapstructure:"ranking"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port         int      `mapstructure:"port"`
	Mode         string   `mapstructure:"mode"`
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type KafkaConfig struct {
	Brokers []string   `mapstructure:"brokers"`
	Sasl    SaslConfig `mapstructure:"sasl"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// KafkaRankingPublisher 排名计算完成事件
type KafkaRankingPublisher struct {
	Enable bool   `mapstructure:"enable"`
	Topic  string `mapstructure:"topic"`
}

type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

type SecurityConfig struct {
	JwtSecret      string `mapstructure:"jwt_secret"`
	CronSecretHash string `mapstructure:"cron_secret_hash"`
}

// CronConfig 各排名任务的 cron 表达式（秒级），留空表示不注册
type CronConfig struct {
	Enable            bool   `mapstructure:"enable"`
	ProductFourHourly string `mapstructure:"product_four_hourly"`
	ProductDaily      string `mapstructure:"product_daily"`
	ProductMonthly    string `mapstructure:"product_monthly"`
	ProductYearly     string `mapstructure:"product_yearly"`
	ArticleDaily      string `mapstructure:"article_daily"`
	ArticleMonthly    string `mapstructure:"article_monthly"`
}

type RankingConfig struct {
	CacheTTL       int `mapstructure:"cache_ttl"`
	DefaultLimit   int `mapstructure:"default_limit"`
	MaxLimit       int `mapstructure:"max_limit"`
	PeriodListSize int `mapstructure:"period_list_size"`
}
