package wire

import (
	"Trendscope/internal/api"
	"Trendscope/internal/api/config"
	"Trendscope/internal/api/handler"
	"Trendscope/internal/pkg/cron"
	"Trendscope/internal/pkg/kafka"
	"Trendscope/internal/pkg/mongo"
	"Trendscope/internal/pkg/redis"
	"Trendscope/internal/repository"
	"Trendscope/internal/service"
	log "log/slog"
	"time"

	"github.com/gin-gonic/gin"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

const rankingLockTTL = 30 * time.Minute

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router   *gin.Engine
	DB       *gorm.DB
	CronMgr  *cron.Manager
	Trigger  service.RankingTriggerService
	Producer *kafka.RankingProducer
}

// Rankers 排名计算链路，HTTP 服务与命令行共用
type Rankers struct {
	PeriodRepo         repository.RankingPeriodRepo
	ProductRankingRepo repository.ProductRankingRepo
	ArticleRankingRepo repository.ArticleRankingRepo
	ProductRepo        repository.ProductRepo
	ArticleRepo        repository.ArticleRepo
	Cache              service.RankingCache
	Trigger            service.RankingTriggerService
	Producer           *kafka.RankingProducer
}

// BuildRankers 组装排名计算所需依赖。Redis 未初始化时不启用缓存与分布式锁，
// Kafka 未启用时不发布事件
func BuildRankers(db *gorm.DB, cfg *config.Config) (*Rankers, error) {
	periodRepo := repository.NewRankingPeriodRepository(db)
	productRepo := repository.NewProductRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	productRankingRepo := repository.NewProductRankingRepository(db)
	articleRankingRepo := repository.NewArticleRankingRepository(db)

	// 接口变量保持 nil，避免带类型的空指针
	var (
		cache     service.RankingCache
		locker    service.RankingLocker
		publisher service.RankingPublisher
		producer  *kafka.RankingProducer
	)
	if client := redis.GetRdbClient(); client != nil {
		cache = redis.NewRankingCache(client, time.Duration(cfg.Ranking.CacheTTL)*time.Second)
		locker = redis.NewLocker(rankingLockTTL)
	}
	if cfg.KafkaRankingPub.Enable {
		p, err := kafka.NewRankingProducer(cfg)
		if err != nil {
			return nil, err
		}
		producer = p
		publisher = p
	} else {
		log.Info("ranking event publisher disabled")
	}

	periodService := service.NewPeriodService(periodRepo)
	productRanking := service.NewProductRankingService(periodService, productRepo, productRankingRepo, cache, publisher)
	articleRanking := service.NewArticleRankingService(periodService, articleRepo, articleRankingRepo, cache, publisher)

	return &Rankers{
		PeriodRepo:         periodRepo,
		ProductRankingRepo: productRankingRepo,
		ArticleRankingRepo: articleRankingRepo,
		ProductRepo:        productRepo,
		ArticleRepo:        articleRepo,
		Cache:              cache,
		Trigger:            service.NewRankingTriggerService(productRanking, articleRanking, locker),
		Producer:           producer,
	}, nil
}

func BuildApplication(db *gorm.DB, mongoDB *mongodrv.Database, cfg *config.Config) (*ApplicationContainer, error) {
	rankers, err := BuildRankers(db, cfg)
	if err != nil {
		return nil, err
	}

	var auditRepo mongo.AdminActionRepo
	if mongoDB != nil {
		auditRepo = mongo.NewAdminActionRepo(mongoDB)
	}

	queryService := service.NewRankingQueryService(
		rankers.PeriodRepo,
		rankers.ProductRankingRepo,
		rankers.ArticleRankingRepo,
		rankers.Cache,
		service.QueryLimits{DefaultLimit: cfg.Ranking.DefaultLimit, MaxLimit: cfg.Ranking.MaxLimit},
	)
	scoreService := service.NewScoreBreakdownService(rankers.ProductRepo)
	trackService := service.NewTrackService(rankers.ArticleRepo)
	adminService := service.NewAdminRankingService(
		rankers.ProductRankingRepo,
		rankers.PeriodRepo,
		rankers.Trigger,
		rankers.Cache,
		auditRepo,
		cfg.Ranking.PeriodListSize,
	)

	handlers := &api.HandlersGroup{
		RankingHandler: handler.NewRankingHandler(queryService, scoreService),
		TrackHandler:   handler.NewTrackHandler(trackService),
		AdminHandler:   handler.NewAdminHandler(adminService),
		CronHandler:    handler.NewCronHandler(rankers.Trigger),
	}

	router := api.SetupRouter(handlers, cfg)

	var cronMgr *cron.Manager
	if cfg.Cron.Enable {
		cronMgr = cron.NewCronManager(cfg.Cron, rankers.Trigger)
	}

	return &ApplicationContainer{
		Router:   router,
		DB:       db,
		CronMgr:  cronMgr,
		Trigger:  rankers.Trigger,
		Producer: rankers.Producer,
	}, nil
}
