package api

import (
	"Trendscope/internal/api/config"
	"Trendscope/internal/api/middleware"
	"Trendscope/internal/pkg/consts"
	"Trendscope/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, cfg *config.Config) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.Server.AllowOrigins))
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"code":    200,
				"message": "pong",
				"data":    nil,
			})
		})

		// 公开查询
		apiGroup.GET("/rankings", group.RankingHandler.GetProductRankings)
		apiGroup.GET("/rankings/method", group.RankingHandler.GetMethod)
		apiGroup.GET("/news/rankings", group.RankingHandler.GetArticleRankings)
		apiGroup.GET("/products/:product_id/score", group.RankingHandler.GetProductScore)

		trackGroup := apiGroup.Group("/track")
		{
			trackGroup.POST("/article-view", group.TrackHandler.TrackArticleView)
			trackGroup.POST("/article-share", group.TrackHandler.TrackArticleShare)
		}

		// 需要登录 & 拥有 admin 角色
		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(
			middleware.AuthMiddleware(cfg.Security.JwtSecret),
			middleware.CheckRoles(consts.RoleAdmin),
			middleware.AuditMiddleware(),
		)
		{
			adminGroup.PATCH("/rankings/:ranking_id", group.AdminHandler.OverrideRanking)
			adminGroup.POST("/rankings/calculate", group.AdminHandler.Calculate)
			adminGroup.GET("/rankings/periods", group.AdminHandler.ListPeriods)
			adminGroup.GET("/rankings/:ranking_id/overrides", group.AdminHandler.ListOverrides)
		}

		// 外部调度器
		cronGroup := apiGroup.Group("/cron")
		cronGroup.Use(
			middleware.CronSecretMiddleware(cfg.Security.CronSecretHash),
			middleware.AuditMiddleware(),
		)
		{
			cronGroup.POST("/rankings/:scope/:period_type", group.CronHandler.TriggerRanking)
		}
	}

	return r
}
