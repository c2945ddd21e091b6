package consts

const (
	RoleAdmin = "ADMIN"
)

// 管理员操作类型，写入审计日志
const (
	AdminActionOverrideRanking  = "RANKING_OVERRIDE"
	AdminActionRecalculateRanks = "RANKING_RECALCULATE"
)
