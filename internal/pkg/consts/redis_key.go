package consts

const (
	// RankingCacheKey 排名分页缓存，每个周期一个 hash：ranking:cache:<scope>:<periodID>
	RankingCacheKey = "ranking:cache:"

	// RankingCacheGenKey 排名缓存世代号：ranking:gen:<scope>:<periodID>
	RankingCacheGenKey = "ranking:gen:"
)

const (
	RankingJobLock = "lock:ranking:job:"
)
