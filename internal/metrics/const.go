package metrics

const Namespace = "river_watch"

const (
	CacheTypeRedis  = "redis"
	CacheTypeMemory = "memory"
)

const (
	IdPOperationExchange = "exchange"
	IdPOperationUserinfo = "userinfo"
	IdPOperationRefresh  = "refresh"
	IdPOperationRevoke   = "revoke"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)
