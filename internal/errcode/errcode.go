package errcode

// 错误码约定（随 WebSocket 通知下发给前端）：
// - 0：无错误
// - 4xxx：业务可恢复/告警类错误（例如远端表尚未建好）
// - 5xxx：系统错误（镜像/同步彻底失败）
const (
	OK              = 0
	SchemaMissing   = 4001
	ResourceMissing = 4004
	SystemError     = 5000
)
