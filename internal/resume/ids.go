package resume

import (
	"strconv"
	"sync/atomic"
	"time"
)

var idSeq atomic.Uint64

// NewEntryID 生成基于时间戳的条目 id（分区内唯一）。
// 末尾追加进程内递增序号，避免同一毫秒内重复。
func NewEntryID(prefix string) string {
	return prefix + strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + strconv.FormatUint(idSeq.Add(1), 10)
}
