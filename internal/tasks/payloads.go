package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"adResume/internal/resume"
)

// 任务类型常量，确保队列生产者与消费者一致。
const (
	TypeSectionMirror = "resume:mirror"
)

// SectionMirrorPayload 描述一次分区镜像：把内存文档中指定分区
// 尽力写入远端表。携带整份文档，worker 端只取所需分区做翻译。
type SectionMirrorPayload struct {
	UserID        uint            `json:"user_id"`
	Section       string          `json:"section"`
	Document      resume.Document `json:"document"`
	CorrelationID string          `json:"correlation_id"`
}

// NewSectionMirrorTask 构造一个分区镜像任务。
func NewSectionMirrorTask(userID uint, section string, doc resume.Document, correlationID string) (*asynq.Task, error) {
	payload, err := json.Marshal(SectionMirrorPayload{
		UserID:        userID,
		Section:       section,
		Document:      doc,
		CorrelationID: correlationID,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSectionMirror, payload), nil
}
