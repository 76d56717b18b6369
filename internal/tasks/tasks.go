package tasks

import (
	"encoding/json"

	"github.com/padmeamd/uroom/internal/domain"
)

// 定义任务类型常量
const (
	TypeJoinRequest = "join:request" // 加入房间请求处理任务
)

// JoinRequestPayload 定义了加入请求任务的数据结构
type JoinRequestPayload struct {
	RequestID   string          `json:"request_id"` // 由入队方生成，重试时保持幂等
	RoomID      string          `json:"room_id"`
	ApplicantID string          `json:"applicant_id"`
	Outcome     string          `json:"outcome"`
	Answers     []domain.Answer `json:"answers,omitempty"`
}

// NewJoinRequestTask 序列化加入请求任务的 payload
func NewJoinRequestTask(payload JoinRequestPayload) ([]byte, error) {
	return json.Marshal(payload)
}

// ParseJoinRequestTask 反序列化加入请求任务的 payload
func ParseJoinRequestTask(data []byte) (JoinRequestPayload, error) {
	var payload JoinRequestPayload
	err := json.Unmarshal(data, &payload)
	return payload, err
}
