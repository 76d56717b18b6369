package domain

import "time"

// 加入申请的状态
const (
	JoinStatusPending  = "pending"
	JoinStatusAccepted = "accepted"
)

// JoinRequest 记录一次加入房间的请求，由后台任务写入。
type JoinRequest struct {
	ID          string    `json:"id"`
	RoomID      string    `json:"room_id"`
	ApplicantID string    `json:"applicant_id"`
	Outcome     string    `json:"outcome"`
	Status      string    `json:"status"`
	Answers     []Answer  `json:"answers,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
