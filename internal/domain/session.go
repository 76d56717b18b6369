package domain

import "time"

// SessionState 是发现会话的可持久化快照，只保存房间 ID，恢复时重新从房间集合中查找。
type SessionState struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Urgency    string    `json:"urgency"`
	Type       string    `json:"type"`
	QueueIDs   []string  `json:"queue"`
	HistoryIDs []string  `json:"history"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
