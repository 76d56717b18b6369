package domain

import "time"

// Message 是房间群聊中的一条消息。
type Message struct {
	ID           string    `json:"id"`
	RoomID       string    `json:"room_id"`
	SenderID     string    `json:"sender_id"`
	SenderName   string    `json:"sender_name"`
	SenderAvatar string    `json:"sender_avatar,omitempty"`
	Text         string    `json:"text"`
	CreatedAt    time.Time `json:"created_at"`
}

// Conversation 是聊天列表中的一项。
type Conversation struct {
	RoomID      string   `json:"room_id"`
	RoomTitle   string   `json:"room_title"`
	RoomType    RoomType `json:"room_type"`
	MemberCount int      `json:"member_count"`
	LastMessage *Message `json:"last_message,omitempty"`
}
