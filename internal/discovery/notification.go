package discovery

import (
	"fmt"

	"github.com/padmeamd/uroom/internal/domain"
)

// NotificationLevel 对应前端 toast 的样式。
type NotificationLevel string

const (
	LevelInfo    NotificationLevel = "info"
	LevelSuccess NotificationLevel = "success"
	LevelAction  NotificationLevel = "action"
)

// NotificationAction 是通知附带的后续操作，例如打开申请问卷。
type NotificationAction struct {
	Label string `json:"label"`
	Token string `json:"token"`
}

// Notification 是决策派发器产生的通知描述，只是对外的信号，不修改房间状态。
type Notification struct {
	Level       NotificationLevel   `json:"level"`
	Message     string              `json:"message"`
	Description string              `json:"description,omitempty"`
	Action      *NotificationAction `json:"action,omitempty"`
	RoomID      string              `json:"room_id,omitempty"`
	DurationMS  int                 `json:"duration_ms"`
}

// QuizActionToken 生成打开问卷流程用的 token。
func QuizActionToken(roomID string) string {
	return "quiz:" + roomID
}

// Dispatch 根据决策结果生成通知。
func Dispatch(room domain.Room, outcome Outcome) Notification {
	switch outcome {
	case OutcomeAutoJoined:
		return Notification{
			Level:       LevelSuccess,
			Message:     fmt.Sprintf(`Joined "%s"! 🎉`, room.Title),
			Description: "Check your chats to connect with the group.",
			RoomID:      room.ID,
			DurationMS:  3000,
		}
	case OutcomeApplicationRequired:
		return Notification{
			Level:       LevelAction,
			Message:     "Application Required",
			Description: fmt.Sprintf(`Complete the quiz to join "%s"`, room.Title),
			Action:      &NotificationAction{Label: "Start", Token: QuizActionToken(room.ID)},
			RoomID:      room.ID,
			DurationMS:  4000,
		}
	case OutcomePendingApproval:
		return Notification{
			Level:       LevelSuccess,
			Message:     fmt.Sprintf(`Request sent for "%s"!`, room.Title),
			Description: "Waiting for creator approval.",
			RoomID:      room.ID,
			DurationMS:  3000,
		}
	default:
		return Notification{
			Level:      LevelInfo,
			Message:    fmt.Sprintf(`Passed on "%s"`, room.Title),
			RoomID:     room.ID,
			DurationMS: 2000,
		}
	}
}

// UndoNotification 撤销成功后的提示。
func UndoNotification(room domain.Room) Notification {
	return Notification{Level: LevelInfo, Message: "Undone!", RoomID: room.ID, DurationMS: 1500}
}
