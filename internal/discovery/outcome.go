package discovery

import (
	"strings"

	"github.com/padmeamd/uroom/internal/domain"
)

// Direction 是一次滑动的方向。
type Direction string

const (
	DirectionLeft  Direction = "left"  // 跳过
	DirectionRight Direction = "right" // 想加入
	DirectionNone  Direction = "none"  // 手势未超过阈值
)

// ParseDirection 只接受 left/right，其他值返回 ErrInvalidDirection。
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case DirectionLeft, DirectionRight:
		return d, nil
	default:
		return "", ErrInvalidDirection
	}
}

// Outcome 是一次滑动决策的分类结果。
type Outcome string

const (
	OutcomeDiscarded           Outcome = "discarded"
	OutcomeAutoJoined          Outcome = "auto_joined"
	OutcomeApplicationRequired Outcome = "application_required"
	OutcomePendingApproval     Outcome = "pending_approval"
)

// Classify 对滑动决策分类。
//
// 右滑时按类别分支判断：EVENT 且 autoAccept 直接加入；PROJECT 且 quizRequired
// 需要先填问卷；其余情况等待创建者审批。注意这不是扁平的布尔优先级，
// 一个 autoAccept=true 的 PROJECT 房间不会被自动加入。
func Classify(room domain.Room, direction Direction) Outcome {
	if direction != DirectionRight {
		return OutcomeDiscarded
	}
	switch room.Type {
	case domain.RoomTypeEvent:
		if room.AutoAccept {
			return OutcomeAutoJoined
		}
	case domain.RoomTypeProject:
		if room.QuizRequired {
			return OutcomeApplicationRequired
		}
	}
	return OutcomePendingApproval
}
