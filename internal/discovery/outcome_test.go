package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padmeamd/uroom/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		typ       domain.RoomType
		auto      bool
		quiz      bool
		direction Direction
		want      Outcome
	}{
		{"left always discards auto event", domain.RoomTypeEvent, true, false, DirectionLeft, OutcomeDiscarded},
		{"left always discards quiz project", domain.RoomTypeProject, false, true, DirectionLeft, OutcomeDiscarded},
		{"left discards with both flags", domain.RoomTypeProject, true, true, DirectionLeft, OutcomeDiscarded},
		{"event auto accept", domain.RoomTypeEvent, true, false, DirectionRight, OutcomeAutoJoined},
		{"event auto accept wins over quiz flag", domain.RoomTypeEvent, true, true, DirectionRight, OutcomeAutoJoined},
		{"event with quiz only waits for approval", domain.RoomTypeEvent, false, true, DirectionRight, OutcomePendingApproval},
		{"project quiz", domain.RoomTypeProject, false, true, DirectionRight, OutcomeApplicationRequired},
		// PROJECT 的 autoAccept 不参与判断：嵌套在类别分支下，不是扁平的布尔优先级
		{"project with both flags needs application", domain.RoomTypeProject, true, true, DirectionRight, OutcomeApplicationRequired},
		{"project auto accept without quiz waits for approval", domain.RoomTypeProject, true, false, DirectionRight, OutcomePendingApproval},
		{"plain project", domain.RoomTypeProject, false, false, DirectionRight, OutcomePendingApproval},
		{"plain event", domain.RoomTypeEvent, false, false, DirectionRight, OutcomePendingApproval},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := domain.Room{ID: "r", Type: tt.typ, AutoAccept: tt.auto, QuizRequired: tt.quiz}
			assert.Equal(t, tt.want, Classify(r, tt.direction))
		})
	}
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection(" RIGHT ")
	require.NoError(t, err)
	assert.Equal(t, DirectionRight, d)

	_, err = ParseDirection("up")
	assert.ErrorIs(t, err, ErrInvalidDirection)
	_, err = ParseDirection("none")
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

func TestDispatch(t *testing.T) {
	r := domain.Room{ID: "7", Title: "Board Game Night"}

	n := Dispatch(r, OutcomeDiscarded)
	assert.Equal(t, `Passed on "Board Game Night"`, n.Message)
	assert.Equal(t, LevelInfo, n.Level)
	assert.Nil(t, n.Action)

	n = Dispatch(r, OutcomeAutoJoined)
	assert.Equal(t, `Joined "Board Game Night"! 🎉`, n.Message)
	assert.Equal(t, "Check your chats to connect with the group.", n.Description)

	n = Dispatch(r, OutcomeApplicationRequired)
	assert.Equal(t, "Application Required", n.Message)
	assert.Equal(t, `Complete the quiz to join "Board Game Night"`, n.Description)
	require.NotNil(t, n.Action)
	assert.Equal(t, NotificationAction{Label: "Start", Token: "quiz:7"}, *n.Action)

	n = Dispatch(r, OutcomePendingApproval)
	assert.Equal(t, `Request sent for "Board Game Night"!`, n.Message)
	assert.Equal(t, "Waiting for creator approval.", n.Description)
	assert.Nil(t, n.Action)

	assert.Equal(t, "Undone!", UndoNotification(r).Message)
}

func TestResolveGesture(t *testing.T) {
	assert.Equal(t, DirectionRight, ResolveGesture(101, 100))
	assert.Equal(t, DirectionNone, ResolveGesture(100, 100))
	assert.Equal(t, DirectionNone, ResolveGesture(-100, 100))
	assert.Equal(t, DirectionLeft, ResolveGesture(-100.5, 100))
	assert.Equal(t, DirectionNone, ResolveGesture(0, 100))
	assert.Equal(t, DirectionRight, ResolveGesture(150, 0), "non-positive threshold falls back to default")
	assert.Equal(t, DirectionNone, ResolveGesture(50, -1))
}
