package discovery

import (
	"context"
	"time"

	"github.com/padmeamd/uroom/internal/domain"
)

var testNow = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

type staticProvider struct {
	rooms []domain.Room
	err   error
}

func (p staticProvider) ListRooms(context.Context) ([]domain.Room, error) {
	return p.rooms, p.err
}

func room(id string, typ domain.RoomType, in time.Duration, urgent bool, score int) domain.Room {
	r := domain.Room{
		ID:       id,
		Title:    "Room " + id,
		Type:     typ,
		DateTime: testNow.Add(in),
		IsUrgent: urgent,
	}
	if score > 0 {
		r.Recommendation = &domain.Recommendation{Score: score}
	}
	return r
}

func ids(rooms []domain.Room) []string {
	out := make([]string, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, r.ID)
	}
	return out
}
