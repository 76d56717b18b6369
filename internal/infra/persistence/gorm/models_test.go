package gormpersistence

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padmeamd/uroom/internal/infra/persistence/memory"
)

func TestRoomRecord_RoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	for _, room := range memory.SeedRooms(now) {
		room := room
		rec, err := newRoomRecord(&room)
		require.NoError(t, err)

		got, err := rec.toDomain()
		require.NoError(t, err)
		if diff := cmp.Diff(room, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("room %s round trip mismatch (-want +got):\n%s", room.ID, diff)
		}
	}
}

func TestRoomRecord_CorruptJSON(t *testing.T) {
	rec := &RoomRecord{ID: "1", Tags: []byte("{not json")}
	_, err := rec.toDomain()
	assert.Error(t, err)
}

func TestIsDuplicateEntryError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"mysql 1062", fmt.Errorf("insert: %w", &mysql.MySQLError{Number: 1062, Message: "dup"}), true},
		{"mysql other", &mysql.MySQLError{Number: 1146, Message: "no table"}, false},
		{"postgres", errors.New(`ERROR: duplicate key value violates unique constraint "join_requests_pkey"`), true},
		{"sqlite", errors.New("UNIQUE constraint failed: rooms.room_id"), true},
		{"other", errors.New("connection refused"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isDuplicateEntryError(tt.err))
		})
	}
}
