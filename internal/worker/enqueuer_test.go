package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padmeamd/uroom/internal/domain"
	"github.com/padmeamd/uroom/internal/infra/persistence/memory"
	"github.com/padmeamd/uroom/internal/tasks"
)

func TestInlineEnqueuer_PersistsImmediately(t *testing.T) {
	repo := memory.NewJoinRequestRepository()
	e := NewInlineEnqueuer(repo)

	err := e.RequestJoin(context.Background(), tasks.JoinRequestPayload{
		RequestID: "req-1", RoomID: "3", ApplicantID: "me", Outcome: "pending_approval",
	})
	require.NoError(t, err)

	saved := repo.List()
	require.Len(t, saved, 1)
	assert.Equal(t, "3", saved[0].RoomID)
	assert.Equal(t, domain.JoinStatusPending, saved[0].Status)
}

func TestInlineEnqueuer_RepeatedRequestIsIdempotent(t *testing.T) {
	repo := memory.NewJoinRequestRepository()
	e := NewInlineEnqueuer(repo)
	payload := tasks.JoinRequestPayload{RequestID: "req-1", RoomID: "2", ApplicantID: "me", Outcome: "auto_joined"}

	require.NoError(t, e.RequestJoin(context.Background(), payload))
	require.NoError(t, e.RequestJoin(context.Background(), payload))
	assert.Len(t, repo.List(), 1)
}
