package hub

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func startHub(t *testing.T) *Hub {
	t.Helper()
	h := NewHub()
	done := make(chan struct{})
	go func() {
		h.Run()
		close(done)
	}()
	t.Cleanup(func() {
		h.Stop()
		<-done
	})
	return h
}

func waitForClients(t *testing.T, h *Hub, channel string, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return h.ClientCount(channel) == n }, time.Second, 5*time.Millisecond)
}

func receive(t *testing.T, c *Client) Envelope {
	t.Helper()
	select {
	case raw, ok := <-c.send:
		require.True(t, ok, "send channel closed")
		var env Envelope
		require.NoError(t, json.Unmarshal(raw, &env))
		return env
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		return Envelope{}
	}
}

func TestHub_PublishReachesOnlySubscribedChannel(t *testing.T) {
	h := startHub(t)
	a := NewClient(h, nil, SessionChannel("a"))
	b := NewClient(h, nil, SessionChannel("b"))
	require.True(t, h.Register(a))
	require.True(t, h.Register(b))
	waitForClients(t, h, SessionChannel("a"), 1)
	waitForClients(t, h, SessionChannel("b"), 1)

	require.NoError(t, h.Publish(SessionChannel("a"), "notification", map[string]string{"message": "hi"}))

	env := receive(t, a)
	assert.Equal(t, "notification", env.Type)
	assert.Equal(t, "session:a", env.Channel)
	assert.Equal(t, map[string]interface{}{"message": "hi"}, env.Data)

	select {
	case <-b.send:
		t.Fatal("client on another channel received the message")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_UnregisterClosesSendAndDropsChannel(t *testing.T) {
	h := startHub(t)
	c := NewClient(h, nil, ChatChannel("2"))
	require.True(t, h.Register(c))
	waitForClients(t, h, ChatChannel("2"), 1)

	require.True(t, h.Unregister(c))
	waitForClients(t, h, ChatChannel("2"), 0)

	_, ok := <-c.send
	assert.False(t, ok)

	// 重复注销不会 panic
	require.True(t, h.Unregister(c))
}

func TestHub_PublishWithoutSubscribersIsDropped(t *testing.T) {
	h := startHub(t)
	assert.NoError(t, h.Publish(ChatChannel("nobody"), "message", "x"))
}

func TestHub_StopClosesClients(t *testing.T) {
	h := NewHub()
	done := make(chan struct{})
	go func() {
		h.Run()
		close(done)
	}()

	c := NewClient(h, nil, SessionChannel("s"))
	require.True(t, h.Register(c))
	waitForClients(t, h, SessionChannel("s"), 1)

	h.Stop()
	h.Stop()
	<-done

	_, ok := <-c.send
	assert.False(t, ok)
	assert.Equal(t, 0, h.ClientCount(SessionChannel("s")))
}
