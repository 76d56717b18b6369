package hub

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// 包级别的 WebSocket 常量，供 hub 和 client 使用
const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer. 客户端只订阅，不需要大消息。
	maxMessageSize = 512
)

// 内部消息类型
const (
	msgRegister   = "register"
	msgUnregister = "unregister"
	msgPublish    = "publish"
)

// SessionChannel 发现会话的通知频道
func SessionChannel(sessionID string) string { return "session:" + sessionID }

// ChatChannel 房间群聊频道
func ChatChannel(roomID string) string { return "chat:" + roomID }

// Envelope 是推送给客户端的消息格式
type Envelope struct {
	Type    string      `json:"type"`
	Channel string      `json:"channel"`
	Data    interface{} `json:"data"`
}

// HubMessage 定义了在 Hub 内部通道传递的消息
type HubMessage struct {
	Type    string  // register / unregister / publish
	Channel string  // 频道名
	Client  *Client // 仅用于 register/unregister
	Payload []byte  // 仅用于 publish
}

// Hub 按频道维护订阅的客户端，并把发布的消息扇出给它们
type Hub struct {
	messageChan chan HubMessage

	// map[channel]map[*Client]bool
	channels   map[string]map[*Client]bool
	channelsMu sync.RWMutex

	done     chan struct{}
	stopOnce sync.Once
	log      *logrus.Entry
}

// NewHub 创建并返回一个新的 Hub 实例
func NewHub() *Hub {
	return &Hub{
		messageChan: make(chan HubMessage, 512),
		channels:    make(map[string]map[*Client]bool),
		done:        make(chan struct{}),
		log:         logrus.WithField("component", "hub"),
	}
}

// Run 启动 Hub 的主事件循环，直到 Stop 被调用。应在单独的 goroutine 中运行。
func (h *Hub) Run() {
	h.log.Info("Hub is running...")
	for {
		select {
		case msg := <-h.messageChan:
			switch msg.Type {
			case msgRegister:
				h.registerClient(msg.Client)
			case msgUnregister:
				h.unregisterClient(msg.Client)
			case msgPublish:
				h.broadcast(msg.Channel, msg.Payload)
			default:
				h.log.Warnf("Hub: Received unknown message type: %s on channel %s", msg.Type, msg.Channel)
			}
		case <-h.done:
			h.closeAll()
			h.log.Info("Hub is shutting down...")
			return
		}
	}
}

// Stop 停止主循环并关闭所有客户端的发送通道，可重复调用
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.done) })
}

func (h *Hub) registerClient(client *Client) {
	if client == nil {
		h.log.Error("Hub: Attempted to register a nil client")
		return
	}
	h.channelsMu.Lock()
	if _, ok := h.channels[client.channel]; !ok {
		h.channels[client.channel] = make(map[*Client]bool)
	}
	h.channels[client.channel][client] = true
	h.channelsMu.Unlock()
	h.log.WithField("channel", client.channel).Debug("Client registered to Hub")
}

func (h *Hub) unregisterClient(client *Client) {
	if client == nil {
		h.log.Error("Hub: Attempted to unregister a nil client")
		return
	}
	logCtx := h.log.WithField("channel", client.channel)

	h.channelsMu.Lock()
	defer h.channelsMu.Unlock()
	clients, ok := h.channels[client.channel]
	if !ok || !clients[client] {
		logCtx.Debug("Client not found during unregister")
		return
	}
	delete(clients, client)
	// send 只在这里和 closeAll 中关闭，且都持有写锁
	close(client.send)
	if len(clients) == 0 {
		delete(h.channels, client.channel)
	}
	logCtx.Debug("Client unregistered from Hub")
}

func (h *Hub) closeAll() {
	h.channelsMu.Lock()
	defer h.channelsMu.Unlock()
	for channel, clients := range h.channels {
		for client := range clients {
			close(client.send)
		}
		delete(h.channels, channel)
	}
}

// broadcast 将消息发送给频道内的所有客户端
func (h *Hub) broadcast(channel string, message []byte) {
	h.channelsMu.RLock()
	defer h.channelsMu.RUnlock()
	clients := h.channels[channel]
	if len(clients) == 0 {
		return
	}
	logCtx := h.log.WithFields(logrus.Fields{
		"channel":         channel,
		"message_size":    len(message),
		"recipient_count": len(clients),
	})
	logCtx.Debug("Broadcasting message to clients")

	for client := range clients {
		// 非阻塞发送，慢客户端直接丢消息
		select {
		case client.send <- message:
		default:
			logCtx.Warn("Client send channel full during broadcast, skipping this client")
		}
	}
}

// queue 非阻塞地把消息放入 Hub 的处理队列，队列满时返回 false
func (h *Hub) queue(msg HubMessage) bool {
	select {
	case h.messageChan <- msg:
		return true
	default:
		h.log.WithFields(logrus.Fields{
			"message_type": msg.Type,
			"channel":      msg.Channel,
		}).Warn("Hub message channel full, dropping message")
		return false
	}
}

// Register 请求 Hub 注册客户端
func (h *Hub) Register(client *Client) bool {
	return h.queue(HubMessage{Type: msgRegister, Channel: client.channel, Client: client})
}

// Unregister 请求 Hub 注销客户端
func (h *Hub) Unregister(client *Client) bool {
	return h.queue(HubMessage{Type: msgUnregister, Channel: client.channel, Client: client})
}

// Publish 把 data 包装成 Envelope 发布到频道，没有订阅者时消息被丢弃
func (h *Hub) Publish(channel, eventType string, data interface{}) error {
	payload, err := json.Marshal(Envelope{Type: eventType, Channel: channel, Data: data})
	if err != nil {
		return fmt.Errorf("hub: marshal %s event for %s: %w", eventType, channel, err)
	}
	if !h.queue(HubMessage{Type: msgPublish, Channel: channel, Payload: payload}) {
		return fmt.Errorf("hub: queue full, %s event for %s dropped", eventType, channel)
	}
	return nil
}

// ClientCount 返回频道当前的订阅数
func (h *Hub) ClientCount(channel string) int {
	h.channelsMu.RLock()
	defer h.channelsMu.RUnlock()
	return len(h.channels[channel])
}
