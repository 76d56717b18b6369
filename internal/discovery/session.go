package discovery

import (
	"context"
	"fmt"
	"time"

	"github.com/padmeamd/uroom/internal/domain"
)

// RoomProvider 提供完整的静态房间集合。
type RoomProvider interface {
	ListRooms(ctx context.Context) ([]domain.Room, error)
}

// State 是会话状态机的状态，完全由候选队列长度决定。
type State string

const (
	StateActive    State = "active"
	StateExhausted State = "exhausted"
)

// Clock 返回当前时间，测试中可替换。
type Clock func() time.Time

// Option 配置 Session。
type Option func(*Session)

// WithClock 指定过滤时使用的时钟。
func WithClock(clock Clock) Option {
	return func(s *Session) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// AdvanceResult 描述一次 Advance 的结果，供调用方渲染。
type AdvanceResult struct {
	Room         domain.Room  `json:"room"`
	Direction    Direction    `json:"direction"`
	Outcome      Outcome      `json:"outcome"`
	Notification Notification `json:"notification"`
}

// Session 是一个发现会话：候选队列 + 决策历史（用于撤销）。
// Session 不是并发安全的，调用方负责串行驱动。
type Session struct {
	id      string
	rooms   []domain.Room // 完整静态集合，会话期间只读
	queue   []domain.Room
	history []domain.Room
	urgency UrgencyFilter
	typ     TypeFilter
	clock   Clock
	created time.Time
}

// NewSession 从 provider 加载房间集合，并用 all/all 过滤器初始化候选队列。
func NewSession(ctx context.Context, id string, provider RoomProvider, opts ...Option) (*Session, error) {
	if provider == nil {
		return nil, fmt.Errorf("discovery: room provider is nil")
	}
	rooms, err := provider.ListRooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("discovery: load rooms: %w", err)
	}
	s := newSession(id, rooms, opts)
	s.queue = DeriveCandidates(s.rooms, s.urgency, s.typ, s.clock())
	return s, nil
}

// Restore 根据快照重建会话。快照中已不存在的房间 ID 会被忽略。
func Restore(state domain.SessionState, rooms []domain.Room, opts ...Option) *Session {
	s := newSession(state.ID, rooms, opts)
	s.urgency = ParseUrgencyFilter(state.Urgency)
	s.typ = ParseTypeFilter(state.Type)
	if !state.CreatedAt.IsZero() {
		s.created = state.CreatedAt
	}

	byID := make(map[string]domain.Room, len(s.rooms))
	for _, room := range s.rooms {
		byID[room.ID] = room
	}
	seen := make(map[string]bool, len(state.QueueIDs)+len(state.HistoryIDs))
	pick := func(ids []string) []domain.Room {
		out := make([]domain.Room, 0, len(ids))
		for _, id := range ids {
			room, ok := byID[id]
			if !ok || seen[id] {
				continue
			}
			seen[id] = true
			out = append(out, room)
		}
		return out
	}
	s.queue = pick(state.QueueIDs)
	s.history = pick(state.HistoryIDs)
	return s
}

func newSession(id string, rooms []domain.Room, opts []Option) *Session {
	s := &Session{
		id:      id,
		rooms:   append([]domain.Room(nil), rooms...),
		urgency: UrgencyAll,
		typ:     TypeAll,
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.created = s.clock()
	return s
}

// ID 会话标识。
func (s *Session) ID() string { return s.id }

// State 当前状态。
func (s *Session) State() State {
	if len(s.queue) == 0 {
		return StateExhausted
	}
	return StateActive
}

// Current 返回队首房间，队列为空时返回 false。
func (s *Session) Current() (domain.Room, bool) {
	if len(s.queue) == 0 {
		return domain.Room{}, false
	}
	return s.queue[0], true
}

// Queue 返回候选队列的副本。
func (s *Session) Queue() []domain.Room { return append([]domain.Room(nil), s.queue...) }

// History 返回决策历史的副本，最近的在最后。
func (s *Session) History() []domain.Room { return append([]domain.Room(nil), s.history...) }

// CanUndo 历史非空即可撤销。
func (s *Session) CanUndo() bool { return len(s.history) > 0 }

// Filters 返回当前过滤器。
func (s *Session) Filters() (UrgencyFilter, TypeFilter) { return s.urgency, s.typ }

// Advance 消费队首房间：移入历史、分类并生成通知。
// 会话已耗尽时返回 ErrInvalidOperation，方向非法时返回 ErrInvalidDirection，两种情况都不修改状态。
func (s *Session) Advance(direction Direction) (AdvanceResult, error) {
	if direction != DirectionLeft && direction != DirectionRight {
		return AdvanceResult{}, ErrInvalidDirection
	}
	if len(s.queue) == 0 {
		return AdvanceResult{}, ErrInvalidOperation
	}

	head := s.queue[0]
	s.queue = s.queue[1:]
	s.history = append(s.history, head)

	outcome := Classify(head, direction)
	return AdvanceResult{
		Room:         head,
		Direction:    direction,
		Outcome:      outcome,
		Notification: Dispatch(head, outcome),
	}, nil
}

// Undo 把最近一次决策的房间放回队首（不是原排序位置）。历史为空时返回 false。
func (s *Session) Undo() (domain.Room, bool) {
	if len(s.history) == 0 {
		return domain.Room{}, false
	}
	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]

	queue := make([]domain.Room, 0, len(s.queue)+1)
	queue = append(queue, last)
	s.queue = append(queue, s.queue...)
	return last, true
}

// ChangeFilter 用新的过滤器对完整集合重新推导队列，并清空决策历史。
func (s *Session) ChangeFilter(urgency UrgencyFilter, typ TypeFilter) {
	s.urgency = ParseUrgencyFilter(string(urgency))
	s.typ = ParseTypeFilter(string(typ))
	s.queue = DeriveCandidates(s.rooms, s.urgency, s.typ, s.clock())
	s.history = nil
}

// Snapshot 导出可持久化的会话快照。
func (s *Session) Snapshot() domain.SessionState {
	return domain.SessionState{
		ID:         s.id,
		Urgency:    string(s.urgency),
		Type:       string(s.typ),
		QueueIDs:   roomIDs(s.queue),
		HistoryIDs: roomIDs(s.history),
		CreatedAt:  s.created,
		UpdatedAt:  s.clock(),
	}
}

func roomIDs(rooms []domain.Room) []string {
	ids := make([]string, len(rooms))
	for i, room := range rooms {
		ids[i] = room.ID
	}
	return ids
}
