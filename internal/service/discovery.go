package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/padmeamd/uroom/internal/discovery"
	"github.com/padmeamd/uroom/internal/domain"
	"github.com/padmeamd/uroom/internal/hub"
	"github.com/padmeamd/uroom/internal/repository"
	"github.com/padmeamd/uroom/internal/tasks"
)

// DefaultSessionTTL 会话快照在存储中的默认存活时间
const DefaultSessionTTL = 2 * time.Hour

// DiscoveryConfig 发现服务的可配置项
type DiscoveryConfig struct {
	SessionTTL     time.Duration
	SwipeThreshold float64
}

// SessionView 是会话对外展示的状态
type SessionView struct {
	ID          string                  `json:"id"`
	State       discovery.State         `json:"state"`
	Current     *domain.Room            `json:"current,omitempty"`
	Queue       []domain.Room           `json:"queue"`
	HistorySize int                     `json:"history_size"`
	CanUndo     bool                    `json:"can_undo"`
	Urgency     discovery.UrgencyFilter `json:"urgency"`
	Type        discovery.TypeFilter    `json:"type"`
}

// SwipeResult 一次滑动的结果和滑动后的会话状态
type SwipeResult struct {
	discovery.AdvanceResult
	Session SessionView `json:"session"`
}

// GestureResult 手势解析结果。Direction 为 none 时 Swipe 为空。
type GestureResult struct {
	Direction discovery.Direction      `json:"direction"`
	Swipe     *discovery.AdvanceResult `json:"swipe,omitempty"`
	Session   SessionView              `json:"session"`
}

// UndoResult 撤销结果。历史为空时 Restored 为 false。
type UndoResult struct {
	Restored     bool                    `json:"restored"`
	Room         *domain.Room            `json:"room,omitempty"`
	Notification *discovery.Notification `json:"notification,omitempty"`
	Session      SessionView             `json:"session"`
}

// DiscoveryOption 配置 DiscoveryService
type DiscoveryOption func(*DiscoveryService)

// WithDiscoveryClock 替换服务使用的时钟
func WithDiscoveryClock(now func() time.Time) DiscoveryOption {
	return func(s *DiscoveryService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithSessionIDGenerator 替换会话 ID 生成器
func WithSessionIDGenerator(gen func() string) DiscoveryOption {
	return func(s *DiscoveryService) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// DiscoveryService 负责发现会话的生命周期。会话快照保存在 SessionRepository 中，
// 每次操作都在该会话的锁内完成：读取快照、恢复、执行、写回。
type DiscoveryService struct {
	rooms     repository.RoomRepository
	sessions  repository.SessionRepository
	joiner    JoinRequester
	publisher Publisher
	cfg       DiscoveryConfig
	locks     *keyedMutex
	now       func() time.Time
	newID     func() string
}

// NewDiscoveryService 创建 DiscoveryService 实例
func NewDiscoveryService(rooms repository.RoomRepository, sessions repository.SessionRepository, joiner JoinRequester, publisher Publisher, cfg DiscoveryConfig, opts ...DiscoveryOption) *DiscoveryService {
	if rooms == nil {
		panic("RoomRepository cannot be nil for DiscoveryService")
	}
	if sessions == nil {
		panic("SessionRepository cannot be nil for DiscoveryService")
	}
	if joiner == nil {
		panic("JoinRequester cannot be nil for DiscoveryService")
	}
	if publisher == nil {
		panic("Publisher cannot be nil for DiscoveryService")
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}
	if cfg.SwipeThreshold <= 0 {
		cfg.SwipeThreshold = discovery.DefaultSwipeThreshold
	}
	s := &DiscoveryService{
		rooms:     rooms,
		sessions:  sessions,
		joiner:    joiner,
		publisher: publisher,
		cfg:       cfg,
		locks:     newKeyedMutex(),
		now:       time.Now,
		newID:     func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartSession 为用户创建新的发现会话，过滤器为 all/all
func (s *DiscoveryService) StartSession(ctx context.Context, userID string) (*SessionView, error) {
	id := s.newID()
	logCtx := logrus.WithFields(logrus.Fields{"session_id": id, "user_id": userID})

	sess, err := discovery.NewSession(ctx, id, s.rooms, discovery.WithClock(s.now))
	if err != nil {
		logCtx.WithError(err).Error("Failed to build discovery session")
		return nil, ErrInternalServer
	}
	state := sess.Snapshot()
	state.UserID = userID
	if err := s.sessions.Save(ctx, &state, s.cfg.SessionTTL); err != nil {
		logCtx.WithError(err).Error("Failed to save new discovery session")
		return nil, ErrInternalServer
	}
	logCtx.WithField("queue_len", len(state.QueueIDs)).Info("Discovery session started")
	view := newSessionView(sess)
	return &view, nil
}

// GetSession 返回会话当前状态
func (s *DiscoveryService) GetSession(ctx context.Context, id string) (*SessionView, error) {
	var view SessionView
	err := s.withSession(ctx, id, false, func(sess *discovery.Session, _ *domain.SessionState) error {
		view = newSessionView(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// Swipe 对队首房间做出决策。自动加入和待审批的决策会提交加入请求，
// 通知同时推送到会话频道。
func (s *DiscoveryService) Swipe(ctx context.Context, id, direction string) (*SwipeResult, error) {
	dir, err := discovery.ParseDirection(direction)
	if err != nil {
		return nil, ErrInvalidDirection
	}
	var result SwipeResult
	err = s.withSession(ctx, id, true, func(sess *discovery.Session, state *domain.SessionState) error {
		res, err := s.advance(ctx, sess, state, dir)
		if err != nil {
			return err
		}
		result = SwipeResult{AdvanceResult: res, Session: newSessionView(sess)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.publish(id, EventNotification, result.Notification)
	return &result, nil
}

// Gesture 把拖动偏移解析为方向，超过阈值时执行一次滑动
func (s *DiscoveryService) Gesture(ctx context.Context, id string, offsetX float64) (*GestureResult, error) {
	dir := discovery.ResolveGesture(offsetX, s.cfg.SwipeThreshold)
	result := GestureResult{Direction: dir}
	err := s.withSession(ctx, id, dir != discovery.DirectionNone, func(sess *discovery.Session, state *domain.SessionState) error {
		if dir != discovery.DirectionNone {
			res, err := s.advance(ctx, sess, state, dir)
			if err != nil {
				return err
			}
			result.Swipe = &res
		}
		result.Session = newSessionView(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if result.Swipe != nil {
		s.publish(id, EventNotification, result.Swipe.Notification)
	}
	return &result, nil
}

// Undo 撤销最近一次决策。历史为空时返回 Restored=false，不是错误。
// 撤销不会撤回已经提交的加入请求。
func (s *DiscoveryService) Undo(ctx context.Context, id string) (*UndoResult, error) {
	var result UndoResult
	err := s.withSession(ctx, id, true, func(sess *discovery.Session, _ *domain.SessionState) error {
		if room, ok := sess.Undo(); ok {
			n := discovery.UndoNotification(room)
			result.Restored = true
			result.Room = &room
			result.Notification = &n
		}
		result.Session = newSessionView(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if result.Notification != nil {
		s.publish(id, EventNotification, *result.Notification)
	}
	return &result, nil
}

// ChangeFilter 切换过滤器，重建队列并清空历史
func (s *DiscoveryService) ChangeFilter(ctx context.Context, id, urgency, roomType string) (*SessionView, error) {
	var view SessionView
	err := s.withSession(ctx, id, true, func(sess *discovery.Session, _ *domain.SessionState) error {
		sess.ChangeFilter(discovery.ParseUrgencyFilter(urgency), discovery.ParseTypeFilter(roomType))
		view = newSessionView(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.publish(id, EventSession, view)
	return &view, nil
}

// EndSession 删除会话
func (s *DiscoveryService) EndSession(ctx context.Context, id string) error {
	unlock := s.locks.Lock(id)
	defer unlock()
	if err := s.sessions.Delete(ctx, id); err != nil {
		logrus.WithField("session_id", id).WithError(err).Error("Failed to delete discovery session")
		return ErrInternalServer
	}
	logrus.WithField("session_id", id).Info("Discovery session ended")
	return nil
}

// withSession 在会话锁内恢复会话并执行 fn，save 为 true 时把结果写回存储。
func (s *DiscoveryService) withSession(ctx context.Context, id string, save bool, fn func(*discovery.Session, *domain.SessionState) error) error {
	logCtx := logrus.WithField("session_id", id)
	unlock := s.locks.Lock(id)
	defer unlock()

	state, err := s.sessions.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		logCtx.WithError(err).Error("Failed to load discovery session")
		return ErrInternalServer
	}
	rooms, err := s.rooms.ListRooms(ctx)
	if err != nil {
		logCtx.WithError(err).Error("Failed to load rooms for discovery session")
		return ErrInternalServer
	}

	sess := discovery.Restore(*state, rooms, discovery.WithClock(s.now))
	if err := fn(sess, state); err != nil {
		return err
	}
	if !save {
		return nil
	}
	next := sess.Snapshot()
	next.UserID = state.UserID
	if err := s.sessions.Save(ctx, &next, s.cfg.SessionTTL); err != nil {
		logCtx.WithError(err).Error("Failed to save discovery session")
		return ErrInternalServer
	}
	return nil
}

func (s *DiscoveryService) advance(ctx context.Context, sess *discovery.Session, state *domain.SessionState, dir discovery.Direction) (discovery.AdvanceResult, error) {
	res, err := sess.Advance(dir)
	if err != nil {
		switch {
		case errors.Is(err, discovery.ErrInvalidOperation):
			return res, ErrSessionExhausted
		case errors.Is(err, discovery.ErrInvalidDirection):
			return res, ErrInvalidDirection
		}
		return res, fmt.Errorf("advance session %s: %w", sess.ID(), err)
	}

	logCtx := logrus.WithFields(logrus.Fields{
		"session_id": sess.ID(),
		"room_id":    res.Room.ID,
		"direction":  res.Direction,
		"outcome":    res.Outcome,
	})
	if res.Outcome == discovery.OutcomeAutoJoined || res.Outcome == discovery.OutcomePendingApproval {
		payload := tasks.JoinRequestPayload{
			RequestID:   s.newID(),
			RoomID:      res.Room.ID,
			ApplicantID: state.UserID,
			Outcome:     string(res.Outcome),
		}
		// 加入请求失败不影响滑动结果，通知照常返回
		if err := s.joiner.RequestJoin(ctx, payload); err != nil {
			logCtx.WithError(err).Error("Failed to submit join request")
		}
	}
	logCtx.Info("Room decided")
	return res, nil
}

func (s *DiscoveryService) publish(sessionID, eventType string, data interface{}) {
	if err := s.publisher.Publish(hub.SessionChannel(sessionID), eventType, data); err != nil {
		logrus.WithField("session_id", sessionID).WithError(err).Warn("Failed to publish session event")
	}
}

func newSessionView(sess *discovery.Session) SessionView {
	urgency, typ := sess.Filters()
	view := SessionView{
		ID:          sess.ID(),
		State:       sess.State(),
		Queue:       sess.Queue(),
		HistorySize: len(sess.History()),
		CanUndo:     sess.CanUndo(),
		Urgency:     urgency,
		Type:        typ,
	}
	if view.Queue == nil {
		view.Queue = []domain.Room{}
	}
	if room, ok := sess.Current(); ok {
		view.Current = &room
	}
	return view
}
