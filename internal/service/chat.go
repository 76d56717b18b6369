package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/padmeamd/uroom/internal/domain"
	"github.com/padmeamd/uroom/internal/hub"
	"github.com/padmeamd/uroom/internal/repository"
)

// MaxMessageLength 单条消息的最大字符数
const MaxMessageLength = 1000

// ChatService 负责房间群聊。消息只在本地存储并推送给在线订阅者。
type ChatService struct {
	roomRepo    repository.RoomRepository
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	publisher   Publisher
	now         func() time.Time
}

// NewChatService 创建 ChatService 实例
func NewChatService(roomRepo repository.RoomRepository, messageRepo repository.MessageRepository, userRepo repository.UserRepository, publisher Publisher) *ChatService {
	if roomRepo == nil || messageRepo == nil || userRepo == nil {
		panic("repositories cannot be nil for ChatService")
	}
	if publisher == nil {
		panic("Publisher cannot be nil for ChatService")
	}
	return &ChatService{
		roomRepo:    roomRepo,
		messageRepo: messageRepo,
		userRepo:    userRepo,
		publisher:   publisher,
		now:         time.Now,
	}
}

// ListConversations 返回有聊天记录的房间及其最后一条消息
func (s *ChatService) ListConversations(ctx context.Context) ([]domain.Conversation, error) {
	ids, err := s.messageRepo.RoomIDs(ctx)
	if err != nil {
		logrus.WithError(err).Error("ListConversations: Failed to list chat rooms")
		return nil, ErrInternalServer
	}
	convs := make([]domain.Conversation, 0, len(ids))
	for _, id := range ids {
		logCtx := logrus.WithField("room_id", id)
		room, err := s.roomRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrRoomNotFound) {
				logCtx.Warn("ListConversations: Chat references a missing room, skipped")
				continue
			}
			logCtx.WithError(err).Error("ListConversations: Failed to load room")
			return nil, ErrInternalServer
		}
		msgs, err := s.messageRepo.ListByRoom(ctx, id)
		if err != nil {
			logCtx.WithError(err).Error("ListConversations: Failed to load messages")
			return nil, ErrInternalServer
		}
		conv := domain.Conversation{
			RoomID:      room.ID,
			RoomTitle:   room.Title,
			RoomType:    room.Type,
			MemberCount: room.CurrentMembers,
		}
		if n := len(msgs); n > 0 {
			last := msgs[n-1]
			conv.LastMessage = &last
		}
		convs = append(convs, conv)
	}
	return convs, nil
}

// ListMessages 按时间顺序返回房间消息
func (s *ChatService) ListMessages(ctx context.Context, roomID string) ([]domain.Message, error) {
	if err := s.ensureRoom(ctx, roomID); err != nil {
		return nil, err
	}
	msgs, err := s.messageRepo.ListByRoom(ctx, roomID)
	if err != nil {
		logrus.WithField("room_id", roomID).WithError(err).Error("ListMessages: Repository error")
		return nil, ErrInternalServer
	}
	return msgs, nil
}

// SendMessage 追加一条消息并推送到房间频道
func (s *ChatService) SendMessage(ctx context.Context, roomID, senderID, text string) (*domain.Message, error) {
	logCtx := logrus.WithFields(logrus.Fields{"room_id": roomID, "sender_id": senderID})
	text = strings.TrimSpace(text)
	switch {
	case text == "":
		return nil, newValidationError(ErrInvalidMessage, map[string]string{"text": "required"})
	case utf8.RuneCountInString(text) > MaxMessageLength:
		return nil, newValidationError(ErrInvalidMessage, map[string]string{"text": "max=1000"})
	}
	if err := s.ensureRoom(ctx, roomID); err != nil {
		return nil, err
	}

	msg := &domain.Message{
		ID:         uuid.NewString(),
		RoomID:     roomID,
		SenderID:   senderID,
		SenderName: senderID,
		Text:       text,
		CreatedAt:  s.now().UTC(),
	}
	sender, err := s.userRepo.FindByID(ctx, senderID)
	switch {
	case err == nil && sender != nil:
		msg.SenderName = sender.Name
		msg.SenderAvatar = sender.PhotoURL
	case err != nil && !errors.Is(err, repository.ErrUserNotFound):
		logCtx.WithError(err).Error("SendMessage: Failed to load sender profile")
		return nil, ErrInternalServer
	}

	if err := s.messageRepo.Append(ctx, msg); err != nil {
		logCtx.WithError(err).Error("SendMessage: Failed to append message")
		return nil, ErrInternalServer
	}
	if err := s.publisher.Publish(hub.ChatChannel(roomID), EventMessage, msg); err != nil {
		logCtx.WithError(err).Warn("SendMessage: Failed to publish message")
	}
	logCtx.WithField("message_id", msg.ID).Debug("Message sent")
	return msg, nil
}

func (s *ChatService) ensureRoom(ctx context.Context, roomID string) error {
	if _, err := s.roomRepo.FindByID(ctx, roomID); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return ErrRoomNotFound
		}
		logrus.WithField("room_id", roomID).WithError(err).Error("ChatService: Failed to load room")
		return ErrInternalServer
	}
	return nil
}
