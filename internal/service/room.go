package service

import (
	"context"
	"errors"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/padmeamd/uroom/internal/domain"
	"github.com/padmeamd/uroom/internal/repository"
)

// CreateRoomInput 是创建房间的请求数据
type CreateRoomInput struct {
	Title            string                   `json:"title" validate:"required,max=80"`
	Type             domain.RoomType          `json:"type" validate:"required,oneof=EVENT PROJECT"`
	BannerURL        string                   `json:"banner_url" validate:"omitempty,url"`
	Description      string                   `json:"description" validate:"max=200"`
	Location         string                   `json:"location" validate:"required"`
	DateTime         time.Time                `json:"date_time" validate:"required"`
	Tags             []string                 `json:"tags" validate:"dive,required"`
	IsUrgent         bool                     `json:"is_urgent"`
	MaxMembers       int                      `json:"max_members" validate:"min=2,max=20"`
	RoleRequirements []domain.RoleRequirement `json:"role_requirements"`
	QuizRequired     bool                     `json:"quiz_required"`
	AutoAccept       *bool                    `json:"auto_accept"`
	InactivityPolicy *domain.InactivityPolicy `json:"inactivity_policy"`
}

// TagCount 标签及使用它的房间数
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// RoomService 负责房间目录相关的业务逻辑。
type RoomService struct {
	roomRepo repository.RoomRepository
	userRepo repository.UserRepository
	validate *validator.Validate
	now      func() time.Time
}

// NewRoomService 创建 RoomService 实例。
func NewRoomService(roomRepo repository.RoomRepository, userRepo repository.UserRepository) *RoomService {
	if roomRepo == nil {
		panic("RoomRepository cannot be nil for RoomService")
	}
	if userRepo == nil {
		panic("UserRepository cannot be nil for RoomService")
	}
	return &RoomService{
		roomRepo: roomRepo,
		userRepo: userRepo,
		validate: newValidator(),
		now:      time.Now,
	}
}

// ListRooms 返回全部房间
func (s *RoomService) ListRooms(ctx context.Context) ([]domain.Room, error) {
	rooms, err := s.roomRepo.ListRooms(ctx)
	if err != nil {
		logrus.WithError(err).Error("ListRooms: Repository error")
		return nil, ErrInternalServer
	}
	return rooms, nil
}

// FindRoomByID 根据 ID 查找房间
func (s *RoomService) FindRoomByID(ctx context.Context, roomID string) (*domain.Room, error) {
	logCtx := logrus.WithField("room_id", roomID)
	room, err := s.roomRepo.FindByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			logCtx.Debug("FindRoomByID: Room not found")
			return nil, ErrRoomNotFound
		}
		logCtx.WithError(err).Error("FindRoomByID: Repository error")
		return nil, ErrInternalServer
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// SearchRooms 按标题或标签做不区分大小写的包含匹配，空查询返回全部房间
func (s *RoomService) SearchRooms(ctx context.Context, query string) ([]domain.Room, error) {
	rooms, err := s.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return rooms, nil
	}
	matched := make([]domain.Room, 0, len(rooms))
	for _, room := range rooms {
		if strings.Contains(strings.ToLower(room.Title), q) ||
			slices.ContainsFunc(room.Tags, func(tag string) bool { return strings.Contains(strings.ToLower(tag), q) }) {
			matched = append(matched, room)
		}
	}
	return matched, nil
}

// TrendingTags 按使用房间数降序返回标签，同数量按字母序。limit <= 0 表示不限制。
func (s *RoomService) TrendingTags(ctx context.Context, limit int) ([]TagCount, error) {
	rooms, err := s.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	counts := map[string]int{}
	for _, room := range rooms {
		seen := map[string]bool{}
		for _, tag := range room.Tags {
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			counts[tag]++
		}
	}
	tags := make([]TagCount, 0, len(counts))
	for tag, n := range counts {
		tags = append(tags, TagCount{Tag: tag, Count: n})
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Count != tags[j].Count {
			return tags[i].Count > tags[j].Count
		}
		return tags[i].Tag < tags[j].Tag
	})
	if limit > 0 && len(tags) > limit {
		tags = tags[:limit]
	}
	return tags, nil
}

// CreateRoom 校验输入并创建房间，创建者计为第一位成员。
func (s *RoomService) CreateRoom(ctx context.Context, creatorID string, in CreateRoomInput) (*domain.Room, error) {
	logCtx := logrus.WithFields(logrus.Fields{"creator_id": creatorID, "title": in.Title})

	in.Title = strings.TrimSpace(in.Title)
	in.Location = strings.TrimSpace(in.Location)
	in.Description = strings.TrimSpace(in.Description)
	if err := s.validateRoom(in); err != nil {
		logCtx.WithError(err).Debug("CreateRoom: Invalid input")
		return nil, err
	}

	room := &domain.Room{
		ID:               uuid.NewString(),
		Title:            in.Title,
		Type:             in.Type,
		BannerURL:        in.BannerURL,
		Description:      in.Description,
		Location:         in.Location,
		DateTime:         in.DateTime.UTC(),
		CreatorID:        creatorID,
		CreatorName:      creatorID,
		Tags:             in.Tags,
		IsUrgent:         in.IsUrgent,
		MaxMembers:       in.MaxMembers,
		CurrentMembers:   1,
		RoleRequirements: in.RoleRequirements,
		AutoAccept:       in.Type == domain.RoomTypeEvent,
		CreatedAt:        s.now().UTC(),
	}
	if room.Tags == nil {
		room.Tags = []string{}
	}
	if in.AutoAccept != nil {
		room.AutoAccept = *in.AutoAccept
	}
	if in.Type == domain.RoomTypeProject {
		room.QuizRequired = in.QuizRequired
		room.InactivityPolicy = in.InactivityPolicy
	}

	creator, err := s.userRepo.FindByID(ctx, creatorID)
	switch {
	case err == nil && creator != nil:
		room.CreatorName = creator.Name
		room.CreatorAvatar = creator.PhotoURL
		room.University = creator.University
	case errors.Is(err, repository.ErrUserNotFound):
		logCtx.Debug("CreateRoom: Creator profile not found, using id as name")
	case err != nil:
		logCtx.WithError(err).Error("CreateRoom: Failed to load creator profile")
		return nil, ErrInternalServer
	}

	if err := s.roomRepo.Save(ctx, room); err != nil {
		logCtx.WithError(err).Error("CreateRoom: Failed to save room")
		return nil, ErrInternalServer
	}
	logCtx.WithField("room_id", room.ID).Info("Room created successfully")
	return room, nil
}

func (s *RoomService) validateRoom(in CreateRoomInput) error {
	if err := s.validate.Struct(in); err != nil {
		return newValidationError(ErrInvalidRoom, fieldErrors(err))
	}
	fields := map[string]string{}
	if in.Type == domain.RoomTypeEvent {
		if in.QuizRequired {
			fields["quiz_required"] = "project_only"
		}
		if in.InactivityPolicy != nil {
			fields["inactivity_policy"] = "project_only"
		}
	}
	if p := in.InactivityPolicy; p != nil && p.Enabled && !slices.Contains(domain.AllowedInactivityTimeouts, p.TimeoutHours) {
		fields["inactivity_policy.timeout_hours"] = "oneof=24 36 48"
	}
	for i, rr := range in.RoleRequirements {
		if strings.TrimSpace(rr.Role) == "" || rr.Required < 1 || rr.Filled < 0 {
			fields["role_requirements"] = "invalid entry at " + strconv.Itoa(i)
			break
		}
	}
	if len(fields) > 0 {
		return newValidationError(ErrInvalidRoom, fields)
	}
	return nil
}
