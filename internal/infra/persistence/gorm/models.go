package gormpersistence

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/padmeamd/uroom/internal/domain"
)

// RoomRecord 是 rooms 表的 GORM 模型。列表类字段以 JSON 列存储。
type RoomRecord struct {
	Seq                    uint      `gorm:"primaryKey;autoIncrement"` // 保持插入顺序
	ID                     string    `gorm:"column:room_id;size:64;uniqueIndex;not null"`
	Title                  string    `gorm:"size:191;not null"`
	Type                   string    `gorm:"size:16;index;not null"`
	BannerURL              string    `gorm:"size:512"`
	Description            string    `gorm:"size:512"`
	Location               string    `gorm:"size:191"`
	DateTime               time.Time `gorm:"index;not null"`
	University             string    `gorm:"size:191"`
	CreatorID              string    `gorm:"size:64;index"`
	CreatorName            string    `gorm:"size:191"`
	CreatorAvatar          string    `gorm:"size:512"`
	Tags                   datatypes.JSON
	IsUrgent               bool `gorm:"index"`
	MaxMembers             int
	CurrentMembers         int
	RoleRequirements       datatypes.JSON
	QuizRequired           bool
	AutoAccept             bool
	InactivityEnabled      bool
	InactivityTimeoutHours int
	RecommendationScore    *int
	RecommendationReasons  datatypes.JSON
	CreatedAt              time.Time `gorm:"autoCreateTime"`
	UpdatedAt              time.Time `gorm:"autoUpdateTime"`
}

func (RoomRecord) TableName() string { return "rooms" }

// QuizQuestionRecord 是 quiz_questions 表的 GORM 模型。
type QuizQuestionRecord struct {
	ID       string `gorm:"primaryKey;size:64"`
	RoomID   string `gorm:"size:64;index;not null"`
	Position int    `gorm:"not null"`
	Type     string `gorm:"size:32;not null"`
	Question string `gorm:"size:512;not null"`
	Options  datatypes.JSON
	Required bool
}

func (QuizQuestionRecord) TableName() string { return "quiz_questions" }

// MessageRecord 是 messages 表的 GORM 模型。
type MessageRecord struct {
	ID           string    `gorm:"primaryKey;size:64"`
	RoomID       string    `gorm:"size:64;index;not null"`
	SenderID     string    `gorm:"size:64;not null"`
	SenderName   string    `gorm:"size:191"`
	SenderAvatar string    `gorm:"size:512"`
	Text         string    `gorm:"type:text;not null"`
	CreatedAt    time.Time `gorm:"index;not null"`
}

func (MessageRecord) TableName() string { return "messages" }

// UserRecord 是 users 表的 GORM 模型。
type UserRecord struct {
	ID           string `gorm:"primaryKey;size:64"`
	Name         string `gorm:"size:191;not null"`
	Email        string `gorm:"size:191;index"`
	University   string `gorm:"size:191"`
	Age          int
	PhotoURL     string `gorm:"size:512"`
	Interests    datatypes.JSON
	Skills       datatypes.JSON
	About        string    `gorm:"size:1024"`
	PortfolioURL string    `gorm:"size:512"`
	InstagramURL string    `gorm:"size:512"`
	GithubURL    string    `gorm:"size:512"`
	LinkedinURL  string    `gorm:"size:512"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (UserRecord) TableName() string { return "users" }

// JoinRequestRecord 是 join_requests 表的 GORM 模型。
type JoinRequestRecord struct {
	ID          string `gorm:"primaryKey;size:64"`
	RoomID      string `gorm:"size:64;index;not null"`
	ApplicantID string `gorm:"size:64;index;not null"`
	Outcome     string `gorm:"size:32;not null"`
	Status      string `gorm:"size:16;index;not null"`
	Answers     datatypes.JSON
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (JoinRequestRecord) TableName() string { return "join_requests" }

// AllModels 供迁移使用。
func AllModels() []interface{} {
	return []interface{}{&RoomRecord{}, &QuizQuestionRecord{}, &MessageRecord{}, &UserRecord{}, &JoinRequestRecord{}}
}

// --- 转换 ---

func toJSON(v interface{}) (datatypes.JSON, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func fromJSON(data datatypes.JSON, v interface{}) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	return json.Unmarshal([]byte(data), v)
}

func newRoomRecord(room *domain.Room) (*RoomRecord, error) {
	rec := &RoomRecord{
		ID:             room.ID,
		Title:          room.Title,
		Type:           string(room.Type),
		BannerURL:      room.BannerURL,
		Description:    room.Description,
		Location:       room.Location,
		DateTime:       room.DateTime,
		University:     room.University,
		CreatorID:      room.CreatorID,
		CreatorName:    room.CreatorName,
		CreatorAvatar:  room.CreatorAvatar,
		IsUrgent:       room.IsUrgent,
		MaxMembers:     room.MaxMembers,
		CurrentMembers: room.CurrentMembers,
		QuizRequired:   room.QuizRequired,
		AutoAccept:     room.AutoAccept,
		CreatedAt:      room.CreatedAt,
	}
	var err error
	if rec.Tags, err = toJSON(room.Tags); err != nil {
		return nil, fmt.Errorf("encode tags: %w", err)
	}
	if rec.RoleRequirements, err = toJSON(room.RoleRequirements); err != nil {
		return nil, fmt.Errorf("encode role requirements: %w", err)
	}
	if p := room.InactivityPolicy; p != nil {
		rec.InactivityEnabled = p.Enabled
		rec.InactivityTimeoutHours = p.TimeoutHours
	}
	if rc := room.Recommendation; rc != nil {
		score := rc.Score
		rec.RecommendationScore = &score
		if rec.RecommendationReasons, err = toJSON(rc.Reasons); err != nil {
			return nil, fmt.Errorf("encode recommendation reasons: %w", err)
		}
	}
	return rec, nil
}

func (rec *RoomRecord) toDomain() (domain.Room, error) {
	room := domain.Room{
		ID:             rec.ID,
		Title:          rec.Title,
		Type:           domain.RoomType(rec.Type),
		BannerURL:      rec.BannerURL,
		Description:    rec.Description,
		Location:       rec.Location,
		DateTime:       rec.DateTime,
		University:     rec.University,
		CreatorID:      rec.CreatorID,
		CreatorName:    rec.CreatorName,
		CreatorAvatar:  rec.CreatorAvatar,
		IsUrgent:       rec.IsUrgent,
		MaxMembers:     rec.MaxMembers,
		CurrentMembers: rec.CurrentMembers,
		QuizRequired:   rec.QuizRequired,
		AutoAccept:     rec.AutoAccept,
		CreatedAt:      rec.CreatedAt,
	}
	if err := fromJSON(rec.Tags, &room.Tags); err != nil {
		return room, fmt.Errorf("decode tags of room %s: %w", rec.ID, err)
	}
	if err := fromJSON(rec.RoleRequirements, &room.RoleRequirements); err != nil {
		return room, fmt.Errorf("decode role requirements of room %s: %w", rec.ID, err)
	}
	if rec.InactivityEnabled || rec.InactivityTimeoutHours > 0 {
		room.InactivityPolicy = &domain.InactivityPolicy{Enabled: rec.InactivityEnabled, TimeoutHours: rec.InactivityTimeoutHours}
	}
	if rec.RecommendationScore != nil {
		rc := &domain.Recommendation{Score: *rec.RecommendationScore}
		if err := fromJSON(rec.RecommendationReasons, &rc.Reasons); err != nil {
			return room, fmt.Errorf("decode recommendation of room %s: %w", rec.ID, err)
		}
		room.Recommendation = rc
	}
	return room, nil
}
