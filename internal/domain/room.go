package domain

import "time"

// RoomType 表示房间类别，创建后不可更改。
type RoomType string

const (
	RoomTypeEvent   RoomType = "EVENT"   // 休闲活动、聚会
	RoomTypeProject RoomType = "PROJECT" // 协作项目（短片、创业等）
)

// Valid 判断是否为已知的房间类别。
func (t RoomType) Valid() bool {
	return t == RoomTypeEvent || t == RoomTypeProject
}

// RoleRequirement 描述项目房间中某个角色的需求人数和已填补人数。
// Filled <= Required 是约定，不做强制校验。
type RoleRequirement struct {
	Role     string `json:"role"`
	Required int    `json:"required"`
	Filled   int    `json:"filled"`
}

// Recommendation 是外部推荐服务给出的分数 (0-100) 和理由，本服务只读取不计算。
type Recommendation struct {
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

// InactivityPolicy 项目房间的不活跃踢出策略。
type InactivityPolicy struct {
	Enabled      bool `json:"enabled"`
	TimeoutHours int  `json:"timeout_hours"` // 24, 36 或 48
}

// 允许的不活跃超时时长（小时）
var AllowedInactivityTimeouts = []int{24, 36, 48}

// Room 表示一个可加入的校园活动或项目。
type Room struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	Type             RoomType          `json:"type"`
	BannerURL        string            `json:"banner_url,omitempty"`
	Description      string            `json:"description"`
	Location         string            `json:"location"`
	DateTime         time.Time         `json:"date_time"`
	University       string            `json:"university,omitempty"`
	CreatorID        string            `json:"creator_id"`
	CreatorName      string            `json:"creator_name"`
	CreatorAvatar    string            `json:"creator_avatar,omitempty"`
	Tags             []string          `json:"tags"`
	IsUrgent         bool              `json:"is_urgent"`
	MaxMembers       int               `json:"max_members"`
	CurrentMembers   int               `json:"current_members"`
	RoleRequirements []RoleRequirement `json:"role_requirements,omitempty"`
	QuizRequired     bool              `json:"quiz_required"`
	AutoAccept       bool              `json:"auto_accept"`
	InactivityPolicy *InactivityPolicy `json:"inactivity_policy,omitempty"`
	Recommendation   *Recommendation   `json:"ai_recommendation,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
}

// Score 返回推荐分数，没有推荐信息时视为 0。
func (r *Room) Score() int {
	if r.Recommendation == nil {
		return 0
	}
	return r.Recommendation.Score
}
