// Package discovery 实现房间发现会话：候选列表的过滤排序、滑动决策状态机、
// 决策分类与通知派发。包内不做任何 I/O，房间数据由 RoomProvider 注入。
package discovery

import (
	"slices"
	"strings"
	"time"

	"github.com/padmeamd/uroom/internal/domain"
)

// UrgencyFilter 是基于时间窗口的紧急程度过滤器。
type UrgencyFilter string

const (
	UrgencyAll          UrgencyFilter = "all"
	UrgencyThisWeek     UrgencyFilter = "this-week"
	UrgencyQuickProject UrgencyFilter = "quick-project"
	UrgencyStartingSoon UrgencyFilter = "starting-soon"
)

// TypeFilter 按房间类别过滤。
type TypeFilter string

const (
	TypeAll     TypeFilter = "all"
	TypeEvent   TypeFilter = TypeFilter(domain.RoomTypeEvent)
	TypeProject TypeFilter = TypeFilter(domain.RoomTypeProject)
)

const day = 24 * time.Hour

// ParseUrgencyFilter 解析紧急过滤器，未知值一律退化为 all，不返回错误。
func ParseUrgencyFilter(s string) UrgencyFilter {
	switch f := UrgencyFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case UrgencyThisWeek, UrgencyQuickProject, UrgencyStartingSoon:
		return f
	default:
		return UrgencyAll
	}
}

// ParseTypeFilter 解析类别过滤器，未知值退化为 all。
func ParseTypeFilter(s string) TypeFilter {
	switch f := TypeFilter(strings.ToUpper(strings.TrimSpace(s))); f {
	case TypeEvent, TypeProject:
		return f
	default:
		return TypeAll
	}
}

// DeriveCandidates 从完整房间集合推导出有序的候选列表。
// 依次应用类别过滤、紧急过滤（相对 now），再按 (紧急优先, 推荐分数降序) 稳定排序。
// 返回新切片，不修改 rooms。
func DeriveCandidates(rooms []domain.Room, urgency UrgencyFilter, typ TypeFilter, now time.Time) []domain.Room {
	out := make([]domain.Room, 0, len(rooms))
	for _, room := range rooms {
		if !matchesType(room, typ) || !matchesUrgency(room, urgency, now) {
			continue
		}
		out = append(out, room)
	}

	slices.SortStableFunc(out, compareCandidates)
	return out
}

func matchesType(room domain.Room, typ TypeFilter) bool {
	switch typ {
	case TypeEvent, TypeProject:
		return room.Type == domain.RoomType(typ)
	default:
		return true
	}
}

func matchesUrgency(room domain.Room, urgency UrgencyFilter, now time.Time) bool {
	switch urgency {
	case UrgencyThisWeek:
		return !room.DateTime.After(now.Add(7 * day))
	case UrgencyQuickProject:
		return room.Type == domain.RoomTypeProject && !room.DateTime.After(now.Add(3*day))
	case UrgencyStartingSoon:
		return !room.DateTime.After(now.Add(day))
	default:
		return true
	}
}

// compareCandidates: 紧急的排前面，其次分数高的排前面，相等返回 0 以保持原顺序。
func compareCandidates(a, b domain.Room) int {
	if a.IsUrgent != b.IsUrgent {
		if a.IsUrgent {
			return -1
		}
		return 1
	}
	return b.Score() - a.Score()
}
