package discovery

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/padmeamd/uroom/internal/domain"
)

func sampleRooms() []domain.Room {
	return []domain.Room{
		room("film", domain.RoomTypeProject, 3*day, true, 95),
		room("boardgames", domain.RoomTypeEvent, day, true, 88),
		room("startup", domain.RoomTypeProject, 5*day, false, 82),
		room("photo", domain.RoomTypeEvent, 3*day, false, 91),
		room("hackathon", domain.RoomTypeProject, day, true, 78),
		room("coffee", domain.RoomTypeEvent, 3*day, false, 85),
		room("faraway", domain.RoomTypeEvent, 10*day, false, 99),
	}
}

func TestDeriveCandidates_AllSortsUrgentThenScore(t *testing.T) {
	got := DeriveCandidates(sampleRooms(), UrgencyAll, TypeAll, testNow)
	want := []string{"film", "boardgames", "hackathon", "faraway", "photo", "coffee", "startup"}
	if diff := cmp.Diff(want, ids(got)); diff != "" {
		t.Errorf("candidate order mismatch (-want +got):\n%s", diff)
	}
}

func TestDeriveCandidates_Filters(t *testing.T) {
	tests := []struct {
		name    string
		urgency UrgencyFilter
		typ     TypeFilter
		want    []string
	}{
		{"projects only", UrgencyAll, TypeProject, []string{"film", "hackathon", "startup"}},
		{"events only", UrgencyAll, TypeEvent, []string{"boardgames", "faraway", "photo", "coffee"}},
		{"this week", UrgencyThisWeek, TypeAll, []string{"film", "boardgames", "hackathon", "photo", "coffee", "startup"}},
		{"quick project", UrgencyQuickProject, TypeAll, []string{"film", "hackathon"}},
		{"quick project ignores event type filter", UrgencyQuickProject, TypeEvent, []string{}},
		{"starting soon", UrgencyStartingSoon, TypeAll, []string{"boardgames", "hackathon"}},
		{"starting soon events", UrgencyStartingSoon, TypeEvent, []string{"boardgames"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveCandidates(sampleRooms(), tt.urgency, tt.typ, testNow)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestDeriveCandidates_NeverViolatesWindowOrType(t *testing.T) {
	windows := map[UrgencyFilter]time.Duration{
		UrgencyThisWeek:     7 * day,
		UrgencyQuickProject: 3 * day,
		UrgencyStartingSoon: day,
	}
	for _, u := range []UrgencyFilter{UrgencyAll, UrgencyThisWeek, UrgencyQuickProject, UrgencyStartingSoon} {
		for _, typ := range []TypeFilter{TypeAll, TypeEvent, TypeProject} {
			for _, r := range DeriveCandidates(sampleRooms(), u, typ, testNow) {
				if typ != TypeAll {
					assert.Equal(t, domain.RoomType(typ), r.Type, "type filter %s violated by %s", typ, r.ID)
				}
				if w, ok := windows[u]; ok {
					assert.False(t, r.DateTime.After(testNow.Add(w)), "urgency %s violated by %s", u, r.ID)
				}
				if u == UrgencyQuickProject {
					assert.Equal(t, domain.RoomTypeProject, r.Type)
				}
			}
		}
	}
}

func TestDeriveCandidates_WindowBoundaryIsInclusive(t *testing.T) {
	rooms := []domain.Room{
		room("edge", domain.RoomTypeEvent, day, false, 0),
		room("past-edge", domain.RoomTypeEvent, day+time.Second, false, 0),
	}
	got := DeriveCandidates(rooms, UrgencyStartingSoon, TypeAll, testNow)
	assert.Equal(t, []string{"edge"}, ids(got))
}

func TestDeriveCandidates_StableForTies(t *testing.T) {
	rooms := []domain.Room{
		room("a", domain.RoomTypeEvent, day, false, 50),
		room("b", domain.RoomTypeEvent, day, false, 50),
		room("c", domain.RoomTypeEvent, day, false, 0), // 没有推荐分数视为 0
		room("d", domain.RoomTypeEvent, day, false, 50),
		room("e", domain.RoomTypeEvent, day, false, 0),
	}
	first := DeriveCandidates(rooms, UrgencyAll, TypeAll, testNow)
	assert.Equal(t, []string{"a", "b", "d", "c", "e"}, ids(first))

	second := DeriveCandidates(first, UrgencyAll, TypeAll, testNow)
	assert.Equal(t, ids(first), ids(second))
}

func TestDeriveCandidates_DoesNotMutateInput(t *testing.T) {
	rooms := sampleRooms()
	before := ids(rooms)
	_ = DeriveCandidates(rooms, UrgencyThisWeek, TypeProject, testNow)
	assert.Equal(t, before, ids(rooms))
}

func TestDeriveCandidates_Empty(t *testing.T) {
	got := DeriveCandidates(nil, UrgencyAll, TypeAll, testNow)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestParseFilters_UnknownValuesDegradeToAll(t *testing.T) {
	assert.Equal(t, UrgencyAll, ParseUrgencyFilter("next-year"))
	assert.Equal(t, UrgencyAll, ParseUrgencyFilter(""))
	assert.Equal(t, UrgencyThisWeek, ParseUrgencyFilter(" This-Week "))
	assert.Equal(t, TypeAll, ParseTypeFilter("WORKSHOP"))
	assert.Equal(t, TypeProject, ParseTypeFilter("project"))
	assert.Equal(t, TypeEvent, ParseTypeFilter("EVENT"))

	// 未解析的非法值直接传入时也不过滤
	got := DeriveCandidates(sampleRooms(), UrgencyFilter("bogus"), TypeFilter("bogus"), testNow)
	assert.Len(t, got, len(sampleRooms()))
}
