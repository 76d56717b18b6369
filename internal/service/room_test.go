package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/padmeamd/uroom/internal/domain"
	"github.com/padmeamd/uroom/internal/infra/persistence/memory"
	"github.com/padmeamd/uroom/internal/repository"
	"github.com/padmeamd/uroom/internal/repository/mocks"
	"github.com/padmeamd/uroom/internal/service"
)

func validEventInput() service.CreateRoomInput {
	return service.CreateRoomInput{
		Title:      "Sunset Volleyball",
		Type:       domain.RoomTypeEvent,
		Location:   "Santa Monica Beach",
		DateTime:   testNow.Add(48 * time.Hour),
		Tags:       []string{"Sports", "Outdoors"},
		MaxMembers: 10,
	}
}

func TestRoomService_CreateRoom_EventDefaults(t *testing.T) {
	roomRepo := new(mocks.RoomRepository)
	userRepo := new(mocks.UserRepository)
	svc := service.NewRoomService(roomRepo, userRepo)
	ctx := context.Background()

	userRepo.On("FindByID", ctx, "me").
		Return(&domain.User{ID: "me", Name: "Taylor Morgan", University: "UCLA", PhotoURL: "avatar"}, nil).Once()
	roomRepo.On("Save", ctx, mock.MatchedBy(func(r *domain.Room) bool {
		return r.ID != "" && r.CurrentMembers == 1 && r.AutoAccept && r.CreatorName == "Taylor Morgan"
	})).Return(nil).Once()

	room, err := svc.CreateRoom(ctx, "me", validEventInput())
	require.NoError(t, err)
	assert.Equal(t, "Sunset Volleyball", room.Title)
	assert.Equal(t, "UCLA", room.University)
	assert.Equal(t, "avatar", room.CreatorAvatar)
	assert.False(t, room.QuizRequired)
	assert.Nil(t, room.InactivityPolicy)
	roomRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestRoomService_CreateRoom_ProjectDefaults(t *testing.T) {
	roomRepo := new(mocks.RoomRepository)
	userRepo := new(mocks.UserRepository)
	svc := service.NewRoomService(roomRepo, userRepo)
	ctx := context.Background()

	in := validEventInput()
	in.Type = domain.RoomTypeProject
	in.QuizRequired = true
	in.InactivityPolicy = &domain.InactivityPolicy{Enabled: true, TimeoutHours: 36}

	userRepo.On("FindByID", ctx, "ghost").Return(nil, repository.ErrUserNotFound).Once()
	roomRepo.On("Save", ctx, mock.Anything).Return(nil).Once()

	room, err := svc.CreateRoom(ctx, "ghost", in)
	require.NoError(t, err)
	assert.False(t, room.AutoAccept)
	assert.True(t, room.QuizRequired)
	assert.Equal(t, 36, room.InactivityPolicy.TimeoutHours)
	assert.Equal(t, "ghost", room.CreatorName)
}

func TestRoomService_CreateRoom_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*service.CreateRoomInput)
		field  string
	}{
		{"missing title", func(in *service.CreateRoomInput) { in.Title = "   " }, "title"},
		{"long title", func(in *service.CreateRoomInput) { in.Title = strings.Repeat("x", 81) }, "title"},
		{"long description", func(in *service.CreateRoomInput) { in.Description = strings.Repeat("a", 201) }, "description"},
		{"missing location", func(in *service.CreateRoomInput) { in.Location = "" }, "location"},
		{"missing date", func(in *service.CreateRoomInput) { in.DateTime = time.Time{} }, "date_time"},
		{"bad type", func(in *service.CreateRoomInput) { in.Type = "PARTY" }, "type"},
		{"too few members", func(in *service.CreateRoomInput) { in.MaxMembers = 1 }, "max_members"},
		{"too many members", func(in *service.CreateRoomInput) { in.MaxMembers = 21 }, "max_members"},
		{"quiz on event", func(in *service.CreateRoomInput) { in.QuizRequired = true }, "quiz_required"},
		{"inactivity on event", func(in *service.CreateRoomInput) {
			in.InactivityPolicy = &domain.InactivityPolicy{Enabled: true, TimeoutHours: 24}
		}, "inactivity_policy"},
		{"bad timeout", func(in *service.CreateRoomInput) {
			in.Type = domain.RoomTypeProject
			in.InactivityPolicy = &domain.InactivityPolicy{Enabled: true, TimeoutHours: 12}
		}, "inactivity_policy.timeout_hours"},
		{"bad role", func(in *service.CreateRoomInput) {
			in.RoleRequirements = []domain.RoleRequirement{{Role: "", Required: 1}}
		}, "role_requirements"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roomRepo := new(mocks.RoomRepository)
			svc := service.NewRoomService(roomRepo, new(mocks.UserRepository))
			in := validEventInput()
			tt.mutate(&in)

			_, err := svc.CreateRoom(context.Background(), "me", in)
			require.ErrorIs(t, err, service.ErrInvalidRoom)
			var verr *service.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Fields, tt.field)
			roomRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestRoomService_CreateRoom_SaveFails(t *testing.T) {
	roomRepo := new(mocks.RoomRepository)
	userRepo := new(mocks.UserRepository)
	svc := service.NewRoomService(roomRepo, userRepo)
	ctx := context.Background()

	userRepo.On("FindByID", ctx, "me").Return(&domain.User{ID: "me", Name: "Taylor"}, nil).Once()
	roomRepo.On("Save", ctx, mock.Anything).Return(errors.New("disk full")).Once()

	_, err := svc.CreateRoom(ctx, "me", validEventInput())
	assert.ErrorIs(t, err, service.ErrInternalServer)
}

func TestRoomService_FindRoomByID(t *testing.T) {
	roomRepo := new(mocks.RoomRepository)
	svc := service.NewRoomService(roomRepo, new(mocks.UserRepository))
	ctx := context.Background()

	roomRepo.On("FindByID", ctx, "404").Return(nil, repository.ErrRoomNotFound).Once()
	roomRepo.On("FindByID", ctx, "500").Return(nil, errors.New("boom")).Once()

	_, err := svc.FindRoomByID(ctx, "404")
	assert.ErrorIs(t, err, service.ErrRoomNotFound)
	_, err = svc.FindRoomByID(ctx, "500")
	assert.ErrorIs(t, err, service.ErrInternalServer)
	roomRepo.AssertExpectations(t)
}

func TestRoomService_SearchRooms(t *testing.T) {
	svc := service.NewRoomService(memory.NewRoomRepository(memory.SeedRooms(testNow)), memory.NewUserRepository(nil))
	ctx := context.Background()

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"1", "2", "3", "4", "5", "6"}},
		{"  ", []string{"1", "2", "3", "4", "5", "6"}},
		{"FILM", []string{"1"}},
		{"creative", []string{"1", "4"}},
		{"social", []string{"2", "5", "6"}},
		{"hack", []string{"5"}},
		{"nothing-matches", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rooms, err := svc.SearchRooms(ctx, tt.query)
			require.NoError(t, err)
			got := make([]string, 0, len(rooms))
			for _, r := range rooms {
				got = append(got, r.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoomService_TrendingTags(t *testing.T) {
	svc := service.NewRoomService(memory.NewRoomRepository(memory.SeedRooms(testNow)), memory.NewUserRepository(nil))

	tags, err := svc.TrendingTags(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []service.TagCount{{Tag: "Creative", Count: 2}, {Tag: "Social", Count: 2}}, tags)

	all, err := svc.TrendingTags(context.Background(), 0)
	require.NoError(t, err)
	assert.Greater(t, len(all), 2)
}
