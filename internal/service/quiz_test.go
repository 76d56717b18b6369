package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/padmeamd/uroom/internal/domain"
	"github.com/padmeamd/uroom/internal/infra/persistence/memory"
	"github.com/padmeamd/uroom/internal/repository/mocks"
	"github.com/padmeamd/uroom/internal/service"
	"github.com/padmeamd/uroom/internal/tasks"
)

func newSeededQuizService(joiner service.JoinRequester) *service.QuizService {
	return service.NewQuizService(
		memory.NewRoomRepository(memory.SeedRooms(testNow)),
		memory.NewQuizRepository(memory.SeedQuizzes()),
		joiner,
	)
}

func TestQuizService_GetQuiz(t *testing.T) {
	svc := newSeededQuizService(new(mockJoiner))
	ctx := context.Background()

	quiz, err := svc.GetQuiz(ctx, "1")
	require.NoError(t, err)
	require.Len(t, quiz.Questions, 2)
	assert.Equal(t, "q1-1", quiz.Questions[0].ID)

	_, err = svc.GetQuiz(ctx, "2")
	assert.ErrorIs(t, err, service.ErrQuizNotFound)

	_, err = svc.GetQuiz(ctx, "404")
	assert.ErrorIs(t, err, service.ErrRoomNotFound)
}

func TestQuizService_SaveQuiz(t *testing.T) {
	svc := newSeededQuizService(new(mockJoiner))
	ctx := context.Background()

	saved, err := svc.SaveQuiz(ctx, "3", []domain.QuizQuestion{
		{Type: domain.QuestionText, Question: "  Why this project?  ", Required: true},
		{ID: "keep", Type: domain.QuestionSingleChoice, Question: "Timezone?", Options: []string{"PST", " ", "EST"}},
	})
	require.NoError(t, err)
	require.Len(t, saved.Questions, 2)
	assert.NotEmpty(t, saved.Questions[0].ID)
	assert.Equal(t, "Why this project?", saved.Questions[0].Question)
	assert.Equal(t, "keep", saved.Questions[1].ID)
	assert.Equal(t, []string{"PST", "EST"}, saved.Questions[1].Options)

	reloaded, err := svc.GetQuiz(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, saved.Questions, reloaded.Questions)
}

func TestQuizService_SaveQuiz_Validation(t *testing.T) {
	svc := newSeededQuizService(new(mockJoiner))
	ctx := context.Background()

	tests := []struct {
		name      string
		questions []domain.QuizQuestion
		field     string
	}{
		{"empty question", []domain.QuizQuestion{{Type: domain.QuestionText, Question: " "}}, "questions[0].question"},
		{"bad type", []domain.QuizQuestion{{Type: "essay", Question: "Q"}}, "questions[0].type"},
		{"choice needs two options", []domain.QuizQuestion{{Type: domain.QuestionMultipleChoice, Question: "Q", Options: []string{"A", ""}}}, "questions[0].options"},
		{"text has no options", []domain.QuizQuestion{{Type: domain.QuestionText, Question: "Q", Options: []string{"A"}}}, "questions[0].options"},
		{"duplicate id", []domain.QuizQuestion{
			{ID: "a", Type: domain.QuestionText, Question: "Q1"},
			{ID: "a", Type: domain.QuestionText, Question: "Q2"},
		}, "questions[1].id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SaveQuiz(ctx, "3", tt.questions)
			require.ErrorIs(t, err, service.ErrInvalidQuiz)
			var verr *service.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Fields, tt.field)
		})
	}

	_, err := svc.SaveQuiz(ctx, "2", []domain.QuizQuestion{{Type: domain.QuestionText, Question: "Q"}})
	assert.ErrorIs(t, err, service.ErrInvalidQuiz, "events cannot carry a quiz")
}

func TestQuizService_SaveQuiz_RepositoryError(t *testing.T) {
	roomRepo := new(mocks.RoomRepository)
	quizRepo := new(mocks.QuizRepository)
	svc := service.NewQuizService(roomRepo, quizRepo, new(mockJoiner))
	ctx := context.Background()

	roomRepo.On("FindByID", ctx, "1").Return(&domain.Room{ID: "1", Type: domain.RoomTypeProject}, nil).Once()
	quizRepo.On("Save", ctx, mock.Anything).Return(errors.New("deadlock")).Once()

	_, err := svc.SaveQuiz(ctx, "1", []domain.QuizQuestion{{Type: domain.QuestionText, Question: "Q"}})
	assert.ErrorIs(t, err, service.ErrInternalServer)
	quizRepo.AssertExpectations(t)
}

func TestQuizService_SubmitApplication(t *testing.T) {
	joiner := new(mockJoiner)
	svc := newSeededQuizService(joiner)
	ctx := context.Background()

	answers := []domain.Answer{
		{QuestionID: "q3-1", Choices: []string{"React", "Go"}},
		{QuestionID: "q3-2", Text: "10"},
	}
	joiner.On("RequestJoin", ctx, mock.MatchedBy(func(p tasks.JoinRequestPayload) bool {
		return p.RoomID == "3" && p.ApplicantID == "me" && p.Outcome == "application_required" &&
			p.RequestID != "" && len(p.Answers) == 2
	})).Return(nil).Once()

	req, err := svc.SubmitApplication(ctx, "3", "me", answers)
	require.NoError(t, err)
	assert.Equal(t, domain.JoinStatusPending, req.Status)
	assert.Equal(t, "3", req.RoomID)
	joiner.AssertExpectations(t)
}

func TestQuizService_SubmitApplication_InvalidAnswers(t *testing.T) {
	svc := newSeededQuizService(new(mockJoiner))
	ctx := context.Background()

	tests := []struct {
		name     string
		roomID   string
		answers  []domain.Answer
		question string
	}{
		{"required missing", "3", []domain.Answer{{QuestionID: "q3-1", Choices: []string{"Go"}}}, "q3-2"},
		{"required blank text", "3", []domain.Answer{{QuestionID: "q3-1", Choices: []string{"Go"}}, {QuestionID: "q3-2", Text: "  "}}, "q3-2"},
		{"multi unlisted option", "3", []domain.Answer{{QuestionID: "q3-1", Choices: []string{"Rust"}}, {QuestionID: "q3-2", Text: "5"}}, "q3-1"},
		{"multi duplicate option", "3", []domain.Answer{{QuestionID: "q3-1", Choices: []string{"Go", "Go"}}, {QuestionID: "q3-2", Text: "5"}}, "q3-1"},
		{"single two options", "1", []domain.Answer{{QuestionID: "q1-1", Choices: []string{"Camera", "Sound"}}}, "q1-1"},
		{"single unlisted", "5", []domain.Answer{{QuestionID: "q5-1", Choices: []string{"Maybe"}}}, "q5-1"},
		{"text given choices", "1", []domain.Answer{{QuestionID: "q1-1", Choices: []string{"Actor"}}, {QuestionID: "q1-2", Choices: []string{"x"}}}, "q1-2"},
		{"unknown question", "5", []domain.Answer{{QuestionID: "q5-1", Choices: []string{"Yes"}}, {QuestionID: "zzz", Text: "hi"}}, "zzz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SubmitApplication(ctx, tt.roomID, "me", tt.answers)
			require.ErrorIs(t, err, service.ErrInvalidAnswers)
			var verr *service.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Fields, tt.question)
		})
	}
}

func TestQuizService_SubmitApplication_RoomWithoutQuiz(t *testing.T) {
	svc := newSeededQuizService(new(mockJoiner))
	ctx := context.Background()

	_, err := svc.SubmitApplication(ctx, "2", "me", nil)
	assert.ErrorIs(t, err, service.ErrQuizNotRequired)

	_, err = svc.SubmitApplication(ctx, "404", "me", nil)
	assert.ErrorIs(t, err, service.ErrRoomNotFound)
}

func TestQuizService_SubmitApplication_OptionalQuestionMayBeSkipped(t *testing.T) {
	joiner := new(mockJoiner)
	svc := newSeededQuizService(joiner)
	ctx := context.Background()
	joiner.On("RequestJoin", ctx, mock.Anything).Return(nil).Once()

	_, err := svc.SubmitApplication(ctx, "1", "me", []domain.Answer{{QuestionID: "q1-1", Choices: []string{"Camera"}}})
	require.NoError(t, err)
	joiner.AssertExpectations(t)
}
