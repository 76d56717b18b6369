package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/padmeamd/uroom/internal/discovery"
	"github.com/padmeamd/uroom/internal/domain"
	"github.com/padmeamd/uroom/internal/repository"
	"github.com/padmeamd/uroom/internal/tasks"
)

// QuizService 管理项目房间的申请问卷和问卷申请
type QuizService struct {
	roomRepo repository.RoomRepository
	quizRepo repository.QuizRepository
	joiner   JoinRequester
	now      func() time.Time
}

// NewQuizService 创建 QuizService 实例
func NewQuizService(roomRepo repository.RoomRepository, quizRepo repository.QuizRepository, joiner JoinRequester) *QuizService {
	if roomRepo == nil {
		panic("RoomRepository cannot be nil for QuizService")
	}
	if quizRepo == nil {
		panic("QuizRepository cannot be nil for QuizService")
	}
	if joiner == nil {
		panic("JoinRequester cannot be nil for QuizService")
	}
	return &QuizService{roomRepo: roomRepo, quizRepo: quizRepo, joiner: joiner, now: time.Now}
}

// GetQuiz 返回房间的问卷
func (s *QuizService) GetQuiz(ctx context.Context, roomID string) (*domain.Quiz, error) {
	if _, err := s.findRoom(ctx, roomID); err != nil {
		return nil, err
	}
	return s.findQuiz(ctx, roomID)
}

// SaveQuiz 整体替换项目房间的问卷题目，没有 ID 的题目会分配新 ID。
func (s *QuizService) SaveQuiz(ctx context.Context, roomID string, questions []domain.QuizQuestion) (*domain.Quiz, error) {
	logCtx := logrus.WithField("room_id", roomID)
	room, err := s.findRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room.Type != domain.RoomTypeProject {
		return nil, newValidationError(ErrInvalidQuiz, map[string]string{"room": "project_only"})
	}

	quiz := &domain.Quiz{RoomID: roomID, Questions: make([]domain.QuizQuestion, 0, len(questions))}
	fields := map[string]string{}
	seen := map[string]bool{}
	for i, q := range questions {
		key := fmt.Sprintf("questions[%d]", i)
		q.Question = strings.TrimSpace(q.Question)
		if q.ID == "" {
			q.ID = uuid.NewString()
		}
		switch {
		case seen[q.ID]:
			fields[key+".id"] = "duplicate"
		case q.Question == "":
			fields[key+".question"] = "required"
		case !q.Type.Valid():
			fields[key+".type"] = "oneof=text multiple-choice single-choice"
		case q.Type.IsChoice():
			opts := make([]string, 0, len(q.Options))
			for _, o := range q.Options {
				if o = strings.TrimSpace(o); o != "" {
					opts = append(opts, o)
				}
			}
			if len(opts) < 2 {
				fields[key+".options"] = "min=2"
			}
			q.Options = opts
		case len(q.Options) > 0:
			fields[key+".options"] = "text_has_no_options"
		}
		seen[q.ID] = true
		quiz.Questions = append(quiz.Questions, q)
	}
	if len(fields) > 0 {
		logCtx.WithField("fields", fields).Debug("SaveQuiz: Invalid questions")
		return nil, newValidationError(ErrInvalidQuiz, fields)
	}

	if err := s.quizRepo.Save(ctx, quiz); err != nil {
		logCtx.WithError(err).Error("SaveQuiz: Failed to save quiz")
		return nil, ErrInternalServer
	}
	logCtx.WithField("questions", len(quiz.Questions)).Info("Quiz saved")
	return quiz, nil
}

// SubmitApplication 校验问卷答案并提交一条待审批的加入请求
func (s *QuizService) SubmitApplication(ctx context.Context, roomID, applicantID string, answers []domain.Answer) (*domain.JoinRequest, error) {
	logCtx := logrus.WithFields(logrus.Fields{"room_id": roomID, "applicant_id": applicantID})
	room, err := s.findRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room.Type != domain.RoomTypeProject || !room.QuizRequired {
		return nil, ErrQuizNotRequired
	}
	quiz, err := s.findQuiz(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if fields := checkAnswers(quiz, answers); len(fields) > 0 {
		logCtx.WithField("fields", fields).Debug("SubmitApplication: Invalid answers")
		return nil, newValidationError(ErrInvalidAnswers, fields)
	}

	req := &domain.JoinRequest{
		ID:          uuid.NewString(),
		RoomID:      roomID,
		ApplicantID: applicantID,
		Outcome:     string(discovery.OutcomeApplicationRequired),
		Status:      domain.JoinStatusPending,
		Answers:     answers,
		CreatedAt:   s.now().UTC(),
	}
	err = s.joiner.RequestJoin(ctx, tasks.JoinRequestPayload{
		RequestID:   req.ID,
		RoomID:      req.RoomID,
		ApplicantID: req.ApplicantID,
		Outcome:     req.Outcome,
		Answers:     req.Answers,
	})
	if err != nil {
		logCtx.WithError(err).Error("SubmitApplication: Failed to submit join request")
		return nil, ErrInternalServer
	}
	logCtx.WithField("request_id", req.ID).Info("Application submitted")
	return req, nil
}

// checkAnswers 返回不合法的答案，key 为题目 ID
func checkAnswers(quiz *domain.Quiz, answers []domain.Answer) map[string]string {
	fields := map[string]string{}
	byID := make(map[string]domain.Answer, len(answers))
	for _, a := range answers {
		if _, dup := byID[a.QuestionID]; dup {
			fields[a.QuestionID] = "duplicate"
		}
		byID[a.QuestionID] = a
	}
	known := make(map[string]bool, len(quiz.Questions))
	for _, q := range quiz.Questions {
		known[q.ID] = true
		a, ok := byID[q.ID]
		answered := ok && (strings.TrimSpace(a.Text) != "" || len(a.Choices) > 0)
		if !answered {
			if q.Required {
				fields[q.ID] = "required"
			}
			continue
		}
		switch q.Type {
		case domain.QuestionText:
			if len(a.Choices) > 0 {
				fields[q.ID] = "text_expected"
			}
		case domain.QuestionSingleChoice:
			if len(a.Choices) != 1 || !slices.Contains(q.Options, a.Choices[0]) {
				fields[q.ID] = "one_listed_option"
			}
		case domain.QuestionMultipleChoice:
			if len(a.Choices) == 0 {
				fields[q.ID] = "listed_options"
				break
			}
			picked := map[string]bool{}
			for _, c := range a.Choices {
				if !slices.Contains(q.Options, c) || picked[c] {
					fields[q.ID] = "listed_options"
					break
				}
				picked[c] = true
			}
		}
	}
	for id := range byID {
		if !known[id] {
			fields[id] = "unknown_question"
		}
	}
	return fields
}

func (s *QuizService) findRoom(ctx context.Context, roomID string) (*domain.Room, error) {
	room, err := s.roomRepo.FindByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		logrus.WithField("room_id", roomID).WithError(err).Error("QuizService: Failed to load room")
		return nil, ErrInternalServer
	}
	return room, nil
}

func (s *QuizService) findQuiz(ctx context.Context, roomID string) (*domain.Quiz, error) {
	quiz, err := s.quizRepo.FindByRoomID(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrQuizNotFound) {
			return nil, ErrQuizNotFound
		}
		logrus.WithField("room_id", roomID).WithError(err).Error("QuizService: Failed to load quiz")
		return nil, ErrInternalServer
	}
	return quiz, nil
}
