package service

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrSessionNotFound  = errors.New("discovery session not found or expired")
	ErrSessionExhausted = errors.New("no rooms left in this discovery session")
	ErrInvalidDirection = errors.New("direction must be left or right")
	ErrInvalidRoom      = errors.New("invalid room data")
	ErrInvalidQuiz      = errors.New("invalid quiz")
	ErrQuizNotFound     = errors.New("quiz not found")
	ErrQuizNotRequired  = errors.New("room does not accept quiz applications")
	ErrInvalidAnswers   = errors.New("invalid quiz answers")
	ErrInvalidMessage   = errors.New("invalid message")
	ErrInternalServer   = errors.New("internal server error")
)

// ValidationError 携带字段级别的校验信息，errors.Is 时等同于 Kind。
type ValidationError struct {
	Kind   error
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return e.Kind.Error()
}

func (e *ValidationError) Unwrap() error { return e.Kind }

func newValidationError(kind error, fields map[string]string) *ValidationError {
	return &ValidationError{Kind: kind, Fields: fields}
}
