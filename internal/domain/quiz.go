package domain

// QuestionType 申请问卷的题目类型。
type QuestionType string

const (
	QuestionText           QuestionType = "text"
	QuestionMultipleChoice QuestionType = "multiple-choice"
	QuestionSingleChoice   QuestionType = "single-choice"
)

// Valid 判断题目类型是否合法。
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionText, QuestionMultipleChoice, QuestionSingleChoice:
		return true
	}
	return false
}

// IsChoice 选择题需要 Options。
func (t QuestionType) IsChoice() bool {
	return t == QuestionMultipleChoice || t == QuestionSingleChoice
}

// QuizQuestion 是房间申请问卷中的一道题。
type QuizQuestion struct {
	ID       string       `json:"id"`
	Type     QuestionType `json:"type"`
	Question string       `json:"question"`
	Options  []string     `json:"options,omitempty"`
	Required bool         `json:"required"`
}

// Quiz 是挂在项目房间上的申请问卷。
type Quiz struct {
	RoomID    string         `json:"room_id"`
	Questions []QuizQuestion `json:"questions"`
}

// Answer 是申请人对一道题的回答。文本题用 Text，选择题用 Choices。
type Answer struct {
	QuestionID string   `json:"question_id"`
	Text       string   `json:"text,omitempty"`
	Choices    []string `json:"choices,omitempty"`
}
