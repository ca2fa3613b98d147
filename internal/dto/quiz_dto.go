package dto

import "time"

// QuestionPayload is a question as submitted by an administrator, either inside a
// manual quiz creation or a full-replace update.
type QuestionPayload struct {
	Text         string   `json:"text" binding:"required"`
	Type         string   `json:"type" binding:"required,oneof=mcq true_false short_answer"`
	Options      []string `json:"options"`
	Answer       string   `json:"answer"`
	ImageURL     *string  `json:"image_url"`
	OptionImages []string `json:"option_images"` // mcq only, same length as Options
}

// QuizCreateRequest is for admin to persist a quiz, manual or previously generated.
type QuizCreateRequest struct {
	Title         string            `json:"title"`
	TimeLimit     int               `json:"time_limit"` // minutes, defaults to 10 when omitted
	Weightage     *float64          `json:"weightage"`
	WeightageType string            `json:"weightage_type" binding:"omitempty,oneof=percentage marks"`
	Questions     []QuestionPayload `json:"questions" binding:"omitempty,dive"`
}

// QuizUpdateRequest carries partial update semantics: nil fields keep their prior value.
// A non-nil Questions slice replaces the quiz's questions wholesale.
type QuizUpdateRequest struct {
	Title         *string            `json:"title"`
	TimeLimit     *int               `json:"time_limit"`
	Weightage     *float64           `json:"weightage"`
	WeightageType *string            `json:"weightage_type" binding:"omitempty,oneof=percentage marks"`
	Questions     *[]QuestionPayload `json:"questions" binding:"omitempty,dive"`
}

// GenerateQuizRequest asks the AI provider for a quiz preview.
// QuestionCount is deliberately untyped: clients have been observed sending numbers,
// numeric strings or nothing at all; the service resolves it to a clamped integer.
type GenerateQuizRequest struct {
	Topic         string      `json:"topic"`
	QuestionType  string      `json:"questionType" binding:"omitempty,oneof=mcq true_false short_answer"`
	QuestionCount interface{} `json:"questionCount"`
}

// GeneratedQuestion and GeneratedQuiz double as the parse target for the provider's
// JSON payload and the preview body returned to the administrator.
type GeneratedQuestion struct {
	Text    string   `json:"text"`
	Type    string   `json:"type"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
}

type GeneratedQuiz struct {
	Title     string              `json:"title"`
	Questions []GeneratedQuestion `json:"questions"`
	TimeLimit int                 `json:"timeLimit,omitempty"`
}

type QuestionResponse struct {
	ID           uint      `json:"id"`
	QuizID       uint      `json:"quiz_id"`
	Text         string    `json:"text"`
	Type         string    `json:"type"`
	Options      []string  `json:"options"`
	Answer       string    `json:"answer"`
	ImageURL     *string   `json:"image_url,omitempty"`
	OptionImages []string  `json:"option_images,omitempty"`
	OrderInQuiz  int       `json:"order_in_quiz"`
	CreatedAt    time.Time `json:"created_at"`
}

type QuizResponse struct {
	ID            uint               `json:"id"`
	Title         string             `json:"title"`
	OwnerID       uint               `json:"owner_id"`
	TimeLimit     int                `json:"time_limit"`
	Weightage     *float64           `json:"weightage,omitempty"`
	WeightageType string             `json:"weightage_type,omitempty"`
	Questions     []QuestionResponse `json:"questions,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// QuizSummaryResponse is the owner-facing list projection.
type QuizSummaryResponse struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	QuestionCount int       `json:"question_count"`
	TimeLimit     int       `json:"time_limit"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
