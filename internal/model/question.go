package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	QuestionTypeMCQ         = "mcq"
	QuestionTypeTrueFalse   = "true_false"
	QuestionTypeShortAnswer = "short_answer"
)

type Question struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	QuizID       uint           `json:"quiz_id" gorm:"not null;index"`
	Text         string         `json:"text" gorm:"type:text;not null"`
	Type         string         `json:"type" gorm:"not null"` // "mcq", "true_false", "short_answer"
	Options      []string       `json:"options" gorm:"serializer:json"`
	Answer       string         `json:"answer" gorm:"type:text"`
	ImageURL     *string        `json:"image_url,omitempty"`
	OptionImages []string       `json:"option_images,omitempty" gorm:"serializer:json"` // same length as Options, mcq only
	OrderInQuiz  int            `json:"order_in_quiz" gorm:"not null"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
