package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	WeightagePercentage = "percentage"
	WeightageMarks      = "marks"
)

// DefaultTimeLimit is applied when a quiz is created without an explicit limit (minutes).
const DefaultTimeLimit = 10

type Quiz struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	Title         string         `json:"title" gorm:"not null"`
	OwnerID       uint           `json:"owner_id" gorm:"not null;index"`
	Owner         User           `json:"-" gorm:"foreignKey:OwnerID"`
	TimeLimit     int            `json:"time_limit" gorm:"not null;default:10"` // minutes
	Weightage     *float64       `json:"weightage,omitempty"`
	WeightageType string         `json:"weightage_type,omitempty"` // "percentage" or "marks"
	Questions     []Question     `json:"questions,omitempty" gorm:"foreignKey:QuizID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
