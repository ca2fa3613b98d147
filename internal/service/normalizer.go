package service

import (
	"fmt"

	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/model"
)

// fallbackAnswer is used when a question has no options to promote into an answer.
const fallbackAnswer = "No answer provided"

// NormalizeQuiz repairs every question of an untrusted generation result, in
// original order. Repairs are silent: malformed provider output is coerced into a
// valid shape instead of failing the whole generation.
func NormalizeQuiz(quiz dto.GeneratedQuiz) dto.GeneratedQuiz {
	for i := range quiz.Questions {
		quiz.Questions[i] = RepairQuestion(quiz.Questions[i])
	}
	return quiz
}

// RepairQuestion coerces a single question into a structurally valid one.
// It is a pure function and idempotent: repairing a repaired question is a no-op.
func RepairQuestion(q dto.GeneratedQuestion) dto.GeneratedQuestion {
	switch q.Type {
	case model.QuestionTypeMCQ:
		// Pad before the membership check so the promoted answer is a real option.
		// Too many options are left alone, never truncated.
		opts := make([]string, len(q.Options))
		copy(opts, q.Options)
		for len(opts) < 4 {
			opts = append(opts, fmt.Sprintf("Option %d", len(opts)+1))
		}
		q.Options = opts
		if !containsOption(q.Options, q.Answer) {
			if len(q.Options) > 0 {
				q.Answer = q.Options[0]
			} else {
				q.Answer = fallbackAnswer
			}
		}
	case model.QuestionTypeTrueFalse:
		if len(q.Options) != 2 || q.Options[0] != "True" || q.Options[1] != "False" {
			q.Options = []string{"True", "False"}
		}
		if q.Answer != "True" && q.Answer != "False" {
			q.Answer = "True"
		}
	case model.QuestionTypeShortAnswer:
		// Free-text answer; options carry no meaning and are dropped.
		q.Options = nil
	}
	return q
}

func containsOption(options []string, answer string) bool {
	for _, opt := range options {
		if opt == answer {
			return true
		}
	}
	return false
}
